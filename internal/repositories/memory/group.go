package memory

import (
	"fmt"
	"sort"

	"github.com/sergey-xx/Blogicum/internal/models"
	"github.com/sergey-xx/Blogicum/internal/repositories"
)

type GroupMemoryRepository struct {
	store *Store
}

func (r *GroupMemoryRepository) Create(group *models.Group) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.groups {
		if g.Slug == group.Slug {
			return fmt.Errorf("slug %q already taken", group.Slug)
		}
	}

	group.ID = s.id()
	s.groups[group.ID] = *group
	return nil
}

func (r *GroupMemoryRepository) GetByID(id uint) (*models.Group, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.groups[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	group := g
	return &group, nil
}

func (r *GroupMemoryRepository) GetBySlug(slug string) (*models.Group, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, g := range s.groups {
		if g.Slug == slug {
			group := g
			return &group, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *GroupMemoryRepository) List() ([]models.Group, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := make([]models.Group, 0, len(s.groups))
	for _, g := range s.groups {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Title < groups[j].Title })
	return groups, nil
}

// Delete removes the group and clears the group reference on its posts,
// leaving the posts in place.
func (r *GroupMemoryRepository) Delete(id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.groups[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(s.groups, id)
	for pid, p := range s.posts {
		if p.GroupID != nil && *p.GroupID == id {
			p.GroupID = nil
			p.Group = nil
			s.posts[pid] = p
		}
	}
	return nil
}
