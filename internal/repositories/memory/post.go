package memory

import (
	"sort"
	"time"

	"github.com/sergey-xx/Blogicum/internal/models"
	"github.com/sergey-xx/Blogicum/internal/repositories"
)

type PostMemoryRepository struct {
	store *Store
}

func (r *PostMemoryRepository) Create(post *models.Post) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[post.AuthorID]; !ok {
		return repositories.ErrNotFound
	}
	if post.GroupID != nil {
		if _, ok := s.groups[*post.GroupID]; !ok {
			return repositories.ErrNotFound
		}
	}

	post.ID = s.id()
	post.PubDate = time.Now()
	stored := *post
	stored.Author = models.User{}
	stored.Group = nil
	s.posts[post.ID] = stored
	return nil
}

func (r *PostMemoryRepository) GetByID(id uint) (*models.Post, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	post, ok := s.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return s.hydrateLocked(post), nil
}

func (r *PostMemoryRepository) Update(post *models.Post) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.posts[post.ID]
	if !ok {
		return repositories.ErrNotFound
	}
	stored.Text = post.Text
	stored.GroupID = post.GroupID
	stored.Image = post.Image
	s.posts[post.ID] = stored
	return nil
}

func (r *PostMemoryRepository) Delete(id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return repositories.ErrNotFound
	}
	s.deletePostLocked(id)
	return nil
}

func (r *PostMemoryRepository) ListAll() ([]models.Post, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked(func(models.Post) bool { return true }), nil
}

func (r *PostMemoryRepository) ListByGroup(groupID uint) ([]models.Post, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked(func(p models.Post) bool {
		return p.GroupID != nil && *p.GroupID == groupID
	}), nil
}

func (r *PostMemoryRepository) ListByAuthor(authorID uint) ([]models.Post, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked(func(p models.Post) bool { return p.AuthorID == authorID }), nil
}

func (r *PostMemoryRepository) ListByAuthors(authorIDs []uint) ([]models.Post, error) {
	wanted := make(map[uint]bool, len(authorIDs))
	for _, id := range authorIDs {
		wanted[id] = true
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listLocked(func(p models.Post) bool { return wanted[p.AuthorID] }), nil
}

func (r *PostMemoryRepository) CountByAuthor(authorID uint) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, p := range s.posts {
		if p.AuthorID == authorID {
			count++
		}
	}
	return count, nil
}

// listLocked collects matching posts newest-first. Callers must hold s.mu.
func (s *Store) listLocked(match func(models.Post) bool) []models.Post {
	var posts []models.Post
	for _, p := range s.posts {
		if match(p) {
			posts = append(posts, *s.hydrateLocked(p))
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].PubDate.Equal(posts[j].PubDate) {
			return posts[i].PubDate.After(posts[j].PubDate)
		}
		return posts[i].ID > posts[j].ID
	})
	return posts
}

// hydrateLocked fills the author and group references the way the gorm
// implementation preloads them. Callers must hold s.mu.
func (s *Store) hydrateLocked(post models.Post) *models.Post {
	post.Author = s.users[post.AuthorID]
	if post.GroupID != nil {
		if g, ok := s.groups[*post.GroupID]; ok {
			group := g
			post.Group = &group
		}
	}
	return &post
}
