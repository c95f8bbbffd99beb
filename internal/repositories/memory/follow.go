package memory

import (
	"time"

	"github.com/sergey-xx/Blogicum/internal/models"
	"github.com/sergey-xx/Blogicum/internal/repositories"
)

type FollowMemoryRepository struct {
	store *Store
}

func (r *FollowMemoryRepository) GetOrCreate(userID, authorID uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.follows {
		if f.UserID == userID && f.AuthorID == authorID {
			return nil
		}
	}
	id := s.id()
	s.follows[id] = models.Follow{
		ID:        id,
		UserID:    userID,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}
	return nil
}

func (r *FollowMemoryRepository) Delete(userID, authorID uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, f := range s.follows {
		if f.UserID == userID && f.AuthorID == authorID {
			delete(s.follows, id)
			return nil
		}
	}
	return repositories.ErrNotFound
}

func (r *FollowMemoryRepository) IsFollowing(userID, authorID uint) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, f := range s.follows {
		if f.UserID == userID && f.AuthorID == authorID {
			return true, nil
		}
	}
	return false, nil
}

func (r *FollowMemoryRepository) AuthorIDs(userID uint) ([]uint, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var ids []uint
	for _, f := range s.follows {
		if f.UserID == userID {
			ids = append(ids, f.AuthorID)
		}
	}
	return ids, nil
}
