package memory

import (
	"time"

	"github.com/sergey-xx/Blogicum/internal/models"
)

type LikeMemoryRepository struct {
	store *Store
}

func (r *LikeMemoryRepository) GetOrCreate(userID, postID uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.likes {
		if l.UserID == userID && l.PostID == postID {
			return nil
		}
	}
	id := s.id()
	s.likes[id] = models.Like{
		ID:        id,
		UserID:    userID,
		PostID:    postID,
		CreatedAt: time.Now(),
	}
	return nil
}

func (r *LikeMemoryRepository) Delete(userID, postID uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, l := range s.likes {
		if l.UserID == userID && l.PostID == postID {
			delete(s.likes, id)
			return nil
		}
	}
	return nil
}

func (r *LikeMemoryRepository) HasLiked(userID, postID uint) (bool, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, l := range s.likes {
		if l.UserID == userID && l.PostID == postID {
			return true, nil
		}
	}
	return false, nil
}

func (r *LikeMemoryRepository) CountByPost(postID uint) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, l := range s.likes {
		if l.PostID == postID {
			count++
		}
	}
	return count, nil
}
