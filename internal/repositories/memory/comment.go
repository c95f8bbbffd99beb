package memory

import (
	"sort"
	"time"

	"github.com/sergey-xx/Blogicum/internal/models"
	"github.com/sergey-xx/Blogicum/internal/repositories"
)

type CommentMemoryRepository struct {
	store *Store
}

func (r *CommentMemoryRepository) Create(comment *models.Comment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[comment.PostID]; !ok {
		return repositories.ErrNotFound
	}
	if _, ok := s.users[comment.AuthorID]; !ok {
		return repositories.ErrNotFound
	}

	comment.ID = s.id()
	comment.PubDate = time.Now()
	stored := *comment
	stored.Author = models.User{}
	stored.Post = models.Post{}
	s.comments[comment.ID] = stored
	return nil
}

func (r *CommentMemoryRepository) ListByPost(postID uint) ([]models.Comment, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var comments []models.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			c.Author = s.users[c.AuthorID]
			comments = append(comments, c)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		if !comments[i].PubDate.Equal(comments[j].PubDate) {
			return comments[i].PubDate.Before(comments[j].PubDate)
		}
		return comments[i].ID < comments[j].ID
	})
	return comments, nil
}
