package memory

import (
	"fmt"
	"time"

	"github.com/sergey-xx/Blogicum/internal/models"
	"github.com/sergey-xx/Blogicum/internal/repositories"
)

type UserMemoryRepository struct {
	store *Store
}

func (r *UserMemoryRepository) Create(user *models.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == user.Username {
			return fmt.Errorf("username %q already taken", user.Username)
		}
		if user.Email != "" && u.Email == user.Email {
			return fmt.Errorf("email %q already taken", user.Email)
		}
	}

	user.ID = s.id()
	user.CreatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (r *UserMemoryRepository) GetByID(id uint) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &user, nil
}

func (r *UserMemoryRepository) GetByUsername(username string) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == username {
			user := u
			return &user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserMemoryRepository) GetByEmail(email string) (*models.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *UserMemoryRepository) Delete(id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return repositories.ErrNotFound
	}
	s.deleteUserLocked(id)
	return nil
}
