package repositories

import (
	"github.com/sergey-xx/Blogicum/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow data operations
type FollowRepository interface {
	// GetOrCreate ensures a follow row exists for the pair. A duplicate
	// attempt is not an error and creates nothing.
	GetOrCreate(userID, authorID uint) error
	// Delete removes the pair's follow row and returns ErrNotFound when
	// no such row existed.
	Delete(userID, authorID uint) error
	IsFollowing(userID, authorID uint) (bool, error)
	AuthorIDs(userID uint) ([]uint, error)
}

// GormFollowRepository implements FollowRepository on top of gorm
type GormFollowRepository struct {
	db *gorm.DB
}

// NewGormFollowRepository creates a new GormFollowRepository
func NewGormFollowRepository(db *gorm.DB) *GormFollowRepository {
	return &GormFollowRepository{db: db}
}

func (r *GormFollowRepository) GetOrCreate(userID, authorID uint) error {
	var follow models.Follow
	return r.db.Where(models.Follow{UserID: userID, AuthorID: authorID}).
		FirstOrCreate(&follow).Error
}

func (r *GormFollowRepository) Delete(userID, authorID uint) error {
	res := r.db.Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormFollowRepository) IsFollowing(userID, authorID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// AuthorIDs returns the ids of every author the user follows.
func (r *GormFollowRepository) AuthorIDs(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).Where("user_id = ?", userID).
		Pluck("author_id", &ids).Error
	return ids, err
}
