package repositories

import (
	"github.com/sergey-xx/Blogicum/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like data operations
type LikeRepository interface {
	// GetOrCreate ensures a like row exists for the pair, idempotently.
	GetOrCreate(userID, postID uint) error
	// Delete removes the pair's like row. Deleting an absent like is a no-op.
	Delete(userID, postID uint) error
	HasLiked(userID, postID uint) (bool, error)
	CountByPost(postID uint) (int64, error)
}

// GormLikeRepository implements LikeRepository on top of gorm
type GormLikeRepository struct {
	db *gorm.DB
}

// NewGormLikeRepository creates a new GormLikeRepository
func NewGormLikeRepository(db *gorm.DB) *GormLikeRepository {
	return &GormLikeRepository{db: db}
}

func (r *GormLikeRepository) GetOrCreate(userID, postID uint) error {
	var like models.Like
	return r.db.Where(models.Like{UserID: userID, PostID: postID}).
		FirstOrCreate(&like).Error
}

func (r *GormLikeRepository) Delete(userID, postID uint) error {
	return r.db.Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{}).Error
}

func (r *GormLikeRepository) HasLiked(userID, postID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormLikeRepository) CountByPost(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
