package repositories

import (
	"time"

	"github.com/sergey-xx/Blogicum/internal/models"
	"gorm.io/gorm"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(comment *models.Comment) error
	ListByPost(postID uint) ([]models.Comment, error)
}

// GormCommentRepository implements CommentRepository on top of gorm
type GormCommentRepository struct {
	db *gorm.DB
}

// NewGormCommentRepository creates a new GormCommentRepository
func NewGormCommentRepository(db *gorm.DB) *GormCommentRepository {
	return &GormCommentRepository{db: db}
}

func (r *GormCommentRepository) Create(comment *models.Comment) error {
	comment.PubDate = time.Now()
	return r.db.Create(comment).Error
}

// ListByPost returns the post's comments oldest-first, the order they
// are shown under the post.
func (r *GormCommentRepository) ListByPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.Preload("Author").Where("post_id = ?", postID).
		Order("pub_date ASC, id ASC").Find(&comments).Error
	return comments, err
}
