package repositories

import (
	"errors"
	"time"

	"github.com/sergey-xx/Blogicum/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations.
// All listings come back newest-first by publication date.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	Update(post *models.Post) error
	Delete(id uint) error
	ListAll() ([]models.Post, error)
	ListByGroup(groupID uint) ([]models.Post, error)
	ListByAuthor(authorID uint) ([]models.Post, error)
	ListByAuthors(authorIDs []uint) ([]models.Post, error)
	CountByAuthor(authorID uint) (int64, error)
}

// GormPostRepository implements PostRepository on top of gorm
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// Create persists a new post. The publication date is server-assigned
// here and never changes afterwards.
func (r *GormPostRepository) Create(post *models.Post) error {
	post.PubDate = time.Now()
	return r.db.Create(post).Error
}

func (r *GormPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Author").Preload("Group").First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// Update saves the mutable fields of an existing post. PubDate is
// deliberately left out.
func (r *GormPostRepository) Update(post *models.Post) error {
	return r.db.Model(&models.Post{ID: post.ID}).
		Select("text", "group_id", "image").
		Updates(map[string]interface{}{
			"text":     post.Text,
			"group_id": post.GroupID,
			"image":    post.Image,
		}).Error
}

func (r *GormPostRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Post{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormPostRepository) ListAll() ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").Preload("Group").
		Order("pub_date DESC, id DESC").Find(&posts).Error
	return posts, err
}

func (r *GormPostRepository) ListByGroup(groupID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").Where("group_id = ?", groupID).
		Order("pub_date DESC, id DESC").Find(&posts).Error
	return posts, err
}

func (r *GormPostRepository) ListByAuthor(authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.Preload("Author").Preload("Group").Where("author_id = ?", authorID).
		Order("pub_date DESC, id DESC").Find(&posts).Error
	return posts, err
}

func (r *GormPostRepository) ListByAuthors(authorIDs []uint) ([]models.Post, error) {
	var posts []models.Post
	if len(authorIDs) == 0 {
		return posts, nil
	}
	err := r.db.Preload("Author").Preload("Group").Where("author_id IN ?", authorIDs).
		Order("pub_date DESC, id DESC").Find(&posts).Error
	return posts, err
}

func (r *GormPostRepository) CountByAuthor(authorID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Post{}).Where("author_id = ?", authorID).Count(&count).Error
	return count, err
}
