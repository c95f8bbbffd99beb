package models

import "time"

// Comment belongs to a post. Deleting the post or the comment's author
// deletes the comment.
type Comment struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	PostID   uint      `json:"post_id" gorm:"index;not null"`
	Post     Post      `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID uint      `json:"author_id" gorm:"index;not null"`
	Author   User      `json:"author" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text     string    `json:"text" gorm:"not null"`
	PubDate  time.Time `json:"pub_date"`
}

// CommentForm defines the add-comment form fields
type CommentForm struct {
	Text string `form:"text" validate:"required"`
}
