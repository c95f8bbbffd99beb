package models

import "time"

// Post is a single publication. Listings are always ordered newest-first
// by PubDate. Deleting the author deletes their posts; deleting the group
// only clears the group reference.
type Post struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Text     string    `json:"text" gorm:"not null"`
	PubDate  time.Time `json:"pub_date" gorm:"index"`
	AuthorID uint      `json:"author_id" gorm:"index;not null"`
	Author   User      `json:"author" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID  *uint     `json:"group_id,omitempty" gorm:"index"`
	Group    *Group    `json:"group,omitempty" gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Image    string    `json:"image,omitempty"` // storage path of the uploaded image, empty when none
}

// PostForm defines the create/edit post form fields
type PostForm struct {
	Text    string `form:"text" validate:"required"`
	GroupID uint   `form:"group" validate:"omitempty"`
}
