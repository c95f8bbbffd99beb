package models

// Group is a named category posts can optionally belong to.
// Groups have no creation handler and are seeded externally.
type Group struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"size:200;not null"`
	Slug        string `json:"slug" gorm:"uniqueIndex;size:20;not null"`
	Description string `json:"description,omitempty"`
}
