package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model carries the identity and audit timestamps shared by every table
type Model struct {
	ID        string    `gorm:"column:id;primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `gorm:"column:created_at;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updatedAt"`
}

// BeforeCreate assigns a UUID when the caller did not
func (m *Model) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// GetID returns the primary key
func (m Model) GetID() string {
	return m.ID
}

// Visibility holds the per-language show flags.
// At least one flag must be true on every persisted row.
type Visibility struct {
	ShowInZh bool `gorm:"column:show_in_zh;not null" json:"showInZh"`
	ShowInEn bool `gorm:"column:show_in_en;not null" json:"showInEn"`
}

// Status is the publishing stage of a content row
type Status string

const (
	StatusDraft  Status = "Draft"
	StatusActive Status = "Active"
	StatusClosed Status = "Closed"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusActive, StatusClosed:
		return true
	}
	return false
}

// Actor is the authenticated admin performing a request
type Actor struct {
	AdminID string
	Account string
}

// SortItem assigns a display position to one row
type SortItem struct {
	ID        string `json:"id" binding:"required"`
	SortOrder int    `json:"sortOrder" binding:"min=1"`
}

// SortRequest is the body of PUT /<resource>/sort
type SortRequest struct {
	Orders []SortItem `json:"orders" binding:"required,dive"`
}

// NewVisibility builds flags for a new row; omitted flags default to shown
func NewVisibility(zh, en *bool) Visibility {
	v := Visibility{ShowInZh: true, ShowInEn: true}
	if zh != nil {
		v.ShowInZh = *zh
	}
	if en != nil {
		v.ShowInEn = *en
	}
	return v
}

// Str returns the pointed string or ""
func Str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
