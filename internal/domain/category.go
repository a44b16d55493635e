package domain

import (
	"github.com/cloudpower/site-backend/pkg/i18n"
	"gorm.io/gorm"
)

// Category is the bilingual name pair shared by every category table
type Category struct {
	Model
	ZhName string `gorm:"column:zh_name;type:varchar(255);not null" json:"zh_name"`
	EnName string `gorm:"column:en_name;type:varchar(255);not null" json:"en_name"`
}

// CategoryRef is the public, single-language category
type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Localize projects the category onto one language
func (c Category) Localize(loc i18n.Locale) CategoryRef {
	return CategoryRef{ID: c.ID, Name: i18n.Pick(loc, c.ZhName, c.EnName)}
}

// Names returns the zh and en names
func (c Category) Names() (string, string) {
	return c.ZhName, c.EnName
}

// SetNames overwrites both names
func (c *Category) SetNames(zh, en string) {
	c.ZhName = zh
	c.EnName = en
}

// NewsCategory is soft deleted so old news keeps a valid reference
// Table: news_categories
type NewsCategory struct {
	Category
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"-"`
}

func (NewsCategory) TableName() string { return "news_categories" }

// BlogCategory Table: blog_categories
type BlogCategory struct {
	Category
}

func (BlogCategory) TableName() string { return "blog_categories" }

// CaseCategory Table: case_categories
type CaseCategory struct {
	Category
}

func (CaseCategory) TableName() string { return "case_categories" }

// ServiceCategory Table: service_categories
type ServiceCategory struct {
	Category
}

func (ServiceCategory) TableName() string { return "service_categories" }

// CategoryRequest creates or patches a category
type CategoryRequest struct {
	ZhName *string `json:"zh_name"`
	EnName *string `json:"en_name"`
}
