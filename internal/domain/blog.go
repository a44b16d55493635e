package domain

import (
	"time"

	"github.com/cloudpower/site-backend/pkg/i18n"
)

// Blog is an article
// Table: blogs
type Blog struct {
	Model
	Visibility
	ZhTitle       string        `gorm:"column:zh_title;size:255;not null" json:"zh_title"`
	EnTitle       string        `gorm:"column:en_title;size:255;not null" json:"en_title"`
	Cover         string        `gorm:"column:cover;size:1024;not null" json:"cover"`
	ZhDescription string        `gorm:"column:zh_description" json:"zh_description"`
	EnDescription string        `gorm:"column:en_description" json:"en_description"`
	ZhContent     string        `gorm:"column:zh_content" json:"zh_content"`
	EnContent     string        `gorm:"column:en_content" json:"en_content"`
	ZhTags        string        `gorm:"column:zh_tags;size:512" json:"zh_tags"`
	EnTags        string        `gorm:"column:en_tags;size:512" json:"en_tags"`
	CategoryID    string        `gorm:"column:category_id;type:varchar(36);not null;index" json:"categoryId"`
	Category      *BlogCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Status        Status        `gorm:"column:status;type:varchar(16);not null;index" json:"status"`
}

func (Blog) TableName() string { return "blogs" }

// BlogResponse is the public, single-language blog post
type BlogResponse struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Cover       string       `json:"cover"`
	Description string       `json:"description"`
	Category    *CategoryRef `json:"category"`
	Tags        string       `json:"tags"`
	Status      Status       `json:"status"`
	UpdatedAt   time.Time    `json:"updatedAt"`
	Content     *string      `json:"content,omitempty"`
}

// Localize projects the post onto one language
func (b *Blog) Localize(loc i18n.Locale, withContent bool) BlogResponse {
	resp := BlogResponse{
		ID:          b.ID,
		Title:       i18n.Pick(loc, b.ZhTitle, b.EnTitle),
		Cover:       b.Cover,
		Description: i18n.Pick(loc, b.ZhDescription, b.EnDescription),
		Tags:        i18n.Pick(loc, b.ZhTags, b.EnTags),
		Status:      b.Status,
		UpdatedAt:   b.UpdatedAt,
	}
	if b.Category != nil {
		ref := b.Category.Localize(loc)
		resp.Category = &ref
	}
	if withContent {
		content := i18n.Pick(loc, b.ZhContent, b.EnContent)
		resp.Content = &content
	}
	return resp
}

// CreateBlogRequest is the request body for creating a blog post
type CreateBlogRequest struct {
	ShowInZh      *bool  `json:"showInZh"`
	ShowInEn      *bool  `json:"showInEn"`
	ZhTitle       string `json:"zh_title"`
	EnTitle       string `json:"en_title"`
	Cover         string `json:"cover"`
	ZhDescription string `json:"zh_description"`
	EnDescription string `json:"en_description"`
	ZhContent     string `json:"zh_content"`
	EnContent     string `json:"en_content"`
	ZhTags        string `json:"zh_tags"`
	EnTags        string `json:"en_tags"`
	CategoryID    string `json:"categoryId"`
	Status        Status `json:"status" binding:"omitempty,oneof=Active Draft Closed"`
}

// UpdateBlogRequest patches a blog post
type UpdateBlogRequest struct {
	ShowInZh      *bool   `json:"showInZh"`
	ShowInEn      *bool   `json:"showInEn"`
	ZhTitle       *string `json:"zh_title"`
	EnTitle       *string `json:"en_title"`
	Cover         *string `json:"cover"`
	ZhDescription *string `json:"zh_description"`
	EnDescription *string `json:"en_description"`
	ZhContent     *string `json:"zh_content"`
	EnContent     *string `json:"en_content"`
	ZhTags        *string `json:"zh_tags"`
	EnTags        *string `json:"en_tags"`
	CategoryID    *string `json:"categoryId"`
	Status        *Status `json:"status" binding:"omitempty,oneof=Active Draft Closed"`
}

// Apply merges the patch into b and returns the changed columns
func (r *UpdateBlogRequest) Apply(b *Blog) map[string]interface{} {
	fields := map[string]interface{}{}
	applyVisibility(fields, &b.Visibility, r.ShowInZh, r.ShowInEn)
	setStr(fields, "zh_title", &b.ZhTitle, r.ZhTitle)
	setStr(fields, "en_title", &b.EnTitle, r.EnTitle)
	setStr(fields, "cover", &b.Cover, r.Cover)
	setStr(fields, "zh_description", &b.ZhDescription, r.ZhDescription)
	setStr(fields, "en_description", &b.EnDescription, r.EnDescription)
	setStr(fields, "zh_content", &b.ZhContent, r.ZhContent)
	setStr(fields, "en_content", &b.EnContent, r.EnContent)
	setStr(fields, "zh_tags", &b.ZhTags, r.ZhTags)
	setStr(fields, "en_tags", &b.EnTags, r.EnTags)
	setStr(fields, "category_id", &b.CategoryID, r.CategoryID)
	applyStatus(fields, &b.Status, r.Status)
	return fields
}
