package domain

import (
	"time"

	"github.com/cloudpower/site-backend/pkg/i18n"
)

// News is a dated announcement
// Table: news
type News struct {
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
	Category      *NewsCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	StartDateTime *time.Time    `gorm:"column:start_date_time" json:"startDateTime"`
	EndDateTime   *time.Time    `gorm:"column:end_date_time" json:"endDateTime"`
	Status        Status        `gorm:"column:status;type:varchar(16);not null;index" json:"status"`
}

func (News) TableName() string { return "news" }

// NewsResponse is the public, single-language news item.
// Content is only set on detail reads.
type NewsResponse struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Cover         string       `json:"cover"`
	Description   string       `json:"description"`
	Category      *CategoryRef `json:"category"`
	Tags          string       `json:"tags"`
	StartDateTime *time.Time   `json:"startDateTime"`
	EndDateTime   *time.Time   `json:"endDateTime"`
	Status        Status       `json:"status"`
	UpdatedAt     time.Time    `json:"updatedAt"`
	Content       *string      `json:"content,omitempty"`
}

// Localize projects the news item onto one language
func (n *News) Localize(loc i18n.Locale, withContent bool) NewsResponse {
	resp := NewsResponse{
		ID:            n.ID,
		Title:         i18n.Pick(loc, n.ZhTitle, n.EnTitle),
		Cover:         n.Cover,
		Description:   i18n.Pick(loc, n.ZhDescription, n.EnDescription),
		Tags:          i18n.Pick(loc, n.ZhTags, n.EnTags),
		StartDateTime: n.StartDateTime,
		EndDateTime:   n.EndDateTime,
		Status:        n.Status,
		UpdatedAt:     n.UpdatedAt,
	}
	if n.Category != nil {
		ref := n.Category.Localize(loc)
		resp.Category = &ref
	}
	if withContent {
		content := i18n.Pick(loc, n.ZhContent, n.EnContent)
		resp.Content = &content
	}
	return resp
}

// CreateNewsRequest is the request body for creating news
type CreateNewsRequest struct {
	ShowInZh      *bool      `json:"showInZh"`
	ShowInEn      *bool      `json:"showInEn"`
	ZhTitle       string     `json:"zh_title"`
	EnTitle       string     `json:"en_title"`
	Cover         string     `json:"cover"`
	ZhDescription string     `json:"zh_description"`
	EnDescription string     `json:"en_description"`
	ZhContent     string     `json:"zh_content"`
	EnContent     string     `json:"en_content"`
	ZhTags        string     `json:"zh_tags"`
	EnTags        string     `json:"en_tags"`
	CategoryID    string     `json:"categoryId"`
	StartDateTime *time.Time `json:"startDateTime"`
	EndDateTime   *time.Time `json:"endDateTime"`
	Status        Status     `json:"status" binding:"omitempty,oneof=Active Draft Closed"`
}

// UpdateNewsRequest patches news
type UpdateNewsRequest struct {
	ShowInZh      *bool      `json:"showInZh"`
	ShowInEn      *bool      `json:"showInEn"`
	ZhTitle       *string    `json:"zh_title"`
	EnTitle       *string    `json:"en_title"`
	Cover         *string    `json:"cover"`
	ZhDescription *string    `json:"zh_description"`
	EnDescription *string    `json:"en_description"`
	ZhContent     *string    `json:"zh_content"`
	EnContent     *string    `json:"en_content"`
	ZhTags        *string    `json:"zh_tags"`
	EnTags        *string    `json:"en_tags"`
	CategoryID    *string    `json:"categoryId"`
	StartDateTime *time.Time `json:"startDateTime"`
	EndDateTime   *time.Time `json:"endDateTime"`
	Status        *Status    `json:"status" binding:"omitempty,oneof=Active Draft Closed"`
}

// Apply merges the patch into n and returns the changed columns
func (r *UpdateNewsRequest) Apply(n *News) map[string]interface{} {
	fields := map[string]interface{}{}
	applyVisibility(fields, &n.Visibility, r.ShowInZh, r.ShowInEn)
	setStr(fields, "zh_title", &n.ZhTitle, r.ZhTitle)
	setStr(fields, "en_title", &n.EnTitle, r.EnTitle)
	setStr(fields, "cover", &n.Cover, r.Cover)
	setStr(fields, "zh_description", &n.ZhDescription, r.ZhDescription)
	setStr(fields, "en_description", &n.EnDescription, r.EnDescription)
	setStr(fields, "zh_content", &n.ZhContent, r.ZhContent)
	setStr(fields, "en_content", &n.EnContent, r.EnContent)
	setStr(fields, "zh_tags", &n.ZhTags, r.ZhTags)
	setStr(fields, "en_tags", &n.EnTags, r.EnTags)
	setStr(fields, "category_id", &n.CategoryID, r.CategoryID)
	if r.StartDateTime != nil {
		n.StartDateTime = r.StartDateTime
		fields["start_date_time"] = *r.StartDateTime
	}
	if r.EndDateTime != nil {
		n.EndDateTime = r.EndDateTime
		fields["end_date_time"] = *r.EndDateTime
	}
	applyStatus(fields, &n.Status, r.Status)
	return fields
}

func applyVisibility(fields map[string]interface{}, v *Visibility, zh, en *bool) {
	if zh != nil {
		v.ShowInZh = *zh
		fields["show_in_zh"] = *zh
	}
	if en != nil {
		v.ShowInEn = *en
		fields["show_in_en"] = *en
	}
}

func applyStatus(fields map[string]interface{}, dst *Status, s *Status) {
	if s == nil {
		return
	}
	*dst = *s
	fields["status"] = *s
}
