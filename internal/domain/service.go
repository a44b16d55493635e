package domain

import (
	"time"

	"github.com/cloudpower/site-backend/pkg/i18n"
)

// Service is a product or service offering
// Table: services
type Service struct {
	Model
	Visibility
	Icon          string           `gorm:"column:icon;size:1024" json:"icon"`
	Logo          string           `gorm:"column:logo;size:1024" json:"logo"`
	Cover         string           `gorm:"column:cover;size:1024" json:"cover"`
	ZhTitle       string           `gorm:"column:zh_title;size:255;not null" json:"zh_title"`
	EnTitle       string           `gorm:"column:en_title;size:255;not null" json:"en_title"`
	ZhDescription string           `gorm:"column:zh_description" json:"zh_description"`
	EnDescription string           `gorm:"column:en_description" json:"en_description"`
	ZhContent     string           `gorm:"column:zh_content" json:"zh_content"`
	EnContent     string           `gorm:"column:en_content" json:"en_content"`
	CategoryID    string           `gorm:"column:category_id;type:varchar(36);not null;index" json:"categoryId"`
	Category      *ServiceCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Status        Status           `gorm:"column:status;type:varchar(16);not null;index" json:"status"`
}

func (Service) TableName() string { return "services" }

// ServiceSummary is the public list shape of a service
type ServiceSummary struct {
	ID           string    `json:"id"`
	Icon         string    `json:"icon"`
	Logo         string    `json:"logo"`
	Cover        string    `json:"cover"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	CategoryName *string   `json:"categoryName"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ServiceDetail is the public detail shape of a service
type ServiceDetail struct {
	ID          string       `json:"id"`
	Icon        string       `json:"icon"`
	Logo        string       `json:"logo"`
	Cover       string       `json:"cover"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Content     string       `json:"content"`
	Category    *CategoryRef `json:"category"`
	Status      Status       `json:"status"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// Summarize projects the service onto one language for lists
func (s *Service) Summarize(loc i18n.Locale) ServiceSummary {
	resp := ServiceSummary{
		ID:          s.ID,
		Icon:        s.Icon,
		Logo:        s.Logo,
		Cover:       s.Cover,
		Title:       i18n.Pick(loc, s.ZhTitle, s.EnTitle),
		Description: i18n.Pick(loc, s.ZhDescription, s.EnDescription),
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.Category != nil {
		name := i18n.Pick(loc, s.Category.ZhName, s.Category.EnName)
		resp.CategoryName = &name
	}
	return resp
}

// Localize projects the service onto one language for detail reads
func (s *Service) Localize(loc i18n.Locale) ServiceDetail {
	resp := ServiceDetail{
		ID:          s.ID,
		Icon:        s.Icon,
		Logo:        s.Logo,
		Cover:       s.Cover,
		Title:       i18n.Pick(loc, s.ZhTitle, s.EnTitle),
		Description: i18n.Pick(loc, s.ZhDescription, s.EnDescription),
		Content:     i18n.Pick(loc, s.ZhContent, s.EnContent),
		Status:      s.Status,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.Category != nil {
		ref := s.Category.Localize(loc)
		resp.Category = &ref
	}
	return resp
}

// CreateServiceRequest is the request body for creating a service
type CreateServiceRequest struct {
	ShowInZh      *bool  `json:"showInZh"`
	ShowInEn      *bool  `json:"showInEn"`
	Icon          string `json:"icon"`
	Logo          string `json:"logo"`
	Cover         string `json:"cover"`
	ZhTitle       string `json:"zh_title"`
	EnTitle       string `json:"en_title"`
	ZhDescription string `json:"zh_description"`
	EnDescription string `json:"en_description"`
	ZhContent     string `json:"zh_content"`
	EnContent     string `json:"en_content"`
	CategoryID    string `json:"categoryId"`
	Status        Status `json:"status" binding:"omitempty,oneof=Active Draft Closed"`
}

// UpdateServiceRequest patches a service
type UpdateServiceRequest struct {
	ShowInZh      *bool   `json:"showInZh"`
	ShowInEn      *bool   `json:"showInEn"`
	Icon          *string `json:"icon"`
	Logo          *string `json:"logo"`
	Cover         *string `json:"cover"`
	ZhTitle       *string `json:"zh_title"`
	EnTitle       *string `json:"en_title"`
	ZhDescription *string `json:"zh_description"`
	EnDescription *string `json:"en_description"`
	ZhContent     *string `json:"zh_content"`
	EnContent     *string `json:"en_content"`
	CategoryID    *string `json:"categoryId"`
	Status        *Status `json:"status" binding:"omitempty,oneof=Active Draft Closed"`
}

// Apply merges the patch into s and returns the changed columns
func (r *UpdateServiceRequest) Apply(s *Service) map[string]interface{} {
	fields := map[string]interface{}{}
	applyVisibility(fields, &s.Visibility, r.ShowInZh, r.ShowInEn)
	setStr(fields, "icon", &s.Icon, r.Icon)
	setStr(fields, "logo", &s.Logo, r.Logo)
	setStr(fields, "cover", &s.Cover, r.Cover)
	setStr(fields, "zh_title", &s.ZhTitle, r.ZhTitle)
	setStr(fields, "en_title", &s.EnTitle, r.EnTitle)
	setStr(fields, "zh_description", &s.ZhDescription, r.ZhDescription)
	setStr(fields, "en_description", &s.EnDescription, r.EnDescription)
	setStr(fields, "zh_content", &s.ZhContent, r.ZhContent)
	setStr(fields, "en_content", &s.EnContent, r.EnContent)
	setStr(fields, "category_id", &s.CategoryID, r.CategoryID)
	applyStatus(fields, &s.Status, r.Status)
	return fields
}
