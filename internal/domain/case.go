package domain

import (
	"time"

	"github.com/cloudpower/site-backend/pkg/i18n"
)

// Case is a customer success story
// Table: cases
type Case struct {
	Model
	Visibility
	Cover                string        `gorm:"column:cover;size:1024;not null" json:"cover"`
	CompanyLogo          string        `gorm:"column:company_logo;size:1024;not null" json:"company_logo"`
	ZhCompanyName        string        `gorm:"column:zh_company_name;size:255" json:"zh_company_name"`
	EnCompanyName        string        `gorm:"column:en_company_name;size:255" json:"en_company_name"`
	ZhCompanyDescription string        `gorm:"column:zh_company_description" json:"zh_company_description"`
	EnCompanyDescription string        `gorm:"column:en_company_description" json:"en_company_description"`
	ZhCompanyTitle       string        `gorm:"column:zh_company_title;size:255" json:"zh_company_title"`
	EnCompanyTitle       string        `gorm:"column:en_company_title;size:255" json:"en_company_title"`
	ZhTitle              string        `gorm:"column:zh_title;size:255;not null" json:"zh_title"`
	EnTitle              string        `gorm:"column:en_title;size:255;not null" json:"en_title"`
	ZhDescription        string        `gorm:"column:zh_description" json:"zh_description"`
	EnDescription        string        `gorm:"column:en_description" json:"en_description"`
	ZhTags               string        `gorm:"column:zh_tags;size:512" json:"zh_tags"`
	EnTags               string        `gorm:"column:en_tags;size:512" json:"en_tags"`
	ZhContent            string        `gorm:"column:zh_content" json:"zh_content"`
	EnContent            string        `gorm:"column:en_content" json:"en_content"`
	CategoryID           string        `gorm:"column:category_id;type:varchar(36);not null;index" json:"categoryId"`
	Category             *CaseCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Status               Status        `gorm:"column:status;type:varchar(16);not null;index" json:"status"`
}

func (Case) TableName() string { return "cases" }

// CaseResponse is the public, single-language case study
type CaseResponse struct {
	ID                 string       `json:"id"`
	Title              string       `json:"title"`
	Cover              string       `json:"cover"`
	Description        string       `json:"description"`
	CompanyLogo        string       `json:"company_logo"`
	CompanyName        string       `json:"company_name"`
	CompanyDescription string       `json:"company_description"`
	CompanyTitle       string       `json:"company_title"`
	Category           *CategoryRef `json:"category"`
	Tags               string       `json:"tags"`
	Content            string       `json:"content"`
	Status             Status       `json:"status"`
	UpdatedAt          time.Time    `json:"updatedAt"`
}

// Localize projects the case onto one language
func (c *Case) Localize(loc i18n.Locale) CaseResponse {
	resp := CaseResponse{
		ID:                 c.ID,
		Title:              i18n.Pick(loc, c.ZhTitle, c.EnTitle),
		Cover:              c.Cover,
		Description:        i18n.Pick(loc, c.ZhDescription, c.EnDescription),
		CompanyLogo:        c.CompanyLogo,
		CompanyName:        i18n.Pick(loc, c.ZhCompanyName, c.EnCompanyName),
		CompanyDescription: i18n.Pick(loc, c.ZhCompanyDescription, c.EnCompanyDescription),
		CompanyTitle:       i18n.Pick(loc, c.ZhCompanyTitle, c.EnCompanyTitle),
		Tags:               i18n.Pick(loc, c.ZhTags, c.EnTags),
		Content:            i18n.Pick(loc, c.ZhContent, c.EnContent),
		Status:             c.Status,
		UpdatedAt:          c.UpdatedAt,
	}
	if c.Category != nil {
		ref := c.Category.Localize(loc)
		resp.Category = &ref
	}
	return resp
}

// CreateCaseRequest is the request body for creating a case
type CreateCaseRequest struct {
	ShowInZh             *bool  `json:"showInZh"`
	ShowInEn             *bool  `json:"showInEn"`
	Cover                string `json:"cover"`
	CompanyLogo          string `json:"company_logo"`
	ZhCompanyName        string `json:"zh_company_name"`
	EnCompanyName        string `json:"en_company_name"`
	ZhCompanyDescription string `json:"zh_company_description"`
	EnCompanyDescription string `json:"en_company_description"`
	ZhCompanyTitle       string `json:"zh_company_title"`
	EnCompanyTitle       string `json:"en_company_title"`
	ZhTitle              string `json:"zh_title"`
	EnTitle              string `json:"en_title"`
	ZhDescription        string `json:"zh_description"`
	EnDescription        string `json:"en_description"`
	ZhTags               string `json:"zh_tags"`
	EnTags               string `json:"en_tags"`
	ZhContent            string `json:"zh_content"`
	EnContent            string `json:"en_content"`
	CategoryID           string `json:"categoryId"`
	Status               Status `json:"status" binding:"omitempty,oneof=Active Draft Closed"`
}

// UpdateCaseRequest patches a case
type UpdateCaseRequest struct {
	ShowInZh             *bool   `json:"showInZh"`
	ShowInEn             *bool   `json:"showInEn"`
	Cover                *string `json:"cover"`
	CompanyLogo          *string `json:"company_logo"`
	ZhCompanyName        *string `json:"zh_company_name"`
	EnCompanyName        *string `json:"en_company_name"`
	ZhCompanyDescription *string `json:"zh_company_description"`
	EnCompanyDescription *string `json:"en_company_description"`
	ZhCompanyTitle       *string `json:"zh_company_title"`
	EnCompanyTitle       *string `json:"en_company_title"`
	ZhTitle              *string `json:"zh_title"`
	EnTitle              *string `json:"en_title"`
	ZhDescription        *string `json:"zh_description"`
	EnDescription        *string `json:"en_description"`
	ZhTags               *string `json:"zh_tags"`
	EnTags               *string `json:"en_tags"`
	ZhContent            *string `json:"zh_content"`
	EnContent            *string `json:"en_content"`
	CategoryID           *string `json:"categoryId"`
	Status               *Status `json:"status" binding:"omitempty,oneof=Active Draft Closed"`
}

// Apply merges the patch into c and returns the changed columns
func (r *UpdateCaseRequest) Apply(c *Case) map[string]interface{} {
	fields := map[string]interface{}{}
	applyVisibility(fields, &c.Visibility, r.ShowInZh, r.ShowInEn)
	setStr(fields, "cover", &c.Cover, r.Cover)
	setStr(fields, "company_logo", &c.CompanyLogo, r.CompanyLogo)
	setStr(fields, "zh_company_name", &c.ZhCompanyName, r.ZhCompanyName)
	setStr(fields, "en_company_name", &c.EnCompanyName, r.EnCompanyName)
	setStr(fields, "zh_company_description", &c.ZhCompanyDescription, r.ZhCompanyDescription)
	setStr(fields, "en_company_description", &c.EnCompanyDescription, r.EnCompanyDescription)
	setStr(fields, "zh_company_title", &c.ZhCompanyTitle, r.ZhCompanyTitle)
	setStr(fields, "en_company_title", &c.EnCompanyTitle, r.EnCompanyTitle)
	setStr(fields, "zh_title", &c.ZhTitle, r.ZhTitle)
	setStr(fields, "en_title", &c.EnTitle, r.EnTitle)
	setStr(fields, "zh_description", &c.ZhDescription, r.ZhDescription)
	setStr(fields, "en_description", &c.EnDescription, r.EnDescription)
	setStr(fields, "zh_tags", &c.ZhTags, r.ZhTags)
	setStr(fields, "en_tags", &c.EnTags, r.EnTags)
	setStr(fields, "zh_content", &c.ZhContent, r.ZhContent)
	setStr(fields, "en_content", &c.EnContent, r.EnContent)
	setStr(fields, "category_id", &c.CategoryID, r.CategoryID)
	applyStatus(fields, &c.Status, r.Status)
	return fields
}
