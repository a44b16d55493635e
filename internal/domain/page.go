package domain

import "github.com/cloudpower/site-backend/pkg/i18n"

// RichText is a bilingual HTML body
type RichText struct {
	ZhContent string `gorm:"column:zh_content" json:"zh_content"`
	EnContent string `gorm:"column:en_content" json:"en_content"`
}

// PageResponse is the public, single-language page
type PageResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// About is the singleton "about us" page
// Table: abouts
type About struct {
	Model
	RichText
}

func (About) TableName() string { return "abouts" }

// Localize projects the page onto one language
func (a About) Localize(loc i18n.Locale) PageResponse {
	return PageResponse{ID: a.ID, Content: i18n.Pick(loc, a.ZhContent, a.EnContent)}
}

// PrivacyPolicy is the singleton privacy policy page
// Table: privacy_policies
type PrivacyPolicy struct {
	Model
	RichText
}

func (PrivacyPolicy) TableName() string { return "privacy_policies" }

// Localize projects the page onto one language
func (p PrivacyPolicy) Localize(loc i18n.Locale) PageResponse {
	return PageResponse{ID: p.ID, Content: i18n.Pick(loc, p.ZhContent, p.EnContent)}
}

// UpdatePageRequest patches a singleton page
type UpdatePageRequest struct {
	ZhContent *string `json:"zh_content"`
	EnContent *string `json:"en_content"`
}

// Fields returns the changed columns
func (r *UpdatePageRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	putStr(fields, "zh_content", r.ZhContent)
	putStr(fields, "en_content", r.EnContent)
	return fields
}
