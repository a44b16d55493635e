package domain

import "github.com/cloudpower/site-backend/pkg/i18n"

// BannerType is the media kind of a banner
type BannerType string

const (
	BannerTypeImage BannerType = "IMAGE"
	BannerTypeVideo BannerType = "VIDEO"
)

// Valid reports whether t is a known banner type
func (t BannerType) Valid() bool {
	return t == BannerTypeImage || t == BannerTypeVideo
}

// Banner is a home page carousel slide
// Table: banners
type Banner struct {
	Model
	Visibility
	ZhImage   *string    `gorm:"column:zh_image;type:varchar(1024)" json:"zh_image"`
	ZhURL     *string    `gorm:"column:zh_url;type:varchar(1024)" json:"zh_url"`
	ZhLink    *string    `gorm:"column:zh_link;type:varchar(1024)" json:"zh_link"`
	EnImage   *string    `gorm:"column:en_image;type:varchar(1024)" json:"en_image"`
	EnURL     *string    `gorm:"column:en_url;type:varchar(1024)" json:"en_url"`
	EnLink    *string    `gorm:"column:en_link;type:varchar(1024)" json:"en_link"`
	Duration  int        `gorm:"column:duration;not null" json:"duration"`
	Type      BannerType `gorm:"column:type;type:varchar(16);not null" json:"type"`
	SortOrder int        `gorm:"column:sort_order;not null;index" json:"sortOrder"`
}

// TableName specifies the table name for Banner model
func (Banner) TableName() string {
	return "banners"
}

// BannerResponse is the public, single-language banner
type BannerResponse struct {
	ID       string     `json:"id"`
	Image    *string    `json:"image"`
	URL      *string    `json:"url"`
	Link     *string    `json:"link"`
	Duration int        `json:"duration"`
	Type     BannerType `json:"type"`
}

// Localize projects the banner onto one language
func (b *Banner) Localize(loc i18n.Locale) BannerResponse {
	return BannerResponse{
		ID:       b.ID,
		Image:    i18n.Pick(loc, b.ZhImage, b.EnImage),
		URL:      i18n.Pick(loc, b.ZhURL, b.EnURL),
		Link:     i18n.Pick(loc, b.ZhLink, b.EnLink),
		Duration: b.Duration,
		Type:     b.Type,
	}
}

// CreateBannerRequest is the request body for creating a banner
type CreateBannerRequest struct {
	ShowInZh *bool      `json:"showInZh"`
	ShowInEn *bool      `json:"showInEn"`
	ZhImage  *string    `json:"zh_image"`
	ZhURL    *string    `json:"zh_url"`
	ZhLink   *string    `json:"zh_link"`
	EnImage  *string    `json:"en_image"`
	EnURL    *string    `json:"en_url"`
	EnLink   *string    `json:"en_link"`
	Duration *int       `json:"duration" binding:"omitempty,min=1"`
	Type     BannerType `json:"type" binding:"required,oneof=IMAGE VIDEO"`
}

// UpdateBannerRequest is the request body for patching a banner.
// Nil fields are left untouched.
type UpdateBannerRequest struct {
	ShowInZh *bool       `json:"showInZh"`
	ShowInEn *bool       `json:"showInEn"`
	ZhImage  *string     `json:"zh_image"`
	ZhURL    *string     `json:"zh_url"`
	ZhLink   *string     `json:"zh_link"`
	EnImage  *string     `json:"en_image"`
	EnURL    *string     `json:"en_url"`
	EnLink   *string     `json:"en_link"`
	Duration *int        `json:"duration" binding:"omitempty,min=1"`
	Type     *BannerType `json:"type" binding:"omitempty,oneof=IMAGE VIDEO"`
}

// Apply merges the patch into b and returns the changed columns
func (r *UpdateBannerRequest) Apply(b *Banner) map[string]interface{} {
	fields := map[string]interface{}{}
	applyVisibility(fields, &b.Visibility, r.ShowInZh, r.ShowInEn)
	setPtr(fields, "zh_image", &b.ZhImage, r.ZhImage)
	setPtr(fields, "zh_url", &b.ZhURL, r.ZhURL)
	setPtr(fields, "zh_link", &b.ZhLink, r.ZhLink)
	setPtr(fields, "en_image", &b.EnImage, r.EnImage)
	setPtr(fields, "en_url", &b.EnURL, r.EnURL)
	setPtr(fields, "en_link", &b.EnLink, r.EnLink)
	if r.Duration != nil {
		b.Duration = *r.Duration
		fields["duration"] = b.Duration
	}
	if r.Type != nil {
		b.Type = *r.Type
		fields["type"] = b.Type
	}
	return fields
}

func setPtr(fields map[string]interface{}, column string, dst **string, v *string) {
	if v == nil {
		return
	}
	*dst = v
	fields[column] = *v
}

func setStr(fields map[string]interface{}, column string, dst *string, v *string) {
	if v == nil {
		return
	}
	*dst = *v
	fields[column] = *v
}

func putStr(fields map[string]interface{}, column string, v *string) {
	if v != nil {
		fields[column] = *v
	}
}
