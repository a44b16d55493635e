package domain

import "github.com/cloudpower/site-backend/pkg/i18n"

// CompanyInfo is the singleton company contact block
// Table: company_infos
type CompanyInfo struct {
	Model
	ZhAddress     string `gorm:"column:zh_address;size:512" json:"zh_address"`
	EnAddress     string `gorm:"column:en_address;size:512" json:"en_address"`
	ZhPhone       string `gorm:"column:zh_phone;size:64" json:"zh_phone"`
	EnPhone       string `gorm:"column:en_phone;size:64" json:"en_phone"`
	ZhEmail       string `gorm:"column:zh_email;size:255" json:"zh_email"`
	EnEmail       string `gorm:"column:en_email;size:255" json:"en_email"`
	ZhOpeningTime string `gorm:"column:zh_opening_time;size:255" json:"zh_opening_time"`
	EnOpeningTime string `gorm:"column:en_opening_time;size:255" json:"en_opening_time"`
}

func (CompanyInfo) TableName() string { return "company_infos" }

// CompanyInfoResponse is the public, single-language company info
type CompanyInfoResponse struct {
	ID          string `json:"id"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	OpeningTime string `json:"opening_time"`
}

// Localize projects the company info onto one language
func (c CompanyInfo) Localize(loc i18n.Locale) CompanyInfoResponse {
	return CompanyInfoResponse{
		ID:          c.ID,
		Address:     i18n.Pick(loc, c.ZhAddress, c.EnAddress),
		Phone:       i18n.Pick(loc, c.ZhPhone, c.EnPhone),
		Email:       i18n.Pick(loc, c.ZhEmail, c.EnEmail),
		OpeningTime: i18n.Pick(loc, c.ZhOpeningTime, c.EnOpeningTime),
	}
}

// UpdateCompanyInfoRequest patches company info
type UpdateCompanyInfoRequest struct {
	ZhAddress     *string `json:"zh_address"`
	EnAddress     *string `json:"en_address"`
	ZhPhone       *string `json:"zh_phone"`
	EnPhone       *string `json:"en_phone"`
	ZhEmail       *string `json:"zh_email" binding:"omitempty,email"`
	EnEmail       *string `json:"en_email" binding:"omitempty,email"`
	ZhOpeningTime *string `json:"zh_opening_time"`
	EnOpeningTime *string `json:"en_opening_time"`
}

// Fields returns the changed columns
func (r *UpdateCompanyInfoRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	putStr(fields, "zh_address", r.ZhAddress)
	putStr(fields, "en_address", r.EnAddress)
	putStr(fields, "zh_phone", r.ZhPhone)
	putStr(fields, "en_phone", r.EnPhone)
	putStr(fields, "zh_email", r.ZhEmail)
	putStr(fields, "en_email", r.EnEmail)
	putStr(fields, "zh_opening_time", r.ZhOpeningTime)
	putStr(fields, "en_opening_time", r.EnOpeningTime)
	return fields
}
