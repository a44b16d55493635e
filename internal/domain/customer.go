package domain

import "github.com/cloudpower/site-backend/pkg/i18n"

// Customer is a partner logo shown on the site
// Table: customers
type Customer struct {
	Model
	ZhName    string  `gorm:"column:zh_name;type:varchar(255);not null" json:"zh_name"`
	EnName    string  `gorm:"column:en_name;type:varchar(255);not null" json:"en_name"`
	Logo      string  `gorm:"column:logo;type:varchar(1024);not null" json:"logo"`
	URL       *string `gorm:"column:url;type:varchar(1024)" json:"url"`
	SortOrder int     `gorm:"column:sort_order;not null;index" json:"sortOrder"`
}

// TableName specifies the table name for Customer model
func (Customer) TableName() string {
	return "customers"
}

// CustomerResponse is the public, single-language customer
type CustomerResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Logo string  `json:"logo"`
	URL  *string `json:"url"`
}

// Localize projects the customer onto one language
func (c *Customer) Localize(loc i18n.Locale) CustomerResponse {
	return CustomerResponse{
		ID:   c.ID,
		Name: i18n.Pick(loc, c.ZhName, c.EnName),
		Logo: c.Logo,
		URL:  c.URL,
	}
}

// CreateCustomerRequest is the request body for creating a customer
type CreateCustomerRequest struct {
	ZhName string  `json:"zh_name"`
	EnName string  `json:"en_name"`
	Logo   string  `json:"logo"`
	URL    *string `json:"url" binding:"omitempty,url"`
}

// UpdateCustomerRequest patches a customer
type UpdateCustomerRequest struct {
	ZhName *string `json:"zh_name"`
	EnName *string `json:"en_name"`
	Logo   *string `json:"logo"`
	URL    *string `json:"url" binding:"omitempty,url"`
}

// Apply merges the patch into c and returns the changed columns
func (r *UpdateCustomerRequest) Apply(c *Customer) map[string]interface{} {
	fields := map[string]interface{}{}
	setStr(fields, "zh_name", &c.ZhName, r.ZhName)
	setStr(fields, "en_name", &c.EnName, r.EnName)
	setStr(fields, "logo", &c.Logo, r.Logo)
	setPtr(fields, "url", &c.URL, r.URL)
	return fields
}
