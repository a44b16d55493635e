package domain

// Contact is a message submitted through the public contact form
// Table: contacts
type Contact struct {
	Model
	Name    string `gorm:"column:name;size:255;not null" json:"name"`
	Email   string `gorm:"column:email;size:255;not null" json:"email"`
	Phone   string `gorm:"column:phone;size:64;not null" json:"phone"`
	Message string `gorm:"column:message;not null" json:"message"`
}

func (Contact) TableName() string { return "contacts" }

// CreateContactRequest is the public contact form body
type CreateContactRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email,max=255"`
	Phone   string `json:"phone" binding:"required,max=64"`
	Message string `json:"message" binding:"required,max=5000"`
}
