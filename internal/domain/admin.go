package domain

// Admin is a back office account
// Table: admins
type Admin struct {
	Model
	Account  string `gorm:"column:account;size:100;not null;uniqueIndex" json:"account"`
	Name     string `gorm:"column:name;size:100;not null" json:"name"`
	Password string `gorm:"column:password;size:255;not null" json:"-"`
	Avatar   string `gorm:"column:avatar;size:1024" json:"avatar"`
}

func (Admin) TableName() string { return "admins" }

// AdminProfile is the admin without credentials or timestamps
type AdminProfile struct {
	ID      string `json:"id"`
	Account string `json:"account"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
}

// Profile returns the public view of the admin
func (a *Admin) Profile() AdminProfile {
	return AdminProfile{ID: a.ID, Account: a.Account, Name: a.Name, Avatar: a.Avatar}
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Account  string `json:"account" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

// UpdateAdminRequest patches the current admin
type UpdateAdminRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=100"`
	Account *string `json:"account" binding:"omitempty,min=1,max=100"`
	Avatar  *string `json:"avatar" binding:"omitempty,max=1024"`
}

// ChangePasswordRequest is the body of PUT /admin/me/password
type ChangePasswordRequest struct {
	OldPassword     string `json:"oldPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,min=6"`
}

// UploadResponse is the result of POST /files/upload
type UploadResponse struct {
	URL string `json:"url"`
}
