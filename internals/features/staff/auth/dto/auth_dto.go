package dto

// 🔹 Request pendaftaran akun staff baru
type RegisterStaffRequest struct {
	Username string `json:"username" validate:"required,max=255"`
	Email    string `json:"email" validate:"required,email,max=255"`
}

// 🔹 Request minta link login (username atau email)
type RequestLoginRequest struct {
	Identifier string `json:"identifier" validate:"required,max=255"`
}
