package constants

// Role pengguna di seluruh aplikasi
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// AllowedRoles: role yang boleh mengakses endpoint user biasa
var AllowedRoles = []string{RoleUser, RoleAdmin}

// AdminOnly: role yang boleh mengakses back-office
var AdminOnly = []string{RoleAdmin}
