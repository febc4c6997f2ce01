package model

// Usuario is an administrator credential record. Rows are created and
// updated only by the offline provisioning utility, never via the API.
type Usuario struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Nombre   string `json:"nombre" gorm:"size:255"`
	Email    string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Password string `json:"-" gorm:"size:255;not null"` // bcrypt hash, never exposed
}
