// internal/domain/user.go
package domain

import "time"

// User represents an account holder, identified by tax id.
// BirthDate and Address are kept exactly as the operator typed them.
type User struct {
	TaxID     string    `json:"tax_id"`
	FullName  string    `json:"full_name"`
	BirthDate string    `json:"birth_date"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUser creates a new User instance.
func NewUser(taxID, fullName, birthDate, address string) *User {
	return &User{
		TaxID:     taxID,
		FullName:  fullName,
		BirthDate: birthDate,
		Address:   address,
		CreatedAt: time.Now().UTC(),
	}
}
