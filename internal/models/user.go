package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"jobboard/internal/credentials"
)

type Role string

const (
	RoleJobSeeker Role = "Job Seeker"
	RoleEmployer  Role = "Employer"
)

func (r Role) Valid() bool {
	return r == RoleJobSeeker || r == RoleEmployer
}

var ErrPasswordRequired = errors.New("password required")

// User is an account record. Password holds the bcrypt hash and is never
// serialized.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:30;not null" json:"name"`
	Email     string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Phone     string    `gorm:"size:20;not null" json:"phone"`
	Password  string    `gorm:"not null" json:"-"`
	Role      Role      `gorm:"size:20;not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUser hashes the plaintext password before the entity exists; a User is
// never constructed holding plaintext. Rows loaded from the store already
// carry a hash and never pass through here again, so nothing re-hashes an
// unchanged credential.
func NewUser(name, email, phone, password string, role Role) (*User, error) {
	if password == "" {
		return nil, ErrPasswordRequired
	}
	hash, err := credentials.HashPassword(password)
	if err != nil {
		return nil, err
	}
	return &User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Phone:    phone,
		Password: hash,
		Role:     role,
	}, nil
}
