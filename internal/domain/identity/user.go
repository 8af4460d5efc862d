package identity

import (
	"strings"
	"time"

	"github.com/bazaar/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// User represents a platform account. Usernames and emails are natural
// keys; the email must belong to one of the supported consumer domains.
// The role reference is required and protects the role from deletion.
type User struct {
	shared.BaseEntity
	Username      string `validate:"required,max=150,username"`
	Email         string `validate:"required,max=255,emaildomain"`
	EmailVerified bool
	PasswordHash  string `validate:"required,max=256"`
	FullName      *string
	BirthDate     time.Time `validate:"required"`
	RoleID        int64     `validate:"required"`
}

// NewUser creates a user with a bcrypt-hashed password
func NewUser(username, email, password string, birthDate time.Time, roleID int64) (*User, error) {
	user := &User{
		BaseEntity: shared.NewBaseEntity(),
		Username:   strings.TrimSpace(username),
		Email:      strings.ToLower(strings.TrimSpace(email)),
		BirthDate:  birthDate,
		RoleID:     roleID,
	}

	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks the user's field rules
func (u *User) Validate() error {
	return shared.ValidateStruct(u)
}

// SetPassword hashes and stores a new password
func (u *User) SetPassword(password string) error {
	if len(password) < 8 {
		return shared.NewValidationError("password", "must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	u.Touch()
	return nil
}

// CheckPassword reports whether the given password matches the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// SetEmail changes the email address and resets verification
func (u *User) SetEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	candidate := *u
	candidate.Email = email
	if err := candidate.Validate(); err != nil {
		return err
	}
	u.Email = email
	u.EmailVerified = false
	u.Touch()
	return nil
}

// VerifyEmail marks the email address as verified
func (u *User) VerifyEmail() {
	u.EmailVerified = true
	u.Touch()
}

// SetFullName sets the optional display name
func (u *User) SetFullName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		u.FullName = nil
	} else {
		u.FullName = &name
	}
	u.Touch()
}
