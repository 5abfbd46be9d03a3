package domain

import (
	"errors"
	"regexp"

	"github.com/google/uuid"
	"github.com/nbutton23/zxcvbn-go"
	"golang.org/x/crypto/bcrypt"
)

const (
	minPasswordStrengthScore = 3

	usernamePattern   = `^[a-zA-Z0-9_]+$` // Alphanumeric with underscores
	minUsernameLength = 3
	maxUsernameLength = 20

	passwordHashCost = 12
)

var (
	usernameRegex = regexp.MustCompile(usernamePattern)

	ErrUsernameTooShort = errors.New("username too short")
	ErrUsernameTooLong  = errors.New("username too long")
	ErrUsernameFormat   = errors.New("invalid username format")
	ErrWeakPassword     = errors.New("weak password")
)

// Operator is an account allowed to request plans.
type Operator struct {
	ID           uuid.UUID `bson:"_id"`
	Username     string    `bson:"username"`
	PasswordHash string    `bson:"passwordHash"`
}

// OperatorConfig holds parameters for creating an Operator.
type OperatorConfig struct {
	ID            uuid.UUID
	Username      string
	PlainPassword string
}

// NewOperator validates the credentials and hashes the password.
func NewOperator(config OperatorConfig) (*Operator, error) {
	if err := validateUsername(config.Username); err != nil {
		return nil, err
	}

	if err := validatePassword(config.PlainPassword); err != nil {
		return nil, err
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(config.PlainPassword), passwordHashCost)
	if err != nil {
		return nil, err
	}

	return &Operator{
		ID:           config.ID,
		Username:     config.Username,
		PasswordHash: string(passwordHash),
	}, nil
}

// VerifyPassword verifies if the given password matches the stored hash.
func (o *Operator) VerifyPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password)) == nil
}

func validateUsername(username string) error {
	if len(username) < minUsernameLength {
		return ErrUsernameTooShort
	}
	if len(username) > maxUsernameLength {
		return ErrUsernameTooLong
	}
	if !usernameRegex.MatchString(username) {
		return ErrUsernameFormat
	}
	return nil
}

func validatePassword(password string) error {
	if zxcvbn.PasswordStrength(password, nil).Score < minPasswordStrengthScore {
		return ErrWeakPassword
	}
	return nil
}
