// Package entities содержит доменные сущности каталога пользователей.
package entities

import (
	"errors"
	"strings"
	"time"
)

// Определяем ошибки домена пользователя как константы.
var (
	ErrEmptyEmail   = errors.New("missing email")
	ErrInvalidEmail = errors.New("invalid email format")
)

// User представляет основную сущность домена пользователя.
// После конструирования запись не изменяется.
type User struct {
	ID        int
	Email     string
	Name      string
	CreatedAt time.Time
}

// NewUser создает запись пользователя с проверкой полей.
// Email проверяется в порядке: сначала на пустоту, затем на наличие '@'.
// ID и CreatedAt принимаются как есть - их назначает каталог.
func NewUser(id int, email, name string, createdAt time.Time) (*User, error) {
	if email == "" {
		return nil, ErrEmptyEmail
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	return &User{
		ID:        id,
		Email:     email,
		Name:      name,
		CreatedAt: createdAt,
	}, nil
}
