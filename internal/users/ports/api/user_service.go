// Package api определяет порты прикладного уровня каталога пользователей.
package api

import (
	"context"

	"userdir/internal/users/domain/entities"
)

// UserUseCase определяет основной порт для пользовательских операций.
type UserUseCase interface {
	// CreateUser создает пользователя с автоматически назначаемым
	// идентификатором.
	CreateUser(ctx context.Context, email, name string) (*entities.User, error)

	// GetUserByID возвращает пользователя по идентификатору;
	// false означает отсутствие записи.
	GetUserByID(ctx context.Context, id int) (*entities.User, bool)
}
