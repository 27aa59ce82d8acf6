// Package repositories определяет порты хранения каталога пользователей.
package repositories

import (
	"context"

	"userdir/internal/users/domain/entities"
)

// UserRepository определяет интерфейс для операций хранения записей пользователей.
// Хранилище назначает идентификаторы и время создания.
type UserRepository interface {
	// Create создает запись пользователя; ошибка валидации полей
	// возвращается вызывающей стороне без изменений.
	Create(ctx context.Context, email, name string) (*entities.User, error)

	// FindByID возвращает запись по идентификатору. Отсутствие записи -
	// нормальный результат, а не ошибка: второе значение false.
	FindByID(ctx context.Context, id int) (*entities.User, bool)
}
