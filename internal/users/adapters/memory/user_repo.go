// Package memory реализует хранение каталога пользователей в памяти процесса.
package memory

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"userdir/internal/users/domain/entities"
	"userdir/internal/users/ports/repositories"
	"userdir/pkg/logger"
)

// UserRepository реализует интерфейс repositories.UserRepository
// поверх упорядоченного среза записей. Все операции сериализуются
// одним мьютексом: вычисление идентификатора по текущему размеру
// с последующим добавлением небезопасно при конкурентном доступе.
type UserRepository struct {
	mu    sync.Mutex
	users []*entities.User
}

// NewUserRepository создает пустой репозиторий пользователей.
func NewUserRepository() repositories.UserRepository {
	return &UserRepository{}
}

// Create создает нового пользователя. Идентификатор выводится из текущего
// количества записей: операции удаления нет, поэтому идентификаторы
// не повторяются.
func (r *UserRepository) Create(ctx context.Context, email, name string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "Create"))

	r.mu.Lock()
	defer r.mu.Unlock()

	id := len(r.users) + 1
	user, err := entities.NewUser(id, email, name, time.Now())
	if err != nil {
		log.Debug(ctx, "user validation failed", zap.Error(err))
		return nil, err
	}

	r.users = append(r.users, user)
	log.Debug(ctx, "user created", zap.Int("id", user.ID))

	return user, nil
}

// FindByID находит пользователя по идентификатору линейным проходом
// в порядке добавления.
func (r *UserRepository) FindByID(ctx context.Context, id int) (*entities.User, bool) {
	log := logger.Log(ctx).With(zap.String("repository", "user"), zap.String("method", "FindByID"))

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			return user, true
		}
	}

	log.Debug(ctx, "user not found", zap.Int("id", id))
	return nil, false
}
