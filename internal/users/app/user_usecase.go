// Package app реализует прикладные сценарии каталога пользователей.
package app

import (
	"context"

	"go.uber.org/zap"

	"userdir/internal/users/domain/entities"
	"userdir/internal/users/ports/api"
	"userdir/internal/users/ports/repositories"
	"userdir/pkg/logger"
)

const (
	methodCreateUser  = "CreateUser"
	methodGetUserByID = "GetUserByID"

	msgCreatingUser  = "creating user"
	msgUserCreated   = "user created successfully"
	msgRequestingID  = "requesting user by id"
	msgUserFound     = "user found"
	msgUserAbsent    = "user not found"
	msgErrCreateUser = "failed to create user"
)

// UserUseCaseImpl реализует интерфейс UserUseCase.
type UserUseCaseImpl struct {
	userRepo repositories.UserRepository
}

// NewUserUseCase создает новый экземпляр сервиса пользователей.
func NewUserUseCase(userRepo repositories.UserRepository) api.UserUseCase {
	return &UserUseCaseImpl{
		userRepo: userRepo,
	}
}

// CreateUser создает пользователя с автоматически назначаемым идентификатором.
// Ошибка валидации из конструктора записи возвращается вызывающей стороне
// без оборачивания: неуспешное создание не меняет состояние каталога.
func (u *UserUseCaseImpl) CreateUser(ctx context.Context, email, name string) (*entities.User, error) {
	log := logger.Log(ctx).With(zap.String("method", methodCreateUser), zap.String("email", email))
	log.Debug(ctx, msgCreatingUser)

	user, err := u.userRepo.Create(ctx, email, name)
	if err != nil {
		log.Debug(ctx, msgErrCreateUser, zap.Error(err))
		return nil, err
	}

	log.Info(ctx, msgUserCreated, zap.Int("id", user.ID))
	return user, nil
}

// GetUserByID получает пользователя по идентификатору. Отсутствие записи -
// нормальный результат: возвращается (nil, false) без ошибки.
func (u *UserUseCaseImpl) GetUserByID(ctx context.Context, id int) (*entities.User, bool) {
	log := logger.Log(ctx).With(zap.String("method", methodGetUserByID), zap.Int("id", id))
	log.Debug(ctx, msgRequestingID)

	user, ok := u.userRepo.FindByID(ctx, id)
	if !ok {
		log.Debug(ctx, msgUserAbsent)
		return nil, false
	}

	log.Debug(ctx, msgUserFound)
	return user, true
}
