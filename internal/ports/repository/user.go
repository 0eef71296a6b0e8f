package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
)

// IUserRepo репозиторий профилей. Ядро не пишет поля профиля, кроме
// одноразового дозаполнения времени рождения.
type IUserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// SetBirthTime одноразовый переход Incomplete -> Complete: обновляет
	// только отсутствующее время рождения, любое другое изменение отклоняется
	SetBirthTime(ctx context.Context, id uuid.UUID, birthTime string) error
	// GetActiveSubscribers все пользователи с активной подпиской для батч-генерации
	GetActiveSubscribers(ctx context.Context) ([]*domain.User, error)
}
