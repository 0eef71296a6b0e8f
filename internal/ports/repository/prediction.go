package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
)

// IPredictionRepo хранилище предсказаний. Ядру нужны ровно два паттерна
// доступа: последняя запись для (user, period) и вся история newest-first.
type IPredictionRepo interface {
	Create(ctx context.Context, prediction *domain.Prediction) error
	// GetLatest последняя запись для пары (user, period), nil если записей нет
	GetLatest(ctx context.Context, userID uuid.UUID, period domain.Period) (*domain.Prediction, error)
	// ListByUser вся история пользователя, новые первыми
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Prediction, error)
}
