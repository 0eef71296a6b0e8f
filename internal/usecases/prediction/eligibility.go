package prediction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
)

// CheckEligibility проверяет, можно ли сгенерировать новое предсказание
// данного периода. Первая генерация всегда разрешена ("first is free"),
// последующие — не раньше createdAt последней записи + интервал периода.
func (s *Service) CheckEligibility(ctx context.Context, userID uuid.UUID, period domain.Period) (*domain.Eligibility, error) {
	if !period.IsValid() {
		return nil, domain.ErrUnsupportedPeriod
	}

	latest, err := s.PredictionRepo.GetLatest(ctx, userID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest prediction: %w", err)
	}

	if latest == nil {
		return &domain.Eligibility{
			CanGenerate: true,
			IsFirst:     true,
			WindowStart: domain.WindowEpoch,
		}, nil
	}

	// Граница окна детерминирована от предыдущей записи: конкурирующие
	// вызовы, прочитавшие одно и то же состояние, вычисляют один ключ,
	// и уникальный индекс по (user, period, window_start) пропустит одну вставку
	nextAvailableAt := latest.CreatedAt.Add(period.Interval())
	return &domain.Eligibility{
		CanGenerate:     !s.now().Before(nextAvailableAt),
		IsFirst:         false,
		NextAvailableAt: &nextAvailableAt,
		WindowStart:     nextAvailableAt,
	}, nil
}
