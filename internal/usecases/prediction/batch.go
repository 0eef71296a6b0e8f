package prediction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
)

// batchPacing пауза между пользователями, держит нагрузку на генерацию ровной
const batchPacing = 100 * time.Millisecond

// BatchResult итог батч-генерации по периоду
type BatchResult struct {
	Total       int
	Succeeded   int
	RateLimited int
	Failed      int
}

// GenerateForActiveSubscribers батч-генерация предсказаний периода для всех
// активных подписчиков. Пользователи обрабатываются по одному; ошибка одного
// не прерывает остальных — каждый исход независим, логируется и считается.
// Отката нет: частичное выполнение — ожидаемое состояние при сбоях апстрима.
func (s *Service) GenerateForActiveSubscribers(ctx context.Context, period domain.Period) (*BatchResult, error) {
	if !period.IsValid() {
		return nil, domain.ErrUnsupportedPeriod
	}

	subscribers, err := s.UserRepo.GetActiveSubscribers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get active subscribers: %w", err)
	}

	s.Log.Info("starting batch prediction generation",
		"period", period,
		"subscribers", len(subscribers),
	)

	result := &BatchResult{Total: len(subscribers)}

	for i, user := range subscribers {
		if i > 0 {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-time.After(batchPacing):
			}
		}

		_, err := s.Generate(ctx, user.ID, period)
		switch {
		case err == nil:
			result.Succeeded++
		case isRateLimited(err):
			// Подписчик уже получил предсказание в этом окне (например,
			// стартовая генерация после покупки) — не ошибка
			result.RateLimited++
		default:
			result.Failed++
			s.Log.Warn("batch prediction failed for user",
				"error", err,
				"user_id", user.ID,
				"period", period,
			)
		}
	}

	s.Log.Info("batch prediction generation completed",
		"period", period,
		"total", result.Total,
		"succeeded", result.Succeeded,
		"rate_limited", result.RateLimited,
		"failed", result.Failed,
	)

	return result, nil
}

// GenerateInitial стартовые предсказания сразу после активации подписки:
// все три периода, каждое первое — бесплатно по политике рейт-лимита.
// Сбой одного периода не прерывает остальные.
func (s *Service) GenerateInitial(ctx context.Context, userID uuid.UUID) (map[domain.Period]*domain.Prediction, error) {
	results := make(map[domain.Period]*domain.Prediction, len(domain.AllPeriods))

	var lastErr error
	for _, period := range domain.AllPeriods {
		record, err := s.Generate(ctx, userID, period)
		if err != nil {
			lastErr = err
			s.Log.Warn("initial prediction failed",
				"error", err,
				"user_id", userID,
				"period", period,
			)
			continue
		}
		results[period] = record
	}

	if len(results) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return results, nil
}

func isRateLimited(err error) bool {
	var rl *domain.RateLimitedError
	return errors.As(err, &rl)
}
