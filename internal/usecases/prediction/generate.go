package prediction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
	"github.com/KangasCode/nous-paradeigma/internal/services/astrology"
	"github.com/KangasCode/nous-paradeigma/internal/services/prompt"
)

// Generate генерирует и сохраняет одно предсказание для пары (user, period).
// Мьютекс по ключу держится от проверки рейт-лимита до вставки: не больше
// одной успешной записи на окно даже при конкурентных вызовах. При любой
// ошибке генерации запись не создаётся и текст не фабрикуется.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID, period domain.Period) (*domain.Prediction, error) {
	if !period.IsValid() {
		return nil, domain.ErrUnsupportedPeriod
	}

	unlock := s.locks.lock(userID, period)
	defer unlock()

	eligibility, err := s.CheckEligibility(ctx, userID, period)
	if err != nil {
		return nil, err
	}
	if !eligibility.CanGenerate {
		return nil, &domain.RateLimitedError{
			Period:          period,
			NextAvailableAt: *eligibility.NextAvailableAt,
		}
	}

	user, err := s.UserRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !user.ZodiacSign.IsValid() {
		s.Log.Warn("user has no zodiac sign, skipping prediction",
			"user_id", userID,
		)
		return nil, domain.ErrInvalidBirthDate
	}

	now := s.now()

	// Карты и аспекты: детерминированные входы генерации
	natal := s.Charts.ComputeNatalChart(ctx, user.BirthDate, user.BirthTime, user.BirthCity, user.TimezoneOffset)
	transits := s.Charts.ComputeTransitChart(ctx, now)
	aspects := astrology.ComputeAspects(natal.Positions, transits.Positions)

	if natal.IsMock() || transits.IsMock() {
		s.Log.Warn("prediction uses mock chart data",
			"user_id", userID,
			"natal_source", natal.Source,
			"transit_source", transits.Source,
		)
	}

	lastName := ""
	if user.LastName != nil {
		lastName = *user.LastName
	}

	promptText, err := prompt.Assemble(prompt.Input{
		ZodiacSign: user.ZodiacSign, // всегда из профиля, никогда из запроса
		Period:     period,
		Natal:      natal,
		Transits:   transits,
		Aspects:    aspects,
		FirstName:  user.FirstName,
		LastName:   lastName,
		Language:   user.Language.OrDefault(),
		AgeYears:   user.Age(now),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to assemble prompt: %w", err)
	}

	content, err := s.Generator.Generate(ctx, promptText)
	if err != nil {
		s.Log.Error("prediction generation failed",
			"error", err,
			"user_id", userID,
			"period", period,
		)
		// Уже залогировано здесь, контроллер повторно не логирует
		return nil, domain.WrapBusinessError(err)
	}

	rawData, err := json.Marshal(domain.CalculationSnapshot{
		GeneratedAt: now,
		Period:      period,
		ZodiacSign:  user.ZodiacSign,
		Natal:       natal,
		Transits:    transits,
		Aspects:     aspects,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize calculation snapshot: %w", err)
	}

	record := &domain.Prediction{
		ID:          uuid.New(),
		UserID:      userID,
		ZodiacSign:  user.ZodiacSign,
		Period:      period,
		Content:     content,
		RawData:     rawData,
		TargetDate:  now,
		WindowStart: eligibility.WindowStart,
		CreatedAt:   now,
	}

	if err := s.PredictionRepo.Create(ctx, record); err != nil {
		// Конкурент из другого процесса успел вставить запись этого окна:
		// внутрипроцессный мьютекс реплики не покрывает, индекс покрывает
		if errors.Is(err, domain.ErrPredictionWindowTaken) {
			return nil, &domain.RateLimitedError{
				Period:          period,
				NextAvailableAt: now.Add(period.Interval()),
			}
		}
		return nil, fmt.Errorf("failed to save prediction: %w", err)
	}

	s.Log.Info("prediction generated",
		"user_id", userID,
		"period", period,
		"prediction_id", record.ID,
		"is_first", eligibility.IsFirst,
	)

	s.publishCreated(ctx, record)

	return record, nil
}

// ListHistory история предсказаний пользователя, новые первыми
func (s *Service) ListHistory(ctx context.Context, userID uuid.UUID) ([]*domain.Prediction, error) {
	predictions, err := s.PredictionRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	return predictions, nil
}

// publishCreated best-effort публикация события для доставки уведомлений:
// ошибка публикации логируется, но не откатывает генерацию
func (s *Service) publishCreated(ctx context.Context, record *domain.Prediction) {
	if s.Events == nil {
		return
	}
	event := domain.PredictionCreatedEvent{
		UserID:       record.UserID,
		Period:       record.Period,
		PredictionID: record.ID,
		CreatedAt:    record.CreatedAt,
	}
	if err := s.Events.PublishPredictionCreated(ctx, event); err != nil {
		s.Log.Warn("failed to publish prediction created event",
			"error", err,
			"user_id", record.UserID,
			"prediction_id", record.ID,
		)
	}
}
