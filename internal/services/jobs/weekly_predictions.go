package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
	predictionUsecase "github.com/KangasCode/nous-paradeigma/internal/usecases/prediction"
)

const weeklyPredictionsName = "weekly-predictions"

// WeeklyPredictions джоба батч-генерации недельных предсказаний,
// каждое воскресенье в 07:00 по Хельсинки
type WeeklyPredictions struct {
	predictionService *predictionUsecase.Service
	log               *slog.Logger
	location          *time.Location
}

func NewWeeklyPredictions(
	predictionService *predictionUsecase.Service,
	log *slog.Logger,
) *WeeklyPredictions {
	return &WeeklyPredictions{
		predictionService: predictionService,
		log:               log,
		location:          helsinkiLocation(),
	}
}

func (j *WeeklyPredictions) Name() string {
	return weeklyPredictionsName
}

// NextRun каждое воскресенье в 07:00 по Хельсинки
func (j *WeeklyPredictions) NextRun(now time.Time) time.Time {
	local := now.In(j.location)

	daysUntilSunday := (int(time.Sunday) - int(local.Weekday()) + 7) % 7
	if daysUntilSunday == 0 && local.Hour() >= batchHour {
		daysUntilSunday = 7
	}

	next := local.AddDate(0, 0, daysUntilSunday)
	next = time.Date(next.Year(), next.Month(), next.Day(), batchHour, 0, 0, 0, j.location)

	return next
}

func (j *WeeklyPredictions) Run(ctx context.Context) error {
	_, err := j.predictionService.GenerateForActiveSubscribers(ctx, domain.PeriodWeekly)
	return err
}
