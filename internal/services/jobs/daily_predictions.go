package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
	predictionUsecase "github.com/KangasCode/nous-paradeigma/internal/usecases/prediction"
)

const dailyPredictionsName = "daily-predictions"

// batchHour час запуска всех батч-джоб по Хельсинки
const batchHour = 7

// DailyPredictions джоба батч-генерации дневных предсказаний,
// каждый день в 07:00 по Хельсинки
type DailyPredictions struct {
	predictionService *predictionUsecase.Service
	log               *slog.Logger
	location          *time.Location
}

func NewDailyPredictions(
	predictionService *predictionUsecase.Service,
	log *slog.Logger,
) *DailyPredictions {
	return &DailyPredictions{
		predictionService: predictionService,
		log:               log,
		location:          helsinkiLocation(),
	}
}

func (j *DailyPredictions) Name() string {
	return dailyPredictionsName
}

// NextRun каждый день в 07:00 по Хельсинки
func (j *DailyPredictions) NextRun(now time.Time) time.Time {
	local := now.In(j.location)

	next := time.Date(local.Year(), local.Month(), local.Day(), batchHour, 0, 0, 0, j.location)
	if !next.After(local) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}

func (j *DailyPredictions) Run(ctx context.Context) error {
	_, err := j.predictionService.GenerateForActiveSubscribers(ctx, domain.PeriodDaily)
	return err
}

// helsinkiLocation тайзона расписания; UTC как фолбэк, если база зон недоступна
func helsinkiLocation() *time.Location {
	location, _ := time.LoadLocation("Europe/Helsinki")
	if location == nil {
		location = time.UTC
	}
	return location
}
