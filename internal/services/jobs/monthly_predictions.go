package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
	predictionUsecase "github.com/KangasCode/nous-paradeigma/internal/usecases/prediction"
)

const monthlyPredictionsName = "monthly-predictions"

// batchDayOfMonth день месяца для месячной генерации
const batchDayOfMonth = 30

// MonthlyPredictions джоба батч-генерации месячных предсказаний,
// 30-го числа в 07:00 по Хельсинки. В феврале 30-го нет — месяц пропускается,
// подписчиков прикрывает 30-дневный интервал рейт-лимита.
type MonthlyPredictions struct {
	predictionService *predictionUsecase.Service
	log               *slog.Logger
	location          *time.Location
}

func NewMonthlyPredictions(
	predictionService *predictionUsecase.Service,
	log *slog.Logger,
) *MonthlyPredictions {
	return &MonthlyPredictions{
		predictionService: predictionService,
		log:               log,
		location:          helsinkiLocation(),
	}
}

func (j *MonthlyPredictions) Name() string {
	return monthlyPredictionsName
}

// NextRun ближайшее 30-е число в 07:00 по Хельсинки
func (j *MonthlyPredictions) NextRun(now time.Time) time.Time {
	local := now.In(j.location)

	year, month := local.Year(), local.Month()
	for {
		next := time.Date(year, month, batchDayOfMonth, batchHour, 0, 0, 0, j.location)
		// time.Date нормализует несуществующие даты (30 февраля -> 1-2 марта)
		if next.Day() == batchDayOfMonth && next.After(local) {
			return next
		}
		month++
		if month > time.December {
			month = time.January
			year++
		}
	}
}

func (j *MonthlyPredictions) Run(ctx context.Context) error {
	_, err := j.predictionService.GenerateForActiveSubscribers(ctx, domain.PeriodMonthly)
	return err
}
