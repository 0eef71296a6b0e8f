package prediction

import (
	"log/slog"
	"time"

	"github.com/KangasCode/nous-paradeigma/internal/ports/events"
	"github.com/KangasCode/nous-paradeigma/internal/ports/generation"
	ports "github.com/KangasCode/nous-paradeigma/internal/ports/repository"
	"github.com/KangasCode/nous-paradeigma/internal/services/astrology"
)

// Service оркестратор генерации предсказаний: проверка рейт-лимита, расчёт
// карт и аспектов, сборка промпта, вызов генерации и сохранение иммутабельной
// записи. Генеративный клиент передаётся явно при создании — никакого
// ленивого синглтона.
type Service struct {
	UserRepo       ports.IUserRepo
	PredictionRepo ports.IPredictionRepo
	Charts         *astrology.ChartService
	Generator      generation.Client
	Events         events.Publisher
	Log            *slog.Logger

	locks keyedLocks
	now   func() time.Time
}

// New создаёт сервис предсказаний. Events опционален (nil допустим).
func New(
	userRepo ports.IUserRepo,
	predictionRepo ports.IPredictionRepo,
	charts *astrology.ChartService,
	generator generation.Client,
	eventPublisher events.Publisher,
	log *slog.Logger,
) *Service {
	return &Service{
		UserRepo:       userRepo,
		PredictionRepo: predictionRepo,
		Charts:         charts,
		Generator:      generator,
		Events:         eventPublisher,
		Log:            log,
		now:            time.Now,
	}
}
