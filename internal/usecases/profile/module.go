package profile

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
	ports "github.com/KangasCode/nous-paradeigma/internal/ports/repository"
	"github.com/KangasCode/nous-paradeigma/internal/services/astrology"
)

// Service бизнес-логика профилей. Данные рождения write-once: знак зодиака
// вычисляется ровно один раз при создании и дальше не пересчитывается и
// не редактируется; позже можно только один раз дозаполнить время рождения.
type Service struct {
	UserRepo ports.IUserRepo
	Log      *slog.Logger
}

func New(userRepo ports.IUserRepo, log *slog.Logger) *Service {
	return &Service{
		UserRepo: userRepo,
		Log:      log,
	}
}

// CreateInput данные нового профиля
type CreateInput struct {
	Email          string
	FirstName      string
	LastName       *string
	BirthDate      time.Time
	BirthTime      *string // "HH:MM", опционально
	BirthCity      *string
	TimezoneOffset string
	Language       domain.Language
	IsSubscriber   bool
}

var birthTimeRe = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

// Create создаёт профиль и один раз выводит знак зодиака из даты рождения
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.User, error) {
	sign, err := astrology.DeriveSign(in.BirthDate)
	if err != nil {
		return nil, err
	}

	if in.BirthTime != nil && *in.BirthTime != "" && !birthTimeRe.MatchString(*in.BirthTime) {
		return nil, fmt.Errorf("invalid birth time format: %s", *in.BirthTime)
	}

	tzOffset := in.TimezoneOffset
	if tzOffset == "" {
		tzOffset = "+00:00"
	}

	user := &domain.User{
		ID:             uuid.New(),
		Email:          in.Email,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		BirthDate:      in.BirthDate,
		BirthTime:      in.BirthTime,
		BirthCity:      in.BirthCity,
		TimezoneOffset: tzOffset,
		ZodiacSign:     sign,
		Language:       in.Language.OrDefault(),
		IsSubscriber:   in.IsSubscriber,
		CreatedAt:      time.Now(),
	}

	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.Log.Info("profile created",
		"user_id", user.ID,
		"zodiac_sign", user.ZodiacSign,
		"language", user.Language,
	)

	return user, nil
}

// Get возвращает профиль по идентификатору
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.UserRepo.GetByID(ctx, id)
}

// GetByEmail возвращает профиль по email: путь активации подписки,
// когда платёжный провайдер знает только email покупателя
func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.UserRepo.GetByEmail(ctx, email)
}

// SetBirthTime одноразовый переход Incomplete -> Complete: дозаполняет
// отсутствующее время рождения для повышения точности натальной карты.
// Любая попытка изменить уже заданное время отклоняется на границе API.
func (s *Service) SetBirthTime(ctx context.Context, id uuid.UUID, birthTime string) (*domain.User, error) {
	if !birthTimeRe.MatchString(birthTime) {
		return nil, fmt.Errorf("invalid birth time format: %s", birthTime)
	}

	user, err := s.UserRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.BirthComplete() {
		s.Log.Warn("attempt to change existing birth time rejected",
			"user_id", id,
		)
		return nil, domain.ErrBirthDataImmutable
	}

	if err := s.UserRepo.SetBirthTime(ctx, id, birthTime); err != nil {
		return nil, err
	}

	user.BirthTime = &birthTime

	s.Log.Info("birth time set",
		"user_id", id,
	)

	return user, nil
}
