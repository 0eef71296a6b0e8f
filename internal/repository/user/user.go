package userRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
	"github.com/KangasCode/nous-paradeigma/internal/ports/persistence"
	ports "github.com/KangasCode/nous-paradeigma/internal/ports/repository"
)

type userColumns struct {
	TableName      string
	ID             string
	Email          string
	FirstName      string
	LastName       string
	BirthDate      string
	BirthTime      string
	BirthCity      string
	TimezoneOffset string
	ZodiacSign     string
	Language       string
	IsSubscriber   string
	CreatedAt      string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns userColumns
}

// New создаёт новый репозиторий для работы с профилями
func New(db persistence.Persistence, log *slog.Logger) ports.IUserRepo {
	cols := userColumns{
		TableName:      "users",
		ID:             "id",
		Email:          "email",
		FirstName:      "first_name",
		LastName:       "last_name",
		BirthDate:      "birth_date",
		BirthTime:      "birth_time",
		BirthCity:      "birth_city",
		TimezoneOffset: "timezone_offset",
		ZodiacSign:     "zodiac_sign",
		Language:       "prediction_language",
		IsSubscriber:   "is_subscriber",
		CreatedAt:      "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns возвращает строку со всеми колонками (12 колонок)
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.Email,
		r.columns.FirstName,
		r.columns.LastName,
		r.columns.BirthDate,
		r.columns.BirthTime,
		r.columns.BirthCity,
		r.columns.TimezoneOffset,
		r.columns.ZodiacSign,
		r.columns.Language,
		r.columns.IsSubscriber,
		r.columns.CreatedAt)
}

// Create создаёт новый профиль. Данные рождения после этого write-once.
func (r *Repository) Create(ctx context.Context, user *domain.User) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		r.columns.TableName,
		r.allColumns())
	err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.FirstName,
		user.LastName,
		user.BirthDate,
		user.BirthTime,
		user.BirthCity,
		user.TimezoneOffset,
		user.ZodiacSign,
		user.Language,
		user.IsSubscriber,
		user.CreatedAt)
	if err != nil {
		r.Log.Error("failed to create user",
			"error", err,
			"user_id", user.ID)
		return fmt.Errorf("failed to create user: %w", err)
	}
	r.Log.Debug("user created successfully",
		"id", user.ID,
		"zodiac_sign", user.ZodiacSign)
	return nil
}

// GetByID получает профиль по идентификатору
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ID)
	err := r.db.Get(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("user not found", "user_id", id)
			return nil, domain.ErrUserNotFound
		}
		r.Log.Error("failed to get user by id",
			"error", err,
			"user_id", id)
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}

// GetByEmail получает профиль по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.Email)
	err := r.db.Get(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		r.Log.Error("failed to get user by email",
			"error", err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// SetBirthTime дозаполняет время рождения только если оно отсутствует.
// Условие в WHERE — страховка на уровне хранилища: уже заданное время
// не перезаписывается ни при каких условиях.
func (r *Repository) SetBirthTime(ctx context.Context, id uuid.UUID, birthTime string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2 AND %s IS NULL`,
		r.columns.TableName,
		r.columns.BirthTime,
		r.columns.ID,
		r.columns.BirthTime)
	rows, err := r.db.ExecWithResult(ctx, query, birthTime, id)
	if err != nil {
		r.Log.Error("failed to set birth time",
			"error", err,
			"user_id", id)
		return fmt.Errorf("failed to set birth time: %w", err)
	}
	if rows == 0 {
		return domain.ErrBirthDataImmutable
	}
	r.Log.Debug("birth time set", "user_id", id)
	return nil
}

// GetActiveSubscribers возвращает всех активных подписчиков для батч-генерации
func (r *Repository) GetActiveSubscribers(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = true ORDER BY %s`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.IsSubscriber,
		r.columns.CreatedAt)
	if err := r.db.Select(ctx, &users, query); err != nil {
		r.Log.Error("failed to get active subscribers",
			"error", err)
		return nil, fmt.Errorf("failed to get active subscribers: %w", err)
	}
	return users, nil
}
