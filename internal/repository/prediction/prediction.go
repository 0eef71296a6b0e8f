package predictionRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
	"github.com/KangasCode/nous-paradeigma/internal/ports/persistence"
	ports "github.com/KangasCode/nous-paradeigma/internal/ports/repository"
)

type predictionColumns struct {
	TableName   string
	ID          string
	UserID      string
	ZodiacSign  string
	Period      string
	Content     string
	RawData     string
	TargetDate  string
	WindowStart string
	CreatedAt   string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns predictionColumns
}

// New создаёт новый репозиторий для работы с предсказаниями
func New(db persistence.Persistence, log *slog.Logger) ports.IPredictionRepo {
	cols := predictionColumns{
		TableName:   "predictions",
		ID:          "id",
		UserID:      "user_id",
		ZodiacSign:  "zodiac_sign",
		Period:      "period",
		Content:     "content",
		RawData:     "raw_data",
		TargetDate:  "target_date",
		WindowStart: "window_start",
		CreatedAt:   "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns возвращает строку со всеми колонками (9 колонок)
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.UserID,
		r.columns.ZodiacSign,
		r.columns.Period,
		r.columns.Content,
		r.columns.RawData,
		r.columns.TargetDate,
		r.columns.WindowStart,
		r.columns.CreatedAt)
}

// Create сохраняет предсказание. История append-only: обновлений и удалений
// нет. Нарушение уникального индекса (user, period, window_start) — не сбой,
// а проигранная гонка за окно: возвращается ErrPredictionWindowTaken.
func (r *Repository) Create(ctx context.Context, prediction *domain.Prediction) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		r.columns.TableName,
		r.allColumns())
	err := r.db.Exec(ctx, query,
		prediction.ID,
		prediction.UserID,
		prediction.ZodiacSign,
		prediction.Period,
		prediction.Content,
		prediction.RawData,
		prediction.TargetDate,
		prediction.WindowStart,
		prediction.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			r.Log.Warn("prediction window already taken",
				"user_id", prediction.UserID,
				"period", prediction.Period,
				"window_start", prediction.WindowStart)
			return domain.ErrPredictionWindowTaken
		}
		r.Log.Error("failed to create prediction",
			"error", err,
			"user_id", prediction.UserID,
			"period", prediction.Period)
		return fmt.Errorf("failed to create prediction: %w", err)
	}
	r.Log.Debug("prediction created successfully",
		"id", prediction.ID,
		"user_id", prediction.UserID,
		"period", prediction.Period)
	return nil
}

// isUniqueViolation нарушение уникального ограничения Postgres (23505)
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// GetLatest последняя запись для пары (user, period); nil без ошибки, если записей нет
func (r *Repository) GetLatest(ctx context.Context, userID uuid.UUID, period domain.Period) (*domain.Prediction, error) {
	var prediction domain.Prediction
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 AND %s = $2 ORDER BY %s DESC LIMIT 1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.UserID,
		r.columns.Period,
		r.columns.CreatedAt)
	err := r.db.Get(ctx, &prediction, query, userID, period)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.Log.Error("failed to get latest prediction",
			"error", err,
			"user_id", userID,
			"period", period)
		return nil, fmt.Errorf("failed to get latest prediction: %w", err)
	}
	return &prediction, nil
}

// ListByUser история предсказаний пользователя, новые первыми
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Prediction, error) {
	var predictions []*domain.Prediction
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.UserID,
		r.columns.CreatedAt)
	if err := r.db.Select(ctx, &predictions, query, userID); err != nil {
		r.Log.Error("failed to list predictions",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list predictions: %w", err)
	}
	return predictions, nil
}
