package predictionController

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
	"github.com/KangasCode/nous-paradeigma/internal/usecases/prediction"
)

type Controller struct {
	PredictionService *prediction.Service
	Log               *slog.Logger
}

func New(predictionService *prediction.Service, log *slog.Logger) *Controller {
	return &Controller{
		PredictionService: predictionService,
		Log:               log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	v1.GET("/users/:id/predictions", c.history)
	v1.GET("/users/:id/predictions/:period/eligibility", c.eligibility)
	v1.POST("/users/:id/predictions/:period", c.generate)
	v1.POST("/users/:id/predictions/initial", c.generateInitial)
}

// eligibility проверка рейт-лимита без генерации
func (c *Controller) eligibility(ctx *gin.Context) {
	userID, period, ok := c.parseUserPeriod(ctx)
	if !ok {
		return
	}

	result, err := c.PredictionService.CheckEligibility(ctx.Request.Context(), userID, period)
	if err != nil {
		c.respondError(ctx, err, userID)
		return
	}

	ctx.JSON(http.StatusOK, EligibilityResponse{
		Period:          string(period),
		CanGenerate:     result.CanGenerate,
		IsFirst:         result.IsFirst,
		NextAvailableAt: result.NextAvailableAt,
	})
}

// generate генерирует новое предсказание. При активном рейт-лимите — 429
// с временем следующей доступности; рейт-лимит — ожидаемое состояние, не ошибка.
func (c *Controller) generate(ctx *gin.Context) {
	userID, period, ok := c.parseUserPeriod(ctx)
	if !ok {
		return
	}

	record, err := c.PredictionService.Generate(ctx.Request.Context(), userID, period)
	if err != nil {
		if rl, isRL := domain.IsRateLimited(err); isRL {
			ctx.JSON(http.StatusTooManyRequests, gin.H{
				"error":             "prediction already generated for this window",
				"period":            string(rl.Period),
				"next_available_at": rl.NextAvailableAt,
			})
			return
		}
		c.respondError(ctx, err, userID)
		return
	}

	ctx.JSON(http.StatusCreated, toPredictionResponse(record, false))
}

// generateInitial стартовый пакет после активации подписки: все три периода
func (c *Controller) generateInitial(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	results, err := c.PredictionService.GenerateInitial(ctx.Request.Context(), userID)
	if err != nil {
		c.respondError(ctx, err, userID)
		return
	}

	out := make(map[string]PredictionResponse, len(results))
	for period, record := range results {
		out[string(period)] = toPredictionResponse(record, false)
	}

	ctx.JSON(http.StatusCreated, gin.H{"predictions": out})
}

// history история предсказаний, новые первыми
func (c *Controller) history(ctx *gin.Context) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	predictions, err := c.PredictionService.ListHistory(ctx.Request.Context(), userID)
	if err != nil {
		c.respondError(ctx, err, userID)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"predictions": toPredictionList(predictions)})
}

func (c *Controller) parseUserPeriod(ctx *gin.Context) (uuid.UUID, domain.Period, bool) {
	userID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return uuid.Nil, "", false
	}

	period := domain.Period(ctx.Param("period"))
	if !period.IsValid() {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unsupported period, expected daily|weekly|monthly"})
		return uuid.Nil, "", false
	}

	return userID, period, true
}

// respondError общая раскладка доменных ошибок по статусам
func (c *Controller) respondError(ctx *gin.Context, err error, userID uuid.UUID) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, domain.ErrUnsupportedPeriod):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "unsupported period"})
	case errors.Is(err, domain.ErrInvalidBirthDate):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "profile has no valid birth data"})
	case errors.Is(err, domain.ErrGenerationNotConfigured):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "prediction generation is not available"})
	default:
		var genErr *domain.GenerationError
		if errors.As(err, &genErr) || errors.Is(err, domain.ErrGenerationEmpty) {
			// BusinessError уже залогирован в usecase
			if !domain.IsBusinessError(err) {
				c.Log.Error("generation upstream failed",
					"error", err,
					"user_id", userID,
				)
			}
			ctx.JSON(http.StatusBadGateway, gin.H{"error": "prediction generation failed"})
			return
		}
		if !domain.IsBusinessError(err) {
			c.Log.Error("prediction request failed",
				"error", err,
				"user_id", userID,
			)
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
