package profileController

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
	"github.com/KangasCode/nous-paradeigma/internal/usecases/profile"
)

type Controller struct {
	ProfileService *profile.Service
	Log            *slog.Logger
}

func New(profileService *profile.Service, log *slog.Logger) *Controller {
	return &Controller{
		ProfileService: profileService,
		Log:            log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	v1.POST("/users", c.create)
	v1.GET("/users", c.getByEmail)
	v1.GET("/users/:id", c.get)
	v1.PATCH("/users/:id/birth-time", c.setBirthTime)
}

// create создаёт профиль; знак зодиака вычисляется на сервере один раз
func (c *Controller) create(ctx *gin.Context) {
	var req CreateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.Warn("failed to bind create profile request",
			"error", err,
		)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid birth_date, expected YYYY-MM-DD"})
		return
	}

	user, err := c.ProfileService.Create(ctx.Request.Context(), profile.CreateInput{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		BirthDate:      birthDate,
		BirthTime:      req.BirthTime,
		BirthCity:      req.BirthCity,
		TimezoneOffset: req.TimezoneOffset,
		Language:       domain.Language(req.Language),
		IsSubscriber:   req.IsSubscriber,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidBirthDate) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "birth date out of supported range"})
			return
		}
		c.Log.Error("failed to create profile",
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, toProfileResponse(user))
}

// get возвращает профиль с метаданными знака
func (c *Controller) get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := c.ProfileService.Get(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.Log.Error("failed to get profile",
			"error", err,
			"user_id", id,
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, toProfileResponse(user))
}

// getByEmail поиск профиля по email для активации подписки после оплаты
func (c *Controller) getByEmail(ctx *gin.Context) {
	email := ctx.Query("email")
	if email == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}

	user, err := c.ProfileService.GetByEmail(ctx.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.Log.Error("failed to get profile by email",
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, toProfileResponse(user))
}

// setBirthTime одноразовый переход Incomplete -> Complete.
// Попытка изменить уже заданное время — 409.
func (c *Controller) setBirthTime(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	var req SetBirthTimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := c.ProfileService.SetBirthTime(ctx.Request.Context(), id, req.BirthTime)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		case errors.Is(err, domain.ErrBirthDataImmutable):
			ctx.JSON(http.StatusConflict, gin.H{"error": "birth time is already set"})
		default:
			c.Log.Error("failed to set birth time",
				"error", err,
				"user_id", id,
			)
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	ctx.JSON(http.StatusOK, toProfileResponse(user))
}
