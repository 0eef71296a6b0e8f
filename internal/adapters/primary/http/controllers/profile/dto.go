package profileController

import (
	"time"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
)

// CreateProfileRequest запрос на создание профиля
type CreateProfileRequest struct {
	Email          string  `json:"email" binding:"required,email"`
	FirstName      string  `json:"first_name" binding:"required"`
	LastName       *string `json:"last_name"`
	BirthDate      string  `json:"birth_date" binding:"required"` // "2006-01-02"
	BirthTime      *string `json:"birth_time"`                    // "HH:MM", опционально
	BirthCity      *string `json:"birth_city"`
	TimezoneOffset string  `json:"timezone_offset"` // "+02:00"
	Language       string  `json:"language"`        // fi | en | sv
	IsSubscriber   bool    `json:"is_subscriber"`
}

// SetBirthTimeRequest одноразовое дозаполнение времени рождения
type SetBirthTimeRequest struct {
	BirthTime string `json:"birth_time" binding:"required"` // "HH:MM"
}

// ProfileResponse профиль с метаданными знака
type ProfileResponse struct {
	ID             string            `json:"id"`
	Email          string            `json:"email"`
	FirstName      string            `json:"first_name"`
	LastName       *string           `json:"last_name,omitempty"`
	BirthDate      string            `json:"birth_date"`
	BirthTime      *string           `json:"birth_time,omitempty"`
	BirthCity      *string           `json:"birth_city,omitempty"`
	TimezoneOffset string            `json:"timezone_offset"`
	ZodiacSign     string            `json:"zodiac_sign"`
	ZodiacInfo     domain.ZodiacInfo `json:"zodiac_info"`
	Language       string            `json:"language"`
	IsSubscriber   bool              `json:"is_subscriber"`
	BirthComplete  bool              `json:"birth_complete"`
	CreatedAt      time.Time         `json:"created_at"`
}

func toProfileResponse(user *domain.User) ProfileResponse {
	return ProfileResponse{
		ID:             user.ID.String(),
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		BirthDate:      user.BirthDate.Format("2006-01-02"),
		BirthTime:      user.BirthTime,
		BirthCity:      user.BirthCity,
		TimezoneOffset: user.TimezoneOffset,
		ZodiacSign:     string(user.ZodiacSign),
		ZodiacInfo:     user.ZodiacSign.Info(),
		Language:       string(user.Language),
		IsSubscriber:   user.IsSubscriber,
		BirthComplete:  user.BirthComplete(),
		CreatedAt:      user.CreatedAt,
	}
}
