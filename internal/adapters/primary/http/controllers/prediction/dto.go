package predictionController

import (
	"encoding/json"
	"time"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
)

// PredictionResponse одно предсказание
type PredictionResponse struct {
	ID         string          `json:"id"`
	UserID     string          `json:"user_id"`
	ZodiacSign string          `json:"zodiac_sign"`
	Period     string          `json:"period"`
	Content    string          `json:"content"`
	RawData    json.RawMessage `json:"raw_data,omitempty"`
	TargetDate time.Time       `json:"target_date"`
	CreatedAt  time.Time       `json:"created_at"`
}

// EligibilityResponse результат проверки рейт-лимита
type EligibilityResponse struct {
	Period          string     `json:"period"`
	CanGenerate     bool       `json:"can_generate"`
	IsFirst         bool       `json:"is_first"`
	NextAvailableAt *time.Time `json:"next_available_at,omitempty"`
}

func toPredictionResponse(p *domain.Prediction, withRawData bool) PredictionResponse {
	resp := PredictionResponse{
		ID:         p.ID.String(),
		UserID:     p.UserID.String(),
		ZodiacSign: string(p.ZodiacSign),
		Period:     string(p.Period),
		Content:    p.Content,
		TargetDate: p.TargetDate,
		CreatedAt:  p.CreatedAt,
	}
	if withRawData {
		resp.RawData = p.RawData
	}
	return resp
}

func toPredictionList(predictions []*domain.Prediction) []PredictionResponse {
	out := make([]PredictionResponse, 0, len(predictions))
	for _, p := range predictions {
		out = append(out, toPredictionResponse(p, false))
	}
	return out
}
