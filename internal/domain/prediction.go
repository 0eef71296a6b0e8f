package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Prediction сгенерированное предсказание. Запись иммутабельна: после создания
// не обновляется и не удаляется, история append-only.
type Prediction struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	UserID      uuid.UUID       `json:"user_id" db:"user_id"`
	ZodiacSign  ZodiacSign      `json:"zodiac_sign" db:"zodiac_sign"` // копия из профиля, никогда из запроса
	Period      Period          `json:"period" db:"period"`
	Content     string          `json:"content" db:"content"`
	RawData     json.RawMessage `json:"raw_data" db:"raw_data"` // снапшот карт и аспектов для аудита
	TargetDate  time.Time       `json:"target_date" db:"target_date"`
	WindowStart time.Time       `json:"-" db:"window_start"` // граница окна рейт-лимита, часть уникального ключа
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}

// WindowEpoch window_start самой первой записи пары (user, period).
// Фиксированное значение: конкурирующие первые вставки вычисляют один и тот же
// ключ и вторая упирается в уникальный индекс.
var WindowEpoch = time.Unix(0, 0).UTC()

// CalculationSnapshot сериализованный вход генерации: натальная и транзитная
// карты плюс топ-10 аспектов. Без потерь для полей, которые читает движок аспектов.
type CalculationSnapshot struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Period      Period         `json:"prediction_type"`
	ZodiacSign  ZodiacSign     `json:"zodiac_sign"`
	Natal       *Chart         `json:"natal_chart,omitempty"`
	Transits    *Chart         `json:"transits"`
	Aspects     []AspectRecord `json:"aspects"`
}

// Eligibility результат проверки рейт-лимита для пары (user, period).
// WindowStart — ключ окна для новой записи: WindowEpoch для первой,
// иначе createdAt предыдущей записи + интервал периода.
type Eligibility struct {
	CanGenerate     bool       `json:"can_generate"`
	IsFirst         bool       `json:"is_first"`
	NextAvailableAt *time.Time `json:"next_available_at,omitempty"`
	WindowStart     time.Time  `json:"-"`
}

// PredictionCreatedEvent событие для внешней доставки уведомлений
type PredictionCreatedEvent struct {
	UserID       uuid.UUID `json:"user_id"`
	Period       Period    `json:"period"`
	PredictionID uuid.UUID `json:"prediction_id"`
	CreatedAt    time.Time `json:"created_at"`
}
