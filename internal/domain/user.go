package domain

import (
	"time"

	"github.com/google/uuid"
)

// User профиль подписчика. Данные рождения write-once: дата и город рождения
// не меняются после создания профиля, время рождения можно один раз дозаполнить
// (переход Incomplete -> Complete), если его не было при регистрации.
type User struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	Email          string     `json:"email" db:"email"`
	FirstName      string     `json:"first_name" db:"first_name"`
	LastName       *string    `json:"last_name,omitempty" db:"last_name"`
	BirthDate      time.Time  `json:"birth_date" db:"birth_date"`
	BirthTime      *string    `json:"birth_time,omitempty" db:"birth_time"` // "HH:MM"
	BirthCity      *string    `json:"birth_city,omitempty" db:"birth_city"`
	TimezoneOffset string     `json:"timezone_offset" db:"timezone_offset"` // "+02:00"
	ZodiacSign     ZodiacSign `json:"zodiac_sign" db:"zodiac_sign"`         // вычислен один раз, никогда не редактируется
	Language       Language   `json:"prediction_language" db:"prediction_language"`
	IsSubscriber   bool       `json:"is_subscriber" db:"is_subscriber"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
}

// BirthComplete профиль с временем рождения: натальная карта точнее
func (u *User) BirthComplete() bool {
	return u.BirthTime != nil && *u.BirthTime != ""
}

// Age полных лет на момент now, -1 если дата рождения не задана
func (u *User) Age(now time.Time) int {
	if u.BirthDate.IsZero() {
		return -1
	}
	age := now.Year() - u.BirthDate.Year()
	if now.Month() < u.BirthDate.Month() ||
		(now.Month() == u.BirthDate.Month() && now.Day() < u.BirthDate.Day()) {
		age--
	}
	return age
}
