package domain

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidBirthDate дата рождения вне диапазона 1900..сейчас или не парсится
	ErrInvalidBirthDate = errors.New("invalid birth date")
	// ErrUnsupportedPeriod период не из закрытого набора daily/weekly/monthly
	ErrUnsupportedPeriod = errors.New("unsupported prediction period")
	// ErrUnsupportedLanguage язык не из закрытого набора
	ErrUnsupportedLanguage = errors.New("unsupported prediction language")
	// ErrBirthDataImmutable попытка изменить write-once данные рождения
	ErrBirthDataImmutable = errors.New("birth data is immutable")
	// ErrUserNotFound пользователь не найден
	ErrUserNotFound = errors.New("user not found")
	// ErrPredictionWindowTaken уникальный индекс отклонил вставку: запись
	// с тем же (user, period, window_start) уже существует. Страховка от
	// гонки между репликами, которую не покрывает внутрипроцессный мьютекс.
	ErrPredictionWindowTaken = errors.New("prediction window already taken")

	// ErrGenerationNotConfigured генеративный сервис не сконфигурирован.
	// Жёсткая ошибка: никакого подставного текста, вызывающий возвращает 503.
	ErrGenerationNotConfigured = errors.New("generation service is not configured")
	// ErrGenerationEmpty сервис вернул пустой ответ
	ErrGenerationEmpty = errors.New("generation service returned empty response")
)

// GenerationError транспортная или удалённая ошибка генерации, оборачивает причину
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %s", e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// RateLimitedError ожидаемое, не исключительное состояние: вызывающий
// возвращает время следующей доступности, а не страницу ошибки
type RateLimitedError struct {
	Period          Period
	NextAvailableAt time.Time
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("%s prediction rate limited until %s", e.Period, e.NextAvailableAt.Format(time.RFC3339))
}

// IsRateLimited проверяет, является ли ошибка рейт-лимитом
func IsRateLimited(err error) (*RateLimitedError, bool) {
	var rl *RateLimitedError
	if errors.As(err, &rl) {
		return rl, true
	}
	return nil, false
}

// BusinessError ошибка бизнес-логики, которая уже залогирована в UseCase
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func IsBusinessError(err error) bool {
	var businessErr *BusinessError
	return errors.As(err, &businessErr)
}
