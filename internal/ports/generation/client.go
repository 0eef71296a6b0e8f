package generation

import "context"

// Client внешняя генеративная способность. Принимает один непрозрачный промпт
// и возвращает текст либо типизированную ошибку. Без ретраев внутри: повторная
// генерация дорогая и неидемпотентная по содержимому, ретраи — политика вызывающего.
//
// Контракт ошибок: domain.ErrGenerationNotConfigured, domain.ErrGenerationEmpty,
// *domain.GenerationError. Никакого подставного текста ни на одном пути.
type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
