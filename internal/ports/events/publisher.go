package events

import (
	"context"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
)

// Publisher публикация события о созданном предсказании для внешней
// доставки уведомлений. Доставка, шаблоны и локализация писем вне ядра.
type Publisher interface {
	PublishPredictionCreated(ctx context.Context, event domain.PredictionCreatedEvent) error
	Close() error
}
