package ephemeris

import (
	"time"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
)

// Ephemeris источник эклиптических долгот небесных тел. При недоступности
// ChartService деградирует до захардкоженной mock-карты.
type Ephemeris interface {
	// Longitudes абсолютные эклиптические долготы тел (0-360) на момент t
	Longitudes(t time.Time, bodies []domain.Body) (map[domain.Body]float64, error)
	// Angles долготы Асцендента и MC для места наблюдения
	Angles(t time.Time, lat, lon float64) (asc, mc float64, err error)
}
