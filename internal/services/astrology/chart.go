package astrology

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
	"github.com/KangasCode/nous-paradeigma/internal/ports/cache"
	"github.com/KangasCode/nous-paradeigma/internal/ports/ephemeris"
)

const transitCacheTTL = 24 * time.Hour

// ChartService вычисляет натальные и транзитные карты. При недоступности
// эфемеридного слоя обе функции возвращают фиксированную mock-карту с
// тегом Source="mock" вместо жёсткой ошибки — пайплайн продолжается.
type ChartService struct {
	Ephemeris ephemeris.Ephemeris
	Cache     cache.Cache
	Log       *slog.Logger
}

// NewChartService создаёт сервис расчёта карт. Cache опционален (nil допустим).
func NewChartService(eph ephemeris.Ephemeris, cache cache.Cache, log *slog.Logger) *ChartService {
	return &ChartService{
		Ephemeris: eph,
		Cache:     cache,
		Log:       log,
	}
}

// ComputeNatalChart рассчитывает натальную карту: 12 тел с Асцендентом и MC.
// birthTime в формате "HH:MM" (nil — полдень), tzOffset в формате "+02:00".
func (s *ChartService) ComputeNatalChart(ctx context.Context, birthDate time.Time, birthTime *string, birthCity *string, tzOffset string) *domain.Chart {
	city := ""
	if birthCity != nil {
		city = *birthCity
	}
	point := ResolveLocation(city)

	moment := combineBirthMoment(birthDate, birthTime, tzOffset)

	if s.Ephemeris == nil {
		s.Log.Warn("ephemeris unavailable, using mock natal chart")
		return mockNatalChart(moment, point)
	}

	longitudes, err := s.Ephemeris.Longitudes(moment, domain.TransitBodies)
	if err != nil {
		s.Log.Warn("natal chart calculation failed, using mock chart", "error", err)
		return mockNatalChart(moment, point)
	}

	asc, mc, anglesErr := s.Ephemeris.Angles(moment, point.Latitude, point.Longitude)

	chart := &domain.Chart{
		Kind:        domain.ChartNatal,
		Source:      domain.SourceEphemeris,
		ComputedFor: moment,
		Latitude:    point.Latitude,
		Longitude:   point.Longitude,
	}

	for _, body := range domain.TransitBodies {
		lon := normalizeDegrees(longitudes[body])
		chart.Positions = append(chart.Positions, positionForLongitude(body, lon, asc, anglesErr == nil))
	}

	if anglesErr != nil {
		s.Log.Warn("house angles calculation failed, using approximate houses", "error", anglesErr)
	} else {
		chart.Positions = append(chart.Positions,
			positionForLongitude(domain.Ascendant, normalizeDegrees(asc), asc, true),
			positionForLongitude(domain.Midheaven, normalizeDegrees(mc), asc, true),
		)
	}

	return chart
}

// ComputeTransitChart рассчитывает транзитную карту на дату: 10 тел, без углов.
// Место фиксировано в нейтральной точке — положение по знакам от места не зависит
// на этой точности. Результат кэшируется по дате.
func (s *ChartService) ComputeTransitChart(ctx context.Context, date time.Time) *domain.Chart {
	cacheKey := fmt.Sprintf("astro:transits:%s", date.Format("2006-01-02"))

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey); err == nil {
			var chart domain.Chart
			if err := json.Unmarshal([]byte(cached), &chart); err == nil {
				return &chart
			}
		}
	}

	// Полдень UTC для транзитов
	moment := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, time.UTC)

	if s.Ephemeris == nil {
		s.Log.Warn("ephemeris unavailable, using mock transit chart")
		return mockTransitChart(moment)
	}

	longitudes, err := s.Ephemeris.Longitudes(moment, domain.TransitBodies)
	if err != nil {
		s.Log.Warn("transit calculation failed, using mock chart", "error", err)
		return mockTransitChart(moment)
	}

	chart := &domain.Chart{
		Kind:        domain.ChartTransit,
		Source:      domain.SourceEphemeris,
		ComputedFor: moment,
	}
	for _, body := range domain.TransitBodies {
		lon := normalizeDegrees(longitudes[body])
		chart.Positions = append(chart.Positions, positionForLongitude(body, lon, 0, false))
	}

	s.cacheTransitChart(ctx, cacheKey, chart)

	return chart
}

func (s *ChartService) cacheTransitChart(ctx context.Context, key string, chart *domain.Chart) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(chart)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, string(data), transitCacheTTL); err != nil {
		s.Log.Warn("failed to cache transit chart",
			"error", err,
			"cache_key", key,
		)
	}
}

// positionForLongitude собирает позицию тела: знак, градус в знаке и дом.
// Основной расчёт домов — равнодомный от Асцендента; при его отсутствии
// приближение floor(lon/30) mod 12 + 1 с зажимом в [1,12].
func positionForLongitude(body domain.Body, lon float64, asc float64, hasAngles bool) domain.ChartPosition {
	var house int
	if hasAngles {
		house = int(normalizeDegrees(lon-asc)/30) + 1
	} else {
		house = int(lon/30)%12 + 1
	}
	if house < 1 {
		house = 1
	}
	if house > 12 {
		house = 12
	}

	return domain.ChartPosition{
		Body:         body,
		Sign:         domain.SignForLongitude(lon),
		DegreeInSign: domain.Round2(math.Mod(lon, 30)),
		Longitude:    domain.Round2(lon),
		House:        house,
	}
}

// combineBirthMoment собирает момент рождения из даты, времени "HH:MM" и
// смещения таймзоны "+02:00". Без времени рождения берётся полдень.
func combineBirthMoment(birthDate time.Time, birthTime *string, tzOffset string) time.Time {
	hour, minute := 12, 0
	if birthTime != nil && *birthTime != "" {
		var h, m int
		if _, err := fmt.Sscanf(*birthTime, "%d:%d", &h, &m); err == nil && h >= 0 && h < 24 && m >= 0 && m < 60 {
			hour, minute = h, m
		}
	}

	loc := time.UTC
	var offH, offM int
	var sign rune
	if _, err := fmt.Sscanf(tzOffset, "%c%d:%d", &sign, &offH, &offM); err == nil && (sign == '+' || sign == '-') {
		seconds := offH*3600 + offM*60
		if sign == '-' {
			seconds = -seconds
		}
		loc = time.FixedZone(tzOffset, seconds)
	}

	return time.Date(birthDate.Year(), birthDate.Month(), birthDate.Day(), hour, minute, 0, 0, loc)
}

func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// mockNatalChart фиксированная карта с правдоподобными, но бессмысленными
// значениями. Остальной пайплайн обрабатывает её как настоящую, отличить
// можно только по тегу Source.
func mockNatalChart(moment time.Time, point GeoPoint) *domain.Chart {
	positions := []struct {
		body domain.Body
		lon  float64
	}{
		{domain.Sun, 15.0},
		{domain.Moon, 42.5},
		{domain.Mercury, 8.3},
		{domain.Venus, 61.7},
		{domain.Mars, 155.2},
		{domain.Jupiter, 220.4},
		{domain.Saturn, 305.8},
		{domain.Uranus, 48.1},
		{domain.Neptune, 352.6},
		{domain.Pluto, 297.3},
		{domain.Ascendant, 340.0},
		{domain.Midheaven, 250.0},
	}

	chart := &domain.Chart{
		Kind:        domain.ChartNatal,
		Source:      domain.SourceMock,
		ComputedFor: moment,
		Latitude:    point.Latitude,
		Longitude:   point.Longitude,
	}
	for _, p := range positions {
		chart.Positions = append(chart.Positions, positionForLongitude(p.body, p.lon, 340.0, true))
	}
	return chart
}

func mockTransitChart(moment time.Time) *domain.Chart {
	positions := []struct {
		body domain.Body
		lon  float64
	}{
		{domain.Sun, 135.0},
		{domain.Moon, 170.4},
		{domain.Mercury, 128.9},
		{domain.Venus, 95.6},
		{domain.Mars, 282.3},
		{domain.Jupiter, 75.1},
		{domain.Saturn, 345.7},
		{domain.Uranus, 52.2},
		{domain.Neptune, 357.9},
		{domain.Pluto, 301.5},
	}

	chart := &domain.Chart{
		Kind:        domain.ChartTransit,
		Source:      domain.SourceMock,
		ComputedFor: moment,
	}
	for _, p := range positions {
		chart.Positions = append(chart.Positions, positionForLongitude(p.body, p.lon, 0, false))
	}
	return chart
}
