package ephemeris

import (
	"fmt"
	"math"
	"time"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
	"github.com/KangasCode/nous-paradeigma/internal/ports/ephemeris"
)

// Calculator аналитические эфемериды на средних элементах орбит (эпоха J2000).
// Точность порядка градуса для внешних планет и нескольких градусов для Луны —
// достаточно для определения знака и аспектов с орбисами 4-8 градусов.
type Calculator struct{}

var _ ephemeris.Ephemeris = (*Calculator)(nil)

func New() *Calculator {
	return &Calculator{}
}

// meanElement средняя долгота тела: L = L0 + rate * T, T в юлианских столетиях от J2000
type meanElement struct {
	L0   float64 // средняя долгота на эпоху J2000, градусы
	Rate float64 // градусов за юлианское столетие
}

// Средние элементы по Standish (JPL), геоцентрическая аппроксимация.
// Для внутренних планет долгота привязана к солнечной с учётом элонгации,
// здесь используется гелиоцентрическое приближение, спроецированное на эклиптику.
var meanElements = map[domain.Body]meanElement{
	domain.Sun:     {L0: 280.46646, Rate: 36000.76983},
	domain.Moon:    {L0: 218.31645, Rate: 481267.88123},
	domain.Mercury: {L0: 252.25032, Rate: 149472.67411},
	domain.Venus:   {L0: 181.97910, Rate: 58517.81539},
	domain.Mars:    {L0: 355.43300, Rate: 19140.29934},
	domain.Jupiter: {L0: 34.39644, Rate: 3034.74612},
	domain.Saturn:  {L0: 49.95424, Rate: 1222.49362},
	domain.Uranus:  {L0: 313.23810, Rate: 428.48202},
	domain.Neptune: {L0: 304.87997, Rate: 218.45945},
	domain.Pluto:   {L0: 238.92903, Rate: 145.20780},
}

// j2000 эпоха J2000.0: 2000-01-01 12:00 TT (разница TT/UTC здесь несущественна)
var j2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

// julianCenturies юлианские столетия от J2000 до t
func julianCenturies(t time.Time) float64 {
	days := t.Sub(j2000).Hours() / 24.0
	return days / 36525.0
}

// normalize приводит долготу к диапазону [0, 360)
func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360.0)
	if deg < 0 {
		deg += 360.0
	}
	return deg
}

// Longitudes эклиптические долготы тел на момент t.
// Ascendant и Midheaven здесь не считаются: для них нужно место, см. Angles.
func (c *Calculator) Longitudes(t time.Time, bodies []domain.Body) (map[domain.Body]float64, error) {
	T := julianCenturies(t)
	result := make(map[domain.Body]float64, len(bodies))

	for _, body := range bodies {
		el, ok := meanElements[body]
		if !ok {
			return nil, fmt.Errorf("no orbital elements for body %s", body)
		}
		result[body] = normalize(el.L0 + el.Rate*T)
	}

	return result, nil
}

// Angles Асцендент и MC для момента и места наблюдения.
// MC — эклиптическая проекция местного звёздного времени, Асцендент
// считается из MC и широты по стандартной формуле наклона эклиптики.
func (c *Calculator) Angles(t time.Time, lat, lon float64) (asc, mc float64, err error) {
	// Гринвичское звёздное время в градусах (линейная аппроксимация от J2000)
	gst := normalize(280.46062 + 360.98565*(t.Sub(j2000).Hours()/24.0))

	// Местное звёздное время
	lst := normalize(gst + lon)

	const obliquity = 23.4393 // наклон эклиптики, градусы

	lstRad := lst * math.Pi / 180.0
	oblRad := obliquity * math.Pi / 180.0
	latRad := lat * math.Pi / 180.0

	// MC: прямое восхождение меридиана, спроецированное на эклиптику
	mc = normalize(math.Atan2(math.Tan(lstRad), math.Cos(oblRad)) * 180.0 / math.Pi)
	// Atan2 теряет полуплоскость, восстанавливаем по LST
	if lst >= 90 && lst < 270 && (mc < 90 || mc >= 270) {
		mc = normalize(mc + 180)
	}

	// Асцендент по формуле с наклоном эклиптики и широтой места
	ascRad := math.Atan2(
		math.Cos(lstRad),
		-(math.Sin(lstRad)*math.Cos(oblRad) + math.Tan(latRad)*math.Sin(oblRad)),
	)
	asc = normalize(ascRad * 180.0 / math.Pi)

	return asc, mc, nil
}
