package domain

import (
	"math"
	"time"
)

// Body небесное тело карты
type Body string

const (
	Sun       Body = "Sun"
	Moon      Body = "Moon"
	Mercury   Body = "Mercury"
	Venus     Body = "Venus"
	Mars      Body = "Mars"
	Jupiter   Body = "Jupiter"
	Saturn    Body = "Saturn"
	Uranus    Body = "Uranus"
	Neptune   Body = "Neptune"
	Pluto     Body = "Pluto"
	Ascendant Body = "Ascendant"
	Midheaven Body = "Midheaven"
)

// NatalBodies 12 тел натальной карты (с Асцендентом и MC)
var NatalBodies = []Body{
	Sun, Moon, Mercury, Venus, Mars, Jupiter,
	Saturn, Uranus, Neptune, Pluto, Ascendant, Midheaven,
}

// TransitBodies 10 тел транзитной карты: углы (Asc/MC) зависят от места,
// для транзитов место нейтральное, поэтому их нет
var TransitBodies = []Body{
	Sun, Moon, Mercury, Venus, Mars, Jupiter,
	Saturn, Uranus, Neptune, Pluto,
}

// ChartKind вид карты
type ChartKind string

const (
	ChartNatal   ChartKind = "natal"
	ChartTransit ChartKind = "transit"
)

// ChartSource источник данных карты. Mock-путь должен быть различим ниже
// по конвейеру: остальной пайплайн обрабатывает такие данные как настоящие.
type ChartSource string

const (
	SourceEphemeris ChartSource = "ephemeris"
	SourceMock      ChartSource = "mock"
)

// ChartPosition позиция одного тела: знак, градус в знаке (0-30),
// абсолютная эклиптическая долгота (0-360) и дом (1-12)
type ChartPosition struct {
	Body         Body       `json:"planet"`
	Sign         ZodiacSign `json:"sign"`
	DegreeInSign float64    `json:"degree"`
	Longitude    float64    `json:"lon"`
	House        int        `json:"house"`
}

// Chart упорядоченный набор позиций плюс метаданные вычисления
type Chart struct {
	Kind        ChartKind       `json:"kind"`
	Source      ChartSource     `json:"source"`
	ComputedFor time.Time       `json:"computed_for"`
	Latitude    float64         `json:"lat"`
	Longitude   float64         `json:"lon"`
	Positions   []ChartPosition `json:"positions"`
}

// Position возвращает позицию тела, nil если тела в карте нет
func (c *Chart) Position(body Body) *ChartPosition {
	for i := range c.Positions {
		if c.Positions[i].Body == body {
			return &c.Positions[i]
		}
	}
	return nil
}

// IsMock true для захардкоженной карты, когда эфемеридный слой недоступен
func (c *Chart) IsMock() bool {
	return c.Source == SourceMock
}

// Round2 округление до 2 знаков: точность позиций карты по контракту
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
