package domain

import "strings"

// ZodiacSign знак зодиака. Вычисляется один раз из даты рождения при создании
// профиля и после этого не меняется.
type ZodiacSign string

const (
	Aries       ZodiacSign = "aries"
	Taurus      ZodiacSign = "taurus"
	Gemini      ZodiacSign = "gemini"
	Cancer      ZodiacSign = "cancer"
	Leo         ZodiacSign = "leo"
	Virgo       ZodiacSign = "virgo"
	Libra       ZodiacSign = "libra"
	Scorpio     ZodiacSign = "scorpio"
	Sagittarius ZodiacSign = "sagittarius"
	Capricorn   ZodiacSign = "capricorn"
	Aquarius    ZodiacSign = "aquarius"
	Pisces      ZodiacSign = "pisces"
)

// ZodiacOrder фиксированный порядок знаков, начиная с Овна.
// Используется для аппроксимации абсолютной долготы: signIndex*30 + degreeInSign.
var ZodiacOrder = []ZodiacSign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

func (z ZodiacSign) IsValid() bool {
	for _, s := range ZodiacOrder {
		if s == z {
			return true
		}
	}
	return false
}

// Index возвращает позицию знака в зодиакальном круге (Овен = 0), -1 если знак неизвестен
func (z ZodiacSign) Index() int {
	for i, s := range ZodiacOrder {
		if s == z {
			return i
		}
	}
	return -1
}

// DisplayName имя знака с заглавной буквы для промпта и писем
func (z ZodiacSign) DisplayName() string {
	if z == "" {
		return "Unknown"
	}
	return strings.ToUpper(string(z[0])) + string(z[1:])
}

// SignForLongitude возвращает знак по абсолютной эклиптической долготе (0-360)
func SignForLongitude(lon float64) ZodiacSign {
	for lon < 0 {
		lon += 360
	}
	idx := int(lon/30) % 12
	return ZodiacOrder[idx]
}

// ZodiacInfo справочные данные знака: стихия, модальность, управитель, символ
type ZodiacInfo struct {
	Element  string `json:"element"`
	Modality string `json:"modality"`
	Ruler    string `json:"ruler"`
	Symbol   string `json:"symbol"`
}

var zodiacInfo = map[ZodiacSign]ZodiacInfo{
	Aries:       {Element: "fire", Modality: "cardinal", Ruler: "Mars", Symbol: "♈"},
	Taurus:      {Element: "earth", Modality: "fixed", Ruler: "Venus", Symbol: "♉"},
	Gemini:      {Element: "air", Modality: "mutable", Ruler: "Mercury", Symbol: "♊"},
	Cancer:      {Element: "water", Modality: "cardinal", Ruler: "Moon", Symbol: "♋"},
	Leo:         {Element: "fire", Modality: "fixed", Ruler: "Sun", Symbol: "♌"},
	Virgo:       {Element: "earth", Modality: "mutable", Ruler: "Mercury", Symbol: "♍"},
	Libra:       {Element: "air", Modality: "cardinal", Ruler: "Venus", Symbol: "♎"},
	Scorpio:     {Element: "water", Modality: "fixed", Ruler: "Pluto", Symbol: "♏"},
	Sagittarius: {Element: "fire", Modality: "mutable", Ruler: "Jupiter", Symbol: "♐"},
	Capricorn:   {Element: "earth", Modality: "cardinal", Ruler: "Saturn", Symbol: "♑"},
	Aquarius:    {Element: "air", Modality: "fixed", Ruler: "Uranus", Symbol: "♒"},
	Pisces:      {Element: "water", Modality: "mutable", Ruler: "Neptune", Symbol: "♓"},
}

// Info возвращает справочные данные знака
func (z ZodiacSign) Info() ZodiacInfo {
	return zodiacInfo[z]
}
