package astrology

import (
	"sort"
	"strings"
)

// GeoPoint координаты места рождения
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// defaultLocation Хельсинки: молчаливый дефолт для неразрешённых городов.
// Политика сознательная, менять только с продуктовым согласованием.
var defaultLocation = GeoPoint{Latitude: 60.1699, Longitude: 24.9384}

// cityCoordinates фиксированная таблица городов
var cityCoordinates = map[string]GeoPoint{
	"helsinki":   {60.1699, 24.9384},
	"espoo":      {60.2055, 24.6559},
	"tampere":    {61.4978, 23.7610},
	"vantaa":     {60.2934, 25.0378},
	"oulu":       {65.0121, 25.4651},
	"turku":      {60.4518, 22.2666},
	"jyvaskyla":  {62.2426, 25.7473},
	"lahti":      {60.9827, 25.6612},
	"kuopio":     {62.8924, 27.6770},
	"pori":       {61.4851, 21.7974},
	"rovaniemi":  {66.5039, 25.7294},
	"stockholm":  {59.3293, 18.0686},
	"gothenburg": {57.7089, 11.9746},
	"malmo":      {55.6050, 13.0038},
	"uppsala":    {59.8586, 17.6389},
	"oslo":       {59.9139, 10.7522},
	"bergen":     {60.3913, 5.3221},
	"copenhagen": {55.6761, 12.5683},
	"tallinn":    {59.4370, 24.7536},
	"riga":       {56.9496, 24.1052},
	"london":     {51.5074, -0.1278},
	"berlin":     {52.5200, 13.4050},
	"paris":      {48.8566, 2.3522},
	"madrid":     {40.4168, -3.7038},
	"rome":       {41.9028, 12.4964},
	"new york":   {40.7128, -74.0060},
}

// cityNames имена таблицы в алфавитном порядке: перебор подстрок идёт по
// фиксированному порядку, неоднозначное имя всегда разрешается одинаково
var cityNames = func() []string {
	names := make([]string, 0, len(cityCoordinates))
	for name := range cityCoordinates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// ResolveLocation разрешает название города в координаты: сначала точное
// совпадение без учёта регистра, затем вхождение подстроки в обе стороны.
// Неразрешённые имена молча падают на Хельсинки — это не ошибка.
func ResolveLocation(city string) GeoPoint {
	name := strings.ToLower(strings.TrimSpace(city))
	if name == "" {
		return defaultLocation
	}

	if point, ok := cityCoordinates[name]; ok {
		return point
	}

	for _, known := range cityNames {
		if strings.Contains(known, name) || strings.Contains(name, known) {
			return cityCoordinates[known]
		}
	}

	return defaultLocation
}
