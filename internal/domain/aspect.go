package domain

// AspectKind один из пяти классических аспектов
type AspectKind string

const (
	Conjunction AspectKind = "Conjunction"
	Sextile     AspectKind = "Sextile"
	Square      AspectKind = "Square"
	Trine       AspectKind = "Trine"
	Opposition  AspectKind = "Opposition"
)

// AspectDefinition идеальный угол аспекта и максимально допустимый орбис
type AspectDefinition struct {
	Kind   AspectKind
	Angle  float64
	MaxOrb float64
}

// AspectDefinitions порядок проверки фиксирован
var AspectDefinitions = []AspectDefinition{
	{Kind: Conjunction, Angle: 0, MaxOrb: 8},
	{Kind: Sextile, Angle: 60, MaxOrb: 4},
	{Kind: Square, Angle: 90, MaxOrb: 6},
	{Kind: Trine, Angle: 120, MaxOrb: 6},
	{Kind: Opposition, Angle: 180, MaxOrb: 8},
}

// AspectRecord угловое отношение между транзитным и натальным телом.
// HouseEffect — сфера жизни по дому натального тела.
type AspectRecord struct {
	TransitBody Body       `json:"transit_planet"`
	NatalBody   Body       `json:"natal_planet"`
	Kind        AspectKind `json:"aspect"`
	Angle       float64    `json:"angle"`
	Orb         float64    `json:"orb"`
	HouseEffect string     `json:"house_effect"`
}

// HouseMeanings сферы жизни по домам, фиксированный словарь на 12 записей
var HouseMeanings = map[int]string{
	1:  "Self and identity",
	2:  "Finances and values",
	3:  "Communication and learning",
	4:  "Home and family",
	5:  "Creativity and self-expression",
	6:  "Work and health",
	7:  "Partnerships and relationships",
	8:  "Transformation and shared resources",
	9:  "Higher learning and travel",
	10: "Career and public image",
	11: "Friends and aspirations",
	12: "Spirituality and subconscious",
}

// HouseEffect сфера жизни для дома, общий ярлык для невалидных номеров
func HouseEffect(house int) string {
	if effect, ok := HouseMeanings[house]; ok {
		return effect
	}
	return "General life areas"
}
