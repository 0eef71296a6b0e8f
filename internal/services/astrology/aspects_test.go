package astrology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
)

func position(body domain.Body, lon float64, house int) domain.ChartPosition {
	return domain.ChartPosition{
		Body:         body,
		Sign:         domain.SignForLongitude(lon),
		DegreeInSign: lon - float64(int(lon/30))*30,
		Longitude:    lon,
		House:        house,
	}
}

func TestComputeAspectsTrineWithinOrb(t *testing.T) {
	natal := []domain.ChartPosition{position(domain.Sun, 100.0, 4)}
	transit := []domain.ChartPosition{position(domain.Mars, 225.8, 0)}

	records := ComputeAspects(natal, transit)

	require.Len(t, records, 1)
	assert.Equal(t, domain.Trine, records[0].Kind)
	assert.Equal(t, domain.Mars, records[0].TransitBody)
	assert.Equal(t, domain.Sun, records[0].NatalBody)
	assert.Equal(t, 125.8, records[0].Angle)
	assert.Equal(t, 5.8, records[0].Orb)
	assert.Equal(t, domain.HouseMeanings[4], records[0].HouseEffect)
}

func TestComputeAspectsOutsideOrbIgnored(t *testing.T) {
	// 129 градусов: 9 от трина при орбисе 6, 39 от квадрата при орбисе 6
	natal := []domain.ChartPosition{position(domain.Sun, 100.0, 1)}
	transit := []domain.ChartPosition{position(domain.Mars, 229.0, 0)}

	records := ComputeAspects(natal, transit)
	assert.Empty(t, records)
}

func TestComputeAspectsWrapAround(t *testing.T) {
	// 350 и 53: разница 297 сводится к 63 — секстиль с орбисом 3
	natal := []domain.ChartPosition{position(domain.Sun, 350.0, 12)}
	transit := []domain.ChartPosition{position(domain.Moon, 53.0, 0)}

	records := ComputeAspects(natal, transit)

	require.Len(t, records, 1)
	assert.Equal(t, domain.Sextile, records[0].Kind)
	assert.Equal(t, 63.0, records[0].Angle)
	assert.Equal(t, 3.0, records[0].Orb)
}

func TestComputeAspectsSignRelativeApproximation(t *testing.T) {
	// Обе долготы меньше 30: восстанавливаются как signIndex*30 + degree.
	// Лев 10 -> 130, Близнецы 10 -> 70, разница 60 — точный секстиль.
	natal := []domain.ChartPosition{{
		Body: domain.Venus, Sign: domain.Gemini, DegreeInSign: 10, Longitude: 10, House: 3,
	}}
	transit := []domain.ChartPosition{{
		Body: domain.Sun, Sign: domain.Leo, DegreeInSign: 10, Longitude: 10,
	}}

	records := ComputeAspects(natal, transit)

	require.Len(t, records, 1)
	assert.Equal(t, domain.Sextile, records[0].Kind)
	assert.Equal(t, 60.0, records[0].Angle)
	assert.Equal(t, 0.0, records[0].Orb)
}

func TestComputeAspectsNoApproximationForAbsoluteLongitudes(t *testing.T) {
	// Одна долгота >= 30: значения трактуются как абсолютные,
	// 10 и 70 дают тот же секстиль без восстановления по знаку
	natal := []domain.ChartPosition{position(domain.Venus, 70.0, 3)}
	transit := []domain.ChartPosition{{
		Body: domain.Sun, Sign: domain.Leo, DegreeInSign: 10, Longitude: 10,
	}}

	records := ComputeAspects(natal, transit)

	require.Len(t, records, 1)
	assert.Equal(t, domain.Sextile, records[0].Kind)
}

func TestComputeAspectsSortedByOrbAndTruncated(t *testing.T) {
	// 12 натальных тел в точном соединении и рядом: больше 10 записей
	var natal []domain.ChartPosition
	for i, body := range domain.NatalBodies {
		natal = append(natal, position(body, 100.0+float64(i)*0.5, i+1))
	}
	transit := []domain.ChartPosition{position(domain.Sun, 100.0, 0)}

	records := ComputeAspects(natal, transit)

	require.Len(t, records, 10)
	for i := 1; i < len(records); i++ {
		assert.LessOrEqual(t, records[i-1].Orb, records[i].Orb)
	}
	// Самый тесный аспект — точное соединение
	assert.Equal(t, 0.0, records[0].Orb)
}

func TestComputeAspectsStableOrderForEqualOrbs(t *testing.T) {
	// Два натальных тела на одинаковом орбисе: порядок следования транзит-мажор
	natal := []domain.ChartPosition{
		position(domain.Sun, 103.0, 1),
		position(domain.Moon, 97.0, 2),
	}
	transit := []domain.ChartPosition{position(domain.Mars, 100.0, 0)}

	records := ComputeAspects(natal, transit)

	require.Len(t, records, 2)
	assert.Equal(t, domain.Sun, records[0].NatalBody)
	assert.Equal(t, domain.Moon, records[1].NatalBody)
}

func TestComputeAspectsEmptyInputs(t *testing.T) {
	assert.Empty(t, ComputeAspects(nil, nil))
	assert.Empty(t, ComputeAspects([]domain.ChartPosition{position(domain.Sun, 10, 1)}, nil))
}

func TestHouseEffectFallback(t *testing.T) {
	assert.Equal(t, "General life areas", domain.HouseEffect(0))
	assert.Equal(t, "General life areas", domain.HouseEffect(13))
	assert.Equal(t, domain.HouseMeanings[1], domain.HouseEffect(1))
	assert.Equal(t, domain.HouseMeanings[12], domain.HouseEffect(12))
}
