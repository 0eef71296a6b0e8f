package astrology

import (
	"math"
	"sort"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
)

// maxAspects топ самых тесных аспектов, передаваемых в сборку промпта
const maxAspects = 10

// ComputeAspects вычисляет аспекты между транзитными и натальными телами.
// Для каждой пары угловая разница сводится к [0,180] и проверяется против
// пяти классических аспектов. Результат отсортирован по орбису по возрастанию
// (самые тесные первыми), усечён до 10 записей. Сортировка стабильная:
// при равных орбисах сохраняется порядок обхода транзит-мажор.
func ComputeAspects(natal, transit []domain.ChartPosition) []domain.AspectRecord {
	var records []domain.AspectRecord

	for _, t := range transit {
		for _, n := range natal {
			transitLon := t.Longitude
			natalLon := n.Longitude

			// Если доступны только градусы внутри знака (0-30), приближаем
			// абсолютную долготу как signIndex*30 + degreeInSign. Сознательно
			// неточное приближение, сохраняется как есть.
			if transitLon < 30 && natalLon < 30 {
				if idx := t.Sign.Index(); idx >= 0 {
					transitLon = float64(idx)*30 + transitLon
				}
				if idx := n.Sign.Index(); idx >= 0 {
					natalLon = float64(idx)*30 + natalLon
				}
			}

			diff := math.Abs(transitLon - natalLon)
			if diff > 180 {
				diff = 360 - diff
			}

			for _, def := range domain.AspectDefinitions {
				orb := math.Abs(diff - def.Angle)
				if orb <= def.MaxOrb {
					records = append(records, domain.AspectRecord{
						TransitBody: t.Body,
						NatalBody:   n.Body,
						Kind:        def.Kind,
						Angle:       round1(diff),
						Orb:         round1(orb),
						HouseEffect: domain.HouseEffect(n.House),
					})
				}
			}
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Orb < records[j].Orb
	})

	if len(records) > maxAspects {
		records = records[:maxAspects]
	}
	return records
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
