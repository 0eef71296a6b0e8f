package astrology

import (
	"time"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
)

// zodiacRange границы знака: (месяц, день) начала и конца
type zodiacRange struct {
	startMonth, startDay int
	endMonth, endDay     int
	sign                 domain.ZodiacSign
}

// zodiacRanges фиксированные диапазоны дат. Козерог здесь только для полноты
// таблицы: его переход через границу года проверяется отдельно до цикла.
var zodiacRanges = []zodiacRange{
	{1, 20, 2, 18, domain.Aquarius},
	{2, 19, 3, 20, domain.Pisces},
	{3, 21, 4, 19, domain.Aries},
	{4, 20, 5, 20, domain.Taurus},
	{5, 21, 6, 20, domain.Gemini},
	{6, 21, 7, 22, domain.Cancer},
	{7, 23, 8, 22, domain.Leo},
	{8, 23, 9, 22, domain.Virgo},
	{9, 23, 10, 22, domain.Libra},
	{10, 23, 11, 21, domain.Scorpio},
	{11, 22, 12, 21, domain.Sagittarius},
	{12, 22, 1, 19, domain.Capricorn},
}

// DeriveSign вычисляет знак зодиака из даты рождения. Детерминированно и без
// побочных эффектов: одна и та же дата всегда даёт один и тот же знак.
// Результат становится иммутабельным состоянием профиля.
func DeriveSign(birthDate time.Time) (domain.ZodiacSign, error) {
	if err := ValidateBirthDate(birthDate); err != nil {
		return "", err
	}

	month := int(birthDate.Month())
	day := birthDate.Day()

	// Козерог переходит через границу года, проверяем до общего цикла
	if (month == 12 && day >= 22) || (month == 1 && day <= 19) {
		return domain.Capricorn, nil
	}

	for _, r := range zodiacRanges {
		if r.startMonth == r.endMonth {
			if month == r.startMonth && day >= r.startDay && day <= r.endDay {
				return r.sign, nil
			}
			continue
		}
		if (month == r.startMonth && day >= r.startDay) || (month == r.endMonth && day <= r.endDay) {
			return r.sign, nil
		}
	}

	return "", domain.ErrInvalidBirthDate
}

// ValidateBirthDate дата рождения должна лежать между 1900 годом и "сейчас"
func ValidateBirthDate(birthDate time.Time) error {
	if birthDate.IsZero() {
		return domain.ErrInvalidBirthDate
	}
	if birthDate.Year() < 1900 || birthDate.After(time.Now()) {
		return domain.ErrInvalidBirthDate
	}
	return nil
}
