package domain

import "time"

// Period период предсказания: ежедневное, еженедельное или ежемесячное.
// У каждого периода свой словесный бюджет, шаблон вывода и интервал рейт-лимита.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// AllPeriods порядок фиксирован: используется при генерации стартовых предсказаний
var AllPeriods = []Period{PeriodDaily, PeriodWeekly, PeriodMonthly}

func (p Period) IsValid() bool {
	switch p {
	case PeriodDaily, PeriodWeekly, PeriodMonthly:
		return true
	}
	return false
}

// Interval интервал рейт-лимита: новое предсказание этого периода доступно
// не раньше чем createdAt последнего + Interval
func (p Period) Interval() time.Duration {
	switch p {
	case PeriodDaily:
		return 24 * time.Hour
	case PeriodWeekly:
		return 7 * 24 * time.Hour
	case PeriodMonthly:
		return 30 * 24 * time.Hour
	}
	return 0
}
