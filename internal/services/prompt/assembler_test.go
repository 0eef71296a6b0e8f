package prompt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
)

func sampleCharts() (*domain.Chart, *domain.Chart) {
	natal := &domain.Chart{
		Kind:        domain.ChartNatal,
		Source:      domain.SourceEphemeris,
		ComputedFor: time.Date(1996, 4, 15, 12, 0, 0, 0, time.UTC),
		Positions: []domain.ChartPosition{
			{Body: domain.Sun, Sign: domain.Aries, DegreeInSign: 25.5, Longitude: 25.5, House: 1},
		},
	}
	transits := &domain.Chart{
		Kind:        domain.ChartTransit,
		Source:      domain.SourceEphemeris,
		ComputedFor: time.Date(2025, 8, 10, 12, 0, 0, 0, time.UTC),
		Positions: []domain.ChartPosition{
			{Body: domain.Sun, Sign: domain.Leo, DegreeInSign: 18.0, Longitude: 138.0, House: 5},
		},
	}
	return natal, transits
}

func sampleInput(period domain.Period, lang domain.Language, age int) Input {
	natal, transits := sampleCharts()
	return Input{
		ZodiacSign: domain.Aries,
		Period:     period,
		Natal:      natal,
		Transits:   transits,
		Aspects: []domain.AspectRecord{
			{TransitBody: domain.Sun, NatalBody: domain.Sun, Kind: domain.Trine, Angle: 112.5, Orb: 7.5, HouseEffect: "Self and identity"},
		},
		FirstName: "Aino",
		LastName:  "Virtanen",
		Language:  lang,
		AgeYears:  age,
	}
}

func TestAssembleWeeklyEnglish(t *testing.T) {
	out, err := Assemble(sampleInput(domain.PeriodWeekly, domain.LanguageEnglish, 29))
	require.NoError(t, err)

	assert.Contains(t, out, "You are an astrology prediction engine.")
	assert.Contains(t, out, "Write predictions in English.")

	// Шаблон недельного вывода
	assert.Contains(t, out, "Weekly Phrase: [one sentence]")
	assert.Contains(t, out, "The Seven Lights Index: [7 different numbers between 1-40]")
	assert.Contains(t, out, "Weekly Advice: [one actionable recommendation]")

	// Возраст 29 попадает в полосу 25-34
	assert.Contains(t, out, "The user's age is 29 years old")
	assert.Contains(t, out, "AGE VOICE (25-34)")
	assert.NotContains(t, out, "AGE VOICE (18-24)")

	// Снапшот данных между маркерами
	assert.Contains(t, out, "=== INPUT DATA (JSON) ===")
	assert.Contains(t, out, "=== END INPUT DATA ===")
	assert.Contains(t, out, `"name": "Aino Virtanen"`)
	assert.Contains(t, out, `"sun_sign": "Aries"`)

	assert.Contains(t, out, "Generate the weekly prediction for Aries now.")
}

func TestAssemblePeriodTemplates(t *testing.T) {
	tests := []struct {
		period   domain.Period
		language domain.Language
		marker   string
	}{
		{domain.PeriodDaily, domain.LanguageFinnish, "Päivän sana:"},
		{domain.PeriodDaily, domain.LanguageEnglish, "Word of the Day:"},
		{domain.PeriodDaily, domain.LanguageSwedish, "Dagens ord:"},
		{domain.PeriodWeekly, domain.LanguageFinnish, "Viikon lause:"},
		{domain.PeriodWeekly, domain.LanguageSwedish, "Veckans fras:"},
		{domain.PeriodMonthly, domain.LanguageFinnish, "Kuukauden miete:"},
		{domain.PeriodMonthly, domain.LanguageEnglish, "Monthly Thought:"},
		{domain.PeriodMonthly, domain.LanguageSwedish, "Månadens tanke:"},
	}

	for _, tt := range tests {
		t.Run(string(tt.period)+"_"+string(tt.language), func(t *testing.T) {
			out, err := Assemble(sampleInput(tt.period, tt.language, 40))
			require.NoError(t, err)
			assert.Contains(t, out, tt.marker)
		})
	}
}

func TestAssembleWeeklyIndexOnlyForWeekly(t *testing.T) {
	daily, err := Assemble(sampleInput(domain.PeriodDaily, domain.LanguageEnglish, 29))
	require.NoError(t, err)
	assert.NotContains(t, daily, "The Seven Lights Index")

	monthly, err := Assemble(sampleInput(domain.PeriodMonthly, domain.LanguageEnglish, 29))
	require.NoError(t, err)
	assert.NotContains(t, monthly, "The Seven Lights Index")
}

func TestAssembleLanguageDirectives(t *testing.T) {
	fi, err := Assemble(sampleInput(domain.PeriodDaily, domain.LanguageFinnish, 29))
	require.NoError(t, err)
	assert.Contains(t, fi, "Write ALL predictions in Finnish")

	sv, err := Assemble(sampleInput(domain.PeriodDaily, domain.LanguageSwedish, 29))
	require.NoError(t, err)
	assert.Contains(t, sv, "Write ALL predictions in Swedish")
}

func TestAssembleUnknownAgeOmitsVoice(t *testing.T) {
	out, err := Assemble(sampleInput(domain.PeriodDaily, domain.LanguageEnglish, -1))
	require.NoError(t, err)
	assert.NotContains(t, out, "AGE VOICE")
	assert.NotContains(t, out, "The user's age is")
}

func TestAssembleFallbackName(t *testing.T) {
	in := sampleInput(domain.PeriodDaily, domain.LanguageEnglish, 29)
	in.FirstName = ""
	in.LastName = ""

	out, err := Assemble(in)
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Cosmic Traveler"`)
}

func TestAssembleValidation(t *testing.T) {
	in := sampleInput(domain.PeriodDaily, domain.LanguageEnglish, 29)
	in.ZodiacSign = "ophiuchus"
	_, err := Assemble(in)
	assert.ErrorIs(t, err, domain.ErrInvalidBirthDate)

	in = sampleInput(domain.PeriodDaily, domain.LanguageEnglish, 29)
	in.Period = "hourly"
	_, err = Assemble(in)
	assert.ErrorIs(t, err, domain.ErrUnsupportedPeriod)

	in = sampleInput(domain.PeriodDaily, domain.LanguageEnglish, 29)
	in.Language = "de"
	_, err = Assemble(in)
	assert.ErrorIs(t, err, domain.ErrUnsupportedLanguage)
}

func TestAssembleEmptyAspectsSerializedAsArray(t *testing.T) {
	in := sampleInput(domain.PeriodDaily, domain.LanguageEnglish, 29)
	in.Aspects = nil

	out, err := Assemble(in)
	require.NoError(t, err)
	assert.Contains(t, out, `"aspects": []`)
}

func TestAgeBandBoundaries(t *testing.T) {
	tests := []struct {
		age      int
		expected string
	}{
		{13, "AGE VOICE (13-17)"},
		{17, "AGE VOICE (13-17)"},
		{18, "AGE VOICE (18-24)"},
		{24, "AGE VOICE (18-24)"},
		{25, "AGE VOICE (25-34)"},
		{34, "AGE VOICE (25-34)"},
		{35, "AGE VOICE (35-49)"},
		{49, "AGE VOICE (35-49)"},
		{50, "AGE VOICE (50-64)"},
		{64, "AGE VOICE (50-64)"},
		{65, "AGE VOICE (65+)"},
		{99, "AGE VOICE (65+)"},
	}

	for _, tt := range tests {
		voice := ageVoice(tt.age)
		assert.True(t, strings.HasPrefix(voice, tt.expected), "age %d", tt.age)
	}

	assert.Empty(t, ageVoice(12))
	assert.Empty(t, ageVoice(-1))
	assert.Empty(t, ageVoice(0))
}
