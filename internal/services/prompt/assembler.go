package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KangasCode/nous-paradeigma/internal/domain"
)

// Input вход сборки промпта. Все поля берутся из сохранённого профиля и
// рассчитанных карт, ничего — из пользовательского ввода запроса.
type Input struct {
	ZodiacSign domain.ZodiacSign
	Period     domain.Period
	Natal      *domain.Chart
	Transits   *domain.Chart
	Aspects    []domain.AspectRecord
	FirstName  string
	LastName   string
	Language   domain.Language
	AgeYears   int // -1 если неизвестен
}

var languageInstructions = map[domain.Language]string{
	domain.LanguageFinnish: "IMPORTANT: Write ALL predictions in Finnish (Suomi). Use natural Finnish language.",
	domain.LanguageSwedish: "IMPORTANT: Write ALL predictions in Swedish (Svenska). Use natural Swedish language.",
	domain.LanguageEnglish: "Write predictions in English.",
}

// Assemble собирает полный промпт генерации в фиксированном порядке:
// преамбула о неизменности данных, общие правила, возрастной голос,
// правила периода, снапшот данных, закрывающая инструкция.
func Assemble(in Input) (string, error) {
	if !in.ZodiacSign.IsValid() {
		return "", domain.ErrInvalidBirthDate
	}
	if !in.Period.IsValid() {
		return "", domain.ErrUnsupportedPeriod
	}
	if !in.Language.IsValid() {
		return "", domain.ErrUnsupportedLanguage
	}

	var periodRules, outputFormat string
	switch in.Period {
	case domain.PeriodDaily:
		periodRules = dailyRules
		outputFormat = dailyOutputFormat(in.Language)
	case domain.PeriodWeekly:
		periodRules = weeklyRules
		outputFormat = weeklyOutputFormat(in.Language)
	case domain.PeriodMonthly:
		periodRules = monthlyRules
		outputFormat = monthlyOutputFormat(in.Language)
	}

	snapshot, err := buildSnapshotJSON(in)
	if err != nil {
		return "", fmt.Errorf("failed to serialize chart snapshot: %w", err)
	}

	var b strings.Builder
	b.WriteString("You are an astrology prediction engine.\n\n")
	b.WriteString(languageInstructions[in.Language])
	b.WriteString("\n")
	b.WriteString(immutableDataRules)
	b.WriteString(generalRules)

	if instruction := ageInstruction(in.AgeYears); instruction != "" {
		b.WriteString("\n")
		b.WriteString(instruction)
		b.WriteString("\n")
	}

	b.WriteString(periodRules)
	b.WriteString(vocabularyBank)
	b.WriteString(dataUsageRules)
	b.WriteString(outputFormat)

	b.WriteString("\n=== INPUT DATA (JSON) ===\n")
	b.WriteString(snapshot)
	b.WriteString("\n=== END INPUT DATA ===\n\n")

	b.WriteString(fmt.Sprintf("Generate the %s prediction for %s now.\n", in.Period, in.ZodiacSign.DisplayName()))
	b.WriteString("Use ONLY the data provided above. Do not invent aspects or positions not in the input.")

	return b.String(), nil
}

// buildSnapshotJSON структурированный вход: пользователь, натальная карта,
// текущие транзиты и топ-10 аспектов
func buildSnapshotJSON(in Input) (string, error) {
	name := strings.TrimSpace(in.FirstName + " " + in.LastName)
	if name == "" {
		name = "Cosmic Traveler"
	}

	input := struct {
		User struct {
			Name       string                 `json:"name"`
			SunSign    string                 `json:"sun_sign"`
			BirthChart []domain.ChartPosition `json:"birth_chart"`
		} `json:"user"`
		CurrentTransits []domain.ChartPosition `json:"current_transits"`
		Aspects         []domain.AspectRecord  `json:"aspects"`
	}{}

	input.User.Name = name
	input.User.SunSign = in.ZodiacSign.DisplayName()
	if in.Natal != nil {
		input.User.BirthChart = in.Natal.Positions
	}
	if in.Transits != nil {
		input.CurrentTransits = in.Transits.Positions
	}
	input.Aspects = in.Aspects
	if input.Aspects == nil {
		input.Aspects = []domain.AspectRecord{}
	}

	data, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
