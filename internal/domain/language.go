package domain

// Language язык предсказания клиента. Закрытый набор: заголовки секций
// локализованы и никогда не остаются на другом языке, чем тело текста.
type Language string

const (
	LanguageFinnish Language = "fi"
	LanguageEnglish Language = "en"
	LanguageSwedish Language = "sv"
)

func (l Language) IsValid() bool {
	switch l {
	case LanguageFinnish, LanguageEnglish, LanguageSwedish:
		return true
	}
	return false
}

// OrDefault язык по умолчанию — финский, как у основной аудитории продукта
func (l Language) OrDefault() Language {
	if l.IsValid() {
		return l
	}
	return LanguageFinnish
}
