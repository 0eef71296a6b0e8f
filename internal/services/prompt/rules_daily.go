package prompt

import "github.com/KangasCode/nous-paradeigma/internal/domain"

// dailyRules правила ежедневного предсказания: слово дня выводится из уже
// написанного тела, итог начинается отдельной строкой с ним
const dailyRules = `
DAILY HOROSCOPE RULES

1. Focus of the Day:
   - Describe the energetic or emotional tone of the day.
   - Highlight one opportunity or subtle challenge.
   - Keep the scope limited to today, short-term dynamics only.

2. Structure:
   - Internally draft the full daily horoscope body first.
   - Then derive one short theme word, one word or very short phrase that clearly
     captures the core energy or theme of the already drafted text. The theme word
     must not introduce topics absent from the body.
   - The final output MUST begin with a separate theme word line.
   - Immediately after this line, output the full daily horoscope text in
     paragraph form, addressing the reader directly.

3. Limitations:
   - No long-term predictions.
   - No references to weekly or monthly patterns.
   - No fallback or placeholder text allowed.

4. Output Requirement:
   - End with a practical suggestion line in the customer's language.

5. Word Count:
   - 80 to 140 words, excluding the theme word line.
`

const dailyOutputFormatFI = `
MUOTO (TÄRKEÄÄ - ÄLÄ KÄYTÄ ** TAI * MERKINTÖJÄ):

Päivän sana: [yksi sana tai lyhyt ilmaus]

[Ennustuksen teksti 80-140 sanaa, suoraan lukijalle]

Päivän neuvo: [yksi käytännön vinkki]
`

const dailyOutputFormatEN = `
OUTPUT FORMAT (IMPORTANT - DO NOT USE ** OR * MARKERS):

Word of the Day: [one word or short phrase]

[Prediction text 80-140 words, addressing reader directly]

Daily Advice: [one practical tip]
`

const dailyOutputFormatSV = `
UTMATNINGSFORMAT (VIKTIGT - ANVÄND INTE ** ELLER * MARKERINGAR):

Dagens ord: [ett ord eller kort fras]

[Förutsägelsetext 80-140 ord, tilltal direkt till läsaren]

Dagens råd: [ett praktiskt tips]
`

func dailyOutputFormat(language domain.Language) string {
	switch language {
	case domain.LanguageFinnish:
		return dailyOutputFormatFI
	case domain.LanguageSwedish:
		return dailyOutputFormatSV
	default:
		return dailyOutputFormatEN
	}
}
