package prompt

import "github.com/KangasCode/nous-paradeigma/internal/domain"

// monthlyRules правила ежемесячного предсказания
const monthlyRules = `
MONTHLY HOROSCOPE RULES

1. Focus of the Month:
   - Describe two or three major themes shaping the month.
   - Emphasize development, clarity, internal shifts, and long-term influences.
   - Describe how energy may evolve from early to later weeks.

2. Structure:
   - Internally draft the full monthly horoscope body first.
   - Then create the monthly thought, one or two sentences that condense the main
     themes and emotional focus of the month, clearly derived from the drafted
     text. The thought must not introduce topics absent from the body.
   - The final output MUST begin with a separate monthly thought line.
   - Immediately after this line, output the full monthly horoscope text in
     paragraph form, addressing the reader directly.

3. Restrictions:
   - No exact dates, promises, or deterministic predictions.
   - No health or financial guarantees.
   - No fallback text is allowed under any circumstances.

4. Output Requirement:
   - End with a summary intention line in the customer's language.

5. Word Count:
   - 180 to 300 words, excluding the monthly thought line.

6. Content Areas to Cover:
   - Main theme of the month
   - Work, career, and professional life
   - Relationships and social connections
   - Personal well-being and energy
`

const monthlyOutputFormatFI = `
MUOTO (TÄRKEÄÄ - ÄLÄ KÄYTÄ ** TAI * MERKINTÖJÄ):

Kuukauden miete: [yksi tai kaksi lausetta]

[Ennustuksen teksti 180-300 sanaa kattaen:
- Kuukauden pääteema
- Työ ja ura
- Ihmissuhteet
- Hyvinvointi]

Kuukauden aikomus: [tiivistelmälause]
`

const monthlyOutputFormatEN = `
OUTPUT FORMAT (IMPORTANT - DO NOT USE ** OR * MARKERS):

Monthly Thought: [one or two sentences]

[Prediction text 180-300 words covering:
- Main theme of the month
- Career and work
- Relationships
- Well-being]

Monthly Intention: [summary sentence]
`

const monthlyOutputFormatSV = `
UTMATNINGSFORMAT (VIKTIGT - ANVÄND INTE ** ELLER * MARKERINGAR):

Månadens tanke: [en eller två meningar]

[Förutsägelsetext 180-300 ord som täcker:
- Månadens huvudtema
- Karriär och arbete
- Relationer
- Välbefinnande]

Månadens intention: [sammanfattande mening]
`

func monthlyOutputFormat(language domain.Language) string {
	switch language {
	case domain.LanguageFinnish:
		return monthlyOutputFormatFI
	case domain.LanguageSwedish:
		return monthlyOutputFormatSV
	default:
		return monthlyOutputFormatEN
	}
}
