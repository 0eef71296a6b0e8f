package prompt

import "fmt"

// ageBand возрастная полоса с собственным голосом: тематический фокус и
// степень формальности. Шесть непересекающихся диапазонов, выбирается ровно один.
type ageBand struct {
	min, max int // max = -1 для открытого верхнего диапазона
	voice    string
}

var ageBands = []ageBand{
	{13, 17, `AGE VOICE (13-17):
   - Focus on school, friendships, first experiences, self-discovery and identity.
   - Use a casual, encouraging and relatable voice; short sentences are fine.
   - Never mention romantic or financial commitments as obligations.`},
	{18, 24, `AGE VOICE (18-24):
   - Focus on studies, early career steps, independence, new relationships and finding direction.
   - Use an energetic, optimistic voice that respects the reader as an adult.`},
	{25, 34, `AGE VOICE (25-34):
   - Focus on career building, long-term relationships, life balance and personal ambitions.
   - Use a confident, peer-level voice; practical and forward-looking.`},
	{35, 49, `AGE VOICE (35-49):
   - Focus on established career, family dynamics, re-evaluation of goals and personal renewal.
   - Use a grounded, respectful voice with depth; avoid youthful slang.`},
	{50, 64, `AGE VOICE (50-64):
   - Focus on experience, mentoring, health awareness, meaningful relationships and new chapters.
   - Use a warm, measured and appreciative voice.`},
	{65, -1, `AGE VOICE (65+):
   - Focus on wisdom, legacy, family connections, calm wellbeing and enjoying the present.
   - Use a gentle, unhurried and respectful voice; formal address where the language allows.`},
}

// ageVoice возвращает директиву голоса для возраста, пустая строка если
// возраст неизвестен или вне поддерживаемых полос
func ageVoice(ageYears int) string {
	for _, band := range ageBands {
		if ageYears >= band.min && (band.max == -1 || ageYears <= band.max) {
			return band.voice
		}
	}
	return ""
}

// ageInstruction явная инструкция с возрастом пользователя для промпта
func ageInstruction(ageYears int) string {
	voice := ageVoice(ageYears)
	if voice == "" {
		return ""
	}
	return fmt.Sprintf("IMPORTANT: The user's age is %d years old. You MUST match the tone, focus, and language style of the age voice below.\n\n%s", ageYears, voice)
}
