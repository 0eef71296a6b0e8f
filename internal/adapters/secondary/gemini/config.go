package gemini

// Config конфигурация генеративного клиента. Пустой APIKey — валидное
// состояние: клиент создаётся, но каждый вызов возвращает
// domain.ErrGenerationNotConfigured.
type Config struct {
	APIKey         string  `envconfig:"API_KEY"`
	Model          string  `envconfig:"MODEL" default:"gemini-2.5-flash"`
	TimeoutSeconds int     `envconfig:"TIMEOUT" default:"60"`
	Temperature    float32 `envconfig:"TEMPERATURE" default:"0.8"`
}
