package app

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	server "github.com/KangasCode/nous-paradeigma/internal/adapters/primary/http"
	"github.com/KangasCode/nous-paradeigma/internal/adapters/secondary/gemini"
	kafkaAdapter "github.com/KangasCode/nous-paradeigma/internal/adapters/secondary/kafka"
	"github.com/KangasCode/nous-paradeigma/internal/adapters/secondary/storage/pg"
	"github.com/KangasCode/nous-paradeigma/internal/adapters/secondary/storage/redis"
	"github.com/KangasCode/nous-paradeigma/internal/pkg/logger"
)

type Config struct {
	Postgres *pg.Config           `envconfig:"POSTGRES"`
	Redis    *redis.Config        `envconfig:"REDIS"`
	Log      *logger.Config       `envconfig:"LOG"`
	Server   *server.Config       `envconfig:"APISERVER"`
	Gemini   gemini.Config        `envconfig:"GEMINI"`
	Kafka    *kafkaAdapter.Config `envconfig:"KAFKA"`

	// EnableScheduler выключается для реплик, обслуживающих только HTTP
	EnableScheduler bool `envconfig:"ENABLE_SCHEDULER" default:"true"`
	// EnableKafka выключает публикацию событий в окружениях без брокера
	EnableKafka bool `envconfig:"ENABLE_KAFKA" default:"false"`
	// EnableRedis выключает кэш транзитов в окружениях без Redis
	EnableRedis bool `envconfig:"ENABLE_REDIS" default:"false"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
