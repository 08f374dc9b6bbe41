package cncwidgets

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/iwtcode/cncWidgets/tinyg2"
	"github.com/iwtcode/cncWidgets/webcam"
	"github.com/joho/godotenv"
)

// Config хранит модель конфигурации библиотеки
type Config struct {
	LogLevel             string        `env:"CNC_LOG_LEVEL" envDefault:"info"`
	Locale               string        `env:"CNC_LOCALE" envDefault:"en"`
	PlannerBufferDefault int           `env:"CNC_PLANNER_BUFFER_DEFAULT" envDefault:"28"`
	WebcamRefreshDelay   time.Duration `env:"CNC_WEBCAM_REFRESH_DELAY" envDefault:"10ms"`
}

// DefaultConfig возвращает конфигурацию по умолчанию
func DefaultConfig() *Config {
	return &Config{
		LogLevel:             "info",
		Locale:               "en",
		PlannerBufferDefault: tinyg2.DefaultPlannerBufferMax,
		WebcamRefreshDelay:   webcam.DefaultRefreshDelay,
	}
}

// Load загружает конфигурацию из .env файла (если он есть) и переменных окружения
func Load(envFiles ...string) (*Config, error) {
	// Отсутствие .env не является ошибкой
	_ = godotenv.Load(envFiles...)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.PlannerBufferDefault < 0 {
		return nil, fmt.Errorf("CNC_PLANNER_BUFFER_DEFAULT must not be negative, got %d", cfg.PlannerBufferDefault)
	}
	return cfg, nil
}
