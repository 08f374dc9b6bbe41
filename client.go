package cncwidgets

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/iwtcode/cncWidgets/i18n"
	"github.com/iwtcode/cncWidgets/models"
	"github.com/iwtcode/cncWidgets/tinyg2"
	"github.com/iwtcode/cncWidgets/webcam"
	"github.com/sirupsen/logrus"
)

// Client является основной точкой входа для взаимодействия с библиотекой.
type Client struct {
	config     *Config
	logger     *logrus.Logger
	translator *i18n.CatalogTranslator
	projector  *tinyg2.Projector
	refresher  *webcam.Refresher
}

// New создает и возвращает новый экземпляр клиента.
func New(cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	logger := newLogger(cfg.LogLevel)

	translator, err := i18n.NewTranslator(cfg.Locale)
	if err != nil {
		return nil, fmt.Errorf("failed to create translator: %w", err)
	}
	logger.WithField("locale", translator.Locale()).Debug("Translator initialized")

	projector := tinyg2.NewProjector(cfg.PlannerBufferDefault,
		tinyg2.WithTranslator(translator),
		tinyg2.WithLogger(logger.WithField("component", "tinyg2")),
	)
	refresher := webcam.NewRefresher(cfg.WebcamRefreshDelay, logger.WithField("component", "webcam"))

	return &Client{
		config:     cfg,
		logger:     logger,
		translator: translator,
		projector:  projector,
		refresher:  refresher,
	}, nil
}

func newLogger(level string) *logrus.Logger {
	logger := logrus.New()

	if level == "off" || level == "none" {
		logger.SetOutput(io.Discard)
	} else {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			lvl = logrus.InfoLevel
		}
		logger.SetLevel(lvl)
		logger.SetOutput(os.Stdout)
	}

	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		ForceColors:     true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return logger
}

// GetLogger возвращает используемый логгер.
func (c *Client) GetLogger() *logrus.Logger {
	return c.logger
}

// Translator возвращает переводчик выбранной локали.
func (c *Client) Translator() i18n.Translator {
	return c.translator
}

// ProjectStatus возвращает значения виджета состояния TinyG2 для очередного статуса.
func (c *Client) ProjectStatus(status models.ControllerStatus) models.StatusDisplay {
	return c.projector.Project(status)
}

// WatchStatus проецирует каждый статус из канала до отмены контекста или закрытия канала.
func (c *Client) WatchStatus(ctx context.Context, statuses <-chan models.ControllerStatus) <-chan models.StatusDisplay {
	return c.projector.Watch(ctx, statuses)
}

// BufferEstimate возвращает текущую оценку ёмкости буфера планировщика.
func (c *Client) BufferEstimate() models.BufferEstimate {
	return c.projector.Estimate()
}

// ResetSession сбрасывает оценку ёмкости буфера к значению из конфигурации.
func (c *Client) ResetSession() {
	c.projector.Reset()
}

// RenderWebcam возвращает описание вывода веб-камеры.
func (c *Client) RenderWebcam(cfg models.WebcamConfig) models.RenderDescriptor {
	return webcam.Render(cfg, c.translator)
}

// RefreshWebcam перезапускает MJPEG поток. Канал закрывается после повторной установки адреса.
func (c *Client) RefreshWebcam(cfg models.WebcamConfig, stream webcam.Stream) <-chan struct{} {
	return c.refresher.Refresh(cfg, stream)
}
