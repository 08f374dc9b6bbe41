package webcam

import (
	"math"

	"github.com/iwtcode/cncWidgets/models"
)

// Action - действие пользователя над настройками камеры.
type Action func(models.WebcamConfig) models.WebcamConfig

// Apply последовательно применяет действия к настройкам.
func Apply(cfg models.WebcamConfig, actions ...Action) models.WebcamConfig {
	for _, action := range actions {
		if action != nil {
			cfg = action(cfg)
		}
	}
	return cfg
}

// RotateLeft поворачивает изображение на 90° против часовой стрелки (на экране).
// При одном активном отражении направление шага поворота инвертируется.
func RotateLeft(cfg models.WebcamConfig) models.WebcamConfig {
	cfg.Rotation = RotationSteps(cfg.Rotation + rotationStep(cfg, -1))
	return cfg
}

// RotateRight поворачивает изображение на 90° по часовой стрелке (на экране).
func RotateRight(cfg models.WebcamConfig) models.WebcamConfig {
	cfg.Rotation = RotationSteps(cfg.Rotation + rotationStep(cfg, 1))
	return cfg
}

func rotationStep(cfg models.WebcamConfig, step int) int {
	if cfg.FlipHorizontally != cfg.FlipVertically {
		return -step
	}
	return step
}

func ToggleFlipHorizontally(cfg models.WebcamConfig) models.WebcamConfig {
	cfg.FlipHorizontally = !cfg.FlipHorizontally
	return cfg
}

func ToggleFlipVertically(cfg models.WebcamConfig) models.WebcamConfig {
	cfg.FlipVertically = !cfg.FlipVertically
	return cfg
}

func ToggleCrosshair(cfg models.WebcamConfig) models.WebcamConfig {
	cfg.Crosshair = !cfg.Crosshair
	return cfg
}

func ToggleEnabled(cfg models.WebcamConfig) models.WebcamConfig {
	cfg.Enabled = !cfg.Enabled
	return cfg
}

// ChangeScale устанавливает масштаб с шагом ScaleStep в пределах [MinScale, MaxScale].
func ChangeScale(scale float64) Action {
	return func(cfg models.WebcamConfig) models.WebcamConfig {
		steps := math.Round(ClampScale(scale) / ScaleStep)
		cfg.Scale = steps / 10
		return cfg
	}
}

// SelectMediaSource переключает источник изображения.
func SelectMediaSource(source models.MediaSource) Action {
	return func(cfg models.WebcamConfig) models.WebcamConfig {
		switch source {
		case models.MediaSourceLocal, models.MediaSourceMJPEG:
			cfg.MediaSource = source
		}
		return cfg
	}
}

// SetURL задает адрес MJPEG потока.
func SetURL(url string) Action {
	return func(cfg models.WebcamConfig) models.WebcamConfig {
		cfg.URL = url
		return cfg
	}
}
