package webcam

import (
	"github.com/iwtcode/cncWidgets/i18n"
	"github.com/iwtcode/cncWidgets/models"
)

// OffMessage - ключ перевода сообщения для выключенной камеры.
const OffMessage = "Webcam is off"

// Диаметры окружностей перекрестия.
var crosshairDiameters = []int{20, 40}

// Render вычисляет описание вывода веб-камеры.
// Для выключенной камеры остальные поля не вычисляются.
func Render(cfg models.WebcamConfig, translator i18n.Translator) models.RenderDescriptor {
	if translator == nil {
		translator = i18n.Identity
	}
	if !cfg.Enabled {
		return models.RenderDescriptor{
			Enabled: false,
			Message: translator.T(OffMessage),
		}
	}

	scale := ClampScale(cfg.Scale)
	angles := Angles(cfg)
	width := WidthPercent(scale)

	view := &models.WebcamView{
		Source:     cfg.MediaSource,
		Transform:  Transform(angles),
		Angles:     angles,
		Width:      width,
		ScaleLabel: ScaleLabel(scale),
	}

	switch cfg.MediaSource {
	case models.MediaSourceMJPEG:
		view.MJPEG = &models.MJPEGMedia{Src: cfg.URL, Width: width}
	default:
		view.Source = models.MediaSourceLocal
		view.Local = &models.LocalMedia{Width: width, Height: "auto"}
	}

	if cfg.Crosshair {
		view.Crosshair = crosshair()
	}

	return models.RenderDescriptor{
		Enabled: true,
		View:    view,
	}
}

func crosshair() *models.Crosshair {
	c := &models.Crosshair{
		Lines: []models.CrosshairLine{
			{Length: "100%"},
			{Length: "100%", Vertical: true},
		},
	}
	for _, d := range crosshairDiameters {
		c.Circles = append(c.Circles, models.CrosshairCircle{Diameter: d})
	}
	return c
}
