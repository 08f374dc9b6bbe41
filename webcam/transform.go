package webcam

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/iwtcode/cncWidgets/models"
)

const (
	MinScale     = 0.1
	MaxScale     = 10.0
	ScaleStep    = 0.1
	DefaultScale = 1.0
)

const recenter = "translate(-50%, -50%)"

// RotationSteps приводит число шагов поворота к диапазону [0, 3].
func RotationSteps(rotation int) int {
	return ((rotation % 4) + 4) % 4
}

// Angles вычисляет углы отражений и поворота для настроек камеры.
func Angles(cfg models.WebcamConfig) models.TransformAngles {
	angles := models.TransformAngles{
		Rotate: RotationSteps(cfg.Rotation) * 90,
	}
	if cfg.FlipVertically {
		angles.RotateX = 180
	}
	if cfg.FlipHorizontally {
		angles.RotateY = 180
	}
	return angles
}

// Transform собирает CSS transform. Порядок операций постоянный:
// центрирование, отражение по вертикали, отражение по горизонтали, поворот в плоскости.
func Transform(angles models.TransformAngles) string {
	return strings.Join([]string{
		recenter,
		fmt.Sprintf("rotateX(%ddeg)", angles.RotateX),
		fmt.Sprintf("rotateY(%ddeg)", angles.RotateY),
		fmt.Sprintf("rotate(%ddeg)", angles.Rotate),
	}, " ")
}

// ClampScale ограничивает масштаб диапазоном [MinScale, MaxScale].
// Неположительный или нечисловой масштаб заменяется на DefaultScale.
func ClampScale(scale float64) float64 {
	if math.IsNaN(scale) || scale <= 0 {
		return DefaultScale
	}
	return math.Min(MaxScale, math.Max(MinScale, scale))
}

// WidthPercent возвращает ширину изображения для масштаба, например "150%".
func WidthPercent(scale float64) string {
	return strconv.Itoa(int(math.Round(100*scale))) + "%"
}

// ScaleLabel возвращает подпись масштаба, например "1.5x".
func ScaleLabel(scale float64) string {
	return strconv.FormatFloat(scale, 'f', -1, 64) + "x"
}
