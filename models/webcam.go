package models

// MediaSource определяет источник изображения веб-камеры.
type MediaSource string

const (
	MediaSourceLocal MediaSource = "local"
	MediaSourceMJPEG MediaSource = "mjpeg"
)

// WebcamConfig содержит настройки просмотра веб-камеры.
type WebcamConfig struct {
	Enabled          bool        `json:"enabled"`
	MediaSource      MediaSource `json:"media_source"`
	URL              string      `json:"url"`
	Scale            float64     `json:"scale"`
	Rotation         int         `json:"rotation"`
	FlipHorizontally bool        `json:"flip_horizontally"`
	FlipVertically   bool        `json:"flip_vertically"`
	Crosshair        bool        `json:"crosshair"`
}

// TransformAngles содержит углы поворота (в градусах), из которых составляется CSS transform.
type TransformAngles struct {
	RotateX int `json:"rotate_x"`
	RotateY int `json:"rotate_y"`
	Rotate  int `json:"rotate"`
}

// LocalMedia описывает вывод локальной камеры.
type LocalMedia struct {
	Width  string `json:"width"`
	Height string `json:"height"`
}

// MJPEGMedia описывает вывод MJPEG потока.
type MJPEGMedia struct {
	Src   string `json:"src"`
	Width string `json:"width"`
}

// CrosshairLine - линия перекрестия через центр изображения.
type CrosshairLine struct {
	Length   string `json:"length"`
	Vertical bool   `json:"vertical"`
}

// CrosshairCircle - окружность перекрестия с центром в центре изображения.
type CrosshairCircle struct {
	Diameter int `json:"diameter"`
}

// Crosshair описывает наложение перекрестия.
type Crosshair struct {
	Lines   []CrosshairLine   `json:"lines"`
	Circles []CrosshairCircle `json:"circles"`
}

// WebcamView содержит всё необходимое для вывода включенной камеры.
// Ровно одно из полей Local и MJPEG заполнено.
type WebcamView struct {
	Source     MediaSource     `json:"source"`
	Transform  string          `json:"transform"`
	Angles     TransformAngles `json:"angles"`
	Width      string          `json:"width"`
	ScaleLabel string          `json:"scale_label"`
	Local      *LocalMedia     `json:"local,omitempty"`
	MJPEG      *MJPEGMedia     `json:"mjpeg,omitempty"`
	Crosshair  *Crosshair      `json:"crosshair,omitempty"`
}

// RenderDescriptor - результат проекции настроек веб-камеры.
// Для выключенной камеры View равен nil.
type RenderDescriptor struct {
	Enabled bool        `json:"enabled"`
	Message string      `json:"message,omitempty"`
	View    *WebcamView `json:"view,omitempty"`
}
