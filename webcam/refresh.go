package webcam

import (
	"io"
	"time"

	"github.com/iwtcode/cncWidgets/models"
	"github.com/sirupsen/logrus"
)

// DefaultRefreshDelay - пауза между сбросом и повторной установкой адреса потока.
const DefaultRefreshDelay = 10 * time.Millisecond

// Stream - элемент, потребляющий MJPEG поток.
type Stream interface {
	SetSource(url string)
}

// StreamFunc позволяет использовать функцию как Stream.
type StreamFunc func(url string)

func (f StreamFunc) SetSource(url string) { f(url) }

// Refresher заставляет потребителя MJPEG потока переподключиться.
// Повторная установка того же адреса большинством потребителей игнорируется,
// поэтому адрес сначала сбрасывается, а после паузы устанавливается снова.
type Refresher struct {
	delay     time.Duration
	logger    logrus.FieldLogger
	afterFunc func(time.Duration, func()) *time.Timer
}

// NewRefresher создает Refresher. Неположительная пауза заменяется на DefaultRefreshDelay.
func NewRefresher(delay time.Duration, logger logrus.FieldLogger) *Refresher {
	if delay <= 0 {
		delay = DefaultRefreshDelay
	}
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = discard
	}
	return &Refresher{
		delay:     delay,
		logger:    logger,
		afterFunc: time.AfterFunc,
	}
}

// Delay возвращает паузу между сбросом и установкой адреса.
func (r *Refresher) Delay() time.Duration {
	return r.delay
}

// Refresh перезапускает MJPEG поток и не блокирует вызывающего.
// Возвращаемый канал закрывается после повторной установки адреса.
// Для локальной камеры, выключенной камеры или nil stream ничего не делает и возвращает закрытый канал.
func (r *Refresher) Refresh(cfg models.WebcamConfig, stream Stream) <-chan struct{} {
	done := make(chan struct{})

	if !cfg.Enabled || cfg.MediaSource != models.MediaSourceMJPEG || stream == nil {
		close(done)
		return done
	}

	url := cfg.URL
	log := r.logger.WithField("url", url)

	stream.SetSource("")
	log.Debug("MJPEG stream source cleared")

	r.afterFunc(r.delay, func() {
		defer close(done)
		stream.SetSource(url)
		log.Debug("MJPEG stream source restored")
	})

	return done
}
