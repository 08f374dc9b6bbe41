package tinyg2

import (
	"io"
	"sync"

	"github.com/iwtcode/cncWidgets/gcode"
	"github.com/iwtcode/cncWidgets/i18n"
	"github.com/iwtcode/cncWidgets/models"
	"github.com/sirupsen/logrus"
)

// DefaultPlannerBufferMax - размер пула буфера планировщика TinyG2 по умолчанию.
const DefaultPlannerBufferMax = 28

// NewEstimate возвращает начальную оценку ёмкости буфера.
func NewEstimate(initialMax int) models.BufferEstimate {
	if initialMax < 0 {
		initialMax = 0
	}
	return models.BufferEstimate{ObservedMax: initialMax, Min: 0}
}

// Project преобразует статус контроллера в значения для отображения.
// Оценка ёмкости буфера обновляется до вычисления доли заполнения, поэтому доля не превышает 1.
func Project(status models.ControllerStatus, estimate models.BufferEstimate, resolver gcode.Resolver, translator i18n.Translator) (models.StatusDisplay, models.BufferEstimate) {
	if translator == nil {
		translator = i18n.Identity
	}
	if resolver == nil {
		resolver = gcode.NewTextResolver(translator)
	}

	depth := status.QueueDepth()
	if depth > estimate.ObservedMax {
		estimate.ObservedMax = depth
	}
	estimate.Min = 0

	var ratio float64
	if estimate.ObservedMax > 0 {
		ratio = float64(depth) / float64(estimate.ObservedMax)
	}

	display := models.StatusDisplay{
		MachineState: machineStateText(status, translator),
		FeedRate:     status.FeedRate(),
		Velocity:     status.Velocity(),
		Line:         status.Line(),
		PlannerBuffer: models.PlannerBuffer{
			Now:   depth,
			Min:   estimate.Min,
			Max:   estimate.ObservedMax,
			Ratio: ratio,
		},
		Modal: models.ModalGroups{
			Motion:     modalText(status, models.ModalGroupMotion, resolver),
			Coordinate: modalText(status, models.ModalGroupCoordinate, resolver),
			Plane:      modalText(status, models.ModalGroupPlane, resolver),
			Distance:   modalText(status, models.ModalGroupDistance, resolver),
			FeedRate:   modalText(status, models.ModalGroupFeedRate, resolver),
			Units:      modalText(status, models.ModalGroupUnits, resolver),
			Path:       modalText(status, models.ModalGroupPath, resolver),
		},
	}

	return display, estimate
}

func machineStateText(status models.ControllerStatus, translator i18n.Translator) string {
	code, ok := status.MachineStateCode()
	if !ok {
		return models.Placeholder
	}
	key := MachineState(code).TranslationKey()
	if key == "" {
		return models.Placeholder
	}
	return translator.T(key)
}

func modalText(status models.ControllerStatus, group string, resolver gcode.Resolver) string {
	word, ok := status.ModalWord(group)
	if !ok {
		return models.Placeholder
	}
	text, ok := resolver.Resolve(word)
	if !ok || text == "" {
		return models.Placeholder
	}
	return text
}

// Projector хранит оценку ёмкости буфера между проекциями в рамках одной сессии.
type Projector struct {
	mu         sync.Mutex
	initialMax int
	estimate   models.BufferEstimate
	resolver   gcode.Resolver
	translator i18n.Translator
	logger     logrus.FieldLogger
}

// Option настраивает Projector.
type Option func(*Projector)

// WithTranslator задает переводчик для названий состояний и G-кодов.
func WithTranslator(translator i18n.Translator) Option {
	return func(p *Projector) { p.translator = translator }
}

// WithResolver задает резолвер G-кодов.
func WithResolver(resolver gcode.Resolver) Option {
	return func(p *Projector) { p.resolver = resolver }
}

// WithLogger задает логгер.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(p *Projector) { p.logger = logger }
}

// NewProjector создает проектор с начальной оценкой ёмкости буфера initialMax.
func NewProjector(initialMax int, opts ...Option) *Projector {
	p := &Projector{
		initialMax: initialMax,
		estimate:   NewEstimate(initialMax),
		translator: i18n.Identity,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.translator == nil {
		p.translator = i18n.Identity
	}
	if p.resolver == nil {
		p.resolver = gcode.NewTextResolver(p.translator)
	}
	if p.logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		p.logger = discard
	}
	return p
}

// Project вычисляет значения для отображения и сохраняет обновленную оценку.
func (p *Projector) Project(status models.ControllerStatus) models.StatusDisplay {
	p.mu.Lock()
	defer p.mu.Unlock()

	display, estimate := Project(status, p.estimate, p.resolver, p.translator)
	if estimate.ObservedMax > p.estimate.ObservedMax {
		p.logger.WithFields(logrus.Fields{
			"previous": p.estimate.ObservedMax,
			"observed": estimate.ObservedMax,
		}).Debug("Planner buffer capacity estimate increased")
	}
	p.estimate = estimate
	return display
}

// Estimate возвращает текущую оценку ёмкости буфера.
func (p *Projector) Estimate() models.BufferEstimate {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.estimate
}

// Reset начинает новую сессию: оценка возвращается к начальному значению.
func (p *Projector) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.estimate = NewEstimate(p.initialMax)
	p.logger.Debug("Planner buffer capacity estimate reset")
}
