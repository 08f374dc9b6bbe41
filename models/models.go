package models

import "math"

// Placeholder выводится вместо значения, которое не удалось определить.
const Placeholder = "–"

// ControllerStatus содержит сырое состояние контроллера TinyG2 в том виде,
// в котором его присылает контейнер (отчёты sr и qr).
type ControllerStatus struct {
	SR *StatusReport `json:"sr,omitempty"`
	QR Number        `json:"qr"`
}

// StatusReport содержит поля статусного отчёта (sr).
type StatusReport struct {
	MachineState Number     `json:"machineState"`
	FeedRate     Number     `json:"feedrate"`
	Velocity     Number     `json:"velocity"`
	Line         Number     `json:"line"`
	Modal        ModalWords `json:"modal,omitempty"`
}

// MachineStateCode возвращает код состояния станка, если он присутствует в отчёте.
func (s ControllerStatus) MachineStateCode() (int, bool) {
	if s.SR == nil || !s.SR.MachineState.Valid {
		return 0, false
	}
	value := s.SR.MachineState.Value
	if value != math.Trunc(value) {
		return 0, false
	}
	return toInt(value)
}

// QueueDepth возвращает заполненность буфера планировщика (не меньше нуля).
func (s ControllerStatus) QueueDepth() int {
	depth, _ := toInt(s.QR.Or(0))
	if depth < 0 {
		return 0
	}
	return depth
}

// FeedRate возвращает скорость подачи или 0.
func (s ControllerStatus) FeedRate() float64 {
	if s.SR == nil {
		return 0
	}
	return s.SR.FeedRate.Or(0)
}

// Velocity возвращает текущую скорость или 0.
func (s ControllerStatus) Velocity() float64 {
	if s.SR == nil {
		return 0
	}
	return s.SR.Velocity.Or(0)
}

// Line возвращает номер выполняемой строки или 0.
func (s ControllerStatus) Line() int {
	if s.SR == nil {
		return 0
	}
	line, _ := toInt(s.SR.Line.Or(0))
	return line
}

// toInt отбрасывает дробную часть; значения вне диапазона int и NaN дают 0.
func toInt(value float64) (int, bool) {
	if !(value >= math.MinInt && value < math.MaxInt) {
		return 0, false
	}
	return int(value), true
}

// ModalWord возвращает G-код для модальной группы, если он задан.
func (s ControllerStatus) ModalWord(group string) (string, bool) {
	if s.SR == nil || s.SR.Modal == nil {
		return "", false
	}
	word, ok := s.SR.Modal[group]
	if !ok || word == "" {
		return "", false
	}
	return word, true
}

// Имена модальных групп в отчёте TinyG2.
const (
	ModalGroupMotion     = "motion"
	ModalGroupCoordinate = "coordinate"
	ModalGroupPlane      = "plane"
	ModalGroupDistance   = "distance"
	ModalGroupFeedRate   = "feedrate"
	ModalGroupUnits      = "units"
	ModalGroupPath       = "path"
)

// BufferEstimate хранит оценку ёмкости буфера планировщика.
// Контроллер не сообщает ёмкость, поэтому она вычисляется как максимум наблюдаемой заполненности.
type BufferEstimate struct {
	ObservedMax int `json:"observed_max"`
	Min         int `json:"min"`
}

// PlannerBuffer содержит данные для индикатора заполненности буфера.
type PlannerBuffer struct {
	Now   int     `json:"now"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
	Ratio float64 `json:"ratio"`
}

// ModalGroups содержит текстовые описания активных модальных групп.
type ModalGroups struct {
	Motion     string `json:"motion"`
	Coordinate string `json:"coordinate"`
	Plane      string `json:"plane"`
	Distance   string `json:"distance"`
	FeedRate   string `json:"feedrate"`
	Units      string `json:"units"`
	Path       string `json:"path"`
}

// StatusDisplay содержит значения, готовые для отображения в виджете состояния.
type StatusDisplay struct {
	MachineState  string        `json:"machine_state"`
	FeedRate      float64       `json:"feed_rate"`
	Velocity      float64       `json:"velocity"`
	Line          int           `json:"line"`
	PlannerBuffer PlannerBuffer `json:"planner_buffer"`
	Modal         ModalGroups   `json:"modal"`
}
