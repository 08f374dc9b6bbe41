package gcode

import (
	"strconv"
	"strings"

	"github.com/iwtcode/cncWidgets/i18n"
)

// Resolver преобразует G-код в текстовое описание.
type Resolver interface {
	Resolve(word string) (string, bool)
}

// ResolverFunc позволяет использовать функцию как Resolver.
type ResolverFunc func(word string) (string, bool)

func (f ResolverFunc) Resolve(word string) (string, bool) { return f(word) }

// words - описания модальных G- и M-кодов. Тексты являются ключами перевода.
var words = map[string]string{
	// Motion
	"G0":    "Rapid Motion",
	"G1":    "Linear Feed",
	"G2":    "CW Arc",
	"G3":    "CCW Arc",
	"G38.2": "Probing",
	"G38.3": "Probing",
	"G38.4": "Probing",
	"G38.5": "Probing",
	"G80":   "Cancel Mode",

	// Coordinate system
	"G53": "Machine Coordinates",
	"G54": "Work Coordinate (P1)",
	"G55": "Work Coordinate (P2)",
	"G56": "Work Coordinate (P3)",
	"G57": "Work Coordinate (P4)",
	"G58": "Work Coordinate (P5)",
	"G59": "Work Coordinate (P6)",

	// Plane
	"G17": "XY Plane",
	"G18": "XZ Plane",
	"G19": "YZ Plane",

	// Units
	"G20": "Inches",
	"G21": "Millimeters",

	// Distance
	"G90":   "Absolute",
	"G91":   "Relative",
	"G90.1": "Absolute IJK",
	"G91.1": "Relative IJK",

	// Feed rate
	"G93": "Inverse Time",
	"G94": "Units/Min",
	"G95": "Units/Rev",

	// Path control
	"G61":   "Exact Path",
	"G61.1": "Exact Stop",
	"G64":   "Path Blending",

	// Program
	"M0":  "Program Pause",
	"M1":  "Program Pause",
	"M2":  "Program End",
	"M30": "Program End",

	// Spindle
	"M3": "Spindle On, CW",
	"M4": "Spindle On, CCW",
	"M5": "Spindle Off",

	"M6": "Tool Change",

	// Coolant
	"M7": "Mist Coolant On",
	"M8": "Flood Coolant On",
	"M9": "Coolant Off",
}

// TextResolver - стандартная реализация Resolver по встроенной таблице.
type TextResolver struct {
	translator i18n.Translator
}

// NewTextResolver создает резолвер. Если translator равен nil, тексты не переводятся.
func NewTextResolver(translator i18n.Translator) *TextResolver {
	if translator == nil {
		translator = i18n.Identity
	}
	return &TextResolver{translator: translator}
}

// Resolve возвращает описание G-кода. Для неизвестного кода возвращается false.
func (r *TextResolver) Resolve(word string) (string, bool) {
	text, ok := words[Normalize(word)]
	if !ok {
		return "", false
	}
	return r.translator.T(text), true
}

// Normalize приводит G-код к каноническому виду: "g01" -> "G1", "G38.20" -> "G38.2".
func Normalize(word string) string {
	word = strings.ToUpper(strings.TrimSpace(word))
	if len(word) < 2 {
		return word
	}

	letter, number := word[:1], strings.TrimSpace(word[1:])
	value, err := strconv.ParseFloat(number, 64)
	if err != nil || value < 0 {
		return word
	}
	return letter + strconv.FormatFloat(value, 'f', -1, 64)
}
