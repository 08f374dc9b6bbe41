package models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number - необязательное числовое поле отчёта.
// Любое нечисловое значение считается отсутствующим, ошибка декодирования не возвращается.
type Number struct {
	Value float64
	Valid bool
}

// NumberOf создает заполненное значение Number.
func NumberOf(v float64) Number {
	return Number{Value: v, Valid: true}
}

// Or возвращает значение или def, если значение отсутствует.
func (n Number) Or(def float64) float64 {
	if !n.Valid {
		return def
	}
	return n.Value
}

func (n *Number) UnmarshalJSON(data []byte) error {
	*n = Number{}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	switch v := raw.(type) {
	case float64:
		*n = NumberOf(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			*n = NumberOf(f)
		}
	case bool:
		if v {
			*n = NumberOf(1)
		} else {
			*n = NumberOf(0)
		}
	}
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// ModalWords - отображение модальной группы на G-код.
// Нестроковые значения при декодировании пропускаются.
type ModalWords map[string]string

func (m *ModalWords) UnmarshalJSON(data []byte) error {
	*m = nil

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	words := make(ModalWords, len(raw))
	for group, value := range raw {
		value = bytes.TrimSpace(value)
		var word string
		if err := json.Unmarshal(value, &word); err != nil {
			continue
		}
		words[group] = word
	}
	*m = words
	return nil
}
