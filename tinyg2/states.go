package tinyg2

import "strings"

// MachineState - код состояния станка в статусном отчёте TinyG2 (поле stat).
type MachineState int

const (
	MachineStateInit MachineState = iota
	MachineStateReady
	MachineStateAlarm
	MachineStateStop
	MachineStateEnd
	MachineStateRun
	MachineStateHold
	MachineStateProbe
	MachineStateCycling
	MachineStateHoming
	MachineStateJogging
	MachineStateShutdown
)

// machineStateNames индексируется кодом состояния.
var machineStateNames = [...]string{
	MachineStateInit:     "init",
	MachineStateReady:    "ready",
	MachineStateAlarm:    "alarm",
	MachineStateStop:     "stop",
	MachineStateEnd:      "end",
	MachineStateRun:      "run",
	MachineStateHold:     "hold",
	MachineStateProbe:    "probe",
	MachineStateCycling:  "cycling",
	MachineStateHoming:   "homing",
	MachineStateJogging:  "jogging",
	MachineStateShutdown: "shutdown",
}

const machineStateKeyPrefix = "controller:TinyG2.machineState."

// Valid сообщает, известен ли код состояния.
func (s MachineState) Valid() bool {
	return s >= 0 && int(s) < len(machineStateNames)
}

func (s MachineState) String() string {
	if !s.Valid() {
		return "unknown"
	}
	return machineStateNames[s]
}

// TranslationKey возвращает ключ перевода для состояния или пустую строку для неизвестного кода.
func (s MachineState) TranslationKey() string {
	if !s.Valid() {
		return ""
	}
	return machineStateKeyPrefix + machineStateNames[s]
}

// ParseMachineState возвращает состояние по его имени ("run", "HOLD", ...).
func ParseMachineState(name string) (MachineState, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for code, n := range machineStateNames {
		if n == name {
			return MachineState(code), true
		}
	}
	return 0, false
}
