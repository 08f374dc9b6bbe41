package i18n

import "golang.org/x/text/language"

var supported = []language.Tag{
	language.English,
	language.German,
}

// messages содержит тексты по локалям. Английский набор задает полный список ключей.
var messages = map[language.Tag]map[string]string{
	language.English: {
		"controller:TinyG2.machineState.init":     "Initializing",
		"controller:TinyG2.machineState.ready":    "Ready",
		"controller:TinyG2.machineState.alarm":    "Alarm",
		"controller:TinyG2.machineState.stop":     "Stop",
		"controller:TinyG2.machineState.end":      "End",
		"controller:TinyG2.machineState.run":      "Run",
		"controller:TinyG2.machineState.hold":     "Hold",
		"controller:TinyG2.machineState.probe":    "Probe",
		"controller:TinyG2.machineState.cycling":  "Cycling",
		"controller:TinyG2.machineState.homing":   "Homing",
		"controller:TinyG2.machineState.jogging":  "Jogging",
		"controller:TinyG2.machineState.shutdown": "Shutdown",

		"Webcam is off": "Webcam is off",

		"Rapid Motion":         "Rapid Motion",
		"Linear Feed":          "Linear Feed",
		"CW Arc":               "CW Arc",
		"CCW Arc":              "CCW Arc",
		"Probing":              "Probing",
		"Cancel Mode":          "Cancel Mode",
		"XY Plane":             "XY Plane",
		"XZ Plane":             "XZ Plane",
		"YZ Plane":             "YZ Plane",
		"Inches":               "Inches",
		"Millimeters":          "Millimeters",
		"Absolute":             "Absolute",
		"Relative":             "Relative",
		"Absolute IJK":         "Absolute IJK",
		"Relative IJK":         "Relative IJK",
		"Inverse Time":         "Inverse Time",
		"Units/Min":            "Units/Min",
		"Units/Rev":            "Units/Rev",
		"Exact Path":           "Exact Path",
		"Exact Stop":           "Exact Stop",
		"Path Blending":        "Path Blending",
		"Program Pause":        "Program Pause",
		"Program End":          "Program End",
		"Spindle On, CW":       "Spindle On, CW",
		"Spindle On, CCW":      "Spindle On, CCW",
		"Spindle Off":          "Spindle Off",
		"Tool Change":          "Tool Change",
		"Mist Coolant On":      "Mist Coolant On",
		"Flood Coolant On":     "Flood Coolant On",
		"Coolant Off":          "Coolant Off",
		"Machine Coordinates":  "Machine Coordinates",
		"Work Coordinate (P1)": "Work Coordinate (P1)",
		"Work Coordinate (P2)": "Work Coordinate (P2)",
		"Work Coordinate (P3)": "Work Coordinate (P3)",
		"Work Coordinate (P4)": "Work Coordinate (P4)",
		"Work Coordinate (P5)": "Work Coordinate (P5)",
		"Work Coordinate (P6)": "Work Coordinate (P6)",
	},
	language.German: {
		"controller:TinyG2.machineState.init":     "Initialisierung",
		"controller:TinyG2.machineState.ready":    "Bereit",
		"controller:TinyG2.machineState.alarm":    "Alarm",
		"controller:TinyG2.machineState.stop":     "Stopp",
		"controller:TinyG2.machineState.end":      "Ende",
		"controller:TinyG2.machineState.run":      "Läuft",
		"controller:TinyG2.machineState.hold":     "Angehalten",
		"controller:TinyG2.machineState.probe":    "Antasten",
		"controller:TinyG2.machineState.cycling":  "Zyklus",
		"controller:TinyG2.machineState.homing":   "Referenzfahrt",
		"controller:TinyG2.machineState.jogging":  "Tippbetrieb",
		"controller:TinyG2.machineState.shutdown": "Abgeschaltet",

		"Webcam is off": "Webcam ist aus",

		"Rapid Motion": "Eilgang",
		"Linear Feed":  "Linearvorschub",
		"CW Arc":       "Kreisbogen im Uhrzeigersinn",
		"CCW Arc":      "Kreisbogen gegen den Uhrzeigersinn",
		"XY Plane":     "XY-Ebene",
		"XZ Plane":     "XZ-Ebene",
		"YZ Plane":     "YZ-Ebene",
		"Inches":       "Zoll",
		"Millimeters":  "Millimeter",
		"Absolute":     "Absolut",
		"Relative":     "Relativ",
		"Spindle Off":  "Spindel aus",
		"Coolant Off":  "Kühlmittel aus",
	},
}
