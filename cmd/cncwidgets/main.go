package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	cncwidgets "github.com/iwtcode/cncWidgets"
	"github.com/iwtcode/cncWidgets/models"
)

func main() {
	envFile := flag.String("env", ".env", "path to .env file")
	webcamPath := flag.String("webcam", "", "path to webcam view config (JSON)")
	flag.Parse()

	// 1) Загрузка конфигурации
	cfg, err := cncwidgets.Load(*envFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	client, err := cncwidgets.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	logger := client.GetLogger()
	logger.WithField("planner_buffer_default", cfg.PlannerBufferDefault).Info("Configuration loaded")

	// 2) Описание вывода веб-камеры
	if *webcamPath != "" {
		data, err := os.ReadFile(*webcamPath)
		if err != nil {
			log.Fatalf("Failed to read webcam config %s: %v", *webcamPath, err)
		}
		var webcamCfg models.WebcamConfig
		if err := json.Unmarshal(data, &webcamCfg); err != nil {
			log.Fatalf("Failed to parse webcam config %s: %v", *webcamPath, err)
		}
		printAsJSON("Webcam", client.RenderWebcam(webcamCfg))
	}

	// 3) Проекция статусов TinyG2: по одному JSON объекту на строку
	scanner := bufio.NewScanner(os.Stdin)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var status models.ControllerStatus
		if err := json.Unmarshal(line, &status); err != nil {
			logger.WithError(err).WithField("line", lineNo).Warn("Skipping malformed status report")
			continue
		}
		printAsJSON(fmt.Sprintf("Status #%d", lineNo), client.ProjectStatus(status))
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Failed to read status reports: %v", err)
	}

	logger.WithField("observed_max", client.BufferEstimate().ObservedMax).Info("Done")
}

// printAsJSON форматирует данные в JSON и выводит в stdout
func printAsJSON(name string, data interface{}) {
	jsonData, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Printf("Failed to marshal %s: %v", name, err)
		return
	}
	fmt.Printf("--- %s ---\n%s\n", name, string(jsonData))
}
