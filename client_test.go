package cncwidgets_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	cncwidgets "github.com/iwtcode/cncWidgets"
	"github.com/iwtcode/cncWidgets/models"
	"github.com/iwtcode/cncWidgets/webcam"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T, locale string) *cncwidgets.Client {
	t.Helper()

	cfg := cncwidgets.DefaultConfig()
	cfg.LogLevel = "off"
	cfg.Locale = locale

	c, err := cncwidgets.New(cfg)
	require.NoError(t, err, "Не удалось создать клиент")
	require.NotNil(t, c, "Клиент не должен быть nil")
	return c
}

func logAsJSON(t *testing.T, name string, data interface{}) {
	t.Helper()
	jsonData, err := json.MarshalIndent(data, "", "  ")
	require.NoError(t, err, "Ошибка маршалинга JSON для %s", name)
	t.Logf("--- %s ---\n%s", name, string(jsonData))
}

func TestProjectStatus(t *testing.T) {
	c := setupTest(t, "en")

	var status models.ControllerStatus
	raw := `{"sr":{"machineState":6,"feedrate":800,"velocity":412.5,"line":120,"modal":{"motion":"G2","units":"G20"}},"qr":5}`
	require.NoError(t, json.Unmarshal([]byte(raw), &status))

	display := c.ProjectStatus(status)
	logAsJSON(t, "StatusDisplay", display)

	require.Equal(t, "Hold", display.MachineState)
	require.Equal(t, 800.0, display.FeedRate)
	require.Equal(t, 412.5, display.Velocity)
	require.Equal(t, 120, display.Line)
	require.Equal(t, "CW Arc", display.Modal.Motion)
	require.Equal(t, "Inches", display.Modal.Units)
	require.Equal(t, models.Placeholder, display.Modal.Plane)
	require.Equal(t, 28, display.PlannerBuffer.Max)
}

func TestProjectStatusSessionScopedEstimate(t *testing.T) {
	c := setupTest(t, "en")

	c.ProjectStatus(models.ControllerStatus{QR: models.NumberOf(40)})
	require.Equal(t, 40, c.BufferEstimate().ObservedMax)

	c.ResetSession()
	require.Equal(t, 28, c.BufferEstimate().ObservedMax)
}

func TestWatchStatus(t *testing.T) {
	c := setupTest(t, "de")

	statuses := make(chan models.ControllerStatus, 1)
	displays := c.WatchStatus(context.Background(), statuses)

	statuses <- models.ControllerStatus{SR: &models.StatusReport{MachineState: models.NumberOf(1)}}
	close(statuses)

	select {
	case display := <-displays:
		require.Equal(t, "Bereit", display.MachineState)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for status display")
	}
}

func TestRenderWebcam(t *testing.T) {
	c := setupTest(t, "de")

	off := c.RenderWebcam(models.WebcamConfig{})
	require.False(t, off.Enabled)
	require.Equal(t, "Webcam ist aus", off.Message)

	on := c.RenderWebcam(webcam.Apply(models.WebcamConfig{},
		webcam.ToggleEnabled,
		webcam.SelectMediaSource(models.MediaSourceMJPEG),
		webcam.SetURL("http://cam.local/stream"),
		webcam.ChangeScale(2),
		webcam.RotateRight,
	))
	logAsJSON(t, "RenderDescriptor", on)

	require.True(t, on.Enabled)
	require.NotNil(t, on.View)
	require.NotNil(t, on.View.MJPEG)
	require.Nil(t, on.View.Local)
	require.Equal(t, "200%", on.View.Width)
	require.Equal(t, "translate(-50%, -50%) rotateX(0deg) rotateY(0deg) rotate(90deg)", on.View.Transform)
}

func TestRefreshWebcam(t *testing.T) {
	c := setupTest(t, "en")

	var mu sync.Mutex
	var sources []string
	stream := webcam.StreamFunc(func(url string) {
		mu.Lock()
		defer mu.Unlock()
		sources = append(sources, url)
	})

	cfg := models.WebcamConfig{Enabled: true, MediaSource: models.MediaSourceMJPEG, URL: "http://cam.local/stream"}
	select {
	case <-c.RefreshWebcam(cfg, stream):
	case <-time.After(time.Second):
		t.Fatal("refresh did not complete")
	}

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"", "http://cam.local/stream"}, sources)
}
