package webcam

import (
	"testing"

	"github.com/iwtcode/cncWidgets/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    models.WebcamConfig
		action Action
		want   int
	}{
		{name: "right", cfg: models.WebcamConfig{Rotation: 0}, action: RotateRight, want: 1},
		{name: "left wraps", cfg: models.WebcamConfig{Rotation: 0}, action: RotateLeft, want: 3},
		{name: "right wraps", cfg: models.WebcamConfig{Rotation: 3}, action: RotateRight, want: 0},
		{name: "right with horizontal flip", cfg: models.WebcamConfig{Rotation: 0, FlipHorizontally: true}, action: RotateRight, want: 3},
		{name: "left with vertical flip", cfg: models.WebcamConfig{Rotation: 0, FlipVertically: true}, action: RotateLeft, want: 1},
		{name: "right with both flips", cfg: models.WebcamConfig{Rotation: 1, FlipHorizontally: true, FlipVertically: true}, action: RotateRight, want: 2},
		{name: "normalizes out of range", cfg: models.WebcamConfig{Rotation: 9}, action: RotateRight, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Apply(tt.cfg, tt.action).Rotation)
		})
	}
}

func TestRotateLeftUndoesRotateRight(t *testing.T) {
	for _, cfg := range []models.WebcamConfig{
		{Rotation: 2},
		{Rotation: 2, FlipHorizontally: true},
		{Rotation: 2, FlipVertically: true},
		{Rotation: 2, FlipHorizontally: true, FlipVertically: true},
	} {
		require.Equal(t, cfg, Apply(cfg, RotateRight, RotateLeft))
	}
}

func TestToggles(t *testing.T) {
	cfg := Apply(models.WebcamConfig{},
		ToggleFlipHorizontally,
		ToggleFlipVertically,
		ToggleCrosshair,
		ToggleEnabled,
	)
	assert.True(t, cfg.FlipHorizontally)
	assert.True(t, cfg.FlipVertically)
	assert.True(t, cfg.Crosshair)
	assert.True(t, cfg.Enabled)

	cfg = Apply(cfg, ToggleCrosshair, nil)
	assert.False(t, cfg.Crosshair)
}

func TestChangeScale(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{in: 1.26, want: 1.3},
		{in: 0.04, want: 0.1},
		{in: 12, want: 10},
		{in: 0, want: 1},
		{in: 3.5, want: 3.5},
	}

	for _, tt := range tests {
		cfg := Apply(models.WebcamConfig{Scale: 1}, ChangeScale(tt.in))
		assert.InDelta(t, tt.want, cfg.Scale, 1e-9, "ChangeScale(%v)", tt.in)
	}
}

func TestSelectMediaSource(t *testing.T) {
	cfg := Apply(models.WebcamConfig{MediaSource: models.MediaSourceLocal},
		SelectMediaSource(models.MediaSourceMJPEG),
		SetURL("http://cam.local/stream"),
	)
	require.Equal(t, models.MediaSourceMJPEG, cfg.MediaSource)
	require.Equal(t, "http://cam.local/stream", cfg.URL)

	cfg = Apply(cfg, SelectMediaSource("rtsp"))
	require.Equal(t, models.MediaSourceMJPEG, cfg.MediaSource, "unknown source is ignored")
}
