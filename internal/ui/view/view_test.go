package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/model"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{61, "01:01"},
		{1500, "25:00"},
		{7200, "120:00"},
		{-5, "00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.seconds), tt.seconds)
	}
}

func TestFromState_WorkPaused(t *testing.T) {
	got := FromState(model.State{
		RemainingSeconds:      1200,
		TotalSeconds:          1500,
		Kind:                  model.KindWork,
		CompletedWorkSessions: 3,
	})

	assert.Equal(t, "20:00", got.Time)
	assert.Equal(t, "Work Session", got.Label)
	assert.Equal(t, "20:00 - Work", got.Title)
	assert.InDelta(t, 0.2, got.Progress, 1e-9)
	assert.Equal(t, "#E74C3C", Hex(got.Color))
	assert.True(t, got.ShowStart)
	assert.False(t, got.ShowPause)
	assert.Equal(t, "Completed sessions: 3", got.Completed)
}

func TestFromState_BreakRunning(t *testing.T) {
	got := FromState(model.State{
		RemainingSeconds: 300,
		TotalSeconds:     300,
		Kind:             model.KindBreak,
		IsRunning:        true,
	})

	assert.Equal(t, "Break Time", got.Label)
	assert.Equal(t, "05:00 - Break", got.Title)
	assert.Equal(t, "#27AE60", Hex(got.Color))
	assert.Zero(t, got.Progress)
	assert.False(t, got.ShowStart)
	assert.True(t, got.ShowPause)
	assert.False(t, got.IsWork)
}
