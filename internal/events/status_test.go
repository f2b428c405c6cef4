package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPhase(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	hourAgo := now.Add(-time.Hour)
	hourAhead := now.Add(time.Hour)
	twoHoursAgo := now.Add(-2 * time.Hour)

	tests := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  Phase
	}{
		{"running event", &hourAgo, &hourAhead, PhaseCurrent},
		{"not started yet", &hourAhead, nil, PhaseFuture},
		{"already ended", &twoHoursAgo, &hourAgo, PhasePast},
		{"point event that started", &twoHoursAgo, nil, PhasePast},
		{"no start date", nil, &hourAhead, PhaseFuture},
		{"no dates at all", nil, nil, PhaseFuture},
		{"stale end date wins over future start", &hourAhead, &twoHoursAgo, PhasePast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPhase(tt.start, tt.end, now))
		})
	}
}

func TestClassifyPhaseBoundaries(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)

	// Start exactly now with an end still ahead counts as current.
	assert.Equal(t, PhaseCurrent, ClassifyPhase(&now, &later, now))

	// End exactly now is not yet past.
	earlier := now.Add(-time.Hour)
	assert.Equal(t, PhaseCurrent, ClassifyPhase(&earlier, &now, now))
}

func TestEventStatusIsValid(t *testing.T) {
	assert.True(t, StatusUpcoming.IsValid())
	assert.True(t, StatusOngoing.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.True(t, StatusCancelled.IsValid())
	assert.False(t, EventStatus("DRAFT").IsValid())
	assert.False(t, EventStatus("").IsValid())
}

func TestToResponseDerivesPhaseFresh(t *testing.T) {
	start := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)
	event := Event{Name: "Soundcheck", StartDate: start, EndDate: &end, Status: StatusUpcoming}

	before := event.ToResponse(start.Add(-time.Hour))
	during := event.ToResponse(start.Add(time.Hour))
	after := event.ToResponse(end.Add(time.Hour))

	assert.Equal(t, PhaseFuture, before.Phase)
	assert.Equal(t, PhaseCurrent, during.Phase)
	assert.Equal(t, PhasePast, after.Phase)

	// The stored status never moves with the clock.
	assert.Equal(t, StatusUpcoming, after.Status)
}
