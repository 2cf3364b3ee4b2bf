package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewState_Apply_HoverLeaveGuard(t *testing.T) {
	var s ViewState

	s = s.Apply(Event{Type: EventHoverEnter, ObjectID: "A"})
	s = s.Apply(Event{Type: EventHoverEnter, ObjectID: "B"})
	s = s.Apply(Event{Type: EventHoverLeave, ObjectID: "A"})

	assert.Equal(t, "B", s.HoverID, "stale leave of A must not clear hover of B")

	s = s.Apply(Event{Type: EventHoverLeave, ObjectID: "B"})
	assert.Empty(t, s.HoverID)
}

func TestViewState_Apply(t *testing.T) {
	tests := []struct {
		name     string
		state    ViewState
		event    Event
		expected ViewState
	}{
		{
			name:     "hover enter sets hover id",
			state:    ViewState{},
			event:    Event{Type: EventHoverEnter, ObjectID: "obj-001"},
			expected: ViewState{HoverID: "obj-001"},
		},
		{
			name:     "hover leave of current clears hover id",
			state:    ViewState{HoverID: "obj-001"},
			event:    Event{Type: EventHoverLeave, ObjectID: "obj-001"},
			expected: ViewState{},
		},
		{
			name:     "select opens card and keeps hover",
			state:    ViewState{HoverID: "obj-002"},
			event:    Event{Type: EventSelect, ObjectID: "obj-002"},
			expected: ViewState{HoverID: "obj-002", ActiveID: "obj-002"},
		},
		{
			name:     "select replaces active object",
			state:    ViewState{ActiveID: "obj-001"},
			event:    Event{Type: EventSelect, ObjectID: "obj-003"},
			expected: ViewState{ActiveID: "obj-003"},
		},
		{
			name:     "close clears active object",
			state:    ViewState{ActiveID: "obj-001", Zoom: 15},
			event:    Event{Type: EventClose},
			expected: ViewState{Zoom: 15},
		},
		{
			name:     "zoom updates zoom level only",
			state:    ViewState{ActiveID: "obj-001", Zoom: 12.5},
			event:    Event{Type: EventZoom, Zoom: 14},
			expected: ViewState{ActiveID: "obj-001", Zoom: 14},
		},
		{
			name:     "unknown event leaves state unchanged",
			state:    ViewState{HoverID: "obj-001", ActiveID: "obj-002"},
			event:    Event{Type: "pan"},
			expected: ViewState{HoverID: "obj-001", ActiveID: "obj-002"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.state
			result := tt.state.Apply(tt.event)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, before, tt.state, "Apply must not mutate the receiver")
		})
	}
}

func TestViewState_Hovered(t *testing.T) {
	s := ViewState{HoverID: "obj-001"}

	assert.True(t, s.Hovered("obj-001"))
	assert.False(t, s.Hovered("obj-002"))
	assert.False(t, ViewState{}.Hovered(""))
}

func TestEvent_NeedsObject(t *testing.T) {
	assert.True(t, Event{Type: EventSelect}.NeedsObject())
	assert.True(t, Event{Type: EventHoverLeave}.NeedsObject())
	assert.False(t, Event{Type: EventClose}.NeedsObject())
	assert.False(t, Event{Type: EventZoom}.NeedsObject())
}
