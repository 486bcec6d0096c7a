package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_BeginAndClear(t *testing.T) {
	m := NewManager()
	assert.Equal(t, StateNone, m.GetState(1))

	m.Begin(1, Dialog{State: StateAwaitingTimetable, Title: "Spring"})

	dialog, ok := m.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Spring", dialog.Title)
	assert.Equal(t, StateAwaitingTimetable, m.GetState(1))
	assert.Equal(t, StateNone, m.GetState(2))

	m.ClearState(1)
	assert.Equal(t, StateNone, m.GetState(1))
}

func TestManager_DialogExpires(t *testing.T) {
	m := NewManager()
	now := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }

	m.Begin(1, Dialog{State: StateAwaitingTimetable})

	now = now.Add(DialogTTL)
	assert.Equal(t, StateAwaitingTimetable, m.GetState(1))

	now = now.Add(time.Second)
	_, ok := m.Get(1)
	assert.False(t, ok)
}
