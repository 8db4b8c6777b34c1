package io

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (fc *fakeClock) Now() time.Time {
	return fc.now
}

func TestWallTimer_Poll(t *testing.T) {
	assert := assert.New(t)

	clock := &fakeClock{now: time.Unix(1000, 0)}
	timer := &WallTimer{Now: clock.Now}
	timer.Rewind()

	assert.False(timer.Poll())

	clock.now = clock.now.Add(999 * time.Millisecond)
	assert.False(timer.Poll())

	clock.now = clock.now.Add(time.Millisecond)
	assert.True(timer.Poll())
	assert.False(timer.Poll())

	clock.now = clock.now.Add(1500 * time.Millisecond)
	assert.True(timer.Poll())

	// Period restarts at the firing, not on a fixed grid.
	clock.now = clock.now.Add(600 * time.Millisecond)
	assert.False(timer.Poll())
}

func TestWallTimer_Period(t *testing.T) {
	assert := assert.New(t)

	clock := &fakeClock{now: time.Unix(1000, 0)}
	timer := &WallTimer{Now: clock.Now, Period: 10 * time.Millisecond}
	timer.Rewind()

	clock.now = clock.now.Add(10 * time.Millisecond)
	assert.True(timer.Poll())
}

func TestWallTimer_NoRewind(t *testing.T) {
	assert := assert.New(t)

	clock := &fakeClock{now: time.Unix(1000, 0)}
	timer := &WallTimer{Now: clock.Now}

	// The first poll starts the period.
	assert.False(timer.Poll())
	clock.now = clock.now.Add(TIMER_PERIOD)
	assert.True(timer.Poll())
}

func TestWallTimer_Rewind(t *testing.T) {
	assert := assert.New(t)

	clock := &fakeClock{now: time.Unix(1000, 0)}
	timer := &WallTimer{Now: clock.Now}
	timer.Rewind()

	clock.now = clock.now.Add(900 * time.Millisecond)
	timer.Rewind()
	clock.now = clock.now.Add(900 * time.Millisecond)
	assert.False(timer.Poll())
}
