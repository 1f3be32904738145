package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStartOfDay_KeepsLocalCalendarDay(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*3600)

	// 01:30 local is the previous day in UTC; the calendar day must not shift.
	ts := time.Date(2024, 5, 10, 1, 30, 0, 0, loc)
	got := startOfDay(ts)

	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, loc), got)
	assert.Equal(t, loc, got.Location())
}

func TestStartOfDay_Idempotent(t *testing.T) {
	ts := time.Date(2024, 5, 10, 23, 59, 59, 0, time.Local)
	assert.Equal(t, startOfDay(ts), startOfDay(startOfDay(ts)))
}
