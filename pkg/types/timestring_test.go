package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 1, 14, 30, 0, 0, time.UTC))
	assert.Equal(t, "14:30", ts.String())
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("09:00")
	require.NoError(t, err)
	assert.Equal(t, "09:00", ts.String())

	_, err = NewTimeStringFromString("9am")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestComparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("09:30"))
	assert.True(t, TimeString("10:00").IsAfter("09:30"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
}

func TestAddMinutes(t *testing.T) {
	shifted, err := TimeString("09:00").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "09:30", shifted.String())

	shifted, err = TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, "10:15", shifted.String())

	_, err = TimeString("23:45").AddMinutes(30)
	assert.Error(t, err)
}

func TestIsZero(t *testing.T) {
	assert.True(t, TimeString("").IsZero())
	assert.False(t, TimeString("09:00").IsZero())
}
