package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateOnly(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)

	in := time.Date(2020, 1, 2, 23, 30, 0, 0, est)
	require.Equal(t, NewDate(2020, 1, 2), DateOnly(in))
}

func TestDateEq(t *testing.T) {
	require.True(t, DateEq(NewDate(2020, 1, 2).Add(5*time.Hour), NewDate(2020, 1, 2)))
	require.False(t, DateEq(NewDate(2020, 1, 3), NewDate(2020, 1, 2)))
}
