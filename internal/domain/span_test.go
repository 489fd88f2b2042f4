package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProfile(t *testing.T) {
	profile, end := NewProfile()

	first, _ := profile.StartNewSpan("pass 0")
	require.Nil(t, first.Elapsed)

	second, endSecond := profile.StartNewSpan("loop restart")
	require.NotNil(t, first.Elapsed)
	require.Nil(t, second.Elapsed)
	endSecond()
	elapsed := *second.Elapsed

	_, _ = profile.StartNewSpan("pass 1")
	end()
	end()

	require.Equal(t, elapsed, *second.Elapsed)
	require.NotNil(t, profile.TotalMs)
	for _, s := range profile.Spans {
		require.NotNil(t, s.Elapsed)
	}

	b, err := profile.ToJsonBytes()
	require.NoError(t, err)
	out := struct {
		Spans []struct {
			Name string `json:"name"`
		} `json:"spans"`
	}{}
	require.NoError(t, json.Unmarshal(b, &out))
	require.Len(t, out.Spans, 3)
	require.Equal(t, "loop restart", out.Spans[1].Name)
}
