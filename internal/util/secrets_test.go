package util

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_parseSecrets(t *testing.T) {
	t.Run("fills simulation defaults", func(t *testing.T) {
		secrets, err := parseSecrets([]byte(`{"db":{"host":"localhost","port":"5440","user":"postgres","password":"postgres","database":"postgres"}}`))
		require.NoError(t, err)

		require.Equal(t, DefaultSimulationConfig().MaxRuns, secrets.Simulation.MaxRuns)
		require.True(t, secrets.Simulation.StartBalance.Equal(decimal.NewFromInt(10000)))
		require.Equal(
			t,
			"host=localhost port=5440 user=postgres password=postgres dbname=postgres sslmode=disable",
			secrets.Db.ToConnectionStr(),
		)
	})

	t.Run("keeps configured values", func(t *testing.T) {
		secrets, err := parseSecrets([]byte(`{"simulation":{"startBalance":"2500","maxRuns":3,"maxLoopRestarts":5}}`))
		require.NoError(t, err)

		require.True(t, secrets.Simulation.StartBalance.Equal(decimal.NewFromInt(2500)))
		require.Equal(t, 3, secrets.Simulation.MaxRuns)
		require.Equal(t, 5, secrets.Simulation.MaxLoopRestarts)
		require.Equal(t, 1, secrets.Simulation.OpeningPerformanceWindowDays)
	})

	t.Run("bad json", func(t *testing.T) {
		_, err := parseSecrets([]byte(`{`))
		require.Error(t, err)
	})
}
