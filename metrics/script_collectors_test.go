package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/babylonchain/btc-staking-scripts/metrics"
)

func TestScriptMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := metrics.NewScriptMetrics(reg)
	require.NoError(t, err)

	m.RecordScriptBuilt("slashing", 140)
	m.RecordScriptBuilt("slashing", 172)
	m.RecordScriptFailed("unbonding")

	count, err := promtestutil.GatherAndCount(reg, "staking_scripts_built_total")
	require.NoError(t, err)
	require.Equal(t, 1, count)

	// registering twice on the same registry fails
	_, err = metrics.NewScriptMetrics(reg)
	require.Error(t, err)
}

func TestNilScriptMetrics(t *testing.T) {
	var m *metrics.ScriptMetrics
	require.NotPanics(t, func() {
		m.RecordScriptBuilt("timelock", 1)
		m.RecordScriptFailed("timelock")
	})
}
