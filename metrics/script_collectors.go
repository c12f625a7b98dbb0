package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ScriptMetrics counts the staking scripts built by a script builder. A nil
// *ScriptMetrics is valid and records nothing.
type ScriptMetrics struct {
	scriptsBuilt  *prometheus.CounterVec
	scriptsFailed *prometheus.CounterVec
	scriptSize    *prometheus.GaugeVec
}

// NewScriptMetrics creates the script collectors and registers them with reg.
func NewScriptMetrics(reg prometheus.Registerer) (*ScriptMetrics, error) {
	m := &ScriptMetrics{
		scriptsBuilt: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "staking_scripts_built_total",
				Help: "The total number of staking scripts built successfully",
			},
			[]string{"script"},
		),
		scriptsFailed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "staking_scripts_failed_total",
				Help: "The total number of staking script builds that failed",
			},
			[]string{"script"},
		),
		scriptSize: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "staking_script_size_bytes",
				Help: "The size of the most recently built staking script",
			},
			[]string{"script"},
		),
	}

	for _, c := range []prometheus.Collector{m.scriptsBuilt, m.scriptsFailed, m.scriptSize} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *ScriptMetrics) RecordScriptBuilt(script string, size int) {
	if m == nil {
		return
	}
	m.scriptsBuilt.WithLabelValues(script).Inc()
	m.scriptSize.WithLabelValues(script).Set(float64(size))
}

func (m *ScriptMetrics) RecordScriptFailed(script string) {
	if m == nil {
		return
	}
	m.scriptsFailed.WithLabelValues(script).Inc()
}
