package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_CanonicalValues(t *testing.T) {
	got := DefaultConfig()
	want := Config{
		NumQueues:      3,
		TimeSlice:      2,
		BoostInterval:  100,
		AgingThreshold: 5,
		MaxIterations:  10000,
	}
	assert.Equal(t, want, got)
}

func TestConfig_Validate_NamesOffendingField(t *testing.T) {
	cases := []struct {
		name  string
		cfg   Config
		field string
	}{
		{"num_queues", Config{NumQueues: 0, TimeSlice: 2, BoostInterval: 100, AgingThreshold: 5}, "num_queues"},
		{"time_slice", Config{NumQueues: 3, TimeSlice: -1, BoostInterval: 100, AgingThreshold: 5}, "time_slice"},
		{"boost_interval", Config{NumQueues: 3, TimeSlice: 2, BoostInterval: 0, AgingThreshold: 5}, "boost_interval"},
		{"aging_threshold", Config{NumQueues: 3, TimeSlice: 2, BoostInterval: 100, AgingThreshold: -3}, "aging_threshold"},
		{"max_iterations", Config{NumQueues: 3, TimeSlice: 2, BoostInterval: 100, AgingThreshold: 5, MaxIterations: -1}, "max_iterations"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tc.field, cfgErr.Field)
			assert.Contains(t, cfgErr.Error(), tc.field)
		})
	}

	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Quantum_GrowsLinearly(t *testing.T) {
	cfg := Config{NumQueues: 4, TimeSlice: 3, BoostInterval: 100, AgingThreshold: 5}
	assert.Equal(t, int64(3), cfg.Quantum(0))
	assert.Equal(t, int64(6), cfg.Quantum(1))
	assert.Equal(t, int64(12), cfg.Quantum(3))
}
