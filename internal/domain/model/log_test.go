package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogEntry_Set(t *testing.T) {
	var missingCl *float64

	tests := []struct {
		name  string
		key   string
		value interface{}
		want  map[string]interface{}
	}{
		{name: "number", key: "sp", value: 35.0, want: map[string]interface{}{"sp": 35.0}},
		{name: "pointer is dereferenced", key: "cl", value: Float(19350), want: map[string]interface{}{"cl": 19350.0}},
		{name: "nil pointer skipped", key: "cl", value: missingCl, want: nil},
		{name: "empty string skipped", key: "api_key_id", value: "", want: nil},
		{name: "nil skipped", key: "profile", value: nil, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := &LogEntry{ActionType: ActionCalculate}
			assert.Same(t, e, e.Set(tt.key, tt.value))
			if tt.want == nil {
				assert.Nil(t, e.Fields)
				return
			}
			assert.Equal(t, tt.want, e.Fields)
		})
	}
}

func TestLogEntry_SetChains(t *testing.T) {
	e := (&LogEntry{}).Set("sp", 35.0).Set("converged", true).Set("profile_version", 3)
	assert.Equal(t, map[string]interface{}{"sp": 35.0, "converged": true, "profile_version": 3}, e.Fields)
}
