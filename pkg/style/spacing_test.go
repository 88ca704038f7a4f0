package style_test

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/docgen/pkg/style"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineSpacingIsValid(t *testing.T) {
	tests := []struct {
		name    string
		spacing style.LineSpacing
		want    bool
	}{
		{"single", style.Spacing(1.0), true},
		{"one_and_a_half", style.Spacing(1.5), true},
		{"double", style.Spacing(2.0), true},
		{"fixed", style.SpacingFixed(), true},
		{"zero", style.Spacing(0), false},
		{"negative", style.Spacing(-1.5), false},
		{"arbitrary_multiple", style.Spacing(1.25), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spacing.IsValid())
		})
	}
}

func TestLineSpacingString(t *testing.T) {
	assert.Equal(t, "1.5", style.Spacing(1.5).String())
	assert.Equal(t, "1", style.Spacing(1.0).String())
	assert.Equal(t, "2", style.Spacing(2.0).String())
	assert.Equal(t, "fixed", style.SpacingFixed().String())
}

func TestLineSpacingJSON(t *testing.T) {
	tests := []struct {
		name     string
		spacing  style.LineSpacing
		wantJSON string
	}{
		{"multiple_encodes_as_number", style.Spacing(1.5), "1.5"},
		{"single_encodes_as_number", style.Spacing(1.0), "1"},
		{"fixed_encodes_as_string", style.SpacingFixed(), `"fixed"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.spacing)
			require.NoError(t, err)
			assert.Equal(t, tt.wantJSON, string(data))

			var back style.LineSpacing
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.spacing, back)
		})
	}
}

func TestLineSpacingUnmarshalRejectsUnknownString(t *testing.T) {
	var s style.LineSpacing
	err := json.Unmarshal([]byte(`"loose"`), &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loose")
}
