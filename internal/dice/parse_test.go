package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/herald-bot/internal/dice"
	herr "github.com/KirkDiggler/herald-bot/internal/errors"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "plain number", raw: "4", want: 4},
		{name: "surrounding space", raw: " 3 ", want: 3},
		{name: "negative is not malformed", raw: "-2", want: -2},
		{name: "word", raw: "three", wantErr: true},
		{name: "decimal", raw: "2.5", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := dice.ParseCount("skill", tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, herr.IsInvalidArgument(err))
				assert.Equal(t, "skill", herr.GetMeta(err)["argument"])
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFlag(t *testing.T) {
	got, err := dice.ParseFlag("desperation", "true")
	require.NoError(t, err)
	assert.True(t, got)

	got, err = dice.ParseFlag("desperation", "")
	require.NoError(t, err)
	assert.False(t, got)

	_, err = dice.ParseFlag("desperation", "maybe")
	require.Error(t, err)
	assert.True(t, herr.IsInvalidArgument(err))
}
