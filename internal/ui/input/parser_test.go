package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/TerminalMinesweeper/internal/game/core"
)

func TestParseAction(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		want    core.Action
		wantErr error
		errText string
	}{
		{name: "flag", line: "F 0 2", want: core.NewFlagAction(0, 2)},
		{name: "guess", line: "G 3 4", want: core.NewGuessAction(3, 4)},
		{name: "lowercase mode", line: "g 1 1", want: core.NewGuessAction(1, 1)},
		{name: "extra whitespace", line: "  F\t5   6 \n", want: core.NewFlagAction(5, 6)},
		{name: "negative parses", line: "G -1 0", want: core.NewGuessAction(-1, 0)},
		{name: "empty", line: "", wantErr: ErrWrongTokenCount, errText: "got 0"},
		{name: "too few", line: "G 1", wantErr: ErrWrongTokenCount, errText: "got 2"},
		{name: "too many", line: "G 1 2 3", wantErr: ErrWrongTokenCount, errText: "got 4"},
		{name: "unknown mode", line: "X 1 2", wantErr: ErrUnknownMode, errText: "'X'"},
		{name: "bad row", line: "G a 2", wantErr: ErrInvalidNumber, errText: "'a'"},
		{name: "bad col", line: "F 1 2.5", wantErr: ErrInvalidNumber, errText: "'2.5'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAction(tt.line)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Contains(t, err.Error(), tt.errText)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
