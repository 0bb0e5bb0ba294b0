package assistant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/assistant"
)

func TestParseInput(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantCmd  string
		wantArgs []string
	}{
		{"Empty", "", "", nil},
		{"Blank", "   \t ", "", nil},
		{"Verb only", "hello", "hello", []string{}},
		{"Verb is lower-cased", "ADD John 0501234567", "add", []string{"John", "0501234567"}},
		{"Arguments keep their case", "phone JOHN", "phone", []string{"JOHN"}},
		{"Extra whitespace", "  change  John   1111111111  2222222222 ", "change", []string{"John", "1111111111", "2222222222"}},
		{"Double-quoted name", `add "John Smith" 0501234567`, "add", []string{"John Smith", "0501234567"}},
		{"Single-quoted name", `phone 'Mary Ann Lee'`, "phone", []string{"Mary Ann Lee"}},
		{"Escaped space", `delete John\ Smith`, "delete", []string{"John Smith"}},
		{"Variables are not expanded", `add $HOME 0501234567`, "add", []string{"$HOME", "0501234567"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args, err := assistant.ParseInput(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestParseInput_UnclosedQuote(t *testing.T) {
	_, _, err := assistant.ParseInput(`phone "John Smith`)
	require.Error(t, err)
	assert.ErrorIs(t, err, assistant.ErrUnclosedQuote)
}
