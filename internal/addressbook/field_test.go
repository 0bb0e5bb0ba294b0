package addressbook_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"Simple", "Alice", false},
		{"Cyrillic", "Олена", false},
		{"Inner spaces kept", "Mary Ann", false},
		{"Empty", "", true},
		{"Whitespace only", " \t ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := addressbook.NewName(tt.raw)
			if tt.wantErr {
				var vErr *addressbook.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, addressbook.KindName, vErr.Kind)
				assert.Equal(t, config.ReasonName, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, n.String())
		})
	}
}

// TestNewPhone checks that only ten ASCII digits are accepted and that the
// text comes back untouched.
func TestNewPhone(t *testing.T) {
	tests := []struct {
		raw     string
		wantErr bool
	}{
		{"0501234567", false},
		{"1234567890", false},
		{"050123456", true},    // 9 digits
		{"05012345678", true},  // 11 digits
		{"050-123-456", true},  // separators
		{"+380501234", true},   // plus sign
		{"05012345a7", true},   // letter
		{"٠١٢٣٤٥٦٧٨٩", true},   // non-ASCII digits
		{" 0501234567", true},  // leading space
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			p, err := addressbook.NewPhone(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, addressbook.ErrValidation)
				assert.Equal(t, config.ReasonPhone, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, p.String())
			assert.Equal(t, addressbook.KindPhone, p.Kind())
		})
	}
}

func TestPhone_SetKeepsOldValueOnFailure(t *testing.T) {
	p, err := addressbook.NewPhone("0501234567")
	require.NoError(t, err)

	err = p.Set("bad")
	assert.ErrorIs(t, err, addressbook.ErrValidation)
	assert.Equal(t, "0501234567", p.String())

	require.NoError(t, p.Set("0679876543"))
	assert.Equal(t, "0679876543", p.String())
}

func TestNewBirthday(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"Regular", "03.07.1990", false},
		{"Leap day in leap year", "29.02.2024", false},
		{"End of year", "31.12.1999", false},
		{"Impossible day", "31.02.2024", true},
		{"Leap day in common year", "29.02.2023", true},
		{"Month 13", "01.13.2000", true},
		{"ISO layout", "1990-07-03", true},
		{"Unpadded day", "3.07.1990", true},
		{"Unpadded month", "03.7.1990", true},
		{"Two digit year", "03.07.90", true},
		{"Trailing text", "03.07.1990x", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := addressbook.NewBirthday(tt.raw)
			if tt.wantErr {
				var vErr *addressbook.ValidationError
				require.True(t, errors.As(err, &vErr), "expected a ValidationError")
				assert.Equal(t, addressbook.KindBirthday, vErr.Kind)
				assert.Equal(t, tt.raw, vErr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, b.String())
		})
	}
}

func TestBirthday_DateParts(t *testing.T) {
	b, err := addressbook.NewBirthday("29.02.2000")
	require.NoError(t, err)

	assert.Equal(t, 29, b.Day())
	assert.Equal(t, 2, int(b.Month()))
	assert.Equal(t, 2000, b.Date().Year())
}
