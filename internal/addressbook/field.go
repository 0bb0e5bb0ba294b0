package addressbook

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// phonePattern matches exactly ten ASCII digits.
var phonePattern = regexp.MustCompile(fmt.Sprintf(`^[0-9]{%d}$`, config.PhoneDigits))

// Field is the contract shared by the validated scalar values of a record.
// A Field is only ever obtained from its constructor, so holding one means
// the value already passed its format check.
type Field interface {
	Kind() FieldKind
	String() string
}

var (
	_ Field = Name{}
	_ Field = Phone{}
	_ Field = Birthday{}
)

// Name is the contact name. It is immutable once validated.
type Name struct {
	value string
}

// NewName accepts any string that is not empty after trimming whitespace.
// The original text is kept as is.
func NewName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, newValidationError(KindName, raw, config.ReasonName)
	}
	return Name{value: raw}, nil
}

func (n Name) Kind() FieldKind { return KindName }
func (n Name) String() string  { return n.value }

// Phone is a ten digit phone number. Unlike Name it can be edited in place,
// and every assignment goes through the same check as construction.
type Phone struct {
	value string
}

// NewPhone validates raw and returns the phone holding it.
func NewPhone(raw string) (Phone, error) {
	var p Phone
	if err := p.Set(raw); err != nil {
		return Phone{}, err
	}
	return p, nil
}

// Set replaces the number. On failure the previous value is kept.
func (p *Phone) Set(raw string) error {
	if !phonePattern.MatchString(raw) {
		return newValidationError(KindPhone, raw, config.ReasonPhone)
	}
	p.value = raw
	return nil
}

func (p Phone) Kind() FieldKind { return KindPhone }
func (p Phone) String() string  { return p.value }

// Birthday is a date of birth written as DD.MM.YYYY.
type Birthday struct {
	value string
	date  time.Time
}

// NewBirthday parses raw with the fixed DD.MM.YYYY layout. Impossible dates
// such as 31.02.2024 are rejected.
func NewBirthday(raw string) (Birthday, error) {
	date, err := time.Parse(config.DateLayoutBirthday, raw)
	if err != nil {
		return Birthday{}, newValidationError(KindBirthday, raw, config.ReasonBirthday)
	}
	return Birthday{value: raw, date: date}, nil
}

func (b Birthday) Kind() FieldKind { return KindBirthday }
func (b Birthday) String() string  { return b.value }

// Date returns the calendar date at midnight UTC.
func (b Birthday) Date() time.Time { return b.date }

// Month and Day expose the recurring part of the date.
func (b Birthday) Month() time.Month { return b.date.Month() }
func (b Birthday) Day() int          { return b.date.Day() }
