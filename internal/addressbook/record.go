package addressbook

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// Record is one contact: a name, an ordered list of distinct phones and an
// optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record with no phones and no birthday.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact name.
func (r *Record) Name() Name {
	return r.name
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// AddPhone validates number and appends it. Adding a number that is already
// present does nothing.
func (r *Record) AddPhone(number string) error {
	p, err := NewPhone(number)
	if err != nil {
		return err
	}
	if r.indexOf(number) >= 0 {
		return nil
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone drops every phone equal to number. Unknown numbers are ignored.
func (r *Record) RemovePhone(number string) {
	kept := r.phones[:0]
	for _, p := range r.phones {
		if p.value != number {
			kept = append(kept, p)
		}
	}
	// Clear the tail so the backing array holds no stale values.
	clear(r.phones[len(kept):])
	r.phones = kept
}

// EditPhone replaces the first phone equal to old with newNumber.
//
// It returns ErrPhoneNotFound when old is absent and a *ValidationError when
// newNumber is malformed; in both cases the list is left unchanged. When
// newNumber is already stored elsewhere, the edited entry is dropped instead
// so the list never holds the same number twice.
func (r *Record) EditPhone(old, newNumber string) error {
	i := r.indexOf(old)
	if i < 0 {
		return PhoneNotFound(old)
	}

	edited := r.phones[i]
	if err := edited.Set(newNumber); err != nil {
		return err
	}

	if j := r.indexOf(newNumber); j >= 0 && j != i {
		r.phones = append(r.phones[:i], r.phones[i+1:]...)
		return nil
	}
	r.phones[i] = edited
	return nil
}

// FindPhone returns the first phone equal to number.
func (r *Record) FindPhone(number string) (Phone, bool) {
	if i := r.indexOf(number); i >= 0 {
		return r.phones[i], true
	}
	return Phone{}, false
}

// SetBirthday validates date and overwrites the birthday. Use HasBirthday
// beforehand to tell an addition from an update.
func (r *Record) SetBirthday(date string) error {
	b, err := NewBirthday(date)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

func (r *Record) HasBirthday() bool {
	return r.birthday != nil
}

// String renders the record on one line:
//
//	Contact name: John, phones: 0501234567; 0671234567, birthday: 01.02.1990
func (r *Record) String() string {
	numbers := make([]string, len(r.phones))
	for i, p := range r.phones {
		numbers[i] = p.value
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, config.RecordFormat, r.name.value, strings.Join(numbers, config.PhoneSeparator))
	if r.birthday != nil {
		fmt.Fprintf(&sb, config.RecordBirthdayFmt, r.birthday.value)
	}
	return sb.String()
}

func (r *Record) indexOf(number string) int {
	for i, p := range r.phones {
		if p.value == number {
			return i
		}
	}
	return -1
}
