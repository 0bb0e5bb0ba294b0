package assistant

import (
	"strings"

	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// Status is the outcome of a successful mutating operation. Its value is the
// message ID shown to the user.
type Status string

const (
	StatusContactAdded    Status = config.TKeyContactAdded
	StatusContactUpdated  Status = config.TKeyContactUpdated
	StatusContactDeleted  Status = config.TKeyContactDeleted
	StatusPhoneRemoved    Status = config.TKeyPhoneRemoved
	StatusBirthdayAdded   Status = config.TKeyBirthdayAdded
	StatusBirthdayUpdated Status = config.TKeyBirthdayUpdated
)

// Service runs the address book operations behind the commands. It takes raw
// strings and returns statuses or typed errors; it never prints.
type Service struct {
	book  *addressbook.AddressBook
	clock addressbook.Clock
}

// NewService wraps book. A nil clock means the wall clock.
func NewService(book *addressbook.AddressBook, clock addressbook.Clock) *Service {
	if clock == nil {
		clock = addressbook.RealClock{}
	}
	return &Service{book: book, clock: clock}
}

// Book returns the book being served.
func (s *Service) Book() *addressbook.AddressBook {
	return s.book
}

// AddContact creates the contact with phone, or adds phone to the existing
// contact. The phone is validated before a new record is stored, so a bad
// number never leaves an empty contact behind.
func (s *Service) AddContact(name, phone string) (Status, error) {
	if rec, ok := s.book.Find(name); ok {
		if err := rec.AddPhone(phone); err != nil {
			return "", err
		}
		return StatusContactUpdated, nil
	}

	rec, err := addressbook.NewRecord(name)
	if err != nil {
		return "", err
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	s.book.AddRecord(rec)
	return StatusContactAdded, nil
}

func (s *Service) FindContact(name string) (*addressbook.Record, bool) {
	return s.book.Find(name)
}

// RenderAll returns every record on its own line, or "" for an empty book.
func (s *Service) RenderAll() string {
	return s.book.String()
}

// ChangePhone replaces old with newPhone on the named contact.
func (s *Service) ChangePhone(name, old, newPhone string) (Status, error) {
	rec, err := s.book.Get(name)
	if err != nil {
		return "", err
	}
	if err := rec.EditPhone(old, newPhone); err != nil {
		return "", err
	}
	return StatusContactUpdated, nil
}

// ListPhones returns the contact's numbers joined by ", ".
func (s *Service) ListPhones(name string) (string, error) {
	rec, err := s.book.Get(name)
	if err != nil {
		return "", err
	}
	phones := rec.Phones()
	numbers := make([]string, len(phones))
	for i, p := range phones {
		numbers[i] = p.String()
	}
	return strings.Join(numbers, config.PhoneListJoin), nil
}

// SetBirthday sets or replaces the contact's birthday.
func (s *Service) SetBirthday(name, date string) (Status, error) {
	rec, err := s.book.Get(name)
	if err != nil {
		return "", err
	}
	had := rec.HasBirthday()
	if err := rec.SetBirthday(date); err != nil {
		return "", err
	}
	if had {
		return StatusBirthdayUpdated, nil
	}
	return StatusBirthdayAdded, nil
}

// ShowBirthday returns the birthday as it was entered.
func (s *Service) ShowBirthday(name string) (string, error) {
	rec, err := s.book.Get(name)
	if err != nil {
		return "", err
	}
	b, ok := rec.Birthday()
	if !ok {
		return "", addressbook.BirthdayNotSet(name)
	}
	return b.String(), nil
}

// UpcomingBirthdays runs the birthday query for today according to the
// service clock.
func (s *Service) UpcomingBirthdays(horizonDays int) []addressbook.Congratulation {
	return s.book.UpcomingBirthdays(s.clock.Now(), horizonDays)
}

func (s *Service) DeleteContact(name string) (Status, error) {
	if !s.book.Delete(name) {
		return "", addressbook.ContactNotFound(name)
	}
	return StatusContactDeleted, nil
}

// RemovePhone drops phone from the contact. Unlike the record operation it
// reports a number that is not there.
func (s *Service) RemovePhone(name, phone string) (Status, error) {
	rec, err := s.book.Get(name)
	if err != nil {
		return "", err
	}
	if _, ok := rec.FindPhone(phone); !ok {
		return "", addressbook.PhoneNotFound(phone)
	}
	rec.RemovePhone(phone)
	return StatusPhoneRemoved, nil
}
