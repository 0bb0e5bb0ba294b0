package storage

import (
	"fmt"

	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// snapshot is the on-disk form of a whole address book. Field names are part
// of the file format; bump config.SnapshotVersion when they change.
type snapshot struct {
	Version  int       `json:"version" yaml:"version"`
	Contacts []contact `json:"contacts" yaml:"contacts"`
}

type contact struct {
	Name     string   `json:"name" yaml:"name"`
	Phones   []string `json:"phones,omitempty" yaml:"phones,omitempty"`
	Birthday string   `json:"birthday,omitempty" yaml:"birthday,omitempty"`
}

func toSnapshot(book *addressbook.AddressBook) snapshot {
	s := snapshot{
		Version:  config.SnapshotVersion,
		Contacts: make([]contact, 0, book.Len()),
	}
	for _, r := range book.Records() {
		c := contact{Name: r.Name().String()}
		for _, p := range r.Phones() {
			c.Phones = append(c.Phones, p.String())
		}
		if b, ok := r.Birthday(); ok {
			c.Birthday = b.String()
		}
		s.Contacts = append(s.Contacts, c)
	}
	return s
}

// fromSnapshot rebuilds the book through the regular constructors so that a
// hand-edited file cannot smuggle in values the model would reject.
func fromSnapshot(s snapshot) (*addressbook.AddressBook, error) {
	if s.Version != config.SnapshotVersion {
		return nil, fmt.Errorf("%s: %d", config.ErrSnapshotVer, s.Version)
	}

	book := addressbook.New()
	for i, c := range s.Contacts {
		r, err := addressbook.NewRecord(c.Name)
		if err != nil {
			return nil, fmt.Errorf("%s #%d: %w", config.ErrSnapshotRecord, i, err)
		}
		for _, p := range c.Phones {
			if err := r.AddPhone(p); err != nil {
				return nil, fmt.Errorf("%s %q: %w", config.ErrSnapshotRecord, c.Name, err)
			}
		}
		if c.Birthday != "" {
			if err := r.SetBirthday(c.Birthday); err != nil {
				return nil, fmt.Errorf("%s %q: %w", config.ErrSnapshotRecord, c.Name, err)
			}
		}
		book.AddRecord(r)
	}
	return book, nil
}
