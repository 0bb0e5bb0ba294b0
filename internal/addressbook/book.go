package addressbook

import (
	"slices"
	"strings"
)

// AddressBook maps contact names to records. Records are kept in insertion
// order, which is the order used for rendering and for the birthday query.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// New returns an empty address book.
func New() *AddressBook {
	return &AddressBook{records: make(map[string]*Record)}
}

// AddRecord stores r under its name. A record with the same name is never
// overwritten: the call is a no-op and reports false.
func (b *AddressBook) AddRecord(r *Record) bool {
	if r == nil {
		return false
	}
	key := r.name.value
	if _, exists := b.records[key]; exists {
		return false
	}
	b.records[key] = r
	b.order = append(b.order, key)
	return true
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Get is Find for callers that want an error: it returns a *NotFoundError
// wrapping ErrContactNotFound when name is unknown.
func (b *AddressBook) Get(name string) (*Record, error) {
	if r, ok := b.records[name]; ok {
		return r, nil
	}
	return nil, ContactNotFound(name)
}

// Delete removes the record stored under name and reports whether one existed.
func (b *AddressBook) Delete(name string) bool {
	if _, ok := b.records[name]; !ok {
		return false
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(k string) bool { return k == name })
	return true
}

// Records returns the records in collection order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

func (b *AddressBook) Len() int {
	return len(b.order)
}

// String joins the rendering of every record with newlines.
func (b *AddressBook) String() string {
	lines := make([]string, 0, len(b.order))
	for _, r := range b.Records() {
		lines = append(lines, r.String())
	}
	return strings.Join(lines, "\n")
}
