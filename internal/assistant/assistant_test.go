package assistant_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/assistant"
)

type memStore struct {
	saved *addressbook.AddressBook
	saves int
	err   error
}

func (m *memStore) Load() (*addressbook.AddressBook, error) {
	return addressbook.New(), nil
}

func (m *memStore) Save(book *addressbook.AddressBook) error {
	m.saves++
	m.saved = book
	return m.err
}

func newAssistant(in io.Reader, out io.Writer, store *memStore) *assistant.Assistant {
	a := assistant.New(newService(), assistant.NewTranslator("en"), store, in, out)
	a.Prompt = ""
	return a
}

// TestExecute replays a session line by line against one assistant.
func TestExecute(t *testing.T) {
	a := newAssistant(strings.NewReader(""), io.Discard, &memStore{})

	steps := []struct {
		line string
		want string
	}{
		{"", "You didn't enter a command."},
		{"dance", "Invalid command."},
		{"HELLO", "How can I help you?"},
		{"all", "The address book is empty."},
		{"add", "Give me name and phone please."},
		{"add John", "Give me name and phone please."},
		{"add John 123", "Phone number must contain exactly 10 digits."},
		{"all", "The address book is empty."},
		{"add John 0501234567", "Contact added."},
		{"add John 0671234567", "Contact updated."},
		{"phone John", "0501234567, 0671234567"},
		{"phone", "Enter user name."},
		{"phone Jane", "Contact with name Jane not found!"},
		{"change John 0501234567", "Give me name, old phone and new phone please."},
		{"change John 1111111111 0931112233", "Phone number 1111111111 not found!"},
		{"change John 0501234567 bad", "Phone number must contain exactly 10 digits."},
		{"change John 0501234567 0931112233", "Contact updated."},
		{"show-birthday John", "Birthday for contact with name John not found!"},
		{"add-birthday John", "Give me name and birthday please."},
		{"add-birthday John 1990-07-06", "Invalid date format. Use DD.MM.YYYY"},
		{"add-birthday John 06.07.1990", "Birthday added."},
		{"add-birthday John 03.07.1990", "Birthday updated."},
		{"show-birthday John", "03.07.1990"},
		{"birthdays", "John: 03.07.2024"},
		{"birthdays 1", "No upcoming birthdays."},
		{"birthdays soon", "Number of days must be a whole number between 0 and 366."},
		{"birthdays 400", "Number of days must be a whole number between 0 and 366."},
		{"all", "Contact name: John, phones: 0931112233; 0671234567, birthday: 03.07.1990"},
		{"remove-phone John 0000000000", "Phone number 0000000000 not found!"},
		{"remove-phone John 0671234567", "Phone removed."},
		{"delete Jane", "Contact with name Jane not found!"},
		{"delete John", "Contact deleted."},
		{"all", "The address book is empty."},
	}

	for _, step := range steps {
		reply, quit := a.Execute(step.line)
		assert.Equalf(t, step.want, reply, "line %q", step.line)
		assert.Falsef(t, quit, "line %q", step.line)
	}
}

func TestExecute_NamesWithSpaces(t *testing.T) {
	a := newAssistant(strings.NewReader(""), io.Discard, &memStore{})

	steps := []struct {
		line string
		want string
	}{
		{`add "John Smith" 0501234567`, "Contact added."},
		{`add John 0671234567`, "Contact added."},
		{`phone "John Smith"`, "0501234567"},
		{`phone John`, "0671234567"},
		{`add-birthday 'John Smith' 03.07.1990`, "Birthday added."},
		{`show-birthday "John Smith"`, "03.07.1990"},
		{`phone "John Smith`, `Unclosed quote. Put names with spaces in matching quotes: "John Smith".`},
		{`delete "John Smith"`, "Contact deleted."},
		{`all`, "Contact name: John, phones: 0671234567"},
	}

	for _, step := range steps {
		reply, _ := a.Execute(step.line)
		assert.Equalf(t, step.want, reply, "line %q", step.line)
	}
}

func TestExecute_Quit(t *testing.T) {
	a := newAssistant(strings.NewReader(""), io.Discard, &memStore{})
	for _, line := range []string{"close", "exit", "EXIT now"} {
		reply, quit := a.Execute(line)
		assert.True(t, quit, line)
		assert.Equal(t, "Good bye!", reply)
	}
}

func TestExecute_BirthdaysShiftWeekend(t *testing.T) {
	a := newAssistant(strings.NewReader(""), io.Discard, &memStore{})
	for _, line := range []string{
		"add Alice 0501234567",
		"add-birthday Alice 03.07.1990",
		"add Bob 0671234567",
		"add-birthday Bob 06.07.1985",
		"add Carol 0931112233",
		"add-birthday Carol 07.07.2000",
	} {
		_, _ = a.Execute(line)
	}

	reply, _ := a.Execute("birthdays 7")
	assert.Equal(t, "Alice: 03.07.2024\nBob: 08.07.2024\nCarol: 08.07.2024", reply)

	a.Horizon = 3
	reply, _ = a.Execute("birthdays")
	assert.Equal(t, "Alice: 03.07.2024", reply)
}

func TestRun_SessionSavesOnExit(t *testing.T) {
	in := strings.NewReader("hello\nadd John 0501234567\nexit\nadd Ignored 0671234567\n")
	var out bytes.Buffer
	store := &memStore{}

	err := newAssistant(in, &out, store).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Welcome to the assistant bot!\nHow can I help you?\nContact added.\nGood bye!\n", out.String())
	require.Equal(t, 1, store.saves)
	assert.Equal(t, "Contact name: John, phones: 0501234567", store.saved.String())
}

func TestRun_EndOfInputSaves(t *testing.T) {
	var out bytes.Buffer
	store := &memStore{}

	err := newAssistant(strings.NewReader("add John 0501234567"), &out, store).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, store.saves)
	assert.Equal(t, 1, store.saved.Len())
}

func TestRun_PromptIsWritten(t *testing.T) {
	var out bytes.Buffer
	a := newAssistant(strings.NewReader("exit\n"), &out, &memStore{})
	a.Prompt = "> "

	require.NoError(t, a.Run(context.Background()))
	assert.Equal(t, "Welcome to the assistant bot!\n> Good bye!\n", out.String())
}

func TestRun_CancelledContextStillSaves(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := &memStore{}
	err := newAssistant(pr, io.Discard, store).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, store.saves)

	// The reader is still parked in Read; the next line releases it and,
	// with the session over, it returns instead of delivering the line.
	_, err = io.WriteString(pw, "add Late 0501234567\n")
	require.NoError(t, err)
	assert.Equal(t, 0, store.saved.Len())
}

func TestRun_SaveFailureIsReported(t *testing.T) {
	var out bytes.Buffer
	store := &memStore{err: errors.New("disk full")}

	err := newAssistant(strings.NewReader("exit\n"), &out, store).Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, store.err)
	assert.Contains(t, out.String(), "Failed to save contacts: disk full")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("broken input")
}

func TestRun_ReadErrorIsReturned(t *testing.T) {
	store := &memStore{}
	err := newAssistant(failingReader{}, io.Discard, store).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken input")
	assert.Equal(t, 1, store.saves)
}
