package assistant_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/assistant"
)

// monday is 01.07.2024.
var monday = addressbook.FixedClock{Time: time.Date(2024, 7, 1, 10, 0, 0, 0, time.UTC)}

func newService() *assistant.Service {
	return assistant.NewService(addressbook.New(), monday)
}

func TestService_AddContact(t *testing.T) {
	svc := newService()

	status, err := svc.AddContact("John", "0501234567")
	require.NoError(t, err)
	assert.Equal(t, assistant.StatusContactAdded, status)

	status, err = svc.AddContact("John", "0671234567")
	require.NoError(t, err)
	assert.Equal(t, assistant.StatusContactUpdated, status)

	status, err = svc.AddContact("John", "0671234567")
	require.NoError(t, err, "adding a known number is not an error")
	assert.Equal(t, assistant.StatusContactUpdated, status)

	phones, err := svc.ListPhones("John")
	require.NoError(t, err)
	assert.Equal(t, "0501234567, 0671234567", phones)
}

func TestService_AddContact_InvalidPhoneLeavesNoRecord(t *testing.T) {
	svc := newService()

	_, err := svc.AddContact("Ghost", "123")
	require.ErrorIs(t, err, addressbook.ErrValidation)

	_, found := svc.FindContact("Ghost")
	assert.False(t, found)
	assert.Equal(t, "", svc.RenderAll())
}

func TestService_ChangePhone(t *testing.T) {
	svc := newService()
	_, err := svc.AddContact("John", "0501234567")
	require.NoError(t, err)

	status, err := svc.ChangePhone("John", "0501234567", "0931112233")
	require.NoError(t, err)
	assert.Equal(t, assistant.StatusContactUpdated, status)

	_, err = svc.ChangePhone("John", "0501234567", "0931112233")
	assert.ErrorIs(t, err, addressbook.ErrPhoneNotFound)

	_, err = svc.ChangePhone("John", "0931112233", "bad")
	assert.ErrorIs(t, err, addressbook.ErrValidation)

	_, err = svc.ChangePhone("Nobody", "0931112233", "0501234567")
	assert.ErrorIs(t, err, addressbook.ErrContactNotFound)

	phones, err := svc.ListPhones("John")
	require.NoError(t, err)
	assert.Equal(t, "0931112233", phones)
}

func TestService_ListPhones_UnknownContact(t *testing.T) {
	_, err := newService().ListPhones("Nobody")
	assert.ErrorIs(t, err, addressbook.ErrContactNotFound)
}

func TestService_Birthday(t *testing.T) {
	svc := newService()
	_, err := svc.AddContact("John", "0501234567")
	require.NoError(t, err)

	_, err = svc.ShowBirthday("John")
	assert.ErrorIs(t, err, addressbook.ErrBirthdayNotSet)

	status, err := svc.SetBirthday("John", "03.07.1990")
	require.NoError(t, err)
	assert.Equal(t, assistant.StatusBirthdayAdded, status)

	status, err = svc.SetBirthday("John", "04.07.1990")
	require.NoError(t, err)
	assert.Equal(t, assistant.StatusBirthdayUpdated, status)

	_, err = svc.SetBirthday("John", "1990-07-04")
	assert.ErrorIs(t, err, addressbook.ErrValidation)

	got, err := svc.ShowBirthday("John")
	require.NoError(t, err)
	assert.Equal(t, "04.07.1990", got)

	_, err = svc.SetBirthday("Nobody", "04.07.1990")
	assert.ErrorIs(t, err, addressbook.ErrContactNotFound)
	_, err = svc.ShowBirthday("Nobody")
	assert.ErrorIs(t, err, addressbook.ErrContactNotFound)
}

func TestService_UpcomingBirthdaysUsesClock(t *testing.T) {
	svc := newService()
	_, err := svc.AddContact("Bob", "0501234567")
	require.NoError(t, err)
	_, err = svc.SetBirthday("Bob", "06.07.1985")
	require.NoError(t, err)

	got := svc.UpcomingBirthdays(7)
	require.Len(t, got, 1)
	assert.Equal(t, "Bob", got[0].Name)
	assert.Equal(t, "08.07.2024", got[0].FormattedDate())

	assert.Empty(t, svc.UpcomingBirthdays(2))
}

func TestService_DeleteContact(t *testing.T) {
	svc := newService()
	_, err := svc.AddContact("John", "0501234567")
	require.NoError(t, err)

	status, err := svc.DeleteContact("John")
	require.NoError(t, err)
	assert.Equal(t, assistant.StatusContactDeleted, status)

	_, err = svc.DeleteContact("John")
	assert.ErrorIs(t, err, addressbook.ErrContactNotFound)
}

func TestService_RemovePhone(t *testing.T) {
	svc := newService()
	_, err := svc.AddContact("John", "0501234567")
	require.NoError(t, err)

	_, err = svc.RemovePhone("John", "0671234567")
	assert.ErrorIs(t, err, addressbook.ErrPhoneNotFound)

	status, err := svc.RemovePhone("John", "0501234567")
	require.NoError(t, err)
	assert.Equal(t, assistant.StatusPhoneRemoved, status)

	phones, err := svc.ListPhones("John")
	require.NoError(t, err)
	assert.Equal(t, "", phones)

	_, err = svc.RemovePhone("Nobody", "0501234567")
	assert.ErrorIs(t, err, addressbook.ErrContactNotFound)
}
