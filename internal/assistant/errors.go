package assistant

import (
	"errors"
	"log/slog"

	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
)

var (
	// ErrMissingArguments is wrapped by every *MissingArgumentsError.
	ErrMissingArguments = errors.New("missing arguments")

	ErrInvalidDays   = errors.New("invalid number of days")
	ErrUnclosedQuote = errors.New("unclosed quote")
)

// MissingArgumentsError reports a command given fewer arguments than it
// needs. Hint is the message ID telling the user what to type.
type MissingArgumentsError struct {
	Command string
	Hint    string
}

func (e *MissingArgumentsError) Error() string {
	return ErrMissingArguments.Error() + ": " + e.Command
}

func (e *MissingArgumentsError) Unwrap() error {
	return ErrMissingArguments
}

func requireArgs(cmd string, args []string, n int, hint string) error {
	if len(args) < n {
		return &MissingArgumentsError{Command: cmd, Hint: hint}
	}
	return nil
}

// describeError turns an operation error into the line shown to the user.
// Errors it does not know are logged and reported generically.
func describeError(tr *Translator, err error) string {
	var (
		missing  *MissingArgumentsError
		invalid  *addressbook.ValidationError
		notFound *addressbook.NotFoundError
	)

	switch {
	case errors.As(err, &missing):
		return tr.Msg(missing.Hint, nil)

	case errors.As(err, &invalid):
		switch invalid.Kind {
		case addressbook.KindName:
			return tr.Msg(config.TKeyErrInvalidName, nil)
		case addressbook.KindPhone:
			return tr.Msg(config.TKeyErrInvalidPhone, nil)
		case addressbook.KindBirthday:
			return tr.Msg(config.TKeyErrInvalidDate, nil)
		}
		return invalid.Reason

	case errors.As(err, &notFound):
		switch {
		case errors.Is(notFound, addressbook.ErrContactNotFound):
			return tr.Msg(config.TKeyErrContactMissing, map[string]any{"Name": notFound.Key})
		case errors.Is(notFound, addressbook.ErrPhoneNotFound):
			return tr.Msg(config.TKeyErrPhoneMissing, map[string]any{"Phone": notFound.Key})
		case errors.Is(notFound, addressbook.ErrBirthdayNotSet):
			return tr.Msg(config.TKeyErrBirthdayUnset, map[string]any{"Name": notFound.Key})
		}

	case errors.Is(err, ErrInvalidDays):
		return tr.Msg(config.TKeyErrInvalidDays, nil)

	case errors.Is(err, ErrUnclosedQuote):
		return tr.Msg(config.TKeyErrUnclosedQuote, nil)
	}

	slog.Error(config.MsgCommandFailed,
		config.LogKeyComponent, config.CompAssistant,
		config.LogKeyError, err,
	)
	return tr.Msg(config.TKeyErrUnexpected, nil)
}
