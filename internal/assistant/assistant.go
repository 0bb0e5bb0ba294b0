package assistant

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/storage"
)

// Assistant is the interactive command loop. It owns the book for the
// duration of a session and saves it through Store when the session ends.
type Assistant struct {
	Service    *Service
	Translator *Translator
	Store      storage.Store

	In     io.Reader
	Out    io.Writer
	Prompt string

	// Horizon is the day window used by "birthdays" without an argument.
	Horizon int
}

// New returns an assistant with the default prompt and horizon.
func New(svc *Service, tr *Translator, store storage.Store, in io.Reader, out io.Writer) *Assistant {
	return &Assistant{
		Service:    svc,
		Translator: tr,
		Store:      store,
		In:         in,
		Out:        out,
		Prompt:     config.Prompt,
		Horizon:    config.DefaultHorizonDays,
	}
}

// Run reads commands until "close"/"exit", end of input or cancellation of
// ctx, then saves the book. A save failure is reported to the user and
// returned.
func (a *Assistant) Run(ctx context.Context) error {
	slog.Info(config.MsgSessionStart, config.LogKeyComponent, config.CompAssistant)
	fmt.Fprintln(a.Out, a.Translator.Msg(config.TKeyWelcome, nil))

	done := make(chan struct{})
	lines, readErr := readLines(a.In, done)
	loopErr := a.loop(ctx, lines, readErr)
	close(done)

	saveErr := a.save()
	slog.Info(config.MsgSessionEnd, config.LogKeyComponent, config.CompAssistant)
	return errors.Join(loopErr, saveErr)
}

func (a *Assistant) loop(ctx context.Context, lines <-chan string, readErr <-chan error) error {
	for {
		fmt.Fprint(a.Out, a.Prompt)

		select {
		case <-ctx.Done():
			fmt.Fprintln(a.Out)
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompAssistant)
			return nil

		case line, ok := <-lines:
			if !ok {
				fmt.Fprintln(a.Out)
				select {
				case err := <-readErr:
					return fmt.Errorf("%s: %w", config.ErrReadInput, err)
				default:
					return nil
				}
			}

			reply, quit := a.Execute(line)
			if reply != "" {
				fmt.Fprintln(a.Out, reply)
			}
			if quit {
				return nil
			}
		}
	}
}

// readLines scans r in its own goroutine so the loop can also wait on a
// context. The goroutine stops at end of input, or at the next line read
// after done is closed. While it is blocked inside a Read on r, closing done
// cannot wake it: it lingers until r returns, which for stdin means until
// the process exits.
// A scan error, if any, is sent on the error channel before lines is closed.
func readLines(r io.Reader, done <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errs := make(chan error, config.ChannelBufferSize)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			errs <- err
		}
	}()

	return lines, errs
}

func (a *Assistant) save() error {
	if a.Store == nil {
		return nil
	}
	if err := a.Store.Save(a.Service.Book()); err != nil {
		fmt.Fprintln(a.Out, a.Translator.Msg(config.TKeySaveFailed, map[string]any{"Error": err}))
		return err
	}
	return nil
}

// Execute runs one input line and returns the reply to print. quit reports
// that the session should end.
func (a *Assistant) Execute(line string) (reply string, quit bool) {
	cmd, args, err := ParseInput(line)
	if err != nil {
		return describeError(a.Translator, err), false
	}
	if cmd == "" {
		return a.msg(config.TKeyEmptyCommand), false
	}

	slog.Debug(config.MsgCommand,
		config.LogKeyComponent, config.CompAssistant,
		config.LogKeyCommand, cmd,
		config.LogKeyArgs, len(args),
	)

	switch cmd {
	case config.CmdClose, config.CmdExit:
		return a.msg(config.TKeyGoodbye), true
	case config.CmdHello:
		return a.msg(config.TKeyHello), false
	case config.CmdHelp:
		return a.msg(config.TKeyHelp), false
	}

	handler, ok := a.handlers()[cmd]
	if !ok {
		return a.msg(config.TKeyInvalidCommand), false
	}

	reply, err = handler(args)
	if err != nil {
		return describeError(a.Translator, err), false
	}
	return reply, false
}

type handlerFunc func(args []string) (string, error)

func (a *Assistant) handlers() map[string]handlerFunc {
	return map[string]handlerFunc{
		config.CmdAdd:          a.addContact,
		config.CmdChange:       a.changePhone,
		config.CmdPhone:        a.showPhones,
		config.CmdAll:          a.showAll,
		config.CmdAddBirthday:  a.addBirthday,
		config.CmdShowBirthday: a.showBirthday,
		config.CmdBirthdays:    a.birthdays,
		config.CmdDelete:       a.deleteContact,
		config.CmdRemovePhone:  a.removePhone,
	}
}

func (a *Assistant) msg(key string) string {
	return a.Translator.Msg(key, nil)
}

func (a *Assistant) status(s Status, err error) (string, error) {
	if err != nil {
		return "", err
	}
	return a.msg(string(s)), nil
}

func (a *Assistant) addContact(args []string) (string, error) {
	if err := requireArgs(config.CmdAdd, args, 2, config.TKeyErrNameArgs); err != nil {
		return "", err
	}
	return a.status(a.Service.AddContact(args[0], args[1]))
}

func (a *Assistant) changePhone(args []string) (string, error) {
	if err := requireArgs(config.CmdChange, args, 3, config.TKeyErrChangeArgs); err != nil {
		return "", err
	}
	return a.status(a.Service.ChangePhone(args[0], args[1], args[2]))
}

func (a *Assistant) showPhones(args []string) (string, error) {
	if err := requireArgs(config.CmdPhone, args, 1, config.TKeyErrUserName); err != nil {
		return "", err
	}
	phones, err := a.Service.ListPhones(args[0])
	if err != nil {
		return "", err
	}
	if phones == "" {
		return a.msg(config.TKeyNoPhones), nil
	}
	return phones, nil
}

func (a *Assistant) showAll(_ []string) (string, error) {
	if all := a.Service.RenderAll(); all != "" {
		return all, nil
	}
	return a.msg(config.TKeyNoContacts), nil
}

func (a *Assistant) addBirthday(args []string) (string, error) {
	if err := requireArgs(config.CmdAddBirthday, args, 2, config.TKeyErrDateArgs); err != nil {
		return "", err
	}
	return a.status(a.Service.SetBirthday(args[0], args[1]))
}

func (a *Assistant) showBirthday(args []string) (string, error) {
	if err := requireArgs(config.CmdShowBirthday, args, 1, config.TKeyErrUserName); err != nil {
		return "", err
	}
	return a.Service.ShowBirthday(args[0])
}

func (a *Assistant) birthdays(args []string) (string, error) {
	horizon := a.Horizon
	if len(args) > 0 {
		days, err := parseDays(args[0])
		if err != nil {
			return "", err
		}
		horizon = days
	}

	upcoming := a.Service.UpcomingBirthdays(horizon)
	if len(upcoming) == 0 {
		return a.msg(config.TKeyNoUpcoming), nil
	}

	lines := make([]string, 0, len(upcoming))
	for _, c := range upcoming {
		lines = append(lines, a.Translator.Msg(config.TKeyUpcomingLine, map[string]any{
			"Name": c.Name,
			"Date": c.FormattedDate(),
		}))
	}
	return strings.Join(lines, "\n"), nil
}

func (a *Assistant) deleteContact(args []string) (string, error) {
	if err := requireArgs(config.CmdDelete, args, 1, config.TKeyErrUserName); err != nil {
		return "", err
	}
	return a.status(a.Service.DeleteContact(args[0]))
}

func (a *Assistant) removePhone(args []string) (string, error) {
	if err := requireArgs(config.CmdRemovePhone, args, 2, config.TKeyErrNameArgs); err != nil {
		return "", err
	}
	return a.status(a.Service.RemovePhone(args[0], args[1]))
}

// parseDays accepts a whole number of days between 0 and MaxHorizonDays.
func parseDays(raw string) (int, error) {
	days, err := strconv.Atoi(raw)
	if err != nil || days < 0 || days > config.MaxHorizonDays {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDays, raw)
	}
	return days, nil
}
