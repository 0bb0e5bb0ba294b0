package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/assistant"
	"github.com/tartampluch/go-addressbook/internal/config"
	"github.com/tartampluch/go-addressbook/internal/exchange"
	"github.com/tartampluch/go-addressbook/internal/storage"
)

type cliFlags struct {
	dataFile string
	language string
	horizon  int
	days     int
	debug    bool
	version  bool
}

// app wires settings, storage and the assistant behind the cobra commands.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	flags    cliFlags
	settings *config.Settings
	clock    addressbook.Clock

	setupLog  func(debug bool, stderr io.Writer) io.Closer
	logCloser io.Closer
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	return &app{
		in:       in,
		out:      out,
		errOut:   errOut,
		clock:    addressbook.RealClock{},
		setupLog: setupLogging,
	}
}

func (a *app) close() {
	if a.logCloser != nil {
		_ = a.logCloser.Close() // Best effort close
		a.logCloser = nil
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               config.CLIUseRoot,
		Short:             config.CLIShortRoot,
		Long:              config.CLILongRoot,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: a.prepare,
		RunE:              a.runSession,
	}
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.dataFile, config.FlagDataFile, "", config.FlagDescDataFile)
	pf.StringVar(&a.flags.language, config.FlagLanguage, config.DefaultLanguage, config.FlagDescLanguage)
	pf.IntVar(&a.flags.horizon, config.FlagHorizon, config.DefaultHorizonDays, config.FlagDescHorizon)
	pf.BoolVar(&a.flags.debug, config.FlagDebug, false, config.FlagDescDebug)
	root.Flags().BoolVar(&a.flags.version, config.FlagVersion, false, config.FlagDescVersion)

	exportCmd := &cobra.Command{Use: config.CLIUseExport, Short: config.CLIShortExp}
	exportCmd.AddCommand(&cobra.Command{
		Use:   config.CLIUseVCard,
		Short: config.CLIShortVCard,
		Args:  cobra.ExactArgs(1),
		RunE:  a.exportVCard,
	})
	icsCmd := &cobra.Command{
		Use:   config.CLIUseICS,
		Short: config.CLIShortICS,
		Args:  cobra.ExactArgs(1),
		RunE:  a.exportICS,
	}
	icsCmd.Flags().IntVar(&a.flags.days, config.FlagDays, config.DefaultHorizonDays, config.FlagDescDays)
	exportCmd.AddCommand(icsCmd)

	importCmd := &cobra.Command{Use: config.CLIUseImport, Short: config.CLIShortImp}
	importCmd.AddCommand(&cobra.Command{
		Use:   config.CLIUseVCard,
		Short: config.CLIShortImpVC,
		Args:  cobra.ExactArgs(1),
		RunE:  a.importVCard,
	})

	root.AddCommand(exportCmd, importCmd)
	return root
}

// prepare reads settings, applies flags given on the command line on top of
// them, validates the result once and starts logging.
func (a *app) prepare(cmd *cobra.Command, _ []string) error {
	if a.flags.version {
		return nil
	}

	s, err := config.ReadSettings()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed(config.FlagDataFile) {
		s.DataFile = a.flags.dataFile
	}
	if flags.Changed(config.FlagLanguage) {
		s.Language = a.flags.language
	}
	if flags.Changed(config.FlagHorizon) {
		s.HorizonDays = a.flags.horizon
	}
	if flags.Changed(config.FlagDebug) {
		s.Debug = a.flags.debug
	}
	if err := s.Validate(); err != nil {
		return err
	}
	a.settings = s

	a.close()
	a.logCloser = a.setupLog(s.Debug, a.errOut)
	logStartupInfo(s)
	return nil
}

func (a *app) store() (*storage.FileStore, *addressbook.AddressBook, error) {
	store, err := storage.NewFileStore(a.settings.DataFile)
	if err != nil {
		return nil, nil, err
	}
	book, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return store, book, nil
}

func (a *app) runSession(cmd *cobra.Command, _ []string) error {
	if a.flags.version {
		printVersion(cmd.OutOrStdout())
		return nil
	}

	store, book, err := a.store()
	if err != nil {
		return err
	}

	session := assistant.New(
		assistant.NewService(book, a.clock),
		assistant.NewTranslator(a.settings.Language),
		store,
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
	)
	session.Horizon = a.settings.HorizonDays
	return session.Run(cmd.Context())
}

func (a *app) exportVCard(_ *cobra.Command, args []string) error {
	_, book, err := a.store()
	if err != nil {
		return err
	}
	return writeFile(args[0], func(w io.Writer) error {
		return exchange.ExportVCard(w, book)
	})
}

func (a *app) exportICS(cmd *cobra.Command, args []string) error {
	_, book, err := a.store()
	if err != nil {
		return err
	}

	days := a.settings.HorizonDays
	if cmd.Flags().Changed(config.FlagDays) {
		days = a.flags.days
	}
	if days < 0 || days > config.MaxHorizonDays {
		return fmt.Errorf("%s: %d", config.ErrHorizonRange, days)
	}

	tr := assistant.NewTranslator(a.settings.Language)
	exporter := &exchange.CalendarExporter{
		Clock: a.clock,
		FormatSummary: func(name string) string {
			return tr.Msg(config.TKeyEvtSummary, map[string]any{"Name": name})
		},
	}

	var events int
	err = writeFile(args[0], func(w io.Writer) error {
		events, err = exporter.Export(w, book, days)
		return err
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), config.MsgICSSummary, events)
	return nil
}

func (a *app) importVCard(cmd *cobra.Command, args []string) error {
	store, book, err := a.store()
	if err != nil {
		return err
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrOpenFile, err)
	}
	defer func() { _ = f.Close() }()

	stats, err := exchange.ImportVCard(cmd.Context(), f, book)
	if err != nil {
		return err
	}
	if err := store.Save(book); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), config.MsgImportSummary, stats.Imported, stats.Merged, stats.Skipped)
	return nil
}

// writeFile creates path with owner-only permissions and hands it to write.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, config.FilePermUserRW)
	if err != nil {
		return fmt.Errorf("%s: %w", config.ErrCreateFile, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%s: %w", config.ErrCreateFile, err)
	}
	return nil
}
