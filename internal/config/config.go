package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName      = "Go Address Book"
	AppID        = "com.github.tartampluch.go-addressbook"
	BinaryName   = "go-addressbook"
	LogFileName  = "app.log"
	DataFileName = "contacts.json"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for logs and the contacts file.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion  = "version"
	FlagDebug    = "debug"
	FlagDataFile = "data"
	FlagLanguage = "lang"
	FlagHorizon  = "horizon"
	FlagDays     = "days"

	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr"
	FlagDescDataFile = "Path of the contacts file (.json, .yaml or .yml)"
	FlagDescLanguage = "Language of assistant messages (en, uk)"
	FlagDescHorizon  = "Days ahead counted as upcoming birthdays"
	FlagDescDays     = "Days ahead to include in the calendar"

	MsgVersionOutput = "%s version %s (commit %s, built %s, %s/%s)\n"
)

// Subcommands of the binary. The interactive session is the root command.
const (
	CLIUseRoot    = BinaryName
	CLIUseExport  = "export"
	CLIUseImport  = "import"
	CLIUseVCard   = "vcard <file>"
	CLIUseICS     = "ics <file>"
	CLIShortRoot  = "Personal address book assistant"
	CLIShortExp   = "Write contacts to another format"
	CLIShortImp   = "Merge contacts from another format"
	CLIShortVCard = "vCard 4.0 file of all contacts"
	CLIShortICS   = "iCalendar file of upcoming birthdays"
	CLIShortImpVC = "Merge contacts from a vCard file"
	CLILongRoot   = "Starts an interactive session. Type \"help\" for the list of commands."

	MsgImportSummary = "Imported %d, merged %d, skipped %d contacts.\n"
	MsgICSSummary    = "Wrote %d birthday events.\n"
)

// -----------------------------------------------------------------------------
// Settings (environment & config file)
// -----------------------------------------------------------------------------

const (
	// EnvConfigPath points at an optional YAML settings file.
	EnvConfigPath = "ADDRESSBOOK_CONFIG"

	DefaultLanguage    = "en"
	DefaultHorizonDays = 7
	MaxHorizonDays     = 366
)

// SupportedLanguages defines the list of available assistant languages (ISO 639-1).
var SupportedLanguages = []string{"en", "uk"}

// -----------------------------------------------------------------------------
// Assistant Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdDelete       = "delete"
	CmdRemovePhone  = "remove-phone"
	CmdHelp         = "help"
	CmdClose        = "close"
	CmdExit         = "exit"

	// Prompt is written before every line read from the user.
	Prompt = "Enter a command: "
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome         = "msg_welcome"
	TKeyGoodbye         = "msg_goodbye"
	TKeyHello           = "msg_hello"
	TKeyEmptyCommand    = "msg_empty_command"
	TKeyInvalidCommand  = "msg_invalid_command"
	TKeyHelp            = "msg_help"
	TKeyContactAdded    = "msg_contact_added"
	TKeyContactUpdated  = "msg_contact_updated"
	TKeyContactDeleted  = "msg_contact_deleted"
	TKeyPhoneRemoved    = "msg_phone_removed"
	TKeyBirthdayAdded   = "msg_birthday_added"
	TKeyBirthdayUpdated = "msg_birthday_updated"
	TKeyNoContacts      = "msg_no_contacts"
	TKeyNoPhones        = "msg_no_phones"
	TKeyNoUpcoming      = "msg_no_upcoming"
	TKeyUpcomingLine    = "msg_upcoming_line" // Requires Name, Date
	TKeySaveFailed      = "msg_save_failed"   // Requires Error
	TKeyEvtSummary      = "event_summary"     // Requires Name

	// Error translations
	TKeyErrNameArgs       = "err_name_and_phone"
	TKeyErrChangeArgs     = "err_name_old_new_phone"
	TKeyErrDateArgs       = "err_name_and_date"
	TKeyErrUserName       = "err_enter_user_name"
	TKeyErrContactMissing = "err_contact_not_found"  // Requires Name
	TKeyErrPhoneMissing   = "err_phone_not_found"    // Requires Phone
	TKeyErrBirthdayUnset  = "err_birthday_not_found" // Requires Name
	TKeyErrInvalidName    = "err_invalid_name"
	TKeyErrInvalidPhone   = "err_invalid_phone"
	TKeyErrInvalidDate    = "err_invalid_date"
	TKeyErrInvalidDays    = "err_invalid_days"
	TKeyErrUnexpected     = "err_unexpected"
	TKeyErrUnclosedQuote  = "err_unclosed_quote"
)

// -----------------------------------------------------------------------------
// Data Model & Formats
// -----------------------------------------------------------------------------

const (
	// DateLayoutBirthday is the DD.MM.YYYY layout used for birthdays and
	// congratulation dates.
	DateLayoutBirthday = "02.01.2006"

	// PhoneDigits is the exact length of a valid phone number.
	PhoneDigits = 10

	RecordFormat      = "Contact name: %s, phones: %s"
	RecordBirthdayFmt = ", birthday: %s"
	PhoneSeparator    = "; "
	PhoneListJoin     = ", "

	// Validation reasons shown to the user when no translation applies.
	ReasonName     = "Name must be a non-empty string."
	ReasonPhone    = "Phone number must contain exactly 10 digits."
	ReasonBirthday = "Invalid date format. Use DD.MM.YYYY"
)

// -----------------------------------------------------------------------------
// Storage
// -----------------------------------------------------------------------------

const (
	// SnapshotVersion is written to every saved file and checked on load.
	SnapshotVersion = 1

	ExtYAML     = ".yaml"
	ExtYML      = ".yml"
	TempPattern = ".contacts-*.tmp"
	JSONIndent  = "  "
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go Address Book//Birthdays//EN"
	ICalCalName = "Congratulations"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"

	// iCal/vCard Fields
	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardVersion = "4.0"
	TelURIPrefix = "tel:"

	// UIDNamespace seeds the SHA-1 name-based UUIDs of exported cards and events.
	UIDNamespace = "go-addressbook-v1"
	FormatUID    = "%s-%s"
	URNPrefix    = "urn:uuid:"

	// StubVCalendar is the minimal valid iCalendar object used when no events are found.
	StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ICalProdid + "\r\nEND:VCALENDAR\r\n"

	FallbackSummary = "Birthday: %s"
)

// -----------------------------------------------------------------------------
// Data Formats for vCard BDAY parsing
// -----------------------------------------------------------------------------

const (
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrLoadBook       = "failed to load address book"
	ErrSaveBook       = "failed to save address book"
	ErrDecodeSnapshot = "failed to decode contacts file"
	ErrEncodeSnapshot = "failed to encode contacts file"
	ErrSnapshotVer    = "unsupported contacts file version"
	ErrSnapshotRecord = "invalid record in contacts file"
	ErrDataPathEmpty  = "configuration error: contacts file path is empty"
	ErrHorizonRange   = "configuration error: horizon days must be between 0 and 366"
	ErrLanguage       = "configuration error: unsupported language"
	ErrReadSettings   = "failed to read settings"
	ErrVCardEncode    = "failed to encode vCard"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrDateParse      = "unable to parse date"
	ErrOpenFile       = "failed to open file"
	ErrCreateFile     = "failed to create file"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrConfigDir      = "could not determine user config dir"
	ErrCreateDir      = "could not create app directory"
	ErrAppFailed      = "application failed unexpectedly"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
	ErrReadInput      = "failed to read command input"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgSessionStart  = "Assistant session started"
	MsgSessionEnd    = "Assistant session ended"
	MsgCtxCancel     = "Context cancelled, ending session"
	MsgCommand       = "Command dispatched"
	MsgCommandFailed = "Command returned an error"
	MsgBookLoaded    = "Address book loaded"
	MsgBookSaved     = "Address book saved"
	MsgBookMissing   = "No contacts file yet, starting with an empty book"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgSkippedPhone  = "Skipping phone number that is not 10 digits"
	MsgSkippedName   = "Skipping card without a usable name"
	MsgImportDone    = "vCard import finished"
	MsgExportDone    = "Export finished"
	MsgGenSuccess    = "Calendar generation successful"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyCommand   = "command"
	LogKeyArgs      = "args"
	LogKeyCount     = "count"
	LogKeyName      = "name"
	LogKeyValue     = "value"
	LogKeyStats     = "stats"
	LogKeyTotal     = "total_cards"
	LogKeyImported  = "imported"
	LogKeyMerged    = "merged"
	LogKeySkipped   = "skipped"
	LogKeyHorizon   = "horizon_days"
	LogKeyFormat    = "format"
	LogKeyDuration  = "duration_ms"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyCommit  = "commit"
	LogKeyBuilt   = "build_date"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain      = "main"
	CompAssistant = "assistant"
	CompStorage   = "storage"
	CompExchange  = "exchange"
	CompI18n      = "i18n"
)
