// Package exchange converts an address book to and from the vCard and
// iCalendar interchange formats.
package exchange

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// ImportStats summarises a vCard import.
type ImportStats struct {
	Processed int // cards decoded
	Imported  int // new records
	Merged    int // cards folded into an existing record
	Skipped   int // malformed cards or cards without a usable name
}

// ExportVCard writes one vCard 4.0 per record, in collection order.
func ExportVCard(w io.Writer, book *addressbook.AddressBook) error {
	enc := vcard.NewEncoder(w)
	for _, r := range book.Records() {
		if err := enc.Encode(toCard(r)); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompExchange,
		config.LogKeyFormat, "vcard",
		config.LogKeyCount, book.Len(),
	)
	return nil
}

func toCard(r *addressbook.Record) vcard.Card {
	name := r.Name().String()

	card := make(vcard.Card)
	card.SetValue(vcard.FieldVersion, config.VCardVersion)
	card.SetValue(vcard.FieldUID, config.URNPrefix+contactUID(name).String())
	card.SetValue(vcard.FieldFormattedName, name)
	card.SetName(&vcard.Name{GivenName: name})

	for _, p := range r.Phones() {
		card.Add(vcard.FieldTelephone, &vcard.Field{
			Value:  p.String(),
			Params: vcard.Params{vcard.ParamType: {vcard.TypeCell}},
		})
	}
	if b, ok := r.Birthday(); ok {
		card.SetValue(vcard.FieldBirthday, b.Date().Format(config.DateFormatFullDash))
	}
	return card
}

// ImportVCard decodes every card from r into book.
//
// A card whose name is new becomes a record. A card matching an existing
// record adds its phones and, if the record has none yet, its birthday.
// Phones that do not reduce to ten digits and undated or unparsable
// birthdays are skipped with a debug log; malformed cards are skipped with a
// warning so one bad entry does not abort the import.
func ImportVCard(ctx context.Context, r io.Reader, book *addressbook.AddressBook) (ImportStats, error) {
	start := time.Now()
	log := slog.With(config.LogKeyComponent, config.CompExchange)

	var stats ImportStats
	dec := vcard.NewDecoder(r)
	for {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A broken line leaves the decoder out of sync; stop here.
			log.Warn(config.MsgSkippedCard, config.LogKeyError, err)
			stats.Skipped++
			break
		}
		stats.Processed++

		name := cardName(card)
		rec, exists := book.Find(name)
		if !exists {
			rec, err = addressbook.NewRecord(name)
			if err != nil {
				log.Debug(config.MsgSkippedName, config.LogKeyError, err)
				stats.Skipped++
				continue
			}
		}

		for _, tel := range card.Values(vcard.FieldTelephone) {
			number := phoneDigits(tel)
			if err := rec.AddPhone(number); err != nil {
				log.Debug(config.MsgSkippedPhone,
					config.LogKeyName, name,
					config.LogKeyValue, tel)
			}
		}

		if !rec.HasBirthday() {
			if bday := card.Value(vcard.FieldBirthday); bday != "" {
				if d, err := parseDate(bday); err == nil {
					// parseDate only returns real dates, so this cannot fail.
					_ = rec.SetBirthday(d.Format(config.DateLayoutBirthday))
				} else {
					log.Debug(config.MsgSkippedDate,
						config.LogKeyName, name,
						config.LogKeyValue, bday)
				}
			}
		}

		if exists {
			stats.Merged++
		} else {
			book.AddRecord(rec)
			stats.Imported++
		}
	}

	log.Info(config.MsgImportDone,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.Processed),
			slog.Int(config.LogKeyImported, stats.Imported),
			slog.Int(config.LogKeyMerged, stats.Merged),
			slog.Int(config.LogKeySkipped, stats.Skipped),
		),
		config.LogKeyDuration, time.Since(start).Milliseconds(),
	)
	return stats, nil
}

// cardName prefers FN (formatted name) over the structured N field.
func cardName(card vcard.Card) string {
	if fn := strings.TrimSpace(card.PreferredValue(vcard.FieldFormattedName)); fn != "" {
		return fn
	}
	if n := card.Name(); n != nil {
		parts := []string{n.HonorificPrefix, n.GivenName, n.AdditionalName, n.FamilyName, n.HonorificSuffix}
		return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
	}
	return ""
}

// phoneDigits strips a tel: URI prefix and every non-digit, so that
// "(050) 123-45-67" imports as 0501234567.
func phoneDigits(raw string) string {
	raw = strings.TrimPrefix(raw, config.TelURIPrefix)
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		if unicode.IsSpace(r) || strings.ContainsRune("()-./", r) {
			return -1
		}
		// Keep other runes so that values like "+38..." fail validation.
		return r
	}, raw)
}

// parseDate handles the dated vCard BDAY layouts. Truncated --MM-DD values
// carry no year and cannot become a birthday.
func parseDate(value string) (time.Time, error) {
	formats := []string{
		config.DateFormatFullDash,
		config.DateFormatFullBasic,
		config.DateFormatRFC3339,
		config.DateFormatFullT,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(config.ErrDateParse)
}
