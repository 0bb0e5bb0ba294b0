package exchange

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-addressbook/internal/addressbook"
	"github.com/tartampluch/go-addressbook/internal/config"
)

// CalendarExporter renders upcoming congratulation dates as an iCalendar feed.
type CalendarExporter struct {
	Clock addressbook.Clock

	// FormatSummary allows the caller to inject localized event titles.
	FormatSummary func(name string) string
}

// Export writes one all-day event per congratulation within horizonDays and
// returns how many events were written. An empty result still produces a
// valid VCALENDAR so calendar clients do not flag the file as broken.
func (c *CalendarExporter) Export(w io.Writer, book *addressbook.AddressBook, horizonDays int) (int, error) {
	now := c.Clock.Now()
	upcoming := book.UpcomingBirthdays(now, horizonDays)

	if len(upcoming) == 0 {
		if _, err := io.WriteString(w, config.StubVCalendar); err != nil {
			return 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
		}
		c.logSuccess(0, horizonDays)
		return 0, nil
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	// SetText would tag the extension property with VALUE=TEXT.
	calName := ical.NewProp(config.PropXWRCalName)
	calName.Value = config.ICalCalName
	cal.Props.Set(calName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(now.UTC())

	for _, u := range upcoming {
		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID,
			contactUID(u.Name).String(), u.Date.Format(config.DateFormatFullBasic)))

		summary := fmt.Sprintf(config.FallbackSummary, u.Name)
		if c.FormatSummary != nil {
			summary = c.FormatSummary(u.Name)
		}
		event.Props.SetText(config.PropSummary, summary)

		dtStart := ical.NewProp(config.PropDTStart)
		dtStart.SetDate(u.Date)
		event.Props.Set(dtStart)
		event.Props.Set(dtStamp)

		cal.Children = append(cal.Children, event.Component)
	}

	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		return 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	c.logSuccess(len(upcoming), horizonDays)
	return len(upcoming), nil
}

func (c *CalendarExporter) logSuccess(events, horizonDays int) {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompExchange,
		config.LogKeyCount, events,
		config.LogKeyHorizon, horizonDays,
	)
}
