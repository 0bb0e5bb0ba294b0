package addressbook

import (
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

// DefaultHorizonDays is the look-ahead window used when the caller has no preference.
const DefaultHorizonDays = config.DefaultHorizonDays

const hoursPerDay = 24

// Congratulation names a contact and the day to congratulate them on.
type Congratulation struct {
	Name string
	Date time.Time
}

// FormattedDate renders Date as DD.MM.YYYY.
func (c Congratulation) FormattedDate() string {
	return c.Date.Format(config.DateLayoutBirthday)
}

// UpcomingBirthdays lists the contacts whose birthday falls between today and
// today+horizonDays, both ends included.
//
// A birthday that already passed this year is looked up in the next one. A
// date falling on a weekend is moved to the following Monday. Feb 29 in a
// non-leap year is observed on March 1. Results follow collection order.
func (b *AddressBook) UpcomingBirthdays(today time.Time, horizonDays int) []Congratulation {
	start := civilDate(today.Year(), today.Month(), today.Day())

	var out []Congratulation
	for _, r := range b.Records() {
		bday, ok := r.Birthday()
		if !ok {
			continue
		}

		candidate := NextOccurrence(start, bday)
		delta := daysBetween(start, candidate)
		if delta < 0 || delta > horizonDays {
			continue
		}

		out = append(out, Congratulation{
			Name: r.name.value,
			Date: AdjustForWeekend(candidate),
		})
	}
	return out
}

// NextOccurrence returns the birthday in today's year, or in the next year
// when it is already behind today. today is expected at midnight UTC.
func NextOccurrence(today time.Time, bday Birthday) time.Time {
	// time.Date normalizes Feb 29 to March 1 in non-leap years.
	candidate := civilDate(today.Year(), bday.Month(), bday.Day())
	if candidate.Before(today) {
		candidate = civilDate(today.Year()+1, bday.Month(), bday.Day())
	}
	return candidate
}

// AdjustForWeekend moves a Saturday or Sunday to the next Monday.
func AdjustForWeekend(d time.Time) time.Time {
	switch d.Weekday() {
	case time.Saturday, time.Sunday:
		return NextWeekday(d, time.Monday)
	default:
		return d
	}
}

// NextWeekday returns the first date strictly after start that falls on
// target. A start already on target yields the same weekday a week later.
func NextWeekday(start time.Time, target time.Weekday) time.Time {
	ahead := int(target) - int(start.Weekday())
	if ahead <= 0 {
		ahead += 7
	}
	return start.AddDate(0, 0, ahead)
}

func civilDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / hoursPerDay)
}
