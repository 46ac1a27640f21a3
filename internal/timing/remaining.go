package timing

import (
	"fmt"
	"time"

	"github.com/she110ff/metalcat-sub002/internal/models"
)

// Ended returns the terminal remaining-time text.
func Ended(locale models.Locale) string {
	if locale == models.LocaleEN {
		return "ended"
	}
	return "종료됨"
}

type remainder struct {
	days, hours, minutes int
}

// breakdown floors the time left to whole minutes. A positive remainder under
// a minute counts as one minute so that only ended auctions read as ended.
func breakdown(endTime, now time.Time) (remainder, bool) {
	left := endTime.Sub(now)
	if left <= 0 {
		return remainder{}, false
	}
	total := int(left / time.Minute)
	if total == 0 {
		total = 1
	}
	return remainder{
		days:    total / (24 * 60),
		hours:   total % (24 * 60) / 60,
		minutes: total % 60,
	}, true
}

// RemainingTime renders the time left until endTime, using the two largest units.
func RemainingTime(endTime, now time.Time, locale models.Locale) string {
	if endTime.IsZero() {
		return locale.Unknown()
	}
	r, ok := breakdown(endTime, now)
	if !ok {
		return Ended(locale)
	}

	if locale == models.LocaleEN {
		switch {
		case r.days > 0:
			return fmt.Sprintf("%s %s remaining", plural(r.days, "day"), plural(r.hours, "hour"))
		case r.hours > 0:
			return fmt.Sprintf("%s %s remaining", plural(r.hours, "hour"), plural(r.minutes, "minute"))
		default:
			return fmt.Sprintf("%s remaining", plural(r.minutes, "minute"))
		}
	}

	switch {
	case r.days > 0:
		return fmt.Sprintf("%d일 %d시간 남음", r.days, r.hours)
	case r.hours > 0:
		return fmt.Sprintf("%d시간 %d분 남음", r.hours, r.minutes)
	default:
		return fmt.Sprintf("%d분 남음", r.minutes)
	}
}

// CompactRemainingTime renders the time left with the largest unit only, for list rows.
func CompactRemainingTime(endTime, now time.Time, locale models.Locale) string {
	if endTime.IsZero() {
		return locale.Unknown()
	}
	r, ok := breakdown(endTime, now)
	if !ok {
		return Ended(locale)
	}

	en := locale == models.LocaleEN
	switch {
	case r.days > 0:
		if en {
			return fmt.Sprintf("%dd", r.days)
		}
		return fmt.Sprintf("%d일", r.days)
	case r.hours > 0:
		if en {
			return fmt.Sprintf("%dh", r.hours)
		}
		return fmt.Sprintf("%d시간", r.hours)
	default:
		if en {
			return fmt.Sprintf("%dm", r.minutes)
		}
		return fmt.Sprintf("%d분", r.minutes)
	}
}

// FormatDeadline renders the absolute end time in UTC.
func FormatDeadline(endTime time.Time, locale models.Locale) string {
	if endTime.IsZero() {
		return locale.Unknown()
	}
	if locale == models.LocaleEN {
		return "ends " + endTime.UTC().Format("2006-01-02 15:04") + " UTC"
	}
	return endTime.UTC().Format("2006.01.02 15:04") + " 마감"
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
