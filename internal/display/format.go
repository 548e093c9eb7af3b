package display

import (
	"strconv"
	"time"

	"github.com/riskibarqy/hockey-league/internal/domain/match"
)

var monthsGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

const (
	dateUnknown  = "Дата уточняется"
	scoreMissing = "–"
)

// FormatMatchDate renders a kick-off time in the long Russian form,
// e.g. "15 января 2025 г., 19:30".
func FormatMatchDate(ts match.Timestamp, loc *time.Location) string {
	if ts.IsZero() {
		return dateUnknown
	}
	t := ts.In(loc)
	return strconv.Itoa(t.Day()) + " " + monthsGenitive[t.Month()-1] + " " +
		strconv.Itoa(t.Year()) + " г., " + t.Format("15:04")
}

// FormatShortDate is the compact dd.mm.yyyy form used in admin lists.
func FormatShortDate(ts match.Timestamp, loc *time.Location) string {
	if ts.IsZero() {
		return dateUnknown
	}
	return ts.In(loc).Format("02.01.2006")
}

func FormatScore(score *int) string {
	if score == nil {
		return scoreMissing
	}
	return strconv.Itoa(*score)
}

func StatusLabel(status match.Status) string {
	switch status {
	case match.StatusFinished:
		return "Завершен"
	case match.StatusScheduled:
		return "Запланирован"
	default:
		return string(status)
	}
}
