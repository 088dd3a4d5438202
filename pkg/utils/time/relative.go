package time

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// frenchMagnitudes follows the wording of date-fns' French locale.
// The first %s receives "il y a" for past times and "dans" for future ones.
var frenchMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Minute, Format: "%s moins d'une minute", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "%s 1 minute", DivBy: 1},
	{D: time.Hour, Format: "%s %d minutes", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "%s environ 1 heure", DivBy: 1},
	{D: humanize.Day, Format: "%s environ %d heures", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "%s 1 jour", DivBy: 1},
	{D: humanize.Month, Format: "%s %d jours", DivBy: humanize.Day},
	{D: 2 * humanize.Month, Format: "%s environ 1 mois", DivBy: 1},
	{D: humanize.Year, Format: "%s %d mois", DivBy: humanize.Month},
	{D: 2 * humanize.Year, Format: "%s plus d'un an", DivBy: 1},
	{D: math.MaxInt64, Format: "%s %d ans", DivBy: humanize.Year},
}

// FrenchAge formats the distance between then and now in French,
// for example "il y a 2 jours"
func FrenchAge(then, now time.Time) string {
	return humanize.CustomRelTime(then, now, "il y a", "dans", frenchMagnitudes)
}
