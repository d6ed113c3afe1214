// Package reply builds outbound message text from a matched intent and
// optionally fetched statistics.
package reply

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/johann95ko/covid19-telegram-bot/internal/intent"
	"github.com/johann95ko/covid19-telegram-bot/internal/stats"
	"github.com/johann95ko/covid19-telegram-bot/internal/timefmt"
)

const helpText = "Type /AnyCountryName into the chat to get COVID-19 information " +
	"on that country (e.g. /Singapore, /singapore or /sg), or type /all to get global statistics."

const apologyText = "Sorry, I couldn't reach the statistics service just now. Please try again in a moment."

// Response lists for conversational keywords. %s is the sender's first name.
var (
	greetingReplies = []string{
		"Hello %s!",
		"Hi %s, how are you doing?",
		"Hey %s! Type /help to see what I can do.",
	}
	gratitudeReplies = []string{
		"You're welcome, %s!",
		"Anytime, %s!",
		"Glad to help, %s.",
	}
	farewellReplies = []string{
		"Bye %s, stay safe!",
		"Take care, %s!",
		"See you around, %s.",
	}
)

// Picker selects an index in [0, n). The default is uniform random;
// tests inject a fixed picker.
type Picker func(n int) int

// Composer renders fixed templates per intent.
type Composer struct {
	loc  *time.Location
	pick Picker
}

// NewComposer creates a Composer rendering timestamps in loc.
// A nil pick defaults to a uniform random choice.
func NewComposer(loc *time.Location, pick Picker) *Composer {
	if pick == nil {
		pick = rand.Intn
	}
	return &Composer{loc: loc, pick: pick}
}

// Compose returns the outbound text for a matched intent. The second
// return is false when no reply should be sent. For data-bearing
// intents res carries the fetch outcome; a NotFound result renders the
// provider's message verbatim and a Failed result renders a generic
// apology.
func (c *Composer) Compose(it intent.Intent, res stats.Result, firstName string) (string, bool) {
	switch it.Kind {
	case intent.Start:
		return fmt.Sprintf("Hey %s, let's get started!\n\n%s", firstName, helpText), true

	case intent.Help:
		return helpText, true

	case intent.GlobalStats:
		if text, done := c.composeDataFailure(res); done {
			return text, true
		}
		return c.composeGlobal(res.Record, firstName), true

	case intent.CountrySpecial, intent.CountryStats:
		if text, done := c.composeDataFailure(res); done {
			return text, true
		}
		return c.composeCountry(res.Record, firstName), true

	case intent.Greeting:
		return c.pickReply(greetingReplies, firstName), true

	case intent.Gratitude:
		return c.pickReply(gratitudeReplies, firstName), true

	case intent.Farewell:
		return c.pickReply(farewellReplies, firstName), true
	}

	return "", false
}

// composeDataFailure handles the NotFound and Failed arms of a fetch result.
func (c *Composer) composeDataFailure(res stats.Result) (string, bool) {
	if res.NotFound() {
		return res.Message, true
	}
	if res.Failed() {
		return apologyText, true
	}
	return "", false
}

func (c *Composer) composeGlobal(rec *stats.Record, firstName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hey %s!\n\n", firstName)
	fmt.Fprintf(&b, "There are %s cases globally across %s countries, with %s new case(s) reported today.\n\n",
		humanize.Comma(rec.Cases), humanize.Comma(rec.AffectedCountries), humanize.Comma(rec.TodayCases))
	fmt.Fprintf(&b, "Active cases: %s\n", humanize.Comma(rec.Active))
	fmt.Fprintf(&b, "Recovered: %s\n", humanize.Comma(rec.Recovered))
	fmt.Fprintf(&b, "Critical: %s\n", humanize.Comma(rec.Critical))
	fmt.Fprintf(&b, "Deaths today: %s\n", humanize.Comma(rec.TodayDeaths))
	fmt.Fprintf(&b, "Total deaths: %s\n", humanize.Comma(rec.Deaths))
	fmt.Fprintf(&b, "Tests: %s (%s per million)\n", humanize.Comma(rec.Tests), commaf(rec.TestsPerOneMillion))
	fmt.Fprintf(&b, "Cases per million: %s\n", commaf(rec.CasesPerOneMillion))
	fmt.Fprintf(&b, "Deaths per million: %s\n", commaf(rec.DeathsPerOneMillion))
	b.WriteString("\n\nLast updated " + c.formatUpdated(rec))
	return b.String()
}

func (c *Composer) composeCountry(rec *stats.Record, firstName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s!\n\n", firstName)
	fmt.Fprintf(&b, "%s has a total of %s case(s), with %s new case(s) reported today.\n\n",
		rec.Country, humanize.Comma(rec.Cases), humanize.Comma(rec.TodayCases))
	fmt.Fprintf(&b, "Active cases: %s\n", humanize.Comma(rec.Active))
	fmt.Fprintf(&b, "Deaths today: %s\n", humanize.Comma(rec.TodayDeaths))
	fmt.Fprintf(&b, "Total deaths: %s\n", humanize.Comma(rec.Deaths))
	fmt.Fprintf(&b, "Critical: %s\n", humanize.Comma(rec.Critical))
	fmt.Fprintf(&b, "Recovered: %s\n", humanize.Comma(rec.Recovered))
	fmt.Fprintf(&b, "Tests: %s\n", humanize.Comma(rec.Tests))
	b.WriteString("\n\nLast updated " + c.formatUpdated(rec))
	return b.String()
}

func (c *Composer) pickReply(replies []string, firstName string) string {
	return fmt.Sprintf(replies[c.pick(len(replies))], firstName)
}

// formatUpdated falls back to the raw millisecond value if the record
// timestamp is somehow unparseable.
func (c *Composer) formatUpdated(rec *stats.Record) string {
	formatted, err := timefmt.Format(rec.UpdatedMillis(), c.loc)
	if err != nil {
		return rec.UpdatedMillis()
	}
	return formatted
}

func commaf(v float64) string {
	return humanize.CommafWithDigits(v, 2)
}
