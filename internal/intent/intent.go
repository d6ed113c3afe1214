// Package intent classifies inbound message text against the bot's
// fixed command and keyword vocabulary.
package intent

import (
	"regexp"
	"strings"
)

// Kind discriminates the variant of a matched Intent.
type Kind int

// Supported intents.
const (
	None Kind = iota
	Start
	Help
	GlobalStats
	CountrySpecial
	CountryStats
	Greeting
	Gratitude
	Farewell
)

var kindNames = map[Kind]string{
	None:           "none",
	Start:          "start",
	Help:           "help",
	GlobalStats:    "global_stats",
	CountrySpecial: "country_special",
	CountryStats:   "country_stats",
	Greeting:       "greeting",
	Gratitude:      "gratitude",
	Farewell:       "farewell",
}

// String returns a stable lowercase name, used as a log field and
// metric label.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Intent is the classified purpose of an inbound message.
type Intent struct {
	Kind Kind

	// Country is the provider lookup key, set only for CountrySpecial
	// and CountryStats.
	Country string
}

// NeedsData reports whether handling the intent requires an upstream fetch.
func (i Intent) NeedsData() bool {
	switch i.Kind {
	case GlobalStats, CountrySpecial, CountryStats:
		return true
	}
	return false
}

// countryCommand matches a slash followed by ASCII letters only.
// Commands containing digits, punctuation, or non-ASCII letters fall
// through to the keyword scan, which then yields None because the text
// still starts with a slash. Long-standing behavior, kept as is.
var countryCommand = regexp.MustCompile(`^/[A-Za-z]+$`)

// koreaKey is the provider's canonical path segment for South Korea.
// The plain country-command rule can never produce it (dot and space),
// so the synonym set below routes every common spelling to it.
const koreaKey = "s. korea"

var koreaSynonyms = map[string]struct{}{
	"korea":       {},
	"south_korea": {},
	"skorea":      {},
	"kor":         {},
	"southkorea":  {},
}

var greetingWords = map[string]struct{}{
	"hello": {},
	"hi":    {},
	"hey":   {},
	"howdy": {},
	"yo":    {},
}

var gratitudeWords = map[string]struct{}{
	"thanks": {},
	"thank":  {},
	"thx":    {},
	"ty":     {},
	"cheers": {},
}

var farewellWords = map[string]struct{}{
	"bye":      {},
	"goodbye":  {},
	"cya":      {},
	"later":    {},
	"farewell": {},
}

// Match classifies text into an Intent. The caller must lowercase the
// text first. Rules are ordered; the first match wins. Match is a pure
// function of its input.
func Match(text string) Intent {
	switch text {
	case "/start":
		return Intent{Kind: Start}
	case "/help":
		return Intent{Kind: Help}
	case "/all":
		return Intent{Kind: GlobalStats}
	}

	if _, ok := koreaSynonyms[text]; ok {
		return Intent{Kind: CountrySpecial, Country: koreaKey}
	}

	if countryCommand.MatchString(text) {
		return Intent{Kind: CountryStats, Country: strings.ToLower(text[1:])}
	}

	// No command matched: scan tokens for conversational keywords.
	for _, token := range strings.Fields(text) {
		if _, ok := greetingWords[token]; ok {
			return Intent{Kind: Greeting}
		}
		if _, ok := gratitudeWords[token]; ok {
			return Intent{Kind: Gratitude}
		}
		if _, ok := farewellWords[token]; ok {
			return Intent{Kind: Farewell}
		}
	}

	return Intent{Kind: None}
}
