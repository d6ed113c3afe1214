package stats

import "strconv"

// Record holds normalized epidemiological counters for a region at a
// point in time. Global records leave Country empty and carry
// AffectedCountries; country records carry the per-day and critical
// counters.
type Record struct {
	Country            string
	Cases              int64
	TodayCases         int64
	Deaths             int64
	TodayDeaths        int64
	Recovered          int64
	Active             int64
	Critical           int64
	Tests               int64
	TestsPerOneMillion  float64
	CasesPerOneMillion  float64
	DeathsPerOneMillion float64
	AffectedCountries   int64

	// Updated is the provider timestamp in epoch milliseconds.
	Updated int64
}

// UpdatedMillis returns the provider timestamp as a numeric string,
// the form the time formatter consumes.
func (r *Record) UpdatedMillis() string {
	return strconv.FormatInt(r.Updated, 10)
}

// Result is the tagged outcome of a fetch: exactly one of Record,
// Message, or Err is set. Message carries the provider's own
// "not found" text, which is surfaced to the user verbatim.
type Result struct {
	Record  *Record
	Message string
	Err     error
}

// Found reports whether the fetch produced a record.
func (r Result) Found() bool { return r.Record != nil }

// NotFound reports whether the provider signalled an unknown region.
func (r Result) NotFound() bool { return r.Record == nil && r.Message != "" }

// Failed reports whether the fetch failed transiently.
func (r Result) Failed() bool { return r.Err != nil }

func found(rec *Record) Result   { return Result{Record: rec} }
func notFound(msg string) Result { return Result{Message: msg} }
func transient(err error) Result { return Result{Err: err} }
