package feedback

import "time"

// Filter contains criteria for narrowing a record collection. All
// criteria are combined as a conjunction. An empty Ratings, Sentiments
// or Priorities slice matches everything: at the UI boundary an empty
// multi-select is indistinguishable from "no filter applied", so the
// engine is deliberately lenient rather than returning nothing.
type Filter struct {
	// Civil-date bounds, inclusive on both ends, compared in the
	// display timezone. Nil means unbounded on that side.
	DateFrom *time.Time
	DateTo   *time.Time

	Ratings    []int
	Sentiments []Sentiment
	Priorities []Priority
}

// NewFilter creates an empty filter that matches every record.
func NewFilter() *Filter {
	return &Filter{}
}

// WithDateRange sets inclusive civil-date bounds.
func (f *Filter) WithDateRange(from, to time.Time) *Filter {
	f.DateFrom = &from
	f.DateTo = &to
	return f
}

// WithLastDays bounds the filter to [now − days, now] computed against
// the display timezone's current time, not any record's own timezone.
func (f *Filter) WithLastDays(days int, now time.Time, loc *time.Location) *Filter {
	from := civilDate(now.In(loc).AddDate(0, 0, -days), loc)
	to := civilDate(now, loc)
	f.DateFrom = &from
	f.DateTo = &to
	return f
}

// WithRatings sets the acceptable rating set.
func (f *Filter) WithRatings(ratings ...int) *Filter {
	f.Ratings = ratings
	return f
}

// WithSentiments sets the acceptable sentiment set.
func (f *Filter) WithSentiments(sentiments ...Sentiment) *Filter {
	f.Sentiments = sentiments
	return f
}

// WithPriorities sets the acceptable priority set.
func (f *Filter) WithPriorities(priorities ...Priority) *Filter {
	f.Priorities = priorities
	return f
}

// Matches reports whether a single classified record satisfies every
// criterion.
func (f *Filter) Matches(r *Record, loc *time.Location) bool {
	if f.DateFrom != nil || f.DateTo != nil {
		date := r.Date(loc)
		if f.DateFrom != nil && date.Before(civilDate(*f.DateFrom, loc)) {
			return false
		}
		if f.DateTo != nil && date.After(civilDate(*f.DateTo, loc)) {
			return false
		}
	}
	if len(f.Ratings) > 0 && !containsInt(f.Ratings, r.Rating) {
		return false
	}
	if len(f.Sentiments) > 0 && !containsSentiment(f.Sentiments, r.Sentiment) {
		return false
	}
	if len(f.Priorities) > 0 && !containsPriority(f.Priorities, r.Priority) {
		return false
	}
	return true
}

// Apply returns the subset of records matching the filter, preserving
// order. Records must already be classified. Applying the same filter
// to its own output returns an equal collection.
func (f *Filter) Apply(records []Record, loc *time.Location) []Record {
	if f == nil {
		return records
	}
	out := make([]Record, 0, len(records))
	for i := range records {
		if f.Matches(&records[i], loc) {
			out = append(out, records[i])
		}
	}
	return out
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsSentiment(set []Sentiment, v Sentiment) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsPriority(set []Priority, v Priority) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
