package feedback

import (
	"sort"
	"time"
)

// RatingBucket is one row of the rating distribution.
type RatingBucket struct {
	Rating int   `json:"rating"`
	Count  int64 `json:"count"`
}

// SentimentBucket is one row of the sentiment distribution.
type SentimentBucket struct {
	Sentiment Sentiment `json:"sentiment"`
	Count     int64     `json:"count"`
}

// TrendPoint is the per-day rollup used for trend visualization.
type TrendPoint struct {
	Date       time.Time `json:"date"`
	MeanRating float64   `json:"mean_rating"`
	Count      int64     `json:"count"`
}

// Summary holds the descriptive statistics for a (filtered) record
// collection. MeanRating and PositivePercentage are nil when the
// collection is empty: division by zero is reported as N/A, never
// computed.
type Summary struct {
	Count              int64             `json:"count"`
	MeanRating         *float64          `json:"mean_rating"`
	PositivePercentage *float64          `json:"positive_percentage"`
	UrgentCount        int64             `json:"urgent_count"`
	TodayCount         int64             `json:"today_count"`
	WeekCount          int64             `json:"week_count"`
	RatingDistribution []RatingBucket    `json:"rating_distribution"`
	SentimentCounts    []SentimentBucket `json:"sentiment_distribution"`
	DailyTrend         []TrendPoint      `json:"daily_trend,omitempty"`
}

// Summarize recomputes every aggregate from scratch over the given
// records. Records must already be classified. now anchors the "today"
// and "this week" windows and is interpreted in loc, the display
// timezone.
func Summarize(records []Record, now time.Time, loc *time.Location) Summary {
	summary := Summary{
		Count:              int64(len(records)),
		RatingDistribution: make([]RatingBucket, 0, MaxRating),
	}

	ratingCounts := make(map[int]int64, MaxRating)
	sentimentCounts := make(map[Sentiment]int64, len(Sentiments))
	type dayAgg struct {
		sum   int64
		count int64
	}
	days := make(map[time.Time]*dayAgg)

	today := civilDate(now, loc)
	weekStart := civilDate(now.In(loc).AddDate(0, 0, -7), loc)

	var ratingSum int64
	for i := range records {
		r := &records[i]
		ratingSum += int64(r.Rating)
		ratingCounts[r.Rating]++
		sentimentCounts[r.Sentiment]++

		date := r.Date(loc)
		if date.Equal(today) {
			summary.TodayCount++
		}
		if !date.Before(weekStart) {
			summary.WeekCount++
		}

		agg, ok := days[date]
		if !ok {
			agg = &dayAgg{}
			days[date] = agg
		}
		agg.sum += int64(r.Rating)
		agg.count++
	}

	if summary.Count > 0 {
		mean := float64(ratingSum) / float64(summary.Count)
		summary.MeanRating = &mean

		positive := float64(sentimentCounts[SentimentPositive]) / float64(summary.Count) * 100
		summary.PositivePercentage = &positive
	}
	summary.UrgentCount = sentimentCounts[SentimentNegative]

	// Exactly MaxRating buckets, zero-filled, ascending.
	for rating := MinRating; rating <= MaxRating; rating++ {
		summary.RatingDistribution = append(summary.RatingDistribution, RatingBucket{
			Rating: rating,
			Count:  ratingCounts[rating],
		})
	}

	for _, sentiment := range Sentiments {
		summary.SentimentCounts = append(summary.SentimentCounts, SentimentBucket{
			Sentiment: sentiment,
			Count:     sentimentCounts[sentiment],
		})
	}

	// A trend needs at least two distinct dates to be meaningful.
	if len(days) >= 2 {
		summary.DailyTrend = make([]TrendPoint, 0, len(days))
		for date, agg := range days {
			summary.DailyTrend = append(summary.DailyTrend, TrendPoint{
				Date:       date,
				MeanRating: float64(agg.sum) / float64(agg.count),
				Count:      agg.count,
			})
		}
		sort.Slice(summary.DailyTrend, func(i, j int) bool {
			return summary.DailyTrend[i].Date.Before(summary.DailyTrend[j].Date)
		})
	}

	return summary
}
