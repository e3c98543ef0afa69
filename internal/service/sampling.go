package service

import (
	"time"

	"github.com/investdash/investment-dashboard-backend/internal/apperrors"
	"github.com/investdash/investment-dashboard-backend/internal/model"
)

// Period selects the lookback window and sampling policy for the historical
// performance curve.
type Period string

// Supported performance periods.
const (
	Period1M  Period = "1M"
	Period3M  Period = "3M"
	Period6M  Period = "6M"
	Period1Y  Period = "1Y"
	Period3Y  Period = "3Y"
	PeriodMax Period = "MAX"
)

// ParsePeriod validates a period string from a request.
// An empty string defaults to 1M, matching the dashboard's default view.
func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return Period1M, nil
	}
	p := Period(s)
	switch p {
	case Period1M, Period3M, Period6M, Period1Y, Period3Y, PeriodMax:
		return p, nil
	}
	return "", apperrors.ErrInvalidPeriod
}

type granularity int

const (
	granularityDaily granularity = iota
	granularityWeekly
	granularityMonthly
)

// samplingPolicy describes how a period's observations are reduced to a
// bounded chart series: either index-based decimation of daily points, or
// bucket-averaging into weeks/months optionally followed by bucket decimation.
type samplingPolicy struct {
	windowDays  int
	granularity granularity
	decimation  int // keep every Nth element; 1 keeps all
}

// policyForPeriod maps a period to its window and sampling policy.
func policyForPeriod(period Period) (samplingPolicy, error) {
	switch period {
	case Period1M:
		return samplingPolicy{windowDays: 30, granularity: granularityDaily, decimation: 1}, nil
	case Period3M:
		return samplingPolicy{windowDays: 90, granularity: granularityDaily, decimation: 2}, nil
	case Period6M:
		return samplingPolicy{windowDays: 180, granularity: granularityDaily, decimation: 3}, nil
	case Period1Y:
		return samplingPolicy{windowDays: 365, granularity: granularityWeekly, decimation: 1}, nil
	case Period3Y:
		return samplingPolicy{windowDays: 1095, granularity: granularityWeekly, decimation: 2}, nil
	case PeriodMax:
		return samplingPolicy{windowDays: 3650, granularity: granularityMonthly, decimation: 1}, nil
	}
	return samplingPolicy{}, apperrors.ErrInvalidPeriod
}

// observation is one materialized (date, portfolio value) pair.
// Both sampling strategies operate uniformly over a slice of these.
type observation struct {
	date  time.Time
	value float64
}

// samplePoints reduces date-ordered observations to chart points according to
// the policy. Daily granularity keeps every Nth observation by index over the
// distinct observed dates (not calendar-uniform: gaps in the NAV history shift
// which dates survive, which matches the source data's existing outputs).
// Weekly/monthly granularity averages the per-day values within each bucket,
// labels the bucket by its start date, and then applies bucket-index
// decimation.
func samplePoints(observations []observation, policy samplingPolicy) []model.PerformancePoint {
	if policy.granularity != granularityDaily {
		observations = bucketAverage(observations, policy.granularity)
	}
	observations = decimate(observations, policy.decimation)

	points := make([]model.PerformancePoint, len(observations))
	for i, obs := range observations {
		points[i] = model.PerformancePoint{
			Date:  obs.date.Format("02 Jan"),
			Value: round(obs.value),
		}
	}
	return points
}

// decimate keeps every Nth element of an ordered slice: index i survives when
// i mod factor == 0. A factor of 1 or less keeps everything.
func decimate(observations []observation, factor int) []observation {
	if factor <= 1 {
		return observations
	}
	kept := make([]observation, 0, (len(observations)+factor-1)/factor)
	for i, obs := range observations {
		if i%factor == 0 {
			kept = append(kept, obs)
		}
	}
	return kept
}

// bucketAverage groups date-ordered observations into calendar weeks or
// months and replaces each bucket with the average of its per-day values,
// dated at the bucket start.
func bucketAverage(observations []observation, g granularity) []observation {
	type bucket struct {
		sum   float64
		count int
	}

	starts := []time.Time{}
	buckets := map[time.Time]*bucket{}

	for _, obs := range observations {
		start := monthStart(obs.date)
		if g == granularityWeekly {
			start = weekStart(obs.date)
		}
		b, ok := buckets[start]
		if !ok {
			b = &bucket{}
			buckets[start] = b
			starts = append(starts, start)
		}
		b.sum += obs.value
		b.count++
	}

	averaged := make([]observation, len(starts))
	for i, start := range starts {
		b := buckets[start]
		averaged[i] = observation{date: start, value: b.sum / float64(b.count)}
	}
	return averaged
}

// weekStart truncates a date to the Monday of its ISO week.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return truncateDay(t).AddDate(0, 0, -offset)
}

// monthStart truncates a date to the first of its month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// truncateDay drops the time-of-day component in UTC.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
