// Package weekly buckets commit records into Monday-aligned calendar weeks
// and derives per-week contributor metrics: commit-weighted mean author age,
// commit counts, and newcomer/leaver/active counts.
package weekly

import (
	"sort"
	"time"

	"github.com/gitcrew/gitcrew/schema"
)

// SmoothingWindow is the width, in buckets, of the triangular smoothing
// kernel applied to the age and commit-count series.
const SmoothingWindow = 30

const daysPerYear = 365

// BucketWeek snaps a timestamp to the Monday 00:00 UTC that starts its
// calendar week.
func BucketWeek(t time.Time) time.Time {
	t = t.UTC()
	// time.Weekday puts Sunday at 0; shift so Monday is 0.
	offset := (int(t.Weekday()) + 6) % 7
	y, m, d := t.AddDate(0, 0, -offset).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AuthorSpans computes each author's tenure window: the first and last
// bucketed week they committed in. The result is sorted by author name.
func AuthorSpans(table []schema.CommitRecord) []schema.AuthorSpan {
	type span struct{ first, last time.Time }
	byAuthor := make(map[string]*span)

	for _, rec := range table {
		bucket := BucketWeek(rec.Date)
		s, ok := byAuthor[rec.AuthorName]
		if !ok {
			byAuthor[rec.AuthorName] = &span{first: bucket, last: bucket}
			continue
		}
		if bucket.Before(s.first) {
			s.first = bucket
		}
		if bucket.After(s.last) {
			s.last = bucket
		}
	}

	spans := make([]schema.AuthorSpan, 0, len(byAuthor))
	for name, s := range byAuthor {
		spans = append(spans, schema.AuthorSpan{Author: name, Arrival: s.first, Departure: s.last})
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].Author < spans[j].Author })
	return spans
}

// Aggregate rolls the commit table up into one row per bucketed week,
// ordered by week ascending. Weeks with no commits are absent.
//
// An author counts as a newcomer in their arrival week. They stay active
// through their last-commit week and count as a leaver in the next present
// bucket after it, so the active count still includes them in the week of
// their final commit.
func Aggregate(table []schema.CommitRecord) []schema.WeeklyStat {
	if len(table) == 0 {
		return nil
	}

	spans := AuthorSpans(table)
	arrival := make(map[string]time.Time, len(spans))
	for _, s := range spans {
		arrival[s.Author] = s.Arrival
	}

	type acc struct {
		sumAge float64
		count  int
	}
	buckets := make(map[time.Time]*acc)
	for _, rec := range table {
		bucket := BucketWeek(rec.Date)
		a, ok := buckets[bucket]
		if !ok {
			a = &acc{}
			buckets[bucket] = a
		}
		age := bucket.Sub(arrival[rec.AuthorName]).Hours() / 24 / daysPerYear
		a.sumAge += age
		a.count++
	}

	weeks := make([]time.Time, 0, len(buckets))
	for w := range buckets {
		weeks = append(weeks, w)
	}
	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Before(weeks[j]) })

	newcomers := make(map[time.Time]int)
	departures := make(map[time.Time]int)
	for _, s := range spans {
		newcomers[s.Arrival]++
		departures[s.Departure]++
	}

	stats := make([]schema.WeeklyStat, len(weeks))
	active := 0
	for i, w := range weeks {
		a := buckets[w]

		// Authors whose last commit fell in the previous present bucket
		// are counted as leaving now.
		leaving := 0
		if i > 0 {
			leaving = departures[weeks[i-1]]
		}
		active += newcomers[w] - leaving

		stats[i] = schema.WeeklyStat{
			Week:            w,
			CommitAuthorAge: a.sumAge / float64(a.count),
			CommitCount:     a.count,
			NewcomersCount:  newcomers[w],
			LeavingCount:    leaving,
			ActiveCount:     active,
		}
	}

	ages := make([]float64, len(stats))
	counts := make([]float64, len(stats))
	for i, s := range stats {
		ages[i] = s.CommitAuthorAge
		counts[i] = float64(s.CommitCount)
	}
	smoothAges := TriangularSmooth(ages, SmoothingWindow)
	smoothCounts := TriangularSmooth(counts, SmoothingWindow)
	for i := range stats {
		stats[i].CommitAuthorAgeSmooth = smoothAges[i]
		stats[i].CommitCountSmooth = smoothCounts[i]
	}

	return stats
}
