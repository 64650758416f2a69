package services

import (
	"math"

	"github.com/applytrack/applytrack/internal/dtos"
	"github.com/applytrack/applytrack/internal/models"
)

// ComputeStatistics derives dashboard statistics from a snapshot of
// applications. It is pure: no I/O, no clock reads (only each record's
// DateApplied is consulted), and an empty snapshot yields all-zero stats
// with an empty distribution and timeline.
func ComputeStatistics(apps []models.Application) dtos.Statistics {
	stats := dtos.Statistics{
		Total:              len(apps),
		StatusDistribution: []dtos.StatusSlice{},
		Timeline:           []dtos.TimelineBucket{},
	}

	for _, app := range apps {
		switch app.Status {
		case models.StatusApplied:
			stats.Applied++
		case models.StatusInterview:
			stats.Interview++
		case models.StatusOffered:
			stats.Offer++
		case models.StatusRejected:
			stats.Rejected++
		case models.StatusIgnored:
			stats.Ignored++
		}
	}

	// A "response" is any employer reaction: interview, offer or rejection.
	// Applied and Ignored don't count.
	if stats.Total > 0 {
		stats.ResponseRate = roundPercent(stats.Interview+stats.Offer+stats.Rejected, stats.Total)
		stats.SuccessRate = roundPercent(stats.Offer, stats.Total)
	}

	// Fixed label order; zero counts are dropped entirely rather than
	// rendered as empty slices. Ignored is tracked above but never charted.
	for _, slice := range []dtos.StatusSlice{
		{Name: "Applied", Value: stats.Applied},
		{Name: "Interview", Value: stats.Interview},
		{Name: "Offer", Value: stats.Offer},
		{Name: "Rejected", Value: stats.Rejected},
	} {
		if slice.Value > 0 {
			stats.StatusDistribution = append(stats.StatusDistribution, slice)
		}
	}

	// Month buckets keep the first-seen order of the input list, exactly how
	// the dashboard built them. Deliberately not sorted chronologically.
	monthIndex := map[string]int{}
	for _, app := range apps {
		month := app.DateApplied.Format("Jan 2006")
		if i, ok := monthIndex[month]; ok {
			stats.Timeline[i].Applications++
			continue
		}
		monthIndex[month] = len(stats.Timeline)
		stats.Timeline = append(stats.Timeline, dtos.TimelineBucket{Month: month, Applications: 1})
	}

	return stats
}

// roundPercent rounds half-up to a whole percent for display.
func roundPercent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}
