package selector

import (
	"strings"

	"github.com/mauv0809/blast-campaigns/internal/campaign"
)

const ongoingStatus = "ongoing"

// DefaultEvent picks the configured event when it is a candidate, otherwise
// the candidate with the smallest id.
func DefaultEvent(events []campaign.Event, configured string) string {
	if len(events) == 0 {
		return ""
	}
	best := events[0].EventID
	for _, e := range events {
		if configured != "" && e.EventID == configured {
			return configured
		}
		if e.EventID < best {
			best = e.EventID
		}
	}
	return best
}

// DefaultSeason picks the first ongoing season. Without one it picks the
// latest year, breaking ties by the larger id. Seasons without any year fall
// back to the first candidate.
func DefaultSeason(seasons []campaign.Season) string {
	if len(seasons) == 0 {
		return ""
	}
	for _, s := range seasons {
		if s.Status != nil && strings.EqualFold(strings.TrimSpace(*s.Status), ongoingStatus) {
			return s.SeasonID
		}
	}

	var best *campaign.Season
	for i := range seasons {
		s := &seasons[i]
		if s.Year == nil {
			continue
		}
		if best == nil || *s.Year > *best.Year || (*s.Year == *best.Year && s.SeasonID > best.SeasonID) {
			best = s
		}
	}
	if best == nil {
		return seasons[0].SeasonID
	}
	return best.SeasonID
}

// DefaultDivision picks the lowest sort order, ties broken by key. Divisions
// without a sort order come last.
func DefaultDivision(divisions []campaign.Division) string {
	if len(divisions) == 0 {
		return ""
	}
	best := divisions[0]
	for _, d := range divisions[1:] {
		if divisionBefore(d, best) {
			best = d
		}
	}
	return best.DivisionKey
}

func divisionBefore(a, b campaign.Division) bool {
	switch {
	case a.SortOrder != nil && b.SortOrder == nil:
		return true
	case a.SortOrder == nil && b.SortOrder != nil:
		return false
	case a.SortOrder != nil && *a.SortOrder != *b.SortOrder:
		return *a.SortOrder < *b.SortOrder
	}
	return a.DivisionKey < b.DivisionKey
}

// DefaultRound picks the last round in display order, which is the most
// recent one. Rounds must already be ordered by sort order and id.
func DefaultRound(rounds []campaign.Component) string {
	if len(rounds) == 0 {
		return ""
	}
	return rounds[len(rounds)-1].ComponentID
}
