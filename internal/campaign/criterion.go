package campaign

import "strings"

// SubKeySeparator joins a leaderboard key to the narrower keys under it.
const SubKeySeparator = "_"

// ComponentExact matches the points of a single component and nothing else.
func ComponentExact(componentID string) Criterion {
	return Criterion{Kind: MatchComponent, ComponentID: componentID}
}

// LeaderboardScope matches every component whose leaderboard key equals key,
// and with includeSubKeys also the keys starting with key + "_".
func LeaderboardScope(key string, includeSubKeys bool) Criterion {
	return Criterion{Kind: MatchLeaderboard, LeaderboardKey: key, IncludeSubKeys: includeSubKeys}
}

// Matches reports whether a points row scored for component c counts.
func (c Criterion) Matches(componentID, leaderboardKey string) bool {
	switch c.Kind {
	case MatchComponent:
		return componentID == c.ComponentID
	case MatchLeaderboard:
		return KeyInScope(leaderboardKey, c.LeaderboardKey, c.IncludeSubKeys)
	}
	return false
}

// KeyInScope reports whether key equals base, or is a sub-key of base when
// includeSubKeys is set.
func KeyInScope(key, base string, includeSubKeys bool) bool {
	if key == base {
		return true
	}
	return includeSubKeys && strings.HasPrefix(key, base+SubKeySeparator)
}

func (k CriterionKind) String() string {
	switch k {
	case MatchComponent:
		return "component"
	case MatchLeaderboard:
		return "leaderboard"
	}
	return "unknown"
}
