// Package resolver matches configured device names against live endpoint
// snapshots. Resolution is a pure function of its inputs and is safe to
// call concurrently.
package resolver

import (
	"github.com/sahilm/fuzzy"

	"soundswitch/internal/catalog"
)

// Mode selects how configured names are compared to endpoint names.
type Mode int

const (
	Exact Mode = iota
	Fuzzy
)

func (m Mode) String() string {
	if m == Fuzzy {
		return "fuzzy"
	}
	return "exact"
}

// Match is a resolved endpoint plus the score that won it. Under Exact
// mode the score is always 1.0.
type Match struct {
	Endpoint catalog.Endpoint
	Score    float64
}

// Scorer rates a candidate name against a configured name. Higher is
// better; ok reports whether the candidate matches at all. Any
// implementation must be deterministic for fixed inputs.
type Scorer func(configured, candidate string) (score float64, ok bool)

// DefaultScorer is subsequence fuzzy scoring (sahilm/fuzzy).
func DefaultScorer(configured, candidate string) (float64, bool) {
	matches := fuzzy.Find(configured, []string{candidate})
	if len(matches) == 0 {
		return 0, false
	}
	return float64(matches[0].Score), true
}

// Options tunes fuzzy resolution.
type Options struct {
	// Scorer overrides DefaultScorer when non-nil.
	Scorer Scorer
	// MinScore is the exclusive score floor under Fuzzy mode. The zero
	// value accepts any positive match.
	MinScore float64
}

// Resolve finds the best endpoint for a configured name using default
// options.
func Resolve(configured string, candidates []catalog.Endpoint, mode Mode) (Match, bool) {
	return ResolveWith(configured, candidates, mode, Options{})
}

// ResolveWith finds the best endpoint for a configured name.
//
// Exact mode compares whole names case-sensitively and returns the first
// equal candidate in catalog order. Fuzzy mode scores every candidate and
// returns the maximum; ties go to the earlier candidate.
func ResolveWith(configured string, candidates []catalog.Endpoint, mode Mode, opts Options) (Match, bool) {
	if mode == Exact {
		for _, ep := range candidates {
			if ep.FriendlyName == configured {
				return Match{Endpoint: ep, Score: 1.0}, true
			}
		}
		return Match{}, false
	}

	score := opts.Scorer
	if score == nil {
		score = DefaultScorer
	}

	var best Match
	found := false
	for _, ep := range candidates {
		s, ok := score(configured, ep.FriendlyName)
		if !ok || s <= opts.MinScore {
			continue
		}
		if !found || s > best.Score {
			best = Match{Endpoint: ep, Score: s}
			found = true
		}
	}
	return best, found
}
