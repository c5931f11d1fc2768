// Package release decides which game releases are relevant and which of
// them is authoritative when a move is learnable in several.
package release

import (
	"math"
	"slices"
)

// LevelUp is the only move learn method kept in normalized records.
const LevelUp = "level-up"

// Unranked is the rank of a release that is not in the priority list.
const Unranked = math.MaxInt

// DefaultPriority lists the target releases, newest first.
var DefaultPriority = []string{
	"scarlet-violet",
	"legends-arceus",
	"brilliant-diamond-and-shining-pearl",
	"sword-shield",
}

// Policy ranks releases and filters them through an allow-list.
// A Policy is never modified after creation.
type Policy struct {
	priority []string
	rank     map[string]int
	allowed  map[string]struct{}
}

// New creates a Policy from an ordered priority list (first wins) and an
// allow-list. If a release repeats in the priority list, its first
// position is used.
func New(priority, allowed []string) Policy {
	res := Policy{
		priority: slices.Clone(priority),
		rank:     make(map[string]int, len(priority)),
		allowed:  make(map[string]struct{}, len(allowed)),
	}
	for i, v := range priority {
		if _, ok := res.rank[v]; !ok {
			res.rank[v] = i
		}
	}
	for _, v := range allowed {
		res.allowed[v] = struct{}{}
	}
	return res
}

// Default returns the policy for the current target releases.
func Default() Policy {
	return New(DefaultPriority, DefaultPriority)
}

// Rank returns the position of a release in the priority list, or
// Unranked.
func (p Policy) Rank(release string) int {
	if r, ok := p.rank[release]; ok {
		return r
	}
	return Unranked
}

// Allowed reports if a release is in the allow-list.
func (p Policy) Allowed(release string) bool {
	_, ok := p.allowed[release]
	return ok
}

// Priority returns a copy of the ordered priority list.
func (p Policy) Priority() []string {
	return slices.Clone(p.priority)
}

// Top returns the highest priority release, or an empty string.
func (p Policy) Top() string {
	if len(p.priority) == 0 {
		return ""
	}
	return p.priority[0]
}

// AllowedList returns allow-listed releases sorted by rank, then by name.
func (p Policy) AllowedList() []string {
	res := make([]string, 0, len(p.allowed))
	for k := range p.allowed {
		res = append(res, k)
	}
	slices.SortFunc(res, func(a, b string) int {
		ra, rb := p.Rank(a), p.Rank(b)
		switch {
		case ra < rb:
			return -1
		case ra > rb:
			return 1
		}
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	})
	return res
}
