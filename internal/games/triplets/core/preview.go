package core

// DefaultReward is the score awarded per eliminated triple.
const DefaultReward = 10

// tailSize is the only window ever checked for a match.
const tailSize = 3

// Elimination describes one removed triple.
type Elimination struct {
	Tail   [tailSize]Symbol
	Anchor Symbol // First non-wildcard in the tail, Wildcard for an all-wildcard triple
}

// Preview is the queue of moved symbols together with the level score.
// Matching is eager: every Push re-checks the tail until it stops matching.
type Preview struct {
	queue  []Symbol
	score  int
	reward int
}

// NewPreview creates an empty preview awarding reward per elimination.
// A non-positive reward falls back to DefaultReward.
func NewPreview(reward int) *Preview {
	if reward <= 0 {
		reward = DefaultReward
	}
	return &Preview{reward: reward}
}

// Push appends s and eliminates trailing triples, cascading while the new
// tail still matches. Returns the eliminations in the order they happened.
func (p *Preview) Push(s Symbol) []Elimination {
	p.queue = append(p.queue, s)

	var out []Elimination
	for len(p.queue) >= tailSize {
		start := len(p.queue) - tailSize
		anchor, ok := tailMatch(p.queue[start:])
		if !ok {
			break
		}
		var e Elimination
		copy(e.Tail[:], p.queue[start:])
		e.Anchor = anchor
		p.queue = p.queue[:start]
		p.score += p.reward
		out = append(out, e)
	}
	return out
}

// tailMatch reports whether tail is a valid triple: all wildcards, or every
// entry equal to the first non-wildcard (the anchor) or a wildcard.
func tailMatch(tail []Symbol) (Symbol, bool) {
	anchor := Wildcard
	for _, s := range tail {
		if s != Wildcard {
			anchor = s
			break
		}
	}
	for _, s := range tail {
		if s != anchor && s != Wildcard {
			return None, false
		}
	}
	return anchor, true
}

// Items returns a copy of the queue, oldest first.
func (p *Preview) Items() []Symbol {
	return append([]Symbol(nil), p.queue...)
}

// Len returns the number of queued symbols.
func (p *Preview) Len() int { return len(p.queue) }

// IsEmpty returns true if nothing is queued.
func (p *Preview) IsEmpty() bool { return len(p.queue) == 0 }

// Score returns the accumulated score.
func (p *Preview) Score() int { return p.score }

// Reward returns the score per elimination.
func (p *Preview) Reward() int { return p.reward }

// restore replaces the queue and score wholesale.
func (p *Preview) restore(items []Symbol, score int) {
	p.queue = append([]Symbol(nil), items...)
	p.score = score
}
