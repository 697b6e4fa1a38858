package core

import (
	"sort"
	"strconv"
	"strings"
)

// SolveResult reports the outcome of a Solve call.
type SolveResult struct {
	Solved    bool
	Exhausted bool       // The budget ran out before the search finished
	Moves     []Position // Winning sequence from the state Solve was called on
	Nodes     int        // Expanded search nodes
}

// Solve searches for a move sequence that clears the current level.
// The search walks MoveTop and backtracks with Undo, so the session is left
// exactly as it was found. Notifications are suppressed while searching.
// budget caps the number of expanded nodes; budget <= 0 means unlimited.
func Solve(s *Session, budget int) SolveResult {
	if s.board == nil {
		return SolveResult{}
	}

	saved := s.notifier
	s.notifier = discardNotifier{}
	defer func() { s.notifier = saved }()

	sv := &solver{
		s:      s,
		budget: budget,
		dead:   make(map[string]struct{}),
	}
	ok := sv.search()
	res := SolveResult{Solved: ok, Nodes: sv.nodes}
	if !ok && sv.budget > 0 && sv.nodes >= sv.budget {
		res.Exhausted = true
	}
	if ok {
		res.Moves = append([]Position(nil), sv.path...)
	}
	return res
}

type solver struct {
	s      *Session
	budget int
	nodes  int
	path   []Position
	dead   map[string]struct{}
}

func (sv *solver) search() bool {
	switch sv.s.Status() {
	case StatusWon:
		return true
	case StatusStuck:
		return false
	}
	if sv.budget > 0 && sv.nodes >= sv.budget {
		return false
	}

	key := sv.key()
	if _, seen := sv.dead[key]; seen {
		return false
	}
	sv.nodes++

	for _, p := range sv.candidates() {
		if _, err := sv.s.MoveTop(p); err != nil {
			continue
		}
		sv.path = append(sv.path, p)
		if sv.search() {
			sv.s.Undo()
			return true
		}
		sv.path = sv.path[:len(sv.path)-1]
		sv.s.Undo()
		if sv.budget > 0 && sv.nodes >= sv.budget {
			return false
		}
	}

	sv.dead[key] = struct{}{}
	return false
}

// candidates orders non-empty positions so that tops extending the current
// tail group come first, then tops already waiting in the preview, then the
// rest. Equal-ranked positions keep board order.
func (sv *solver) candidates() []Position {
	preview := sv.s.preview.Items()
	var last Symbol
	if len(preview) > 0 {
		last = preview[len(preview)-1]
	}
	waiting := make(map[Symbol]bool, len(preview))
	for _, sym := range preview {
		waiting[sym] = true
	}

	rank := func(sym Symbol) int {
		switch {
		case last != None && (sym == last || sym == Wildcard || last == Wildcard):
			return 0
		case waiting[sym]:
			return 1
		default:
			return 2
		}
	}

	var out []Position
	for _, p := range sv.s.board.Positions() {
		if sv.s.board.TopAt(p) != None {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return rank(sv.s.board.TopAt(out[i])) < rank(sv.s.board.TopAt(out[j]))
	})
	return out
}

// key identifies a search state. Solve only pops tops and undoes; it never
// calls Shuffle, so stack contents below the tops are fixed and the heights
// plus the preview describe the state completely. A search that shuffles
// must key on the full stacks instead.
func (sv *solver) key() string {
	var b strings.Builder
	for _, h := range sv.s.board.Heights() {
		b.WriteString(strconv.Itoa(h))
		b.WriteByte(',')
	}
	b.WriteByte('|')
	for _, sym := range sv.s.preview.Items() {
		b.WriteString(strconv.Itoa(int(sym)))
		b.WriteByte(',')
	}
	return b.String()
}
