package gestures

import "sync"

// ArenaMember competes for a pointer in a GestureArena.
type ArenaMember interface {
	AcceptGesture(pointer int64)
	RejectGesture(pointer int64)
}

// GestureArena decides which recognizer owns a pointer sequence when
// several recognizers see the same pointer.
//
// Members join while the pointer-down event is dispatched. Close is called
// once dispatch finishes; an arena with a single member resolves
// immediately. Sweep is called after pointer-up and awards the pointer to
// the first remaining member, which is the deepest hit-test target.
type GestureArena struct {
	mu     sync.Mutex
	arenas map[int64]*arena
}

type arena struct {
	members  []ArenaMember
	open     bool
	resolved bool
}

// DefaultArena is the arena used by recognizers created without one.
var DefaultArena = NewGestureArena()

// NewGestureArena creates an empty arena.
func NewGestureArena() *GestureArena {
	return &GestureArena{arenas: make(map[int64]*arena)}
}

// Add enters member into the arena for pointer.
func (a *GestureArena) Add(pointer int64, member ArenaMember) {
	a.mu.Lock()
	defer a.mu.Unlock()
	entry := a.arenas[pointer]
	if entry == nil {
		entry = &arena{open: true}
		a.arenas[pointer] = entry
	}
	if entry.resolved {
		return
	}
	entry.members = append(entry.members, member)
}

// Close stops new members from joining and resolves single-member arenas.
func (a *GestureArena) Close(pointer int64) {
	a.mu.Lock()
	entry := a.arenas[pointer]
	if entry == nil {
		a.mu.Unlock()
		return
	}
	entry.open = false
	var winner ArenaMember
	if !entry.resolved && len(entry.members) == 1 {
		winner = entry.members[0]
		entry.resolved = true
	}
	a.mu.Unlock()

	if winner != nil {
		winner.AcceptGesture(pointer)
	}
}

// Sweep awards the pointer to the first member still competing and rejects
// the rest, then forgets the pointer.
func (a *GestureArena) Sweep(pointer int64) {
	a.mu.Lock()
	entry := a.arenas[pointer]
	delete(a.arenas, pointer)
	a.mu.Unlock()

	if entry == nil || entry.resolved || len(entry.members) == 0 {
		return
	}
	entry.members[0].AcceptGesture(pointer)
	for _, member := range entry.members[1:] {
		member.RejectGesture(pointer)
	}
}

// Resolve lets a member give up (accepted false) or claim (accepted true)
// the pointer before the sweep.
func (a *GestureArena) Resolve(pointer int64, member ArenaMember, accepted bool) {
	a.mu.Lock()
	entry := a.arenas[pointer]
	if entry == nil || entry.resolved {
		a.mu.Unlock()
		return
	}
	var losers []ArenaMember
	if accepted {
		entry.resolved = true
		for _, m := range entry.members {
			if m != member {
				losers = append(losers, m)
			}
		}
	} else {
		for i, m := range entry.members {
			if m == member {
				entry.members = append(entry.members[:i], entry.members[i+1:]...)
				break
			}
		}
	}
	var winner ArenaMember
	if !accepted && !entry.open && len(entry.members) == 1 {
		winner = entry.members[0]
		entry.resolved = true
	}
	a.mu.Unlock()

	if accepted {
		member.AcceptGesture(pointer)
		for _, loser := range losers {
			loser.RejectGesture(pointer)
		}
		return
	}
	member.RejectGesture(pointer)
	if winner != nil {
		winner.AcceptGesture(pointer)
	}
}
