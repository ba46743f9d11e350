// Package directory keeps the session's view of who is who: DM peers, known
// spaces, and one Snapshot per known conversation.
package directory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mqy/gchat/chat"
)

// UnknownName is the server's placeholder label for unnamed spaces.
const UnknownName = "Unknown"

// Snapshot is a copy of one conversation's state.
type Snapshot struct {
	ID      chat.ConversationID
	Name    string
	Members []chat.UserID
	// Watermark is the revision timestamp of the last applied event.
	Watermark int64
	// LastRead is the last read marker sent or received for self.
	LastRead int64
}

func (s *Snapshot) clone() *Snapshot {
	c := *s
	c.Members = append([]chat.UserID(nil), s.Members...)
	return &c
}

// Directory maps DM peers to their conversations and tracks known spaces.
// Every method is a single transaction.
type Directory struct {
	sync.RWMutex
	self            chat.UserID
	oneToOne        map[chat.UserID]chat.ConversationID
	oneToOneReverse map[chat.ConversationID]chat.UserID
	groups          map[chat.ConversationID]struct{}
	snapshots       map[chat.ConversationID]*Snapshot
}

func New() *Directory {
	d := &Directory{}
	d.reset()
	return d
}

func (d *Directory) reset() {
	d.self = ""
	d.oneToOne = make(map[chat.UserID]chat.ConversationID)
	d.oneToOneReverse = make(map[chat.ConversationID]chat.UserID)
	d.groups = make(map[chat.ConversationID]struct{})
	d.snapshots = make(map[chat.ConversationID]*Snapshot)
}

// Reset drops all session state.
func (d *Directory) Reset() {
	d.Lock()
	d.reset()
	d.Unlock()
}

func (d *Directory) SetSelf(u chat.UserID) {
	d.Lock()
	d.self = u
	d.Unlock()
}

func (d *Directory) Self() chat.UserID {
	d.RLock()
	defer d.RUnlock()
	return d.self
}

// ResolveDM returns the DM with user. It never creates one: on a miss the caller
// must create the conversation.
func (d *Directory) ResolveDM(user chat.UserID) (chat.ConversationID, bool) {
	d.RLock()
	defer d.RUnlock()
	conv, ok := d.oneToOne[user]
	return conv, ok
}

// PeerOf returns the other member of a known DM.
func (d *Directory) PeerOf(conv chat.ConversationID) (chat.UserID, bool) {
	d.RLock()
	defer d.RUnlock()
	u, ok := d.oneToOneReverse[conv]
	return u, ok
}

// RecordDM maps conv and user to each other. Any older pairing of either side is
// dropped; the server is the authority.
func (d *Directory) RecordDM(conv chat.ConversationID, user chat.UserID) {
	d.Lock()
	defer d.Unlock()

	if old, ok := d.oneToOneReverse[conv]; ok && old != user {
		delete(d.oneToOne, old)
	}
	if old, ok := d.oneToOne[user]; ok && old != conv {
		delete(d.oneToOneReverse, old)
		delete(d.snapshots, old)
	}
	d.oneToOne[user] = conv
	d.oneToOneReverse[conv] = user
	d.snapshot(conv)
}

func (d *Directory) RecordGroup(conv chat.ConversationID) {
	d.Lock()
	defer d.Unlock()
	d.groups[conv] = struct{}{}
	d.snapshot(conv)
}

// ForgetGroup removes a space. It returns false when conv was not a known space.
func (d *Directory) ForgetGroup(conv chat.ConversationID) bool {
	d.Lock()
	defer d.Unlock()
	if _, ok := d.groups[conv]; !ok {
		return false
	}
	delete(d.groups, conv)
	delete(d.snapshots, conv)
	return true
}

func (d *Directory) IsKnownGroup(conv chat.ConversationID) bool {
	d.RLock()
	defer d.RUnlock()
	_, ok := d.groups[conv]
	return ok
}

func (d *Directory) IsKnownDM(conv chat.ConversationID) bool {
	d.RLock()
	defer d.RUnlock()
	_, ok := d.oneToOneReverse[conv]
	return ok
}

// IsKnown reports whether conv is a known DM or space.
func (d *Directory) IsKnown(conv chat.ConversationID) bool {
	d.RLock()
	defer d.RUnlock()
	return d.known(conv)
}

func (d *Directory) known(conv chat.ConversationID) bool {
	if _, ok := d.groups[conv]; ok {
		return true
	}
	_, ok := d.oneToOneReverse[conv]
	return ok
}

// Archive removes conv from whichever map holds it. Unknown ids are ignored.
func (d *Directory) Archive(conv chat.ConversationID) {
	d.Lock()
	defer d.Unlock()

	if u, ok := d.oneToOneReverse[conv]; ok {
		delete(d.oneToOneReverse, conv)
		delete(d.oneToOne, u)
	}
	delete(d.groups, conv)
	delete(d.snapshots, conv)
}

// must hold the write lock. conv must be known or about to be.
func (d *Directory) snapshot(conv chat.ConversationID) *Snapshot {
	s, ok := d.snapshots[conv]
	if !ok {
		s = &Snapshot{ID: conv}
		d.snapshots[conv] = s
	}
	return s
}

// Snapshot returns a copy of conv's state.
func (d *Directory) Snapshot(conv chat.ConversationID) (*Snapshot, bool) {
	d.RLock()
	defer d.RUnlock()
	s, ok := d.snapshots[conv]
	if !ok {
		return nil, false
	}
	return s.clone(), true
}

// SetName assigns a display name. An empty name becomes UnknownName. A real
// name replaces UnknownName but is never replaced by it. It returns true when
// the stored name changed.
func (d *Directory) SetName(conv chat.ConversationID, name string) bool {
	d.Lock()
	defer d.Unlock()

	if !d.known(conv) {
		return false
	}
	if name == "" {
		name = UnknownName
	}
	s := d.snapshot(conv)
	if s.Name == name {
		return false
	}
	if name == UnknownName && s.Name != "" {
		return false
	}
	s.Name = name
	return true
}

// SetMembers replaces the member list, keeping the given order and dropping duplicates.
func (d *Directory) SetMembers(conv chat.ConversationID, members []chat.UserID) {
	d.Lock()
	defer d.Unlock()
	if !d.known(conv) {
		return
	}
	s := d.snapshot(conv)
	s.Members = s.Members[:0]
	seen := make(map[chat.UserID]struct{}, len(members))
	for _, m := range members {
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		s.Members = append(s.Members, m)
	}
}

func (d *Directory) AddMembers(conv chat.ConversationID, members []chat.UserID) {
	d.Lock()
	defer d.Unlock()
	if !d.known(conv) {
		return
	}
	s := d.snapshot(conv)
	for _, m := range members {
		if indexOf(s.Members, m) < 0 {
			s.Members = append(s.Members, m)
		}
	}
}

func (d *Directory) RemoveMembers(conv chat.ConversationID, members []chat.UserID) {
	d.Lock()
	defer d.Unlock()
	s, ok := d.snapshots[conv]
	if !ok {
		return
	}
	for _, m := range members {
		if i := indexOf(s.Members, m); i >= 0 {
			s.Members = append(s.Members[:i], s.Members[i+1:]...)
		}
	}
}

func indexOf(members []chat.UserID, u chat.UserID) int {
	for i, m := range members {
		if m == u {
			return i
		}
	}
	return -1
}

// Advance moves conv's watermark to ts. It returns false, leaving state
// untouched, when ts does not move the watermark forward or conv is unknown.
func (d *Directory) Advance(conv chat.ConversationID, ts int64) bool {
	d.Lock()
	defer d.Unlock()
	s, ok := d.snapshots[conv]
	if !ok || ts <= s.Watermark {
		return false
	}
	s.Watermark = ts
	return true
}

// MarkRead moves conv's last read marker to ts. It never moves it backwards.
func (d *Directory) MarkRead(conv chat.ConversationID, ts int64) bool {
	d.Lock()
	defer d.Unlock()
	s, ok := d.snapshots[conv]
	if !ok || ts <= s.LastRead {
		return false
	}
	s.LastRead = ts
	return true
}

// Peers returns all DM peers, sorted.
func (d *Directory) Peers() []chat.UserID {
	d.RLock()
	defer d.RUnlock()
	out := make([]chat.UserID, 0, len(d.oneToOne))
	for u := range d.oneToOne {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Groups returns copies of all known space snapshots, sorted by id.
func (d *Directory) Groups() []*Snapshot {
	d.RLock()
	defer d.RUnlock()
	out := make([]*Snapshot, 0, len(d.groups))
	for conv := range d.groups {
		out = append(out, d.snapshots[conv].clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.ID < out[j].ID.ID })
	return out
}

// CheckInvariants verifies the two DM maps are inverse of each other and every
// known conversation has a snapshot.
func (d *Directory) CheckInvariants() error {
	d.RLock()
	defer d.RUnlock()

	if len(d.oneToOne) != len(d.oneToOneReverse) {
		return fmt.Errorf("dm maps differ in size: %d != %d", len(d.oneToOne), len(d.oneToOneReverse))
	}
	for u, conv := range d.oneToOne {
		if d.oneToOneReverse[conv] != u {
			return fmt.Errorf("dm %s maps to %q, want %q", conv, d.oneToOneReverse[conv], u)
		}
		if _, ok := d.snapshots[conv]; !ok {
			return fmt.Errorf("dm %s has no snapshot", conv)
		}
	}
	for conv := range d.groups {
		if _, ok := d.oneToOneReverse[conv]; ok {
			return fmt.Errorf("%s is both dm and space", conv)
		}
		if _, ok := d.snapshots[conv]; !ok {
			return fmt.Errorf("space %s has no snapshot", conv)
		}
	}
	if n := len(d.oneToOneReverse) + len(d.groups); n != len(d.snapshots) {
		return fmt.Errorf("%d snapshots for %d conversations", len(d.snapshots), n)
	}
	return nil
}
