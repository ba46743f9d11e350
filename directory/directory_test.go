package directory

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqy/gchat/chat"
)

func TestRecordDMLockstep(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	d := New()

	for i := 0; i < 5000; i++ {
		conv := chat.DM(fmt.Sprintf("c%d", r.Intn(20)))
		user := chat.UserID(fmt.Sprintf("%d", r.Intn(20)))
		switch r.Intn(4) {
		case 0:
			d.Archive(conv)
		default:
			d.RecordDM(conv, user)
		}

		require.NoError(t, d.CheckInvariants(), "step %d", i)
		for _, u := range d.Peers() {
			c, ok := d.ResolveDM(u)
			require.True(t, ok)
			back, ok := d.PeerOf(c)
			require.True(t, ok)
			require.Equal(t, u, back)
		}
	}
}

func TestRecordDMLastWriteWins(t *testing.T) {
	d := New()
	d.RecordDM(chat.DM("c1"), "1")
	d.RecordDM(chat.DM("c1"), "2")

	_, ok := d.ResolveDM("1")
	assert.False(t, ok)
	c, ok := d.ResolveDM("2")
	assert.True(t, ok)
	assert.Equal(t, chat.DM("c1"), c)

	d.RecordDM(chat.DM("c2"), "2")
	assert.False(t, d.IsKnownDM(chat.DM("c1")))
	assert.True(t, d.IsKnownDM(chat.DM("c2")))
	assert.NoError(t, d.CheckInvariants())
}

func TestArchiveUnknownIsNoop(t *testing.T) {
	d := New()
	d.RecordDM(chat.DM("c1"), "1")
	d.RecordGroup(chat.Space("s1"))

	d.Archive(chat.Space("nope"))
	d.Archive(chat.DM("nope"))

	assert.Equal(t, []chat.UserID{"1"}, d.Peers())
	assert.Len(t, d.Groups(), 1)
	assert.NoError(t, d.CheckInvariants())

	d.Archive(chat.DM("c1"))
	d.Archive(chat.DM("c1"))
	d.Archive(chat.Space("s1"))
	assert.Empty(t, d.Peers())
	assert.Empty(t, d.Groups())
	assert.NoError(t, d.CheckInvariants())
}

func TestGroups(t *testing.T) {
	d := New()
	s := chat.Space("s1")
	assert.False(t, d.IsKnownGroup(s))
	assert.False(t, d.ForgetGroup(s))

	d.RecordGroup(s)
	assert.True(t, d.IsKnownGroup(s))
	assert.True(t, d.IsKnown(s))
	assert.False(t, d.IsKnownDM(s))

	assert.True(t, d.ForgetGroup(s))
	assert.False(t, d.IsKnown(s))
	_, ok := d.Snapshot(s)
	assert.False(t, ok)
}

func TestSetNameUnknownRule(t *testing.T) {
	d := New()
	s := chat.Space("s1")
	assert.False(t, d.SetName(s, "x"), "unknown conversation")

	d.RecordGroup(s)
	assert.True(t, d.SetName(s, ""))
	snap, _ := d.Snapshot(s)
	assert.Equal(t, UnknownName, snap.Name)

	assert.True(t, d.SetName(s, "Team"))
	assert.False(t, d.SetName(s, ""))
	assert.False(t, d.SetName(s, UnknownName))
	snap, _ = d.Snapshot(s)
	assert.Equal(t, "Team", snap.Name)

	assert.True(t, d.SetName(s, "Renamed"))
}

func TestMembers(t *testing.T) {
	d := New()
	s := chat.Space("s1")
	d.RecordGroup(s)

	d.SetMembers(s, []chat.UserID{"1", "2", "1"})
	d.AddMembers(s, []chat.UserID{"3", "2"})
	d.RemoveMembers(s, []chat.UserID{"1", "9"})

	snap, _ := d.Snapshot(s)
	assert.Equal(t, []chat.UserID{"2", "3"}, snap.Members)

	// the copy is detached.
	snap.Members[0] = "x"
	snap2, _ := d.Snapshot(s)
	assert.Equal(t, chat.UserID("2"), snap2.Members[0])
}

func TestAdvanceIsMonotonic(t *testing.T) {
	d := New()
	s := chat.Space("s1")
	assert.False(t, d.Advance(s, 10), "unknown conversation")

	d.RecordGroup(s)
	assert.True(t, d.Advance(s, 10))
	assert.False(t, d.Advance(s, 10))
	assert.False(t, d.Advance(s, 5))
	assert.True(t, d.Advance(s, 11))

	snap, _ := d.Snapshot(s)
	assert.EqualValues(t, 11, snap.Watermark)
}

func TestMarkReadNeverRegresses(t *testing.T) {
	d := New()
	c := chat.DM("c1")
	d.RecordDM(c, "1")

	r := rand.New(rand.NewSource(2))
	var max int64
	for i := 0; i < 200; i++ {
		ts := r.Int63n(1000)
		d.MarkRead(c, ts)
		if ts > max {
			max = ts
		}
		snap, _ := d.Snapshot(c)
		require.Equal(t, max, snap.LastRead)
	}
}

func TestResetAndSelf(t *testing.T) {
	d := New()
	d.SetSelf("42")
	d.RecordDM(chat.DM("c1"), "1")
	d.RecordGroup(chat.Space("s1"))
	assert.Equal(t, chat.UserID("42"), d.Self())

	d.Reset()
	assert.Equal(t, chat.UserID(""), d.Self())
	assert.Empty(t, d.Peers())
	assert.Empty(t, d.Groups())
	assert.NoError(t, d.CheckInvariants())
}
