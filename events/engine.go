// Package events applies server events and catch-up pages to the directory in
// revision order and turns them into notifications.
package events

import (
	"errors"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/mqy/gchat/chat"
	"github.com/mqy/gchat/directory"
	"github.com/mqy/gchat/metrics"
	"github.com/mqy/gchat/notify"
	"github.com/mqy/gchat/presence"
	pb "github.com/mqy/gchat/proto"
)

const (
	DefaultPageSize   = 500
	DefaultCutoffSize = 500
)

type Options struct {
	HideSelf   bool
	Presence   presence.Options
	PageSize   int32
	CutoffSize int32
}

// More tells the caller what to do after a catch-up page.
type More struct {
	// Available is set when another page follows, starting at From.
	Available bool
	From      int64
	// Cutoff is set when the server refused to replay the whole gap; the
	// caller must reload the world listing instead.
	Cutoff bool
}

// Engine reconciles events. Apply and ApplyCatchUp must be called from the
// session loop; Pending is safe for concurrent use.
type Engine struct {
	dir     *directory.Directory
	sink    notify.ISink
	pending *Pending
	opts    Options

	lastEvent  int64 // atomic
	unresolved map[chat.ConversationID]struct{}
}

func New(dir *directory.Directory, sink notify.ISink, pending *Pending, opts Options) *Engine {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.CutoffSize <= 0 {
		opts.CutoffSize = DefaultCutoffSize
	}
	return &Engine{
		dir:        dir,
		sink:       sink,
		pending:    pending,
		opts:       opts,
		unresolved: make(map[chat.ConversationID]struct{}),
	}
}

func (e *Engine) Pending() *Pending {
	return e.pending
}

// LastEventTimestamp is the highest revision applied in this session.
func (e *Engine) LastEventTimestamp() int64 {
	return atomic.LoadInt64(&e.lastEvent)
}

// SetLastEventTimestamp seeds the global watermark, e.g. from a previous
// connection.
func (e *Engine) SetLastEventTimestamp(ts int64) {
	atomic.StoreInt64(&e.lastEvent, ts)
}

// TakeUnresolved returns, and forgets, the conversations that events referred
// to but that could not be registered.
func (e *Engine) TakeUnresolved() []chat.ConversationID {
	if len(e.unresolved) == 0 {
		return nil
	}
	out := make([]chat.ConversationID, 0, len(e.unresolved))
	for c := range e.unresolved {
		out = append(out, c)
	}
	e.unresolved = make(map[chat.ConversationID]struct{})
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// Apply applies one batch. Malformed events are skipped; the remainder is
// applied in revision order.
func (e *Engine) Apply(batch []*pb.Event) {
	decoded := make([]chat.Event, 0, len(batch))
	for _, raw := range batch {
		ev, err := Decode(raw, e.opts.Presence)
		if err != nil {
			glog.Warningf("events: skip: %v", err)
			metrics.EventsDropped.WithLabelValues("malformed").Inc()
			continue
		}
		decoded = append(decoded, ev)
	}
	sort.SliceStable(decoded, func(i, j int) bool {
		return decoded[i].Revision() < decoded[j].Revision()
	})
	for _, ev := range decoded {
		e.apply(ev)
	}
}

func (e *Engine) apply(ev chat.Event) {
	if ts := ev.Revision(); ts != 0 {
		conv := ev.Conversation()
		if !e.dir.IsKnown(conv) && !e.register(ev) {
			return
		}
		if !e.dir.Advance(conv, ts) {
			glog.V(5).Infof("events: stale %s at %d", conv, ts)
			metrics.EventsDropped.WithLabelValues("stale").Inc()
			return
		}
		if ts > e.LastEventTimestamp() {
			e.SetLastEventTimestamp(ts)
		}
	}

	self := e.dir.Self()
	switch v := ev.(type) {
	case *chat.MessagePosted:
		if v.ClientID != 0 && e.pending.Confirm(v.ClientID) {
			glog.V(5).Infof("events: echo of %d in %s", v.ClientID, v.Conv)
			metrics.EventsDropped.WithLabelValues("echo").Inc()
			return
		}
		e.sink.MessageReceived(v)
		e.count("message")

	case *chat.MembershipChanged:
		if v.Joined {
			e.dir.AddMembers(v.Conv, v.Members)
		} else {
			e.dir.RemoveMembers(v.Conv, v.Members)
			if !v.Conv.IsDM() && containsUser(v.Members, self) {
				e.dir.ForgetGroup(v.Conv)
			}
		}
		e.sink.ConversationListChanged()
		e.count("membership")

	case *chat.TypingChanged:
		if v.User == self || !e.dir.IsKnown(v.Conv) {
			return
		}
		e.sink.TypingStateChanged(v.Conv, v.User, v.State)
		e.count("typing")

	case *chat.ReadReceipt:
		if v.User == self {
			e.dir.MarkRead(v.Conv, v.ReadTime)
		}
		e.count("read_receipt")

	case *chat.PresenceChanged:
		if e.opts.HideSelf && v.Presence.User == self {
			return
		}
		e.sink.BuddyPresenceChanged(v.Presence)
		e.count("presence")

	case *chat.ConversationRenamed:
		if e.dir.SetName(v.Conv, v.Name) {
			e.sink.ConversationListChanged()
		}
		e.count("rename")

	case *chat.ConversationDeleted:
		e.dir.Archive(v.Conv)
		e.sink.ConversationListChanged()
		e.count("delete")

	default:
		panic(fmt.Sprintf("events: unhandled event %T", ev))
	}
}

func (e *Engine) count(kind string) {
	metrics.EventsApplied.WithLabelValues(kind).Inc()
}

// register records a conversation first seen in an event. It reports false
// when the event must be dropped.
func (e *Engine) register(ev chat.Event) bool {
	conv := ev.Conversation()
	self := e.dir.Self()
	switch v := ev.(type) {
	case *chat.ConversationDeleted:
		return false
	case *chat.MembershipChanged:
		if !v.Joined && containsUser(v.Members, self) {
			return false
		}
	}

	if !conv.IsDM() {
		e.dir.RecordGroup(conv)
		e.dir.SetName(conv, "")
		glog.V(5).Infof("events: registered space %s", conv)
		return true
	}

	peer := dmPeer(ev, self)
	if peer == "" {
		glog.Warningf("events: no peer for unknown %s", conv)
		e.unresolved[conv] = struct{}{}
		return false
	}
	e.dir.RecordDM(conv, peer)
	members := []chat.UserID{peer}
	if self != "" {
		members = []chat.UserID{self, peer}
	}
	e.dir.SetMembers(conv, members)
	glog.V(5).Infof("events: registered %s with %s", conv, peer)
	return true
}

func dmPeer(ev chat.Event, self chat.UserID) chat.UserID {
	var candidates []chat.UserID
	switch v := ev.(type) {
	case *chat.MessagePosted:
		candidates = append(candidates, v.Sender, v.Actor)
	case *chat.MembershipChanged:
		candidates = append(append(candidates, v.Members...), v.Actor)
	case *chat.ReadReceipt:
		candidates = append(candidates, v.User, v.Actor)
	case *chat.ConversationRenamed:
		candidates = append(candidates, v.Actor)
	}
	for _, u := range candidates {
		if u != self && u.Valid() {
			return u
		}
	}
	return ""
}

func containsUser(users []chat.UserID, u chat.UserID) bool {
	for _, x := range users {
		if x == u {
			return true
		}
	}
	return false
}

// UserCatchUpRequest builds the global catch-up request for events after since.
func (e *Engine) UserCatchUpRequest(since int64) *pb.CatchUpUserRequest {
	return &pb.CatchUpUserRequest{
		Range:      &pb.CatchUpRange{FromRevisionTimestamp: since},
		PageSize:   e.opts.PageSize,
		CutoffSize: e.opts.CutoffSize,
	}
}

func (e *Engine) GroupCatchUpRequest(conv chat.ConversationID, since int64) (*pb.CatchUpGroupRequest, error) {
	if err := chat.CheckConversation(conv); err != nil {
		return nil, err
	}
	return &pb.CatchUpGroupRequest{
		GroupId:    conv.Proto(),
		Range:      &pb.CatchUpRange{FromRevisionTimestamp: since},
		PageSize:   e.opts.PageSize,
		CutoffSize: e.opts.CutoffSize,
	}, nil
}

var errEmptyPage = errors.New("events: paginated catch-up page without events")

// ApplyCatchUp applies one catch-up page and reports whether more follow.
func (e *Engine) ApplyCatchUp(resp *pb.CatchUpResponse) (More, error) {
	if resp == nil {
		return More{}, errors.New("events: nil catch-up response")
	}
	e.Apply(resp.GetEvents())

	switch resp.GetStatus() {
	case pb.CatchUpStatus_PAGINATED:
		var from int64
		for _, ev := range resp.GetEvents() {
			if ts := ev.GetGroupRevision().GetTimestamp(); ts > from {
				from = ts
			}
		}
		if from == 0 {
			return More{}, errEmptyPage
		}
		return More{Available: true, From: from}, nil
	case pb.CatchUpStatus_CUTOFF:
		glog.Warningf("events: catch-up cut off after %d events", len(resp.GetEvents()))
		return More{Cutoff: true}, nil
	}
	return More{}, nil
}
