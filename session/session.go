// Package session owns one account's connection: it runs the connect
// sequence, keeps the event stream up, and exposes the user actions.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/golang/glog"
	"github.com/pborman/uuid"

	"github.com/mqy/gchat/attachstore"
	"github.com/mqy/gchat/chat"
	"github.com/mqy/gchat/directory"
	"github.com/mqy/gchat/dispatch"
	"github.com/mqy/gchat/envelope"
	"github.com/mqy/gchat/events"
	"github.com/mqy/gchat/loop"
	"github.com/mqy/gchat/metrics"
	"github.com/mqy/gchat/notify"
	"github.com/mqy/gchat/presence"
	pb "github.com/mqy/gchat/proto"
	"github.com/mqy/gchat/render"
	"github.com/mqy/gchat/roster"
	"github.com/mqy/gchat/rpc"
	"github.com/mqy/gchat/stream"
)

const maxCatchUpPages = 100

var errStreamEnded = errors.New("session: event stream ended")

// Cfg wires a Session.
type Cfg struct {
	Client   *rpc.Client
	Env      *envelope.Builder
	Stream   stream.IEventStream
	Sink     notify.ISink
	Avatars  roster.IAvatarFetcher
	Renderer render.Renderer
	Store    attachstore.IStore
	Uploader rpc.IUploader

	HideSelf        bool
	Presence        presence.Options
	PollInterval    time.Duration
	CatchUpPageSize int32
	WorldPageSize   int32
}

type Session struct {
	sid      string
	client   *rpc.Client
	stream   stream.IEventStream
	dir      *directory.Directory
	loop     *loop.Loop
	events   *events.Engine
	roster   *roster.Engine
	dispatch *dispatch.Dispatcher
	poller   *presence.Poller
	wg       sync.WaitGroup

	connected int32 // atomic

	// current connection context, for work started from the loop, and the
	// stream batches held back until the catch-up of this connection is applied.
	sync.Mutex
	connCtx context.Context
	holding bool
	held    [][]*pb.Event
}

func New(cfg *Cfg) *Session {
	dir := directory.New()
	l := loop.New()
	ev := events.New(dir, cfg.Sink, events.NewPending(events.DefaultPendingTTL, events.DefaultPendingMax), events.Options{
		HideSelf:   cfg.HideSelf,
		Presence:   cfg.Presence,
		PageSize:   cfg.CatchUpPageSize,
		CutoffSize: cfg.CatchUpPageSize,
	})
	s := &Session{
		sid:    uuid.New(),
		client: cfg.Client,
		stream: cfg.Stream,
		dir:    dir,
		loop:   l,
		events: ev,
		roster: roster.New(dir, cfg.Client, cfg.Sink, cfg.Avatars, l, roster.Options{
			HideSelf:      cfg.HideSelf,
			Presence:      cfg.Presence,
			WorldPageSize: cfg.WorldPageSize,
		}),
		dispatch: dispatch.New(dir, cfg.Client, cfg.Env, ev, cfg.Renderer, cfg.Store, cfg.Uploader, l),
	}
	interval := cfg.PollInterval
	if interval == 0 {
		interval = presence.DefaultPollInterval
	}
	s.poller = presence.NewPoller(interval, s.Connected, s.roster.PollPresence)
	return s
}

func (s *Session) String() string {
	return fmt.Sprintf("session %s (self %s)", s.sid, s.dir.Self())
}

func (s *Session) Directory() *directory.Directory { return s.dir }

func (s *Session) Actions() *dispatch.Dispatcher { return s.dispatch }

func (s *Session) Connected() bool {
	return atomic.LoadInt32(&s.connected) == 1
}

func (s *Session) setConnected(v bool) {
	var n int32
	if v {
		n = 1
	}
	atomic.StoreInt32(&s.connected, n)
	metrics.Connected.Set(float64(n))
}

// Run keeps the session connected until ctx is done, reconnecting with
// backoff.
func (s *Session) Run(ctx context.Context) {
	glog.Infof("%s: run", s)
	go s.loop.Run(ctx)
	go s.poller.Run(ctx)

	defer func() {
		s.setConnected(false)
		s.dispatch.Close()
		s.roster.Wait()
		s.wg.Wait()
		glog.Infof("%s: stopped", s)
		s.reset()
	}()

	var sleep time.Duration
	for {
		start := time.Now()
		err := s.runOnce(ctx)
		if ctx.Err() != nil {
			return
		}
		glog.Errorf("%s: disconnected after %s: %v", s, time.Since(start).Truncate(time.Millisecond), err)
		metrics.Reconnects.Inc()

		// a connection that lasted resets the backoff.
		if time.Since(start) > BackoffMaxInterval {
			sleep = 0
		}
		backoff(&sleep)
		select {
		case <-time.After(sleep):
		case <-ctx.Done():
			return
		}
	}
}

// reset drops the session state. It is kept across reconnects so that the
// catch-up can start from the last event, and dropped when Run returns.
func (s *Session) reset() {
	s.dir.Reset()
	s.roster.Reset()
	s.dispatch.Reset()
	s.events.SetLastEventTimestamp(0)
}

// runOnce starts the event stream, then runs the connect sequence. Stream
// batches are held until connect has applied the catch-up, so live events
// never advance a watermark past events still to come from the catch-up.
func (s *Session) runOnce(ctx context.Context) error {
	cctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer s.setConnected(false)

	s.Lock()
	s.connCtx = cctx
	s.holding = true
	s.held = nil
	s.Unlock()

	streamErr := make(chan error, 1)
	go func() { streamErr <- s.stream.Run(cctx, s.onEvents) }()

	connectErr := make(chan error, 1)
	go func() { connectErr <- s.connect(cctx) }()

	select {
	case err := <-connectErr:
		if err != nil {
			cancel()
			<-streamErr
			return fmt.Errorf("connect: %w", err)
		}
	case err := <-streamErr:
		cancel()
		<-connectErr
		if err == nil {
			err = errStreamEnded
		}
		return err
	}

	s.setConnected(true)
	glog.Infof("%s: connected", s)
	if err := <-streamErr; err != nil {
		return err
	}
	return errStreamEnded
}

// connect runs the connect sequence: self status, catch-up since the last
// known event, then the world listing with its presence and profile refresh.
func (s *Session) connect(ctx context.Context) error {
	resp, err := s.client.GetSelfUserStatus(ctx)
	if err != nil {
		return err
	}
	self := chat.UserID(resp.GetUserStatus().GetUserId().GetId())
	if err := chat.CheckUser(self); err != nil {
		return fmt.Errorf("self status: %w", err)
	}
	if err := s.loop.Do(ctx, func() {
		if prev := s.dir.Self(); prev != "" && prev != self {
			glog.Warningf("%s: account changed from %s, dropping state", s, prev)
			s.reset()
		}
		s.dir.SetSelf(self)
	}); err != nil {
		return err
	}

	if since := s.events.LastEventTimestamp(); since > 0 {
		if _, err := s.catchUp(ctx, "user", since, func(from int64) (*pb.CatchUpResponse, error) {
			return s.client.CatchUpUser(ctx, s.events.UserCatchUpRequest(from))
		}); err != nil {
			return err
		}
	} else {
		s.events.SetLastEventTimestamp(time.Now().UnixNano() / int64(time.Microsecond))
	}
	s.release()

	return s.reloadWorld(ctx)
}

func (s *Session) reloadWorld(ctx context.Context) error {
	items, err := s.roster.FetchWorld(ctx)
	if err != nil {
		return err
	}
	return s.roster.ReconcileWorld(ctx, items)
}

// catchUp fetches pages until the server has no more. Pages are applied on
// the loop in order.
func (s *Session) catchUp(ctx context.Context, scope string, since int64,
	fetch func(from int64) (*pb.CatchUpResponse, error)) (events.More, error) {

	for page := 0; page < maxCatchUpPages; page++ {
		resp, err := fetch(since)
		if err != nil {
			return events.More{}, fmt.Errorf("%s catch-up: %w", scope, err)
		}
		metrics.CatchUpPages.WithLabelValues(scope).Inc()

		var more events.More
		var applyErr error
		if err := s.loop.Do(ctx, func() {
			more, applyErr = s.events.ApplyCatchUp(resp)
			s.resolve()
		}); err != nil {
			return events.More{}, err
		}
		if applyErr != nil {
			return events.More{}, fmt.Errorf("%s catch-up: %w", scope, applyErr)
		}
		if !more.Available {
			return more, nil
		}
		glog.V(5).Infof("%s: %s catch-up continues from %d", s, scope, more.From)
		since = more.From
	}
	glog.Warningf("%s: %s catch-up stopped after %d pages", s, scope, maxCatchUpPages)
	return events.More{}, nil
}

func (s *Session) onEvents(batch []*pb.Event) {
	s.Lock()
	defer s.Unlock()
	if s.holding {
		s.held = append(s.held, batch)
		return
	}
	s.post(batch)
}

// release hands the held stream batches to the loop, in arrival order and
// ahead of any later batch.
func (s *Session) release() {
	s.Lock()
	defer s.Unlock()
	if n := len(s.held); n > 0 {
		glog.V(5).Infof("%s: release %d held batches", s, n)
	}
	for _, batch := range s.held {
		s.post(batch)
	}
	s.holding = false
	s.held = nil
}

// post must be called with s locked.
func (s *Session) post(batch []*pb.Event) {
	s.loop.Post(func() {
		s.events.Apply(batch)
		s.resolve()
	})
}

// resolve reloads the world listing in the background when events referred
// to conversations the directory could not place, then catches up on each.
// Must run on the loop.
func (s *Session) resolve() {
	convs := s.events.TakeUnresolved()
	if len(convs) == 0 {
		return
	}
	s.Lock()
	ctx := s.connCtx
	s.Unlock()
	if ctx == nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.reloadWorld(ctx); err != nil {
			glog.Errorf("%s: reload world: %v", s, err)
			return
		}
		for _, conv := range convs {
			if err := s.OpenConversation(ctx, conv); err != nil {
				glog.Errorf("%s: open %s: %v", s, conv, err)
			}
		}
	}()
}

// OpenConversation catches up on conv from its watermark.
func (s *Session) OpenConversation(ctx context.Context, conv chat.ConversationID) error {
	if err := chat.CheckConversation(conv); err != nil {
		return err
	}
	var since int64
	if snap, ok := s.dir.Snapshot(conv); ok {
		since = snap.Watermark
	}
	more, err := s.catchUp(ctx, "group", since, func(from int64) (*pb.CatchUpResponse, error) {
		req, err := s.events.GroupCatchUpRequest(conv, from)
		if err != nil {
			return nil, err
		}
		return s.client.CatchUpGroup(ctx, req)
	})
	if err != nil {
		return err
	}
	if more.Cutoff {
		glog.Warningf("%s: %s history cut off at %d", s, conv, since)
	}
	return nil
}

// CreateConversation creates the conversation, sends firstMessage and loads
// its history.
func (s *Session) CreateConversation(ctx context.Context, isDM bool, target chat.UserID, firstMessage string) (chat.ConversationID, error) {
	conv, err := s.dispatch.CreateConversation(ctx, isDM, target, firstMessage)
	if err != nil {
		return conv, err
	}
	return conv, s.OpenConversation(ctx, conv)
}

// AddContacts seeds contacts known to the UI, e.g. its buddy list.
func (s *Session) AddContacts(ctx context.Context, users ...chat.UserID) error {
	return s.loop.Do(ctx, func() { s.roster.AddContacts(users...) })
}

func (s *Session) UserInfo(ctx context.Context, user chat.UserID) (*roster.Profile, error) {
	return s.roster.UserInfo(ctx, user)
}

// RoomList lists the account's spaces from a fresh world listing.
func (s *Session) RoomList(ctx context.Context) ([]roster.Room, error) {
	items, err := s.roster.FetchWorld(ctx)
	if err != nil {
		return nil, err
	}
	var rooms []roster.Room
	if err := s.loop.Do(ctx, func() { rooms = s.roster.Rooms(items) }); err != nil {
		return nil, err
	}
	return rooms, nil
}
