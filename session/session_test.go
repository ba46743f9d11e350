package session

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gogo/protobuf/proto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqy/gchat/auth"
	"github.com/mqy/gchat/chat"
	"github.com/mqy/gchat/envelope"
	notify_mock "github.com/mqy/gchat/notify/mock"
	pb "github.com/mqy/gchat/proto"
	"github.com/mqy/gchat/render"
	"github.com/mqy/gchat/rpc"
	rpc_mock "github.com/mqy/gchat/rpc/mock"
)

const self = chat.UserID("100")

type fakeStream struct {
	batches [][]*pb.Event
	runs    int32
}

func (f *fakeStream) Run(ctx context.Context, handle func([]*pb.Event)) error {
	atomic.AddInt32(&f.runs, 1)
	for _, b := range f.batches {
		handle(b)
	}
	<-ctx.Done()
	return nil
}

type fixture struct {
	inv    *rpc_mock.MockIInvoker
	sink   *notify_mock.MockISink
	stream *fakeStream
	s      *Session
}

func newFixture(t *testing.T) *fixture {
	mockCtrl := gomock.NewController(t)
	t.Cleanup(mockCtrl.Finish)

	f := &fixture{
		inv:    rpc_mock.NewMockIInvoker(mockCtrl),
		sink:   notify_mock.NewMockISink(mockCtrl),
		stream: &fakeStream{},
	}
	f.sink.EXPECT().ConversationListChanged().AnyTimes()
	f.sink.EXPECT().BuddyPresenceChanged(gomock.Any()).AnyTimes()
	f.sink.EXPECT().BuddyProfileUpdated(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	env := envelope.NewBuilder(auth.NewStaticClient("tok"))
	f.s = New(&Cfg{
		Client:       rpc.NewClient(f.inv, env),
		Env:          env,
		Stream:       f.stream,
		Sink:         f.sink,
		Renderer:     render.NewMarkdown(),
		PollInterval: time.Hour,
	})
	return f
}

// startLoop runs the session loop alone, for tests that drive the connect
// steps directly.
func (f *fixture) startLoop(t *testing.T) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go f.s.loop.Run(ctx)
	return ctx
}

func (f *fixture) expect(method string) *gomock.Call {
	return f.inv.EXPECT().Invoke(gomock.Any(), method, gomock.Any(), gomock.Any())
}

func (f *fixture) expectSelf() *gomock.Call {
	return f.expect(rpc.MethodGetSelfUserStatus).DoAndReturn(func(_ context.Context, _ string, _, resp proto.Message) error {
		resp.(*pb.GetSelfUserStatusResponse).UserStatus = &pb.UserStatus{UserId: self.Proto()}
		return nil
	})
}

func (f *fixture) expectWorld(items ...*pb.WorldItemLite) *gomock.Call {
	return f.expect(rpc.MethodPaginatedWorld).DoAndReturn(func(_ context.Context, _ string, _, resp proto.Message) error {
		resp.(*pb.PaginatedWorldResponse).WorldItems = items
		return nil
	})
}

func dmItem(conv string, peer chat.UserID) *pb.WorldItemLite {
	return &pb.WorldItemLite{
		GroupId:   chat.DM(conv).Proto(),
		DmMembers: &pb.DmMembers{Members: []*pb.UserId{self.Proto(), peer.Proto()}},
	}
}

func message(conv chat.ConversationID, ts int64, sender chat.UserID) *pb.Event {
	return &pb.Event{
		GroupId:       conv.Proto(),
		Type:          pb.EventType_MESSAGE_POSTED,
		GroupRevision: &pb.RevisionTimestamp{Timestamp: ts},
		Body: &pb.EventBody{MessagePosted: &pb.MessageEvent{Message: &pb.Message{
			Creator: sender.Proto(),
		}}},
	}
}

func TestRunConnects(t *testing.T) {
	f := newFixture(t)
	f.stream.batches = [][]*pb.Event{{message(chat.DM("dm1"), 10, "1")}}

	gomock.InOrder(
		f.expectSelf(),
		f.expectWorld(dmItem("dm1", "1")),
	)
	f.expect(rpc.MethodGetUserPresence).Return(nil)
	f.expect(rpc.MethodGetMembers).Return(nil)
	f.sink.EXPECT().MessageReceived(gomock.Any()).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.s.Run(ctx)
		close(done)
	}()

	require.Eventually(t, f.s.Connected, time.Second, time.Millisecond)
	conv, ok := f.s.Directory().ResolveDM("1")
	assert.True(t, ok)
	assert.Equal(t, chat.DM("dm1"), conv)
	assert.Equal(t, self, f.s.Directory().Self())
	require.Eventually(t, func() bool {
		snap, _ := f.s.Directory().Snapshot(chat.DM("dm1"))
		return snap != nil && snap.Watermark == 10
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop")
	}
	assert.False(t, f.s.Connected())
	assert.Equal(t, int32(1), atomic.LoadInt32(&f.stream.runs))

	// state is dropped once Run returns.
	assert.Equal(t, chat.UserID(""), f.s.Directory().Self())
	_, ok = f.s.Directory().ResolveDM("1")
	assert.False(t, ok)
	assert.Zero(t, f.s.events.LastEventTimestamp())
}

func TestLiveEventsWaitForCatchUp(t *testing.T) {
	f := newFixture(t)
	conv := chat.DM("dm1")
	f.s.dir.RecordDM(conv, "1")
	f.s.events.SetLastEventTimestamp(500)
	f.stream.batches = [][]*pb.Event{{message(conv, 1000, "1")}}

	gomock.InOrder(
		f.expect(rpc.MethodGetSelfUserStatus).DoAndReturn(func(_ context.Context, _ string, _, resp proto.Message) error {
			time.Sleep(50 * time.Millisecond)
			resp.(*pb.GetSelfUserStatusResponse).UserStatus = &pb.UserStatus{UserId: self.Proto()}
			return nil
		}),
		f.expect(rpc.MethodCatchUpUser).DoAndReturn(func(_ context.Context, _ string, req, resp proto.Message) error {
			assert.Equal(t, int64(500), req.(*pb.CatchUpUserRequest).Range.FromRevisionTimestamp)
			r := resp.(*pb.CatchUpResponse)
			r.Events = []*pb.Event{message(conv, 900, "1")}
			r.Status = pb.CatchUpStatus_COMPLETED
			return nil
		}),
		f.expectWorld(dmItem("dm1", "1")),
	)
	f.expect(rpc.MethodGetUserPresence).Return(nil).AnyTimes()
	f.expect(rpc.MethodGetMembers).Return(nil).AnyTimes()

	var mu sync.Mutex
	var got []int64
	f.sink.EXPECT().MessageReceived(gomock.Any()).Do(func(m *chat.MessagePosted) {
		mu.Lock()
		got = append(got, m.Timestamp)
		mu.Unlock()
	}).Times(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.s.Run(ctx)
		close(done)
	}()
	defer func() {
		cancel()
		<-done
	}()

	require.Eventually(t, f.s.Connected, 2*time.Second, time.Millisecond)
	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 2
	}, 2*time.Second, time.Millisecond)
	mu.Lock()
	assert.Equal(t, []int64{900, 1000}, got)
	mu.Unlock()
	assert.Equal(t, int64(1000), f.s.events.LastEventTimestamp())
}

func TestConnectCatchesUpFromLastEvent(t *testing.T) {
	f := newFixture(t)
	ctx := f.startLoop(t)

	conv := chat.DM("dm1")
	require.NoError(t, f.s.loop.Do(ctx, func() { f.s.dir.RecordDM(conv, "1") }))
	f.s.events.SetLastEventTimestamp(50)

	var froms []int64
	catchUp := func(status pb.CatchUpStatus, events ...*pb.Event) func(context.Context, string, proto.Message, proto.Message) error {
		return func(_ context.Context, _ string, req, resp proto.Message) error {
			froms = append(froms, req.(*pb.CatchUpUserRequest).Range.FromRevisionTimestamp)
			r := resp.(*pb.CatchUpResponse)
			r.Events = events
			r.Status = status
			return nil
		}
	}
	gomock.InOrder(
		f.expectSelf(),
		f.expect(rpc.MethodCatchUpUser).DoAndReturn(catchUp(pb.CatchUpStatus_PAGINATED, message(conv, 60, "1"))),
		f.expect(rpc.MethodCatchUpUser).DoAndReturn(catchUp(pb.CatchUpStatus_COMPLETED, message(conv, 70, "1"))),
		f.expectWorld(),
	)
	f.expect(rpc.MethodGetUserPresence).Return(nil).AnyTimes()
	f.expect(rpc.MethodGetMembers).Return(nil).AnyTimes()
	f.sink.EXPECT().MessageReceived(gomock.Any()).Times(2)

	require.NoError(t, f.s.connect(ctx))
	assert.Equal(t, []int64{50, 60}, froms)
	assert.Equal(t, int64(70), f.s.events.LastEventTimestamp())
}

func TestConnectFirstTimeSkipsCatchUp(t *testing.T) {
	f := newFixture(t)
	ctx := f.startLoop(t)

	gomock.InOrder(f.expectSelf(), f.expectWorld())
	require.NoError(t, f.s.connect(ctx))
	assert.NotZero(t, f.s.events.LastEventTimestamp())
}

func TestConnectFailsOnBadSelf(t *testing.T) {
	f := newFixture(t)
	ctx := f.startLoop(t)

	f.expect(rpc.MethodGetSelfUserStatus).Return(nil)
	assert.ErrorIs(t, f.s.connect(ctx), chat.ErrInvalidID)
}

func TestOpenConversation(t *testing.T) {
	f := newFixture(t)
	ctx := f.startLoop(t)

	conv := chat.Space("sp1")
	require.NoError(t, f.s.loop.Do(ctx, func() {
		f.s.dir.SetSelf(self)
		f.s.dir.RecordGroup(conv)
		f.s.dir.Advance(conv, 40)
	}))

	f.expect(rpc.MethodCatchUpGroup).DoAndReturn(func(_ context.Context, _ string, req, resp proto.Message) error {
		r := req.(*pb.CatchUpGroupRequest)
		assert.Equal(t, "sp1", r.GroupId.SpaceId.SpaceId)
		assert.Equal(t, int64(40), r.Range.FromRevisionTimestamp)
		resp.(*pb.CatchUpResponse).Status = pb.CatchUpStatus_CUTOFF
		return nil
	})
	require.NoError(t, f.s.OpenConversation(ctx, conv))
	assert.ErrorIs(t, f.s.OpenConversation(ctx, chat.ConversationID{}), chat.ErrInvalidID)
}

func TestUnresolvedConversationTriggersReload(t *testing.T) {
	f := newFixture(t)
	ctx := f.startLoop(t)
	require.NoError(t, f.s.loop.Do(ctx, func() { f.s.dir.SetSelf(self) }))
	f.s.connCtx = ctx

	conv := chat.DM("dm9")
	caughtUp := make(chan struct{})
	gomock.InOrder(
		f.expectWorld(dmItem("dm9", "9")),
		f.expect(rpc.MethodCatchUpGroup).DoAndReturn(func(_ context.Context, _ string, _, resp proto.Message) error {
			r := resp.(*pb.CatchUpResponse)
			r.Events = []*pb.Event{message(conv, 10, self)}
			r.Status = pb.CatchUpStatus_COMPLETED
			close(caughtUp)
			return nil
		}),
	)
	f.expect(rpc.MethodGetUserPresence).Return(nil).AnyTimes()
	f.expect(rpc.MethodGetMembers).Return(nil).AnyTimes()
	f.sink.EXPECT().MessageReceived(gomock.Any()).Times(1)

	// a self-sent message in an unknown DM names no peer.
	f.s.onEvents([]*pb.Event{message(conv, 10, self)})

	select {
	case <-caughtUp:
	case <-time.After(time.Second):
		t.Fatal("no catch-up")
	}
	f.s.wg.Wait()
	peer, ok := f.s.dir.PeerOf(conv)
	assert.True(t, ok)
	assert.Equal(t, chat.UserID("9"), peer)
}

func TestRoomList(t *testing.T) {
	f := newFixture(t)
	ctx := f.startLoop(t)

	f.expectWorld(
		dmItem("dm1", "1"),
		&pb.WorldItemLite{GroupId: chat.Space("sp1").Proto(), RoomName: "team"},
		&pb.WorldItemLite{
			GroupId:   chat.Space("sp2").Proto(),
			ReadState: &pb.GroupReadState{JoinedUsers: []*pb.UserId{{Id: "1"}, {Id: "2"}}},
		},
	)
	rooms, err := f.s.RoomList(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "team", rooms[0].Name)
	assert.Equal(t, "1, 2", rooms[1].Name)
}

func TestBackoff(t *testing.T) {
	var d time.Duration
	backoff(&d)
	assert.Equal(t, BackoffMinInterval, d)
	backoff(&d)
	assert.Equal(t, 1500*time.Millisecond, d)
	backoff(&d)
	assert.Equal(t, 2250*time.Millisecond, d)

	for d != BackoffMinInterval {
		prev := d
		backoff(&d)
		if d != BackoffMinInterval {
			assert.Greater(t, d, prev)
			assert.Less(t, d, BackoffMaxInterval)
		}
	}
}
