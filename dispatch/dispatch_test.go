package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gogo/protobuf/proto"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mqy/gchat/attachstore"
	"github.com/mqy/gchat/auth"
	"github.com/mqy/gchat/chat"
	"github.com/mqy/gchat/directory"
	"github.com/mqy/gchat/envelope"
	"github.com/mqy/gchat/events"
	"github.com/mqy/gchat/loop"
	pb "github.com/mqy/gchat/proto"
	"github.com/mqy/gchat/render"
	"github.com/mqy/gchat/rpc"
	rpc_mock "github.com/mqy/gchat/rpc/mock"
)

const self = chat.UserID("100")

var (
	dm     = chat.DM("dm1")
	space  = chat.Space("sp1")
	errRPC = errors.New("boom")
)

type fixture struct {
	dir      *directory.Directory
	inv      *rpc_mock.MockIInvoker
	uploader *rpc_mock.MockIUploader
	store    *attachstore.MemoryStore
	ev       *events.Engine
	d        *Dispatcher
}

func newFixture(t *testing.T) *fixture {
	mockCtrl := gomock.NewController(t)
	t.Cleanup(mockCtrl.Finish)

	f := &fixture{
		dir:      directory.New(),
		inv:      rpc_mock.NewMockIInvoker(mockCtrl),
		uploader: rpc_mock.NewMockIUploader(mockCtrl),
		store:    attachstore.NewMemoryStore(),
	}
	f.dir.SetSelf(self)
	f.dir.RecordDM(dm, "1")
	f.dir.RecordGroup(space)
	f.dir.SetMembers(space, []chat.UserID{self, "1", "2"})

	env := envelope.NewBuilder(auth.NewStaticClient("tok"))
	f.ev = events.New(f.dir, nil, events.NewPending(events.DefaultPendingTTL, events.DefaultPendingMax), events.Options{})
	f.d = New(f.dir, rpc.NewClient(f.inv, env), env, f.ev, render.NewMarkdown(), f.store, f.uploader, loop.Inline{})
	t.Cleanup(f.d.Close)
	return f
}

func (f *fixture) expect(method string) *gomock.Call {
	return f.inv.EXPECT().Invoke(gomock.Any(), method, gomock.Any(), gomock.Any())
}

func TestSendMessageWithAttachment(t *testing.T) {
	f := newFixture(t)
	data := []byte("png-bytes")
	f.store.Put("img1", "cat.png", data)

	gomock.InOrder(
		f.uploader.EXPECT().CreateSession(gomock.Any(), "cat.png", len(data)).Return("https://up/1", nil),
		f.uploader.EXPECT().Upload(gomock.Any(), "https://up/1", data).Return("att-1", nil),
		f.expect(rpc.MethodCreateTopic).DoAndReturn(func(_ context.Context, _ string, req, _ proto.Message) error {
			r := req.(*pb.CreateTopicRequest)
			require.Len(t, r.Annotations, 1)
			assert.Equal(t, pb.AnnotationType_DRIVE, r.Annotations[0].Type)
			assert.Equal(t, "att-1", r.Annotations[0].DriveMetadata.Id)
			assert.Equal(t, "dm1", r.EventRequestHeader.GroupId.DmId.DmId)
			assert.NotZero(t, r.EventRequestHeader.ClientGeneratedId)
			assert.Equal(t, "look", render.Plain(r.MessageContent.Segment))
			return nil
		}),
	)

	require.NoError(t, f.d.SendMessage(context.Background(), dm, "look", "img1"))
	assert.Equal(t, 1, f.ev.Pending().Len())
}

func TestSendMessageUploadFailure(t *testing.T) {
	f := newFixture(t)
	f.store.Put("img1", "cat.png", []byte("x"))

	f.uploader.EXPECT().CreateSession(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errRPC)
	err := f.d.SendMessage(context.Background(), dm, "look", "img1")
	assert.ErrorIs(t, err, ErrAttachmentSend)

	err = f.d.SendMessage(context.Background(), dm, "look", "missing")
	assert.ErrorIs(t, err, ErrAttachmentSend)

	f.uploader.EXPECT().CreateSession(gomock.Any(), gomock.Any(), gomock.Any()).Return("https://up/1", nil)
	f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any()).Return("", errRPC)
	err = f.d.SendMessage(context.Background(), dm, "look", "img1")
	assert.ErrorIs(t, err, ErrAttachmentSend)
	assert.Equal(t, 0, f.ev.Pending().Len())
}

func TestSendMessageFailureClearsPending(t *testing.T) {
	f := newFixture(t)
	f.expect(rpc.MethodCreateTopic).Return(errRPC)

	err := f.d.SendMessage(context.Background(), dm, "hi", "")
	assert.ErrorIs(t, err, errRPC)
	assert.Equal(t, 0, f.ev.Pending().Len())
}

func TestSendMessageAction(t *testing.T) {
	f := newFixture(t)
	f.expect(rpc.MethodCreateTopic).DoAndReturn(func(_ context.Context, _ string, req, _ proto.Message) error {
		r := req.(*pb.CreateTopicRequest)
		require.Len(t, r.Annotations, 1)
		assert.Equal(t, pb.AnnotationType_ME_ACTION, r.Annotations[0].Type)
		assert.Equal(t, "waves", render.Plain(r.MessageContent.Segment))
		return nil
	})
	require.NoError(t, f.d.SendMessage(context.Background(), space, "/me waves", ""))

	assert.ErrorIs(t, f.d.SendMessage(context.Background(), space, "", ""), ErrEmptyMessage)
	assert.ErrorIs(t, f.d.SendMessage(context.Background(), chat.Space("nope"), "hi", ""), ErrConversationGone)
}

func TestEchoAfterSendIsSuppressed(t *testing.T) {
	f := newFixture(t)
	var clientID uint64
	f.expect(rpc.MethodCreateTopic).DoAndReturn(func(_ context.Context, _ string, req, _ proto.Message) error {
		clientID = req.(*pb.CreateTopicRequest).EventRequestHeader.ClientGeneratedId
		return nil
	})
	require.NoError(t, f.d.SendMessage(context.Background(), dm, "hi", ""))

	// a nil sink panics if the echo is delivered.
	f.ev.Apply([]*pb.Event{{
		GroupId:       dm.Proto(),
		Type:          pb.EventType_MESSAGE_POSTED,
		GroupRevision: &pb.RevisionTimestamp{Timestamp: 10},
		Body: &pb.EventBody{MessagePosted: &pb.MessageEvent{Message: &pb.Message{
			Creator:           self.Proto(),
			ClientGeneratedId: clientID,
		}}},
	}})
	assert.Equal(t, 0, f.ev.Pending().Len())
}

func TestInvalidIDsIssueNoRPC(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	badConv := chat.ConversationID{Kind: chat.KindSpace, ID: "has space"}
	badUser := chat.UserID("abc")

	assert.ErrorIs(t, f.d.SendMessage(ctx, badConv, "hi", ""), chat.ErrInvalidID)
	assert.ErrorIs(t, f.d.SendIM(ctx, badUser, "hi"), chat.ErrInvalidID)
	assert.ErrorIs(t, f.d.SetTyping(badConv, chat.Typing), chat.ErrInvalidID)
	assert.ErrorIs(t, f.d.SetFocus(ctx, badConv, true), chat.ErrInvalidID)
	_, err := f.d.MarkSeen(ctx, badConv, 10)
	assert.ErrorIs(t, err, chat.ErrInvalidID)
	_, err = f.d.CreateConversation(ctx, true, badUser, "")
	assert.ErrorIs(t, err, chat.ErrInvalidID)
	assert.ErrorIs(t, f.d.ArchiveConversation(ctx, badConv), chat.ErrInvalidID)
	assert.ErrorIs(t, f.d.LeaveOrKick(ctx, badConv, nil), chat.ErrInvalidID)
	assert.ErrorIs(t, f.d.LeaveOrKick(ctx, space, &badUser), chat.ErrInvalidID)
	assert.ErrorIs(t, f.d.Invite(ctx, space, []chat.UserID{"1", badUser}), chat.ErrInvalidID)
	assert.ErrorIs(t, f.d.Invite(ctx, space, nil), chat.ErrInvalidID)
	assert.ErrorIs(t, f.d.RenameConversation(ctx, chat.ConversationID{}, "x"), chat.ErrInvalidID)
}

func TestMarkSeenNeverRegresses(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	moved, err := f.d.MarkSeen(ctx, dm, 10)
	require.NoError(t, err)
	assert.False(t, moved, "not focused")

	f.expect(rpc.MethodSetFocus).Return(nil)
	require.NoError(t, f.d.SetFocus(ctx, dm, true))
	assert.Equal(t, dm, f.d.Focused())

	var sent []int64
	f.expect(rpc.MethodUpdateWatermark).DoAndReturn(func(_ context.Context, _ string, req, _ proto.Message) error {
		sent = append(sent, req.(*pb.UpdateWatermarkRequest).LastReadTime)
		return nil
	}).Times(2)

	for _, ts := range []int64{10, 5, 10, 20} {
		_, err := f.d.MarkSeen(ctx, dm, ts)
		require.NoError(t, err)
	}
	assert.Equal(t, []int64{10, 20}, sent)
	snap, _ := f.dir.Snapshot(dm)
	assert.Equal(t, int64(20), snap.LastRead)

	f.expect(rpc.MethodSetPresence).Return(nil)
	require.NoError(t, f.d.SetPresence(ctx, chat.StatusAway, ""))
	moved, err = f.d.MarkSeen(ctx, dm, 30)
	require.NoError(t, err)
	assert.False(t, moved, "away")
}

func TestMarkSeenFailureAllowsRetry(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.expect(rpc.MethodSetFocus).Return(nil)
	require.NoError(t, f.d.SetFocus(ctx, dm, true))

	gomock.InOrder(
		f.expect(rpc.MethodUpdateWatermark).Return(errRPC),
		f.expect(rpc.MethodUpdateWatermark).Return(nil),
	)
	_, err := f.d.MarkSeen(ctx, dm, 10)
	assert.ErrorIs(t, err, errRPC)
	moved, err := f.d.MarkSeen(ctx, dm, 10)
	require.NoError(t, err)
	assert.True(t, moved)
}

func TestSetPresence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var reqs []*pb.SetPresenceRequest
	f.expect(rpc.MethodSetPresence).DoAndReturn(func(_ context.Context, _ string, req, _ proto.Message) error {
		reqs = append(reqs, req.(*pb.SetPresenceRequest))
		return nil
	}).Times(3)

	require.NoError(t, f.d.SetPresence(ctx, chat.StatusAvailable, "*busy*"))
	require.NoError(t, f.d.SetPresence(ctx, chat.StatusAway, ""))
	require.NoError(t, f.d.SetPresence(ctx, chat.StatusUnavailable, ""))
	assert.Error(t, f.d.SetPresence(ctx, chat.StatusOffline, ""))

	require.Len(t, reqs, 3)
	assert.Equal(t, pb.ClientPresenceStateType_DESKTOP_ACTIVE, reqs[0].PresenceStateSetting.Type)
	assert.Equal(t, int64(720), reqs[0].PresenceStateSetting.TimeoutSecs)
	assert.False(t, reqs[0].DndSetting.DoNotDisturb)
	assert.Equal(t, "busy", render.Plain(reqs[0].MoodSetting.MoodMessage.MoodContent.Segment))
	assert.Equal(t, pb.ClientPresenceStateType_DESKTOP_IDLE, reqs[1].PresenceStateSetting.Type)
	assert.Nil(t, reqs[2].PresenceStateSetting)
	assert.True(t, reqs[2].DndSetting.DoNotDisturb)
	assert.Equal(t, int64(172800), reqs[2].DndSetting.TimeoutSecs)
	assert.Equal(t, chat.StatusUnavailable, f.d.Status())
}

func TestCreateConversationFailureLeavesDirectory(t *testing.T) {
	f := newFixture(t)
	f.expect(rpc.MethodCreateGroup).Return(errRPC)

	_, err := f.d.CreateConversation(context.Background(), true, "5", "hello")
	assert.ErrorIs(t, err, errRPC)
	_, ok := f.dir.ResolveDM("5")
	assert.False(t, ok)
	assert.Equal(t, []chat.UserID{"1"}, f.dir.Peers())
}

func TestSendIMCreatesDM(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.expect(rpc.MethodCreateGroup).DoAndReturn(func(_ context.Context, _ string, req, resp proto.Message) error {
			r := req.(*pb.CreateGroupRequest)
			assert.Equal(t, pb.GroupType_DM, r.Type)
			require.Len(t, r.InviteeIds, 1)
			assert.Equal(t, "5", r.InviteeIds[0].UserId.Id)
			resp.(*pb.CreateGroupResponse).Group = &pb.Group{GroupId: chat.DM("dm5").Proto()}
			return nil
		}),
		f.expect(rpc.MethodCreateTopic).DoAndReturn(func(_ context.Context, _ string, req, _ proto.Message) error {
			assert.Equal(t, "dm5", req.(*pb.CreateTopicRequest).EventRequestHeader.GroupId.DmId.DmId)
			return nil
		}),
		// known now: no second create.
		f.expect(rpc.MethodCreateTopic).Return(nil),
	)

	require.NoError(t, f.d.SendIM(context.Background(), "5", "hello"))
	conv, ok := f.dir.ResolveDM("5")
	require.True(t, ok)
	assert.Equal(t, chat.DM("dm5"), conv)
	require.NoError(t, f.d.SendIM(context.Background(), "5", "again"))
	assert.NoError(t, f.dir.CheckInvariants())
}

func TestCreateSpace(t *testing.T) {
	f := newFixture(t)
	f.expect(rpc.MethodCreateGroup).DoAndReturn(func(_ context.Context, _ string, _, resp proto.Message) error {
		resp.(*pb.CreateGroupResponse).Group = &pb.Group{GroupId: chat.Space("sp5").Proto(), Name: "team"}
		return nil
	})

	conv, err := f.d.CreateConversation(context.Background(), false, "5", "")
	require.NoError(t, err)
	assert.True(t, f.dir.IsKnownGroup(conv))
	snap, _ := f.dir.Snapshot(conv)
	assert.Equal(t, "team", snap.Name)
	assert.Equal(t, []chat.UserID{self, "5"}, snap.Members)
}

func TestArchive(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.d.ArchiveConversation(ctx, chat.DM("unknown")))

	f.expect(rpc.MethodModifyConversationView).Return(errRPC)
	assert.ErrorIs(t, f.d.ArchiveConversation(ctx, dm), errRPC)
	assert.True(t, f.dir.IsKnownDM(dm))

	f.ev.SetLastEventTimestamp(77)
	f.expect(rpc.MethodModifyConversationView).DoAndReturn(func(_ context.Context, _ string, req, _ proto.Message) error {
		r := req.(*pb.ModifyConversationViewRequest)
		assert.Equal(t, pb.ConversationView_ARCHIVED, r.NewView)
		assert.Equal(t, int64(77), r.LastEventTimestamp)
		return nil
	})
	require.NoError(t, f.d.ArchiveConversation(ctx, dm))
	assert.False(t, f.dir.IsKnown(dm))
	_, ok := f.dir.ResolveDM("1")
	assert.False(t, ok)
}

func TestArchiveCancelsUploads(t *testing.T) {
	f := newFixture(t)
	f.store.Put("img1", "cat.png", []byte("x"))

	f.uploader.EXPECT().CreateSession(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ int) (string, error) {
			<-ctx.Done()
			return "", ctx.Err()
		})
	f.expect(rpc.MethodModifyConversationView).Return(nil)

	done := make(chan error, 1)
	go func() { done <- f.d.SendMessage(context.Background(), space, "hi", "img1") }()

	require.Eventually(t, func() bool { return f.d.uploads.countByConv(space) == 1 }, time.Second, time.Millisecond)
	require.NoError(t, f.d.ArchiveConversation(context.Background(), space))

	select {
	case err := <-done:
		assert.ErrorIs(t, err, ErrConversationGone)
	case <-time.After(time.Second):
		t.Fatal("upload not cancelled")
	}
	assert.Equal(t, 0, f.d.uploads.countByConv(space))
}

func TestLeaveOrKick(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	kicked := chat.UserID("2")

	f.expect(rpc.MethodRemoveMemberships).DoAndReturn(func(_ context.Context, _ string, req, _ proto.Message) error {
		r := req.(*pb.RemoveMembershipsRequest)
		require.Len(t, r.UserIds, 1)
		assert.Equal(t, "2", r.UserIds[0].Id)
		return nil
	})
	require.NoError(t, f.d.LeaveOrKick(ctx, space, &kicked))
	assert.True(t, f.dir.IsKnownGroup(space))

	f.expect(rpc.MethodRemoveMemberships).DoAndReturn(func(_ context.Context, _ string, req, _ proto.Message) error {
		assert.Empty(t, req.(*pb.RemoveMembershipsRequest).UserIds)
		return nil
	})
	require.NoError(t, f.d.LeaveOrKick(ctx, space, nil))
	assert.False(t, f.dir.IsKnownGroup(space))

	assert.ErrorIs(t, f.d.LeaveOrKick(ctx, space, nil), ErrConversationGone)
}

func TestInviteAndRename(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.expect(rpc.MethodAddMembers).DoAndReturn(func(_ context.Context, _ string, req, _ proto.Message) error {
		assert.Len(t, req.(*pb.AddMembersRequest).InviteeIds, 2)
		return nil
	})
	require.NoError(t, f.d.Invite(ctx, space, []chat.UserID{"3", "4"}))

	f.expect(rpc.MethodUpdateGroup).DoAndReturn(func(_ context.Context, _ string, req, _ proto.Message) error {
		assert.Equal(t, "new", req.(*pb.UpdateGroupRequest).Name)
		return nil
	})
	require.NoError(t, f.d.RenameConversation(ctx, space, "new"))
	snap, _ := f.dir.Snapshot(space)
	assert.Equal(t, "", snap.Name)
}

func TestSetTypingRunsInBackground(t *testing.T) {
	f := newFixture(t)
	done := make(chan struct{})
	f.expect(rpc.MethodSetTypingState).DoAndReturn(func(_ context.Context, _ string, req, _ proto.Message) error {
		assert.Equal(t, pb.TypingState_PAUSED, req.(*pb.SetTypingStateRequest).State)
		close(done)
		return errRPC
	})

	require.NoError(t, f.d.SetTyping(dm, chat.TypingPaused))
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("typing not sent")
	}
}

func TestNewMessage(t *testing.T) {
	r := render.NewMarkdown()

	m, err := NewMessage(r, dm, "/me waves", "")
	require.NoError(t, err)
	assert.True(t, m.Action)
	assert.Equal(t, "waves", render.Plain(m.Segments))

	_, err = NewMessage(r, dm, "", "")
	assert.True(t, errors.Is(err, ErrEmptyMessage))

	m, err = NewMessage(r, dm, "", "img1")
	require.NoError(t, err)
	assert.Empty(t, m.Segments)

	req := m.request(envelope.NewBuilder(auth.NewStaticClient("tok")).BuildEventHeader(dm), nil)
	assert.NotZero(t, m.ClientID)
	assert.Equal(t, m.ClientID, req.EventRequestHeader.ClientGeneratedId)
	assert.Empty(t, req.Annotations)
}

func TestSendToForgottenConversation(t *testing.T) {
	f := newFixture(t)

	m, err := NewMessage(render.NewMarkdown(), space, "hi", "")
	require.NoError(t, err)
	require.True(t, f.dir.ForgetGroup(space))

	err = f.d.send(context.Background(), m)
	assert.True(t, errors.Is(err, ErrConversationGone))
	assert.Zero(t, m.ClientID)
	assert.Equal(t, 0, f.ev.Pending().Len())
}
