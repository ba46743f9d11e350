package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang/glog"

	"github.com/mqy/gchat/chat"
	pb "github.com/mqy/gchat/proto"
)

const (
	presenceTimeoutSecs = 720
	dndTimeoutSecs      = 172800
)

var errUnsupportedStatus = errors.New("dispatch: unsupported status")

// SetTyping reports the typing state in the background. Failures are logged.
func (d *Dispatcher) SetTyping(conv chat.ConversationID, state chat.TypingState) error {
	if err := chat.CheckConversation(conv); err != nil {
		return err
	}
	req := &pb.SetTypingStateRequest{GroupId: conv.Proto()}
	switch state {
	case chat.Typing:
		req.State = pb.TypingState_TYPING
	case chat.TypingPaused:
		req.State = pb.TypingState_PAUSED
	default:
		req.State = pb.TypingState_STOPPED
	}

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		err := d.client.SetTypingState(context.Background(), req)
		if err != nil {
			glog.Errorf("dispatch: typing in %s: %v", conv, err)
		}
		result("typing", err)
	}()
	return nil
}

// SetFocus tells the server whether conv is on screen.
func (d *Dispatcher) SetFocus(ctx context.Context, conv chat.ConversationID, focused bool) (err error) {
	defer func() { result("focus", err) }()

	if err := chat.CheckConversation(conv); err != nil {
		return err
	}
	typ := pb.FocusType_UNFOCUSED
	if focused {
		typ = pb.FocusType_FOCUSED
	}
	if err := d.client.SetFocus(ctx, &pb.SetFocusRequest{GroupId: conv.Proto(), Type: typ}); err != nil {
		return fmt.Errorf("focus %s: %w", conv, err)
	}

	d.Lock()
	if focused {
		d.focused = conv
	} else if d.focused == conv {
		d.focused = chat.ConversationID{}
	}
	d.Unlock()
	return nil
}

func (d *Dispatcher) Focused() chat.ConversationID {
	d.Lock()
	defer d.Unlock()
	return d.focused
}

// MarkSeen moves the read marker of conv to ts. Nothing is sent unless conv
// is focused, self is available and ts is past the current marker. It reports
// whether the marker moved.
func (d *Dispatcher) MarkSeen(ctx context.Context, conv chat.ConversationID, ts int64) (moved bool, err error) {
	if err := chat.CheckConversation(conv); err != nil {
		return false, err
	}
	snap, ok := d.dir.Snapshot(conv)
	if !ok {
		return false, nil
	}

	d.Lock()
	prev := d.seen[conv]
	if d.focused != conv || d.status != chat.StatusAvailable || ts <= prev || ts <= snap.LastRead {
		d.Unlock()
		return false, nil
	}
	d.seen[conv] = ts
	d.Unlock()

	err = d.client.UpdateWatermark(ctx, &pb.UpdateWatermarkRequest{GroupId: conv.Proto(), LastReadTime: ts})
	result("mark_seen", err)
	if err != nil {
		d.Lock()
		if d.seen[conv] == ts {
			d.seen[conv] = prev
		}
		d.Unlock()
		return false, fmt.Errorf("mark seen %s: %w", conv, err)
	}

	if err := d.exec.Do(ctx, func() { moved = d.dir.MarkRead(conv, ts) }); err != nil {
		return false, err
	}
	return moved, nil
}

// SetPresence sets the account's own status and mood message.
func (d *Dispatcher) SetPresence(ctx context.Context, status chat.Status, mood string) (err error) {
	defer func() { result("presence", err) }()

	req := &pb.SetPresenceRequest{DndSetting: &pb.DndSetting{}}
	switch status {
	case chat.StatusAvailable:
		req.PresenceStateSetting = &pb.PresenceStateSetting{
			TimeoutSecs: presenceTimeoutSecs,
			Type:        pb.ClientPresenceStateType_DESKTOP_ACTIVE,
		}
	case chat.StatusAway:
		req.PresenceStateSetting = &pb.PresenceStateSetting{
			TimeoutSecs: presenceTimeoutSecs,
			Type:        pb.ClientPresenceStateType_DESKTOP_IDLE,
		}
	case chat.StatusUnavailable:
		req.DndSetting = &pb.DndSetting{DoNotDisturb: true, TimeoutSecs: dndTimeoutSecs}
	default:
		return fmt.Errorf("%w: %v", errUnsupportedStatus, status)
	}

	content := &pb.MoodContent{}
	if mood != "" {
		content.Segment = d.renderer.Render(mood)
	}
	req.MoodSetting = &pb.MoodSetting{MoodMessage: &pb.MoodMessage{MoodContent: content}}

	if err := d.client.SetPresence(ctx, req); err != nil {
		return fmt.Errorf("set presence: %w", err)
	}
	d.Lock()
	d.status = status
	d.Unlock()
	return nil
}

func (d *Dispatcher) Status() chat.Status {
	d.Lock()
	defer d.Unlock()
	return d.status
}

// ArchiveConversation hides conv from the inbox. The directory forgets conv
// once the server acknowledged; uploads in flight for it are cancelled.
// Archiving an unknown conversation does nothing.
func (d *Dispatcher) ArchiveConversation(ctx context.Context, conv chat.ConversationID) (err error) {
	if err := chat.CheckConversation(conv); err != nil {
		return err
	}
	if !d.dir.IsKnown(conv) {
		return nil
	}
	defer func() { result("archive", err) }()

	err = d.client.ModifyConversationView(ctx, &pb.ModifyConversationViewRequest{
		GroupId:            conv.Proto(),
		NewView:            pb.ConversationView_ARCHIVED,
		LastEventTimestamp: d.events.LastEventTimestamp(),
	})
	if err != nil {
		return fmt.Errorf("archive %s: %w", conv, err)
	}
	if err := d.exec.Do(ctx, func() { d.dir.Archive(conv) }); err != nil {
		return err
	}
	d.forget(conv)
	return nil
}

// LeaveOrKick removes target from the space conv. A nil target removes self,
// after which the space is forgotten.
func (d *Dispatcher) LeaveOrKick(ctx context.Context, conv chat.ConversationID, target *chat.UserID) (err error) {
	if err := chat.CheckConversation(conv); err != nil {
		return err
	}
	req := &pb.RemoveMembershipsRequest{}
	if target != nil {
		if err := chat.CheckUser(*target); err != nil {
			return err
		}
		req.UserIds = []*pb.UserId{target.Proto()}
	}
	if !d.dir.IsKnownGroup(conv) {
		return fmt.Errorf("%w: %s", ErrConversationGone, conv)
	}
	defer func() { result("leave", err) }()

	req.EventRequestHeader = d.env.BuildEventHeader(conv)
	if err := d.client.RemoveMemberships(ctx, req); err != nil {
		return fmt.Errorf("remove from %s: %w", conv, err)
	}
	if target != nil {
		return nil
	}
	if err := d.exec.Do(ctx, func() { d.dir.ForgetGroup(conv) }); err != nil {
		return err
	}
	d.forget(conv)
	return nil
}

// forget drops local state of a conversation that left the directory.
func (d *Dispatcher) forget(conv chat.ConversationID) {
	if n := d.uploads.cancelConv(conv); n > 0 {
		glog.Infof("dispatch: cancelled %d uploads for %s", n, conv)
	}
	d.Lock()
	delete(d.seen, conv)
	if d.focused == conv {
		d.focused = chat.ConversationID{}
	}
	d.Unlock()
}

// Invite adds users to the space conv.
func (d *Dispatcher) Invite(ctx context.Context, conv chat.ConversationID, users []chat.UserID) (err error) {
	if err := chat.CheckConversation(conv); err != nil {
		return err
	}
	if len(users) == 0 {
		return fmt.Errorf("%w: no invitees", chat.ErrInvalidID)
	}
	invitees := make([]*pb.InviteeId, 0, len(users))
	for _, u := range users {
		if err := chat.CheckUser(u); err != nil {
			return err
		}
		invitees = append(invitees, &pb.InviteeId{UserId: u.Proto()})
	}
	defer func() { result("invite", err) }()

	err = d.client.AddMembers(ctx, &pb.AddMembersRequest{
		EventRequestHeader: d.env.BuildEventHeader(conv),
		InviteeIds:         invitees,
	})
	if err != nil {
		return fmt.Errorf("invite to %s: %w", conv, err)
	}
	return nil
}

// RenameConversation renames conv. The directory follows when the rename
// event arrives.
func (d *Dispatcher) RenameConversation(ctx context.Context, conv chat.ConversationID, name string) (err error) {
	if err := chat.CheckConversation(conv); err != nil {
		return err
	}
	defer func() { result("rename", err) }()

	err = d.client.UpdateGroup(ctx, &pb.UpdateGroupRequest{
		EventRequestHeader: d.env.BuildEventHeader(conv),
		Name:               name,
	})
	if err != nil {
		return fmt.Errorf("rename %s: %w", conv, err)
	}
	return nil
}
