package events

import (
	"errors"
	"fmt"

	"github.com/mqy/gchat/chat"
	"github.com/mqy/gchat/presence"
	pb "github.com/mqy/gchat/proto"
)

var errMalformed = errors.New("malformed event")

// Decode converts one wire event. Typing and presence events are ephemeral:
// their revision is forced to zero.
func Decode(ev *pb.Event, opts presence.Options) (chat.Event, error) {
	if ev == nil {
		return nil, fmt.Errorf("%w: nil", errMalformed)
	}
	body := ev.GetBody()
	h := chat.Header{
		Timestamp: ev.GetGroupRevision().GetTimestamp(),
		Actor:     chat.UserID(ev.GetUserId().GetId()),
	}

	// presence updates are not scoped to a conversation.
	if ev.GetType() == pb.EventType_USER_STATUS_UPDATED {
		p, err := presence.FromWire(body.GetUserStatusUpdated().GetUserPresence(), opts)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errMalformed, err)
		}
		h.Timestamp = 0
		return &chat.PresenceChanged{Header: h, Presence: p}, nil
	}

	conv, err := chat.FromGroupId(ev.GetGroupId())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformed, err)
	}
	h.Conv = conv

	switch ev.GetType() {
	case pb.EventType_MESSAGE_POSTED:
		msg := body.GetMessagePosted().GetMessage()
		if msg == nil {
			return nil, fmt.Errorf("%w: message posted without message", errMalformed)
		}
		return decodeMessage(h, msg)

	case pb.EventType_MEMBERSHIP_CHANGED:
		mc := body.GetMembershipChanged()
		if mc == nil {
			return nil, fmt.Errorf("%w: membership change without body", errMalformed)
		}
		out := &chat.MembershipChanged{
			Header: h,
			Joined: mc.GetType() == pb.MembershipChangeType_JOINED,
		}
		for _, u := range mc.GetAffectedMembers() {
			id := chat.UserID(u.GetId())
			if id.Valid() {
				out.Members = append(out.Members, id)
			}
		}
		return out, nil

	case pb.EventType_TYPING_STATE_CHANGED:
		tc := body.GetTypingStateChanged()
		user := chat.UserID(tc.GetUserId().GetId())
		if err := chat.CheckUser(user); err != nil {
			return nil, fmt.Errorf("%w: typing: %v", errMalformed, err)
		}
		h.Timestamp = 0
		return &chat.TypingChanged{Header: h, User: user, State: typingState(tc.GetState())}, nil

	case pb.EventType_READ_RECEIPT_CHANGED:
		rc := body.GetReadReceiptChanged()
		user := chat.UserID(rc.GetUserId().GetId())
		if err := chat.CheckUser(user); err != nil {
			return nil, fmt.Errorf("%w: read receipt: %v", errMalformed, err)
		}
		return &chat.ReadReceipt{Header: h, User: user, ReadTime: rc.GetReadTime()}, nil

	case pb.EventType_GROUP_UPDATED:
		return &chat.ConversationRenamed{Header: h, Name: body.GetGroupUpdated().GetNewName()}, nil

	case pb.EventType_GROUP_DELETED:
		return &chat.ConversationDeleted{Header: h}, nil
	}
	return nil, fmt.Errorf("%w: type %d", errMalformed, ev.GetType())
}

func decodeMessage(h chat.Header, msg *pb.Message) (*chat.MessagePosted, error) {
	sender := chat.UserID(msg.GetCreator().GetId())
	if err := chat.CheckUser(sender); err != nil {
		return nil, fmt.Errorf("%w: sender: %v", errMalformed, err)
	}
	out := &chat.MessagePosted{
		Header:     h,
		MessageID:  msg.GetId(),
		Sender:     sender,
		Segments:   msg.GetMessageContent().GetSegment(),
		ClientID:   msg.GetClientGeneratedId(),
		CreateTime: msg.GetCreateTime(),
	}
	for _, a := range msg.GetAnnotations() {
		switch a.GetType() {
		case pb.AnnotationType_ME_ACTION:
			out.Action = true
		case pb.AnnotationType_DRIVE:
			if id := a.GetDriveMetadata().GetId(); id != "" {
				out.Attachments = append(out.Attachments, id)
			}
		}
	}
	return out, nil
}

func typingState(s pb.TypingState) chat.TypingState {
	switch s {
	case pb.TypingState_TYPING:
		return chat.Typing
	case pb.TypingState_PAUSED:
		return chat.TypingPaused
	}
	return chat.TypingStopped
}
