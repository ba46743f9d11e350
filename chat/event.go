package chat

import (
	pb "github.com/mqy/gchat/proto"
)

// Event is one server event. The set of implementations is closed: MessagePosted,
// MembershipChanged, TypingChanged, ReadReceipt, PresenceChanged,
// ConversationRenamed and ConversationDeleted.
type Event interface {
	Conversation() ConversationID
	// Revision is the revision timestamp in microseconds. Zero marks an
	// ephemeral event that is not ordered against the conversation watermark.
	Revision() int64
	isEvent()
}

// Header carries the fields every event has.
type Header struct {
	Conv      ConversationID
	Timestamp int64
	Actor     UserID
}

func (h Header) Conversation() ConversationID { return h.Conv }
func (h Header) Revision() int64              { return h.Timestamp }
func (Header) isEvent()                       {}

type MessagePosted struct {
	Header
	MessageID string
	Sender    UserID
	Segments  []*pb.Segment
	// Action is set for "/me" messages.
	Action bool
	// ClientID is the sender's correlation id, zero when absent.
	ClientID    uint64
	Attachments []string
	CreateTime  int64
}

type MembershipChanged struct {
	Header
	Joined  bool
	Members []UserID
}

type TypingChanged struct {
	Header
	User  UserID
	State TypingState
}

// ReadReceipt reports that User has read the conversation up to ReadTime.
type ReadReceipt struct {
	Header
	User     UserID
	ReadTime int64
}

type PresenceChanged struct {
	Header
	Presence Presence
}

type ConversationRenamed struct {
	Header
	Name string
}

type ConversationDeleted struct {
	Header
}
