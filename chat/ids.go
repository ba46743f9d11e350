package chat

import (
	"fmt"

	pb "github.com/mqy/gchat/proto"
)

const (
	maxUserIDLen         = 64
	maxConversationIDLen = 128
)

// Kind tags a conversation id.
type Kind int

const (
	KindUnknown Kind = iota
	KindDM           // one-on-one, two-party
	KindSpace        // named group room
)

func (k Kind) String() string {
	switch k {
	case KindDM:
		return "dm"
	case KindSpace:
		return "space"
	default:
		return "unknown"
	}
}

// UserID is an opaque account id issued by the server.
type UserID string

// Valid reports whether u has the server's account id shape: 1..64 ASCII digits.
func (u UserID) Valid() bool {
	if len(u) == 0 || len(u) > maxUserIDLen {
		return false
	}
	for i := 0; i < len(u); i++ {
		if u[i] < '0' || u[i] > '9' {
			return false
		}
	}
	return true
}

func (u UserID) Proto() *pb.UserId {
	return &pb.UserId{Id: string(u)}
}

// ConversationID is either a DM token or a space token.
type ConversationID struct {
	Kind Kind
	ID   string
}

func DM(id string) ConversationID {
	return ConversationID{Kind: KindDM, ID: id}
}

func Space(id string) ConversationID {
	return ConversationID{Kind: KindSpace, ID: id}
}

func (c ConversationID) String() string {
	return c.Kind.String() + ":" + c.ID
}

func (c ConversationID) IsZero() bool {
	return c.Kind == KindUnknown && c.ID == ""
}

func (c ConversationID) IsDM() bool {
	return c.Kind == KindDM
}

// Valid reports whether c is tagged and its token is 1..128 characters of [A-Za-z0-9_-].
func (c ConversationID) Valid() bool {
	if c.Kind != KindDM && c.Kind != KindSpace {
		return false
	}
	if len(c.ID) == 0 || len(c.ID) > maxConversationIDLen {
		return false
	}
	for i := 0; i < len(c.ID); i++ {
		ch := c.ID[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9', ch == '_', ch == '-':
		default:
			return false
		}
	}
	return true
}

// Proto converts c to the wire group id. c must be valid.
func (c ConversationID) Proto() *pb.GroupId {
	if c.Kind == KindDM {
		return &pb.GroupId{DmId: &pb.DmId{DmId: c.ID}}
	}
	return &pb.GroupId{SpaceId: &pb.SpaceId{SpaceId: c.ID}}
}

// FromGroupId converts a wire group id. It fails when neither variant is set.
func FromGroupId(g *pb.GroupId) (ConversationID, error) {
	if id := g.GetDmId().GetDmId(); id != "" {
		return DM(id), nil
	}
	if id := g.GetSpaceId().GetSpaceId(); id != "" {
		return Space(id), nil
	}
	return ConversationID{}, fmt.Errorf("group id: neither dm_id nor space_id is set")
}

// CheckUser returns an ErrInvalidID error when u is malformed.
func CheckUser(u UserID) error {
	if !u.Valid() {
		return fmt.Errorf("%w: user %q", ErrInvalidID, string(u))
	}
	return nil
}

// CheckConversation returns an ErrInvalidID error when c is malformed.
func CheckConversation(c ConversationID) error {
	if !c.Valid() {
		return fmt.Errorf("%w: conversation %q", ErrInvalidID, c.String())
	}
	return nil
}
