// Package envelope builds the headers every RPC carries: the request header
// (client identity and auth token) and the event header (group id and a
// client generated correlation id).
package envelope

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/mqy/gchat/auth"
	"github.com/mqy/gchat/chat"
	pb "github.com/mqy/gchat/proto"
)

const (
	ClientType    = pb.ClientType_IOS
	ClientVersion = int64(2440378181258)
)

type Builder struct {
	auth auth.Client
}

func NewBuilder(a auth.Client) *Builder {
	return &Builder{auth: a}
}

func (b *Builder) BuildRequestHeader() (*pb.RequestHeader, error) {
	token, err := b.auth.Token()
	if err != nil {
		return nil, fmt.Errorf("request header: %w", err)
	}
	return &pb.RequestHeader{
		ClientType:    ClientType,
		ClientVersion: ClientVersion,
		AuthToken:     token,
	}, nil
}

// BuildEventHeader returns a header for conv with a fresh correlation id. conv
// must be valid.
func (b *Builder) BuildEventHeader(conv chat.ConversationID) *pb.EventRequestHeader {
	return &pb.EventRequestHeader{
		GroupId:           conv.Proto(),
		ClientGeneratedId: NewClientID(),
	}
}

// NewClientID returns a random non-zero 63-bit id.
func NewClientID() uint64 {
	var buf [8]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			panic(fmt.Sprintf("crypto/rand: %v", err))
		}
		if id := binary.BigEndian.Uint64(buf[:]) >> 1; id != 0 {
			return id
		}
	}
}
