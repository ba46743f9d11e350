package stream

import (
	"errors"
	"fmt"

	"github.com/gogo/protobuf/proto"
	"google.golang.org/protobuf/encoding/protowire"

	pb "github.com/mqy/gchat/proto"
)

var ErrBadFrame = errors.New("stream: bad frame")

// SplitFrame decodes one websocket frame: a sequence of varint length
// prefixed StreamEventsResponse records.
func SplitFrame(data []byte) ([]*pb.StreamEventsResponse, error) {
	var out []*pb.StreamEventsResponse
	for len(data) > 0 {
		size, n := protowire.ConsumeVarint(data)
		if n < 0 {
			return nil, fmt.Errorf("%w: length: %v", ErrBadFrame, protowire.ParseError(n))
		}
		data = data[n:]
		if size > uint64(len(data)) {
			return nil, fmt.Errorf("%w: record of %d bytes, %d left", ErrBadFrame, size, len(data))
		}
		resp := &pb.StreamEventsResponse{}
		if err := proto.Unmarshal(data[:size], resp); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadFrame, err)
		}
		out = append(out, resp)
		data = data[size:]
	}
	return out, nil
}

// AppendFrame appends one length prefixed record to b.
func AppendFrame(b []byte, resp *pb.StreamEventsResponse) ([]byte, error) {
	data, err := proto.Marshal(resp)
	if err != nil {
		return b, err
	}
	b = protowire.AppendVarint(b, uint64(len(data)))
	return append(b, data...), nil
}
