package dispatch

import (
	"github.com/mqy/gchat/chat"
	pb "github.com/mqy/gchat/proto"
	"github.com/mqy/gchat/render"
)

// Message is an outbound message.
type Message struct {
	Conv          chat.ConversationID
	Segments      []*pb.Segment
	Action        bool
	AttachmentRef string
	// ClientID is set when the message is sent; its echo carries the same id.
	ClientID uint64
}

// NewMessage renders markup for conv. A leading "/me " marks an action.
func NewMessage(r render.Renderer, conv chat.ConversationID, markup, attachmentRef string) (*Message, error) {
	text, action := render.SplitAction(markup)
	m := &Message{
		Conv:          conv,
		Segments:      r.Render(text),
		Action:        action,
		AttachmentRef: attachmentRef,
	}
	if len(m.Segments) == 0 && attachmentRef == "" {
		return nil, ErrEmptyMessage
	}
	return m, nil
}

func (m *Message) request(header *pb.EventRequestHeader, drive *pb.Annotation) *pb.CreateTopicRequest {
	m.ClientID = header.ClientGeneratedId

	var annotations []*pb.Annotation
	if m.Action {
		annotations = append(annotations, &pb.Annotation{Type: pb.AnnotationType_ME_ACTION})
	}
	if drive != nil {
		annotations = append(annotations, drive)
	}
	return &pb.CreateTopicRequest{
		EventRequestHeader: header,
		MessageContent:     &pb.MessageContent{Segment: m.Segments},
		Annotations:        annotations,
	}
}
