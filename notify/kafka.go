package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang/glog"
	"github.com/segmentio/kafka-go"

	"github.com/mqy/gchat/chat"
	"github.com/mqy/gchat/render"
)

const (
	kafkaWriteTimeout = 3 * time.Second
	kafkaQueueSize    = 1024
)

type IKafkaWriter interface {
	WriteMessages(context.Context, ...kafka.Message) error
	Close() error
}

// Record is the kafka message value.
type Record struct {
	Kind         string   `json:"kind"`
	Conversation string   `json:"conv,omitempty"`
	User         string   `json:"user,omitempty"`
	Alias        string   `json:"alias,omitempty"`
	Avatar       string   `json:"avatar,omitempty"`
	Text         string   `json:"text,omitempty"`
	Action       bool     `json:"action,omitempty"`
	Attachments  []string `json:"attachments,omitempty"`
	Timestamp    int64    `json:"ts,omitempty"`
	Reachable    bool     `json:"reachable,omitempty"`
	Status       string   `json:"status,omitempty"`
}

// Record kinds.
const (
	KindPresence      = "presence"
	KindProfile       = "profile"
	KindMessage       = "message"
	KindConversations = "conversations"
	KindTyping        = "typing"
)

// KafkaSink publishes notifications as JSON records. Records are queued and
// written by Run; when the queue is full new records are dropped.
type KafkaSink struct {
	writer   IKafkaWriter
	maxBytes int
	queue    chan kafka.Message
}

func NewKafkaSink(writer IKafkaWriter, maxBytes int) *KafkaSink {
	return &KafkaSink{
		writer:   writer,
		maxBytes: maxBytes,
		queue:    make(chan kafka.Message, kafkaQueueSize),
	}
}

// Run writes queued records until ctx is done, then closes the writer.
func (k *KafkaSink) Run(ctx context.Context) {
	glog.Info("kafka sink: run")
	defer func() {
		if err := k.writer.Close(); err != nil {
			glog.Errorf("kafka sink: close error: %v", err)
		}
		glog.Info("kafka sink: exited")
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case km := <-k.queue:
			ctx2, cancel := context.WithTimeout(ctx, kafkaWriteTimeout)
			if err := k.writer.WriteMessages(ctx2, km); err != nil {
				glog.Errorf("kafka sink: error write to kafka: %v", err)
			}
			cancel()
		}
	}
}

func (k *KafkaSink) publish(key string, r *Record) {
	value, err := json.Marshal(r)
	if err != nil {
		glog.Errorf("kafka sink: error marshal record: %+v, err: %v", r, err)
		return
	}
	if k.maxBytes > 0 && len(value) > k.maxBytes {
		glog.Errorf("kafka sink: %s record exceeds max limit: %d bytes", r.Kind, k.maxBytes)
		return
	}

	select {
	case k.queue <- kafka.Message{Key: []byte(key), Value: value}:
	default:
		glog.Errorf("kafka sink: queue is full, drop %s record", r.Kind)
	}
}

func (k *KafkaSink) BuddyPresenceChanged(p chat.Presence) {
	k.publish(string(p.User), &Record{
		Kind:      KindPresence,
		User:      string(p.User),
		Reachable: p.Reachable,
		Status:    p.Status.String(),
		Text:      p.StatusText,
	})
}

func (k *KafkaSink) BuddyProfileUpdated(user chat.UserID, alias, avatarRef string) {
	k.publish(string(user), &Record{Kind: KindProfile, User: string(user), Alias: alias, Avatar: avatarRef})
}

func (k *KafkaSink) MessageReceived(m *chat.MessagePosted) {
	conv := m.Conv.String()
	k.publish(conv, &Record{
		Kind:         KindMessage,
		Conversation: conv,
		User:         string(m.Sender),
		Text:         render.Plain(m.Segments),
		Action:       m.Action,
		Attachments:  m.Attachments,
		Timestamp:    m.CreateTime,
	})
}

func (k *KafkaSink) ConversationListChanged() {
	k.publish(KindConversations, &Record{Kind: KindConversations})
}

func (k *KafkaSink) TypingStateChanged(conv chat.ConversationID, user chat.UserID, state chat.TypingState) {
	k.publish(conv.String(), &Record{
		Kind:         KindTyping,
		Conversation: conv.String(),
		User:         string(user),
		Status:       state.String(),
	})
}
