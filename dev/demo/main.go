package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"
	"time"

	kafka "github.com/segmentio/kafka-go"

	"github.com/mqy/gchat/notify"
)

// The demo tails the notifications a running gchat publishes to `kafka`.

const (
	kafkaTopic = "gchat-notifications"
)

var (
	kafkaEndpoints = flag.String("kafka-endpoints", "127.0.0.1:9092", "kafka endpoints, ',' delimitted.")
	groupID        = flag.String("group-id", "gchat-demo", "kafka consumer group")
	showTyping     = flag.Bool("show-typing", false, "print typing records")
)

func main() {
	flag.Parse()

	if len(*kafkaEndpoints) == 0 {
		panic("--kafka-endpoints is required.")
	}

	endpoints := strings.Split(*kafkaEndpoints, ",")

	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: endpoints,
		Topic:   kafkaTopic,
		GroupID: *groupID,
		Dialer: &kafka.Dialer{
			Timeout:   10 * time.Second,
			DualStack: true,
		},
		MaxWait: time.Second,
	})
	defer r.Close()

	// kafka-topics.sh --bootstrap-server localhost:9092 --topic gchat-notifications --create
	// kafka-topics.sh --bootstrap-server localhost:9092 --topic gchat-notifications --delete

	ctx := context.Background()
	for {
		msg, err := r.ReadMessage(ctx)
		if err != nil {
			panic(err)
		}

		var rec notify.Record
		if err := json.Unmarshal(msg.Value, &rec); err != nil {
			fmt.Printf("offset %d: bad record: %v\n", msg.Offset, err)
			continue
		}
		if rec.Kind == notify.KindTyping && !*showTyping {
			continue
		}
		fmt.Println(format(&rec))
	}
}

func format(rec *notify.Record) string {
	switch rec.Kind {
	case notify.KindMessage:
		text := rec.Text
		if rec.Action {
			text = "* " + rec.User + " " + text
		}
		s := fmt.Sprintf("[%s] %s: %s", rec.Conversation, rec.User, text)
		for _, a := range rec.Attachments {
			s += "\n  attachment: " + a
		}
		return s
	case notify.KindPresence:
		return fmt.Sprintf("%s is %s (reachable=%v)", rec.User, rec.Status, rec.Reachable)
	case notify.KindProfile:
		return fmt.Sprintf("%s is now known as %q", rec.User, rec.Alias)
	case notify.KindTyping:
		return fmt.Sprintf("[%s] %s %s", rec.Conversation, rec.User, rec.Status)
	default:
		return rec.Kind
	}
}
