// Package notify carries session notifications out to the UI layer.
package notify

import (
	"github.com/mqy/gchat/chat"
	"github.com/mqy/gchat/metrics"
)

//go:generate mockgen -destination=mock/mock_notify.go -package=mock_notify github.com/mqy/gchat/notify ISink,IKafkaWriter

// ISink receives notifications. Methods are called from the session loop and
// must not block.
type ISink interface {
	BuddyPresenceChanged(p chat.Presence)
	// BuddyProfileUpdated reports a changed alias or avatar. avatarRef is empty
	// when only the alias changed.
	BuddyProfileUpdated(user chat.UserID, alias, avatarRef string)
	MessageReceived(m *chat.MessagePosted)
	ConversationListChanged()
	TypingStateChanged(conv chat.ConversationID, user chat.UserID, state chat.TypingState)
}

// Multi fans notifications out to every sink in order.
type Multi []ISink

func (m Multi) BuddyPresenceChanged(p chat.Presence) {
	metrics.Notifications.WithLabelValues("presence").Inc()
	for _, s := range m {
		s.BuddyPresenceChanged(p)
	}
}

func (m Multi) BuddyProfileUpdated(user chat.UserID, alias, avatarRef string) {
	metrics.Notifications.WithLabelValues("profile").Inc()
	for _, s := range m {
		s.BuddyProfileUpdated(user, alias, avatarRef)
	}
}

func (m Multi) MessageReceived(msg *chat.MessagePosted) {
	metrics.Notifications.WithLabelValues("message").Inc()
	for _, s := range m {
		s.MessageReceived(msg)
	}
}

func (m Multi) ConversationListChanged() {
	metrics.Notifications.WithLabelValues("conversations").Inc()
	for _, s := range m {
		s.ConversationListChanged()
	}
}

func (m Multi) TypingStateChanged(conv chat.ConversationID, user chat.UserID, state chat.TypingState) {
	metrics.Notifications.WithLabelValues("typing").Inc()
	for _, s := range m {
		s.TypingStateChanged(conv, user, state)
	}
}
