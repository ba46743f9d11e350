package notify

import (
	"github.com/golang/glog"

	"github.com/mqy/gchat/chat"
	"github.com/mqy/gchat/render"
)

// LogSink writes notifications to glog.
type LogSink struct{}

func (LogSink) BuddyPresenceChanged(p chat.Presence) {
	glog.Infof("presence: %s %s reachable=%v status=%q", p.User, p.Status, p.Reachable, p.StatusText)
}

func (LogSink) BuddyProfileUpdated(user chat.UserID, alias, avatarRef string) {
	glog.Infof("profile: %s alias=%q avatar=%s", user, alias, avatarRef)
}

func (LogSink) MessageReceived(m *chat.MessagePosted) {
	text := render.Plain(m.Segments)
	if m.Action {
		text = "/me " + text
	}
	glog.Infof("message: %s from %s at %d: %s", m.Conv, m.Sender, m.CreateTime, text)
	for _, a := range m.Attachments {
		glog.Infof("message: %s attachment %s", m.Conv, a)
	}
}

func (LogSink) ConversationListChanged() {
	glog.Info("conversation list changed")
}

func (LogSink) TypingStateChanged(conv chat.ConversationID, user chat.UserID, state chat.TypingState) {
	glog.V(5).Infof("typing: %s %s %s", conv, user, state)
}
