// Package presence maps wire presence to contact status and polls it.
package presence

import (
	"fmt"

	"github.com/mqy/gchat/chat"
	pb "github.com/mqy/gchat/proto"
)

// Options of the status mapping.
type Options struct {
	// TreatInvisibleAsOffline reports unreachable contacts as offline.
	TreatInvisibleAsOffline bool
}

// FromWire maps one wire presence. A contact is reachable when it accepts
// notifications or is active; the service has no offline state, so an
// unreachable contact is invisible unless the options say otherwise.
func FromWire(up *pb.UserPresence, opts Options) (chat.Presence, error) {
	user := chat.UserID(up.GetUserId().GetId())
	if err := chat.CheckUser(user); err != nil {
		return chat.Presence{}, fmt.Errorf("presence: %w", err)
	}

	p := chat.Presence{
		User:       user,
		Active:     up.GetPresence() == pb.PresenceState_ACTIVE,
		DND:        up.GetDndState() == pb.DndState_DND,
		StatusText: up.GetUserStatus().GetCustomStatus().GetStatusText(),
	}
	p.Reachable = p.Active || up.GetDndState() == pb.DndState_AVAILABLE

	switch {
	case p.Reachable && p.Active:
		p.Status = chat.StatusAvailable
	case p.Reachable:
		p.Status = chat.StatusAway
	case opts.TreatInvisibleAsOffline:
		p.Status = chat.StatusOffline
	default:
		p.Status = chat.StatusInvisible
	}
	return p, nil
}
