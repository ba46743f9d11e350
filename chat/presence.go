package chat

// Status is the application-level presence status.
type Status int

const (
	StatusAvailable Status = iota
	StatusAway
	// StatusUnavailable is do-not-disturb. It is only set for self.
	StatusUnavailable
	// StatusInvisible is reported for contacts that are not reachable. The
	// service has no offline state.
	StatusInvisible
	// StatusOffline replaces StatusInvisible when the account asks for it.
	StatusOffline
)

func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "available"
	case StatusAway:
		return "away"
	case StatusUnavailable:
		return "unavailable"
	case StatusInvisible:
		return "invisible"
	case StatusOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// Presence is a contact's reachability.
type Presence struct {
	User       UserID
	Reachable  bool
	Active     bool
	DND        bool
	StatusText string
	Status     Status
}

// TypingState is the tri-state typing indicator.
type TypingState int

const (
	TypingStopped TypingState = iota
	TypingPaused
	Typing
)

func (s TypingState) String() string {
	switch s {
	case Typing:
		return "typing"
	case TypingPaused:
		return "paused"
	default:
		return "stopped"
	}
}
