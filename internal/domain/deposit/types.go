package deposit

type Status string

const (
	StatusSkipped    Status = "SKIPPED"
	StatusAuthorized Status = "AUTHORIZED"
	StatusCaptured   Status = "CAPTURED"
	StatusReleased   Status = "RELEASED"
	StatusFailed     Status = "FAILED"
	StatusExpired    Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusSkipped, StatusAuthorized, StatusCaptured, StatusReleased, StatusFailed, StatusExpired:
		return true
	default:
		return false
	}
}

// Actionable reports whether admin release/capture may act on the hold.
// AUTHORIZED is the only state with outgoing transitions.
func (s Status) Actionable() bool {
	return s == StatusAuthorized
}
