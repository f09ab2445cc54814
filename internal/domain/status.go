package domain

// TripStatus walks a strictly linear lifecycle:
// requested -> accepted -> in_transit -> completed -> paid.
// No branch, no cancellation, no regression.
type TripStatus string

const (
	StatusRequested TripStatus = "requested"
	StatusAccepted  TripStatus = "accepted"
	StatusInTransit TripStatus = "in_transit"
	StatusCompleted TripStatus = "completed"
	StatusPaid      TripStatus = "paid"
)

var statusOrder = map[TripStatus]int{
	StatusRequested: 0,
	StatusAccepted:  1,
	StatusInTransit: 2,
	StatusCompleted: 3,
	StatusPaid:      4,
}

func ValidStatus(s TripStatus) bool {
	_, ok := statusOrder[s]
	return ok
}

// Next returns the only status reachable from s. ok is false for paid
// (terminal) and for unknown values.
func (s TripStatus) Next() (TripStatus, bool) {
	switch s {
	case StatusRequested:
		return StatusAccepted, true
	case StatusAccepted:
		return StatusInTransit, true
	case StatusInTransit:
		return StatusCompleted, true
	case StatusCompleted:
		return StatusPaid, true
	default:
		return "", false
	}
}

// CanTransition reports whether from -> to is the single legal step.
func CanTransition(from, to TripStatus) bool {
	next, ok := from.Next()
	return ok && next == to
}
