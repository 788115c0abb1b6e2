package session

// Status is the state of the session.
type Status int

const (
	_ Status = iota
	// NotStarted is the status of a session that no player has placed tiles in.
	NotStarted
	// InProgress is the status of a session that has had tiles placed but is not finished.
	InProgress
	// Finished is the status of a session that has an empty bag or only full shelves.
	Finished
)

// String returns the display value for the status.
func (s Status) String() string {
	switch s {
	case NotStarted:
		return "Not Started"
	case InProgress:
		return "In Progress"
	case Finished:
		return "Finished"
	}
	return "?"
}

// MarshalText encodes the status as its display value.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
