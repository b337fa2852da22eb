package schedule

import "fmt"

// KeyKind identifies the resource type a conflict is scoped to.
type KeyKind string

const (
	KindRoom    KeyKind = "room"
	KindTrainer KeyKind = "trainer"
	KindClass   KeyKind = "class"
)

// Key is the identity against which conflicts are checked and mutations are
// serialized: a room, a trainer, or (for registrations) a class.
type Key struct {
	Kind KeyKind
	ID   int
}

func RoomKey(id int) Key    { return Key{Kind: KindRoom, ID: id} }
func TrainerKey(id int) Key { return Key{Kind: KindTrainer, ID: id} }
func ClassKey(id int) Key   { return Key{Kind: KindClass, ID: id} }

// CommitmentKind distinguishes what occupies a slot.
type CommitmentKind string

const (
	CommitmentClass     CommitmentKind = "class"
	CommitmentPTSession CommitmentKind = "pt_session"
)

// Commitment is an entity that occupies a room-key and/or trainer-key for a
// time interval: a group class or a personal training session.
type Commitment struct {
	ID       int
	Kind     CommitmentKind
	Interval Interval
}

// ConflictError reports that a candidate interval overlaps an existing
// commitment on the named resource.
type ConflictError struct {
	Resource KeyKind
	With     Commitment
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s is already booked by %s %d during %s",
		e.Resource, e.With.Kind, e.With.ID, e.With.Interval)
}
