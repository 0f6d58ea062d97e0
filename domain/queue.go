package domain

import (
	"github.com/samber/lo"
)

// Outcome is the result of a queue mutation, distinct from errors:
// an already-queued signup is a valid no-op, not a failure.
type Outcome int

const (
	OutcomeJoined Outcome = iota
	OutcomeAlreadyQueued
	OutcomeLeft
	OutcomeNotQueued
)

// Queue is the ordered list of participants, front to back.
// The front entry is the next one to be pinged.
// Invariant: no two entries share a UserID.
//
// All operations are pure: they return the resulting queue and never
// modify the receiver, so the service layer can decide whether the
// mutation is worth persisting.
type Queue []Participant

// Signup appends p to the back of the queue.
// Signing up an already-present UserID is a no-op.
func (q Queue) Signup(p Participant) (Queue, Outcome) {
	if q.contains(p.UserID) {
		return q, OutcomeAlreadyQueued
	}
	out := make(Queue, len(q), len(q)+1)
	copy(out, q)
	return append(out, p), OutcomeJoined
}

// Signout removes the entry matching userID, preserving the relative
// order of the rest.
func (q Queue) Signout(userID string) (Queue, Outcome) {
	if !q.contains(userID) {
		return q, OutcomeNotQueued
	}
	out := lo.Filter(q, func(p Participant, _ int) bool {
		return p.UserID != userID
	})
	return Queue(out), OutcomeLeft
}

// Rotate moves the front participant to the back and returns it.
// The returned participant keeps the Name it signed up with; rotation
// never refreshes display names. An empty queue rotates to itself and
// returns nil.
func (q Queue) Rotate() (Queue, *Participant) {
	if len(q) == 0 {
		return q, nil
	}
	front := q[0]
	out := make(Queue, 0, len(q))
	out = append(out, q[1:]...)
	out = append(out, front)
	return out, &front
}

// Names returns the display names front to back.
func (q Queue) Names() []string {
	return lo.Map(q, func(p Participant, _ int) string {
		return p.Name
	})
}

func (q Queue) contains(userID string) bool {
	return lo.ContainsBy(q, func(p Participant) bool {
		return p.UserID == userID
	})
}
