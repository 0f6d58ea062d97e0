// Package domain contains core concepts of the song-of-the-day queue.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

// Participant is one queued user. UserID is the stable identity used for
// dedup and mentions; Name is display-only and may go stale between
// appearances.
type Participant struct {
	UserID string
	Name   string
}
