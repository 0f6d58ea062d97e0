package services

import (
	"log/slog"
	"sotd-bot/domain"
	"sotd-bot/repositories"
	"sync"
)

// QueueService is the queue engine. Every operation is one
// load-mutate-save unit executed under the mutex, so a signup racing
// the daily rotation cannot lose an update. The store is reloaded on
// every call; there is no in-memory cache to go stale.
//
// Nothing here touches the network: callers post replies after the
// mutation is durably committed, outside the lock.
type QueueService struct {
	mu   sync.Mutex
	repo repositories.IQueueRepository
	log  *slog.Logger
}

func NewQueueService(repo repositories.IQueueRepository, log *slog.Logger) *QueueService {
	return &QueueService{repo: repo, log: log}
}

// Signup appends the participant to the back of the queue.
// Returns OutcomeAlreadyQueued without persisting when the UserID is
// already present.
func (s *QueueService) Signup(userID, name string) (domain.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue, err := s.repo.Load()
	if err != nil {
		return 0, err
	}
	next, outcome := queue.Signup(domain.Participant{UserID: userID, Name: name})
	if outcome != domain.OutcomeJoined {
		return outcome, nil
	}
	if err := s.repo.Save(next); err != nil {
		return 0, err
	}
	return outcome, nil
}

// Signout removes the participant by UserID.
// Returns OutcomeNotQueued without persisting when absent.
func (s *QueueService) Signout(userID string) (domain.Outcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue, err := s.repo.Load()
	if err != nil {
		return 0, err
	}
	next, outcome := queue.Signout(userID)
	if outcome != domain.OutcomeLeft {
		return outcome, nil
	}
	if err := s.repo.Save(next); err != nil {
		return 0, err
	}
	return outcome, nil
}

// List returns the display names front to back. Pure read, but it
// still takes the lock: the store is local and fast, and one exclusion
// domain is easier to reason about than two.
func (s *QueueService) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	return queue.Names(), nil
}

// Rotate moves the front participant to the back and returns the one
// that was moved. An empty queue returns nil with no mutation.
func (s *QueueService) Rotate() (*domain.Participant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	queue, err := s.repo.Load()
	if err != nil {
		return nil, err
	}
	next, front := queue.Rotate()
	if front == nil {
		return nil, nil
	}
	if err := s.repo.Save(next); err != nil {
		return nil, err
	}
	return front, nil
}
