package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"sync"

	"kindred_server/models"
)

// DiscoveryService produces ordered, exclusion-filtered candidate batches
// for a viewer. Each viewer has an in-memory session holding the loaded
// candidate list and a forward-only cursor; there is no rewind to a
// previously served candidate.
type DiscoveryService struct {
	Profiles     *UserProfileService
	Interactions *InteractionService

	mu       sync.Mutex
	sessions map[string]*discoverySession
}

// discoverySession tracks one viewer's loaded candidates. token is a
// monotonically increasing load counter: a finished load only installs its
// result when its token is still the latest issued, so a stale response
// never overwrites a batch built from a newer exclusion set. pending is
// non-nil while a load is in flight and is closed when it completes, so
// callers can wait for the pool instead of reading an empty one.
type discoverySession struct {
	candidates []models.UserProfile
	cursor     int
	token      uint64
	loaded     bool
	pending    chan struct{}
}

// NextBatch returns up to batchSize candidates for the viewer and advances
// the cursor past them. The pool is loaded on the viewer's first call; once
// it is exhausted every call yields ErrNoCandidates until an explicit
// Refresh, so an advanced cursor never rewinds over passed candidates. An
// empty pool after exclusion also yields ErrNoCandidates.
func (s *DiscoveryService) NextBatch(ctx context.Context, viewerID string, batchSize int) ([]models.UserProfile, error) {
	if viewerID == "" {
		return nil, NewValidationError("viewerId", "must not be empty")
	}
	if batchSize <= 0 {
		return nil, NewValidationError("batchSize", "must be positive")
	}

	s.mu.Lock()
	sess := s.session(viewerID)
	for !sess.loaded && sess.pending != nil {
		// Another call is loading this viewer's pool; join its result
		// rather than serving from the still-empty list.
		wait := sess.pending
		s.mu.Unlock()
		<-wait
		s.mu.Lock()
		sess = s.session(viewerID)
	}
	if !sess.loaded {
		if err := s.reloadLocked(ctx, viewerID, sess); err != nil {
			s.mu.Unlock()
			return nil, err
		}
		sess = s.session(viewerID)
	}

	end := sess.cursor + batchSize
	if end > len(sess.candidates) {
		end = len(sess.candidates)
	}
	batch := make([]models.UserProfile, end-sess.cursor)
	copy(batch, sess.candidates[sess.cursor:end])
	sess.cursor = end
	s.mu.Unlock()

	if len(batch) == 0 {
		return nil, ErrNoCandidates
	}
	return batch, nil
}

// Refresh discards the viewer's cursor and reloads the candidate pool from
// the latest like-ledger state.
func (s *DiscoveryService) Refresh(ctx context.Context, viewerID string) error {
	if viewerID == "" {
		return NewValidationError("viewerId", "must not be empty")
	}

	s.mu.Lock()
	sess := s.session(viewerID)
	err := s.reloadLocked(ctx, viewerID, sess)
	s.mu.Unlock()
	return err
}

// session returns the viewer's session, creating it if needed. Callers hold s.mu.
func (s *DiscoveryService) session(viewerID string) *discoverySession {
	if s.sessions == nil {
		s.sessions = make(map[string]*discoverySession)
	}
	sess := s.sessions[viewerID]
	if sess == nil {
		sess = &discoverySession{}
		s.sessions[viewerID] = sess
	}
	return sess
}

// reloadLocked loads the candidate pool outside the lock and installs the
// result only when no newer load was issued meanwhile (last-request-wins).
// Called with s.mu held; returns with s.mu held.
func (s *DiscoveryService) reloadLocked(ctx context.Context, viewerID string, sess *discoverySession) error {
	sess.token++
	token := sess.token
	done := make(chan struct{})
	sess.pending = done
	s.mu.Unlock()

	pool, err := s.loadPool(ctx, viewerID)

	s.mu.Lock()
	sess = s.session(viewerID)
	if sess.pending == done {
		sess.pending = nil
	}
	close(done)
	if err != nil {
		return err
	}
	if sess.token != token {
		// A newer refresh superseded this load; drop the stale result.
		return nil
	}
	sess.candidates = pool
	sess.cursor = 0
	sess.loaded = true
	return nil
}

// loadPool computes the exclusion set from the current like ledger and
// returns the filtered active profiles in discovery order: most recently
// activated first, ties broken by user id. The ordering is a policy choice,
// not a ranking signal.
func (s *DiscoveryService) loadPool(ctx context.Context, viewerID string) ([]models.UserProfile, error) {
	liked, err := s.Interactions.GetLikedUserIDs(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to build exclusion set: %w", err)
	}

	excluding := make(map[string]struct{}, len(liked)+1)
	excluding[viewerID] = struct{}{}
	for id := range liked {
		excluding[id] = struct{}{}
	}

	pool, err := s.Profiles.ListActiveProfiles(ctx, excluding)
	if err != nil {
		return nil, err
	}

	sort.Slice(pool, func(i, j int) bool {
		if pool[i].ActivatedAt != pool[j].ActivatedAt {
			return pool[i].ActivatedAt > pool[j].ActivatedAt
		}
		return pool[i].UserID < pool[j].UserID
	})

	log.Printf("🔍 Discovery pool for %s: %d candidates (%d excluded)", viewerID, len(pool), len(excluding))
	return pool, nil
}
