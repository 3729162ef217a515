package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ppiankov/factdash/internal/model"
)

// Session holds the claim tables of one dashboard session
type Session struct {
	ID string

	mu          sync.RWMutex
	claims      []model.ClaimRecord
	verified    []model.VerifiedClaim
	collectedAt time.Time
	verifiedAt  time.Time
	now         func() time.Time
}

// Snapshot is a read-only copy of the session state
type Snapshot struct {
	ID          string                `json:"id"`
	Claims      []model.ClaimRecord   `json:"claims"`
	Verified    []model.VerifiedClaim `json:"verified,omitempty"`
	CollectedAt time.Time             `json:"collected_at,omitempty"`
	VerifiedAt  time.Time             `json:"verified_at,omitempty"`
}

// New creates an empty session with a fresh ID
func New() *Session {
	return &Session{
		ID:  uuid.NewString(),
		now: time.Now,
	}
}

// SetClaims replaces the collected table and drops any earlier verification
func (s *Session) SetClaims(claims []model.ClaimRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.claims = append([]model.ClaimRecord(nil), claims...)
	s.verified = nil
	s.verifiedAt = time.Time{}
	s.collectedAt = s.now()
}

// SetVerified stores the augmented table
func (s *Session) SetVerified(rows []model.VerifiedClaim) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.verified = append([]model.VerifiedClaim(nil), rows...)
	s.verifiedAt = s.now()
}

// Claims returns a copy of the collected table
func (s *Session) Claims() []model.ClaimRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.ClaimRecord(nil), s.claims...)
}

// Verified returns a copy of the verified table, nil before verification
func (s *Session) Verified() []model.VerifiedClaim {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.verified == nil {
		return nil
	}
	return append([]model.VerifiedClaim(nil), s.verified...)
}

// HasClaims reports whether a non-empty table was collected
func (s *Session) HasClaims() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.claims) > 0
}

// Snapshot copies the full session state
func (s *Session) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		ID:          s.ID,
		Claims:      append([]model.ClaimRecord{}, s.claims...),
		CollectedAt: s.collectedAt,
		VerifiedAt:  s.verifiedAt,
	}
	if s.verified != nil {
		snap.Verified = append([]model.VerifiedClaim{}, s.verified...)
	}
	return snap
}
