package otp

import (
	"context"
	"sync"
	"time"

	"github.com/jcvalencia/schedula/internal/pkg/models"
)

// MemoryStore keeps pending OTP records in a mutex-guarded map. Codes do
// not survive a restart. A background sweep deletes expired records; the
// sweep is owned by the store and stops when Stop is called.
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]models.OTP
	clock   func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
}

// NewMemoryStore creates an in-memory store and starts its expiry sweep.
// A non-positive sweepInterval defaults to one minute.
func NewMemoryStore(sweepInterval time.Duration) *MemoryStore {
	if sweepInterval <= 0 {
		sweepInterval = time.Minute
	}

	s := &MemoryStore{
		records: make(map[string]models.OTP),
		clock:   time.Now,
		stop:    make(chan struct{}),
	}

	go s.sweepLoop(sweepInterval)

	return s
}

// WithClock overrides the store's clock, for tests
func (s *MemoryStore) WithClock(clock func() time.Time) *MemoryStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = clock
	return s
}

// Put stores a record, overwriting any pending record for the same email
func (s *MemoryStore) Put(_ context.Context, otp *models.OTP) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[otp.Email] = *otp
	return nil
}

// Get returns a copy of the pending record, or nil when none exists
func (s *MemoryStore) Get(_ context.Context, email string) (*models.OTP, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[email]
	if !ok {
		return nil, nil
	}
	return &record, nil
}

// MarkVerified flips the verified flag on the pending record
func (s *MemoryStore) MarkVerified(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[email]
	if !ok {
		return nil
	}
	record.Verified = true
	s.records[email] = record
	return nil
}

// Delete removes the pending record for the email
func (s *MemoryStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, email)
	return nil
}

// Stop cancels the background sweep. Safe to call more than once.
func (s *MemoryStore) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
}

func (s *MemoryStore) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweepExpired()
		case <-s.stop:
			return
		}
	}
}

// sweepExpired deletes every record whose TTL has elapsed
func (s *MemoryStore) sweepExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	for email, record := range s.records {
		if record.Expired(now) {
			delete(s.records, email)
		}
	}
}
