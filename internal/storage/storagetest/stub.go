// Package storagetest provides a recording storage.Storage for handler
// tests.
package storagetest

import (
	"context"
	"sync"

	"github.com/aanand-mishra/sim-verify/internal/storage"
	"github.com/aanand-mishra/sim-verify/internal/types"
)

// Call records one invocation of a Stub method.
type Call struct {
	Method string
	Args   []string
}

// Stub is a storage.Storage whose results are set by the test. Every
// method call is recorded, so a test can assert that validation failures
// never reach the store.
type Stub struct {
	mu    sync.Mutex
	calls []Call

	// Rows is returned by the lookup and list methods. Rows[0] is the
	// inserted row for InsertSimDetail.
	Rows []storage.Row
	// Err, when set, is returned by every method.
	Err error
}

var _ storage.Storage = (*Stub)(nil)

func (s *Stub) record(method string, args ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, Call{Method: method, Args: args})
}

// Calls returns a copy of the recorded calls.
func (s *Stub) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Called reports whether any method was invoked.
func (s *Stub) Called() bool {
	return len(s.Calls()) > 0
}

func (s *Stub) rows() ([]storage.Row, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]storage.Row, 0, len(s.Rows))
	return append(out, s.Rows...), nil
}

func (s *Stub) InsertSimDetail(_ context.Context, sim types.SimDetail) (storage.Row, error) {
	s.record("InsertSimDetail", sim.ServiceNumber.String(), sim.SimNumber.String(), sim.SimStatus.String())
	rows, err := s.rows()
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return storage.Row{}, nil
	}
	return rows[0], nil
}

func (s *Stub) FindCustomer(_ context.Context, emailAddress, dateOfBirth string) ([]storage.Row, error) {
	s.record("FindCustomer", emailAddress, dateOfBirth)
	return s.rows()
}

func (s *Stub) FindOtp(_ context.Context, otp string) ([]storage.Row, error) {
	s.record("FindOtp", otp)
	return s.rows()
}

func (s *Stub) ListSimDetails(_ context.Context) ([]storage.Row, error) {
	s.record("ListSimDetails")
	return s.rows()
}

func (s *Stub) Ping(_ context.Context) error {
	s.record("Ping")
	return s.Err
}
