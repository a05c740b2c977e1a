package metrics

import (
	"context"

	"github.com/aanand-mishra/sim-verify/internal/storage"
	"github.com/aanand-mishra/sim-verify/internal/types"
)

// Storage decorates a storage.Storage, counting failed operations.
type Storage struct {
	next storage.Storage
	m    *Metrics
}

var _ storage.Storage = (*Storage)(nil)

// InstrumentStorage wraps next.
func InstrumentStorage(next storage.Storage, m *Metrics) *Storage {
	return &Storage{next: next, m: m}
}

func (s *Storage) observe(op string, err error) {
	if err != nil {
		s.m.IncStoreError(op)
	}
}

func (s *Storage) InsertSimDetail(ctx context.Context, sim types.SimDetail) (storage.Row, error) {
	row, err := s.next.InsertSimDetail(ctx, sim)
	s.observe("insert_sim_detail", err)
	return row, err
}

func (s *Storage) FindCustomer(ctx context.Context, emailAddress, dateOfBirth string) ([]storage.Row, error) {
	rows, err := s.next.FindCustomer(ctx, emailAddress, dateOfBirth)
	s.observe("find_customer", err)
	return rows, err
}

func (s *Storage) FindOtp(ctx context.Context, otp string) ([]storage.Row, error) {
	rows, err := s.next.FindOtp(ctx, otp)
	s.observe("find_otp", err)
	return rows, err
}

func (s *Storage) ListSimDetails(ctx context.Context) ([]storage.Row, error) {
	rows, err := s.next.ListSimDetails(ctx)
	s.observe("list_sim_details", err)
	return rows, err
}

func (s *Storage) Ping(ctx context.Context) error {
	err := s.next.Ping(ctx)
	s.observe("ping", err)
	return err
}
