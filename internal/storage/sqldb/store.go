package sqldb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aanand-mishra/sim-verify/internal/storage"
	"github.com/aanand-mishra/sim-verify/internal/types"
)

// Querier is the capability Store needs from the database: run a
// statement with positional arguments and get rows back.
type Querier interface {
	Query(ctx context.Context, query string, args ...any) ([]storage.Row, error)
	Ping(ctx context.Context) error
}

// Statements issued by Store. Table names are left unquoted, so Postgres
// folds them to lower case.
const (
	insertSimDetailSQL = `INSERT INTO simDetails (service_number, sim_number, sim_status) VALUES ($1, $2, $3) RETURNING *`
	findCustomerSQL    = `SELECT * FROM CustomerIdentity WHERE email_address = $1 AND date_of_birth = $2`
	findOtpSQL         = `SELECT * FROM OtpDetails WHERE otp = $1`
	listSimDetailsSQL  = `SELECT * FROM simDetails`
)

var errNoRowReturned = errors.New("insert returned no row")

// Store implements storage.Storage on top of a Querier.
type Store struct {
	q Querier
}

var _ storage.Storage = (*Store)(nil)

// New returns a Store issuing its statements through q.
func New(q Querier) *Store {
	return &Store{q: q}
}

// InsertSimDetail inserts sim and returns the row produced by RETURNING *.
func (s *Store) InsertSimDetail(ctx context.Context, sim types.SimDetail) (storage.Row, error) {
	rows, err := s.q.Query(ctx, insertSimDetailSQL,
		sim.ServiceNumber.String(),
		sim.SimNumber.String(),
		sim.SimStatus.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("InsertSimDetail: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("InsertSimDetail: %w", errNoRowReturned)
	}
	return rows[0], nil
}

// FindCustomer matches on email address and date of birth together.
func (s *Store) FindCustomer(ctx context.Context, emailAddress, dateOfBirth string) ([]storage.Row, error) {
	rows, err := s.q.Query(ctx, findCustomerSQL, emailAddress, dateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("FindCustomer: %w", err)
	}
	return rows, nil
}

// FindOtp looks otp up without consuming it.
func (s *Store) FindOtp(ctx context.Context, otp string) ([]storage.Row, error) {
	rows, err := s.q.Query(ctx, findOtpSQL, otp)
	if err != nil {
		return nil, fmt.Errorf("FindOtp: %w", err)
	}
	return rows, nil
}

// ListSimDetails scans the whole SIM table.
func (s *Store) ListSimDetails(ctx context.Context) ([]storage.Row, error) {
	rows, err := s.q.Query(ctx, listSimDetailsSQL)
	if err != nil {
		return nil, fmt.Errorf("ListSimDetails: %w", err)
	}
	return rows, nil
}

// Ping reports whether the underlying database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.q.Ping(ctx)
}
