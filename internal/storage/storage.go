// Package storage defines the contract between the HTTP handlers and the
// relational store holding SIM, customer identity, and OTP records.
//
// Handlers depend only on the Storage interface, so tests can pass a stub
// that records whether it was called.
package storage

import (
	"context"

	"github.com/aanand-mishra/sim-verify/internal/types"
)

// Row is one result row keyed by column name. The store owns the columns;
// callers pass rows through to the client without interpreting them.
type Row map[string]any

// Storage is the store contract. Lookups that match nothing return an empty
// slice and a nil error; the handler decides what "nothing" means.
type Storage interface {
	// InsertSimDetail inserts one SIM record and returns the row the
	// store reports as inserted.
	InsertSimDetail(ctx context.Context, sim types.SimDetail) (Row, error)

	// FindCustomer returns every customer row matching both the email
	// address and the date of birth.
	FindCustomer(ctx context.Context, emailAddress, dateOfBirth string) ([]Row, error)

	// FindOtp returns every OTP row matching otp exactly. It has no side
	// effects: the same OTP can be looked up any number of times.
	FindOtp(ctx context.Context, otp string) ([]Row, error)

	// ListSimDetails returns every SIM record in store order.
	ListSimDetails(ctx context.Context) ([]Row, error)

	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
}
