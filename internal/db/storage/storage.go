// Package storage describes the persistence contract shared by every
// backend: the credential store holding user accounts and the address
// collection holding their addresses.
package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/patric-chuzhbe/mobileappws/internal/user"
)

var (
	// ErrUserNotFound is returned when no user matches the given id or email.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when creating a user whose email is taken.
	ErrEmailAlreadyExists = errors.New("email already registered")
)

// CredentialStore keeps user accounts. Implementations assign the public
// identifier on creation.
type CredentialStore interface {
	CreateUser(ctx context.Context, usr *user.User, transaction *sql.Tx) (string, error)

	GetUserByID(ctx context.Context, userID string, transaction *sql.Tx) (*user.User, error)

	GetUserByEmail(ctx context.Context, email string, transaction *sql.Tx) (*user.User, error)

	UpdateUser(ctx context.Context, usr *user.User, transaction *sql.Tx) error

	SetEmailVerified(ctx context.Context, userID string, verified bool, transaction *sql.Tx) error

	DeleteUser(ctx context.Context, userID string, transaction *sql.Tx) error
}

// AddressCollection keeps the ordered addresses of every user.
type AddressCollection interface {
	AddAddresses(
		ctx context.Context,
		userID string,
		addresses []user.Address,
		transaction *sql.Tx,
	) ([]user.Address, error)

	GetAddresses(ctx context.Context, userID string, transaction *sql.Tx) ([]user.Address, error)

	DeleteAddresses(ctx context.Context, userID string, transaction *sql.Tx) error
}

// Storage is the full contract implemented by every backend.
type Storage interface {
	CredentialStore
	AddressCollection

	BeginTransaction() (*sql.Tx, error)

	RollbackTransaction(transaction *sql.Tx) error

	CommitTransaction(transaction *sql.Tx) error

	Ping(ctx context.Context) error

	Close() error
}
