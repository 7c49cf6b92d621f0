// Package mockstorage provides a testify-based mock implementation of
// storage.Storage. It is used by service and transport tests to simulate
// storage failures that the in-memory backend cannot produce.
package mockstorage

import (
	"context"
	"database/sql"

	"github.com/stretchr/testify/mock"

	"github.com/patric-chuzhbe/mobileappws/internal/user"
)

// StorageMock is a testify mock implementing every storage method.
type StorageMock struct {
	mock.Mock
}

func (m *StorageMock) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *StorageMock) Close() error {
	args := m.Called()
	return args.Error(0)
}

// BeginTransaction mocks the beginning of a transaction.
func (m *StorageMock) BeginTransaction() (*sql.Tx, error) {
	args := m.Called()
	tx, _ := args.Get(0).(*sql.Tx)
	return tx, args.Error(1)
}

// CommitTransaction mocks committing a transaction.
func (m *StorageMock) CommitTransaction(tx *sql.Tx) error {
	args := m.Called(tx)
	return args.Error(0)
}

// RollbackTransaction mocks rolling back a transaction.
func (m *StorageMock) RollbackTransaction(tx *sql.Tx) error {
	args := m.Called(tx)
	return args.Error(0)
}

func (m *StorageMock) CreateUser(ctx context.Context, usr *user.User, tx *sql.Tx) (string, error) {
	args := m.Called(ctx, usr, tx)
	return args.String(0), args.Error(1)
}

func (m *StorageMock) GetUserByID(ctx context.Context, userID string, tx *sql.Tx) (*user.User, error) {
	args := m.Called(ctx, userID, tx)
	usr, _ := args.Get(0).(*user.User)
	return usr, args.Error(1)
}

func (m *StorageMock) GetUserByEmail(ctx context.Context, email string, tx *sql.Tx) (*user.User, error) {
	args := m.Called(ctx, email, tx)
	usr, _ := args.Get(0).(*user.User)
	return usr, args.Error(1)
}

func (m *StorageMock) UpdateUser(ctx context.Context, usr *user.User, tx *sql.Tx) error {
	args := m.Called(ctx, usr, tx)
	return args.Error(0)
}

func (m *StorageMock) SetEmailVerified(ctx context.Context, userID string, verified bool, tx *sql.Tx) error {
	args := m.Called(ctx, userID, verified, tx)
	return args.Error(0)
}

func (m *StorageMock) DeleteUser(ctx context.Context, userID string, tx *sql.Tx) error {
	args := m.Called(ctx, userID, tx)
	return args.Error(0)
}

// AddAddresses mocks appending addresses to a user's collection.
func (m *StorageMock) AddAddresses(
	ctx context.Context,
	userID string,
	addresses []user.Address,
	tx *sql.Tx,
) ([]user.Address, error) {
	args := m.Called(ctx, userID, addresses, tx)
	stored, _ := args.Get(0).([]user.Address)
	return stored, args.Error(1)
}

func (m *StorageMock) GetAddresses(ctx context.Context, userID string, tx *sql.Tx) ([]user.Address, error) {
	args := m.Called(ctx, userID, tx)
	stored, _ := args.Get(0).([]user.Address)
	return stored, args.Error(1)
}

func (m *StorageMock) DeleteAddresses(ctx context.Context, userID string, tx *sql.Tx) error {
	args := m.Called(ctx, userID, tx)
	return args.Error(0)
}
