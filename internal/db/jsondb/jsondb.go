// Package jsondb provides a storage backend that keeps users and their
// addresses in memory and persists them to a JSON file on Close.
package jsondb

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/patric-chuzhbe/mobileappws/internal/db/storage"
	"github.com/patric-chuzhbe/mobileappws/internal/idgen"
	"github.com/patric-chuzhbe/mobileappws/internal/user"
)

// JSONDB holds the whole data set in Cache. Every method is safe for
// concurrent use: mutations take the write lock, reads take the read lock
// and return copies.
type JSONDB struct {
	fileName string
	mu       sync.RWMutex
	Cache    CacheStruct
}

// CacheStruct is the on-disk layout of the database file.
type CacheStruct struct {
	Users         map[string]*user.User
	EmailToUserID map[string]string
}

// NewCache returns an empty, ready to use CacheStruct.
func NewCache() CacheStruct {
	return CacheStruct{
		Users:         map[string]*user.User{},
		EmailToUserID: map[string]string{},
	}
}

// New opens fileName, creating it if it doesn't exist yet.
func New(fileName string) (*JSONDB, error) {
	db := &JSONDB{
		fileName: fileName,
		Cache:    NewCache(),
	}

	err := parseJSONFile(db.fileName, &db.Cache)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("in internal/db/jsondb/jsondb.go/New(): error while `parseJSONFile()` calling: %w", err)
		}
		if err := writeToJSONFile(fileName, db.Cache); err != nil {
			return nil, fmt.Errorf("in internal/db/jsondb/jsondb.go/New(): error while `writeToJSONFile()` calling: %w", err)
		}
	}

	if db.Cache.Users == nil {
		db.Cache.Users = map[string]*user.User{}
	}
	if db.Cache.EmailToUserID == nil {
		db.Cache.EmailToUserID = map[string]string{}
	}

	return db, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser stores usr under a freshly generated identifier. Addresses on
// usr are ignored; they are added through AddAddresses.
func (db *JSONDB) CreateUser(ctx context.Context, usr *user.User, transaction *sql.Tx) (string, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	email := normalizeEmail(usr.Email)
	if _, taken := db.Cache.EmailToUserID[email]; taken {
		return "", storage.ErrEmailAlreadyExists
	}

	stored := usr.Clone()
	stored.ID = idgen.Generate()
	stored.Addresses = nil

	db.Cache.Users[stored.ID] = stored
	db.Cache.EmailToUserID[email] = stored.ID

	return stored.ID, nil
}

// GetUserByID returns a copy of the user without its addresses.
func (db *JSONDB) GetUserByID(ctx context.Context, userID string, transaction *sql.Tx) (*user.User, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	stored, found := db.Cache.Users[userID]
	if !found {
		return nil, storage.ErrUserNotFound
	}

	result := stored.Clone()
	result.Addresses = nil

	return result, nil
}

func (db *JSONDB) GetUserByEmail(ctx context.Context, email string, transaction *sql.Tx) (*user.User, error) {
	db.mu.RLock()
	userID, found := db.Cache.EmailToUserID[normalizeEmail(email)]
	db.mu.RUnlock()
	if !found {
		return nil, storage.ErrUserNotFound
	}

	return db.GetUserByID(ctx, userID, transaction)
}

// UpdateUser overwrites the name fields of the stored user.
func (db *JSONDB) UpdateUser(ctx context.Context, usr *user.User, transaction *sql.Tx) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	stored, found := db.Cache.Users[usr.ID]
	if !found {
		return storage.ErrUserNotFound
	}

	stored.FirstName = usr.FirstName
	stored.LastName = usr.LastName

	return nil
}

func (db *JSONDB) SetEmailVerified(ctx context.Context, userID string, verified bool, transaction *sql.Tx) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	stored, found := db.Cache.Users[userID]
	if !found {
		return storage.ErrUserNotFound
	}
	stored.EmailVerified = verified

	return nil
}

// DeleteUser removes the user together with all of its addresses.
func (db *JSONDB) DeleteUser(ctx context.Context, userID string, transaction *sql.Tx) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	stored, found := db.Cache.Users[userID]
	if !found {
		return storage.ErrUserNotFound
	}

	delete(db.Cache.EmailToUserID, normalizeEmail(stored.Email))
	delete(db.Cache.Users, userID)

	return nil
}

// AddAddresses appends addresses to the user's collection, assigning each
// a new identifier. The stored addresses are returned in insertion order.
func (db *JSONDB) AddAddresses(
	ctx context.Context,
	userID string,
	addresses []user.Address,
	transaction *sql.Tx,
) ([]user.Address, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	stored, found := db.Cache.Users[userID]
	if !found {
		return nil, storage.ErrUserNotFound
	}

	result := make([]user.Address, 0, len(addresses))
	for _, address := range addresses {
		address.ID = idgen.Generate()
		stored.Addresses = append(stored.Addresses, address)
		result = append(result, address)
	}

	return result, nil
}

func (db *JSONDB) GetAddresses(ctx context.Context, userID string, transaction *sql.Tx) ([]user.Address, error) {
	db.mu.RLock()
	defer db.mu.RUnlock()

	stored, found := db.Cache.Users[userID]
	if !found {
		return nil, storage.ErrUserNotFound
	}

	result := make([]user.Address, len(stored.Addresses))
	copy(result, stored.Addresses)

	return result, nil
}

func (db *JSONDB) DeleteAddresses(ctx context.Context, userID string, transaction *sql.Tx) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	stored, found := db.Cache.Users[userID]
	if !found {
		return storage.ErrUserNotFound
	}
	stored.Addresses = nil

	return nil
}

// BeginTransaction is a no-op: every method is atomic on its own.
func (db *JSONDB) BeginTransaction() (*sql.Tx, error) {
	return nil, nil
}

func (db *JSONDB) CommitTransaction(transaction *sql.Tx) error {
	return nil
}

func (db *JSONDB) RollbackTransaction(transaction *sql.Tx) error {
	return nil
}

func (db *JSONDB) Ping(ctx context.Context) error {
	return nil
}

// Close flushes the cache to the database file.
func (db *JSONDB) Close() error {
	db.mu.RLock()
	defer db.mu.RUnlock()

	return writeToJSONFile(db.fileName, db.Cache)
}

func writeToJSONFile(fileName string, cache interface{}) error {
	jsonData, err := json.MarshalIndent(cache, "", "\t")
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	file, err := os.OpenFile(fileName, os.O_WRONLY|os.O_TRUNC|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("error opening file: %w", err)
	}
	defer file.Close()

	if _, err := file.Write(jsonData); err != nil {
		return fmt.Errorf("error writing to file: %w", err)
	}

	return nil
}

func parseJSONFile(fileName string, cache *CacheStruct) error {
	file, err := os.Open(fileName)
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(cache)
}
