// Package memorystorage provides a volatile storage backend: the jsondb
// store without a backing file.
package memorystorage

import (
	"github.com/patric-chuzhbe/mobileappws/internal/db/jsondb"
)

type MemoryStorage struct {
	*jsondb.JSONDB
}

func New() (*MemoryStorage, error) {
	return &MemoryStorage{
		JSONDB: &jsondb.JSONDB{
			Cache: jsondb.NewCache(),
		},
	}, nil
}

// Close discards nothing and persists nothing.
func (theStorage *MemoryStorage) Close() error {
	return nil
}
