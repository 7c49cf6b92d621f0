// Package sqlitedb provides a single-file SQLite storage backend for
// deployments without a PostgreSQL server.
package sqlitedb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/patric-chuzhbe/mobileappws/internal/db/storage"
	"github.com/patric-chuzhbe/mobileappws/internal/idgen"
	"github.com/patric-chuzhbe/mobileappws/internal/user"
)

const schema = `
	CREATE TABLE IF NOT EXISTS users (
		id                        TEXT    PRIMARY KEY,
		first_name                TEXT    NOT NULL,
		last_name                 TEXT    NOT NULL,
		email                     TEXT    NOT NULL UNIQUE COLLATE NOCASE,
		encrypted_password        TEXT    NOT NULL,
		email_verification_status INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS addresses (
		seq         INTEGER PRIMARY KEY AUTOINCREMENT,
		id          TEXT    NOT NULL UNIQUE,
		user_id     TEXT    NOT NULL REFERENCES users (id) ON DELETE CASCADE,
		city        TEXT    NOT NULL,
		country     TEXT    NOT NULL,
		street_name TEXT    NOT NULL,
		postal_code TEXT    NOT NULL,
		type        TEXT    NOT NULL
	);

	CREATE INDEX IF NOT EXISTS addresses_user_id_idx ON addresses (user_id, seq);
`

// SQLiteDB implements the storage contract on top of modernc.org/sqlite.
type SQLiteDB struct {
	database *sql.DB
}

type queryExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// New opens (or creates) the database at path and bootstraps the schema.
func New(ctx context.Context, path string) (*SQLiteDB, error) {
	dsn := "file:" + path + "?" + url.Values{
		"_pragma": []string{"foreign_keys(1)", "busy_timeout(5000)"},
	}.Encode()

	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("in internal/db/sqlitedb/sqlitedb.go/New(): error while `sql.Open()` calling: %w", err)
	}

	// SQLite has a single writer; one connection makes every transaction exclusive.
	database.SetMaxOpenConns(1)

	if err := database.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("in internal/db/sqlitedb/sqlitedb.go/New(): error while `database.PingContext()` calling: %w", err)
	}

	if _, err := database.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("in internal/db/sqlitedb/sqlitedb.go/New(): error while creating schema: %w", err)
	}

	return &SQLiteDB{database: database}, nil
}

func (db *SQLiteDB) executor(transaction *sql.Tx) queryExecutor {
	if transaction == nil {
		return db.database
	}

	return transaction
}

func (db *SQLiteDB) CreateUser(ctx context.Context, usr *user.User, transaction *sql.Tx) (string, error) {
	userID := idgen.Generate()

	_, err := db.executor(transaction).ExecContext(
		ctx,
		`
			INSERT INTO users (id, first_name, last_name, email, encrypted_password, email_verification_status)
				VALUES (?, ?, ?, ?, ?, ?)
		`,
		userID,
		usr.FirstName,
		usr.LastName,
		usr.Email,
		usr.PasswordHash,
		usr.EmailVerified,
	)
	if err != nil {
		var liteErr *sqlite.Error
		if errors.As(err, &liteErr) && isUniqueViolation(liteErr.Code()) {
			return "", storage.ErrEmailAlreadyExists
		}
		return "", err
	}

	return userID, nil
}

func (db *SQLiteDB) GetUserByID(ctx context.Context, userID string, transaction *sql.Tx) (*user.User, error) {
	return scanUser(
		db.executor(transaction).QueryRowContext(
			ctx,
			`
				SELECT id, first_name, last_name, email, encrypted_password, email_verification_status
					FROM users
					WHERE id = ?
			`,
			userID,
		),
	)
}

func (db *SQLiteDB) GetUserByEmail(ctx context.Context, email string, transaction *sql.Tx) (*user.User, error) {
	return scanUser(
		db.executor(transaction).QueryRowContext(
			ctx,
			`
				SELECT id, first_name, last_name, email, encrypted_password, email_verification_status
					FROM users
					WHERE email = ?
			`,
			email,
		),
	)
}

func (db *SQLiteDB) UpdateUser(ctx context.Context, usr *user.User, transaction *sql.Tx) error {
	result, err := db.executor(transaction).ExecContext(
		ctx,
		`UPDATE users SET first_name = ?, last_name = ? WHERE id = ?`,
		usr.FirstName,
		usr.LastName,
		usr.ID,
	)
	if err != nil {
		return err
	}

	return expectAffected(result)
}

func (db *SQLiteDB) SetEmailVerified(ctx context.Context, userID string, verified bool, transaction *sql.Tx) error {
	result, err := db.executor(transaction).ExecContext(
		ctx,
		`UPDATE users SET email_verification_status = ? WHERE id = ?`,
		verified,
		userID,
	)
	if err != nil {
		return err
	}

	return expectAffected(result)
}

func (db *SQLiteDB) DeleteUser(ctx context.Context, userID string, transaction *sql.Tx) error {
	result, err := db.executor(transaction).ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return err
	}

	return expectAffected(result)
}

func (db *SQLiteDB) AddAddresses(
	ctx context.Context,
	userID string,
	addresses []user.Address,
	transaction *sql.Tx,
) ([]user.Address, error) {
	database := db.executor(transaction)

	if err := ensureUserExists(ctx, database, userID); err != nil {
		return nil, err
	}

	result := make([]user.Address, 0, len(addresses))
	for _, address := range addresses {
		address.ID = idgen.Generate()
		_, err := database.ExecContext(
			ctx,
			`
				INSERT INTO addresses (id, user_id, city, country, street_name, postal_code, type)
					VALUES (?, ?, ?, ?, ?, ?, ?)
			`,
			address.ID,
			userID,
			address.City,
			address.Country,
			address.StreetName,
			address.PostalCode,
			address.Type,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, address)
	}

	return result, nil
}

func (db *SQLiteDB) GetAddresses(ctx context.Context, userID string, transaction *sql.Tx) ([]user.Address, error) {
	database := db.executor(transaction)

	if err := ensureUserExists(ctx, database, userID); err != nil {
		return nil, err
	}

	rows, err := database.QueryContext(
		ctx,
		`
			SELECT id, city, country, street_name, postal_code, type
				FROM addresses
				WHERE user_id = ?
				ORDER BY seq
		`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []user.Address{}
	for rows.Next() {
		var address user.Address
		if err := rows.Scan(
			&address.ID,
			&address.City,
			&address.Country,
			&address.StreetName,
			&address.PostalCode,
			&address.Type,
		); err != nil {
			return nil, err
		}
		result = append(result, address)
	}

	return result, rows.Err()
}

func (db *SQLiteDB) DeleteAddresses(ctx context.Context, userID string, transaction *sql.Tx) error {
	database := db.executor(transaction)

	if err := ensureUserExists(ctx, database, userID); err != nil {
		return err
	}

	_, err := database.ExecContext(ctx, `DELETE FROM addresses WHERE user_id = ?`, userID)

	return err
}

func (db *SQLiteDB) BeginTransaction() (*sql.Tx, error) {
	return db.database.Begin()
}

func (db *SQLiteDB) CommitTransaction(transaction *sql.Tx) error {
	return transaction.Commit()
}

func (db *SQLiteDB) RollbackTransaction(transaction *sql.Tx) error {
	err := transaction.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}

	return err
}

func (db *SQLiteDB) Ping(ctx context.Context) error {
	return db.database.PingContext(ctx)
}

func (db *SQLiteDB) Close() error {
	return db.database.Close()
}

func ensureUserExists(ctx context.Context, database queryExecutor, userID string) error {
	var count int
	if err := database.QueryRowContext(ctx, `SELECT COUNT(*) FROM users WHERE id = ?`, userID).Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

func scanUser(row *sql.Row) (*user.User, error) {
	var usr user.User
	err := row.Scan(
		&usr.ID,
		&usr.FirstName,
		&usr.LastName,
		&usr.Email,
		&usr.PasswordHash,
		&usr.EmailVerified,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, err
	}

	return &usr, nil
}

func expectAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}

// isUniqueViolation accepts the extended code as well as the primary
// constraint code some builds report.
func isUniqueViolation(code int) bool {
	return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT
}
