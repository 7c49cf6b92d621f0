// Package postgresdb provides a PostgreSQL-based implementation of the storage
// interface for persisting user accounts and their addresses.
// The schema is managed by goose migrations applied on start.
package postgresdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/patric-chuzhbe/mobileappws/internal/db/storage"
	"github.com/patric-chuzhbe/mobileappws/internal/idgen"
	"github.com/patric-chuzhbe/mobileappws/internal/user"
)

const pgUniqueViolationCode = "23505"

// PostgresDB is a PostgreSQL-backed implementation of the user storage.
type PostgresDB struct {
	database          *sql.DB
	connectionTimeout time.Duration
}

type queryExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

type initOptions struct {
	DBPreReset bool
}

// InitOption defines a functional option for configuring database initialization.
type InitOption func(*initOptions)

// WithDBPreReset enables dropping every table before migrating.
// It is meant for test setups.
func WithDBPreReset(value bool) InitOption {
	return func(options *initOptions) {
		options.DBPreReset = value
	}
}

// New establishes a connection to the PostgreSQL database,
// runs schema migrations, and returns a configured PostgresDB instance.
func New(
	ctx context.Context,
	databaseDSN string,
	connectionTimeout time.Duration,
	migrationsDir string,
	optionsProto ...InitOption,
) (*PostgresDB, error) {
	options := &initOptions{
		DBPreReset: false,
	}
	for _, protoOption := range optionsProto {
		protoOption(options)
	}

	database, err := sql.Open("pgx", databaseDSN)
	if err != nil {
		return nil, err
	}

	result := &PostgresDB{
		database:          database,
		connectionTimeout: connectionTimeout,
	}

	if options.DBPreReset {
		if err := result.resetDB(ctx); err != nil {
			return nil,
				fmt.Errorf(
					"in internal/db/postgresdb/postgresdb.go/New(): error while `result.resetDB()` calling: %w",
					err,
				)
		}
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return nil,
			fmt.Errorf(
				"in internal/db/postgresdb/postgresdb.go/New(): error while `goose.SetDialect()` calling: %w",
				err,
			)
	}

	if err := goose.Up(result.database, migrationsDir); err != nil {
		return nil,
			fmt.Errorf(
				"in internal/db/postgresdb/postgresdb.go/New(): error while `goose.Up()` calling: %w",
				err,
			)
	}

	return result, nil
}

func (db *PostgresDB) executor(transaction *sql.Tx) queryExecutor {
	if transaction == nil {
		return db.database
	}

	return transaction
}

// CreateUser inserts a new user under a freshly generated identifier.
// Returns storage.ErrEmailAlreadyExists if the email is taken.
func (db *PostgresDB) CreateUser(ctx context.Context, usr *user.User, transaction *sql.Tx) (string, error) {
	userID := idgen.Generate()

	_, err := db.executor(transaction).ExecContext(
		ctx,
		`
			INSERT INTO users (id, first_name, last_name, email, encrypted_password, email_verification_status)
				VALUES ($1, $2, $3, $4, $5, $6)
		`,
		userID,
		usr.FirstName,
		usr.LastName,
		usr.Email,
		usr.PasswordHash,
		usr.EmailVerified,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return "", storage.ErrEmailAlreadyExists
		}
		return "", err
	}

	return userID, nil
}

// GetUserByID fetches a user by identifier. Inside a transaction the row is
// locked until the transaction ends, which serialises concurrent mutations
// of the same user.
func (db *PostgresDB) GetUserByID(ctx context.Context, userID string, transaction *sql.Tx) (*user.User, error) {
	query := `
		SELECT id, first_name, last_name, email, encrypted_password, email_verification_status
			FROM users
			WHERE id = $1
	`
	if transaction != nil {
		query += ` FOR UPDATE`
	}

	return scanUser(db.executor(transaction).QueryRowContext(ctx, query, userID))
}

func (db *PostgresDB) GetUserByEmail(ctx context.Context, email string, transaction *sql.Tx) (*user.User, error) {
	return scanUser(
		db.executor(transaction).QueryRowContext(
			ctx,
			`
				SELECT id, first_name, last_name, email, encrypted_password, email_verification_status
					FROM users
					WHERE lower(email) = lower($1)
			`,
			email,
		),
	)
}

// UpdateUser overwrites the name fields of the user.
func (db *PostgresDB) UpdateUser(ctx context.Context, usr *user.User, transaction *sql.Tx) error {
	result, err := db.executor(transaction).ExecContext(
		ctx,
		`UPDATE users SET first_name = $2, last_name = $3 WHERE id = $1`,
		usr.ID,
		usr.FirstName,
		usr.LastName,
	)
	if err != nil {
		return err
	}

	return expectAffected(result)
}

func (db *PostgresDB) SetEmailVerified(ctx context.Context, userID string, verified bool, transaction *sql.Tx) error {
	result, err := db.executor(transaction).ExecContext(
		ctx,
		`UPDATE users SET email_verification_status = $2 WHERE id = $1`,
		userID,
		verified,
	)
	if err != nil {
		return err
	}

	return expectAffected(result)
}

// DeleteUser removes the user. Addresses go with it through ON DELETE CASCADE.
func (db *PostgresDB) DeleteUser(ctx context.Context, userID string, transaction *sql.Tx) error {
	result, err := db.executor(transaction).ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return err
	}

	return expectAffected(result)
}

// AddAddresses inserts the addresses in order, each under a new identifier.
func (db *PostgresDB) AddAddresses(
	ctx context.Context,
	userID string,
	addresses []user.Address,
	transaction *sql.Tx,
) ([]user.Address, error) {
	database := db.executor(transaction)

	if err := db.ensureUserExists(ctx, database, userID); err != nil {
		return nil, err
	}

	result := make([]user.Address, 0, len(addresses))
	for _, address := range addresses {
		address.ID = idgen.Generate()
		_, err := database.ExecContext(
			ctx,
			`
				INSERT INTO addresses (id, user_id, city, country, street_name, postal_code, type)
					VALUES ($1, $2, $3, $4, $5, $6, $7)
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

// GetAddresses returns the user's addresses in insertion order.
func (db *PostgresDB) GetAddresses(ctx context.Context, userID string, transaction *sql.Tx) ([]user.Address, error) {
	database := db.executor(transaction)

	if err := db.ensureUserExists(ctx, database, userID); err != nil {
		return nil, err
	}

	rows, err := database.QueryContext(
		ctx,
		`
			SELECT id, city, country, street_name, postal_code, type
				FROM addresses
				WHERE user_id = $1
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
		err = rows.Scan(
			&address.ID,
			&address.City,
			&address.Country,
			&address.StreetName,
			&address.PostalCode,
			&address.Type,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, address)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (db *PostgresDB) DeleteAddresses(ctx context.Context, userID string, transaction *sql.Tx) error {
	database := db.executor(transaction)

	if err := db.ensureUserExists(ctx, database, userID); err != nil {
		return err
	}

	_, err := database.ExecContext(ctx, `DELETE FROM addresses WHERE user_id = $1`, userID)

	return err
}

// CommitTransaction commits the given SQL transaction.
func (db *PostgresDB) CommitTransaction(transaction *sql.Tx) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic occurred while committing transaction: %v", r)
		}
	}()

	return transaction.Commit()
}

// RollbackTransaction rolls back the given SQL transaction. Rolling back an
// already committed transaction is not an error.
func (db *PostgresDB) RollbackTransaction(transaction *sql.Tx) error {
	err := transaction.Rollback()
	if errors.Is(err, sql.ErrTxDone) {
		return nil
	}

	return err
}

// BeginTransaction starts a new SQL transaction and returns it.
// The caller is responsible for committing or rolling it back.
func (db *PostgresDB) BeginTransaction() (*sql.Tx, error) {
	return db.database.Begin()
}

// Ping verifies connectivity with the PostgreSQL database within the configured timeout.
func (db *PostgresDB) Ping(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, db.connectionTimeout)
	defer cancel()

	return db.database.PingContext(ctxWithTimeout)
}

// Close closes the database connection and releases any associated resources.
func (db *PostgresDB) Close() error {
	return db.database.Close()
}

func (db *PostgresDB) ensureUserExists(ctx context.Context, database queryExecutor, userID string) error {
	var exists bool
	err := database.QueryRowContext(
		ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`,
		userID,
	).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return storage.ErrUserNotFound
	}

	return nil
}

func (db *PostgresDB) resetDB(ctx context.Context) error {
	_, err := db.database.ExecContext(
		ctx,
		`
			DO $$
			DECLARE
				r RECORD;
			BEGIN
				FOR r IN (SELECT tablename FROM pg_tables WHERE schemaname = 'public') LOOP
					EXECUTE 'DROP TABLE IF EXISTS ' || quote_ident(r.tablename) || ' CASCADE';
				END LOOP;
			END $$;
		`,
	)
	if err != nil {
		return fmt.Errorf(
			"in internal/db/postgresdb/postgresdb.go/resetDB(): error while `db.database.ExecContext()` calling: %w",
			err,
		)
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

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolationCode
}
