// Package service implements the user account operations: registration,
// login, retrieval, update, deletion and email verification. It composes the
// credential store and the address collection and enforces that a caller
// may only act on their own account.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	validator "github.com/go-playground/validator/v10"
	"github.com/thoas/go-funk"
	"golang.org/x/crypto/bcrypt"

	"github.com/patric-chuzhbe/mobileappws/internal/db/storage"
	"github.com/patric-chuzhbe/mobileappws/internal/models"
	"github.com/patric-chuzhbe/mobileappws/internal/user"
)

// maxPasswordBytes is the longest input bcrypt accepts.
const maxPasswordBytes = 72

type transactioner interface {
	BeginTransaction() (*sql.Tx, error)

	RollbackTransaction(transaction *sql.Tx) error

	CommitTransaction(transaction *sql.Tx) error
}

type pinger interface {
	Ping(ctx context.Context) error
}

type userStorage interface {
	storage.CredentialStore
	storage.AddressCollection
	transactioner
	pinger
}

type tokenIssuer interface {
	IssueToken(userID string) (string, error)
}

// Service is the user service. It is safe for concurrent use.
type Service struct {
	db         userStorage
	tokens     tokenIssuer
	bcryptCost int
	validate   *validator.Validate
	locks      *userLocks

	// dummyHash is compared against when the email is unknown so that
	// failed logins take the same time whatever the reason.
	dummyHash []byte
}

// New creates the service. bcryptCost is passed to bcrypt when hashing new
// passwords.
func New(db userStorage, tokens tokenIssuer, bcryptCost int) *Service {
	dummyHash, err := bcrypt.GenerateFromPassword([]byte("dummy password"), bcryptCost)
	if err != nil {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte("dummy password"), bcrypt.DefaultCost)
	}

	return &Service{
		db:         db,
		tokens:     tokens,
		bcryptCost: bcryptCost,
		validate:   validator.New(),
		locks:      newUserLocks(),
		dummyHash:  dummyHash,
	}
}

// CreateUser registers a new, unverified user together with its addresses.
func (s *Service) CreateUser(ctx context.Context, request models.CreateUserRequest) (*user.User, error) {
	if err := s.validate.Struct(request); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err.Error())
	}

	if len(request.Password) > maxPasswordBytes {
		return nil, fmt.Errorf("%w: password exceeds %d bytes", models.ErrInvalidInput, maxPasswordBytes)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(request.Password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("in internal/service/service.go/CreateUser(): error while `bcrypt.GenerateFromPassword()` calling: %w", err)
	}

	newUser := &user.User{
		FirstName:     request.FirstName,
		LastName:      request.LastName,
		Email:         request.Email,
		PasswordHash:  string(passwordHash),
		EmailVerified: false,
	}

	tx, err := s.db.BeginTransaction()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = s.db.RollbackTransaction(tx)
	}()

	newUser.ID, err = s.db.CreateUser(ctx, newUser, tx)
	if err != nil {
		return nil, mapStorageError(err)
	}

	newUser.Addresses, err = s.db.AddAddresses(ctx, newUser.ID, toAddresses(request.Addresses), tx)
	if err != nil {
		return nil, mapStorageError(err)
	}

	if err := s.db.CommitTransaction(tx); err != nil {
		return nil, err
	}

	return newUser, nil
}

// VerifyCredentials returns the user owning email if password matches and
// the email has been verified. Every failure is ErrInvalidCredentials.
func (s *Service) VerifyCredentials(ctx context.Context, email, password string) (*user.User, error) {
	usr, err := s.db.GetUserByEmail(ctx, email, nil)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
			return nil, models.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, models.ErrInvalidCredentials
	}

	if !usr.EmailVerified {
		return nil, models.ErrInvalidCredentials
	}

	return usr, nil
}

// Login checks the credentials and issues a bearer token for the user.
func (s *Service) Login(ctx context.Context, request models.LoginRequest) (models.LoginResult, error) {
	if err := s.validate.Struct(request); err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %s", models.ErrInvalidInput, err.Error())
	}

	usr, err := s.VerifyCredentials(ctx, request.Email, request.Password)
	if err != nil {
		return models.LoginResult{}, err
	}

	token, err := s.tokens.IssueToken(usr.ID)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("in internal/service/service.go/Login(): error while `s.tokens.IssueToken()` calling: %w", err)
	}

	return models.LoginResult{Token: token, UserID: usr.ID}, nil
}

// GetUser returns the user with its addresses. principalID is the id of the
// authenticated caller.
func (s *Service) GetUser(ctx context.Context, userID, principalID string) (*user.User, error) {
	if err := authorize(userID, principalID); err != nil {
		return nil, err
	}

	usr, err := s.db.GetUserByID(ctx, userID, nil)
	if err != nil {
		return nil, mapStorageError(err)
	}

	usr.Addresses, err = s.db.GetAddresses(ctx, userID, nil)
	if err != nil {
		return nil, mapStorageError(err)
	}

	return usr, nil
}

// UpdateUser changes the provided name fields. Email, password and
// addresses are never touched; the returned user carries them unchanged.
func (s *Service) UpdateUser(
	ctx context.Context,
	userID,
	principalID string,
	request models.UpdateUserRequest,
) (*user.User, error) {
	if err := authorize(userID, principalID); err != nil {
		return nil, err
	}

	firstName, hasFirstName := nonEmpty(request.FirstName)
	lastName, hasLastName := nonEmpty(request.LastName)
	if !hasFirstName && !hasLastName {
		return nil, fmt.Errorf("%w: firstName or lastName is required", models.ErrInvalidInput)
	}
	if err := s.validate.Struct(request); err != nil {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidInput, err.Error())
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	tx, err := s.db.BeginTransaction()
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = s.db.RollbackTransaction(tx)
	}()

	usr, err := s.db.GetUserByID(ctx, userID, tx)
	if err != nil {
		return nil, mapStorageError(err)
	}

	if hasFirstName {
		usr.FirstName = firstName
	}
	if hasLastName {
		usr.LastName = lastName
	}

	if err := s.db.UpdateUser(ctx, usr, tx); err != nil {
		return nil, mapStorageError(err)
	}

	usr.Addresses, err = s.db.GetAddresses(ctx, userID, tx)
	if err != nil {
		return nil, mapStorageError(err)
	}

	if err := s.db.CommitTransaction(tx); err != nil {
		return nil, err
	}

	return usr, nil
}

// DeleteUser removes the user and all of its addresses.
func (s *Service) DeleteUser(ctx context.Context, userID, principalID string) error {
	if err := authorize(userID, principalID); err != nil {
		return err
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	tx, err := s.db.BeginTransaction()
	if err != nil {
		return err
	}
	defer func() {
		_ = s.db.RollbackTransaction(tx)
	}()

	if _, err := s.db.GetUserByID(ctx, userID, tx); err != nil {
		return mapStorageError(err)
	}

	if err := s.db.DeleteAddresses(ctx, userID, tx); err != nil {
		return mapStorageError(err)
	}

	if err := s.db.DeleteUser(ctx, userID, tx); err != nil {
		return mapStorageError(err)
	}

	return s.db.CommitTransaction(tx)
}

// VerifyEmail marks the user's email as verified, enabling login. It is
// the hook used by the out-of-band verification process.
func (s *Service) VerifyEmail(ctx context.Context, userID string) error {
	unlock := s.locks.lock(userID)
	defer unlock()

	return mapStorageError(s.db.SetEmailVerified(ctx, userID, true, nil))
}

// Ping checks the health of the storage layer.
func (s *Service) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

// authorize denies by default: the caller must be authenticated and may
// only address their own record.
func authorize(userID, principalID string) error {
	if principalID == "" {
		return models.ErrUnauthorized
	}
	if userID != principalID {
		return models.ErrForbidden
	}

	return nil
}

func mapStorageError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, storage.ErrUserNotFound):
		return models.ErrNotFound
	case errors.Is(err, storage.ErrEmailAlreadyExists):
		return models.ErrDuplicateEmail
	default:
		return err
	}
}

func nonEmpty(value *string) (string, bool) {
	if value == nil || *value == "" {
		return "", false
	}

	return *value, true
}

func toAddresses(requests []models.AddressRequest) []user.Address {
	if len(requests) == 0 {
		return []user.Address{}
	}

	return funk.Map(requests, func(request models.AddressRequest) user.Address {
		return user.Address{
			City:       request.City,
			Country:    request.Country,
			StreetName: request.StreetName,
			PostalCode: request.PostalCode,
			Type:       request.Type,
		}
	}).([]user.Address)
}

// ToUserResponse renders usr the way both transports return it.
func ToUserResponse(usr *user.User) models.UserResponse {
	addresses := []models.AddressResponse{}
	if len(usr.Addresses) > 0 {
		addresses = funk.Map(usr.Addresses, func(address user.Address) models.AddressResponse {
			return models.AddressResponse{
				AddressID:  address.ID,
				City:       address.City,
				Country:    address.Country,
				StreetName: address.StreetName,
				PostalCode: address.PostalCode,
				Type:       address.Type,
			}
		}).([]models.AddressResponse)
	}

	return models.UserResponse{
		UserID:    usr.ID,
		FirstName: usr.FirstName,
		LastName:  usr.LastName,
		Email:     usr.Email,
		Addresses: addresses,
	}
}
