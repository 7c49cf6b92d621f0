package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/patric-chuzhbe/mobileappws/internal/db/memorystorage"
	"github.com/patric-chuzhbe/mobileappws/internal/db/storage"
	"github.com/patric-chuzhbe/mobileappws/internal/idgen"
	"github.com/patric-chuzhbe/mobileappws/internal/mockstorage"
	"github.com/patric-chuzhbe/mobileappws/internal/models"
	"github.com/patric-chuzhbe/mobileappws/internal/user"
)

type fakeTokens struct{}

func (fakeTokens) IssueToken(userID string) (string, error) {
	return "Bearer token-for-" + userID, nil
}

func newTestService(t *testing.T) (*Service, *memorystorage.MemoryStorage) {
	t.Helper()

	db, err := memorystorage.New()
	require.NoError(t, err)

	return New(db, fakeTokens{}, bcrypt.MinCost), db
}

func validCreateRequest() models.CreateUserRequest {
	return models.CreateUserRequest{
		FirstName: "Juan",
		LastName:  "Perez",
		Email:     "prueba@test.com",
		Password:  "12345",
		Addresses: []models.AddressRequest{
			{City: "Vancouver", Country: "Canada", StreetName: "123 Street name", PostalCode: "ABCBA", Type: "shipping"},
			{City: "Vancouver", Country: "Canada", StreetName: "456 Street name", PostalCode: "ABCBA", Type: "shipping"},
		},
	}
}

func createVerifiedUser(t *testing.T, svc *Service, request models.CreateUserRequest) *user.User {
	t.Helper()

	created, err := svc.CreateUser(context.Background(), request)
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(context.Background(), created.ID))

	return created
}

func TestCreateUser(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, validCreateRequest())
	require.NoError(t, err)

	assert.True(t, idgen.IsValid(created.ID))
	assert.Equal(t, "Juan", created.FirstName)
	assert.Equal(t, "Perez", created.LastName)
	assert.Equal(t, "prueba@test.com", created.Email)
	assert.False(t, created.EmailVerified)
	require.Len(t, created.Addresses, 2)
	assert.Equal(t, "123 Street name", created.Addresses[0].StreetName)
	assert.Equal(t, "456 Street name", created.Addresses[1].StreetName)
	assert.NotEqual(t, created.Addresses[0].ID, created.Addresses[1].ID)
	for _, address := range created.Addresses {
		assert.True(t, idgen.IsValid(address.ID))
	}

	stored, err := db.GetUserByID(ctx, created.ID, nil)
	require.NoError(t, err)
	assert.NotEqual(t, "12345", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("12345")))
}

func TestCreateUserWithoutAddresses(t *testing.T) {
	svc, _ := newTestService(t)

	request := validCreateRequest()
	request.Addresses = nil

	created, err := svc.CreateUser(context.Background(), request)
	require.NoError(t, err)
	assert.NotNil(t, created.Addresses)
	assert.Empty(t, created.Addresses)
}

func TestCreateUserValidation(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(r *models.CreateUserRequest)
	}{
		{name: "missing first name", modify: func(r *models.CreateUserRequest) { r.FirstName = "" }},
		{name: "missing last name", modify: func(r *models.CreateUserRequest) { r.LastName = "" }},
		{name: "missing email", modify: func(r *models.CreateUserRequest) { r.Email = "" }},
		{name: "malformed email", modify: func(r *models.CreateUserRequest) { r.Email = "not-an-email" }},
		{name: "missing password", modify: func(r *models.CreateUserRequest) { r.Password = "" }},
		{name: "address without city", modify: func(r *models.CreateUserRequest) { r.Addresses[1].City = "" }},
		{name: "password too long", modify: func(r *models.CreateUserRequest) { r.Password = strings.Repeat("x", 73) }},
		{name: "first name too long", modify: func(r *models.CreateUserRequest) { r.FirstName = strings.Repeat("a", 51) }},
		{name: "last name too long", modify: func(r *models.CreateUserRequest) { r.LastName = strings.Repeat("a", 51) }},
		{name: "email too long", modify: func(r *models.CreateUserRequest) { r.Email = strings.Repeat("a", 60) + "@" + strings.Repeat("b", 56) + ".com" }},
		{name: "city too long", modify: func(r *models.CreateUserRequest) { r.Addresses[0].City = strings.Repeat("c", 51) }},
		{name: "country too long", modify: func(r *models.CreateUserRequest) { r.Addresses[0].Country = strings.Repeat("c", 51) }},
		{name: "street name too long", modify: func(r *models.CreateUserRequest) { r.Addresses[0].StreetName = strings.Repeat("s", 101) }},
		{name: "postal code too long", modify: func(r *models.CreateUserRequest) { r.Addresses[1].PostalCode = strings.Repeat("p", 21) }},
		{name: "address type too long", modify: func(r *models.CreateUserRequest) { r.Addresses[1].Type = strings.Repeat("t", 21) }},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			svc, db := newTestService(t)

			request := validCreateRequest()
			testCase.modify(&request)

			_, err := svc.CreateUser(context.Background(), request)
			assert.ErrorIs(t, err, models.ErrInvalidInput)

			_, err = db.GetUserByEmail(context.Background(), "prueba@test.com", nil)
			assert.ErrorIs(t, err, storage.ErrUserNotFound)
		})
	}
}

func TestCreateUserAcceptsLimitLengths(t *testing.T) {
	svc, _ := newTestService(t)

	request := validCreateRequest()
	request.FirstName = strings.Repeat("Ñ", 50)
	request.LastName = strings.Repeat("a", 50)
	request.Addresses[0].City = strings.Repeat("c", 50)
	request.Addresses[0].Country = strings.Repeat("c", 50)
	request.Addresses[0].StreetName = strings.Repeat("s", 100)
	request.Addresses[0].PostalCode = strings.Repeat("p", 20)
	request.Addresses[0].Type = strings.Repeat("t", 20)

	created, err := svc.CreateUser(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, request.FirstName, created.FirstName)
	assert.Equal(t, request.Addresses[0].StreetName, created.Addresses[0].StreetName)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, validCreateRequest())
	require.NoError(t, err)

	request := validCreateRequest()
	request.Email = "PRUEBA@test.com"
	_, err = svc.CreateUser(ctx, request)
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
}

func TestCreateUserConcurrentSameEmail(t *testing.T) {
	svc, _ := newTestService(t)

	const attempts = 10
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CreateUser(context.Background(), validCreateRequest())
			if err == nil {
				successes.Add(1)
				return
			}
			assert.ErrorIs(t, err, models.ErrDuplicateEmail)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
}

func TestLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	unverified, err := svc.CreateUser(ctx, validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "prueba@test.com", Password: "12345"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials, "unverified email must not log in")

	require.NoError(t, svc.VerifyEmail(ctx, unverified.ID))

	testCases := []struct {
		name    string
		request models.LoginRequest
		wantErr error
	}{
		{name: "positive", request: models.LoginRequest{Email: "prueba@test.com", Password: "12345"}},
		{name: "email case insensitive", request: models.LoginRequest{Email: "Prueba@Test.com", Password: "12345"}},
		{name: "wrong password", request: models.LoginRequest{Email: "prueba@test.com", Password: "54321"}, wantErr: models.ErrInvalidCredentials},
		{name: "unknown email", request: models.LoginRequest{Email: "nobody@test.com", Password: "12345"}, wantErr: models.ErrInvalidCredentials},
		{name: "missing password", request: models.LoginRequest{Email: "prueba@test.com"}, wantErr: models.ErrInvalidInput},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			result, err := svc.Login(ctx, testCase.request)
			if testCase.wantErr != nil {
				assert.ErrorIs(t, err, testCase.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, unverified.ID, result.UserID)
			assert.Equal(t, "Bearer token-for-"+unverified.ID, result.Token)
		})
	}
}

func TestGetUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created := createVerifiedUser(t, svc, validCreateRequest())

	other := validCreateRequest()
	other.Email = "other@test.com"
	otherUser := createVerifiedUser(t, svc, other)

	got, err := svc.GetUser(ctx, created.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "prueba@test.com", got.Email)
	require.Len(t, got.Addresses, 2)
	assert.Equal(t, created.Addresses[0].ID, got.Addresses[0].ID)
	assert.Equal(t, created.Addresses[1].ID, got.Addresses[1].ID)

	_, err = svc.GetUser(ctx, otherUser.ID, created.ID)
	assert.ErrorIs(t, err, models.ErrForbidden)

	_, err = svc.GetUser(ctx, created.ID, "")
	assert.ErrorIs(t, err, models.ErrUnauthorized)

	ghost := idgen.Generate()
	_, err = svc.GetUser(ctx, ghost, ghost)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateUser(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created := createVerifiedUser(t, svc, validCreateRequest())

	firstName, lastName, empty := "Juan H.", "P. T.", ""

	updated, err := svc.UpdateUser(ctx, created.ID, created.ID, models.UpdateUserRequest{
		FirstName: &firstName,
		LastName:  &lastName,
	})
	require.NoError(t, err)
	assert.Equal(t, "Juan H.", updated.FirstName)
	assert.Equal(t, "P. T.", updated.LastName)
	assert.Equal(t, "prueba@test.com", updated.Email)
	assert.Len(t, updated.Addresses, 2)

	onlyFirst := "Juanito"
	updated, err = svc.UpdateUser(ctx, created.ID, created.ID, models.UpdateUserRequest{
		FirstName: &onlyFirst,
		LastName:  &empty,
	})
	require.NoError(t, err)
	assert.Equal(t, "Juanito", updated.FirstName)
	assert.Equal(t, "P. T.", updated.LastName)

	_, err = svc.UpdateUser(ctx, created.ID, created.ID, models.UpdateUserRequest{})
	assert.ErrorIs(t, err, models.ErrInvalidInput)

	_, err = svc.UpdateUser(ctx, created.ID, idgen.Generate(), models.UpdateUserRequest{FirstName: &firstName})
	assert.ErrorIs(t, err, models.ErrForbidden)

	result, err := svc.Login(ctx, models.LoginRequest{Email: "prueba@test.com", Password: "12345"})
	require.NoError(t, err, "update must keep the credentials")
	assert.Equal(t, created.ID, result.UserID)
}

func TestUpdateUserValidation(t *testing.T) {
	tooLong, limit := strings.Repeat("a", 51), strings.Repeat("b", 50)

	testCases := []struct {
		name    string
		request models.UpdateUserRequest
		wantErr bool
	}{
		{name: "first name too long", request: models.UpdateUserRequest{FirstName: &tooLong}, wantErr: true},
		{name: "last name too long", request: models.UpdateUserRequest{LastName: &tooLong}, wantErr: true},
		{name: "one valid one too long", request: models.UpdateUserRequest{FirstName: &limit, LastName: &tooLong}, wantErr: true},
		{name: "names at the limit", request: models.UpdateUserRequest{FirstName: &limit, LastName: &limit}},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			svc, db := newTestService(t)
			ctx := context.Background()
			created := createVerifiedUser(t, svc, validCreateRequest())

			updated, err := svc.UpdateUser(ctx, created.ID, created.ID, testCase.request)
			if !testCase.wantErr {
				require.NoError(t, err)
				assert.Equal(t, limit, updated.FirstName)
				return
			}
			assert.ErrorIs(t, err, models.ErrInvalidInput)

			stored, err := db.GetUserByID(ctx, created.ID, nil)
			require.NoError(t, err)
			assert.Equal(t, "Juan", stored.FirstName)
			assert.Equal(t, "Perez", stored.LastName)
		})
	}
}

func TestDeleteUser(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()

	created := createVerifiedUser(t, svc, validCreateRequest())

	other := validCreateRequest()
	other.Email = "other@test.com"
	otherUser := createVerifiedUser(t, svc, other)

	assert.ErrorIs(t, svc.DeleteUser(ctx, otherUser.ID, created.ID), models.ErrForbidden)

	require.NoError(t, svc.DeleteUser(ctx, created.ID, created.ID))

	_, err := svc.GetUser(ctx, created.ID, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = db.GetAddresses(ctx, created.ID, nil)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	assert.ErrorIs(t, svc.DeleteUser(ctx, created.ID, created.ID), models.ErrNotFound)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "prueba@test.com", Password: "12345"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	again, err := svc.CreateUser(ctx, validCreateRequest())
	require.NoError(t, err, "email must be free again after delete")
	assert.NotEqual(t, created.ID, again.ID)

	got, err := svc.GetUser(ctx, otherUser.ID, otherUser.ID)
	require.NoError(t, err)
	assert.Len(t, got.Addresses, 2)
}

func TestConcurrentDeletes(t *testing.T) {
	svc, db := newTestService(t)
	ctx := context.Background()
	created := createVerifiedUser(t, svc, validCreateRequest())

	const attempts = 10
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := svc.DeleteUser(ctx, created.ID, created.ID)
			if err == nil {
				successes.Add(1)
				return
			}
			assert.ErrorIs(t, err, models.ErrNotFound)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())

	_, err := svc.GetUser(ctx, created.ID, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
	_, err = db.GetUserByEmail(ctx, "prueba@test.com", nil)
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestConcurrentUpdatesAndDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	created := createVerifiedUser(t, svc, validCreateRequest())

	const updaters = 10
	var (
		wg      sync.WaitGroup
		updated atomic.Int32
		missed  atomic.Int32
	)
	for i := 0; i < updaters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := strings.Repeat("n", i+1)
			usr, err := svc.UpdateUser(ctx, created.ID, created.ID, models.UpdateUserRequest{
				FirstName: &name,
				LastName:  &name,
			})
			if err != nil {
				assert.ErrorIs(t, err, models.ErrNotFound)
				missed.Add(1)
				return
			}
			assert.Equal(t, usr.FirstName, usr.LastName)
			assert.Len(t, usr.Addresses, 2)
			updated.Add(1)
		}(i)
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, svc.DeleteUser(ctx, created.ID, created.ID))
	}()
	wg.Wait()

	assert.Equal(t, int32(updaters), updated.Load()+missed.Load())

	_, err := svc.GetUser(ctx, created.ID, created.ID)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestConcurrentUpdatesDoNotInterleave(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	created := createVerifiedUser(t, svc, validCreateRequest())

	const updaters = 10
	var wg sync.WaitGroup
	for i := 0; i < updaters; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := strings.Repeat("n", i+1)
			_, err := svc.UpdateUser(ctx, created.ID, created.ID, models.UpdateUserRequest{
				FirstName: &name,
				LastName:  &name,
			})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	final, err := svc.GetUser(ctx, created.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, final.FirstName, final.LastName)
	assert.Len(t, final.Addresses, 2)
}

func TestVerifyEmailUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.VerifyEmail(context.Background(), idgen.Generate())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestCreateUserRollsBackOnAddressFailure(t *testing.T) {
	db := &mockstorage.StorageMock{}
	svc := New(db, fakeTokens{}, bcrypt.MinCost)

	addressErr := errors.New("disk full")
	tx := &sql.Tx{}

	db.On("BeginTransaction").Return(tx, nil)
	db.On("CreateUser", mock.Anything, mock.AnythingOfType("*user.User"), tx).Return("generated-id", nil)
	db.On("AddAddresses", mock.Anything, "generated-id", mock.Anything, tx).Return(nil, addressErr)
	db.On("RollbackTransaction", tx).Return(nil)

	_, err := svc.CreateUser(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, addressErr)

	db.AssertCalled(t, "RollbackTransaction", tx)
	db.AssertNotCalled(t, "CommitTransaction", mock.Anything)
}

func TestDeleteUserStopsOnAddressFailure(t *testing.T) {
	db := &mockstorage.StorageMock{}
	svc := New(db, fakeTokens{}, bcrypt.MinCost)

	addressErr := errors.New("connection reset")
	tx := &sql.Tx{}

	db.On("BeginTransaction").Return(tx, nil)
	db.On("GetUserByID", mock.Anything, "owner", tx).Return(&user.User{ID: "owner"}, nil)
	db.On("DeleteAddresses", mock.Anything, "owner", tx).Return(addressErr)
	db.On("RollbackTransaction", tx).Return(nil)

	err := svc.DeleteUser(context.Background(), "owner", "owner")
	assert.ErrorIs(t, err, addressErr)

	db.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything, mock.Anything)
	db.AssertNotCalled(t, "CommitTransaction", mock.Anything)
}

func TestToUserResponse(t *testing.T) {
	response := ToUserResponse(&user.User{
		ID:           "u1",
		FirstName:    "Juan",
		LastName:     "Perez",
		Email:        "prueba@test.com",
		PasswordHash: "secret",
		Addresses: []user.Address{
			{ID: "a1", City: "Vancouver", Country: "Canada", StreetName: "123 Street name", PostalCode: "ABCBA", Type: "shipping"},
		},
	})

	assert.Equal(t, "u1", response.UserID)
	require.Len(t, response.Addresses, 1)
	assert.Equal(t, "a1", response.Addresses[0].AddressID)

	empty := ToUserResponse(&user.User{ID: "u2"})
	assert.NotNil(t, empty.Addresses)
	assert.Empty(t, empty.Addresses)
}

func TestUserLocksSerialize(t *testing.T) {
	locks := newUserLocks()

	var (
		wg      sync.WaitGroup
		active  atomic.Int32
		overlap atomic.Bool
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.lock("same")
			defer unlock()
			if active.Add(1) > 1 {
				overlap.Store(true)
			}
			active.Add(-1)
		}()
	}
	wg.Wait()

	assert.False(t, overlap.Load())
	assert.Empty(t, locks.locks)
}
