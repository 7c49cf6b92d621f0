package router

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/patric-chuzhbe/mobileappws/internal/auth"
	"github.com/patric-chuzhbe/mobileappws/internal/db/memorystorage"
	"github.com/patric-chuzhbe/mobileappws/internal/db/storage"
	"github.com/patric-chuzhbe/mobileappws/internal/idgen"
	"github.com/patric-chuzhbe/mobileappws/internal/ipchecker"
	"github.com/patric-chuzhbe/mobileappws/internal/mockstorage"
	"github.com/patric-chuzhbe/mobileappws/internal/models"
	"github.com/patric-chuzhbe/mobileappws/internal/service"
)

const contextPath = "/mobile-app-ws"

var testSigningKey = []byte("router-test-signing-key")

type testServer struct {
	*httptest.Server
	client *resty.Client
}

func (s *testServer) url(format string, args ...interface{}) string {
	return s.URL + contextPath + fmt.Sprintf(format, args...)
}

func setupTestServer(t *testing.T, trustedSubnet string) *testServer {
	t.Helper()

	db, err := memorystorage.New()
	require.NoError(t, err)

	return setupTestServerWithStorage(t, db, trustedSubnet)
}

func setupTestServerWithStorage(t *testing.T, db storage.Storage, trustedSubnet string) *testServer {
	t.Helper()

	theAuth := auth.New(testSigningKey, time.Hour, "Bearer ")
	svc := service.New(db, theAuth, bcrypt.MinCost)

	guard, err := ipchecker.New(trustedSubnet)
	require.NoError(t, err)

	srv := httptest.NewServer(New(svc, theAuth, guard, contextPath))
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, client: resty.New()}
}

func createUserRequestBody() models.CreateUserRequest {
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

func createUser(t *testing.T, srv *testServer, body models.CreateUserRequest) models.UserResponse {
	t.Helper()

	var created models.UserResponse
	resp, err := srv.client.R().SetBody(body).SetResult(&created).Post(srv.url("/users"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())

	return created
}

func verifyEmail(t *testing.T, srv *testServer, userID string) {
	t.Helper()

	resp, err := srv.client.R().Put(srv.url("/internal/users/%s/email-verification", userID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
}

func login(t *testing.T, srv *testServer, email, password string) (token, userID string) {
	t.Helper()

	resp, err := srv.client.R().
		SetBody(models.LoginRequest{Email: email, Password: password}).
		Post(srv.url("/users/login"))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())

	return resp.Header().Get("Authorization"), resp.Header().Get("UserID")
}

func TestUserLifecycle(t *testing.T) {
	srv := setupTestServer(t, "127.0.0.0/8")

	created := createUser(t, srv, createUserRequestBody())
	assert.Len(t, created.UserID, idgen.Length)
	assert.Equal(t, "prueba@test.com", created.Email)
	require.Len(t, created.Addresses, 2)
	for _, address := range created.Addresses {
		assert.Len(t, address.AddressID, idgen.Length)
	}

	resp, err := srv.client.R().
		SetBody(models.LoginRequest{Email: "prueba@test.com", Password: "12345"}).
		Post(srv.url("/users/login"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode(), "unverified users cannot log in")
	assert.Empty(t, resp.Header().Get("Authorization"))

	verifyEmail(t, srv, created.UserID)

	token, userID := login(t, srv, "prueba@test.com", "12345")
	assert.NotEmpty(t, token)
	assert.Regexp(t, `^Bearer \S+$`, token)
	assert.Equal(t, created.UserID, userID)

	var fetched models.UserResponse
	resp, err = srv.client.R().
		SetHeader("Authorization", token).
		SetResult(&fetched).
		Get(srv.url("/users/%s", userID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, created.UserID, fetched.UserID)
	assert.Equal(t, "prueba@test.com", fetched.Email)
	assert.Equal(t, "Juan", fetched.FirstName)
	assert.Equal(t, "Perez", fetched.LastName)
	assert.Equal(t, created.Addresses, fetched.Addresses)

	var updated models.UserResponse
	resp, err = srv.client.R().
		SetHeader("Authorization", token).
		SetBody(map[string]string{"firstName": "Juan H.", "lastName": "P. T."}).
		SetResult(&updated).
		Put(srv.url("/users/%s", userID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "Juan H.", updated.FirstName)
	assert.Equal(t, "P. T.", updated.LastName)
	assert.Equal(t, created.Addresses, updated.Addresses)

	var deleted models.OperationStatusResponse
	resp, err = srv.client.R().
		SetHeader("Authorization", token).
		SetResult(&deleted).
		Delete(srv.url("/users/%s", userID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "SUCCESS", deleted.OperationResult)
	assert.Equal(t, "DELETE", deleted.OperationName)

	resp, err = srv.client.R().
		SetHeader("Authorization", token).
		Get(srv.url("/users/%s", userID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestPostUsers(t *testing.T) {
	srv := setupTestServer(t, "")
	createUser(t, srv, createUserRequestBody())

	testCases := []struct {
		name     string
		body     interface{}
		wantCode int
	}{
		{name: "duplicate email", body: createUserRequestBody(), wantCode: http.StatusConflict},
		{name: "malformed json", body: `{"firstName":`, wantCode: http.StatusBadRequest},
		{name: "missing password", body: map[string]string{"firstName": "A", "lastName": "B", "email": "a@b.com"}, wantCode: http.StatusUnprocessableEntity},
		{name: "invalid email", body: map[string]string{"firstName": "A", "lastName": "B", "email": "nope", "password": "x"}, wantCode: http.StatusUnprocessableEntity},
		{
			name:     "first name too long",
			body:     map[string]string{"firstName": strings.Repeat("a", 51), "lastName": "B", "email": "long@test.com", "password": "x"},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "postal code too long",
			body: map[string]interface{}{
				"firstName": "A", "lastName": "B", "email": "postal@test.com", "password": "x",
				"addresses": []map[string]string{
					{"city": "Vancouver", "country": "Canada", "streetName": "123", "postalCode": strings.Repeat("9", 21), "type": "shipping"},
				},
			},
			wantCode: http.StatusUnprocessableEntity,
		},
		{
			name: "no addresses",
			body: map[string]string{"firstName": "A", "lastName": "B", "email": "noaddr@test.com", "password": "x"},
			wantCode: http.StatusOK,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			var errorResponse models.ErrorResponse
			resp, err := srv.client.R().
				SetHeader("Content-Type", "application/json").
				SetBody(testCase.body).
				SetError(&errorResponse).
				Post(srv.url("/users"))
			require.NoError(t, err)

			assert.Equal(t, testCase.wantCode, resp.StatusCode(), resp.String())
			if testCase.wantCode != http.StatusOK {
				assert.NotEmpty(t, errorResponse.Error)
			}
		})
	}
}

func TestPostUsersLoginFailures(t *testing.T) {
	srv := setupTestServer(t, "127.0.0.0/8")
	created := createUser(t, srv, createUserRequestBody())
	verifyEmail(t, srv, created.UserID)

	testCases := []struct {
		name     string
		body     interface{}
		wantCode int
	}{
		{name: "wrong password", body: models.LoginRequest{Email: "prueba@test.com", Password: "nope"}, wantCode: http.StatusUnauthorized},
		{name: "unknown email", body: models.LoginRequest{Email: "ghost@test.com", Password: "12345"}, wantCode: http.StatusUnauthorized},
		{name: "missing email", body: models.LoginRequest{Password: "12345"}, wantCode: http.StatusUnprocessableEntity},
		{name: "malformed json", body: `not json`, wantCode: http.StatusBadRequest},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			resp, err := srv.client.R().
				SetHeader("Content-Type", "application/json").
				SetBody(testCase.body).
				Post(srv.url("/users/login"))
			require.NoError(t, err)

			assert.Equal(t, testCase.wantCode, resp.StatusCode())
			assert.Empty(t, resp.Header().Get("Authorization"))
			assert.Empty(t, resp.Header().Get("UserID"))
		})
	}
}

func TestAuthenticatedRoutesRejectBadTokens(t *testing.T) {
	srv := setupTestServer(t, "127.0.0.0/8")
	created := createUser(t, srv, createUserRequestBody())
	verifyEmail(t, srv, created.UserID)
	token, _ := login(t, srv, "prueba@test.com", "12345")

	other := createUserRequestBody()
	other.Email = "other@test.com"
	otherUser := createUser(t, srv, other)

	foreignAuth := auth.New([]byte("some-other-key"), time.Hour, "Bearer ")
	forged, err := foreignAuth.IssueToken(created.UserID)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		token    string
		userID   string
		wantCode int
	}{
		{name: "no token", token: "", userID: created.UserID, wantCode: http.StatusUnauthorized},
		{name: "garbage token", token: "Bearer garbage", userID: created.UserID, wantCode: http.StatusUnauthorized},
		{name: "forged token", token: forged, userID: created.UserID, wantCode: http.StatusUnauthorized},
		{name: "someone else's record", token: token, userID: otherUser.UserID, wantCode: http.StatusForbidden},
		{name: "own record", token: token, userID: created.UserID, wantCode: http.StatusOK},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			for _, method := range []string{http.MethodGet, http.MethodPut} {
				req := srv.client.R().SetBody(map[string]string{"firstName": "Changed"})
				if testCase.token != "" {
					req.SetHeader("Authorization", testCase.token)
				}

				resp, err := req.Execute(method, srv.url("/users/%s", testCase.userID))
				require.NoError(t, err)
				assert.Equal(t, testCase.wantCode, resp.StatusCode(), method)
			}
		})
	}

	resp, err := srv.client.R().
		SetHeader("Authorization", token).
		Delete(srv.url("/users/%s", otherUser.UserID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())
}

func TestPutUserValidation(t *testing.T) {
	srv := setupTestServer(t, "127.0.0.0/8")
	created := createUser(t, srv, createUserRequestBody())
	verifyEmail(t, srv, created.UserID)
	token, userID := login(t, srv, "prueba@test.com", "12345")

	resp, err := srv.client.R().
		SetHeader("Authorization", token).
		SetBody(map[string]string{"firstName": "", "lastName": ""}).
		Put(srv.url("/users/%s", userID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())

	var updated models.UserResponse
	resp, err = srv.client.R().
		SetHeader("Authorization", token).
		SetBody(map[string]string{"lastName": "Only"}).
		SetResult(&updated).
		Put(srv.url("/users/%s", userID))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "Juan", updated.FirstName)
	assert.Equal(t, "Only", updated.LastName)
	assert.Equal(t, "prueba@test.com", updated.Email)

	resp, err = srv.client.R().
		SetHeader("Authorization", token).
		SetBody(map[string]string{"lastName": strings.Repeat("x", 51)}).
		Put(srv.url("/users/%s", userID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode())
}

func TestMalformedUserIDIsNotFound(t *testing.T) {
	srv := setupTestServer(t, "127.0.0.0/8")
	created := createUser(t, srv, createUserRequestBody())
	verifyEmail(t, srv, created.UserID)
	token, _ := login(t, srv, "prueba@test.com", "12345")

	testCases := []struct {
		name     string
		token    string
		userID   string
		wantCode int
	}{
		{name: "too short", token: token, userID: "abc", wantCode: http.StatusNotFound},
		{name: "too long", token: token, userID: created.UserID + "x", wantCode: http.StatusNotFound},
		{name: "bad alphabet", token: token, userID: strings.Repeat("-", idgen.Length), wantCode: http.StatusNotFound},
		{name: "no token", token: "", userID: "abc", wantCode: http.StatusUnauthorized},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
				var errorResponse models.ErrorResponse
				req := srv.client.R().
					SetBody(map[string]string{"firstName": "Changed"}).
					SetError(&errorResponse)
				if testCase.token != "" {
					req.SetHeader("Authorization", testCase.token)
				}

				resp, err := req.Execute(method, srv.url("/users/%s", testCase.userID))
				require.NoError(t, err)
				assert.Equal(t, testCase.wantCode, resp.StatusCode(), method)
				assert.NotEmpty(t, errorResponse.Error, method)
			}
		})
	}

	resp, err := srv.client.R().Put(srv.url("/internal/users/%s/email-verification", "abc"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestEmailVerificationGuard(t *testing.T) {
	srv := setupTestServer(t, "")
	created := createUser(t, srv, createUserRequestBody())

	resp, err := srv.client.R().Put(srv.url("/internal/users/%s/email-verification", created.UserID))
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode())

	trusted := setupTestServer(t, "127.0.0.0/8")
	resp, err = trusted.client.R().Put(trusted.url("/internal/users/%s/email-verification", idgen.Generate()))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
}

func TestConcurrentCreateSameEmail(t *testing.T) {
	srv := setupTestServer(t, "")

	const attempts = 8
	codes := make(chan int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := srv.client.R().SetBody(createUserRequestBody()).Post(srv.url("/users"))
			if assert.NoError(t, err) {
				codes <- resp.StatusCode()
			}
		}()
	}
	wg.Wait()
	close(codes)

	counts := map[int]int{}
	for code := range codes {
		counts[code]++
	}
	assert.Equal(t, 1, counts[http.StatusOK])
	assert.Equal(t, attempts-1, counts[http.StatusConflict])
}

func TestGetPing(t *testing.T) {
	srv := setupTestServer(t, "")

	resp, err := srv.client.R().Get(srv.URL + "/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())

	db := &mockstorage.StorageMock{}
	db.On("Ping", mock.Anything).Return(errors.New("connection refused"))
	broken := setupTestServerWithStorage(t, db, "")

	resp, err = broken.client.R().Get(broken.URL + "/ping")
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode())
}

func TestInternalErrorsAreOpaque(t *testing.T) {
	db := &mockstorage.StorageMock{}
	db.On("BeginTransaction").Return(nil, errors.New("pq: password authentication failed for user admin"))
	srv := setupTestServerWithStorage(t, db, "")

	var errorResponse models.ErrorResponse
	resp, err := srv.client.R().
		SetBody(createUserRequestBody()).
		SetError(&errorResponse).
		Post(srv.url("/users"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode())
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), errorResponse.Error)
}

func TestGzipResponses(t *testing.T) {
	srv := setupTestServer(t, "")

	resp, err := srv.client.R().
		SetHeader("Accept-Encoding", "gzip").
		SetDoNotParseResponse(true).
		SetBody(createUserRequestBody()).
		Post(srv.url("/users"))
	require.NoError(t, err)
	defer resp.RawBody().Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, "gzip", resp.Header().Get("Content-Encoding"))
}
