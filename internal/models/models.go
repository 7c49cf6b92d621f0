package models

// Length limits below match the column sizes in cmd/usersvc/migrations.

// AddressRequest is a single address in a create user request.
type AddressRequest struct {
	City       string `json:"city" validate:"required,max=50"`
	Country    string `json:"country" validate:"required,max=50"`
	StreetName string `json:"streetName" validate:"required,max=100"`
	PostalCode string `json:"postalCode" validate:"required,max=20"`
	Type       string `json:"type" validate:"required,max=20"`
}

// CreateUserRequest is the body of POST /users.
type CreateUserRequest struct {
	FirstName string           `json:"firstName" validate:"required,max=50"`
	LastName  string           `json:"lastName" validate:"required,max=50"`
	Email     string           `json:"email" validate:"required,email,max=120"`
	Password  string           `json:"password" validate:"required,max=72"`
	Addresses []AddressRequest `json:"addresses" validate:"dive"`
}

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest is the body of PUT /users/{userId}. Only name fields
// may be changed; absent or empty fields are left untouched.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty" validate:"omitempty,max=50"`
	LastName  *string `json:"lastName,omitempty" validate:"omitempty,max=50"`
}

type AddressResponse struct {
	AddressID  string `json:"addressId"`
	City       string `json:"city"`
	Country    string `json:"country"`
	StreetName string `json:"streetName"`
	PostalCode string `json:"postalCode"`
	Type       string `json:"type"`
}

type UserResponse struct {
	UserID    string            `json:"userId"`
	FirstName string            `json:"firstName"`
	LastName  string            `json:"lastName"`
	Email     string            `json:"email"`
	Addresses []AddressResponse `json:"addresses"`
}

// LoginResult carries what a successful login hands back to the transport:
// the bearer token and the identifier of the logged in user.
type LoginResult struct {
	Token  string
	UserID string
}

// OperationStatusResponse reports the outcome of an operation that has no
// resource to return, such as a deletion.
type OperationStatusResponse struct {
	OperationName   string `json:"operationName"`
	OperationResult string `json:"operationResult"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	OperationNameDelete      = "DELETE"
	OperationNameVerifyEmail = "VERIFY_EMAIL"

	OperationResultSuccess = "SUCCESS"
)

const (
	StorageTypeUnknown = iota
	StorageTypePostgresql
	StorageTypeSQLite
	StorageTypeFile
	StorageTypeMemory
)
