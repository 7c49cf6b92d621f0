package grpcserver

import (
	"context"
	"errors"

	"github.com/thoas/go-funk"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/patric-chuzhbe/mobileappws/internal/auth"
	pb "github.com/patric-chuzhbe/mobileappws/internal/grpcserver/proto"
	"github.com/patric-chuzhbe/mobileappws/internal/idgen"
	"github.com/patric-chuzhbe/mobileappws/internal/logger"
	"github.com/patric-chuzhbe/mobileappws/internal/models"
	"github.com/patric-chuzhbe/mobileappws/internal/user"
)

type userService interface {
	CreateUser(ctx context.Context, request models.CreateUserRequest) (*user.User, error)

	Login(ctx context.Context, request models.LoginRequest) (models.LoginResult, error)

	GetUser(ctx context.Context, userID, principalID string) (*user.User, error)

	UpdateUser(
		ctx context.Context,
		userID,
		principalID string,
		request models.UpdateUserRequest,
	) (*user.User, error)

	DeleteUser(ctx context.Context, userID, principalID string) error

	Ping(ctx context.Context) error
}

// UsersHandler serves the users service over gRPC.
type UsersHandler struct {
	pb.UnimplementedUsersServiceServer
	svc userService
}

func NewUsersHandler(svc userService) *UsersHandler {
	return &UsersHandler{svc: svc}
}

func (h *UsersHandler) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.User, error) {
	addresses := make([]models.AddressRequest, 0, len(req.GetAddresses()))
	for _, address := range req.GetAddresses() {
		addresses = append(addresses, models.AddressRequest{
			City:       address.GetCity(),
			Country:    address.GetCountry(),
			StreetName: address.GetStreetName(),
			PostalCode: address.GetPostalCode(),
			Type:       address.GetType(),
		})
	}

	created, err := h.svc.CreateUser(ctx, models.CreateUserRequest{
		FirstName: req.GetFirstName(),
		LastName:  req.GetLastName(),
		Email:     req.GetEmail(),
		Password:  req.GetPassword(),
		Addresses: addresses,
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	return toPBUser(created), nil
}

// Login returns the token in the response and in the "authorization" and
// "userid" header metadata, mirroring the HTTP headers.
func (h *UsersHandler) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	result, err := h.svc.Login(ctx, models.LoginRequest{
		Email:    req.GetEmail(),
		Password: req.GetPassword(),
	})
	if err != nil {
		return nil, toStatusError(err)
	}

	if sendErr := grpc.SendHeader(ctx, metadata.Pairs("authorization", result.Token, "userid", result.UserID)); sendErr != nil {
		logger.Log.Warnw("failed to send login header metadata", "error", sendErr)
	}

	return &pb.LoginResponse{Token: result.Token, UserId: result.UserID}, nil
}

func (h *UsersHandler) GetUser(ctx context.Context, req *pb.UserIDRequest) (*pb.User, error) {
	if !idgen.IsValid(req.GetUserId()) {
		return nil, status.Error(codes.NotFound, models.ErrNotFound.Error())
	}
	principalID, _ := auth.UserIDFromContext(ctx)

	usr, err := h.svc.GetUser(ctx, req.GetUserId(), principalID)
	if err != nil {
		return nil, toStatusError(err)
	}

	return toPBUser(usr), nil
}

// UpdateUser treats an empty first_name or last_name as absent.
func (h *UsersHandler) UpdateUser(ctx context.Context, req *pb.UpdateUserRequest) (*pb.User, error) {
	if !idgen.IsValid(req.GetUserId()) {
		return nil, status.Error(codes.NotFound, models.ErrNotFound.Error())
	}
	principalID, _ := auth.UserIDFromContext(ctx)

	var request models.UpdateUserRequest
	if firstName := req.GetFirstName(); firstName != "" {
		request.FirstName = &firstName
	}
	if lastName := req.GetLastName(); lastName != "" {
		request.LastName = &lastName
	}

	usr, err := h.svc.UpdateUser(ctx, req.GetUserId(), principalID, request)
	if err != nil {
		return nil, toStatusError(err)
	}

	return toPBUser(usr), nil
}

func (h *UsersHandler) DeleteUser(ctx context.Context, req *pb.UserIDRequest) (*pb.DeleteUserResponse, error) {
	if !idgen.IsValid(req.GetUserId()) {
		return nil, status.Error(codes.NotFound, models.ErrNotFound.Error())
	}
	principalID, _ := auth.UserIDFromContext(ctx)

	if err := h.svc.DeleteUser(ctx, req.GetUserId(), principalID); err != nil {
		return nil, toStatusError(err)
	}

	return &pb.DeleteUserResponse{
		OperationName:   models.OperationNameDelete,
		OperationResult: models.OperationResultSuccess,
	}, nil
}

func (h *UsersHandler) Ping(ctx context.Context, _ *pb.PingRequest) (*pb.PingResponse, error) {
	if err := h.svc.Ping(ctx); err != nil {
		logger.Log.Errorw("error while `h.svc.Ping()` calling", "error", err)
		return nil, status.Error(codes.Internal, "storage is unavailable")
	}

	return &pb.PingResponse{Ok: true}, nil
}

func toPBUser(usr *user.User) *pb.User {
	var addresses []*pb.Address
	if len(usr.Addresses) > 0 {
		addresses = funk.Map(usr.Addresses, func(address user.Address) *pb.Address {
			return &pb.Address{
				AddressId:  address.ID,
				City:       address.City,
				Country:    address.Country,
				StreetName: address.StreetName,
				PostalCode: address.PostalCode,
				Type:       address.Type,
			}
		}).([]*pb.Address)
	}

	return &pb.User{
		UserId:    usr.ID,
		FirstName: usr.FirstName,
		LastName:  usr.LastName,
		Email:     usr.Email,
		Addresses: addresses,
	}
}

func toStatusError(err error) error {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, models.ErrDuplicateEmail):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, models.ErrForbidden):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, models.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		logger.Log.Errorw("internal error while serving the gRPC request", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}
