package grpcserver

import (
	"net"

	"google.golang.org/grpc"

	"github.com/patric-chuzhbe/mobileappws/internal/grpcserver/interceptor"
	pb "github.com/patric-chuzhbe/mobileappws/internal/grpcserver/proto"
)

type authenticator interface {
	GetUserIDFromToken(tokenString string) (string, error)
}

// NewGRPCServer creates the gRPC server with the users service registered
// and a listener bound to addr. The caller serves and stops it.
func NewGRPCServer(
	addr string,
	handler *UsersHandler,
	auth authenticator,
) (*grpc.Server, net.Listener, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, err
	}

	authInterceptor := interceptor.NewAuthInterceptor(auth)

	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			authInterceptor.UnaryAuthInterceptor([]string{
				pb.UsersService_GetUser_FullMethodName,
				pb.UsersService_UpdateUser_FullMethodName,
				pb.UsersService_DeleteUser_FullMethodName,
			}),
			interceptor.UnaryLoggingInterceptor([]string{
				pb.UsersService_CreateUser_FullMethodName,
				pb.UsersService_Login_FullMethodName,
				pb.UsersService_GetUser_FullMethodName,
				pb.UsersService_UpdateUser_FullMethodName,
				pb.UsersService_DeleteUser_FullMethodName,
				pb.UsersService_Ping_FullMethodName,
			}),
		),
	)
	pb.RegisterUsersServiceServer(server, handler)

	return server, lis, nil
}
