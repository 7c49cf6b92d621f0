package interceptor

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/patric-chuzhbe/mobileappws/internal/auth"
	"github.com/patric-chuzhbe/mobileappws/internal/logger"
	"github.com/patric-chuzhbe/mobileappws/internal/models"
)

type authenticator interface {
	GetUserIDFromToken(tokenString string) (string, error)
}

type AuthInterceptor struct {
	auth authenticator
}

func NewAuthInterceptor(auth authenticator) *AuthInterceptor {
	return &AuthInterceptor{auth: auth}
}

// UnaryAuthInterceptor requires a valid token in the "authorization"
// metadata for the listed methods and attaches the user id to the context.
// Rejected calls never reach later interceptors, so they are logged here.
func (a *AuthInterceptor) UnaryAuthInterceptor(protectedMethods []string) grpc.UnaryServerInterceptor {
	protected := make(map[string]struct{}, len(protectedMethods))
	for _, m := range protectedMethods {
		protected[m] = struct{}{}
	}

	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		if _, ok := protected[info.FullMethod]; !ok {
			return handler(ctx, req)
		}

		md, _ := metadata.FromIncomingContext(ctx)
		authHeader := md.Get("authorization")
		if len(authHeader) == 0 || authHeader[0] == "" {
			logger.Log.Infow("gRPC request rejected", "method", info.FullMethod, "reason", "missing token")
			return nil, status.Error(codes.Unauthenticated, models.ErrUnauthorized.Error())
		}

		userID, err := a.auth.GetUserIDFromToken(authHeader[0])
		if err != nil {
			if !errors.Is(err, auth.ErrInvalidTokenOrJwtParsing) {
				logger.Log.Errorw("error while `a.auth.GetUserIDFromToken()` calling", "error", err)
				return nil, status.Error(codes.Internal, "internal error")
			}
			logger.Log.Infow("gRPC request rejected", "method", info.FullMethod, "reason", err.Error())
			return nil, status.Error(codes.Unauthenticated, models.ErrUnauthorized.Error())
		}

		return handler(context.WithValue(ctx, auth.UserIDKey, userID), req)
	}
}
