package interceptor

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/patric-chuzhbe/mobileappws/internal/auth"
	"github.com/patric-chuzhbe/mobileappws/internal/logger"
)

// UnaryLoggingInterceptor logs method, duration and resulting status code
// of each listed unary call. When it runs after UnaryAuthInterceptor the
// authenticated user id is logged too.
func UnaryLoggingInterceptor(loggedMethods []string) grpc.UnaryServerInterceptor {
	logged := make(map[string]struct{}, len(loggedMethods))
	for _, m := range loggedMethods {
		logged[m] = struct{}{}
	}

	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (resp interface{}, err error) {
		if _, ok := logged[info.FullMethod]; !ok {
			return handler(ctx, req)
		}

		start := time.Now()

		resp, err = handler(ctx, req)

		fields := []interface{}{
			"method", info.FullMethod,
			"duration", time.Since(start),
			"code", status.Code(err).String(),
		}
		if userID, ok := auth.UserIDFromContext(ctx); ok {
			fields = append(fields, "user_id", userID)
		}
		logger.Log.Infow("gRPC request served", fields...)

		return resp, err
	}
}
