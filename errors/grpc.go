package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MapToGRPCError translates domain sentinels to gRPC status codes at the
// transport boundary. Unknown errors are deliberately opaque to the caller.
func MapToGRPCError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrEmptyIdentity),
		errors.Is(err, ErrInvalidIdentity),
		errors.Is(err, ErrInvalidSubscription),
		errors.Is(err, ErrInvalidPassword):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrNotAllowed):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, ErrNotAuthenticated):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		return status.Error(codes.Unauthenticated, ErrInvalidCredentials.Error())
	case errors.Is(err, ErrUserAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, ErrStorageUnavailable):
		return status.Error(codes.Unavailable, ErrStorageUnavailable.Error())
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
