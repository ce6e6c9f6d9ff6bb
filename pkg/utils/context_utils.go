package utils

import (
	"context"

	"bmu-system/pkg/contextkeys"
	apperrors "bmu-system/pkg/errors"
)

func GetUserIDFromCtx(ctx context.Context) (int, error) {
	userID, ok := ctx.Value(contextkeys.UserIDKey).(int)
	if !ok {
		return 0, apperrors.ErrUserIDNotFoundInContext
	}
	return userID, nil
}

func GetUsernameFromCtx(ctx context.Context) (string, error) {
	username, ok := ctx.Value(contextkeys.UsernameKey).(string)
	if !ok || username == "" {
		return "", apperrors.ErrUnauthorized
	}
	return username, nil
}

func GetUserRoleFromCtx(ctx context.Context) (string, error) {
	role, ok := ctx.Value(contextkeys.UserRoleKey).(string)
	if !ok || role == "" {
		return "", apperrors.ErrUnauthorized
	}
	return role, nil
}
