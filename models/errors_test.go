package models

import (
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestAppError(t *testing.T) {
	t.Run(`kind mapping check`, func(t *testing.T) {
		require.Equal(t, KindValidation, KindOf(NewValidationError("bad input")))
		require.Equal(t, KindAuthorization, KindOf(NewAuthorizationError("no access")))
		require.Equal(t, KindNotFound, KindOf(NewNotFoundError("missing")))
		require.Equal(t, KindInvalidState, KindOf(NewInvalidStateError("already decided")))
		require.Equal(t, KindOtp, KindOf(NewOtpError("bad code")))
		require.Equal(t, KindPersistence, KindOf(NewPersistenceError(pkgerrors.New("db down"), "lookup error")))
	})

	t.Run(`unclassified error check`, func(t *testing.T) {
		require.Equal(t, KindPersistence, KindOf(pkgerrors.New("plain error")))
	})

	t.Run(`wrapped error check`, func(t *testing.T) {
		err := pkgerrors.Wrap(NewInvalidStateError("already decided"), "approve failed")
		require.Equal(t, KindInvalidState, KindOf(err))
	})

	t.Run(`http status check`, func(t *testing.T) {
		require.Equal(t, http.StatusBadRequest, KindValidation.HTTPStatus())
		require.Equal(t, http.StatusUnauthorized, KindOtp.HTTPStatus())
		require.Equal(t, http.StatusForbidden, KindAuthorization.HTTPStatus())
		require.Equal(t, http.StatusNotFound, KindNotFound.HTTPStatus())
		require.Equal(t, http.StatusConflict, KindInvalidState.HTTPStatus())
		require.Equal(t, http.StatusInternalServerError, KindPersistence.HTTPStatus())
	})

	t.Run(`message check`, func(t *testing.T) {
		err := NewPersistenceError(pkgerrors.New("db down"), "lookup error")
		appErr := err.(*AppError)
		require.Equal(t, "lookup error", appErr.Message())
		require.Contains(t, appErr.Error(), "db down")
	})
}
