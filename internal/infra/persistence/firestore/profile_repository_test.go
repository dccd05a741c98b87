package firestore

import (
	"testing"

	domainerrors "linkup/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapStoreError_TranslatesGRPCCodes(t *testing.T) {
	tests := []struct {
		name string
		code codes.Code
		want error
	}{
		{name: "permission denied", code: codes.PermissionDenied, want: domainerrors.ErrProfileStorePermission},
		{name: "not found", code: codes.NotFound, want: domainerrors.ErrProfileStoreNotFound},
		{name: "unavailable", code: codes.Unavailable, want: domainerrors.ErrProfileStoreUnavailable},
		{name: "deadline exceeded", code: codes.DeadlineExceeded, want: domainerrors.ErrProfileStoreUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapStoreError(status.Error(tt.code, "boom"), "op failed")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMapStoreError_WrapsUnknownErrors(t *testing.T) {
	cause := errors.New("boom")

	err := mapStoreError(cause, "op failed")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "op failed")
}
