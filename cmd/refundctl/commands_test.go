package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tutorbase/backend/internal/models"
	"github.com/tutorbase/backend/internal/service"
	svcmocks "github.com/tutorbase/backend/internal/service/mocks"
)

func run(t *testing.T, refunder *svcmocks.MockRefunder, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	closed := false
	open := func(context.Context) (service.Refunder, func(), error) {
		return refunder, func() { closed = true }, nil
	}

	cmd := newRootCmd(open, &out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		assert.True(t, closed, "services should be closed after the command")
	}
	return out.String(), err
}

func TestShow(t *testing.T) {
	refunder := svcmocks.NewMockRefunder(t)
	externalID := "re_1"
	refunder.On("GetRefund", mock.Anything, int64(7)).Return(&models.Refund{
		ID:               7,
		RefundNumber:     "REF-20250301-0007",
		Status:           models.RefundStatusCompleted,
		OrderID:          383,
		Amount:           10000,
		Currency:         "CAD",
		ExternalRefundID: &externalID,
	}, nil)

	out, err := run(t, refunder, "show", "7")

	require.NoError(t, err)
	assert.Contains(t, out, "REF-20250301-0007")
	assert.Contains(t, out, "COMPLETED")
	assert.Contains(t, out, "10000 CAD")
	assert.Contains(t, out, "re_1")
}

func TestShow_JSON(t *testing.T) {
	refunder := svcmocks.NewMockRefunder(t)
	refunder.On("GetRefund", mock.Anything, int64(7)).Return(&models.Refund{ID: 7, Status: models.RefundStatusPending}, nil)

	out, err := run(t, refunder, "show", "7", "--json")

	require.NoError(t, err)
	var refund models.Refund
	require.NoError(t, json.Unmarshal([]byte(out), &refund))
	assert.Equal(t, models.RefundStatusPending, refund.Status)
}

func TestProcessAndReset(t *testing.T) {
	refunder := svcmocks.NewMockRefunder(t)
	refunder.On("ProcessRefund", mock.Anything, int64(7), (*int64)(nil)).
		Return(&models.Refund{ID: 7, Status: models.RefundStatusCompleted}, nil)
	refunder.On("ResetRefund", mock.Anything, int64(8)).
		Return(&models.Refund{ID: 8, Status: models.RefundStatusPending}, nil)

	out, err := run(t, refunder, "process", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "COMPLETED")

	out, err = run(t, refunder, "reset", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "PENDING")
}

func TestCancel(t *testing.T) {
	t.Run("passes the reason", func(t *testing.T) {
		refunder := svcmocks.NewMockRefunder(t)
		refunder.On("CancelRefund", mock.Anything, int64(7), "Customer rebooked").
			Return(&models.Refund{ID: 7, Status: models.RefundStatusCancelled}, nil)

		out, err := run(t, refunder, "cancel", "7", "--reason", "Customer rebooked")

		require.NoError(t, err)
		assert.Contains(t, out, "CANCELLED")
	})

	t.Run("reason is required", func(t *testing.T) {
		refunder := svcmocks.NewMockRefunder(t)

		_, err := run(t, refunder, "cancel", "7")

		assert.Error(t, err)
		refunder.AssertNotCalled(t, "CancelRefund", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestInvalidRefundID(t *testing.T) {
	for _, arg := range []string{"abc", "0", "-3"} {
		t.Run(arg, func(t *testing.T) {
			refunder := svcmocks.NewMockRefunder(t)

			_, err := run(t, refunder, "show", "--", arg)

			assert.ErrorContains(t, err, "invalid refund id")
		})
	}
}

func TestServiceErrorIsReturned(t *testing.T) {
	refunder := svcmocks.NewMockRefunder(t)
	svcErr := &service.ServiceError{Code: service.ErrCodeInvalidState, Message: "refund is not FAILED"}
	refunder.On("ResetRefund", mock.Anything, int64(7)).Return(nil, svcErr)

	_, err := run(t, refunder, "reset", "7")

	assert.True(t, errors.Is(err, svcErr))
}
