package client_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/itm-clinic/clinic-client/client"
	"github.com/itm-clinic/clinic-client/users"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		status int
		kind   client.Kind
	}{
		{0, client.KindNetwork},
		{http.StatusBadRequest, client.KindUnknown},
		{http.StatusUnauthorized, client.KindAuth},
		{http.StatusForbidden, client.KindAuth},
		{http.StatusNotFound, client.KindNotFound},
		{http.StatusConflict, client.KindConflict},
		{http.StatusUnprocessableEntity, client.KindValidation},
		{http.StatusTooManyRequests, client.KindUnknown},
		{http.StatusInternalServerError, client.KindServer},
		{http.StatusServiceUnavailable, client.KindServer},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.status), func(t *testing.T) {
			require.Equal(t, tt.kind, client.Classify(tt.status))
		})
	}
}

func TestDefaultMessage(t *testing.T) {
	require.Equal(t, client.MsgNetwork, client.DefaultMessage(0))
	require.Equal(t, "Bạn không có quyền thực hiện thao tác này.", client.DefaultMessage(http.StatusForbidden))
	require.Equal(t, "Máy chủ phản hồi chậm. Vui lòng thử lại sau.", client.DefaultMessage(http.StatusGatewayTimeout))
	require.Equal(t, client.MsgDefault, client.DefaultMessage(http.StatusTeapot))
}

func TestTitle(t *testing.T) {
	require.Equal(t, "Lỗi kết nối", client.Title(client.KindNetwork))
	require.Equal(t, "Dữ liệu không hợp lệ", client.Title(client.KindValidation))
	require.Equal(t, "Lỗi xác thực", client.Title(client.KindAuth))
	require.Equal(t, "Lỗi máy chủ", client.Title(client.KindServer))
	require.Equal(t, "Lỗi", client.Title(client.KindConflict))
}

func TestErrorHelpers(t *testing.T) {
	validation := &client.Error{
		Kind:       client.KindValidation,
		StatusCode: http.StatusUnprocessableEntity,
		Message:    "Dữ liệu không hợp lệ",
		Fields: map[string][]string{
			"email":    {"Email đã tồn tại", "Email không hợp lệ"},
			"password": {"Quá ngắn"},
		},
		Method: http.MethodPost,
		Path:   "/auth/register",
	}
	wrapped := fmt.Errorf("register: %w", validation)

	t.Run("field errors keep the first message", func(t *testing.T) {
		require.Equal(t, map[string]string{"email": "Email đã tồn tại", "password": "Quá ngắn"}, client.FieldErrors(wrapped))
		require.Nil(t, client.FieldErrors(errors.New("plain")))
		require.Nil(t, client.FieldErrors(&client.Error{Kind: client.KindServer, Fields: map[string][]string{"x": {"y"}}}))
	})

	t.Run("kind and status through wrapping", func(t *testing.T) {
		require.Equal(t, client.KindValidation, client.KindOf(wrapped))
		require.Equal(t, http.StatusUnprocessableEntity, client.StatusOf(wrapped))
		require.Equal(t, client.KindUnknown, client.KindOf(nil))
		require.Equal(t, client.KindNetwork, client.KindOf(context.DeadlineExceeded))
	})

	t.Run("message", func(t *testing.T) {
		require.Equal(t, "Dữ liệu không hợp lệ", client.Message(wrapped))
		require.Equal(t, client.DefaultMessage(http.StatusNotFound), client.Message(&client.Error{StatusCode: http.StatusNotFound}))
		require.Equal(t, "boom", client.Message(errors.New("boom")))
		require.Equal(t, client.MsgNetwork, client.Message(context.DeadlineExceeded))
		require.Empty(t, client.Message(nil))
	})

	t.Run("retryable", func(t *testing.T) {
		require.True(t, client.Retryable(&client.Error{Kind: client.KindServer}))
		require.True(t, client.Retryable(&client.Error{Kind: client.KindNetwork}))
		require.False(t, client.Retryable(&client.Error{Kind: client.KindAuth}))
		require.False(t, client.Retryable(&client.Error{Kind: client.KindNotFound}))
		require.False(t, client.Retryable(wrapped))
	})

	t.Run("error text", func(t *testing.T) {
		require.Equal(t, "POST /auth/register: 422 validation: Dữ liệu không hợp lệ", validation.Error())
	})

	t.Run("local validation error", func(t *testing.T) {
		err := client.NewValidationError(users.ValidateLogin("", "123"))
		require.Equal(t, client.KindValidation, client.KindOf(err))
		require.Equal(t, "Email là bắt buộc", client.FieldErrors(err)["email"])
		require.Zero(t, client.StatusOf(err))
	})
}
