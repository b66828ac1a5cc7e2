package users_test

import (
	"strings"
	"testing"

	"github.com/itm-clinic/clinic-client/users"
	"github.com/stretchr/testify/require"
)

func TestUser_Roles(t *testing.T) {
	doctor := &users.User{ID: 7, Role: users.RoleDoctor}

	require.True(t, doctor.IsDoctor())
	require.False(t, doctor.IsAdmin())
	require.True(t, doctor.HasRole(users.RoleAdmin, users.RoleDoctor))
	require.Equal(t, "doctor", doctor.Role.String())

	var nobody *users.User
	require.False(t, nobody.HasRole(users.RoleCustomer))
	require.Nil(t, nobody.Clone())
}

func TestUser_Clone(t *testing.T) {
	u := &users.User{ID: 1, Email: "a@itm.vn"}
	c := u.Clone()
	c.Email = "b@itm.vn"
	require.Equal(t, "a@itm.vn", u.Email)
}

func TestValidateLogin(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.True(t, users.ValidateLogin("lan@itm.vn", "secret1").Empty())
	})

	t.Run("missing fields", func(t *testing.T) {
		errs := users.ValidateLogin("", "")
		require.Equal(t, "Email là bắt buộc", errs.First(users.FieldEmail))
		require.Equal(t, "Password là bắt buộc", errs.First(users.FieldPassword))
		require.Equal(t, []string{"email", "password"}, errs.Fields())
	})

	t.Run("bad format", func(t *testing.T) {
		errs := users.ValidateLogin("lan.itm.vn", "secret1")
		require.Equal(t, "Email không đúng định dạng", errs.First(users.FieldEmail))
	})

	t.Run("short email", func(t *testing.T) {
		errs := users.ValidateLogin("a@b", "secret1")
		require.Equal(t, "Email phải có ít nhất 5 ký tự", errs.First(users.FieldEmail))
	})

	t.Run("long values", func(t *testing.T) {
		long := strings.Repeat("a", 161)
		errs := users.ValidateLogin(long+"@itm.vn", long)
		require.Equal(t, "Email không được vượt quá 160 ký tự", errs.First(users.FieldEmail))
		require.Equal(t, "Password không được vượt quá 160 ký tự", errs.First(users.FieldPassword))
	})

	t.Run("short password", func(t *testing.T) {
		errs := users.ValidateLogin("lan@itm.vn", "12345")
		require.Equal(t, "Password phải có ít nhất 6 ký tự", errs.First(users.FieldPassword))
	})
}

func TestValidateRegistration(t *testing.T) {
	t.Run("matching confirmation", func(t *testing.T) {
		require.True(t, users.ValidateRegistration("lan@itm.vn", "secret1", "secret1").Empty())
	})

	t.Run("missing confirmation", func(t *testing.T) {
		errs := users.ValidateRegistration("lan@itm.vn", "secret1", "")
		require.Equal(t, "Confirm password là bắt buộc", errs.First(users.FieldConfirmPassword))
	})

	t.Run("mismatch", func(t *testing.T) {
		errs := users.ValidateRegistration("lan@itm.vn", "secret1", "secret2")
		require.Equal(t, "Confirm password không khớp", errs.First(users.FieldConfirmPassword))
		require.Len(t, errs, 1)
	})
}
