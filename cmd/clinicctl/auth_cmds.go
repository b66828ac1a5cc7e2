package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/itm-clinic/clinic-client/api"
	"github.com/itm-clinic/clinic-client/query"
	"github.com/itm-clinic/clinic-client/token/jwt"
	"github.com/itm-clinic/clinic-client/users"
	"github.com/spf13/cobra"
)

func newLoginCmd(get func() *app) *cobra.Command {
	var req api.LoginRequest
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := get()
			displayAppname(a.cfg.GetAppName())
			data, err := a.api.Auth.Login(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Xin chào %s\n", data.User.FullName)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "account password")
	return cmd
}

func newRegisterCmd(get func() *app) *cobra.Command {
	var (
		req    api.RegisterRequest
		gender int
	)
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a patient account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := get()
			displayAppname(a.cfg.GetAppName())
			req.Gender = users.Gender(gender)
			data, err := a.api.Auth.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Đã tạo tài khoản cho %s\n", data.User.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&req.Email, "email", "", "account email")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")
	cmd.Flags().StringVar(&req.ConfirmPassword, "confirm", "", "password again")
	cmd.Flags().StringVar(&req.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&req.PhoneNumber, "phone", "", "phone number")
	cmd.Flags().IntVar(&gender, "gender", 0, "1=male 2=female 3=other")
	return cmd
}

func newLogoutCmd(get func() *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := get()
			if p, err := a.profile(); err == nil {
				defer a.cache.ClearUserData(p.ID)
			}
			if err := a.api.Auth.Logout(cmd.Context()); err != nil {
				// Forget the local session even when the server call failed.
				a.store.ClearTokens(cmd.Context())
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Đã đăng xuất")
			return nil
		},
	}
}

func newWhoamiCmd(get func() *app) *cobra.Command {
	var remote bool
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := get()
			p, err := a.profile()
			if err != nil {
				return err
			}
			if remote {
				p, err = query.Fetch(cmd.Context(), a.cache, query.Keys.Profile(p.ID), a.api.Auth.Me)
				if err != nil {
					return err
				}
			}

			s := a.store.GetTokens()
			st := a.store.Status()
			w := table(cmd.OutOrStdout())
			fmt.Fprintf(w, "ID\t%d\n", p.ID)
			fmt.Fprintf(w, "Email\t%s\n", p.Email)
			fmt.Fprintf(w, "Họ tên\t%s\n", p.FullName)
			fmt.Fprintf(w, "Vai trò\t%s\n", p.Role)
			if !s.ExpiresAt.IsZero() {
				fmt.Fprintf(w, "Hết hạn\t%s\n", s.ExpiresAt.Local().Format(time.DateTime))
			}
			if info, err := jwt.Introspect(s.AccessToken); err == nil && len(info.Roles) > 0 {
				fmt.Fprintf(w, "Quyền\t%s\n", strings.Join(info.Roles, ", "))
			}
			fmt.Fprintf(w, "Trạng thái\t%s\n", sessionState(st.IsAuthenticated, st.IsNearExpiry, st.CanRefresh))
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "reload the profile from the server")
	return cmd
}

func sessionState(authenticated, nearExpiry, canRefresh bool) string {
	switch {
	case authenticated && nearExpiry:
		return "sắp hết hạn"
	case authenticated:
		return "đang hoạt động"
	case canRefresh:
		return "hết hạn, sẽ làm mới khi cần"
	default:
		return "hết hạn"
	}
}
