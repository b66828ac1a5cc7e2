package api_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/itm-clinic/clinic-client/api"
	"github.com/itm-clinic/clinic-client/client"
	"github.com/itm-clinic/clinic-client/internal/errors"
	"github.com/itm-clinic/clinic-client/internal/testutil/fakeapi"
	"github.com/itm-clinic/clinic-client/medical"
	"github.com/itm-clinic/clinic-client/notify"
	"github.com/itm-clinic/clinic-client/users"
	"github.com/stretchr/testify/require"
)

const (
	testEmail    = "hoa.tran@itm.vn"
	testPassword = "matkhau123"
)

type apiFixture struct {
	server *fakeapi.Server
	toasts *notify.Recorder
	client *client.Client
	api    *api.API
	user   users.User
}

func setupAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	f := &apiFixture{
		server: fakeapi.New(t),
		toasts: notify.NewRecorder(),
	}
	f.user = f.server.AddUser(testEmail, testPassword, users.RoleCustomer)
	f.client = client.New(f.server.BaseURL(), nil,
		client.WithNotifier(f.toasts),
		client.WithTimeout(2*time.Second),
	)
	f.api = api.New(f.client)
	return f
}

func (f *apiFixture) signIn(t *testing.T) {
	t.Helper()
	_, err := f.api.Auth.Login(context.Background(), api.LoginRequest{Email: testEmail, Password: testPassword})
	require.NoError(t, err)
}

func TestAuth(t *testing.T) {
	ctx := context.Background()

	t.Run("login is validated before any request", func(t *testing.T) {
		f := setupAPIFixture(t)

		_, err := f.api.Auth.Login(ctx, api.LoginRequest{Email: "khong-hop-le", Password: "123"})
		require.Error(t, err)
		require.Equal(t, client.KindValidation, client.KindOf(err))
		require.ErrorIs(t, err, errors.ErrInvalidRequest)
		fields := client.FieldErrors(err)
		require.Contains(t, fields, "email")
		require.Contains(t, fields, "password")
		require.Empty(t, f.server.RequestsTo(client.LoginPath))
		require.Zero(t, f.toasts.Len())
	})

	t.Run("login, me and logout", func(t *testing.T) {
		f := setupAPIFixture(t)

		data, err := f.api.Auth.Login(ctx, api.LoginRequest{Email: testEmail, Password: testPassword})
		require.NoError(t, err)
		require.NotEmpty(t, data.AccessToken)
		require.Equal(t, data.AccessToken, f.client.Session().AccessToken())

		me, err := f.api.Auth.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, f.user.ID, me.ID)
		require.True(t, me.IsCustomer())

		require.NoError(t, f.api.Auth.Logout(ctx))
		require.True(t, f.client.Session().GetTokens().Empty())
	})

	t.Run("wrong password is toasted", func(t *testing.T) {
		f := setupAPIFixture(t)

		_, err := f.api.Auth.Login(ctx, api.LoginRequest{Email: testEmail, Password: "sai-mat-khau"})
		require.Equal(t, client.KindAuth, client.KindOf(err))
		require.Equal(t, "Email hoặc mật khẩu không đúng", client.Message(err))
		require.Equal(t, 1, f.toasts.Len())
		require.Equal(t, 0, f.server.RefreshCalls())
	})

	t.Run("register confirms the password locally", func(t *testing.T) {
		f := setupAPIFixture(t)

		_, err := f.api.Auth.Register(ctx, api.RegisterRequest{
			Email: "moi@itm.vn", Password: "matkhau123", ConfirmPassword: "matkhau124", FullName: "Lê Thị Mai",
		})
		require.Contains(t, client.FieldErrors(err), "confirmPassword")
		require.Empty(t, f.server.RequestsTo(client.RegisterPath))
	})

	t.Run("server field errors are not toasted", func(t *testing.T) {
		f := setupAPIFixture(t)

		_, err := f.api.Auth.Register(ctx, api.RegisterRequest{
			Email: "moi@itm.vn", Password: "matkhau123", ConfirmPassword: "matkhau123",
		})
		require.Equal(t, http.StatusUnprocessableEntity, client.StatusOf(err))
		require.Equal(t, "Họ tên là bắt buộc", client.FieldErrors(err)["fullName"])
		require.Zero(t, f.toasts.Len())
	})

	t.Run("register signs in as a patient", func(t *testing.T) {
		f := setupAPIFixture(t)

		data, err := f.api.Auth.Register(ctx, api.RegisterRequest{
			Email: "moi@itm.vn", Password: "matkhau123", ConfirmPassword: "matkhau123", FullName: "Lê Thị Mai",
		})
		require.NoError(t, err)
		require.Equal(t, users.RoleCustomer, data.User.Role)
		require.Equal(t, "Lê Thị Mai", f.client.Session().GetTokens().Profile.FullName)
	})
}

func TestAppointments(t *testing.T) {
	ctx := context.Background()
	f := setupAPIFixture(t)
	f.signIn(t)

	f.server.Handle(http.MethodGet, "/appointments/user/{userId}", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "1", mux.Vars(r)["userId"])
		fakeapi.WritePage(w, []medical.Appointment{
			{ID: 10, CustomerID: 1, DoctorID: 4, Type: medical.AppointmentConsultation, Status: medical.AppointmentScheduled},
		}, 1, 10, 1)
	})
	f.server.Handle(http.MethodPatch, "/appointments/{id}/cancel", func(w http.ResponseWriter, r *http.Request) {
		var body medical.CancelAppointment
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		fakeapi.WriteData(w, http.StatusOK, medical.Appointment{
			ID: 10, Status: medical.AppointmentCancelled, CancellationReason: body.Reason,
		})
	})

	t.Run("list flattens the date range", func(t *testing.T) {
		page, err := f.api.Appointments.List(ctx, f.user.ID, medical.AppointmentFilter{
			PaginationQuery: medical.PaginationQuery{Limit: 10},
			DateRange:       &medical.DateRange{StartDate: "2025-03-01", EndDate: "2025-03-31"},
		})
		require.NoError(t, err)
		require.Len(t, page.Data, 1)
		require.Equal(t, medical.AppointmentScheduled, page.Data[0].Status)
		require.False(t, page.More())

		reqs := f.server.RequestsTo("/appointments/user/1")
		require.Len(t, reqs, 1)
		require.Equal(t, "endDate=2025-03-31&limit=10&startDate=2025-03-01", reqs[0].Query)
		require.True(t, strings.HasPrefix(reqs[0].Authorization, "Bearer "))
	})

	t.Run("cancel sends the reason", func(t *testing.T) {
		a, err := f.api.Appointments.Cancel(ctx, 10, "Bận việc gia đình")
		require.NoError(t, err)
		require.Equal(t, medical.AppointmentCancelled, a.Status)
		require.Equal(t, "Bận việc gia đình", a.CancellationReason)
	})

	t.Run("missing appointment", func(t *testing.T) {
		_, err := f.api.Appointments.Get(ctx, 99)
		require.Equal(t, client.KindNotFound, client.KindOf(err))
		require.Equal(t, 1, f.toasts.Len())
	})
}

func TestDoctors(t *testing.T) {
	ctx := context.Background()
	f := setupAPIFixture(t)

	f.server.HandlePublic(http.MethodPost, "/doctors/search", func(w http.ResponseWriter, r *http.Request) {
		var q medical.DoctorSearch
		require.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		fakeapi.WriteData(w, http.StatusOK, []medical.Doctor{{ID: 4, Specialization: q.Specialization, IsAvailable: true}})
	})
	f.server.HandlePublic(http.MethodGet, "/doctor-schedules/doctor/{id}/available", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "2025-04-02", r.URL.Query().Get("date"))
		fakeapi.WriteData(w, http.StatusOK, []medical.AvailableSlot{{StartTime: "08:00", EndTime: "08:30", IsAvailable: true}})
	})

	doctors, err := f.api.Doctors.Search(ctx, medical.DoctorSearch{Specialization: "Hiếm muộn"})
	require.NoError(t, err)
	require.Len(t, doctors, 1)
	require.Equal(t, "Hiếm muộn", doctors[0].Specialization)

	slots, err := f.api.Schedules.Available(ctx, 4, "2025-04-02")
	require.NoError(t, err)
	require.Equal(t, "08:00", slots[0].StartTime)

	for _, r := range f.server.Requests() {
		require.Empty(t, r.Authorization)
	}
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()
	f := setupAPIFixture(t)
	f.signIn(t)

	f.server.Handle(http.MethodGet, "/notifications/user/{userId}/unread-count", func(w http.ResponseWriter, r *http.Request) {
		fakeapi.WriteError(w, http.StatusInternalServerError, "", nil)
	})
	f.server.Handle(http.MethodPatch, "/notifications/user/{userId}/read-all", func(w http.ResponseWriter, r *http.Request) {
		fakeapi.WriteData(w, http.StatusOK, nil)
	})

	t.Run("unread count is silent", func(t *testing.T) {
		_, err := f.api.Notifications.UnreadCount(ctx, f.user.ID)
		require.Equal(t, client.KindServer, client.KindOf(err))
		require.Zero(t, f.toasts.Len())
	})

	t.Run("mark all read", func(t *testing.T) {
		require.NoError(t, f.api.Notifications.MarkAllRead(ctx, f.user.ID))
		require.Len(t, f.server.RequestsTo("/notifications/user/1/read-all"), 1)
	})
}

func TestDocuments_Upload(t *testing.T) {
	ctx := context.Background()
	f := setupAPIFixture(t)
	f.signIn(t)

	f.server.Handle(http.MethodPost, "/medical-documents/upload", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		content, err := io.ReadAll(file)
		require.NoError(t, err)

		require.Equal(t, "sieu-am.pdf", header.Filename)
		require.Equal(t, "application/pdf", header.Header.Get("Content-Type"))
		require.Equal(t, "%PDF-1.7", string(content))
		require.Equal(t, "1", r.FormValue("userId"))

		fakeapi.WriteData(w, http.StatusCreated, medical.MedicalDocument{
			ID: 3, UserID: 1, FileName: header.Filename, FileType: "application/pdf", Description: r.FormValue("description"),
		})
	})

	t.Run("multipart form", func(t *testing.T) {
		doc, err := f.api.Documents.Upload(ctx, f.user.ID, api.File{
			Name:        "/tmp/sieu-am.pdf",
			ContentType: "application/pdf",
			Content:     strings.NewReader("%PDF-1.7"),
		}, "Kết quả siêu âm")
		require.NoError(t, err)
		require.Equal(t, "sieu-am.pdf", doc.FileName)
		require.Equal(t, "Kết quả siêu âm", doc.Description)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := f.api.Documents.Upload(ctx, f.user.ID, api.File{}, "")
		require.ErrorIs(t, err, errors.ErrInvalidRequest)
		require.Len(t, f.server.RequestsTo("/medical-documents/upload"), 1)
	})
}

func TestProfile_DeleteAccount(t *testing.T) {
	ctx := context.Background()
	f := setupAPIFixture(t)
	f.signIn(t)

	f.server.Handle(http.MethodDelete, "/users/{id}", func(w http.ResponseWriter, r *http.Request) {
		fakeapi.WriteData(w, http.StatusOK, nil)
	})

	require.NoError(t, f.api.Profile.DeleteAccount(ctx, f.user.ID))
	require.False(t, f.client.Session().Status().HasAccessToken)
}
