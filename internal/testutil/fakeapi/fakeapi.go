// Package fakeapi is an in-process clinic API for tests. It issues real
// HS256 JWTs, rotates refresh tokens and can be told to expire tokens or
// slow down and fail refresh calls.
package fakeapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/itm-clinic/clinic-client/users"
)

const signingKey = "fakeapi-signing-key"

type account struct {
	password string
	user     users.User
}

// RecordedRequest is one request the server saw.
type RecordedRequest struct {
	Method        string
	Path          string
	Query         string
	Authorization string
	RequestID     string
}

type Server struct {
	*httptest.Server
	Router *mux.Router

	mu        sync.Mutex
	accounts  map[string]*account
	access    map[string]string // access token -> email
	refresh   map[string]string // refresh token -> email
	requests  []RecordedRequest
	seq       int
	nextID    int
	accessTTL time.Duration

	refreshCalls  atomic.Int32
	refreshDelay  time.Duration
	refreshStatus int
}

func New(t testing.TB) *Server {
	t.Helper()
	s := &Server{
		accounts:  make(map[string]*account),
		access:    make(map[string]string),
		refresh:   make(map[string]string),
		accessTTL: time.Hour,
		nextID:    1,
	}

	root := mux.NewRouter()
	root.Use(s.recordMiddleware)
	api := root.PathPrefix("/api").Subrouter()
	api.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)
	api.HandleFunc("/auth/register", s.register).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", s.refreshTokens).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", s.Protected(s.logout)).Methods(http.MethodPost)
	api.HandleFunc("/auth/me", s.Protected(s.me)).Methods(http.MethodGet)

	s.Router = api
	s.Server = httptest.NewServer(root)
	t.Cleanup(s.Close)
	return s
}

// BaseURL is the API root clients should be pointed at.
func (s *Server) BaseURL() string {
	return s.Server.URL + "/api"
}

// Handle registers a bearer-protected route.
func (s *Server) Handle(method, path string, h http.HandlerFunc) {
	s.Router.HandleFunc(path, s.Protected(h)).Methods(method)
}

// HandlePublic registers an unprotected route.
func (s *Server) HandlePublic(method, path string, h http.HandlerFunc) {
	s.Router.HandleFunc(path, h).Methods(method)
}

// AddUser creates an account and returns its profile.
func (s *Server) AddUser(email, password string, role users.RoleType) users.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addUserLocked(email, password, role)
}

func (s *Server) addUserLocked(email, password string, role users.RoleType) users.User {
	u := users.User{ID: s.nextID, Email: email, FullName: "Bệnh nhân " + email, Role: role, IsActive: true}
	s.nextID++
	s.accounts[email] = &account{password: password, user: u}
	return u
}

// IssueTokens mints a token pair for an existing account.
func (s *Server) IssueTokens(email string) (string, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.issueLocked(email)
}

func (s *Server) issueLocked(email string) (string, string) {
	s.seq++
	claims := jwtlib.MapClaims{
		"sub":   fmt.Sprintf("%d", s.accounts[email].user.ID),
		"email": email,
		"role":  s.accounts[email].user.Role.String(),
		"jti":   fmt.Sprintf("jti-%d", s.seq),
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(s.accessTTL).Unix(),
	}
	access, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(signingKey))
	if err != nil {
		panic(err)
	}
	refresh := fmt.Sprintf("refresh-%d", s.seq)
	s.access[access] = email
	s.refresh[refresh] = email
	return access, refresh
}

// ExpireAccessTokens makes every issued access token answer 401.
func (s *Server) ExpireAccessTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.access = make(map[string]string)
}

// RevokeRefreshTokens makes every issued refresh token unusable.
func (s *Server) RevokeRefreshTokens() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refresh = make(map[string]string)
}

// SetRefreshDelay slows every refresh call down by d.
func (s *Server) SetRefreshDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshDelay = d
}

// FailRefresh makes refresh calls answer status. Zero restores normal behaviour.
func (s *Server) FailRefresh(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshStatus = status
}

func (s *Server) RefreshCalls() int {
	return int(s.refreshCalls.Load())
}

func (s *Server) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}

// RequestsTo returns the recorded requests for one API path.
func (s *Server) RequestsTo(path string) []RecordedRequest {
	var out []RecordedRequest
	for _, r := range s.Requests() {
		if r.Path == "/api"+path {
			out = append(out, r)
		}
	}
	return out
}

// Protected rejects requests without a live access token.
func (s *Server) Protected(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.EmailFor(r); !ok {
			WriteError(w, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		h(w, r)
	}
}

// EmailFor resolves the bearer token of r.
func (s *Server) EmailFor(r *http.Request) (string, bool) {
	raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return "", false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	email, ok := s.access[raw]
	return email, ok
}

func (s *Server) recordMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, RecordedRequest{
			Method:        r.Method,
			Path:          r.URL.Path,
			Query:         r.URL.RawQuery,
			Authorization: r.Header.Get("Authorization"),
			RequestID:     r.Header.Get("X-Request-ID"),
		})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

type authData struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	User         *users.User `json:"user,omitempty"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, http.StatusBadRequest, "", nil)
		return
	}

	s.mu.Lock()
	acc, ok := s.accounts[body.Email]
	if !ok || acc.password != body.Password {
		s.mu.Unlock()
		WriteError(w, http.StatusUnauthorized, "Email hoặc mật khẩu không đúng", nil)
		return
	}
	access, refresh := s.issueLocked(body.Email)
	u := acc.user
	s.mu.Unlock()

	WriteData(w, http.StatusOK, authData{AccessToken: access, RefreshToken: refresh, User: &u})
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string         `json:"email"`
		Password string         `json:"password"`
		FullName string         `json:"fullName"`
		Role     users.RoleType `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, http.StatusBadRequest, "", nil)
		return
	}
	if body.FullName == "" {
		WriteError(w, http.StatusUnprocessableEntity, "Dữ liệu không hợp lệ", map[string][]string{
			"fullName": {"Họ tên là bắt buộc"},
		})
		return
	}

	s.mu.Lock()
	if _, exists := s.accounts[body.Email]; exists {
		s.mu.Unlock()
		WriteError(w, http.StatusConflict, "Email đã được sử dụng", nil)
		return
	}
	role := body.Role
	if role == 0 {
		role = users.RoleCustomer
	}
	u := s.addUserLocked(body.Email, body.Password, role)
	u.FullName = body.FullName
	s.accounts[body.Email].user = u
	access, refresh := s.issueLocked(body.Email)
	s.mu.Unlock()

	WriteData(w, http.StatusCreated, authData{AccessToken: access, RefreshToken: refresh, User: &u})
}

func (s *Server) refreshTokens(w http.ResponseWriter, r *http.Request) {
	s.refreshCalls.Add(1)

	s.mu.Lock()
	delay, status := s.refreshDelay, s.refreshStatus
	s.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}
	if status != 0 {
		WriteError(w, status, "", nil)
		return
	}

	var body struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		WriteError(w, http.StatusBadRequest, "", nil)
		return
	}

	s.mu.Lock()
	email, ok := s.refresh[body.RefreshToken]
	if !ok {
		s.mu.Unlock()
		WriteError(w, http.StatusUnauthorized, "Refresh token không hợp lệ", nil)
		return
	}
	delete(s.refresh, body.RefreshToken)
	access, refresh := s.issueLocked(email)
	s.mu.Unlock()

	WriteData(w, http.StatusOK, authData{AccessToken: access, RefreshToken: refresh})
}

func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	s.mu.Lock()
	delete(s.access, raw)
	s.mu.Unlock()
	WriteData(w, http.StatusOK, nil)
}

func (s *Server) me(w http.ResponseWriter, r *http.Request) {
	email, _ := s.EmailFor(r)
	s.mu.Lock()
	u := s.accounts[email].user
	s.mu.Unlock()
	WriteData(w, http.StatusOK, u)
}

// WriteData writes a success envelope.
func WriteData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, map[string]any{"success": true, "data": data, "message": "OK"})
}

// WritePage writes a success envelope around a paginated list.
func WritePage(w http.ResponseWriter, items any, page, limit, total int) {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	WriteData(w, http.StatusOK, map[string]any{
		"data": items,
		"pagination": map[string]any{
			"page":       page,
			"limit":      limit,
			"total":      total,
			"totalPages": totalPages,
			"hasNext":    page < totalPages,
			"hasPrev":    page > 1,
		},
	})
}

// WriteError writes a failure envelope.
func WriteError(w http.ResponseWriter, status int, message string, fields map[string][]string) {
	body := map[string]any{"success": false, "message": message}
	if fields != nil {
		body["errors"] = fields
	}
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
