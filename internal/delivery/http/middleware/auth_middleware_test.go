package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUsers map[int64]*domain.User

func (f fakeUsers) GetCurrentUser(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

type fakeOwners map[domain.ResourceKind]map[int64]int64

func (f fakeOwners) Owner(_ context.Context, kind domain.ResourceKind, id int64) (int64, error) {
	if owner, ok := f[kind][id]; ok {
		return owner, nil
	}
	return 0, domain.ErrNotFound
}

type failureCounter map[string]int

func (f failureCounter) RecordSyncTask(string, string)       {}
func (f failureCounter) RecordSyncRetry(string)              {}
func (f failureCounter) RecordSyncFailure(string)            {}
func (f failureCounter) RecordReconcileEnqueued(string, int) {}
func (f failureCounter) RecordAuthFailure(reason string)     { f[reason]++ }

type authFixture struct {
	tokens   *token.Service
	auth     *Authorizer
	failures failureCounter
	router   *gin.Engine
}

// Users 1 and 2 are applicants owning applicant profiles 10 and 20; user 3 is a company.
func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	tokens, err := token.NewService(token.Config{Secret: "middleware-secret"})
	require.NoError(t, err)

	users := fakeUsers{
		1: {ID: 1, Email: "a@example.com", Role: domain.RoleApplicant},
		2: {ID: 2, Email: "b@example.com", Role: domain.RoleApplicant},
		3: {ID: 3, Email: "c@example.com", Role: domain.RoleCompany},
	}
	owners := fakeOwners{
		domain.ResourceApplicant: {10: 1, 20: 2},
	}
	failures := failureCounter{}
	f := &authFixture{
		tokens:   tokens,
		auth:     NewAuthorizer(tokens, users, owners, failures, nil),
		failures: failures,
	}

	ok := func(c *gin.Context) {
		user, _ := CurrentUser(c)
		response.Success(c, http.StatusOK, "ok", gin.H{"user_id": user.ID})
	}
	r := gin.New()
	r.Use(RequestID())
	r.GET("/me", f.auth.RequireAuthenticated(), ok)
	r.POST("/jobs", f.auth.RequireRole(domain.RoleCompany), ok)
	r.GET("/applicants/:applicant_id", f.auth.RequireOwnerOrAdmin(domain.ResourceApplicant, "applicant_id"), ok)
	r.POST("/experiences", f.auth.RequireOwnerOrAdmin(domain.ResourceApplicant, "applicant_id"), ok)
	r.GET("/chained/:applicant_id", f.auth.RequireAuthenticated(), f.auth.RequireOwnerOrAdmin(domain.ResourceApplicant, "applicant_id"), ok)
	f.router = r
	return f
}

func (f *authFixture) bearer(t *testing.T, userID int64, role string) string {
	t.Helper()
	signed, err := f.tokens.Issue(token.Identity{UserID: userID, Email: "x@example.com", Role: role})
	require.NoError(t, err)
	return "Bearer " + signed
}

func (f *authFixture) do(method, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var body response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		token  string
		err    error
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"bearer abc", "abc", nil},
		{"BEARER abc", "abc", nil},
		{"", "", ErrMissingToken},
		{"   ", "", ErrMissingToken},
		{"Bearer", "", ErrMalformedHeader},
		{"Bearer ", "", ErrMalformedHeader},
		{"Bearer a b", "", ErrMalformedHeader},
		{"Basic abc", "", ErrMalformedHeader},
		{"abc", "", ErrMalformedHeader},
		{"Bearer  abc", "", ErrMalformedHeader},
	}
	for _, tc := range cases {
		got, err := BearerToken(tc.header)
		if tc.err != nil {
			assert.ErrorIs(t, err, tc.err, "header %q", tc.header)
			continue
		}
		require.NoError(t, err, "header %q", tc.header)
		assert.Equal(t, tc.token, got)
	}
}

func TestRequireAuthenticated(t *testing.T) {
	f := newAuthFixture(t)

	t.Run("Should accept a valid token for a live user", func(t *testing.T) {
		w := f.do(http.MethodGet, "/me", f.bearer(t, 1, domain.RoleApplicant))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, float64(1), decode(t, w).Data.(map[string]interface{})["user_id"])
	})

	t.Run("Should reject missing header", func(t *testing.T) {
		w := f.do(http.MethodGet, "/me", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		body := decode(t, w)
		assert.False(t, body.Success)
		assert.NotEmpty(t, body.RequestID)
	})

	t.Run("Should reject malformed header", func(t *testing.T) {
		w := f.do(http.MethodGet, "/me", "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject token signed with another key", func(t *testing.T) {
		other, err := token.NewService(token.Config{Secret: "other-secret"})
		require.NoError(t, err)
		signed, err := other.Issue(token.Identity{UserID: 1, Role: domain.RoleApplicant})
		require.NoError(t, err)
		w := f.do(http.MethodGet, "/me", "Bearer "+signed)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Should reject token for a deleted user", func(t *testing.T) {
		w := f.do(http.MethodGet, "/me", f.bearer(t, 99, domain.RoleApplicant))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	assert.Equal(t, 1, f.failures[ReasonMissingToken])
	assert.Equal(t, 1, f.failures[ReasonMalformedHeader])
	assert.Equal(t, 1, f.failures[ReasonInvalidToken])
	assert.Equal(t, 1, f.failures[ReasonUnknownUser])
}

func TestRequireRole(t *testing.T) {
	f := newAuthFixture(t)

	assert.Equal(t, http.StatusOK, f.do(http.MethodPost, "/jobs", f.bearer(t, 3, domain.RoleCompany)).Code)
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/jobs", f.bearer(t, 1, domain.RoleApplicant)).Code)
	assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodPost, "/jobs", "").Code)

	// The stored role wins over a forged token role claim.
	assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/jobs", f.bearer(t, 1, domain.RoleCompany)).Code)
}

func TestRequireOwnerOrAdmin(t *testing.T) {
	f := newAuthFixture(t)

	t.Run("Should admit the owner", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/applicants/10", f.bearer(t, 1, domain.RoleApplicant)).Code)
	})

	t.Run("Should forbid another user", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, f.do(http.MethodGet, "/applicants/10", f.bearer(t, 2, domain.RoleApplicant)).Code)
	})

	t.Run("Should require authentication", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, f.do(http.MethodGet, "/applicants/10", "").Code)
	})

	t.Run("Should answer 404 for a missing resource before comparing owners", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/applicants/999", f.bearer(t, 2, domain.RoleApplicant)).Code)
	})

	t.Run("Should reject a non-numeric id", func(t *testing.T) {
		assert.Equal(t, http.StatusBadRequest, f.do(http.MethodGet, "/applicants/abc", f.bearer(t, 1, domain.RoleApplicant)).Code)
	})

	t.Run("Should fall back to the query string", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, f.do(http.MethodPost, "/experiences?applicant_id=20", f.bearer(t, 2, domain.RoleApplicant)).Code)
		assert.Equal(t, http.StatusForbidden, f.do(http.MethodPost, "/experiences?applicant_id=20", f.bearer(t, 1, domain.RoleApplicant)).Code)
		assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/experiences", f.bearer(t, 1, domain.RoleApplicant)).Code)
	})

	t.Run("Should reuse identity from an earlier link", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/chained/10", f.bearer(t, 1, domain.RoleApplicant)).Code)
	})

	assert.Equal(t, 2, f.failures[ReasonNotOwner])
}

type erroringUsers struct{}

func (erroringUsers) GetCurrentUser(context.Context, int64) (*domain.User, error) {
	return nil, errors.New("connection refused")
}

func TestRequireAuthenticated_StoreError(t *testing.T) {
	tokens, err := token.NewService(token.Config{Secret: "middleware-secret"})
	require.NoError(t, err)
	auth := NewAuthorizer(tokens, erroringUsers{}, fakeOwners{}, nil, nil)

	r := gin.New()
	r.GET("/me", auth.RequireAuthenticated(), func(c *gin.Context) { c.Status(http.StatusOK) })

	signed, err := tokens.Issue(token.Identity{UserID: 1})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
