package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"job-portal-backend/internal/delivery/http/response"
	"job-portal-backend/internal/domain"
	"job-portal-backend/pkg/logger"
	"job-portal-backend/pkg/metrics"
	"job-portal-backend/pkg/security"
	"job-portal-backend/pkg/token"
)

var (
	ErrMissingToken    = errors.New("authorization header required")
	ErrMalformedHeader = errors.New("authorization header must be 'Bearer <token>'")
)

// Auth failure reasons, used as metric labels and log fields.
const (
	ReasonMissingToken    = "missing_token"
	ReasonMalformedHeader = "malformed_header"
	ReasonInvalidToken    = "invalid_token"
	ReasonUnknownUser     = "unknown_user"
	ReasonWrongRole       = "wrong_role"
	ReasonNotOwner        = "not_owner"
)

// UserLookup re-resolves a token subject to a live user.
type UserLookup interface {
	GetCurrentUser(ctx context.Context, id int64) (*domain.User, error)
}

// OwnerResolver maps a resource to the id of the user who owns it.
type OwnerResolver interface {
	Owner(ctx context.Context, kind domain.ResourceKind, id int64) (int64, error)
}

// Authorizer builds the access-control chain links. Each link authenticates
// on its own when no earlier link has, so they compose in any order.
type Authorizer struct {
	tokens  *token.Service
	users   UserLookup
	owners  OwnerResolver
	metrics metrics.Recorder
	secLog  *security.SecurityLogger
}

func NewAuthorizer(tokens *token.Service, users UserLookup, owners OwnerResolver, rec metrics.Recorder, secLog *security.SecurityLogger) *Authorizer {
	if rec == nil {
		rec = metrics.Nop{}
	}
	if secLog == nil {
		secLog = security.Nop()
	}
	return &Authorizer{tokens: tokens, users: users, owners: owners, metrics: rec, secLog: secLog}
}

// BearerToken extracts the token from an Authorization header value. The
// scheme is case-insensitive; anything but exactly "<scheme> <token>" is rejected.
func BearerToken(header string) (string, error) {
	if strings.TrimSpace(header) == "" {
		return "", ErrMissingToken
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrMalformedHeader
	}
	return parts[1], nil
}

// CurrentUser returns the identity attached by the Authorizer.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	return domain.IdentityFrom(c.Request.Context())
}

// RequireAuthenticated rejects requests without a valid token for a live user.
func (a *Authorizer) RequireAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := a.authenticate(c); !ok {
			return
		}
		c.Next()
	}
}

// RequireRole admits authenticated users whose stored role is role.
func (a *Authorizer) RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := a.authenticate(c)
		if !ok {
			return
		}
		if user.Role != role {
			a.forbid(c, user, ReasonWrongRole, "This action requires the "+role+" role")
			return
		}
		c.Next()
	}
}

// RequireOwnerOrAdmin admits the owner of the resource identified by idParam
// (path parameter, falling back to the query string). No admin role exists,
// so only the owner passes. The resource is looked up before ownership is
// compared, so a missing resource answers 404 to everyone.
func (a *Authorizer) RequireOwnerOrAdmin(kind domain.ResourceKind, idParam string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := a.authenticate(c)
		if !ok {
			return
		}

		raw := c.Param(idParam)
		if raw == "" {
			raw = c.Query(idParam)
		}
		if raw == "" {
			response.Error(c, http.StatusBadRequest, "Missing "+idParam, nil)
			c.Abort()
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, http.StatusBadRequest, "Invalid "+idParam, nil)
			c.Abort()
			return
		}

		ownerID, err := a.owners.Owner(c.Request.Context(), kind, id)
		if errors.Is(err, domain.ErrNotFound) {
			response.Error(c, http.StatusNotFound, capitalize(kind.String())+" not found", nil)
			c.Abort()
			return
		}
		if err != nil {
			logger.Log.Error("ownership lookup failed", "kind", kind.String(), "id", id, "error", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			c.Abort()
			return
		}

		if ownerID != user.ID {
			a.forbid(c, user, ReasonNotOwner, "You do not own this "+kind.String())
			return
		}
		c.Next()
	}
}

// authenticate returns the identity already on the request or resolves it
// from the bearer token. On failure the response is written and the chain aborted.
func (a *Authorizer) authenticate(c *gin.Context) (*domain.User, bool) {
	if user, ok := CurrentUser(c); ok {
		return user, true
	}

	raw, err := BearerToken(c.GetHeader("Authorization"))
	if errors.Is(err, ErrMissingToken) {
		a.unauthorized(c, ReasonMissingToken, "Authorization header required")
		return nil, false
	}
	if err != nil {
		a.unauthorized(c, ReasonMalformedHeader, "Authorization header must be 'Bearer <token>'")
		return nil, false
	}

	claims, err := a.tokens.Validate(raw)
	if err != nil {
		a.unauthorized(c, ReasonInvalidToken, "Invalid or expired token")
		return nil, false
	}

	// The stored role is authoritative; the token role may be stale.
	user, err := a.users.GetCurrentUser(c.Request.Context(), claims.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		a.unauthorized(c, ReasonUnknownUser, "User not found")
		return nil, false
	}
	if err != nil {
		logger.Log.Error("user lookup failed", "user_id", claims.UserID, "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		c.Abort()
		return nil, false
	}

	c.Request = c.Request.WithContext(domain.WithIdentity(c.Request.Context(), user))
	c.Set(string(domain.KeyUserID), user.ID)
	c.Set(string(domain.KeyUserRole), user.Role)
	return user, true
}

func (a *Authorizer) unauthorized(c *gin.Context, reason, message string) {
	a.metrics.RecordAuthFailure(reason)
	a.secLog.LogAccessDenied(c.Request.Context(), security.EventUnauthorizedAccess, "", c.ClientIP(), requestIDFrom(c), reason)
	response.Error(c, http.StatusUnauthorized, message, nil)
	c.Abort()
}

func (a *Authorizer) forbid(c *gin.Context, user *domain.User, reason, message string) {
	a.metrics.RecordAuthFailure(reason)
	a.secLog.LogAccessDenied(c.Request.Context(), security.EventForbiddenAccess, strconv.FormatInt(user.ID, 10), c.ClientIP(), requestIDFrom(c), reason)
	response.Error(c, http.StatusForbidden, message, nil)
	c.Abort()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
