package middleware

import (
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/TukaHeba/Task-System/internal/core/domain"
	"github.com/TukaHeba/Task-System/internal/core/ports"
	"github.com/TukaHeba/Task-System/pkg/apierrors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const principalKey = "principal"

type TokenVerifier interface {
	Verify(token string) (uint64, error)
}

// Authenticate resolves the bearer token to a principal. The role always
// comes from the users table, never from the token.
func Authenticate(verifier TokenVerifier, users ports.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		bearer, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, lang)
			return
		}

		userID, err := verifier.Verify(bearer)
		if err != nil {
			zap.L().Debug("rejected bearer token", zap.Error(err))
			abortUnauthorized(c, lang)
			return
		}

		user, err := users.FindUserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				abortUnauthorized(c, lang)
				return
			}
			zap.L().Error("failed to load authenticated user", zap.Uint64("user_id", userID), zap.Error(err))
			c.AbortWithStatusJSON(
				http.StatusInternalServerError,
				apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAuthenticate, lang),
			)
			return
		}

		SetPrincipal(c, user.Principal())
		c.Next()
	}
}

// RequireRoles must run after Authenticate.
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok || !slices.Contains(roles, principal.Role) {
			c.AbortWithStatusJSON(
				http.StatusForbidden,
				apierrors.CreateError(http.StatusForbidden, apierrors.MsgForbidden, GetLang(c)),
			)
			return
		}
		c.Next()
	}
}

func SetPrincipal(c *gin.Context, principal domain.Principal) {
	c.Set(principalKey, principal)
}

func GetPrincipal(c *gin.Context) (domain.Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return domain.Principal{}, false
	}
	principal, ok := value.(domain.Principal)
	return principal, ok
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func abortUnauthorized(c *gin.Context, lang string) {
	c.AbortWithStatusJSON(
		http.StatusUnauthorized,
		apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
	)
}
