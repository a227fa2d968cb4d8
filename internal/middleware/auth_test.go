package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/avaliaccess/aa-server/internal/config"
	"github.com/avaliaccess/aa-server/internal/models"
)

const testSecret = "segredo-de-teste"

func testRouter(t *testing.T, adminOnly bool) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	r := gin.New()

	cfg := &config.Config{JWTSecret: testSecret}

	handlers := []gin.HandlerFunc{AuthMiddleware(cfg)}
	if adminOnly {
		handlers = append(handlers, RequireAdmin())
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint(ContextUserID),
			"email":   c.GetString(ContextUserEmail),
		})
	})

	r.GET("/protegido", handlers...)
	return r
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func userClaims(roles ...models.Role) jwt.MapClaims {
	roleStrings := make([]string, 0, len(roles))
	for _, r := range roles {
		roleStrings = append(roleStrings, string(r))
	}
	return jwt.MapClaims{
		"sub":   float64(7),
		"email": "usuario@example.com",
		"roles": roleStrings,
		"exp":   time.Now().Add(time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r := testRouter(t, false)

	token := signToken(t, testSecret, userClaims(models.RoleUser))
	w := doRequest(r, "Bearer "+token)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"user_id":7`)
	require.Contains(t, w.Body.String(), "usuario@example.com")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := testRouter(t, false)

	w := doRequest(r, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "missing_authorization_header")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := testRouter(t, false)

	w := doRequest(r, "Token abc")
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "invalid_authorization_header")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	r := testRouter(t, false)

	token := signToken(t, "outro-segredo", userClaims(models.RoleUser))
	w := doRequest(r, "Bearer "+token)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "invalid_token")
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	r := testRouter(t, false)

	claims := userClaims(models.RoleUser)
	claims["exp"] = time.Now().Add(-time.Hour).Unix()

	token := signToken(t, testSecret, claims)
	w := doRequest(r, "Bearer "+token)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	r := testRouter(t, true)

	// usuário comum barrado
	token := signToken(t, testSecret, userClaims(models.RoleUser))
	w := doRequest(r, "Bearer "+token)
	require.Equal(t, http.StatusForbidden, w.Code)

	// administrador passa
	token = signToken(t, testSecret, userClaims(models.RoleAdmin, models.RoleUser))
	w = doRequest(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
}
