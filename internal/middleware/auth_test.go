package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/harentsoaR/stayvista-api/internal/logging"
	"github.com/harentsoaR/stayvista-api/internal/middleware"
	"github.com/harentsoaR/stayvista-api/internal/models"
	"github.com/harentsoaR/stayvista-api/internal/testutil"
	"github.com/harentsoaR/stayvista-api/internal/utils"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(users *testutil.Users, role string) *gin.Engine {
	logger := logging.Discard()
	r := gin.New()
	chain := []gin.HandlerFunc{middleware.VerifyToken(testutil.Tokens(), logger)}
	if role != "" {
		chain = append(chain, middleware.RequireRole(role, users, logger))
	}
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": middleware.CurrentEmail(c)})
	})
	r.GET("/guarded", chain...)
	return r
}

func TestVerifyToken_MissingCookie(t *testing.T) {
	rec := testutil.Serve(newEngine(nil, ""), testutil.NewRequest(t, "GET", "/guarded", nil, nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"unauthorized access"}`, rec.Body.String())
}

func TestVerifyToken_GarbageToken(t *testing.T) {
	cookie := &http.Cookie{Name: middleware.TokenCookie, Value: "not.a.jwt"}
	rec := testutil.Serve(newEngine(nil, ""), testutil.NewRequest(t, "GET", "/guarded", nil, cookie))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyToken_ExpiredToken(t *testing.T) {
	token, err := utils.NewTokenManager(testutil.TokenSecret, -time.Minute).GenerateJWT("a@b.com", "")
	assert.NoError(t, err)
	cookie := &http.Cookie{Name: middleware.TokenCookie, Value: token}

	rec := testutil.Serve(newEngine(nil, ""), testutil.NewRequest(t, "GET", "/guarded", nil, cookie))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := utils.NewTokenManager("other", utils.TokenTTL).GenerateJWT("a@b.com", "")
	assert.NoError(t, err)
	cookie := &http.Cookie{Name: middleware.TokenCookie, Value: token}

	rec := testutil.Serve(newEngine(nil, ""), testutil.NewRequest(t, "GET", "/guarded", nil, cookie))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyToken_Valid(t *testing.T) {
	req := testutil.NewRequest(t, "GET", "/guarded", nil, testutil.AuthCookie(t, "guest@example.com"))
	rec := testutil.Serve(newEngine(nil, ""), req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email":"guest@example.com"}`, rec.Body.String())
}

func TestRequireRole(t *testing.T) {
	users := testutil.NewUsers(
		models.User{Email: "admin@example.com", Role: models.RoleAdmin},
		models.User{Email: "host@example.com", Role: models.RoleHost},
		models.User{Email: "guest@example.com", Role: models.RoleGuest},
	)

	tests := []struct {
		name  string
		role  string
		email string
		want  int
	}{
		{"admin on admin route", models.RoleAdmin, "admin@example.com", http.StatusOK},
		{"host on admin route", models.RoleAdmin, "host@example.com", http.StatusUnauthorized},
		{"host on host route", models.RoleHost, "host@example.com", http.StatusOK},
		{"guest on host route", models.RoleHost, "guest@example.com", http.StatusUnauthorized},
		{"unknown user", models.RoleHost, "ghost@example.com", http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.NewRequest(t, "GET", "/guarded", nil, testutil.AuthCookie(t, tt.email))
			rec := testutil.Serve(newEngine(users, tt.role), req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRequireRole_StoreFailure(t *testing.T) {
	users := testutil.NewUsers()
	users.Fail = true

	req := testutil.NewRequest(t, "GET", "/guarded", nil, testutil.AuthCookie(t, "host@example.com"))
	rec := testutil.Serve(newEngine(users, models.RoleHost), req)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
