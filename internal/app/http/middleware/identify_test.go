package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string, userID uint) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   "u@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func identifyRouter() *gin.Engine {
	r := gin.New()
	r.Use(Identify(testSecret))
	r.GET("/whoami", func(c *gin.Context) {
		if id, ok := CurrentUserID(c); ok {
			c.JSON(200, gin.H{"user_id": id})
			return
		}
		c.JSON(200, gin.H{"user_id": nil})
	})
	return r
}

func TestIdentifyBearerHeader(t *testing.T) {
	r := identifyRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, testSecret, 42))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestIdentifyTokenCookie(t *testing.T) {
	r := identifyRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signedToken(t, testSecret, 7)})
	r.ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestIdentifyBadSignatureIsAnonymous(t *testing.T) {
	r := identifyRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(t, "other-secret", 42))
	r.ServeHTTP(w, req)

	// invalid tokens never abort, they just carry no identity
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":null`)
}

func TestIdentifyNoToken(t *testing.T) {
	r := identifyRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	r.ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), `"user_id":null`)
}

func TestIdentifyMalformedHeaderIsAnonymous(t *testing.T) {
	r := identifyRouter()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	r.ServeHTTP(w, req)

	assert.Contains(t, w.Body.String(), `"user_id":null`)
}
