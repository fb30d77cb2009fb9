package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens := NewTokenManager("test-secret", time.Hour)

	valid, err := tokens.Issue(testUser)
	require.NoError(t, err)

	expired, err := NewTokenManager("test-secret", -time.Minute).Issue(testUser)
	require.NoError(t, err)

	otherSecret, err := NewTokenManager("other-secret", time.Hour).Issue(testUser)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/protected", RequireToken(tokens), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": UserIDFromContext(c)})
	})

	tests := []struct {
		name         string
		header       string
		expectedCode int
	}{
		{name: "no header", header: "", expectedCode: http.StatusUnauthorized},
		{name: "empty bearer", header: "Bearer ", expectedCode: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token " + valid, expectedCode: http.StatusForbidden},
		{name: "garbage token", header: "Bearer garbage", expectedCode: http.StatusForbidden},
		{name: "expired token", header: "Bearer " + expired, expectedCode: http.StatusForbidden},
		{name: "wrong secret", header: "Bearer " + otherSecret, expectedCode: http.StatusForbidden},
		{name: "valid token", header: "Bearer " + valid, expectedCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			if tt.expectedCode == http.StatusOK {
				assert.Contains(t, rec.Body.String(), testUser.ID)
			}
		})
	}
}

func TestUserIDFromContextUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Empty(t, UserIDFromContext(c))
	assert.Nil(t, ClaimsFromContext(c))
}
