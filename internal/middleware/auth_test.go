package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/shop_pos_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret = "test-secret-key-that-is-long-enough"
	testIssuer = "shop-pos-test"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testSecret, testIssuer))
	suite.router.GET("/me", func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"user": userID})
	})
}

func (suite *AuthMiddlewareTestSuite) token(secret, issuer, subject string, expiresIn time.Duration) string {
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *AuthMiddlewareTestSuite) get(authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *AuthMiddlewareTestSuite) TestValidTokenSetsUser() {
	w := suite.get("Bearer " + suite.token(testSecret, testIssuer, "owner", time.Hour))

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"user":"owner"}`, w.Body.String())
}

func (suite *AuthMiddlewareTestSuite) TestMissingHeader() {
	w := suite.get("")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Authorization header required")
}

func (suite *AuthMiddlewareTestSuite) TestMalformedHeader() {
	w := suite.get("Token abc")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Bearer {token}")
}

func (suite *AuthMiddlewareTestSuite) TestRejectedTokens() {
	cases := map[string]string{
		"wrong secret": suite.token("another-secret", testIssuer, "owner", time.Hour),
		"wrong issuer": suite.token(testSecret, "someone-else", "owner", time.Hour),
		"expired":      suite.token(testSecret, testIssuer, "owner", -time.Minute),
		"no subject":   suite.token(testSecret, testIssuer, "", time.Hour),
		"garbage":      "not-a-jwt",
	}
	for name, tok := range cases {
		w := suite.get("Bearer " + tok)
		suite.Equal(http.StatusUnauthorized, w.Code, name)
	}
}

func (suite *AuthMiddlewareTestSuite) TestExpiredTokenMessage() {
	w := suite.get("Bearer " + suite.token(testSecret, testIssuer, "owner", -time.Minute))

	suite.Contains(w.Body.String(), "Token has expired")
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func TestRateLimit_BlocksAfterLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim, err := middleware.NewMemoryLimiter("2-M")
	if !assert.NoError(t, err) {
		return
	}
	r := gin.New()
	r.POST("/auth/login", middleware.RateLimit(lim), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/auth/login", nil))
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusNoContent, http.StatusNoContent, http.StatusTooManyRequests}, codes)
}

func TestNewMemoryLimiter_RejectsBadRate(t *testing.T) {
	_, err := middleware.NewMemoryLimiter("five per minute")
	assert.Error(t, err)
}
