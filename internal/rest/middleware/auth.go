package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/blog-comment-thread/domain"
)

// AuthMiddleware validates the HS256 bearer token and stores the user id
// under "user_id" as int64. The id comes from the "id" claim, or "sub".
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			unauthorized(c)
			return
		}

		token, err := parser.Parse(strings.TrimSpace(h[len("Bearer "):]), func(t *jwt.Token) (any, error) {
			return key, nil
		})
		if err != nil || !token.Valid {
			logrus.Debugf("rejected token: %v", err)
			unauthorized(c)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(c)
			return
		}
		uid, ok := userIDFromClaims(claims)
		if !ok {
			unauthorized(c)
			return
		}

		c.Set("user_id", uid)
		c.Next()
	}
}

func userIDFromClaims(claims jwt.MapClaims) (int64, bool) {
	for _, name := range []string{"id", "sub"} {
		switch v := claims[name].(type) {
		case float64:
			if v > 0 {
				return int64(v), true
			}
		case string:
			if id, err := strconv.ParseInt(v, 10, 64); err == nil && id > 0 {
				return id, true
			}
		}
	}
	return 0, false
}

func unauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": domain.ErrUnauthorized.Error()})
}
