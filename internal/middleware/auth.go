package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog/log"
	"github.com/selimyuksel/NetTakip/internal/dto"
)

// Context keys set by RequireUser.
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
)

// RequireUser verifies the bearer token issued by the identity provider and
// puts the caller's id and email on the gin context. Sign-in, verification
// and the rest of the auth flows live with the provider, not here; this
// middleware only establishes who owns the records being touched.
func RequireUser(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Missing bearer token"})
			return
		}
		tokenString := strings.TrimPrefix(header, "Bearer ")

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			log.Warn().Err(err).Msg("Rejected invalid bearer token")
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid or expired token"})
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Token has no subject claim"})
			return
		}
		email, _ := claims["email"].(string)

		ctx.Set(ContextUserID, sub)
		ctx.Set(ContextUserEmail, email)
		ctx.Next()
	}
}

// CurrentUser reads the identity placed on the context by RequireUser.
func CurrentUser(ctx *gin.Context) (id, email string) {
	return ctx.GetString(ContextUserID), ctx.GetString(ContextUserEmail)
}
