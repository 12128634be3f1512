package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"dormhub/services/user"
	"dormhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Verified tokens are cached by hash so repeat requests skip the round
// trip to Firebase. Entries live shorter than Firebase ID tokens do.
const authCacheTTL = 30 * time.Minute

// FirebaseAuthMiddleware verifies the Bearer ID token against Firebase
// Auth, syncs the profile mirror, and injects a Session into the context.
func FirebaseAuthMiddleware(userSvc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)
		authCache := utils.GetAuthCacheClient()

		// Cache hit: the token was verified recently; the cached value is
		// "uid|email|role".
		if authCache != nil {
			cached, err := authCache.Get(ctx, cacheKey).Result()
			if err == nil {
				parts := strings.SplitN(cached, "|", 3)
				if len(parts) == 3 {
					utils.SetSession(c, utils.Session{UID: parts[0], Email: parts[1], Role: parts[2]})
					c.Next()
					return
				}
			} else if err != redis.Nil {
				utils.GetLogger().Warn("auth cache read failed, verifying with Firebase", zap.Error(err))
			}
		}

		token, err := utils.AuthClient.VerifyIDToken(ctx, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		email, _ := token.Claims["email"].(string)
		name, _ := token.Claims["name"].(string)
		picture, _ := token.Claims["picture"].(string)

		// Mirror the Firebase account into Mongo; the stored record is the
		// source of truth for the role string.
		profile, err := userSvc.Sync(token.UID, email, name, picture)
		if err != nil {
			utils.GetLogger().Error("failed to sync user profile", zap.String("uid", token.UID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Authentication error"})
			return
		}

		session := utils.Session{UID: profile.ID, Email: profile.Email, Role: profile.Role}
		if authCache != nil {
			value := session.UID + "|" + session.Email + "|" + session.Role
			if err := authCache.Set(ctx, cacheKey, value, authCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("auth cache write failed", zap.Error(err))
			}
		}

		utils.SetSession(c, session)
		c.Next()
	}
}
