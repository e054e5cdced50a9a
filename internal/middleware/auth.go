package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/salinity-service/internal/i18n"
)

const (
	// APIKeyHeader carries the client's API key.
	APIKeyHeader = "X-API-Key"
	// APIKeyQuery is accepted when the header is absent.
	APIKeyQuery = "api_key"

	apiKeyIDKey = "api_key_id"
)

// APIKeyAuth rejects requests whose key is not in validKeys. Keys are held as
// digests and compared in constant time; an empty set disables the check.
func APIKeyAuth(validKeys map[string]bool) gin.HandlerFunc {
	digests := make([][sha256.Size]byte, 0, len(validKeys))
	for key, ok := range validKeys {
		if ok && key != "" {
			digests = append(digests, sha256.Sum256([]byte(key)))
		}
	}

	return func(c *gin.Context) {
		if len(digests) == 0 {
			c.Next()
			return
		}

		key := c.GetHeader(APIKeyHeader)
		if key == "" {
			key = c.Query(APIKeyQuery)
		}
		if key == "" {
			Abort(c, http.StatusUnauthorized, i18n.ErrKeyAPIKeyRequired)
			return
		}

		sum := sha256.Sum256([]byte(key))
		if !knownDigest(digests, sum) {
			RequestLog(c).Warn().Str("api_key_id", keyID(sum)).Msg("rejected unknown api key")
			Abort(c, http.StatusUnauthorized, i18n.ErrKeyInvalidAPIKey)
			return
		}

		c.Set(apiKeyIDKey, keyID(sum))
		c.Next()
	}
}

func knownDigest(digests [][sha256.Size]byte, sum [sha256.Size]byte) bool {
	found := 0
	for i := range digests {
		found |= subtle.ConstantTimeCompare(digests[i][:], sum[:])
	}
	return found == 1
}

// GetAPIKeyID returns a short digest identifying the caller's key, or "" when
// auth is disabled. The key itself is never stored or logged.
func GetAPIKeyID(c *gin.Context) string {
	return c.GetString(apiKeyIDKey)
}

func keyID(sum [sha256.Size]byte) string {
	return hex.EncodeToString(sum[:8])
}
