package cache

import "strings"

const (
	GlobalKeyPrefix = "quizera"
)

// GenerateCacheKey generates a cache key for a given service, object type, and identifier.
// If paramsKey are provided, they are joined by "_" and appended to the cache key.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// DocumentTextKey is the key under which extracted text for a document is held.
func DocumentTextKey(documentID string) string {
	return GenerateCacheKey("document", "text", documentID)
}

// SessionQuizKey is the key under which the last quiz of a browser session is held.
func SessionQuizKey(sessionID string) string {
	return GenerateCacheKey("session", "quiz", sessionID)
}
