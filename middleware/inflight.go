package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

// EntityLock is a pending-operation set keyed by entity id. Rapid repeated
// mutations on the same entity would otherwise race at the network layer
// with last-response-wins semantics; a second mutation is rejected with 409
// until the first resolves.
type EntityLock struct {
	mu      sync.Mutex
	pending map[string]struct{}
}

func NewEntityLock() *EntityLock {
	return &EntityLock{pending: make(map[string]struct{})}
}

// TryAcquire marks key as busy; false if an operation is already in flight.
func (l *EntityLock) TryAcquire(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, busy := l.pending[key]; busy {
		return false
	}
	l.pending[key] = struct{}{}
	return true
}

func (l *EntityLock) Release(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.pending, key)
}

// Guard wraps a mutating route: the entity key is kind + the named URL
// param (or the authenticated user id when param is empty).
func (l *EntityLock) Guard(kind, param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := ""
		if param != "" {
			id = c.Param(param)
		} else if v, ok := c.Get("user_id"); ok {
			id, _ = v.(string)
		}
		key := kind + ":" + id

		if !l.TryAcquire(key) {
			c.JSON(http.StatusConflict, gin.H{"error": "Another update for this item is still in progress"})
			c.Abort()
			return
		}
		defer l.Release(key)

		c.Next()
	}
}
