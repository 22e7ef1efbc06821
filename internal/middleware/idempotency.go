package middleware

import (
	"bytes"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long a stored response is replayed
	IdempotencyKeyTTL = 24 * time.Hour
	// IdempotencyCacheSize caps the number of stored responses; the least recently used go first.
	IdempotencyCacheSize = 10000
)

type storedResponse struct {
	status      int
	contentType string
	body        []byte
}

// IdempotencyStore keeps responses to keyed requests in a bounded, expiring cache.
// Keys whose request is still running are tracked separately and never evicted.
type IdempotencyStore struct {
	responses *expirable.LRU[string, storedResponse]

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewIdempotencyStore creates an empty store holding at most size responses for ttl each.
func NewIdempotencyStore(ttl time.Duration, size int) *IdempotencyStore {
	if size <= 0 {
		size = IdempotencyCacheSize
	}
	return &IdempotencyStore{
		responses: expirable.NewLRU[string, storedResponse](size, nil, ttl),
		inFlight:  make(map[string]struct{}),
	}
}

// Len reports how many completed responses are held.
func (s *IdempotencyStore) Len() int {
	return s.responses.Len()
}

// claim reserves key. It returns the stored response when one exists, or busy when
// another request holding the same key is still running.
func (s *IdempotencyStore) claim(key string) (stored *storedResponse, busy bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, running := s.inFlight[key]; running {
		return nil, true
	}
	if resp, ok := s.responses.Get(key); ok {
		return &resp, false
	}
	s.inFlight[key] = struct{}{}
	return nil, false
}

func (s *IdempotencyStore) complete(key string, status int, contentType string, body []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses.Add(key, storedResponse{status: status, contentType: contentType, body: body})
	delete(s.inFlight, key)
}

func (s *IdempotencyStore) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}

// bodyRecorder wraps gin.ResponseWriter to capture the response body
type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w bodyRecorder) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// Idempotency replays the stored response when a request repeats an Idempotency-Key
// already answered successfully for the same user and route. Failed responses are not
// stored so the client may retry.
func Idempotency(store *IdempotencyStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}
		userID, _ := GetUserIDFromContext(c)
		storeKey := userID + "|" + c.Request.Method + " " + c.FullPath() + "|" + key

		stored, busy := store.claim(storeKey)
		if busy {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": "A request with this Idempotency-Key is still being processed"})
			return
		}
		if stored != nil {
			c.Header("Idempotent-Replayed", "true")
			c.Data(stored.status, stored.contentType, stored.body)
			c.Abort()
			return
		}

		rec := &bodyRecorder{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = rec

		done := false
		defer func() {
			// Failed or panicking requests free the key for a retry.
			if !done {
				store.release(storeKey)
			}
		}()

		c.Next()

		status := c.Writer.Status()
		if status >= 200 && status < 300 {
			store.complete(storeKey, status, c.Writer.Header().Get("Content-Type"), rec.body.Bytes())
			done = true
		}
	}
}
