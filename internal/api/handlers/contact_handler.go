package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/skyexp/booking-backend/internal/application/services"
	"github.com/skyexp/booking-backend/internal/domain/entities"
	"github.com/skyexp/booking-backend/internal/domain/providers"
)

const (
	contactRateLimit   = 5
	contactRateWindow  = time.Hour
	contactDedupWindow = 24 * time.Hour
)

// ContactService defines the contact request operations used by the handler.
type ContactService interface {
	Create(ctx context.Context, input *services.ContactInput) (*entities.ContactRequest, error)
	List(ctx context.Context) ([]*entities.ContactRequest, error)
}

// ContactHandler handles public contact form submissions. Submissions are rate
// limited per client IP and repeated identical submissions inside the dedup
// window are acknowledged without being stored again.
type ContactHandler struct {
	service ContactService
	cache   providers.CacheProvider
	local   *localRateLimiter
	deduper *localDeduper
}

// NewContactHandler creates a new contact handler. The cache is optional;
// without it rate limiting falls back to in-process state.
func NewContactHandler(service ContactService, cache providers.CacheProvider) *ContactHandler {
	return &ContactHandler{
		service: service,
		cache:   cache,
		local:   newLocalRateLimiter(),
		deduper: newLocalDeduper(),
	}
}

// SubmitContact handles POST /api/contact
func (h *ContactHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var input services.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	key := "contact:rate:" + clientIP(r)
	allowed, retryAfter := h.allowRequest(r.Context(), key)
	if !allowed {
		w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
		respondWithError(w, http.StatusTooManyRequests, "Too many requests, please try again later")
		return
	}

	dupKey := "contact:dup:" + contactFingerprint(&input, clientIP(r))
	if h.isDuplicate(r.Context(), dupKey) {
		respondWithJSON(w, http.StatusAccepted, map[string]string{
			"message": "Message received",
		})
		return
	}

	request, err := h.service.Create(r.Context(), &input)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{
		"message": "Message received",
		"id":      request.ID,
	})
}

// ListContacts handles GET /api/contact
func (h *ContactHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.List(r.Context())
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, requests)
}

func (h *ContactHandler) allowRequest(ctx context.Context, key string) (bool, time.Duration) {
	if h.cache == nil {
		return h.local.allow(key, contactRateLimit, contactRateWindow)
	}

	state := rateLimitState{}
	if data, err := h.cache.Get(ctx, key); err == nil {
		_ = json.Unmarshal(data, &state)
	}

	if state.Count >= contactRateLimit {
		return false, contactRateWindow
	}

	state.Count++
	data, _ := json.Marshal(state)
	_ = h.cache.Set(ctx, key, data, int(contactRateWindow.Seconds()))
	return true, contactRateWindow
}

type rateLimitState struct {
	Count int `json:"count"`
}

func (h *ContactHandler) isDuplicate(ctx context.Context, key string) bool {
	if h.cache == nil {
		return h.deduper.seen(key, contactDedupWindow)
	}

	exists, err := h.cache.Exists(ctx, key)
	if err == nil && exists {
		return true
	}

	_ = h.cache.Set(ctx, key, []byte("1"), int(contactDedupWindow.Seconds()))
	return false
}

func contactFingerprint(input *services.ContactInput, ip string) string {
	normalized := []string{
		strings.ToLower(strings.TrimSpace(input.FirstName)),
		strings.ToLower(strings.TrimSpace(input.LastName)),
		strings.ToLower(strings.TrimSpace(input.Email)),
		strings.Join(strings.Fields(strings.ToLower(input.Message)), " "),
		ip,
	}

	hash := sha256.Sum256([]byte(strings.Join(normalized, "|")))
	return hex.EncodeToString(hash[:])
}

type localRateLimiter struct {
	mu     sync.Mutex
	states map[string]*localRateState
}

type localRateState struct {
	count   int
	resetAt time.Time
}

func newLocalRateLimiter() *localRateLimiter {
	return &localRateLimiter{
		states: make(map[string]*localRateState),
	}
}

func (l *localRateLimiter) allow(key string, limit int, window time.Duration) (bool, time.Duration) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	state, ok := l.states[key]
	if !ok || now.After(state.resetAt) {
		state = &localRateState{count: 0, resetAt: now.Add(window)}
		l.states[key] = state
	}

	if state.count >= limit {
		retryAfter := time.Until(state.resetAt)
		if retryAfter < 0 {
			retryAfter = window
		}
		return false, retryAfter
	}

	state.count++
	return true, window
}

type localDeduper struct {
	mu      sync.Mutex
	entries map[string]time.Time
}

func newLocalDeduper() *localDeduper {
	return &localDeduper{
		entries: make(map[string]time.Time),
	}
}

func (d *localDeduper) seen(key string, window time.Duration) bool {
	now := time.Now()

	d.mu.Lock()
	defer d.mu.Unlock()

	if expiresAt, ok := d.entries[key]; ok && now.Before(expiresAt) {
		return true
	}

	d.entries[key] = now.Add(window)
	return false
}
