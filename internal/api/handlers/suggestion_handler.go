package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sportmap-ro/backend/internal/domain/entities"
	"github.com/sportmap-ro/backend/internal/domain/providers"
)

const (
	suggestionRateLimit   = 5
	suggestionRateWindow  = time.Hour
	suggestionDedupWindow = 24 * time.Hour
)

// SuggestionService defines the suggestion operations used by the handler
type SuggestionService interface {
	Create(ctx context.Context, suggestion *entities.Suggestion) error
}

// SuggestionHandler handles visitor suggestion submissions
type SuggestionHandler struct {
	service SuggestionService
	cache   providers.CacheProvider
	local   *localRateLimiter
	deduper *localDeduper
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(service SuggestionService, cache providers.CacheProvider) *SuggestionHandler {
	return &SuggestionHandler{
		service: service,
		cache:   cache,
		local:   newLocalRateLimiter(),
		deduper: newLocalDeduper(),
	}
}

type suggestionRequest struct {
	FacilityID string `json:"facility_id"`
	Message    string `json:"message"`
	Email      string `json:"email"`
	Page       string `json:"page"`
}

// SubmitSuggestion handles POST /api/suggestions
func (h *SuggestionHandler) SubmitSuggestion(w http.ResponseWriter, r *http.Request) {
	var payload suggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	payload.Message = strings.TrimSpace(payload.Message)
	payload.Email = strings.TrimSpace(payload.Email)
	payload.Page = strings.TrimSpace(payload.Page)

	if payload.Message == "" {
		respondWithError(w, http.StatusBadRequest, "message is required")
		return
	}
	if len(payload.Message) > 2000 {
		respondWithError(w, http.StatusBadRequest, "message is too long")
		return
	}
	if len(payload.Email) > 200 {
		respondWithError(w, http.StatusBadRequest, "email is too long")
		return
	}
	if len(payload.Page) > 300 {
		respondWithError(w, http.StatusBadRequest, "page is too long")
		return
	}

	key := "suggestion:rate:" + clientIP(r)
	allowed, retryAfter := h.allowRequest(r.Context(), key)
	if !allowed {
		w.Header().Set("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
		respondWithError(w, http.StatusTooManyRequests, "rate limit exceeded")
		return
	}

	dupKey := "suggestion:dup:" + suggestionFingerprint(payload, clientIP(r))
	if h.isDuplicate(r.Context(), dupKey) {
		respondWithJSON(w, http.StatusAccepted, map[string]string{
			"status": "duplicate_ignored",
		})
		return
	}

	suggestion := &entities.Suggestion{
		FacilityID: payload.FacilityID,
		Message:    payload.Message,
		Email:      payload.Email,
		Page:       payload.Page,
		UserAgent:  r.UserAgent(),
	}

	if err := h.service.Create(r.Context(), suggestion); err != nil {
		respondWithError(w, http.StatusInternalServerError, "failed to submit suggestion")
		return
	}

	respondWithJSON(w, http.StatusCreated, map[string]string{
		"status": "received",
		"id":     suggestion.ID,
	})
}

func (h *SuggestionHandler) allowRequest(ctx context.Context, key string) (bool, time.Duration) {
	if h.cache == nil {
		return h.local.allow(key, suggestionRateLimit, suggestionRateWindow)
	}

	state := rateLimitState{}
	if data, err := h.cache.Get(ctx, key); err == nil {
		_ = json.Unmarshal(data, &state)
	}

	if state.Count >= suggestionRateLimit {
		return false, suggestionRateWindow
	}

	state.Count++
	data, _ := json.Marshal(state)
	_ = h.cache.Set(ctx, key, data, int(suggestionRateWindow.Seconds()))
	return true, suggestionRateWindow
}

type rateLimitState struct {
	Count int `json:"count"`
}

func (h *SuggestionHandler) isDuplicate(ctx context.Context, key string) bool {
	if h.cache == nil {
		return h.deduper.seen(key, suggestionDedupWindow)
	}

	exists, err := h.cache.Exists(ctx, key)
	if err == nil && exists {
		return true
	}

	_ = h.cache.Set(ctx, key, []byte("1"), int(suggestionDedupWindow.Seconds()))
	return false
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

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	if realIP := r.Header.Get("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil {
		return host
	}
	return r.RemoteAddr
}

func suggestionFingerprint(payload suggestionRequest, ip string) string {
	normalized := []string{
		strings.TrimSpace(payload.FacilityID),
		normalizeMessage(payload.Message),
		strings.ToLower(strings.TrimSpace(payload.Email)),
		strings.ToLower(strings.TrimSpace(payload.Page)),
		ip,
	}

	hash := sha256.Sum256([]byte(strings.Join(normalized, "|")))
	return hex.EncodeToString(hash[:])
}

func normalizeMessage(value string) string {
	trimmed := strings.TrimSpace(strings.ToLower(value))
	if trimmed == "" {
		return ""
	}
	return strings.Join(strings.Fields(trimmed), " ")
}
