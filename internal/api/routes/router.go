package routes

import (
	"net/http"

	"github.com/sportmap-ro/backend/internal/api/handlers"
	"github.com/sportmap-ro/backend/internal/api/middleware"
	"github.com/sportmap-ro/backend/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	facilityHandler   *handlers.FacilityHandler
	scheduleHandler   *handlers.ScheduleHandler
	coachHandler      *handlers.CoachHandler
	seoHandler        *handlers.SEOHandler
	suggestionHandler *handlers.SuggestionHandler
	adminHandler      *handlers.AdminHandler

	cacheMiddleware *middleware.CacheMiddleware
	metrics         *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	facilityHandler *handlers.FacilityHandler,
	scheduleHandler *handlers.ScheduleHandler,
	coachHandler *handlers.CoachHandler,
	seoHandler *handlers.SEOHandler,
	suggestionHandler *handlers.SuggestionHandler,
	adminHandler *handlers.AdminHandler,
	cacheMiddleware *middleware.CacheMiddleware,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:               http.NewServeMux(),
		facilityHandler:   facilityHandler,
		scheduleHandler:   scheduleHandler,
		coachHandler:      coachHandler,
		seoHandler:        seoHandler,
		suggestionHandler: suggestionHandler,
		adminHandler:      adminHandler,
		cacheMiddleware:   cacheMiddleware,
		metrics:           metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Facility endpoints
	r.mux.HandleFunc("GET /api/facilities", r.facilityHandler.ListFacilities)
	r.mux.HandleFunc("GET /api/facilities/search", r.facilityHandler.SearchFacilities)
	r.mux.HandleFunc("GET /api/facilities/{slug}", r.facilityHandler.GetFacility)
	r.mux.HandleFunc("POST /api/facilities", r.facilityHandler.CreateFacility)
	r.mux.HandleFunc("PUT /api/facilities/{id}", r.facilityHandler.UpdateFacility)
	r.mux.HandleFunc("DELETE /api/facilities/{id}", r.facilityHandler.DeleteFacility)

	// Schedule endpoints
	r.mux.HandleFunc("GET /api/facilities/{slug}/schedule", r.scheduleHandler.GetFacilitySchedule)
	r.mux.HandleFunc("GET /api/fields/{id}/schedule", r.scheduleHandler.GetFieldSchedule)
	r.mux.HandleFunc("PUT /api/facilities/{id}/fields", r.scheduleHandler.ReplaceFields)

	// Coach endpoints
	r.mux.HandleFunc("GET /api/coaches", r.coachHandler.ListCoaches)
	r.mux.HandleFunc("GET /api/coaches/{slug}", r.coachHandler.GetCoach)
	r.mux.HandleFunc("POST /api/coaches", r.coachHandler.CreateCoach)
	r.mux.HandleFunc("PUT /api/coaches/{id}", r.coachHandler.UpdateCoach)
	r.mux.HandleFunc("DELETE /api/coaches/{id}", r.coachHandler.DeleteCoach)

	// SEO metadata endpoints
	r.mux.HandleFunc("GET /api/seo", r.seoHandler.GetPageMeta)

	// Suggestion endpoints
	r.mux.HandleFunc("POST /api/suggestions", r.suggestionHandler.SubmitSuggestion)

	// Admin endpoints
	r.mux.HandleFunc("GET /api/admin/facilities/pending", r.adminHandler.ListPendingFacilities)
	r.mux.HandleFunc("POST /api/admin/facilities/{id}/approve", r.adminHandler.ApproveFacility)
	r.mux.HandleFunc("POST /api/admin/facilities/{id}/reject", r.adminHandler.RejectFacility)
	r.mux.HandleFunc("POST /api/admin/coaches/{id}/approve", r.adminHandler.ApproveCoach)
	r.mux.HandleFunc("POST /api/admin/coaches/{id}/reject", r.adminHandler.RejectCoach)
	r.mux.HandleFunc("GET /api/admin/suggestions", r.adminHandler.ListSuggestions)
	r.mux.HandleFunc("DELETE /api/admin/suggestions/{id}", r.adminHandler.DeleteSuggestion)
	r.mux.HandleFunc("GET /api/admin/export/listings", r.adminHandler.ExportListings)
	r.mux.HandleFunc("GET /api/admin/seo", r.seoHandler.ListPages)
	r.mux.HandleFunc("PUT /api/admin/seo", r.seoHandler.UpsertPage)
	r.mux.HandleFunc("DELETE /api/admin/seo/{id}", r.seoHandler.DeletePage)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so cached responses also get CORS headers.

	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)

	// Apply cache middleware if available
	if r.cacheMiddleware != nil {
		handler = r.cacheMiddleware.Middleware(handler)
	}

	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// Apply HTTP performance optimizations (compression, ETag, cache headers)
	handler = middleware.ResponseOptimization(handler)

	// CORS wraps everything so headers are set even on cache HITs
	handler = middleware.CORSMiddleware(handler)

	return handler
}
