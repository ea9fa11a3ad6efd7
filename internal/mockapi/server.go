// Package mockapi is a development stand-in for the booking backend. It
// serves the same resource paths with the same inconsistent response shapes
// (full envelope, bare array, bare paged object), issues real HS256 tokens,
// and rate-limits per bearer. That is enough surface for the client to be
// exercised end to end without the production API.
package mockapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

type Server struct {
	router   chi.Router
	data     *store
	secret   []byte
	tokenTTL time.Duration
	limiter  *rateLimiter
}

type Options struct {
	JWTSecret       string
	TokenTTL        time.Duration
	RateLimitPerMin int
}

func NewServer(opts Options) *Server {
	if opts.TokenTTL <= 0 {
		opts.TokenTTL = time.Hour
	}
	if opts.RateLimitPerMin <= 0 {
		opts.RateLimitPerMin = 600
	}

	s := &Server{
		data:     newStore(),
		secret:   []byte(opts.JWTSecret),
		tokenTTL: opts.TokenTTL,
		limiter:  newRateLimiter(opts.RateLimitPerMin),
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/Auth/login", s.handleLogin)
		r.Post("/Auth/register", s.handleRegister)

		r.Get("/Court", s.handleCourtList)
		r.Get("/Court/{id}", s.handleCourtGet)
		r.Get("/Blog", s.handleBlogList)
		r.Get("/Package", s.handlePackageList)
		r.Get("/Review", s.handleReviewList)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)
			r.Use(s.limiter.middleware)

			r.Post("/Auth/logout", s.handleLogout)

			r.Post("/Court", s.handleCourtCreate)
			r.Put("/Court/{id}", s.handleCourtUpdate)
			r.Delete("/Court/{id}", s.handleCourtDelete)

			r.Post("/CourtBooking", s.handleBookingCreate)
			r.Get("/CourtBooking/my", s.handleBookingMine)
			r.Put("/CourtBooking/{id}/payment-status", s.handleBookingPaymentStatus)

			r.Get("/Notification/my", s.handleNotificationMine)
			r.Put("/Notification/{id}/read", s.handleNotificationRead)
			r.Put("/Notification/my/read-all", s.handleNotificationReadAll)

			r.Get("/Wallet/my", s.handleWalletMine)
			r.Post("/Wallet/deposit", s.handleWalletDeposit)
			r.Get("/WalletTransaction/my", s.handleTransactionMine)
		})
	})

	s.router = r
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// envelope is the canonical success wrapper the production API uses for most
// endpoints.
type envelopeBody struct {
	StatusCode int    `json:"statusCode"`
	Status     string `json:"status"`
	Message    string `json:"message"`
	Errors     any    `json:"errors"`
	Data       any    `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, envelopeBody{
		StatusCode: status,
		Status:     http.StatusText(status),
		Data:       data,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"statusCode": status,
		"message":    message,
	})
}
