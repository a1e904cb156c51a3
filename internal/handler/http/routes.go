package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Get("/", h.welcome)

	router.Route("/api/auth", func(r chi.Router) {
		// routes without authorization
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/forgot-password", h.forgotPassword)
		r.Post("/reset-password", h.resetPassword)

		// routes behind the bearer-token middleware
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/redeem-rewards", h.redeemRewards)
			r.Get("/referrals", h.referrals)
			r.Get("/referral-stats", h.referralStats)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
