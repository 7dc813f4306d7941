package handler

import (
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pharmacie-tassigny/site/backend/internal/chat"
	"github.com/pharmacie-tassigny/site/backend/internal/config"
	"github.com/pharmacie-tassigny/site/backend/internal/content"
	"github.com/pharmacie-tassigny/site/backend/internal/hours"
	"github.com/pharmacie-tassigny/site/backend/internal/ratelimit"
	"github.com/pharmacie-tassigny/site/backend/internal/utils"
)

type Handler struct {
	validate   *validator.Validate
	config     *config.Config
	content    *content.Loader
	relay      *chat.Relay
	limiter    ratelimit.Limiter
	translator ut.Translator
	location   *time.Location
	phrases    hours.Phrases
	now        func() time.Time

	Mux *chi.Mux
}

// NewHandler wires the HTTP API. limiter may be nil to serve the chat endpoint
// without a request budget.
func NewHandler(cfg *config.Config, loader *content.Loader, relay *chat.Relay, limiter ratelimit.Limiter) (*Handler, error) {
	validate, trans, err := utils.NewValidator(cfg.Site.Locale)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.Site.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load site timezone %q: %w", cfg.Site.Timezone, err)
	}

	return &Handler{
		validate:   validate,
		config:     cfg,
		content:    loader,
		relay:      relay,
		limiter:    limiter,
		translator: trans,
		location:   loc,
		phrases:    hours.PhrasesFor(cfg.Site.Locale),
		now:        time.Now,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	// behind a reverse proxy the client address comes from X-Forwarded-For / X-Real-IP
	if h.config.Server.TrustProxy {
		h.Mux.Use(middleware.RealIP)
	}
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Get("/healthz", h.Healthz)
	h.Mux.Get("/sitemap.xml", h.GetSitemap)

	h.Mux.Route("/api", func(r chi.Router) {
		r.With(h.rateLimit).Post("/chat", h.Chat)

		r.Get("/pharmacy", h.GetPharmacy)
		r.Route("/hours", func(r chi.Router) {
			r.Get("/status", h.GetHoursStatus)
			r.Get("/week", h.GetHoursWeek)
		})

		r.Get("/needs", h.GetNeeds)
		r.Route("/services", func(r chi.Router) {
			r.Get("/", h.GetServices)
			r.Route("/{slug}", func(r chi.Router) {
				r.Use(h.service)
				r.Get("/", h.GetService)
			})
		})

		r.Get("/team", h.GetTeam)
		r.Get("/faq", h.GetFaq)
		r.Get("/legal", h.GetLegal)
		r.Get("/jsonld", h.GetLocalBusiness)
		r.Get("/loyalty", h.GetLoyalty)
	})
}
