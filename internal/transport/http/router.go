package http

import (
	"net/http"

	"github.com/JulioZittei/guestify-app-server/internal/application/account"
	"github.com/JulioZittei/guestify-app-server/internal/application/auth"
	"github.com/JulioZittei/guestify-app-server/internal/application/verification"
	"github.com/JulioZittei/guestify-app-server/internal/config"
	jwtinfra "github.com/JulioZittei/guestify-app-server/internal/infrastructure/jwt"
	"github.com/JulioZittei/guestify-app-server/internal/infrastructure/smtp"
	"github.com/JulioZittei/guestify-app-server/internal/pkg/cache"
	"github.com/JulioZittei/guestify-app-server/internal/transport/http/handler"
	appmiddleware "github.com/JulioZittei/guestify-app-server/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	AccountRepo AccountRepository
	Mailer      smtp.Mailer
	Cache       cache.Cache
	JWTProvider *jwtinfra.Provider
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	accountSvc := account.NewService(account.ServiceDeps{
		AccountRepo: deps.AccountRepo,
		Mailer:      deps.Mailer,
		Cache:       deps.Cache,
		CodeTTL:     cfg.CodeTTL,
	})
	verificationSvc := verification.NewService(verification.ServiceDeps{
		AccountRepo: deps.AccountRepo,
		Mailer:      deps.Mailer,
		Cache:       deps.Cache,
		CodeTTL:     cfg.CodeTTL,
	})
	authSvc := auth.NewService(auth.ServiceDeps{
		AccountRepo: deps.AccountRepo,
		TokenSigner: deps.JWTProvider,
	})

	healthH := handler.NewHealthHandler()
	accountH := handler.NewAccountHandler(accountSvc, verificationSvc)
	authH := handler.NewAuthHandler(authSvc)

	// 5 requests/second, burst of 10, on register and auth only.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health-check/ping", healthH.Ping)

		r.With(sensitiveRL.Limit).Post("/accounts/register", accountH.Register)
		r.Post("/accounts/register/confirm", accountH.Confirm)
		r.Post("/accounts/register/resend-code", accountH.ResendCode)
		r.With(sensitiveRL.Limit).Post("/auth", authH.Authenticate)

		r.Group(func(r chi.Router) {
			r.Use(appmiddleware.Auth(deps.JWTProvider))

			r.Get("/accounts/me", accountH.Me)
		})
	})

	return r
}
