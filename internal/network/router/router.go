package router

import (
	"github.com/denmor86/points-bridge/internal/config"
	"github.com/denmor86/points-bridge/internal/network/handlers"
	"github.com/denmor86/points-bridge/internal/network/middleware"
	"github.com/denmor86/points-bridge/internal/services"
	"github.com/go-chi/chi/v5"

	"github.com/go-chi/jwtauth/v5"
)

type Router struct {
	Config      config.Config
	Identity    services.IdentityService
	Withdrawals services.WithdrawalsService
}

func NewRouter(config config.Config, identity services.IdentityService, withdrawals services.WithdrawalsService) *Router {
	return &Router{
		Config:      config,
		Identity:    identity,
		Withdrawals: withdrawals,
	}
}

func (router *Router) HandleRouter() chi.Router {
	ja := router.Identity.GetTokenAuth()
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.LogHandle)
		r.Route("/user", func(r chi.Router) {
			r.Post("/register", handlers.RegisterUserHandler(router.Identity))
			r.Post("/login", handlers.AuthenticateUserHandler(router.Identity))
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(ja))
				r.Use(jwtauth.Authenticator(ja))
				r.Post("/withdraw", handlers.WithdrawHandler(router.Withdrawals))
				r.Get("/balance", handlers.GetUserBalanceHandler(router.Withdrawals))
				r.Get("/withdrawals", handlers.GetWithdrawalsHandler(router.Withdrawals))
				r.Get("/withdrawals/{id}", handlers.GetWithdrawalHandler(router.Withdrawals))
			})
		})
	})
	return r
}
