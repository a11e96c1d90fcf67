package routers

import (
	"agenda-care-service/internal/app/delivery/http/controllers"
	"agenda-care-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *controllers.AuthController) {
	router.Post("/login", authController.Login)
	router.Post("/refresh", authController.Refresh)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
