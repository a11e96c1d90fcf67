package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"agenda-care-service/internal/app/config"
	"agenda-care-service/internal/app/delivery/http/controllers"
	"agenda-care-service/internal/app/delivery/http/middlewares"
	"agenda-care-service/internal/app/delivery/http/routers"
	"agenda-care-service/internal/app/drivers/database"
	"agenda-care-service/internal/app/drivers/logger"
	"agenda-care-service/internal/app/services/core/appointments"
	"agenda-care-service/internal/app/services/core/auth"
	"agenda-care-service/internal/app/services/core/users"
	"agenda-care-service/internal/app/services/dataprovider"
	slotsFhir "agenda-care-service/internal/app/services/fhir/slots"
	"agenda-care-service/internal/app/services/shared/ratelimiter"
	"agenda-care-service/internal/app/services/shared/restclient"
	"agenda-care-service/internal/app/services/shared/tokenstore"
	"agenda-care-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootstrapLog := logger.NewLogrusLogger(internalConfig)

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         zapLogger,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		bootstrapLog.Infof("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootstrapLog.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootstrapLog.Println("Waiting for pending requests to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		bootstrapLog.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		bootstrapLog.Fatalf("Failed to close application resources: %v", err)
	}

	bootstrapLog.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	internalConfig := bootstrap.InternalConfig

	// Token storage
	tokenStore := tokenstore.NewRedisTokenStore(bootstrap.Redis)

	// Auth
	authClient := restclient.NewRestClient(internalConfig.Auth.BaseUrl)
	authUsecase := auth.NewAuthUsecase(tokenStore, authClient, internalConfig, bootstrap.Logger)
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)

	// FHIR client, authenticated with the signed-in user's session
	headerProvider := auth.NewBearerHeaderProvider(authUsecase, constvars.AuthContextUser)
	fhirClient := restclient.NewRestClient(
		internalConfig.FHIR.BaseUrl,
		restclient.WithTimeout(time.Duration(internalConfig.FHIR.RequestTimeoutInSeconds)*time.Second),
		restclient.WithHeaderProvider(headerProvider),
	)

	// User
	userUsecase := users.NewUserUsecase(authClient, fhirClient, bootstrap.Logger)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase, authUsecase)

	// Admin data provider
	slotFhirClient := slotsFhir.NewSlotFhirClient(fhirClient)
	appointmentController := appointments.NewAppointmentController(slotFhirClient)
	outboundLimiter := ratelimiter.NewOutboundLimiter(internalConfig)
	dataProvider := dataprovider.NewFhirDataProvider(
		fhirClient,
		outboundLimiter,
		bootstrap.Logger,
		dataprovider.DefaultTransformers(appointmentController),
	)
	resourceController := controllers.NewResourceController(bootstrap.Logger, dataProvider)

	// Middlewares
	appMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, authUsecase, internalConfig)

	routers.SetupRoutes(bootstrap.Router, internalConfig, appMiddlewares, authController, userController, resourceController)
}
