package routers

import (
	"fmt"

	"agenda-care-service/internal/app/delivery/http/controllers"
	"agenda-care-service/internal/app/delivery/http/middlewares"
	"agenda-care-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachResourceRoutes(router chi.Router, middlewares *middlewares.Middlewares, resourceController *controllers.ResourceController) {
	typePattern := fmt.Sprintf("/{%s}", constvars.URLParamResourceType)
	idPattern := fmt.Sprintf("/{%s}/{%s}", constvars.URLParamResourceType, constvars.URLParamResourceID)

	router.Use(middlewares.Authenticate)

	router.Get(typePattern, resourceController.GetList)
	router.Post(typePattern, resourceController.Create)
	router.Delete(typePattern, resourceController.DeleteMany)

	router.Get(idPattern, resourceController.GetOne)
	router.Put(idPattern, resourceController.Update)
	router.Delete(idPattern, resourceController.Delete)
}
