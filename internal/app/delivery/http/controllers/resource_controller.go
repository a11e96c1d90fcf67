package controllers

import (
	"net/http"
	"strings"

	"agenda-care-service/internal/app/contracts"
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/exceptions"
	"agenda-care-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// ResourceController serves the admin data provider. One set of handlers
// covers every registered resource type, the type itself travels as an URL
// parameter.
type ResourceController struct {
	Log          *zap.Logger
	DataProvider contracts.DataProvider
}

func NewResourceController(logger *zap.Logger, provider contracts.DataProvider) *ResourceController {
	return &ResourceController{
		Log:          logger,
		DataProvider: provider,
	}
}

func (ctrl *ResourceController) GetList(w http.ResponseWriter, r *http.Request) {
	resourceType := chi.URLParam(r, constvars.URLParamResourceType)

	if ids := splitIDs(r.URL.Query().Get(constvars.QueryParamIDs)); len(ids) > 0 {
		data, err := ctrl.DataProvider.GetMany(r.Context(), resourceType, ids)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
		utils.BuildListResponse(w, constvars.StatusOK, constvars.ResponseSuccessList, data, len(ids))
		return
	}

	params := contracts.ListParams{Filters: make(map[string]string)}
	for key, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		params.Filters[key] = values[0]
	}

	data, total, err := ctrl.DataProvider.GetList(r.Context(), resourceType, params)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildListResponse(w, constvars.StatusOK, constvars.ResponseSuccessList, data, total)
}

func (ctrl *ResourceController) GetOne(w http.ResponseWriter, r *http.Request) {
	resourceType := chi.URLParam(r, constvars.URLParamResourceType)
	resourceID := chi.URLParam(r, constvars.URLParamResourceID)

	data, err := ctrl.DataProvider.GetOne(r.Context(), resourceType, resourceID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessGet, data)
}

func (ctrl *ResourceController) Create(w http.ResponseWriter, r *http.Request) {
	resourceType := chi.URLParam(r, constvars.URLParamResourceType)

	payload := make(map[string]any)
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	data, err := ctrl.DataProvider.Create(r.Context(), resourceType, payload)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ResponseSuccessCreate, data)
}

func (ctrl *ResourceController) Update(w http.ResponseWriter, r *http.Request) {
	resourceType := chi.URLParam(r, constvars.URLParamResourceType)
	resourceID := chi.URLParam(r, constvars.URLParamResourceID)

	payload := make(map[string]any)
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	data, err := ctrl.DataProvider.Update(r.Context(), resourceType, resourceID, payload)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessUpdate, data)
}

func (ctrl *ResourceController) Delete(w http.ResponseWriter, r *http.Request) {
	resourceType := chi.URLParam(r, constvars.URLParamResourceType)
	resourceID := chi.URLParam(r, constvars.URLParamResourceID)

	err := ctrl.DataProvider.Delete(r.Context(), resourceType, resourceID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessDelete, map[string]string{"id": resourceID})
}

// DeleteMany removes the requested ids in order and reports the ones that
// made it through, even when a later delete fails.
func (ctrl *ResourceController) DeleteMany(w http.ResponseWriter, r *http.Request) {
	resourceType := chi.URLParam(r, constvars.URLParamResourceType)

	ids := splitIDs(r.URL.Query().Get(constvars.QueryParamIDs))
	if len(ids) == 0 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingQueryParameter(nil))
		return
	}

	deleted, err := ctrl.DataProvider.DeleteMany(r.Context(), resourceType, ids)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessDelete, deleted)
}

func splitIDs(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			ids = append(ids, trimmed)
		}
	}
	return ids
}
