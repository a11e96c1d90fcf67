package controllers

import (
	"net/http"

	"agenda-care-service/internal/app/contracts"
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/dto/requests"
	"agenda-care-service/internal/pkg/exceptions"
	"agenda-care-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	request := new(requests.Login)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	result, err := ctrl.AuthUsecase.Login(r.Context(), constvars.AuthContextUser, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessLogin, result)
}

func (ctrl *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	ok, err := ctrl.AuthUsecase.TryRefreshToken(r.Context(), constvars.AuthContextUser)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRefreshFailed(nil))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessRefresh, nil)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	err := ctrl.AuthUsecase.Logout(r.Context(), constvars.AuthContextUser)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessLogout, nil)
}
