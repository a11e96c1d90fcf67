package controllers

import (
	"errors"
	"net/http"

	"agenda-care-service/internal/app/contracts"
	"agenda-care-service/internal/pkg/constvars"
	"agenda-care-service/internal/pkg/dto/requests"
	"agenda-care-service/internal/pkg/exceptions"
	"agenda-care-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type UserController struct {
	Log         *zap.Logger
	UserUsecase contracts.UserUsecase
	AuthUsecase contracts.AuthUsecase
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase, authUsecase contracts.AuthUsecase) *UserController {
	return &UserController{
		Log:         logger,
		UserUsecase: userUsecase,
		AuthUsecase: authUsecase,
	}
}

func (ctrl *UserController) Register(w http.ResponseWriter, r *http.Request) {
	request := new(requests.RegisterUser)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = ctrl.UserUsecase.Register(r.Context(), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ResponseSuccessRegister, nil)
}

// Profile resolves the signed-in user's Patient through the stored token
// claims and returns the flattened card.
func (ctrl *UserController) Profile(w http.ResponseWriter, r *http.Request) {
	token, err := ctrl.AuthUsecase.AccessToken(r.Context(), constvars.AuthContextUser)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	claims, err := ctrl.AuthUsecase.ParseClaims(token)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if claims.FhirResourceID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenDecode(errors.New("token carries no resource id")))
		return
	}

	profile, err := ctrl.UserUsecase.GetProfile(r.Context(), claims.FhirResourceID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResponseSuccessProfile, profile)
}
