package handler

import (
	"encoding/json"
	"net/http"

	"code_tutor/internal/api/middleware"
	"code_tutor/internal/app/service"
	"code_tutor/internal/common"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	userService *service.UserService
	validator   *validator.Validate
}

func NewUserHandler(us *service.UserService) *UserHandler {
	return &UserHandler{userService: us, validator: validator.New()}
}

// RegisterRoutes mounts the /users routes.
func (h *UserHandler) RegisterRoutes(r chi.Router) {
	r.Post("/signup", h.signup)
	r.Post("/login", h.Login)
	r.With(middleware.Authenticator).Get("/me", h.me)
}

func (h *UserHandler) signup(w http.ResponseWriter, r *http.Request) {
	var req service.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userService.SignUp(r.Context(), req); err != nil {
		h.respondWithServiceError(w, err, "Sign-up failed")
		return
	}
	common.RespondWithJSON(w, http.StatusCreated, common.MessageResponse{Message: "User registered successfully"})
}

// Login is also mounted at /api/login for the standalone client.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	if err := h.validator.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.userService.Login(r.Context(), req)
	if err != nil {
		h.respondWithServiceError(w, err, "Login failed")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *UserHandler) me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	user, err := h.userService.Profile(r.Context(), userID)
	if err != nil {
		h.respondWithServiceError(w, err, "Profile lookup failed")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, user)
}

func (h *UserHandler) respondWithServiceError(w http.ResponseWriter, err error, msg string) {
	status := common.HTTPStatusFromError(err)
	if status == http.StatusInternalServerError {
		logrus.WithError(err).Error(msg)
	}
	common.RespondWithError(w, status, common.PublicMessage(err))
}
