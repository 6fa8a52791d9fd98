package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"meetmatch/internal/delivery/http/helpers"
	"meetmatch/internal/delivery/http/middleware"
	"meetmatch/internal/domain"
)

type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
}

func NewUserController(logger *slog.Logger, svc domain.UserService) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
	}
}

// GetProfile godoc
// @Summary Get the acting user's profile
// @Tags users
// @Produce json
// @Success 200 {object} domain.User
// @Failure 404 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /user/profile [get]
func (c *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.ActorIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch user profile")
		return
	}
	user, err := c.Service.GetByID(r.Context(), actorID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "User not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch user profile")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, user)
}
