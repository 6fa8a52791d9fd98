package controllers

import (
	"log/slog"
	"net/http"

	"meetmatch/internal/delivery/http/helpers"
	"meetmatch/internal/delivery/http/middleware"
	"meetmatch/internal/domain"
)

// CreateSwipeRequest is the request body for POST /swipes.
type CreateSwipeRequest struct {
	EventID int    `json:"eventId"`
	Action  string `json:"action"`
}

// Validate implements Validator.
func (c CreateSwipeRequest) Validate() []string {
	var errs []string
	if c.EventID <= 0 {
		errs = append(errs, "eventId is required")
	}
	if !domain.SwipeAction(c.Action).Valid() {
		errs = append(errs, "action must be one of: like, pass")
	}
	return errs
}

type SwipeController struct {
	Logger  *slog.Logger
	Service domain.SwipeService
}

func NewSwipeController(logger *slog.Logger, svc domain.SwipeService) *SwipeController {
	return &SwipeController{
		Logger:  logger,
		Service: svc,
	}
}

// CreateSwipe godoc
// @Summary Record a swipe
// @Description Appends a like/pass to the swipe log. A like also joins the acting user into the event and ensures the event's conversation exists. A like on a missing event fails after the swipe row is recorded.
// @Tags swipes
// @Accept json
// @Produce json
// @Param swipe body CreateSwipeRequest true "Swipe data"
// @Success 201 {object} domain.Swipe
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /swipes [post]
func (c *SwipeController) CreateSwipe(w http.ResponseWriter, r *http.Request) {
	var req CreateSwipeRequest
	if !helpers.DecodeAndValidate(w, r, &req, "Invalid swipe data") {
		return
	}
	actorID, ok := middleware.ActorIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to create swipe")
		return
	}
	swipe, err := c.Service.RecordSwipe(r.Context(), actorID, req.EventID, domain.SwipeAction(req.Action))
	if err != nil {
		// Includes "event not found" on a like: domain failures during the
		// join are not promoted to 4xx.
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to create swipe")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, swipe)
}

// ListUserSwipes godoc
// @Summary List the acting user's swipes
// @Description Returns every swipe row the acting user has recorded, in swipe order.
// @Tags swipes
// @Produce json
// @Success 200 {array} domain.Swipe
// @Failure 500 {object} helpers.ErrorResponse
// @Router /user/swipes [get]
func (c *SwipeController) ListUserSwipes(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.ActorIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch user swipes")
		return
	}
	swipes, err := c.Service.ListUserSwipes(r.Context(), actorID)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch user swipes")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, swipes)
}
