package controllers

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"meetmatch/internal/delivery/http/helpers"
	"meetmatch/internal/delivery/http/middleware"
	"meetmatch/internal/domain"
)

// CreateEventRequest is the request body for POST /events. The creator is
// the acting user; id and participants are server-generated.
type CreateEventRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Location    string  `json:"location"`
	Date        string  `json:"date"`
	Time        string  `json:"time"`
	Image       *string `json:"image"`
}

// Validate implements Validator. Returns error messages for required and enum rules.
func (c CreateEventRequest) Validate() []string {
	var errs []string
	if c.Title == "" {
		errs = append(errs, "title is required")
	}
	if c.Description == "" {
		errs = append(errs, "description is required")
	}
	if !domain.Category(c.Category).Valid() {
		errs = append(errs, "category must be one of: event, dating, friendship")
	}
	if c.Location == "" {
		errs = append(errs, "location is required")
	}
	if c.Date == "" {
		errs = append(errs, "date is required")
	}
	if c.Time == "" {
		errs = append(errs, "time is required")
	}
	return errs
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List all events
// @Description Returns every event in insertion order.
// @Tags events
// @Produce json
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// ListEventsByCategory godoc
// @Summary List events by category
// @Description Returns events in the given category. "all" is an alias for the unfiltered list; an unknown category yields an empty list.
// @Tags events
// @Produce json
// @Param category path string true "Category (event, dating, friendship, or all)"
// @Success 200 {array} domain.Event
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events/category/{category} [get]
func (c *EventController) ListEventsByCategory(w http.ResponseWriter, r *http.Request) {
	category := mux.Vars(r)["category"]
	events, err := c.Service.ListEventsByCategory(r.Context(), category)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch events by category")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Create a new event
// @Description Creates an event with an empty participant list. The acting user becomes the creator.
// @Tags events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event data"
// @Success 201 {object} domain.Event
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 500 {object} helpers.ErrorResponse
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req, "Invalid event data") {
		return
	}
	actorID, ok := middleware.ActorIDFromContext(r.Context())
	if !ok {
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}
	event := domain.NewEvent(req.Title, req.Description, domain.Category(req.Category), req.Location, req.Date, req.Time, req.Image, actorID)
	if err := c.Service.CreateEvent(r.Context(), event); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}
	helpers.WriteJSON(w, http.StatusCreated, event)
}
