package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	calendarUC "github.com/hrahman/profilio/internal/application/usecase/calendar"
	"github.com/hrahman/profilio/pkg/apperror"
)

type CalendarHandler struct {
	calendarUseCase *calendarUC.CalendarUseCase
}

func NewCalendarHandler(uc *calendarUC.CalendarUseCase) *CalendarHandler {
	return &CalendarHandler{calendarUseCase: uc}
}

func (h *CalendarHandler) CreateEvent(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	startTime, endTime, err := parseEventTimes(req.StartTime, req.EndTime)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid event time format, expected YYYY-MM-DD HH:MM:SS", err))
		return
	}

	event, err := h.calendarUseCase.CreateEvent(c.Request.Context(), calendarUC.CreateEventInput{
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   startTime,
		EndTime:     endTime,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ToEventDTO(event))
}

func (h *CalendarHandler) ListEvents(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	var day time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
		if err != nil {
			c.Error(apperror.NewInvalidInput("invalid date format, expected YYYY-MM-DD", err))
			return
		}
		day = parsed
	}

	events, err := h.calendarUseCase.ListEvents(c.Request.Context(), ownerID, day)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToEventDTOs(events))
}

func (h *CalendarHandler) UpdateEvent(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid event ID", err))
		return
	}

	var req EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid request data", err))
		return
	}

	startTime, endTime, err := parseEventTimes(req.StartTime, req.EndTime)
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid event time format, expected YYYY-MM-DD HH:MM:SS", err))
		return
	}

	event, err := h.calendarUseCase.UpdateEvent(c.Request.Context(), calendarUC.UpdateEventInput{
		EventID:     eventID,
		OwnerID:     ownerID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   startTime,
		EndTime:     endTime,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToEventDTO(event))
}

func (h *CalendarHandler) DeleteEvent(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid event ID", err))
		return
	}

	if err := h.calendarUseCase.DeleteEvent(c.Request.Context(), eventID, ownerID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

func parseEventTimes(start, end string) (time.Time, time.Time, error) {
	startTime, err := time.ParseInLocation(apiTimeLayout, start, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	endTime, err := time.ParseInLocation(apiTimeLayout, end, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return startTime, endTime, nil
}
