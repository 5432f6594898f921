package schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"glambook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/artists/:artistId/slots", h.GetSlots)
}

func (h *Handler) GetSlots(c *gin.Context) {
	artistID, err := strconv.ParseInt(c.Param("artistId"), 10, 64)
	if err != nil || artistID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid artist id")
		return
	}

	req := SlotsRequest{
		ArtistID: artistID,
		Date:     c.Query("date"),
		Timezone: c.Query("timezone"),
	}

	if raw := c.Query("service_id"); raw != "" {
		serviceID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || serviceID <= 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid service id")
			return
		}
		req.ServiceID = &serviceID
	}

	res, err := h.service.GenerateSlots(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrValidation):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrServiceNotFound):
			response.Error(c, http.StatusNotFound, "SERVICE_NOT_FOUND", "Service not found for this artist")
		case errors.Is(err, ErrStorage):
			// Retryable: the caller must not read this as "no availability".
			response.Error(c, http.StatusServiceUnavailable, "STORAGE_ERROR", "Temporary storage error, please retry")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to compute slots")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}
