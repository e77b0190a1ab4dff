package api

import (
	"errors"
	"net/http"

	"rentacar-api/internal/domain/reservation"
	reqdto "rentacar-api/internal/handler/dto/request"
	resdto "rentacar-api/internal/handler/dto/response"
	"rentacar-api/internal/usecase/commands"
	"rentacar-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CarHandler struct {
	carCommands commands.CarCommands
	carQueries  queries.CarQueries
}

func NewCarHandler(carCommands commands.CarCommands, carQueries queries.CarQueries) *CarHandler {
	return &CarHandler{
		carCommands: carCommands,
		carQueries:  carQueries,
	}
}

// @Summary List available cars
// @Description List cars free of reservations for the given date range
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param startDate query string true "Window start (YYYY-MM-DD)"
// @Param endDate query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} resdto.ListEnvelope[resdto.CarResponse]
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /cars [get]
func (h *CarHandler) ListAvailable(c *gin.Context) {
	window, ok := reqdto.ParseAvailabilityWindow(c.Query("startDate"), c.Query("endDate"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "startDate and endDate are required in YYYY-MM-DD format",
		})
		return
	}

	period, err := reservation.NewPeriod(window.StartDate, window.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "startDate must not be after endDate",
		})
		return
	}

	opts := reqdto.ParseListOptions(c.Request.URL.Query())

	views, details, err := h.carQueries.ListAvailable(c.Request.Context(), period, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.NewListEnvelope(resdto.FromCarViews(views), details))
}

// @Summary Get car
// @Description Get car by ID
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 200 {object} resdto.CarResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cars/{id} [get]
func (h *CarHandler) GetCar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID format",
		})
		return
	}

	view, err := h.carQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromCarView(view))
}

// @Summary Create car
// @Description Register a new car (staff or admin only)
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CarRequest true "Car attributes"
// @Success 201 {object} resdto.CarResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cars [post]
func (h *CarHandler) CreateCar(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.carCommands.Create(c.Request.Context(), req.ToParams(), actor)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicatePlateNumber):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Plate number already registered",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid car attributes",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCarView(view))
}

// @Summary Update car
// @Description Update car attributes (staff or admin only)
// @Tags cars
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Param request body reqdto.CarRequest true "Car attributes"
// @Success 202 {object} resdto.CarResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /cars/{id} [put]
func (h *CarHandler) UpdateCar(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID format",
		})
		return
	}

	var req reqdto.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.carCommands.Update(c.Request.Context(), id, req.ToParams(), actor)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
		case errors.Is(err, commands.ErrDuplicatePlateNumber):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Plate number already registered",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid car attributes",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusAccepted, resdto.FromCarView(view))
}

// @Summary Delete car
// @Description Remove a car (staff or admin only)
// @Tags cars
// @Produce json
// @Security BearerAuth
// @Param id path string true "Car ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cars/{id} [delete]
func (h *CarHandler) DeleteCar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid car ID format",
		})
		return
	}

	if err := h.carCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, queries.ErrCarNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Car not found",
			})
		case errors.Is(err, commands.ErrCarHasReservations):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Car has reservations",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
