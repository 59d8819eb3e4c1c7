package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/services"

	"github.com/gin-gonic/gin"
)

type RentalHandler struct {
	rentalService ports.RentalService
	catalogs      map[domain.CatalogKind]*domain.Catalog
	auditReaders  []ports.AuditReader
	mu            *sync.Mutex
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

type CreateBikeRequest struct {
	ID        string `json:"id" binding:"required,max=64" example:"123abc"`
	Model     string `json:"model" binding:"required" example:"GT3"`
	Type      string `json:"type" binding:"required" example:"mountain"`
	Catalog   string `json:"catalog,omitempty" example:"mountain"`
	Available *bool  `json:"available,omitempty" example:"true"`
	Lights    bool   `json:"lights" example:"true"`
	Basket    bool   `json:"basket" example:"false"`
	GPS       bool   `json:"gps" example:"true"`
}

type RenterRequest struct {
	FirstName string `json:"first_name" example:"John"`
	LastName  string `json:"last_name" example:"Doe"`
}

type BikeResponse struct {
	ID        string `json:"id"`
	Model     string `json:"model"`
	Type      string `json:"type"`
	Available bool   `json:"available"`
	Lights    bool   `json:"lights"`
	Basket    bool   `json:"basket"`
	GPS       bool   `json:"gps"`
}

type CreateBikeResponse struct {
	Bike    BikeResponse `json:"bike"`
	Catalog string       `json:"catalog"`
}

type AuditTrailResponse struct {
	BikeID string   `json:"bike_id"`
	Lines  []string `json:"lines"`
	Count  int      `json:"count"`
}

// NewRentalHandler serves bike endpoints. mu serializes every call into the
// rental service and must be shared with the catalog handler.
func NewRentalHandler(
	rentalService ports.RentalService,
	catalogs map[domain.CatalogKind]*domain.Catalog,
	auditReaders []ports.AuditReader,
	mu *sync.Mutex,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *RentalHandler {
	return &RentalHandler{
		rentalService: rentalService,
		catalogs:      catalogs,
		auditReaders:  auditReaders,
		mu:            mu,
		logger:        logger,
		metrics:       metrics,
	}
}

func toBikeResponse(bike *domain.Bike) BikeResponse {
	return BikeResponse{
		ID:        bike.ID,
		Model:     bike.Model,
		Type:      string(bike.Type),
		Available: bike.IsAvailable(),
		Lights:    bike.Lights,
		Basket:    bike.Basket,
		GPS:       bike.GPS,
	}
}

// @Summary Create a bike
// @Description Builds a bike of the requested type and files it into a catalog
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateBikeRequest true "Bike data"
// @Success 201 {object} CreateBikeResponse "Bike created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 409 {object} errorResponse "Duplicate bike ID"
// @Router /bikes [post]
func (h *RentalHandler) CreateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CreateBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create bike", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	id, err := services.SanitizeID(req.ID)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	bikeType, err := domain.ParseBikeType(req.Type)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	kind := domain.CatalogKindFor(bikeType)
	if req.Catalog != "" {
		if kind, err = domain.ParseCatalogKind(req.Catalog); err != nil {
			newErrorResponse(c, http.StatusNotFound, err.Error())
			return
		}
	}
	catalog, ok := h.catalogs[kind]
	if !ok {
		newErrorResponse(c, http.StatusNotFound, "Catalog not found")
		return
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	builder, err := domain.NewBikeBuilder(id, req.Model, available)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	builder.WithLights(req.Lights).WithBasket(req.Basket).WithGPS(req.GPS)

	h.mu.Lock()
	bike, err := h.rentalService.Create(c.Request.Context(), builder, catalog, bikeType)
	var resp CreateBikeResponse
	if err == nil {
		resp = CreateBikeResponse{Bike: toBikeResponse(bike), Catalog: catalog.String()}
	}
	h.mu.Unlock()

	h.metrics.RecordRentalEvent("create", outcomeFor(err))
	if err != nil {
		h.logger.Error("Failed to create bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": id,
		})
		newErrorResponse(c, statusFor(err), err.Error())
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// @Summary Get a bike
// @Description Looks a bike up by its ID
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bike ID" example:"123abc"
// @Success 200 {object} BikeResponse "Bike found"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /bikes/{id} [get]
func (h *RentalHandler) GetBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, err := services.SanitizeID(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.mu.Lock()
	bike, ok := h.rentalService.Lookup(id)
	var resp BikeResponse
	if ok {
		resp = toBikeResponse(bike)
	}
	h.mu.Unlock()

	if !ok {
		newErrorResponse(c, http.StatusNotFound, "Bike not found")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Rent a bike
// @Description Rents an available bike. Names default to the token claims.
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Bike ID" example:"123abc"
// @Param request body RenterRequest false "Renter"
// @Success 200 {object} BikeResponse "Bike rented"
// @Failure 400 {object} errorResponse "Invalid renter"
// @Failure 404 {object} errorResponse "Bike not found"
// @Failure 409 {object} errorResponse "Bike already rented"
// @Router /bikes/{id}/rent [post]
func (h *RentalHandler) RentBike(c *gin.Context) {
	h.transition(c, "rent", h.rentalService.Rent)
}

// @Summary Return a bike
// @Description Returns a rented bike. Names default to the token claims.
// @Tags bikes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Bike ID" example:"123abc"
// @Param request body RenterRequest false "Renter"
// @Success 200 {object} BikeResponse "Bike returned"
// @Failure 400 {object} errorResponse "Invalid renter"
// @Failure 404 {object} errorResponse "Bike not found"
// @Failure 409 {object} errorResponse "Bike is not rented"
// @Router /bikes/{id}/return [post]
func (h *RentalHandler) ReturnBike(c *gin.Context) {
	h.transition(c, "return", h.rentalService.Return)
}

type transitionFunc func(ctx context.Context, id, firstName, lastName string) error

func (h *RentalHandler) transition(c *gin.Context, event string, apply transitionFunc) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, exists := getAuthPayload(c, authorizationPayloadKey)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req RenterRequest
	// Chunked bodies report ContentLength -1.
	if c.Request.ContentLength != 0 && c.Request.Body != http.NoBody {
		if err := c.ShouldBindJSON(&req); err != nil {
			newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
			return
		}
	}
	if req.FirstName == "" {
		req.FirstName = payload.FirstName
	}
	if req.LastName == "" {
		req.LastName = payload.LastName
	}

	firstName, err := services.SanitizeName(req.FirstName)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "first name: "+err.Error())
		return
	}
	lastName, err := services.SanitizeName(req.LastName)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "last name: "+err.Error())
		return
	}
	id, err := services.SanitizeID(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.mu.Lock()
	err = apply(c.Request.Context(), id, firstName, lastName)
	var resp BikeResponse
	if err == nil {
		if bike, ok := h.rentalService.Lookup(id); ok {
			resp = toBikeResponse(bike)
		}
	}
	h.mu.Unlock()

	h.metrics.RecordRentalEvent(event, outcomeFor(err))
	if err != nil {
		h.logger.Warn("Bike "+event+" failed", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": id,
			"user_id": payload.UserID.String(),
		})
		newErrorResponse(c, statusFor(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Bike audit trail
// @Description Lines recorded in the audit logs for one bike
// @Tags bikes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Bike ID" example:"123abc"
// @Success 200 {object} AuditTrailResponse "Audit lines"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 503 {object} errorResponse "Audit storage unavailable"
// @Router /bikes/{id}/audit [get]
func (h *RentalHandler) GetAuditTrail(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	id, err := services.SanitizeID(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	lines := []string{}
	for _, reader := range h.auditReaders {
		found, err := reader.Lines(c.Request.Context(), id)
		if err != nil {
			h.logger.Error("Failed to read audit trail", map[string]interface{}{
				"error":   err.Error(),
				"bike_id": id,
			})
			newErrorResponse(c, statusFor(err), "Audit storage unavailable")
			return
		}
		lines = append(lines, found...)
	}

	c.JSON(http.StatusOK, AuditTrailResponse{
		BikeID: id,
		Lines:  lines,
		Count:  len(lines),
	})
}
