package http

import (
	"bytes"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/services"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	rentalService ports.RentalService
	mu            *sync.Mutex
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

type CatalogInfo struct {
	Index int    `json:"index"`
	Kind  string `json:"kind"`
	Label string `json:"label"`
	Size  int    `json:"size"`
}

type ListCatalogsResponse struct {
	Catalogs []CatalogInfo `json:"catalogs"`
	Count    int           `json:"count"`
	Listing  string        `json:"listing"`
}

type ListBikesResponse struct {
	Catalog string         `json:"catalog"`
	Bikes   []BikeResponse `json:"bikes"`
	Count   int            `json:"count"`
	Listing string         `json:"listing"`
}

func NewCatalogHandler(
	rentalService ports.RentalService,
	mu *sync.Mutex,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *CatalogHandler {
	return &CatalogHandler{
		rentalService: rentalService,
		mu:            mu,
		logger:        logger,
		metrics:       metrics,
	}
}

// @Summary List catalogs
// @Description Catalogs of the inventory in order
// @Tags catalogs
// @Security BearerAuth
// @Produce json
// @Success 200 {object} ListCatalogsResponse "Catalogs"
// @Failure 401 {object} errorResponse "Unauthorized"
// @Router /catalogs [get]
func (h *CatalogHandler) ListCatalogs(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	h.mu.Lock()
	inventory := h.rentalService.Inventory()
	infos := []CatalogInfo{}
	index := 0
	for catalog := range inventory.Iterate() {
		infos = append(infos, CatalogInfo{
			Index: index,
			Kind:  string(catalog.Kind),
			Label: catalog.String(),
			Size:  catalog.Size(),
		})
		index++
	}
	var listing bytes.Buffer
	err := inventory.List(&listing, inventory.Iterate())
	h.mu.Unlock()

	if err != nil {
		h.logger.Error("Failed to render catalog listing", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusInternalServerError, "Failed to list catalogs")
		return
	}

	c.JSON(http.StatusOK, ListCatalogsResponse{
		Catalogs: infos,
		Count:    len(infos),
		Listing:  listing.String(),
	})
}

// @Summary List bikes of a catalog
// @Description Bikes of the catalog at the given inventory index
// @Tags catalogs
// @Security BearerAuth
// @Produce json
// @Param index path int true "Catalog index" example:"0"
// @Success 200 {object} ListBikesResponse "Bikes"
// @Failure 400 {object} errorResponse "Invalid index"
// @Failure 404 {object} errorResponse "Catalog not found"
// @Router /catalogs/{index}/bikes [get]
func (h *CatalogHandler) ListBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	index, ok := parseIndex(c)
	if !ok {
		return
	}

	h.mu.Lock()
	catalog, err := h.rentalService.Inventory().Get(index)
	var resp ListBikesResponse
	if err == nil {
		resp = ListBikesResponse{Catalog: catalog.String(), Bikes: []BikeResponse{}}
		seq := catalog.Iterate()
		for bike := range seq {
			resp.Bikes = append(resp.Bikes, toBikeResponse(bike))
		}
		var listing bytes.Buffer
		err = catalog.List(&listing, seq)
		resp.Listing = listing.String()
		resp.Count = len(resp.Bikes)
	}
	h.mu.Unlock()

	if err != nil {
		newErrorResponse(c, statusFor(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Remove a catalog
// @Description Removes the catalog at the given inventory index. Its bikes stay indexed.
// @Tags catalogs
// @Security BearerAuth
// @Produce json
// @Param index path int true "Catalog index" example:"0"
// @Success 200 {object} successResponse "Catalog removed"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Catalog not found"
// @Router /catalogs/{index} [delete]
func (h *CatalogHandler) RemoveCatalog(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	index, ok := parseIndex(c)
	if !ok {
		return
	}

	h.mu.Lock()
	removed, err := h.rentalService.Inventory().Remove(index)
	h.mu.Unlock()

	if err != nil {
		newErrorResponse(c, statusFor(err), err.Error())
		return
	}

	h.logger.Info("Catalog removed", map[string]interface{}{
		"catalog": removed.String(),
		"index":   index,
	})

	c.JSON(http.StatusOK, successResponse{Message: "Catalog removed successfully"})
}

// @Summary Remove a bike from a catalog
// @Description Drops catalog membership only; the bike can still be looked up and rented.
// @Tags catalogs
// @Security BearerAuth
// @Produce json
// @Param index path int true "Catalog index" example:"0"
// @Param id path string true "Bike ID" example:"123abc"
// @Success 200 {object} successResponse "Bike removed from catalog"
// @Failure 403 {object} errorResponse "Access denied"
// @Failure 404 {object} errorResponse "Catalog or bike not found"
// @Router /catalogs/{index}/bikes/{id} [delete]
func (h *CatalogHandler) RemoveBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	index, ok := parseIndex(c)
	if !ok {
		return
	}
	id, err := services.SanitizeID(c.Param("id"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	h.mu.Lock()
	err = h.removeBike(index, id)
	h.mu.Unlock()

	if err != nil {
		newErrorResponse(c, statusFor(err), err.Error())
		return
	}

	h.logger.Info("Bike removed from catalog", map[string]interface{}{
		"bike_id": id,
		"index":   index,
	})

	c.JSON(http.StatusOK, successResponse{Message: "Bike removed from catalog"})
}

func (h *CatalogHandler) removeBike(index int, id string) error {
	catalog, err := h.rentalService.Inventory().Get(index)
	if err != nil {
		return err
	}
	bike, ok := h.rentalService.Lookup(id)
	if !ok {
		return domain.ErrBikeNotFound
	}
	return catalog.Remove(bike)
}

func parseIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid catalog index")
		return 0, false
	}
	return index, true
}
