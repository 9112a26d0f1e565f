package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/pwms/backend/internal/domain/logistics"
)

// GeoHandler serves the map: markers, recentring and shipping paths
type GeoHandler struct {
	BaseHandler
	store logistics.EntityStore
}

// NewGeoHandler creates a new GeoHandler
func NewGeoHandler(store logistics.EntityStore) *GeoHandler {
	return &GeoHandler{store: store}
}

// Markers godoc
// @Summary      List map markers
// @Description  Every port followed by every warehouse
// @Tags         map
// @Produce      json
// @Router       /markers [get]
func (h *GeoHandler) Markers(c *gin.Context) {
	markers, err := h.store.Markers(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, markers)
}

// GetPort godoc
// @Summary      Get a port
// @Tags         map
// @Produce      json
// @Param        id  path  int  true  "Port ID"
// @Router       /ports/{id} [get]
func (h *GeoHandler) GetPort(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	port, err := h.store.GetPort(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, port)
}

// GetWarehouse godoc
// @Summary      Get a warehouse
// @Tags         map
// @Produce      json
// @Param        id  path  int  true  "Warehouse ID"
// @Router       /warehouses/{id} [get]
func (h *GeoHandler) GetWarehouse(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	w, err := h.store.GetWarehouse(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, w)
}

// ShippingRoute godoc
// @Summary      Get the route of a shipping
// @Tags         map
// @Produce      json
// @Param        id  path  int  true  "Shipping ID"
// @Router       /shippings/{id}/route [get]
func (h *GeoHandler) ShippingRoute(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	route, err := h.store.ShippingRoute(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, route)
}
