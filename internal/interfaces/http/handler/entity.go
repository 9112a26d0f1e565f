package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pwms/backend/internal/application/invoker"
	"github.com/pwms/backend/internal/domain/logistics"
	"github.com/pwms/backend/internal/interfaces/http/dto"
)

// EntityHandler serves the generic per-kind endpoints: forms, tables,
// create, delete and the relation and info views.
type EntityHandler struct {
	BaseHandler
	store      logistics.EntityStore
	dispatcher *invoker.Dispatcher
}

// NewEntityHandler creates a new EntityHandler
func NewEntityHandler(store logistics.EntityStore, dispatcher *invoker.Dispatcher) *EntityHandler {
	return &EntityHandler{
		store:      store,
		dispatcher: dispatcher,
	}
}

// ListKinds godoc
// @Summary      List entity kinds
// @Description  Returns every kind with its columns and declared create parameters
// @Tags         entities
// @Produce      json
// @Router       /kinds [get]
func (h *EntityHandler) ListKinds(c *gin.Context) {
	kinds := make([]dto.KindResponse, 0, len(logistics.Kinds()))
	for _, kind := range logistics.Kinds() {
		d := kind.Descriptor()
		resp := dto.KindResponse{
			Name:         d.Name,
			Table:        d.Table,
			IDColumn:     d.IDColumn,
			Columns:      d.Columns,
			InputColumns: d.InputColumns(),
			Params:       []dto.ParamResponse{},
		}
		if params, err := h.dispatcher.Signature(kind); err == nil {
			resp.Params = toParamResponses(params)
		}
		kinds = append(kinds, resp)
	}
	h.Success(c, kinds)
}

// GetForm godoc
// @Summary      Get create form
// @Description  Returns one field per declared parameter. latitude and longitude
// @Description  pre-fill the matching fields, as after a map click.
// @Tags         entities
// @Produce      json
// @Param        kind       path   string  true   "Entity kind"
// @Param        latitude   query  number  false  "Pre-filled latitude"
// @Param        longitude  query  number  false  "Pre-filled longitude"
// @Router       /kinds/{kind}/form [get]
func (h *EntityHandler) GetForm(c *gin.Context) {
	kind, ok := h.parseKind(c)
	if !ok {
		return
	}
	params, err := h.dispatcher.Signature(kind)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	prefill := map[string]string{}
	for _, name := range []string{"latitude", "longitude"} {
		v, present := c.GetQuery(name)
		if !present {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			h.BadRequest(c, "invalid "+name+": "+v)
			return
		}
		prefill[name] = v
	}

	fields := make([]dto.FormField, 0, len(params))
	for _, p := range toParamResponses(params) {
		fields = append(fields, dto.FormField{ParamResponse: p, Value: prefill[p.Name]})
	}
	h.Success(c, dto.FormResponse{Kind: kind.String(), Fields: fields})
}

// List godoc
// @Summary      List rows of a kind
// @Description  Rows are ordered by identity. An empty table returns one all-null row.
// @Tags         entities
// @Produce      json
// @Param        kind  path  string  true  "Entity kind"
// @Router       /entities/{kind} [get]
func (h *EntityHandler) List(c *gin.Context) {
	kind, ok := h.parseKind(c)
	if !ok {
		return
	}
	records, err := h.store.ListAll(c.Request.Context(), kind)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, r.Values)
	}
	h.Success(c, dto.TableResponse{
		Kind:    kind.String(),
		Columns: kind.Descriptor().Columns,
		Rows:    rows,
		Empty:   logistics.IsPlaceholderList(records),
	})
}

// Create godoc
// @Summary      Create a row
// @Description  Accepts a flat string map keyed by parameter name
// @Tags         entities
// @Accept       json
// @Produce      json
// @Param        kind  path  string             true  "Entity kind"
// @Param        body  body  dto.CreateRequest  true  "Field values"
// @Router       /entities/{kind} [post]
func (h *EntityHandler) Create(c *gin.Context) {
	kind, ok := h.parseKind(c)
	if !ok {
		return
	}
	var req dto.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Error(c, dto.GetHTTPStatus(dto.ErrCodeInvalidJSON), dto.ErrCodeInvalidJSON, err.Error())
		return
	}

	id, err := h.dispatcher.Create(c.Request.Context(), kind, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, dto.CreatedResponse{ID: id})
}

// Delete godoc
// @Summary      Delete a row
// @Description  Deleting a missing id succeeds. Referenced rows are rejected with 409.
// @Tags         entities
// @Param        kind  path  string  true  "Entity kind"
// @Param        id    path  int     true  "Identity"
// @Router       /entities/{kind}/{id} [delete]
func (h *EntityHandler) Delete(c *gin.Context) {
	kind, ok := h.parseKind(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.store.DeleteByID(c.Request.Context(), kind, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Info godoc
// @Summary      Get the info view of a row
// @Tags         entities
// @Produce      json
// @Param        kind  path  string  true  "Entity kind"
// @Param        id    path  int     true  "Identity"
// @Router       /entities/{kind}/{id}/info [get]
func (h *EntityHandler) Info(c *gin.Context) {
	kind, ok := h.parseKind(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var (
		info any
		err  error
	)
	switch kind {
	case logistics.KindPort:
		info, err = h.store.PortInfo(ctx, id)
	case logistics.KindWarehouse:
		info, err = h.store.WarehouseInfo(ctx, id)
	case logistics.KindItem:
		info, err = h.store.ItemInfo(ctx, id)
	case logistics.KindInventoryEntry:
		info, err = h.store.InventoryInfo(ctx, id)
	case logistics.KindShipping:
		info, err = h.store.ShippingInfo(ctx, id)
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, info)
}

// Relations godoc
// @Summary      Get the relation view of a row
// @Description  Shippings have no relation view.
// @Tags         entities
// @Produce      json
// @Param        kind  path  string  true  "Entity kind"
// @Param        id    path  int     true  "Identity"
// @Router       /entities/{kind}/{id}/relations [get]
func (h *EntityHandler) Relations(c *gin.Context) {
	kind, ok := h.parseKind(c)
	if !ok {
		return
	}
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	var (
		rel any
		err error
	)
	switch kind {
	case logistics.KindPort:
		rel, err = h.store.PortRelations(ctx, id)
	case logistics.KindWarehouse:
		rel, err = h.store.WarehouseRelations(ctx, id)
	case logistics.KindItem:
		rel, err = h.store.ItemRelations(ctx, id)
	case logistics.KindInventoryEntry:
		rel, err = h.store.InventoryRelations(ctx, id)
	default:
		h.ErrorWithCode(c, dto.ErrCodeUnsupportedOperation, "no relation view for "+kind.String())
		return
	}
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rel)
}

func toParamResponses(params []invoker.Param) []dto.ParamResponse {
	out := make([]dto.ParamResponse, 0, len(params))
	for _, p := range params {
		out = append(out, dto.ParamResponse{Name: p.Name, Type: string(p.Type), Required: p.Required})
	}
	return out
}
