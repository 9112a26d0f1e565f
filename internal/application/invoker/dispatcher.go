package invoker

import (
	"context"

	"github.com/pwms/backend/internal/domain/logistics"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Dispatcher routes a create request for an entity kind to its operation
type Dispatcher struct {
	ops    map[logistics.Kind]Operation[int64]
	logger *zap.Logger
}

// NewDispatcher builds the create operations of every kind on top of store
func NewDispatcher(store logistics.EntityStore, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		ops:    CreateOperations(store),
		logger: logger,
	}
}

// CreateOperations returns the create operation table bound to store
func CreateOperations(store logistics.EntityStore) map[logistics.Kind]Operation[int64] {
	return map[logistics.Kind]Operation[int64]{
		logistics.KindPort: {
			Name: "insert_port",
			Params: []Param{
				Required("name", TypeString),
				Required("latitude", TypeFloat),
				Required("longitude", TypeFloat),
				Optional("country", TypeString),
				Optional("capacity", TypeInteger),
			},
			Fn: func(ctx context.Context, a Args) (int64, error) {
				return store.CreatePort(ctx, logistics.NewPort{
					Name:      a.String("name"),
					Latitude:  a.Float("latitude"),
					Longitude: a.Float("longitude"),
					Country:   a.OptString("country"),
					Capacity:  a.OptInt("capacity"),
				})
			},
		},
		logistics.KindWarehouse: {
			Name: "insert_warehouse",
			Params: []Param{
				Required("name", TypeString),
				Required("latitude", TypeFloat),
				Required("longitude", TypeFloat),
				Optional("capacity", TypeInteger),
				Optional("port_id", TypeInteger),
			},
			Fn: func(ctx context.Context, a Args) (int64, error) {
				return store.CreateWarehouse(ctx, logistics.NewWarehouse{
					Name:      a.String("name"),
					Latitude:  a.Float("latitude"),
					Longitude: a.Float("longitude"),
					Capacity:  a.OptInt("capacity"),
					PortID:    a.OptInt("port_id"),
				})
			},
		},
		logistics.KindItem: {
			Name: "insert_item",
			Params: []Param{
				Required("name", TypeString),
				Optional("category", TypeString),
				Required("unit_price", TypeFloat),
			},
			Fn: func(ctx context.Context, a Args) (int64, error) {
				return store.CreateItem(ctx, logistics.NewItem{
					Name:      a.String("name"),
					Category:  a.OptString("category"),
					UnitPrice: decimal.NewFromFloat(a.Float("unit_price")),
				})
			},
		},
		logistics.KindInventoryEntry: {
			Name: "insert_inventory",
			Params: []Param{
				Required("warehouse_id", TypeInteger),
				Required("item_id", TypeInteger),
				Required("quantity", TypeInteger),
			},
			Fn: func(ctx context.Context, a Args) (int64, error) {
				return store.CreateInventoryEntry(ctx, logistics.NewInventoryEntry{
					WarehouseID: a.Int("warehouse_id"),
					ItemID:      a.Int("item_id"),
					Quantity:    a.Int("quantity"),
				})
			},
		},
		logistics.KindShipping: {
			Name: "insert_shipping",
			Params: []Param{
				Required("from_port", TypeInteger),
				Required("into_port", TypeInteger),
				Required("inventory_id", TypeInteger),
				Required("arrived_at_port", TypeBoolean),
				Required("loaded_to_truck", TypeBoolean),
			},
			Fn: func(ctx context.Context, a Args) (int64, error) {
				return store.CreateShipping(ctx, logistics.NewShipping{
					FromPort:      a.Int("from_port"),
					IntoPort:      a.Int("into_port"),
					InventoryID:   a.Int("inventory_id"),
					ArrivedAtPort: a.Bool("arrived_at_port"),
					LoadedToTruck: a.Bool("loaded_to_truck"),
				})
			},
		},
	}
}

// Register replaces or adds the create operation of a kind
func (d *Dispatcher) Register(kind logistics.Kind, op Operation[int64]) {
	d.ops[kind] = op
}

// Create coerces fields against the kind's create operation and runs it,
// returning the identity of the new row.
func (d *Dispatcher) Create(ctx context.Context, kind logistics.Kind, fields map[string]string) (int64, error) {
	op, ok := d.ops[kind]
	if !ok {
		d.logger.Warn("no create operation registered", zap.Stringer("kind", kind))
		return 0, unsupported(kind)
	}

	d.logger.Debug("dispatching create",
		zap.Stringer("kind", kind),
		zap.String("operation", op.Name),
		zap.Any("fields", fields),
	)

	id, err := Invoke(ctx, op, fields)
	if err != nil {
		d.logger.Info("create rejected",
			zap.Stringer("kind", kind),
			zap.String("operation", op.Name),
			zap.Error(err),
		)
		return 0, err
	}

	d.logger.Info("entity created",
		zap.Stringer("kind", kind),
		zap.Int64("id", id),
	)
	return id, nil
}

// CreateByName resolves a kind by name and dispatches to Create
func (d *Dispatcher) CreateByName(ctx context.Context, name string, fields map[string]string) (int64, error) {
	kind, ok := logistics.ParseKind(name)
	if !ok {
		return 0, &UnsupportedOperationError{Kind: name}
	}
	return d.Create(ctx, kind, fields)
}

// Signature returns the declared parameters of the kind's create operation
func (d *Dispatcher) Signature(kind logistics.Kind) ([]Param, error) {
	op, ok := d.ops[kind]
	if !ok {
		return nil, unsupported(kind)
	}
	params := make([]Param, len(op.Params))
	copy(params, op.Params)
	return params, nil
}
