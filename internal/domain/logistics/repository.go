package logistics

import (
	"context"
)

// EntityStore is the persistence facade for all entity kinds.
// Create operations validate their arguments before touching storage and
// return the identity of the new row. Info queries return shared.ErrNotFound
// for an unknown id; relation queries return an empty slice.
type EntityStore interface {
	CreatePort(ctx context.Context, p NewPort) (int64, error)
	CreateWarehouse(ctx context.Context, p NewWarehouse) (int64, error)
	CreateItem(ctx context.Context, p NewItem) (int64, error)
	CreateInventoryEntry(ctx context.Context, p NewInventoryEntry) (int64, error)
	CreateShipping(ctx context.Context, p NewShipping) (int64, error)

	// ListAll returns every row of the kind ordered by identity, or a single
	// placeholder record when the table is empty.
	ListAll(ctx context.Context, kind Kind) ([]Record, error)
	// DeleteByID removes one row. A missing id is not an error; a row still
	// referenced by another table is rejected with shared.ErrHasReferences.
	DeleteByID(ctx context.Context, kind Kind, id int64) error

	GetPort(ctx context.Context, id int64) (*Port, error)
	GetWarehouse(ctx context.Context, id int64) (*Warehouse, error)
	ShippingRoute(ctx context.Context, shippingID int64) (*Route, error)
	Markers(ctx context.Context) ([]Marker, error)

	PortRelations(ctx context.Context, portID int64) ([]PortRelation, error)
	PortInfo(ctx context.Context, portID int64) (*PortInfo, error)
	WarehouseRelations(ctx context.Context, warehouseID int64) ([]WarehouseRelation, error)
	WarehouseInfo(ctx context.Context, warehouseID int64) (*WarehouseInfo, error)
	ItemRelations(ctx context.Context, itemID int64) ([]ItemRelation, error)
	ItemInfo(ctx context.Context, itemID int64) (*ItemInfo, error)
	InventoryRelations(ctx context.Context, inventoryID int64) ([]InventoryRelation, error)
	InventoryInfo(ctx context.Context, inventoryID int64) (*InventoryInfo, error)
	ShippingInfo(ctx context.Context, shippingID int64) (*ShippingInfo, error)
}

// Reference is a column in one table pointing at the identity of another kind
type Reference struct {
	Target Kind   // referenced kind
	Source Kind   // referencing kind
	Column string // referencing column in Source's table
}

// references lists every foreign key between kinds
var references = []Reference{
	{Target: KindPort, Source: KindWarehouse, Column: "port_id"},
	{Target: KindPort, Source: KindShipping, Column: "from_port"},
	{Target: KindPort, Source: KindShipping, Column: "into_port"},
	{Target: KindWarehouse, Source: KindInventoryEntry, Column: "warehouse_id"},
	{Target: KindItem, Source: KindInventoryEntry, Column: "item_id"},
	{Target: KindInventoryEntry, Source: KindShipping, Column: "inventory_id"},
}

// ReferencesTo returns the foreign keys that point at kind
func ReferencesTo(kind Kind) []Reference {
	var refs []Reference
	for _, r := range references {
		if r.Target == kind {
			refs = append(refs, r)
		}
	}
	return refs
}
