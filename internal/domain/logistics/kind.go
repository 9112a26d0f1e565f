package logistics

import (
	"fmt"
	"strings"
)

// Kind identifies one of the managed entity kinds
type Kind int

const (
	KindPort Kind = iota
	KindWarehouse
	KindItem
	KindInventoryEntry
	KindShipping

	kindCount
)

// Descriptor describes how an entity kind is stored
type Descriptor struct {
	Kind     Kind
	Name     string // display name, e.g. "Ports"
	Constant string // constant name, e.g. "PORTS"
	Table    string
	IDColumn string
	Columns  []string // declared column order, identity first
	newModel func() any
}

// descriptors is indexed by Kind; every kind below kindCount must have an entry.
var descriptors = [kindCount]Descriptor{
	KindPort: {
		Kind:     KindPort,
		Name:     "Ports",
		Constant: "PORTS",
		Table:    "ports",
		IDColumn: "port_id",
		Columns:  []string{"port_id", "name", "latitude", "longitude", "country", "capacity"},
		newModel: func() any { return &Port{} },
	},
	KindWarehouse: {
		Kind:     KindWarehouse,
		Name:     "Warehouses",
		Constant: "WAREHOUSES",
		Table:    "warehouses",
		IDColumn: "warehouse_id",
		Columns:  []string{"warehouse_id", "name", "latitude", "longitude", "capacity", "port_id"},
		newModel: func() any { return &Warehouse{} },
	},
	KindItem: {
		Kind:     KindItem,
		Name:     "Items",
		Constant: "ITEMS",
		Table:    "items",
		IDColumn: "item_id",
		Columns:  []string{"item_id", "name", "category", "unit_price"},
		newModel: func() any { return &Item{} },
	},
	KindInventoryEntry: {
		Kind:     KindInventoryEntry,
		Name:     "WarehouseInventory",
		Constant: "INVENTORY",
		Table:    "warehouse_inventory",
		IDColumn: "inventory_id",
		Columns:  []string{"inventory_id", "warehouse_id", "item_id", "quantity"},
		newModel: func() any { return &InventoryEntry{} },
	},
	KindShipping: {
		Kind:     KindShipping,
		Name:     "Shippings",
		Constant: "SHIPPINGS",
		Table:    "shippings",
		IDColumn: "shipping_id",
		Columns:  []string{"shipping_id", "from_port", "into_port", "inventory_id", "arrived_at_port", "loaded_to_truck"},
		newModel: func() any { return &Shipping{} },
	},
}

// Kinds returns all entity kinds in declaration order
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// Descriptor returns the storage descriptor of the kind.
// It panics for an invalid kind.
func (k Kind) Descriptor() Descriptor {
	if !k.Valid() {
		panic(fmt.Sprintf("logistics: invalid kind %d", int(k)))
	}
	return descriptors[k]
}

// String returns the display name of the kind
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return descriptors[k].Name
}

// MarshalText encodes the kind as its display name
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("logistics: invalid kind %d", int(k))
	}
	return []byte(descriptors[k].Name), nil
}

// UnmarshalText decodes a kind from any name accepted by ParseKind
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("logistics: unknown kind %q", string(text))
	}
	*k = parsed
	return nil
}

// ParseKind resolves a display name ("Ports"), table name ("ports") or
// constant name ("PORTS") to a Kind, ignoring case.
func ParseKind(name string) (Kind, bool) {
	name = strings.TrimSpace(name)
	for _, d := range descriptors {
		if strings.EqualFold(name, d.Name) ||
			strings.EqualFold(name, d.Table) ||
			strings.EqualFold(name, d.Constant) {
			return d.Kind, true
		}
	}
	return 0, false
}

// InputColumns returns the declared columns without the identity column
func (d Descriptor) InputColumns() []string {
	cols := make([]string, 0, len(d.Columns))
	for _, c := range d.Columns {
		if c != d.IDColumn {
			cols = append(cols, c)
		}
	}
	return cols
}

// NewModel returns a fresh persistence model for the kind
func (d Descriptor) NewModel() any {
	return d.newModel()
}
