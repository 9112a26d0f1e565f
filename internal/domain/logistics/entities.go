package logistics

import (
	"github.com/shopspring/decimal"
)

// Defaults applied when an optional insert argument is absent or null
const (
	DefaultCountry           = "India"
	DefaultPortCapacity      = 1000
	DefaultWarehouseCapacity = 1000
)

// Port is a sea or river port shown on the map
type Port struct {
	ID        int64   `gorm:"column:port_id;primaryKey" json:"port_id"`
	Name      string  `gorm:"type:varchar(250)" json:"name"`
	Latitude  float64 `gorm:"type:double precision;uniqueIndex:idx_ports_location,priority:1" json:"latitude"`
	Longitude float64 `gorm:"type:double precision;uniqueIndex:idx_ports_location,priority:2" json:"longitude"`
	Country   string  `gorm:"type:varchar(200)" json:"country"`
	Capacity  int64   `json:"capacity"`
}

// TableName returns the table name for GORM
func (Port) TableName() string {
	return "ports"
}

// Warehouse stores inventory and is optionally served by one port
type Warehouse struct {
	ID          int64   `gorm:"column:warehouse_id;primaryKey" json:"warehouse_id"`
	Name        string  `gorm:"type:varchar(200)" json:"name"`
	Latitude    float64 `gorm:"type:double precision;uniqueIndex:idx_warehouses_location,priority:1" json:"latitude"`
	Longitude   float64 `gorm:"type:double precision;uniqueIndex:idx_warehouses_location,priority:2" json:"longitude"`
	Capacity    int64   `json:"capacity"`
	PortID      *int64  `gorm:"column:port_id;index" json:"port_id"`

	Port *Port `gorm:"foreignKey:PortID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
}

// TableName returns the table name for GORM
func (Warehouse) TableName() string {
	return "warehouses"
}

// Item is a stock-keeping item with a unit price
type Item struct {
	ID        int64           `gorm:"column:item_id;primaryKey" json:"item_id"`
	Name      string          `gorm:"type:varchar(200)" json:"name"`
	Category  *string         `gorm:"type:varchar(200)" json:"category"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null" json:"unit_price"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// InventoryEntry records how much of an item a warehouse holds
type InventoryEntry struct {
	ID          int64 `gorm:"column:inventory_id;primaryKey" json:"inventory_id"`
	WarehouseID int64 `gorm:"column:warehouse_id;not null;index" json:"warehouse_id"`
	ItemID      int64 `gorm:"column:item_id;not null;index" json:"item_id"`
	Quantity    int64 `gorm:"not null" json:"quantity"`

	Warehouse *Warehouse `gorm:"foreignKey:WarehouseID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
	Item      *Item      `gorm:"foreignKey:ItemID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
}

// TableName returns the table name for GORM
func (InventoryEntry) TableName() string {
	return "warehouse_inventory"
}

// Shipping moves one inventory entry's stock between two ports
type Shipping struct {
	ID            int64 `gorm:"column:shipping_id;primaryKey" json:"shipping_id"`
	FromPort      int64 `gorm:"column:from_port;not null;index" json:"from_port"`
	IntoPort      int64 `gorm:"column:into_port;not null;index" json:"into_port"`
	InventoryID   int64 `gorm:"column:inventory_id;not null;index" json:"inventory_id"`
	ArrivedAtPort bool  `gorm:"not null" json:"arrived_at_port"`
	LoadedToTruck bool  `gorm:"not null" json:"loaded_to_truck"`

	Origin      *Port           `gorm:"foreignKey:FromPort;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
	Destination *Port           `gorm:"foreignKey:IntoPort;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
	Inventory   *InventoryEntry `gorm:"foreignKey:InventoryID;references:ID;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT" json:"-"`
}

// TableName returns the table name for GORM
func (Shipping) TableName() string {
	return "shippings"
}

// Models returns the persistence models of every kind, in dependency order
func Models() []any {
	models := make([]any, 0, kindCount)
	for _, k := range Kinds() {
		models = append(models, k.Descriptor().NewModel())
	}
	return models
}
