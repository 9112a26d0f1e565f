package logistics

import (
	"github.com/pwms/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// LineValue is the stock value of quantity units at unitPrice
func LineValue(unitPrice decimal.Decimal, quantity int64) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity))
}

// PortRelation is a warehouse served by a port
type PortRelation struct {
	WarehouseID   int64  `gorm:"column:warehouse_id" json:"warehouse_id"`
	WarehouseName string `gorm:"column:warehouse_name" json:"warehouse_name"`
	Capacity      int64  `gorm:"column:capacity" json:"capacity"`
}

// PortInfo summarises the warehouses attached to a port
type PortInfo struct {
	ID                     int64  `gorm:"column:id" json:"id"`
	PortName               string `gorm:"column:port_name" json:"port_name"`
	Country                string `gorm:"column:country" json:"country"`
	TotalWarehouses        int64  `gorm:"column:total_warehouses" json:"total_warehouses"`
	TotalWarehouseCapacity int64  `gorm:"column:total_warehouse_capacity" json:"total_warehouse_capacity"`
}

// WarehouseRelation is one inventory line held by a warehouse
type WarehouseRelation struct {
	InventoryID int64           `gorm:"column:inventory_id" json:"inventory_id"`
	ItemID      int64           `gorm:"column:item_id" json:"item_id"`
	ItemName    string          `gorm:"column:item_name" json:"item_name"`
	Category    *string         `gorm:"column:category" json:"category"`
	Quantity    int64           `gorm:"column:quantity" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price" json:"unit_price"`
	TotalValue  decimal.Decimal `gorm:"-" json:"total_value"`
	IsShipping  bool            `gorm:"column:is_shipping" json:"is_shipping"`
}

// WarehouseInfo summarises stock and capacity of a warehouse
type WarehouseInfo struct {
	ID                int64           `gorm:"column:id" json:"id"`
	WarehouseName     string          `gorm:"column:warehouse_name" json:"warehouse_name"`
	ConnectedPort     *int64          `gorm:"column:connected_port" json:"connected_port"`
	PortName          *string         `gorm:"column:port_name" json:"port_name"`
	Country           *string         `gorm:"column:country" json:"country"`
	Capacity          int64           `gorm:"column:capacity" json:"capacity"`
	TotalItems        int64           `gorm:"column:total_items" json:"total_items"`
	CapacityRemaining int64           `gorm:"column:capacity_remaining" json:"capacity_remaining"`
	TotalValue        decimal.Decimal `gorm:"-" json:"total_value"`
}

// ItemRelation is one warehouse holding an item
type ItemRelation struct {
	WarehouseID   int64           `gorm:"column:warehouse_id" json:"warehouse_id"`
	WarehouseName string          `gorm:"column:warehouse_name" json:"warehouse_name"`
	Quantity      int64           `gorm:"column:quantity" json:"quantity"`
	UnitPrice     decimal.Decimal `gorm:"column:unit_price" json:"unit_price"`
	TotalValue    decimal.Decimal `gorm:"-" json:"total_value"`
}

// ItemInfo summarises stock of an item across warehouses
type ItemInfo struct {
	ID            int64           `gorm:"column:id" json:"id"`
	Name          string          `gorm:"column:name" json:"name"`
	Category      *string         `gorm:"column:category" json:"category"`
	UnitPrice     decimal.Decimal `gorm:"column:unit_price" json:"unit_price"`
	OrderCount    int64           `gorm:"column:order_count" json:"order_count"`
	TotalQuantity int64           `gorm:"column:total_quantity" json:"total_quantity"`
	TotalValue    decimal.Decimal `gorm:"-" json:"total_value"`
}

// InventoryRelation describes an inventory entry and whether it is shipping
type InventoryRelation struct {
	WarehouseName string          `gorm:"column:warehouse_name" json:"warehouse_name"`
	ItemName      string          `gorm:"column:item_name" json:"item_name"`
	Category      *string         `gorm:"column:category" json:"category"`
	Quantity      int64           `gorm:"column:quantity" json:"quantity"`
	UnitPrice     decimal.Decimal `gorm:"column:unit_price" json:"unit_price"`
	TotalValue    decimal.Decimal `gorm:"-" json:"total_value"`
	BeingShipped  bool            `gorm:"column:being_shipped" json:"being_shipped"`
}

// InventoryInfo describes where an inventory entry is stored
type InventoryInfo struct {
	ID            int64           `gorm:"column:id" json:"id"`
	WarehouseName string          `gorm:"column:warehouse_name" json:"warehouse_name"`
	ConnectedPort *int64          `gorm:"column:connected_port" json:"connected_port"`
	PortName      *string         `gorm:"column:port_name" json:"port_name"`
	ItemName      string          `gorm:"column:item_name" json:"item_name"`
	Category      *string         `gorm:"column:category" json:"category"`
	Quantity      int64           `gorm:"column:quantity" json:"quantity"`
	UnitPrice     decimal.Decimal `gorm:"column:unit_price" json:"unit_price"`
	TotalValue    decimal.Decimal `gorm:"-" json:"total_value"`
}

// ShippingInfo describes the stock moved by a shipping and its progress
type ShippingInfo struct {
	ID                   int64  `gorm:"column:id" json:"id"`
	ItemID               int64  `gorm:"column:item_id" json:"item_id"`
	ItemName             string `gorm:"column:item_name" json:"item_name"`
	Quantity             int64  `gorm:"column:quantity" json:"quantity"`
	OriginPort           int64  `gorm:"column:origin_port" json:"origin_port"`
	DestinationPort      int64  `gorm:"column:destination_port" json:"destination_port"`
	DestinationWarehouse int64  `gorm:"column:destination_warehouse" json:"destination_warehouse"`
	ArrivedAtPort        bool   `gorm:"column:arrived_at_port" json:"arrived_at_port"`
	LoadedToTruck        bool   `gorm:"column:loaded_to_truck" json:"loaded_to_truck"`
}

// Route is the pair of port locations a shipping travels between
type Route struct {
	ShippingID  int64                  `json:"shipping_id"`
	Origin      valueobject.Coordinate `json:"origin"`
	Destination valueobject.Coordinate `json:"destination"`
}

// Marker is a labelled map point for a port or warehouse
type Marker struct {
	Kind     Kind                   `json:"kind"`
	ID       int64                  `json:"id"`
	Name     string                 `json:"name"`
	Location valueobject.Coordinate `json:"location"`
}
