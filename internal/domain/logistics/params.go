package logistics

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pwms/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// NewPort holds the arguments of a port insert
type NewPort struct {
	Name      string  `json:"name" validate:"required,max=250"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Country   *string `json:"country" validate:"omitempty,max=200"`
	Capacity  *int64  `json:"capacity" validate:"omitempty,gte=0"`
}

// Model builds the row to insert, applying defaults
func (p NewPort) Model() *Port {
	port := &Port{
		Name:      p.Name,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Country:   DefaultCountry,
		Capacity:  DefaultPortCapacity,
	}
	if p.Country != nil {
		port.Country = *p.Country
	}
	if p.Capacity != nil {
		port.Capacity = *p.Capacity
	}
	return port
}

// NewWarehouse holds the arguments of a warehouse insert
type NewWarehouse struct {
	Name      string  `json:"name" validate:"required,max=200"`
	Latitude  float64 `json:"latitude" validate:"gte=-90,lte=90"`
	Longitude float64 `json:"longitude" validate:"gte=-180,lte=180"`
	Capacity  *int64  `json:"capacity" validate:"omitempty,gte=0"`
	PortID    *int64  `json:"port_id" validate:"omitempty,gt=0"`
}

// Model builds the row to insert, applying defaults
func (p NewWarehouse) Model() *Warehouse {
	w := &Warehouse{
		Name:      p.Name,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
		Capacity:  DefaultWarehouseCapacity,
		PortID:    p.PortID,
	}
	if p.Capacity != nil {
		w.Capacity = *p.Capacity
	}
	return w
}

// NewItem holds the arguments of an item insert
type NewItem struct {
	Name      string          `json:"name" validate:"required,max=200"`
	Category  *string         `json:"category" validate:"omitempty,max=200"`
	UnitPrice decimal.Decimal `json:"unit_price" validate:"gte=0"`
}

// Model builds the row to insert
func (p NewItem) Model() *Item {
	return &Item{
		Name:      p.Name,
		Category:  p.Category,
		UnitPrice: p.UnitPrice,
	}
}

// NewInventoryEntry holds the arguments of an inventory insert
type NewInventoryEntry struct {
	WarehouseID int64 `json:"warehouse_id" validate:"gt=0"`
	ItemID      int64 `json:"item_id" validate:"gt=0"`
	Quantity    int64 `json:"quantity" validate:"gte=0"`
}

// Model builds the row to insert
func (p NewInventoryEntry) Model() *InventoryEntry {
	return &InventoryEntry{
		WarehouseID: p.WarehouseID,
		ItemID:      p.ItemID,
		Quantity:    p.Quantity,
	}
}

// NewShipping holds the arguments of a shipping insert
type NewShipping struct {
	FromPort      int64 `json:"from_port" validate:"gt=0"`
	IntoPort      int64 `json:"into_port" validate:"gt=0"`
	InventoryID   int64 `json:"inventory_id" validate:"gt=0"`
	ArrivedAtPort bool  `json:"arrived_at_port"`
	LoadedToTruck bool  `json:"loaded_to_truck"`
}

// Model builds the row to insert
func (p NewShipping) Model() *Shipping {
	return &Shipping{
		FromPort:      p.FromPort,
		IntoPort:      p.IntoPort,
		InventoryID:   p.InventoryID,
		ArrivedAtPort: p.ArrivedAtPort,
		LoadedToTruck: p.LoadedToTruck,
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// Validate checks insert arguments and reports the first offending field
// as an INVALID_INPUT domain error.
func Validate(params any) error {
	err := validate.Struct(params)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return shared.NewDomainError(shared.ErrInvalidInput.Code,
			fmt.Sprintf("invalid value for '%s': failed %s%s (got %v)", fe.Field(), fe.Tag(), paramSuffix(fe.Param()), fe.Value()))
	}
	return shared.NewDomainError(shared.ErrInvalidInput.Code, err.Error())
}

func paramSuffix(param string) string {
	if param == "" {
		return ""
	}
	return "=" + param
}
