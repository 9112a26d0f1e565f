package persistence

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/pwms/backend/internal/domain/logistics"
	"github.com/pwms/backend/internal/domain/shared"
	"github.com/pwms/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormEntityStore implements logistics.EntityStore using GORM
type GormEntityStore struct {
	db *gorm.DB
}

// NewGormEntityStore creates a new GormEntityStore
func NewGormEntityStore(db *gorm.DB) *GormEntityStore {
	return &GormEntityStore{db: db}
}

var _ logistics.EntityStore = (*GormEntityStore)(nil)

// CreatePort inserts a port and returns its id
func (s *GormEntityStore) CreatePort(ctx context.Context, p logistics.NewPort) (int64, error) {
	if err := logistics.Validate(p); err != nil {
		return 0, err
	}
	m := p.Model()
	if err := s.create(ctx, m); err != nil {
		return 0, err
	}
	return m.ID, nil
}

// CreateWarehouse inserts a warehouse and returns its id
func (s *GormEntityStore) CreateWarehouse(ctx context.Context, p logistics.NewWarehouse) (int64, error) {
	if err := logistics.Validate(p); err != nil {
		return 0, err
	}
	m := p.Model()
	if err := s.create(ctx, m); err != nil {
		return 0, err
	}
	return m.ID, nil
}

// CreateItem inserts an item and returns its id
func (s *GormEntityStore) CreateItem(ctx context.Context, p logistics.NewItem) (int64, error) {
	if err := logistics.Validate(p); err != nil {
		return 0, err
	}
	m := p.Model()
	if err := s.create(ctx, m); err != nil {
		return 0, err
	}
	return m.ID, nil
}

// CreateInventoryEntry inserts an inventory entry and returns its id
func (s *GormEntityStore) CreateInventoryEntry(ctx context.Context, p logistics.NewInventoryEntry) (int64, error) {
	if err := logistics.Validate(p); err != nil {
		return 0, err
	}
	m := p.Model()
	if err := s.create(ctx, m); err != nil {
		return 0, err
	}
	return m.ID, nil
}

// CreateShipping inserts a shipping and returns its id
func (s *GormEntityStore) CreateShipping(ctx context.Context, p logistics.NewShipping) (int64, error) {
	if err := logistics.Validate(p); err != nil {
		return 0, err
	}
	m := p.Model()
	if err := s.create(ctx, m); err != nil {
		return 0, err
	}
	return m.ID, nil
}

func (s *GormEntityStore) create(ctx context.Context, model any) error {
	err := s.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error
	return translateError(s.db, err)
}

// ListAll returns every row of a kind ordered by id. An empty table yields a
// single placeholder record.
func (s *GormEntityStore) ListAll(ctx context.Context, kind logistics.Kind) ([]logistics.Record, error) {
	if !kind.Valid() {
		return nil, invalidKind(kind)
	}
	d := kind.Descriptor()

	model := d.NewModel()
	stmt := &gorm.Statement{DB: s.db}
	if err := stmt.Parse(model); err != nil {
		return nil, err
	}

	rows := reflect.New(reflect.SliceOf(reflect.TypeOf(model)))
	if err := s.db.WithContext(ctx).
		Select(d.Columns).
		Order(d.IDColumn).
		Find(rows.Interface()).Error; err != nil {
		return nil, translateError(s.db, err)
	}

	list := rows.Elem()
	if list.Len() == 0 {
		return []logistics.Record{logistics.NewPlaceholder(d.Columns)}, nil
	}

	records := make([]logistics.Record, 0, list.Len())
	for i := 0; i < list.Len(); i++ {
		row := reflect.Indirect(list.Index(i))
		values := make([]any, len(d.Columns))
		for j, col := range d.Columns {
			field := stmt.Schema.LookUpField(col)
			if field == nil {
				return nil, fmt.Errorf("column %s not mapped on %s", col, d.Table)
			}
			v, _ := field.ValueOf(ctx, row)
			values[j] = deref(v)
		}
		records = append(records, logistics.Record{Columns: d.Columns, Values: values})
	}
	return records, nil
}

// deref unwraps nullable column values so that NULL becomes a nil interface
func deref(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr {
		return v
	}
	if rv.IsNil() {
		return nil
	}
	return rv.Elem().Interface()
}

// DeleteByID removes one row of a kind. Missing ids are ignored. Rows still
// referenced by another table are rejected with shared.ErrHasReferences.
func (s *GormEntityStore) DeleteByID(ctx context.Context, kind logistics.Kind, id int64) error {
	if !kind.Valid() {
		return invalidKind(kind)
	}
	d := kind.Descriptor()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, ref := range logistics.ReferencesTo(kind) {
			src := ref.Source.Descriptor()
			var n int64
			if err := tx.Table(src.Table).Where(ref.Column+" = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return shared.NewDomainError(shared.ErrHasReferences.Code,
					fmt.Sprintf("%s %d is referenced by %d row(s) in %s.%s", d.Table, id, n, src.Table, ref.Column))
			}
		}
		return tx.Where(d.IDColumn+" = ?", id).Delete(d.NewModel()).Error
	})
	var de *shared.DomainError
	if errors.As(err, &de) {
		return err
	}
	return translateError(s.db, err)
}

// GetPort returns one port
func (s *GormEntityStore) GetPort(ctx context.Context, id int64) (*logistics.Port, error) {
	var port logistics.Port
	if err := s.db.WithContext(ctx).Where("port_id = ?", id).First(&port).Error; err != nil {
		return nil, translateError(s.db, err)
	}
	return &port, nil
}

// GetWarehouse returns one warehouse
func (s *GormEntityStore) GetWarehouse(ctx context.Context, id int64) (*logistics.Warehouse, error) {
	var w logistics.Warehouse
	if err := s.db.WithContext(ctx).Where("warehouse_id = ?", id).First(&w).Error; err != nil {
		return nil, translateError(s.db, err)
	}
	return &w, nil
}

type routeRow struct {
	ShippingID           int64   `gorm:"column:shipping_id"`
	OriginLatitude       float64 `gorm:"column:origin_latitude"`
	OriginLongitude      float64 `gorm:"column:origin_longitude"`
	DestinationLatitude  float64 `gorm:"column:destination_latitude"`
	DestinationLongitude float64 `gorm:"column:destination_longitude"`
}

// ShippingRoute returns the coordinates of a shipping's two ports
func (s *GormEntityStore) ShippingRoute(ctx context.Context, shippingID int64) (*logistics.Route, error) {
	var row routeRow
	if err := s.scanOne(ctx, &row, shippingRouteSQL, shippingID); err != nil {
		return nil, err
	}
	return &logistics.Route{
		ShippingID:  row.ShippingID,
		Origin:      valueobject.Coordinate{Latitude: row.OriginLatitude, Longitude: row.OriginLongitude},
		Destination: valueobject.Coordinate{Latitude: row.DestinationLatitude, Longitude: row.DestinationLongitude},
	}, nil
}

// Markers returns every port followed by every warehouse as map points
func (s *GormEntityStore) Markers(ctx context.Context) ([]logistics.Marker, error) {
	var ports []logistics.Port
	if err := s.db.WithContext(ctx).Order("port_id").Find(&ports).Error; err != nil {
		return nil, translateError(s.db, err)
	}
	var warehouses []logistics.Warehouse
	if err := s.db.WithContext(ctx).Order("warehouse_id").Find(&warehouses).Error; err != nil {
		return nil, translateError(s.db, err)
	}

	markers := make([]logistics.Marker, 0, len(ports)+len(warehouses))
	for _, p := range ports {
		markers = append(markers, logistics.Marker{
			Kind:     logistics.KindPort,
			ID:       p.ID,
			Name:     p.Name,
			Location: valueobject.Coordinate{Latitude: p.Latitude, Longitude: p.Longitude},
		})
	}
	for _, w := range warehouses {
		markers = append(markers, logistics.Marker{
			Kind:     logistics.KindWarehouse,
			ID:       w.ID,
			Name:     w.Name,
			Location: valueobject.Coordinate{Latitude: w.Latitude, Longitude: w.Longitude},
		})
	}
	return markers, nil
}

// PortRelations lists the warehouses served by a port
func (s *GormEntityStore) PortRelations(ctx context.Context, portID int64) ([]logistics.PortRelation, error) {
	out := []logistics.PortRelation{}
	if err := s.scanAll(ctx, &out, portRelationsSQL, portID); err != nil {
		return nil, err
	}
	return out, nil
}

// PortInfo summarises the warehouses of a port
func (s *GormEntityStore) PortInfo(ctx context.Context, portID int64) (*logistics.PortInfo, error) {
	var info logistics.PortInfo
	if err := s.scanOne(ctx, &info, portInfoSQL, portID); err != nil {
		return nil, err
	}
	return &info, nil
}

// WarehouseRelations lists the inventory held by a warehouse
func (s *GormEntityStore) WarehouseRelations(ctx context.Context, warehouseID int64) ([]logistics.WarehouseRelation, error) {
	out := []logistics.WarehouseRelation{}
	if err := s.scanAll(ctx, &out, warehouseRelationsSQL, warehouseID); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].TotalValue = logistics.LineValue(out[i].UnitPrice, out[i].Quantity)
	}
	return out, nil
}

// WarehouseInfo summarises stock and remaining capacity of a warehouse
func (s *GormEntityStore) WarehouseInfo(ctx context.Context, warehouseID int64) (*logistics.WarehouseInfo, error) {
	var info logistics.WarehouseInfo
	if err := s.scanOne(ctx, &info, warehouseInfoSQL, warehouseID); err != nil {
		return nil, err
	}
	lines, err := s.WarehouseRelations(ctx, warehouseID)
	if err != nil {
		return nil, err
	}
	info.TotalValue = decimal.Zero
	for _, line := range lines {
		info.TotalValue = info.TotalValue.Add(line.TotalValue)
	}
	return &info, nil
}

// ItemRelations lists the warehouses holding an item
func (s *GormEntityStore) ItemRelations(ctx context.Context, itemID int64) ([]logistics.ItemRelation, error) {
	out := []logistics.ItemRelation{}
	if err := s.scanAll(ctx, &out, itemRelationsSQL, itemID); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].TotalValue = logistics.LineValue(out[i].UnitPrice, out[i].Quantity)
	}
	return out, nil
}

// ItemInfo summarises the stock of an item across warehouses
func (s *GormEntityStore) ItemInfo(ctx context.Context, itemID int64) (*logistics.ItemInfo, error) {
	var info logistics.ItemInfo
	if err := s.scanOne(ctx, &info, itemInfoSQL, itemID); err != nil {
		return nil, err
	}
	info.TotalValue = logistics.LineValue(info.UnitPrice, info.TotalQuantity)
	return &info, nil
}

// InventoryRelations describes an inventory entry and whether it is shipping
func (s *GormEntityStore) InventoryRelations(ctx context.Context, inventoryID int64) ([]logistics.InventoryRelation, error) {
	out := []logistics.InventoryRelation{}
	if err := s.scanAll(ctx, &out, inventoryRelationsSQL, inventoryID); err != nil {
		return nil, err
	}
	for i := range out {
		out[i].TotalValue = logistics.LineValue(out[i].UnitPrice, out[i].Quantity)
	}
	return out, nil
}

// InventoryInfo describes where an inventory entry is stored
func (s *GormEntityStore) InventoryInfo(ctx context.Context, inventoryID int64) (*logistics.InventoryInfo, error) {
	var info logistics.InventoryInfo
	if err := s.scanOne(ctx, &info, inventoryInfoSQL, inventoryID); err != nil {
		return nil, err
	}
	info.TotalValue = logistics.LineValue(info.UnitPrice, info.Quantity)
	return &info, nil
}

// ShippingInfo describes the stock moved by a shipping
func (s *GormEntityStore) ShippingInfo(ctx context.Context, shippingID int64) (*logistics.ShippingInfo, error) {
	var info logistics.ShippingInfo
	if err := s.scanOne(ctx, &info, shippingInfoSQL, shippingID); err != nil {
		return nil, err
	}
	return &info, nil
}

func (s *GormEntityStore) scanAll(ctx context.Context, dest any, query string, args ...any) error {
	return translateError(s.db, s.db.WithContext(ctx).Raw(query, args...).Scan(dest).Error)
}

// scanOne scans a single-row query, reporting shared.ErrNotFound for no rows
func (s *GormEntityStore) scanOne(ctx context.Context, dest any, query string, args ...any) error {
	result := s.db.WithContext(ctx).Raw(query, args...).Scan(dest)
	if result.Error != nil {
		return translateError(s.db, result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func invalidKind(kind logistics.Kind) error {
	return shared.NewDomainError(shared.ErrInvalidInput.Code, fmt.Sprintf("unknown entity kind %s", kind))
}
