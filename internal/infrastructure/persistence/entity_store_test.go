package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/pwms/backend/internal/domain/logistics"
	"github.com/pwms/backend/internal/domain/shared"
	"github.com/pwms/backend/internal/infrastructure/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEntityStoreTestDB(t *testing.T) *GormEntityStore {
	t.Helper()
	db, err := NewDatabase(&config.DatabaseConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(context.Background()))
	return NewGormEntityStore(db.DB)
}

func ptr[T any](v T) *T { return &v }

type seeded struct {
	portID, otherPortID, warehouseID, itemID, inventoryID, shippingID int64
}

// seed creates two ports, a warehouse served by the first, an item stocked
// there and a shipping of that stock to the second port.
func seed(t *testing.T, store *GormEntityStore) seeded {
	t.Helper()
	ctx := context.Background()
	var s seeded
	var err error

	s.portID, err = store.CreatePort(ctx, logistics.NewPort{Name: "Mumbai Port", Latitude: 18.9, Longitude: 72.8, Capacity: ptr(int64(5000))})
	require.NoError(t, err)
	s.otherPortID, err = store.CreatePort(ctx, logistics.NewPort{Name: "Chennai Port", Latitude: 13.1, Longitude: 80.3})
	require.NoError(t, err)
	s.warehouseID, err = store.CreateWarehouse(ctx, logistics.NewWarehouse{Name: "WH1", Latitude: 19.0, Longitude: 72.9, PortID: &s.portID})
	require.NoError(t, err)
	s.itemID, err = store.CreateItem(ctx, logistics.NewItem{Name: "Rice", UnitPrice: decimal.NewFromFloat(10.0)})
	require.NoError(t, err)
	s.inventoryID, err = store.CreateInventoryEntry(ctx, logistics.NewInventoryEntry{WarehouseID: s.warehouseID, ItemID: s.itemID, Quantity: 50})
	require.NoError(t, err)
	s.shippingID, err = store.CreateShipping(ctx, logistics.NewShipping{FromPort: s.portID, IntoPort: s.otherPortID, InventoryID: s.inventoryID})
	require.NoError(t, err)
	return s
}

func TestGormEntityStore_CreatePort(t *testing.T) {
	store := setupEntityStoreTestDB(t)
	ctx := context.Background()

	t.Run("applies defaults and returns id", func(t *testing.T) {
		id, err := store.CreatePort(ctx, logistics.NewPort{Name: "Mumbai Port", Latitude: 18.9, Longitude: 72.8, Capacity: ptr(int64(5000))})
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)

		port, err := store.GetPort(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Mumbai Port", port.Name)
		assert.Equal(t, logistics.DefaultCountry, port.Country)
		assert.Equal(t, int64(5000), port.Capacity)
	})

	t.Run("ids increase", func(t *testing.T) {
		id, err := store.CreatePort(ctx, logistics.NewPort{Name: "Kochi", Latitude: 9.9, Longitude: 76.2})
		require.NoError(t, err)
		assert.Equal(t, int64(2), id)
	})

	t.Run("duplicate coordinates rejected with engine message", func(t *testing.T) {
		_, err := store.CreatePort(ctx, logistics.NewPort{Name: "Mumbai Again", Latitude: 18.9, Longitude: 72.8})
		require.Error(t, err)

		var ce *shared.ConstraintError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, shared.CodeAlreadyExists, ce.Code)
		assert.Contains(t, err.Error(), "UNIQUE constraint failed")
	})

	t.Run("invalid arguments rejected before storage", func(t *testing.T) {
		_, err := store.CreatePort(ctx, logistics.NewPort{Name: "", Latitude: 1, Longitude: 1})
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))

		records, err := store.ListAll(ctx, logistics.KindPort)
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})
}

func TestGormEntityStore_ForeignKeys(t *testing.T) {
	store := setupEntityStoreTestDB(t)
	ctx := context.Background()

	t.Run("warehouse with unknown port", func(t *testing.T) {
		_, err := store.CreateWarehouse(ctx, logistics.NewWarehouse{Name: "WH", Latitude: 1, Longitude: 1, PortID: ptr(int64(99))})
		var ce *shared.ConstraintError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, shared.CodeForeignKeyViolation, ce.Code)
		assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")
	})

	t.Run("warehouse without port", func(t *testing.T) {
		id, err := store.CreateWarehouse(ctx, logistics.NewWarehouse{Name: "Standalone", Latitude: 2, Longitude: 2})
		require.NoError(t, err)

		w, err := store.GetWarehouse(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, w.PortID)
		assert.Equal(t, int64(logistics.DefaultWarehouseCapacity), w.Capacity)
	})

	t.Run("inventory with unknown item", func(t *testing.T) {
		_, err := store.CreateInventoryEntry(ctx, logistics.NewInventoryEntry{WarehouseID: 1, ItemID: 42, Quantity: 1})
		var ce *shared.ConstraintError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, shared.CodeForeignKeyViolation, ce.Code)
	})
}

func TestGormEntityStore_ListAll(t *testing.T) {
	store := setupEntityStoreTestDB(t)
	ctx := context.Background()

	t.Run("empty table yields placeholder", func(t *testing.T) {
		for _, kind := range logistics.Kinds() {
			records, err := store.ListAll(ctx, kind)
			require.NoError(t, err)
			require.Len(t, records, 1, kind.String())
			assert.True(t, records[0].IsPlaceholder())
			assert.Equal(t, kind.Descriptor().Columns, records[0].Columns)
		}
	})

	s := seed(t, store)

	t.Run("rows in identity order with declared columns", func(t *testing.T) {
		records, err := store.ListAll(ctx, logistics.KindPort)
		require.NoError(t, err)
		require.Len(t, records, 2)

		assert.Equal(t, []any{s.portID, "Mumbai Port", 18.9, 72.8, "India", int64(5000)}, records[0].Values)
		assert.Equal(t, s.otherPortID, records[1].Values[0])
	})

	t.Run("nullable columns are nil", func(t *testing.T) {
		records, err := store.ListAll(ctx, logistics.KindItem)
		require.NoError(t, err)
		require.Len(t, records, 1)

		category, ok := records[0].Get("category")
		assert.True(t, ok)
		assert.Nil(t, category)

		price, _ := records[0].Get("unit_price")
		assert.True(t, price.(decimal.Decimal).Equal(decimal.NewFromInt(10)))
	})

	t.Run("booleans and references", func(t *testing.T) {
		records, err := store.ListAll(ctx, logistics.KindShipping)
		require.NoError(t, err)
		require.Len(t, records, 1)
		m := records[0].Map()
		assert.Equal(t, s.portID, m["from_port"])
		assert.Equal(t, false, m["arrived_at_port"])

		records, err = store.ListAll(ctx, logistics.KindWarehouse)
		require.NoError(t, err)
		portID, _ := records[0].Get("port_id")
		assert.Equal(t, s.portID, portID)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := store.ListAll(ctx, logistics.Kind(9))
		assert.True(t, errors.Is(err, shared.ErrInvalidInput))
	})
}

func TestGormEntityStore_DeleteByID(t *testing.T) {
	store := setupEntityStoreTestDB(t)
	ctx := context.Background()
	s := seed(t, store)

	t.Run("missing id is not an error", func(t *testing.T) {
		require.NoError(t, store.DeleteByID(ctx, logistics.KindItem, 999))
		records, err := store.ListAll(ctx, logistics.KindItem)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("referenced rows are rejected", func(t *testing.T) {
		tests := []struct {
			kind  logistics.Kind
			id    int64
			table string
		}{
			{logistics.KindPort, s.portID, "warehouses"},
			{logistics.KindPort, s.otherPortID, "shippings"},
			{logistics.KindWarehouse, s.warehouseID, "warehouse_inventory"},
			{logistics.KindItem, s.itemID, "warehouse_inventory"},
			{logistics.KindInventoryEntry, s.inventoryID, "shippings"},
		}
		for _, tt := range tests {
			err := store.DeleteByID(ctx, tt.kind, tt.id)
			require.Error(t, err, tt.kind.String())
			assert.True(t, errors.Is(err, shared.ErrHasReferences))
			assert.Contains(t, err.Error(), tt.table)
		}
	})

	t.Run("deletes leaf to root", func(t *testing.T) {
		require.NoError(t, store.DeleteByID(ctx, logistics.KindShipping, s.shippingID))
		require.NoError(t, store.DeleteByID(ctx, logistics.KindInventoryEntry, s.inventoryID))
		require.NoError(t, store.DeleteByID(ctx, logistics.KindItem, s.itemID))
		require.NoError(t, store.DeleteByID(ctx, logistics.KindWarehouse, s.warehouseID))
		require.NoError(t, store.DeleteByID(ctx, logistics.KindPort, s.portID))

		records, err := store.ListAll(ctx, logistics.KindPort)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, s.otherPortID, records[0].Values[0])

		records, err = store.ListAll(ctx, logistics.KindShipping)
		require.NoError(t, err)
		assert.True(t, logistics.IsPlaceholderList(records))
	})
}

func TestGormEntityStore_PortQueries(t *testing.T) {
	store := setupEntityStoreTestDB(t)
	ctx := context.Background()
	s := seed(t, store)
	_, err := store.CreateWarehouse(ctx, logistics.NewWarehouse{Name: "WH2", Latitude: 19.1, Longitude: 73.0, Capacity: ptr(int64(250)), PortID: &s.portID})
	require.NoError(t, err)

	info, err := store.PortInfo(ctx, s.portID)
	require.NoError(t, err)
	assert.Equal(t, s.portID, info.ID)
	assert.Equal(t, "Mumbai Port", info.PortName)
	assert.Equal(t, "India", info.Country)
	assert.Equal(t, int64(2), info.TotalWarehouses)
	assert.Equal(t, int64(1250), info.TotalWarehouseCapacity)

	rel, err := store.PortRelations(ctx, s.portID)
	require.NoError(t, err)
	require.Len(t, rel, 2)
	assert.Equal(t, "WH1", rel[0].WarehouseName)
	assert.Equal(t, int64(250), rel[1].Capacity)

	t.Run("port without warehouses", func(t *testing.T) {
		info, err := store.PortInfo(ctx, s.otherPortID)
		require.NoError(t, err)
		assert.Zero(t, info.TotalWarehouses)
		assert.Zero(t, info.TotalWarehouseCapacity)

		rel, err := store.PortRelations(ctx, s.otherPortID)
		require.NoError(t, err)
		assert.NotNil(t, rel)
		assert.Empty(t, rel)
	})

	t.Run("unknown port", func(t *testing.T) {
		_, err := store.PortInfo(ctx, 404)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		_, err = store.GetPort(ctx, 404)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}

func TestGormEntityStore_WarehouseQueries(t *testing.T) {
	store := setupEntityStoreTestDB(t)
	ctx := context.Background()

	portID, err := store.CreatePort(ctx, logistics.NewPort{Name: "Mumbai Port", Latitude: 18.9, Longitude: 72.8, Capacity: ptr(int64(5000))})
	require.NoError(t, err)
	whID, err := store.CreateWarehouse(ctx, logistics.NewWarehouse{Name: "WH1", Latitude: 19.0, Longitude: 72.9, PortID: &portID})
	require.NoError(t, err)

	t.Run("empty warehouse", func(t *testing.T) {
		info, err := store.WarehouseInfo(ctx, whID)
		require.NoError(t, err)
		assert.Equal(t, "WH1", info.WarehouseName)
		require.NotNil(t, info.ConnectedPort)
		assert.Equal(t, portID, *info.ConnectedPort)
		require.NotNil(t, info.PortName)
		assert.Equal(t, "Mumbai Port", *info.PortName)
		assert.Equal(t, int64(1000), info.Capacity)
		assert.Equal(t, int64(0), info.TotalItems)
		assert.Equal(t, int64(1000), info.CapacityRemaining)
		assert.True(t, info.TotalValue.IsZero())
	})

	itemID, err := store.CreateItem(ctx, logistics.NewItem{Name: "Rice", Category: ptr("Grain"), UnitPrice: decimal.NewFromFloat(2.5)})
	require.NoError(t, err)
	invID, err := store.CreateInventoryEntry(ctx, logistics.NewInventoryEntry{WarehouseID: whID, ItemID: itemID, Quantity: 40})
	require.NoError(t, err)

	t.Run("stocked warehouse", func(t *testing.T) {
		info, err := store.WarehouseInfo(ctx, whID)
		require.NoError(t, err)
		assert.Equal(t, int64(40), info.TotalItems)
		assert.Equal(t, int64(960), info.CapacityRemaining)
		assert.True(t, info.TotalValue.Equal(decimal.NewFromInt(100)), info.TotalValue.String())

		rel, err := store.WarehouseRelations(ctx, whID)
		require.NoError(t, err)
		require.Len(t, rel, 1)
		assert.Equal(t, invID, rel[0].InventoryID)
		assert.Equal(t, "Rice", rel[0].ItemName)
		require.NotNil(t, rel[0].Category)
		assert.Equal(t, "Grain", *rel[0].Category)
		assert.False(t, rel[0].IsShipping)
	})

	t.Run("shipping flag", func(t *testing.T) {
		_, err := store.CreateShipping(ctx, logistics.NewShipping{FromPort: portID, IntoPort: portID, InventoryID: invID})
		require.NoError(t, err)

		rel, err := store.WarehouseRelations(ctx, whID)
		require.NoError(t, err)
		assert.True(t, rel[0].IsShipping)
	})

	t.Run("warehouse without port", func(t *testing.T) {
		id, err := store.CreateWarehouse(ctx, logistics.NewWarehouse{Name: "Inland", Latitude: 25, Longitude: 80})
		require.NoError(t, err)
		info, err := store.WarehouseInfo(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, info.ConnectedPort)
		assert.Nil(t, info.PortName)
		assert.Nil(t, info.Country)
	})

	t.Run("unknown warehouse", func(t *testing.T) {
		_, err := store.WarehouseInfo(ctx, 404)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		rel, err := store.WarehouseRelations(ctx, 404)
		require.NoError(t, err)
		assert.Empty(t, rel)
	})
}

func TestGormEntityStore_ItemQueries(t *testing.T) {
	store := setupEntityStoreTestDB(t)
	ctx := context.Background()
	s := seed(t, store)

	info, err := store.ItemInfo(ctx, s.itemID)
	require.NoError(t, err)
	assert.Equal(t, "Rice", info.Name)
	assert.Nil(t, info.Category)
	assert.Equal(t, int64(1), info.OrderCount)
	assert.Equal(t, int64(50), info.TotalQuantity)
	assert.True(t, info.TotalValue.Equal(decimal.NewFromInt(500)), info.TotalValue.String())

	t.Run("total value sums every warehouse", func(t *testing.T) {
		wh2, err := store.CreateWarehouse(ctx, logistics.NewWarehouse{Name: "WH2", Latitude: 20, Longitude: 73})
		require.NoError(t, err)
		_, err = store.CreateInventoryEntry(ctx, logistics.NewInventoryEntry{WarehouseID: wh2, ItemID: s.itemID, Quantity: 30})
		require.NoError(t, err)

		info, err := store.ItemInfo(ctx, s.itemID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), info.OrderCount)
		assert.Equal(t, int64(80), info.TotalQuantity)
		assert.True(t, info.TotalValue.Equal(decimal.NewFromInt(800)), info.TotalValue.String())

		rel, err := store.ItemRelations(ctx, s.itemID)
		require.NoError(t, err)
		require.Len(t, rel, 2)
		assert.Equal(t, "WH1", rel[0].WarehouseName)
		assert.Equal(t, int64(30), rel[1].Quantity)
		assert.True(t, rel[1].TotalValue.Equal(decimal.NewFromInt(300)))
	})

	t.Run("item without stock", func(t *testing.T) {
		id, err := store.CreateItem(ctx, logistics.NewItem{Name: "Tea", UnitPrice: decimal.NewFromFloat(4)})
		require.NoError(t, err)
		info, err := store.ItemInfo(ctx, id)
		require.NoError(t, err)
		assert.Zero(t, info.OrderCount)
		assert.Zero(t, info.TotalQuantity)
		assert.True(t, info.TotalValue.IsZero())
	})

	t.Run("unknown item", func(t *testing.T) {
		_, err := store.ItemInfo(ctx, 404)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}

func TestGormEntityStore_InventoryAndShippingQueries(t *testing.T) {
	store := setupEntityStoreTestDB(t)
	ctx := context.Background()
	s := seed(t, store)

	rel, err := store.InventoryRelations(ctx, s.inventoryID)
	require.NoError(t, err)
	require.Len(t, rel, 1)
	assert.Equal(t, "WH1", rel[0].WarehouseName)
	assert.Equal(t, "Rice", rel[0].ItemName)
	assert.True(t, rel[0].BeingShipped)
	assert.True(t, rel[0].TotalValue.Equal(decimal.NewFromInt(500)))

	info, err := store.InventoryInfo(ctx, s.inventoryID)
	require.NoError(t, err)
	assert.Equal(t, s.inventoryID, info.ID)
	require.NotNil(t, info.PortName)
	assert.Equal(t, "Mumbai Port", *info.PortName)
	assert.Equal(t, int64(50), info.Quantity)

	ship, err := store.ShippingInfo(ctx, s.shippingID)
	require.NoError(t, err)
	assert.Equal(t, s.itemID, ship.ItemID)
	assert.Equal(t, "Rice", ship.ItemName)
	assert.Equal(t, int64(50), ship.Quantity)
	assert.Equal(t, s.portID, ship.OriginPort)
	assert.Equal(t, s.otherPortID, ship.DestinationPort)
	assert.Equal(t, s.warehouseID, ship.DestinationWarehouse)
	assert.False(t, ship.ArrivedAtPort)
	assert.False(t, ship.LoadedToTruck)

	route, err := store.ShippingRoute(ctx, s.shippingID)
	require.NoError(t, err)
	assert.Equal(t, 18.9, route.Origin.Latitude)
	assert.Equal(t, 72.8, route.Origin.Longitude)
	assert.Equal(t, 13.1, route.Destination.Latitude)
	assert.Equal(t, 80.3, route.Destination.Longitude)

	t.Run("unknown ids", func(t *testing.T) {
		_, err := store.InventoryInfo(ctx, 404)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		_, err = store.ShippingInfo(ctx, 404)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		_, err = store.ShippingRoute(ctx, 404)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		rel, err := store.InventoryRelations(ctx, 404)
		require.NoError(t, err)
		assert.Empty(t, rel)
	})
}

func TestGormEntityStore_Markers(t *testing.T) {
	store := setupEntityStoreTestDB(t)
	ctx := context.Background()

	markers, err := store.Markers(ctx)
	require.NoError(t, err)
	assert.Empty(t, markers)

	s := seed(t, store)
	markers, err = store.Markers(ctx)
	require.NoError(t, err)
	require.Len(t, markers, 3)
	assert.Equal(t, logistics.KindPort, markers[0].Kind)
	assert.Equal(t, s.portID, markers[0].ID)
	assert.Equal(t, 18.9, markers[0].Location.Latitude)
	assert.Equal(t, logistics.KindWarehouse, markers[2].Kind)
	assert.Equal(t, "WH1", markers[2].Name)
}

func TestGormEntityStore_ExactValues(t *testing.T) {
	store := setupEntityStoreTestDB(t)
	ctx := context.Background()

	whID, err := store.CreateWarehouse(ctx, logistics.NewWarehouse{Name: "WH1", Latitude: 19.0, Longitude: 72.9})
	require.NoError(t, err)
	tea, err := store.CreateItem(ctx, logistics.NewItem{Name: "Tea", UnitPrice: decimal.RequireFromString("0.1")})
	require.NoError(t, err)
	salt, err := store.CreateItem(ctx, logistics.NewItem{Name: "Salt", UnitPrice: decimal.RequireFromString("0.2")})
	require.NoError(t, err)
	teaInv, err := store.CreateInventoryEntry(ctx, logistics.NewInventoryEntry{WarehouseID: whID, ItemID: tea, Quantity: 3})
	require.NoError(t, err)
	_, err = store.CreateInventoryEntry(ctx, logistics.NewInventoryEntry{WarehouseID: whID, ItemID: salt, Quantity: 1})
	require.NoError(t, err)

	item, err := store.ItemInfo(ctx, tea)
	require.NoError(t, err)
	assert.Equal(t, "0.3", item.TotalValue.String())

	itemRel, err := store.ItemRelations(ctx, tea)
	require.NoError(t, err)
	require.Len(t, itemRel, 1)
	assert.Equal(t, "0.3", itemRel[0].TotalValue.String())

	whRel, err := store.WarehouseRelations(ctx, whID)
	require.NoError(t, err)
	require.Len(t, whRel, 2)
	assert.Equal(t, "0.3", whRel[0].TotalValue.String())
	assert.Equal(t, "0.2", whRel[1].TotalValue.String())

	wh, err := store.WarehouseInfo(ctx, whID)
	require.NoError(t, err)
	assert.Equal(t, "0.5", wh.TotalValue.String())
	assert.Equal(t, int64(4), wh.TotalItems)

	invRel, err := store.InventoryRelations(ctx, teaInv)
	require.NoError(t, err)
	require.Len(t, invRel, 1)
	assert.Equal(t, "0.3", invRel[0].TotalValue.String())

	inv, err := store.InventoryInfo(ctx, teaInv)
	require.NoError(t, err)
	assert.Equal(t, "0.3", inv.TotalValue.String())
}
