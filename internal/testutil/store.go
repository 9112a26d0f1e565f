package testutil

import (
	"context"

	"github.com/pwms/backend/internal/domain/logistics"
	"github.com/stretchr/testify/mock"
)

// MockEntityStore is a mock implementation of logistics.EntityStore
type MockEntityStore struct {
	mock.Mock
}

var _ logistics.EntityStore = (*MockEntityStore)(nil)

func (m *MockEntityStore) CreatePort(ctx context.Context, p logistics.NewPort) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntityStore) CreateWarehouse(ctx context.Context, p logistics.NewWarehouse) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntityStore) CreateItem(ctx context.Context, p logistics.NewItem) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntityStore) CreateInventoryEntry(ctx context.Context, p logistics.NewInventoryEntry) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntityStore) CreateShipping(ctx context.Context, p logistics.NewShipping) (int64, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEntityStore) ListAll(ctx context.Context, kind logistics.Kind) ([]logistics.Record, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]logistics.Record), args.Error(1)
}

func (m *MockEntityStore) DeleteByID(ctx context.Context, kind logistics.Kind, id int64) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func (m *MockEntityStore) GetPort(ctx context.Context, id int64) (*logistics.Port, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.Port), args.Error(1)
}

func (m *MockEntityStore) GetWarehouse(ctx context.Context, id int64) (*logistics.Warehouse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.Warehouse), args.Error(1)
}

func (m *MockEntityStore) ShippingRoute(ctx context.Context, shippingID int64) (*logistics.Route, error) {
	args := m.Called(ctx, shippingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.Route), args.Error(1)
}

func (m *MockEntityStore) Markers(ctx context.Context) ([]logistics.Marker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]logistics.Marker), args.Error(1)
}

func (m *MockEntityStore) PortRelations(ctx context.Context, portID int64) ([]logistics.PortRelation, error) {
	args := m.Called(ctx, portID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]logistics.PortRelation), args.Error(1)
}

func (m *MockEntityStore) PortInfo(ctx context.Context, portID int64) (*logistics.PortInfo, error) {
	args := m.Called(ctx, portID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.PortInfo), args.Error(1)
}

func (m *MockEntityStore) WarehouseRelations(ctx context.Context, warehouseID int64) ([]logistics.WarehouseRelation, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]logistics.WarehouseRelation), args.Error(1)
}

func (m *MockEntityStore) WarehouseInfo(ctx context.Context, warehouseID int64) (*logistics.WarehouseInfo, error) {
	args := m.Called(ctx, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.WarehouseInfo), args.Error(1)
}

func (m *MockEntityStore) ItemRelations(ctx context.Context, itemID int64) ([]logistics.ItemRelation, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]logistics.ItemRelation), args.Error(1)
}

func (m *MockEntityStore) ItemInfo(ctx context.Context, itemID int64) (*logistics.ItemInfo, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.ItemInfo), args.Error(1)
}

func (m *MockEntityStore) InventoryRelations(ctx context.Context, inventoryID int64) ([]logistics.InventoryRelation, error) {
	args := m.Called(ctx, inventoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]logistics.InventoryRelation), args.Error(1)
}

func (m *MockEntityStore) InventoryInfo(ctx context.Context, inventoryID int64) (*logistics.InventoryInfo, error) {
	args := m.Called(ctx, inventoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.InventoryInfo), args.Error(1)
}

func (m *MockEntityStore) ShippingInfo(ctx context.Context, shippingID int64) (*logistics.ShippingInfo, error) {
	args := m.Called(ctx, shippingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*logistics.ShippingInfo), args.Error(1)
}
