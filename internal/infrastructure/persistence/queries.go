package persistence

// Aggregate and join views. Placeholders use '?' and are rebound per dialect.
// Money values are never computed here; callers multiply and sum unit_price
// with decimal so totals stay exact on every engine.
const (
	portRelationsSQL = `
SELECT w.warehouse_id, w.name AS warehouse_name, w.capacity
FROM warehouses w
WHERE w.port_id = ?
ORDER BY w.warehouse_id`

	portInfoSQL = `
SELECT p.port_id AS id,
       p.name AS port_name,
       p.country,
       COUNT(w.warehouse_id) AS total_warehouses,
       COALESCE(SUM(w.capacity), 0) AS total_warehouse_capacity
FROM ports p
LEFT JOIN warehouses w ON w.port_id = p.port_id
WHERE p.port_id = ?
GROUP BY p.port_id, p.name, p.country`

	warehouseRelationsSQL = `
SELECT wi.inventory_id,
       i.item_id,
       i.name AS item_name,
       i.category,
       wi.quantity,
       i.unit_price,
       EXISTS (SELECT 1 FROM shippings s WHERE s.inventory_id = wi.inventory_id) AS is_shipping
FROM warehouse_inventory wi
JOIN items i ON i.item_id = wi.item_id
WHERE wi.warehouse_id = ?
ORDER BY wi.inventory_id`

	warehouseInfoSQL = `
SELECT w.warehouse_id AS id,
       w.name AS warehouse_name,
       w.port_id AS connected_port,
       p.name AS port_name,
       p.country,
       w.capacity,
       COALESCE(SUM(wi.quantity), 0) AS total_items,
       w.capacity - COALESCE(SUM(wi.quantity), 0) AS capacity_remaining
FROM warehouses w
LEFT JOIN ports p ON p.port_id = w.port_id
LEFT JOIN warehouse_inventory wi ON wi.warehouse_id = w.warehouse_id
WHERE w.warehouse_id = ?
GROUP BY w.warehouse_id, w.name, w.port_id, p.name, p.country, w.capacity`

	itemRelationsSQL = `
SELECT wi.warehouse_id,
       w.name AS warehouse_name,
       wi.quantity,
       i.unit_price
FROM items i
JOIN warehouse_inventory wi ON wi.item_id = i.item_id
JOIN warehouses w ON w.warehouse_id = wi.warehouse_id
WHERE i.item_id = ?
ORDER BY wi.inventory_id`

	itemInfoSQL = `
SELECT i.item_id AS id,
       i.name,
       i.category,
       i.unit_price,
       COUNT(wi.inventory_id) AS order_count,
       COALESCE(SUM(wi.quantity), 0) AS total_quantity
FROM items i
LEFT JOIN warehouse_inventory wi ON wi.item_id = i.item_id
WHERE i.item_id = ?
GROUP BY i.item_id, i.name, i.category, i.unit_price`

	inventoryRelationsSQL = `
SELECT w.name AS warehouse_name,
       i.name AS item_name,
       i.category,
       wi.quantity,
       i.unit_price,
       EXISTS (SELECT 1 FROM shippings s WHERE s.inventory_id = wi.inventory_id) AS being_shipped
FROM warehouse_inventory wi
JOIN items i ON i.item_id = wi.item_id
JOIN warehouses w ON w.warehouse_id = wi.warehouse_id
WHERE wi.inventory_id = ?`

	inventoryInfoSQL = `
SELECT wi.inventory_id AS id,
       w.name AS warehouse_name,
       w.port_id AS connected_port,
       p.name AS port_name,
       i.name AS item_name,
       i.category,
       wi.quantity,
       i.unit_price
FROM warehouse_inventory wi
JOIN warehouses w ON w.warehouse_id = wi.warehouse_id
JOIN items i ON i.item_id = wi.item_id
LEFT JOIN ports p ON p.port_id = w.port_id
WHERE wi.inventory_id = ?`

	shippingInfoSQL = `
SELECT sh.shipping_id AS id,
       i.item_id,
       i.name AS item_name,
       wi.quantity,
       sh.from_port AS origin_port,
       sh.into_port AS destination_port,
       w.warehouse_id AS destination_warehouse,
       sh.arrived_at_port,
       sh.loaded_to_truck
FROM shippings sh
JOIN warehouse_inventory wi ON wi.inventory_id = sh.inventory_id
JOIN warehouses w ON w.warehouse_id = wi.warehouse_id
JOIN items i ON i.item_id = wi.item_id
WHERE sh.shipping_id = ?`

	shippingRouteSQL = `
SELECT s.shipping_id,
       o.latitude AS origin_latitude,
       o.longitude AS origin_longitude,
       d.latitude AS destination_latitude,
       d.longitude AS destination_longitude
FROM shippings s
JOIN ports o ON o.port_id = s.from_port
JOIN ports d ON d.port_id = s.into_port
WHERE s.shipping_id = ?`
)
