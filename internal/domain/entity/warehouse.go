package entity

import "time"

// Warehouse representa una bodega o sucursal donde se almacena inventario (multi-bodega).
type Warehouse struct {
	ID        string
	Name      string
	Address   string
	City      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
