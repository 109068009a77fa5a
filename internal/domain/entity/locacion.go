package entity

// Locacion representa una ubicación física donde se almacena inventario.
type Locacion struct {
	ID       int64
	TenantID int64
	Nombre   string
	Activa   bool
}
