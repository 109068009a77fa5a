package entity

// Categoria representa una categoría de productos.
type Categoria struct {
	ID       int64
	TenantID int64
	Nombre   string
	Activa   bool
}

// Marca representa la marca de un producto.
type Marca struct {
	ID     int64
	Nombre string
	Activa bool
}

// Persona representa al actor que origina un movimiento (retira o recibe).
// No afecta la matemática de saldos; es solo trazabilidad.
type Persona struct {
	ID     int64
	Nombre string
	Activa bool
}

// Proveedor representa al proveedor asociado a un ingreso.
type Proveedor struct {
	ID     int64
	Nombre string
	Activa bool
}

// UOM representa la unidad de medida de un producto.
type UOM struct {
	ID          int64
	Nombre      string
	Abreviatura string
	Activa      bool
}
