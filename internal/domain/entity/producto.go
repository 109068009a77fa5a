package entity

// Producto representa un producto o SKU del inventario (referencia externa;
// este servicio solo lo consulta, el CRUD vive en otro sistema).
type Producto struct {
	ID          int64
	TenantID    int64
	SKU         string // vacío si no tiene
	Nombre      string
	Activo      bool
	MarcaID     *int64
	CategoriaID *int64
	UOMID       *int64
}
