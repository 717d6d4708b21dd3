package entity

// Category clasifica las partes (Resistor, Capacitor, IC...). Nombre único,
// datos de referencia de solo-agregar: no hay renombrado en el esquema.
type Category struct {
	ID   int64
	Name string
}
