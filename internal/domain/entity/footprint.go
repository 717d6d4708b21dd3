package entity

// Footprint huella física de una parte (0603, SOT-23, TO-220...). Nombre
// único; la referencia desde Part es opcional.
type Footprint struct {
	ID   int64
	Name string
}
