package entity

// Location ubicación física de almacenamiento (cajón, estante, bolsa).
// Nombre único. Su eliminación se rechaza mientras exista stock que la
// referencie (restrict, a diferencia del cascade de Part).
type Location struct {
	ID          int64
	Name        string
	Description *string
}
