package domain

import "errors"

var (
	// ErrInvalidDoughWeight is returned when the dough weight field holds a
	// non-numeric, non-skip value
	ErrInvalidDoughWeight = errors.New("invalid dough weight: enter a number or '-'")

	// ErrInvalidCapacity is returned when the capacity field holds a
	// non-numeric, non-skip value
	ErrInvalidCapacity = errors.New("invalid capacity: enter a whole number or '-'")

	// ErrNoProductIdentified is returned when neither selection nor free-text
	// parsing yields a product above the match threshold
	ErrNoProductIdentified = errors.New("could not identify a valid product from the input")

	// ErrNoMachinesForProduct is returned when the catalog has no record
	// specified for the resolved product
	ErrNoMachinesForProduct = errors.New("no machines found for product")

	// ErrCatalogUnavailable is returned when the catalog source cannot be read
	ErrCatalogUnavailable = errors.New("catalog source unavailable")
)
