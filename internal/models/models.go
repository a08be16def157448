// Package models provides the plain data records exchanged between the engine
// and its collaborators. Records are built fresh per calculation and are not
// mutated after construction.
package models
