// Package service defines error values shared by the domain services so
// that handlers can map failures onto HTTP responses. ErrNotFound covers
// id lookups that match no row; ErrConflict covers operations blocked by
// dependent records, such as deleting a venue that still has shows.
package service

import "errors"

var ErrNotFound = errors.New("record not found")

var ErrConflict = errors.New("conflicting dependent records")

// ErrConstraint is returned when an insert references a row that does not
// exist, such as a show pointing at an unknown artist or venue.
var ErrConstraint = errors.New("constraint violation")
