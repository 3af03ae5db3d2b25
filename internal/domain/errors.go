package domain

import "errors"

var (
	// Input workbook, sheet or credential file could not be read.
	ErrDataAccess = errors.New("data access")
	// A required column is absent from the input sheet.
	ErrSchema = errors.New("schema")
	// The routing service answered, but not with the expected shape.
	ErrMalformedResponse = errors.New("malformed routing response")
	// The request to the routing service failed at the connection level.
	ErrTransport = errors.New("routing transport")
)
