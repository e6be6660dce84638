package handler

import "errors"

var (
	// ErrSchemaRead is returned when the schema file cannot be read.
	ErrSchemaRead = errors.New("handler: failed to read schema file")

	// ErrSchemaParse is returned when the schema file is not valid YAML
	// or defines no fields.
	ErrSchemaParse = errors.New("handler: failed to parse schema")
)
