package export

import "errors"

var (
	ErrNilGraph    = errors.New("export: nil graph")
	ErrNilWriter   = errors.New("export: nil writer")
	ErrSchemaLoad  = errors.New("export: schema load failed")
	ErrSchemaCheck = errors.New("export: document fails schema validation")
)
