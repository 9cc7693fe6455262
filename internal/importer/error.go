package importer

import "errors"

var (
	ErrJobNotFound   = errors.New("import job not found")
	ErrJobNotMapped  = errors.New("import job is not in mapped state")
	ErrWrongStore    = errors.New("import job belongs to a different store")
	ErrUnreadableCSV = errors.New("stored csv content is unreadable")
)
