package domain

import "errors"

var (
	ErrHostNotFound        = errors.New("host not found")
	ErrManualNotFound      = errors.New("manual not found")
	ErrPuzzleKindNotFound  = errors.New("puzzle kind not found")
	ErrEmptyPuzzleKind     = errors.New("puzzle kind has no challenges")
	ErrDuplicateHost       = errors.New("duplicate host address")
	ErrEntryHostMissing    = errors.New("entry host missing from network")
	ErrInvalidManualSize   = errors.New("manual size must be positive")
	ErrDuplicateListingKey = errors.New("duplicate file name in listing")
)
