package domain

import "errors"

// input and business errors, safe to show to the user
var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrDuplicateName = errors.New("Restaurant already exists") //nolint:staticcheck // user-facing message
	ErrNoRestaurants = errors.New("No restaurants found!")     //nolint:staticcheck // user-facing message
)

// storage faults, opaque to the user
var (
	ErrStorageInit  = errors.New("storage init failed")
	ErrStorageRead  = errors.New("storage read failed")
	ErrStorageWrite = errors.New("storage write failed")
)

// IsStorageError reports whether err is one of the storage faults
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorageInit) || errors.Is(err, ErrStorageRead) || errors.Is(err, ErrStorageWrite)
}
