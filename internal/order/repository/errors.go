package repository

import "errors"

var (
	ErrFailedToGet     = errors.New("failed to get record")
	ErrFailedToList    = errors.New("failed to list records")
	ErrFailedToMigrate = errors.New("failed to migrate schema")
	ErrFailedToSeed    = errors.New("failed to seed records")
)
