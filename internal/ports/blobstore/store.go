package blobstore

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("blob not found")

type Driver string

const (
	DriverMemory     Driver = "memory"
	DriverFilesystem Driver = "fs"
	DriverSQLite     Driver = "sqlite"
	DriverPostgres   Driver = "postgres"
	DriverS3         Driver = "s3"
)

// Store es un almacén clave/blob con get/set síncronos.
// Put sobrescribe; Get devuelve ErrNotFound si la clave nunca se escribió.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, data []byte) error
	Driver() Driver
}
