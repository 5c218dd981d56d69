// Package store defines the storage interfaces the association engine is
// built on. Implementations live in subpackages (see store/gorm).
package store
