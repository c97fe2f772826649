package storage

import (
	"errors"
)

var (
	// ErrNotFound is returned when a leaf or snapshot is not present in
	// storage. For leaves this denotes a sparse slot, not a failure: the
	// index was simply never written at or before the queried height.
	//
	// Note: there is another not found error: badger.ErrKeyNotFound. The
	// difference is that badger.ErrKeyNotFound is returned by the badger API,
	// while modules in storage/badger and storage/badger/operation return
	// ErrNotFound for not found errors.
	ErrNotFound = errors.New("key not found")

	ErrAlreadyExists = errors.New("key already exists")
)
