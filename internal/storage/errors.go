// Copyright 2025 StockWise Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrDuplicateKey = errors.New("duplicate key violation")
	ErrInvalidID    = errors.New("invalid document id")
)

// IsDuplicateKeyError checks if the error is a MongoDB unique index violation.
func IsDuplicateKeyError(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
