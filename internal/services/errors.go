package services

import (
	"github.com/franciscosanchezn/gin-restaurant-api/internal/store"
)

// Error taxonomy shared with the entity store, re-exported so callers of the
// services do not need to import the store.
var (
	ErrNotFound   = store.ErrNotFound
	ErrValidation = store.ErrValidation
	ErrStorage    = store.ErrStorage
)
