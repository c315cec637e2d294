package state

import (
	"fmt"

	"github.com/google/uuid"
)

// NewLayerID returns a unique, stable layer id.
func NewLayerID() string {
	return uuid.NewString()
}

// LayerName is the display name of the n-th layer created in a stack.
func LayerName(n int) string {
	return fmt.Sprintf("Layer %d", n)
}
