package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID allocates an entity id with a millisecond timestamp and a random
// suffix, so concurrent creations in the same millisecond cannot collide.
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), uuid.NewString()[:8])
}
