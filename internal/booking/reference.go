package booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewReference generates a human-readable booking reference, e.g.
// "FLT-9F3A0C2B". References are assigned once at creation and never
// regenerated; the uuid segment makes collisions negligible.
func NewReference(m Modality) string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return fmt.Sprintf("%s-%s", m.rules().RefPrefix, raw[:8])
}
