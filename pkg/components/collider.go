package components

import (
	"fmt"
	"math"
)

// Collider is a simple sphere collision volume (spec.md §3). Continuous
// collision detection and jointed assemblies are out of scope (spec.md §1
// Non-goals); this component only carries the data a future broad-phase
// would consume.
type Collider struct {
	SphereRadius float64
	LayerMask    uint32
}

// Validate enforces spec.md §3: "present ⇒ radius finite" (and positive,
// per the Collider field table: "sphere radius (>0)").
func (c Collider) Validate() error {
	if math.IsNaN(c.SphereRadius) || math.IsInf(c.SphereRadius, 0) {
		return fmt.Errorf("collider: radius is not finite")
	}
	if c.SphereRadius <= 0 {
		return fmt.Errorf("collider: radius must be > 0, got %.6f", c.SphereRadius)
	}
	return nil
}
