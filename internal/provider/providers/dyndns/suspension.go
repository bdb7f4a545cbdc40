package dyndns

import (
	"fmt"
	"time"
)

// Suspension is the backoff state of a service. The zero value
// is an inactive suspension.
type Suspension struct {
	indefinite bool
	cycles     uint32
}

// serverDownCooldown is how long a service is not contacted after
// it reported a server side failure.
const serverDownCooldown = 30 * time.Minute

// SuspendFor suspends for the number of update cycles
// needed to wait for the cooldown given the update rate.
// It returns the number of cycles, which is 0 in fire-once mode.
func (s *Suspension) SuspendFor(cooldown, updateRate time.Duration) (cycles uint32) {
	if updateRate > 0 {
		cycles = uint32(cooldown / updateRate)
	}
	s.indefinite = false
	s.cycles = cycles
	return cycles
}

func (s *Suspension) SuspendIndefinitely() {
	s.indefinite = true
	s.cycles = 0
}

// Check returns true if the service is suspended, in which case
// one remaining cycle is consumed.
func (s *Suspension) Check() (suspended bool) {
	switch {
	case s.indefinite:
		return true
	case s.cycles > 0:
		s.cycles--
		return true
	default:
		return false
	}
}

func (s Suspension) Cycles() (cycles uint32, indefinite bool) {
	return s.cycles, s.indefinite
}

func (s Suspension) String() string {
	if s.indefinite {
		return "indefinitely"
	}
	return fmt.Sprintf("for %d more cycles", s.cycles)
}
