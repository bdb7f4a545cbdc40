package update

import (
	"github.com/qdm12/dynners/internal/persistence"
)

// saveState writes a new persistent state with the
// currently known address of each IP.
func (r *Runner) saveState() {
	state := persistence.NewWithHash(r.configHash, r.timeNow())
	for name, dynamicIP := range r.ips {
		address := dynamicIP.Address()
		if !address.IsValid() {
			continue
		}
		state.Addresses[name] = address
	}

	err := r.stateSaver.Save(state)
	if err != nil {
		r.logger.Warn("Couldn't write to persistent state file: " + err.Error())
	}
}
