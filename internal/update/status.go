package update

import (
	"errors"
	"fmt"
	"sort"

	"github.com/qdm12/dynners/internal/constants"
	"github.com/qdm12/dynners/internal/models"
)

var ErrServiceFailed = errors.New("DDNS service failed")

// Statuses returns the status of each service which was
// updated at least once, sorted by service name.
func (r *Runner) Statuses() (statuses []models.ServiceStatus) {
	r.statusMutex.RLock()
	defer r.statusMutex.RUnlock()
	statuses = make([]models.ServiceStatus, 0, len(r.statuses))
	for _, status := range r.statuses {
		statuses = append(statuses, status)
	}
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Name < statuses[j].Name
	})
	return statuses
}

// Healthy returns an error if an IP could not be resolved during the
// last cycle or if the last update of a service failed.
func (r *Runner) Healthy() (err error) {
	r.statusMutex.RLock()
	errs := make([]error, 0, len(r.lastErrors))
	errs = append(errs, r.lastErrors...)
	r.statusMutex.RUnlock()

	for _, status := range r.Statuses() {
		if status.Status == constants.FAIL {
			errs = append(errs, fmt.Errorf("%w: %s", ErrServiceFailed, status))
		}
	}
	return errors.Join(errs...)
}

func (r *Runner) setStatus(status models.ServiceStatus) {
	r.statusMutex.Lock()
	defer r.statusMutex.Unlock()
	r.statuses[status.Name] = status
}

func (r *Runner) setIPErrors(errs []error) {
	r.statusMutex.Lock()
	defer r.statusMutex.Unlock()
	r.lastErrors = errs
}
