package update

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/qdm12/dynners/internal/models"
)

// Target is a DDNS service to update with the addresses
// of the IPs it depends on.
type Target struct {
	Name     string
	Service  models.Provider
	IPs      []string
	Provider Provider
}

type Settings struct {
	// IPs maps each IP name to its dynamic IP.
	IPs     map[string]DynamicIP
	Targets []Target
	Client  *http.Client
	// Period is the time between two cycles. If it is zero,
	// Run returns after a single cycle.
	Period time.Duration
	// ConfigHash is the fingerprint of the configuration
	// file stored in the persistent state.
	ConfigHash     uint64
	StateSaver     StateSaver
	HealthchecksIO HealthchecksIOClient
	Shoutrrr       ShoutrrrClient
	Logger         Logger
	TimeNow        func() time.Time
}

var ErrNotRunning = errors.New("updater is not running")

type Runner struct {
	ips            map[string]DynamicIP
	ipNames        []string
	targets        []Target
	client         *http.Client
	period         time.Duration
	configHash     uint64
	stateSaver     StateSaver
	hioClient      HealthchecksIOClient
	shoutrrrClient ShoutrrrClient
	logger         Logger
	timeNow        func() time.Time

	force       chan struct{}
	forceResult chan []error
	// stopped is closed when Run returns.
	stopped chan struct{}

	statusMutex sync.RWMutex
	statuses    map[string]models.ServiceStatus
	lastErrors  []error
}

func NewRunner(settings Settings) *Runner {
	ipNames := make([]string, 0, len(settings.IPs))
	for name := range settings.IPs {
		ipNames = append(ipNames, name)
	}
	sort.Strings(ipNames)

	return &Runner{
		ips:            settings.IPs,
		ipNames:        ipNames,
		targets:        settings.Targets,
		client:         newLogClient(settings.Client, settings.Logger),
		period:         settings.Period,
		configHash:     settings.ConfigHash,
		stateSaver:     settings.StateSaver,
		hioClient:      settings.HealthchecksIO,
		shoutrrrClient: settings.Shoutrrr,
		logger:         settings.Logger,
		timeNow:        settings.TimeNow,
		force:          make(chan struct{}),
		forceResult:    make(chan []error),
		stopped:        make(chan struct{}),
		statuses:       make(map[string]models.ServiceStatus, len(settings.Targets)),
	}
}

// Run runs a first cycle and then one cycle every period, until the
// context is canceled. It returns right after the first cycle if
// the period is zero. It must be called only once.
func (r *Runner) Run(ctx context.Context) {
	defer close(r.stopped)
	r.cycle(ctx)
	if r.period == 0 {
		return
	}

	ticker := time.NewTicker(r.period)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			r.cycle(ctx)
		case <-r.force:
			r.forceResult <- r.cycle(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// ForceUpdate runs a cycle right away and returns its errors.
// It blocks until the cycle completes or the context is canceled,
// and fails right away if Run has returned.
func (r *Runner) ForceUpdate(ctx context.Context) (errs []error) {
	select {
	case r.force <- struct{}{}:
	case <-r.stopped:
		return []error{ErrNotRunning}
	case <-ctx.Done():
		return []error{ctx.Err()}
	}

	select {
	case errs = <-r.forceResult:
	case <-ctx.Done():
		errs = []error{ctx.Err()}
	}
	return errs
}
