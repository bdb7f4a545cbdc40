package update

import (
	"context"
	"errors"
	"fmt"
	"net/netip"

	"github.com/qdm12/dynners/internal/constants"
	"github.com/qdm12/dynners/internal/healthchecksio"
	"github.com/qdm12/dynners/internal/models"
)

// cycle refreshes all the IPs, updates the services depending on
// an IP which changed and saves the persistent state if needed.
func (r *Runner) cycle(ctx context.Context) (errs []error) {
	ipErrors, anyDirty := r.refreshIPs(ctx)
	r.setIPErrors(ipErrors)
	errs = append(errs, ipErrors...)

	for _, target := range r.targets {
		if !r.dependencyDirty(target) {
			continue
		}
		err := r.updateTarget(ctx, target)
		if err != nil {
			errs = append(errs, err)
		}
	}

	if anyDirty {
		r.saveState()
	}

	healthchecksIOState := healthchecksio.Ok
	var log string
	if len(errs) > 0 {
		healthchecksIOState = healthchecksio.Fail
		log = errors.Join(errs...).Error()
	}
	err := r.hioClient.Ping(ctx, healthchecksIOState, log)
	if err != nil {
		r.logger.Error("pinging healthchecks.io failed: " + err.Error())
	}

	return errs
}

func (r *Runner) refreshIPs(ctx context.Context) (errs []error, anyDirty bool) {
	for _, name := range r.ipNames {
		dynamicIP := r.ips[name]
		err := dynamicIP.Refresh(ctx)
		if err != nil {
			r.logger.Error("Unable to update IP " + name + ", reason: " + err.Error())
			errs = append(errs, fmt.Errorf("IP %s: %w", name, err))
		}
		if dynamicIP.Dirty() {
			r.logger.Debug("IP " + name + " changed to " + dynamicIP.Address().String())
			anyDirty = true
		}
	}
	return errs, anyDirty
}

func (r *Runner) dependencyDirty(target Target) bool {
	for _, name := range target.IPs {
		if r.ips[name].Dirty() {
			return true
		}
	}
	return false
}

// dependencyAddresses returns the first resolved IPv4 address and the
// first resolved IPv6 address among the IPs the target depends on.
func (r *Runner) dependencyAddresses(target Target) (ipv4, ipv6 netip.Addr) {
	for _, name := range target.IPs {
		address := r.ips[name].Address()
		switch {
		case !address.IsValid():
		case address.Is4() && !ipv4.IsValid():
			ipv4 = address
		case address.Is6() && !ipv6.IsValid():
			ipv6 = address
		default:
			r.logger.Debug("DDNS service " + target.Name + ": ignoring IP " + name +
				" " + address.String() + " since an address of the same version is already used")
		}
	}
	return ipv4, ipv6
}

func (r *Runner) updateTarget(ctx context.Context, target Target) (err error) {
	ipv4, ipv6 := r.dependencyAddresses(target)
	if !ipv4.IsValid() && !ipv6.IsValid() {
		r.logger.Warn("Skipping DDNS service " + target.Name +
			" because none of its IP addresses is resolved")
		return nil
	}

	updated, err := target.Provider.Update(ctx, r.client, ipv4, ipv6)
	status := models.ServiceStatus{
		Name:      target.Name,
		Service:   string(target.Service),
		Addresses: updated,
		Time:      r.timeNow(),
	}

	switch {
	case err != nil:
		message := "DDNS service " + target.Name + " failed, reason: " + err.Error()
		r.logger.Error(message)
		r.shoutrrrClient.ServiceFailed(target.Name, err)
		status.Status = constants.FAIL
		status.Message = err.Error()
		err = fmt.Errorf("DDNS service %s: %w", target.Name, err)
	case len(updated) == 0:
		r.logger.Info("Tried to update DDNS service " + target.Name +
			", but no changes were made")
		status.Status = constants.UPTODATE
	default:
		for _, address := range updated {
			r.logger.Info("Updated DDNS service " + target.Name +
				" with IP " + address.String())
		}
		status.Status = constants.SUCCESS
	}

	r.setStatus(status)
	return err
}
