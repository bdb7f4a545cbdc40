package ip

import (
	"context"
	"net/netip"
)

// DynamicIP holds the last known address of a source and whether
// it changed since it was last pushed to the DDNS services.
type DynamicIP struct {
	source  Source
	address netip.Addr
	dirty   bool
}

// NewDynamic returns a dynamic IP without address. It is dirty
// until its first successful resolution.
func NewDynamic(source Source) *DynamicIP {
	return &DynamicIP{
		source: source,
		dirty:  true,
	}
}

// Refresh resolves the source and sets the dirty flag if the address
// is new or changed, and clears it otherwise. On failure the address
// and dirty flag are left untouched.
func (d *DynamicIP) Refresh(ctx context.Context) (err error) {
	address, err := d.source.Resolve(ctx)
	if err != nil {
		return err
	}
	d.dirty = !d.address.IsValid() || address != d.address
	d.address = address
	return nil
}

// Seed sets the address without marking it as changed.
// Addresses not matching the source IP version are ignored.
func (d *DynamicIP) Seed(address netip.Addr) {
	if !d.source.Version().Matches(address) {
		return
	}
	d.address = address
	d.dirty = false
}

// Address returns the last resolved address, which is the invalid
// zero address if it was never resolved.
func (d *DynamicIP) Address() netip.Addr { return d.address }

func (d *DynamicIP) Dirty() bool { return d.dirty }

func (d *DynamicIP) String() string { return d.source.String() }
