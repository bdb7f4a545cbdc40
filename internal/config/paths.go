package config

import (
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Paths struct {
	// Config is the configuration file path. If empty,
	// the default configuration file paths are tried in order.
	Config *string
}

func (p *Paths) setDefaults() {
	p.Config = gosettings.DefaultPointer(p.Config, "")
}

func (p Paths) Validate() (err error) {
	return nil
}

func (p Paths) toLinesNode() *gotree.Node {
	node := gotree.New("Paths")
	configPath := *p.Config
	if configPath == "" {
		configPath = "[default]"
	}
	node.Appendf("Configuration file: %s", configPath)
	return node
}

func (p *Paths) read(r *reader.Reader) {
	p.Config = r.Get("CONFIG_FILE", reader.ForceLowercase(false))
}
