package config

import (
	"fmt"

	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

// Config contains the process settings read from the environment.
// The DDNS settings themselves come from the TOML configuration file.
type Config struct {
	Client   Client
	Paths    Paths
	Health   Health
	Logger   Logger
	Shoutrrr Shoutrrr
}

func (c *Config) SetDefaults() {
	c.Client.setDefaults()
	c.Paths.setDefaults()
	c.Health.SetDefaults()
	c.Logger.setDefaults()
	c.Shoutrrr.setDefaults()
}

func (c Config) Validate() (err error) {
	type validator interface {
		Validate() (err error)
	}
	toValidate := []struct {
		name      string
		validator validator
	}{
		{"client", &c.Client},
		{"paths", &c.Paths},
		{"health", &c.Health},
		{"logger", &c.Logger},
		{"shoutrrr", &c.Shoutrrr},
	}

	for _, v := range toValidate {
		err = v.validator.Validate()
		if err != nil {
			return fmt.Errorf("%s settings: %w", v.name, err)
		}
	}

	return nil
}

func (c Config) String() string {
	return c.toLinesNode().String()
}

func (c Config) toLinesNode() *gotree.Node {
	node := gotree.New("Settings summary:")
	node.AppendNode(c.Client.toLinesNode())
	node.AppendNode(c.Paths.toLinesNode())
	node.AppendNode(c.Health.toLinesNode())
	node.AppendNode(c.Logger.toLinesNode())
	node.AppendNode(c.Shoutrrr.ToLinesNode())
	return node
}

func (c *Config) Read(r *reader.Reader) (err error) {
	err = c.Client.read(r)
	if err != nil {
		return fmt.Errorf("reading client settings: %w", err)
	}

	c.Paths.read(r)
	c.Health.Read(r)

	err = c.Logger.read(r)
	if err != nil {
		return fmt.Errorf("reading logger settings: %w", err)
	}

	c.Shoutrrr.read(r)

	return nil
}
