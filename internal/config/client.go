package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
)

type Client struct {
	Timeout time.Duration
}

func (c *Client) setDefaults() {
	const defaultTimeout = 10 * time.Second
	c.Timeout = gosettings.DefaultComparable(c.Timeout, defaultTimeout)
}

var ErrHTTPTimeoutTooLow = errors.New("HTTP timeout is too low")

func (c Client) Validate() (err error) {
	const minTimeout = time.Second
	if c.Timeout < minTimeout {
		return fmt.Errorf("%w: %s must be at least %s",
			ErrHTTPTimeoutTooLow, c.Timeout, minTimeout)
	}
	return nil
}

func (c Client) toLinesNode() *gotree.Node {
	node := gotree.New("HTTP client")
	node.Appendf("Timeout: %s", c.Timeout)
	return node
}

func (c *Client) read(r *reader.Reader) (err error) {
	c.Timeout, err = r.Duration("HTTP_TIMEOUT")
	return err
}
