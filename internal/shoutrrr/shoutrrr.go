package shoutrrr

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/containrrr/shoutrrr"
	"github.com/containrrr/shoutrrr/pkg/types"
)

// Client sends dynners events to the configured notification services.
// A client without any address does nothing.
type Client struct {
	sender       sender
	serviceNames []string
	title        string
	logger       Erroer
}

type sender interface {
	Send(message string, params *types.Params) []error
}

func New(settings Settings) (client *Client, err error) {
	settings.setDefaults()
	err = settings.validate()
	if err != nil {
		return nil, fmt.Errorf("validating settings: %w", err)
	}

	addresses := make([]string, len(settings.Addresses))
	serviceNames := make([]string, len(settings.Addresses))
	for i, address := range settings.Addresses {
		addresses[i], err = withDefaultTitle(address, settings.DefaultTitle)
		if err != nil {
			return nil, fmt.Errorf("address %d: %w", i+1, err)
		}
		serviceNames[i], _, _ = strings.Cut(address, ":")
	}

	serviceRouter, err := shoutrrr.CreateSender(addresses...)
	if err != nil {
		return nil, fmt.Errorf("creating service router: %w", err)
	}

	return &Client{
		sender:       serviceRouter,
		serviceNames: serviceNames,
		title:        settings.DefaultTitle,
		logger:       settings.Logger,
	}, nil
}

// Launched notifies the agent started watching the given
// number of DDNS services.
func (c *Client) Launched(servicesCount int) {
	c.send(c.title, "Launched with "+strconv.Itoa(servicesCount)+" DDNS services to update")
}

// ServiceFailed notifies the update of a DDNS service failed.
func (c *Client) ServiceFailed(service string, err error) {
	c.send(c.title+": "+service+" failed",
		"DDNS service "+service+" failed, reason: "+err.Error())
}

// Fatal notifies the agent stopped or could not start because of err.
func (c *Client) Fatal(err error) {
	c.send(c.title+": fatal error", err.Error())
}

func (c *Client) send(title, message string) {
	if len(c.serviceNames) == 0 {
		return
	}
	params := types.Params{"title": title}
	errs := c.sender.Send(message, &params)
	for i, err := range errs {
		if err != nil {
			c.logger.Error(c.serviceNames[i] + ": " + err.Error())
		}
	}
}

// withDefaultTitle sets the title query parameter of the address
// if it is not already set, including set to an empty value.
func withDefaultTitle(address, defaultTitle string) (updated string, err error) {
	u, err := url.Parse(address)
	if err != nil {
		return "", fmt.Errorf("parsing address as URL: %w", err)
	}

	values := u.Query()
	if values.Has("title") {
		return address, nil
	}

	values.Set("title", defaultTitle)
	u.RawQuery = values.Encode()
	return u.String(), nil
}
