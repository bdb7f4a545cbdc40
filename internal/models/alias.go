package models

type (
	// Provider is a possible DNS provider.
	Provider string
	// Status is the status of a service after an update cycle.
	Status string
)
