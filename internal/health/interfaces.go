package health

import (
	"context"

	"github.com/qdm12/dynners/internal/models"
)

//go:generate mockgen -destination=mock_$GOPACKAGE/$GOFILE . Runner,Logger

type Runner interface {
	Healthy() (err error)
	Statuses() (statuses []models.ServiceStatus)
	ForceUpdate(ctx context.Context) (errs []error)
}

type Logger interface {
	Info(s string)
	Warn(s string)
	Error(s string)
}
