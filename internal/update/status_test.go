package update

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/qdm12/dynners/internal/constants"
	"github.com/qdm12/dynners/internal/models"
	"github.com/stretchr/testify/assert"
)

func Test_Runner_Healthy(t *testing.T) {
	t.Parallel()

	runner := &Runner{statuses: map[string]models.ServiceStatus{}}
	runner.setIPErrors([]error{errors.New("IP home: timeout")})
	runner.setStatus(models.ServiceStatus{Name: "b", Status: constants.SUCCESS})
	runner.setStatus(models.ServiceStatus{
		Name:   "a",
		Status: constants.FAIL,
		Time:   time.Unix(0, 0).UTC(),
	})

	err := runner.Healthy()

	assert.ErrorIs(t, err, ErrServiceFailed)
	assert.EqualError(t, err, "IP home: timeout\n"+
		"DDNS service failed: a: failure at 1970-01-01 00:00:00 UTC")
}

func Test_Runner_Healthy_concurrent(t *testing.T) {
	t.Parallel()

	runner := &Runner{statuses: map[string]models.ServiceStatus{}}

	const iterations = 100
	var wg sync.WaitGroup
	wg.Add(2) //nolint:gomnd
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			runner.setIPErrors([]error{errors.New("IP home: timeout")})
			runner.setIPErrors(nil)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < iterations; i++ {
			_ = runner.Healthy()
		}
	}()
	wg.Wait()

	assert.NoError(t, runner.Healthy())
}
