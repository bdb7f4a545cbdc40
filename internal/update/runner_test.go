package update

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/qdm12/dynners/internal/healthchecksio"
	"github.com/stretchr/testify/assert"
)

func Test_Runner_Run(t *testing.T) {
	t.Parallel()

	t.Run("fire once", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		runner, mocks := newTestRunner(ctrl, 0)

		ctx := context.Background()
		mocks.home.EXPECT().Refresh(ctx).Return(nil)
		mocks.home.EXPECT().Dirty().Return(false).AnyTimes()
		mocks.hioClient.EXPECT().Ping(ctx, healthchecksio.Ok, "").Return(nil)

		runner.Run(ctx)

		errs := runner.ForceUpdate(ctx)
		assert.Equal(t, []error{ErrNotRunning}, errs)
	})

	t.Run("periodic until canceled", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		runner, mocks := newTestRunner(ctrl, time.Hour)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		mocks.home.EXPECT().Refresh(ctx).Return(nil).Times(2)
		mocks.home.EXPECT().Dirty().Return(false).AnyTimes()
		mocks.hioClient.EXPECT().Ping(ctx, healthchecksio.Ok, "").Return(nil).Times(2)

		done := make(chan struct{})
		go func() {
			defer close(done)
			runner.Run(ctx)
		}()

		errs := runner.ForceUpdate(ctx)
		assert.Empty(t, errs)

		cancel()
		<-done
	})
}

func Test_Runner_ForceUpdate_canceled(t *testing.T) {
	t.Parallel()

	runner := &Runner{force: make(chan struct{})}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	errs := runner.ForceUpdate(ctx)

	assert.Equal(t, []error{context.Canceled}, errs)
}
