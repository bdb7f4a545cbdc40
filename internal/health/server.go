package health

import (
	"context"
	"net/http"
	"time"
)

type Server struct {
	address string
	logger  Logger
	handler http.Handler
}

func NewServer(address string, runner Runner, logger Logger) *Server {
	return &Server{
		address: address,
		logger:  logger,
		handler: newHandler(runner, logger),
	}
}

// Run serves HTTP until the context is canceled, restarting the
// listener if it crashes. It closes done once shut down.
func (s *Server) Run(ctx context.Context, done chan<- struct{}) {
	defer close(done)
	server := http.Server{
		Addr:              s.address,
		Handler:           s.handler,
		ReadHeaderTimeout: time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		s.logger.Warn("shutting down (context canceled)")
		defer s.logger.Warn("shut down")
		const shutdownGraceDuration = 2 * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGraceDuration)
		defer cancel()
		err := server.Shutdown(shutdownCtx)
		if err != nil {
			s.logger.Error("failed shutting down: " + err.Error())
		}
	}()

	for ctx.Err() == nil {
		s.logger.Info("listening on " + s.address)
		err := server.ListenAndServe()
		if err != nil && ctx.Err() == nil { // server crashed
			s.logger.Error(err.Error())
			s.logger.Info("restarting")
			const restartWait = time.Second
			timer := time.NewTimer(restartWait)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
			}
		}
	}
	<-shutdownDone
}
