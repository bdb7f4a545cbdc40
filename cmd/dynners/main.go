package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	_ "github.com/breml/rootcerts"
	"github.com/qdm12/dynners/internal/config"
	"github.com/qdm12/dynners/internal/health"
	"github.com/qdm12/dynners/internal/healthchecksio"
	"github.com/qdm12/dynners/internal/ip"
	"github.com/qdm12/dynners/internal/models"
	"github.com/qdm12/dynners/internal/params"
	"github.com/qdm12/dynners/internal/persistence"
	"github.com/qdm12/dynners/internal/provider"
	"github.com/qdm12/dynners/internal/shoutrrr"
	"github.com/qdm12/dynners/internal/update"
	"github.com/qdm12/goshutdown"
	"github.com/qdm12/goshutdown/goroutine"
	"github.com/qdm12/goshutdown/order"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gosplash"
	"github.com/qdm12/log"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals
var (
	version = "unknown"
	commit  = "unknown"
	date    = "an unknown date"
)

func main() {
	buildInfo := models.BuildInformation{
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	logger := log.New()

	reader := reader.New(reader.Settings{
		HandleDeprecatedKey: func(source, oldKey, newKey string) {
			logger.Warnf("%q key %s is deprecated, please use %q instead",
				source, oldKey, newKey)
		},
	})

	ctx := context.Background()
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	ctx, cancel := context.WithCancel(ctx)

	errorCh := make(chan error)
	go func() {
		errorCh <- _main(ctx, reader, os.Args, logger, buildInfo, time.Now)
	}()

	select {
	case <-ctx.Done():
		stop()
		logger.Warn("Caught OS signal, shutting down")
	case err := <-errorCh:
		stop()
		close(errorCh)
		if err == nil { // expected exit such as fire-once or healthcheck
			os.Exit(0)
		}
		logger.Error(err.Error())
		cancel()
	}

	const shutdownGracePeriod = 5 * time.Second
	timer := time.NewTimer(shutdownGracePeriod)
	select {
	case err := <-errorCh:
		if !timer.Stop() {
			<-timer.C
		}
		if err != nil {
			logger.Error(err.Error())
		}
		logger.Info("Shutdown successful")
	case <-timer.C:
		logger.Warn("Shutdown timed out")
	}

	os.Exit(1)
}

func _main(ctx context.Context, reader *reader.Reader, args []string, logger log.LoggerInterface,
	buildInfo models.BuildInformation, timeNow func() time.Time) (err error) {
	var flags struct {
		configPath string
		once       bool
	}

	rootCommand := &cobra.Command{
		Use:           "dynners",
		Short:         "Keep DDNS records in sync with dynamically resolved IP addresses",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runAgent(cmd.Context(), reader, logger, buildInfo, timeNow,
				flags.configPath, flags.once)
		},
	}
	rootCommand.Flags().StringVar(&flags.configPath, "config", "",
		"path to the TOML configuration file, overriding CONFIG_FILE")
	rootCommand.Flags().BoolVar(&flags.once, "once", false,
		"run a single update cycle and exit, regardless of the configured update rate")

	rootCommand.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the program version",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Println(buildInfo.String())
		},
	})

	rootCommand.AddCommand(&cobra.Command{
		Use:   "healthcheck",
		Short: "Query the health server of a running instance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Running the program in a separate instance through the Docker
			// built-in healthcheck, in an ephemeral fashion to query the
			// long running instance of the program about its status
			var healthSettings config.Health
			healthSettings.Read(reader)
			healthSettings.SetDefaults()
			err := healthSettings.Validate()
			if err != nil {
				return fmt.Errorf("health settings: %w", err)
			}

			const timeout = 5 * time.Second
			client := &http.Client{Timeout: timeout}
			return health.Query(cmd.Context(), client, *healthSettings.ServerAddress)
		},
	})

	if len(args) > 0 {
		args = args[1:]
	}
	rootCommand.SetArgs(args)
	return rootCommand.ExecuteContext(ctx)
}

func runAgent(ctx context.Context, reader *reader.Reader, logger log.LoggerInterface,
	buildInfo models.BuildInformation, timeNow func() time.Time,
	configPath string, once bool) (err error) {
	printSplash(buildInfo)

	config, err := readConfig(reader, logger, configPath)
	if err != nil {
		return err
	}

	shoutrrrSettings := shoutrrr.Settings{
		Addresses:    config.Shoutrrr.Addresses,
		DefaultTitle: config.Shoutrrr.DefaultTitle,
		Logger:       logger.New(log.SetComponent("shoutrrr")),
	}
	shoutrrrClient, err := shoutrrr.New(shoutrrrSettings)
	if err != nil {
		return fmt.Errorf("setting up Shoutrrr: %w", err)
	}

	paramsReader := params.NewReader(logger)
	parameters, err := paramsReader.Read(*config.Paths.Config, buildInfo.VersionString())
	if err != nil {
		shoutrrrClient.Fatal(err)
		return err
	}
	logger.Info(parameters.String())

	updateRate := parameters.General.UpdateRate
	if once {
		updateRate = 0
	}

	client := &http.Client{Timeout: config.Client.Timeout}
	defer client.CloseIdleConnections()

	stateFile := persistence.NewFile(*parameters.General.PersistentState)
	state := loadState(stateFile, parameters.Raw, logger, timeNow)

	ipEnvironment := ip.Environment{
		Shell:      *parameters.General.Shell,
		UserAgent:  *parameters.General.UserAgent,
		Client:     client,
		Commander:  ip.NewShellCommander(),
		Enumerator: ip.NewOSEnumerator(),
	}
	dynamicIPs, err := createDynamicIPs(parameters.IPs, ipEnvironment, state, logger)
	if err != nil {
		shoutrrrClient.Fatal(err)
		return err
	}

	providerEnvironment := provider.Environment{
		UserAgent:  *parameters.General.UserAgent,
		UpdateRate: updateRate,
		Logger:     logger.New(log.SetComponent("dummy")),
	}
	targets, err := createTargets(parameters.DDNS, providerEnvironment)
	if err != nil {
		shoutrrrClient.Fatal(err)
		return err
	}
	logTargetsCount(len(targets), logger)

	hioClient := healthchecksio.New(client, config.Health.HealthchecksioBaseURL,
		*config.Health.HealthchecksioUUID)

	runner := update.NewRunner(update.Settings{
		IPs:            dynamicIPs,
		Targets:        targets,
		Client:         client,
		Period:         updateRate,
		ConfigHash:     persistence.Hash(parameters.Raw),
		StateSaver:     stateFile,
		HealthchecksIO: hioClient,
		Shoutrrr:       shoutrrrClient,
		Logger:         logger.New(log.SetComponent("updater")),
		TimeNow:        timeNow,
	})

	const goRoutineTimeout = 3 * time.Second
	healthServerHandler, healthServerCtx, healthServerDone := goshutdown.NewGoRoutineHandler(
		"health server", goroutine.OptionTimeout(goRoutineTimeout))
	healthServer := health.NewServer(*config.Health.ServerAddress, runner,
		logger.New(log.SetComponent("health server")))
	go healthServer.Run(healthServerCtx, healthServerDone)

	updaterHandler, updaterCtx, updaterDone := goshutdown.NewGoRoutineHandler(
		"updater", goroutine.OptionTimeout(goRoutineTimeout))
	runnerFinished := make(chan struct{})
	go func() {
		defer close(updaterDone)
		defer close(runnerFinished)
		runner.Run(updaterCtx)
	}()

	orderHandler := goshutdown.NewOrderHandler("dynners",
		order.OptionOnSuccess(func(name string) {
			logger.Info(name + ": terminated")
		}),
		order.OptionOnFailure(func(name string, err error) {
			logger.Warn(name + ": " + err.Error())
		}))
	orderHandler.Append(updaterHandler, healthServerHandler)

	shoutrrrClient.Launched(len(targets))

	select {
	case <-ctx.Done():
	case <-runnerFinished:
		logger.Info("Single update cycle completed")
	}

	err = orderHandler.Shutdown(context.Background())
	if err != nil {
		exitHealthchecksio(hioClient, logger, healthchecksio.Exit1)
		shoutrrrClient.Fatal(err)
		return fmt.Errorf("stopping failed: %w", err)
	}

	exitHealthchecksio(hioClient, logger, healthchecksio.Exit0)
	return nil
}

func printSplash(buildInfo models.BuildInformation) {
	splashSettings := gosplash.Settings{
		User:       "qdm12",
		Repository: "dynners",
		Emails:     []string{"quentin.mcgaw@gmail.com"},
		Version:    buildInfo.Version,
		Commit:     buildInfo.Commit,
		BuildDate:  buildInfo.Date,
		// Sponsor information
		PaypalUser:    "qmcgaw",
		GithubSponsor: "qdm12",
	}
	for _, line := range gosplash.MakeLines(splashSettings) {
		fmt.Println(line)
	}
}

func readConfig(reader *reader.Reader, logger log.LoggerInterface, configPath string) (
	config config.Config, err error) {
	err = config.Read(reader)
	if err != nil {
		return config, fmt.Errorf("reading settings: %w", err)
	}
	if configPath != "" {
		config.Paths.Config = &configPath
	}
	config.SetDefaults()
	err = config.Validate()
	if err != nil {
		return config, fmt.Errorf("settings validation: %w", err)
	}

	logger.Patch(config.Logger.ToOptions()...)
	logger.Info(config.String())

	return config, nil
}

// loadState loads the persistent state, falling back on a new
// state if it cannot be read or if the configuration changed.
func loadState(file *persistence.File, rawConfig []byte,
	logger log.LeveledLogger, timeNow func() time.Time) (state *persistence.State) {
	state, err := file.Load()
	switch {
	case errors.Is(err, os.ErrNotExist):
		return persistence.New(rawConfig, timeNow())
	case err != nil:
		logger.Warn("Couldn't read persistent state file, reason: " + err.Error())
		return persistence.New(rawConfig, timeNow())
	}

	logger.Info("Loaded persistent state.")
	if !state.ValidateAgainst(rawConfig, timeNow()) {
		logger.Info("Discarded the persistent state because config file has changed.")
	}
	return state
}

func createDynamicIPs(settings map[string]ip.Settings, environment ip.Environment,
	state *persistence.State, logger log.LeveledLogger) (
	dynamicIPs map[string]update.DynamicIP, err error) {
	names := make([]string, 0, len(settings))
	for name := range settings {
		names = append(names, name)
	}
	sort.Strings(names)

	dynamicIPs = make(map[string]update.DynamicIP, len(settings))
	for _, name := range names {
		source, err := ip.New(settings[name], environment)
		if err != nil {
			return nil, fmt.Errorf("IP %s: %w", name, err)
		}
		dynamicIP := ip.NewDynamic(source)

		address, ok := state.Addresses[name]
		if ok {
			dynamicIP.Seed(address)
			if dynamicIP.Address().IsValid() {
				logger.Info("Initialized IP " + name +
					" using the persistent state with " + address.String())
			}
		}
		dynamicIPs[name] = dynamicIP
	}
	return dynamicIPs, nil
}

func createTargets(entries []params.DDNS, environment provider.Environment) (
	targets []update.Target, err error) {
	targets = make([]update.Target, len(entries))
	for i, entry := range entries {
		ddnsProvider, err := provider.New(entry.Service, entry.Data, environment)
		if err != nil {
			return nil, fmt.Errorf("DDNS service %s: %w", entry.Name, err)
		}
		targets[i] = update.Target{
			Name:     entry.Name,
			Service:  entry.Service,
			IPs:      entry.IPs,
			Provider: ddnsProvider,
		}
	}
	return targets, nil
}

func logTargetsCount(targetsCount int, logger log.LeveledLogger) {
	switch targetsCount {
	case 0:
		logger.Warn("Found no DDNS service to update")
	case 1:
		logger.Info("Found a single DDNS service to update")
	default:
		logger.Info("Found " + strconv.Itoa(targetsCount) + " DDNS services to update")
	}
}

func exitHealthchecksio(hioClient *healthchecksio.Client,
	logger log.LoggerInterface, state healthchecksio.State) {
	const timeout = 3 * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	err := hioClient.Ping(ctx, state, "")
	if err != nil {
		logger.Error(err.Error())
	}
}
