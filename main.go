// Copyright 2026 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.

package main

import (
	"context"
	"fmt"
	stdlog "log"
	"os"
	"os/signal"
	"strings"

	"github.com/google/uuid"
	"github.com/mendersoftware/go-lib-micro/config"
	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/mendersoftware/go-lib-micro/requestid"
	"github.com/urfave/cli"
	"golang.org/x/sys/unix"

	"github.com/mendersoftware/unifi-restarter/app"
	"github.com/mendersoftware/unifi-restarter/client/unifi"
	dconfig "github.com/mendersoftware/unifi-restarter/config"
	"github.com/mendersoftware/unifi-restarter/model"
)

var Version string = "unknown"

// Process exit codes
const (
	exitOK      = 0
	exitFatal   = 1
	exitPartial = 2
)

// flagSettings maps command line flags onto configuration keys; flags
// given on the command line take precedence over every other source
var flagSettings = map[string]string{
	"host":             dconfig.SettingControllerHost,
	"port":             dconfig.SettingControllerPort,
	"user":             dconfig.SettingControllerUser,
	"password":         dconfig.SettingControllerPassword,
	"site":             dconfig.SettingControllerSite,
	"insecure":         dconfig.SettingControllerInsecure,
	"unifi-os":         dconfig.SettingControllerUniFiOS,
	"timeout":          dconfig.SettingControllerTimeout,
	"uptime-limit":     dconfig.SettingUptimeLimit,
	"batch-size":       dconfig.SettingBatchSize,
	"dry-run":          dconfig.SettingDryRun,
	"abort-on-failure": dconfig.SettingAbortOnFailure,
	"notify-url":       dconfig.SettingNotifyURL,
	"notify-subject":   dconfig.SettingNotifySubject,
	"debug":            dconfig.SettingDebugLog,
}

// flagSlackWebhook is the legacy name of --notify-url, which wins when
// both are given
const flagSlackWebhook = "slack-webhook"

func main() {
	doMain(os.Args)
}

func doMain(args []string) {
	err := newCLIApp(cmdRestart, cmdSites).Run(args)
	if err != nil {
		stdlog.Fatal(err)
	}
}

// runFlags are accepted both before and after the command name
func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "host",
			Usage: "UniFi controller hostname",
		},
		&cli.IntFlag{
			Name:  "port",
			Usage: "UniFi controller port",
			Value: dconfig.SettingControllerPortDefault,
		},
		&cli.StringFlag{
			Name:  "user",
			Usage: "UniFi console username",
		},
		&cli.StringFlag{
			Name:  "password",
			Usage: "UniFi console password",
		},
		&cli.StringFlag{
			Name:  "site",
			Usage: "UniFi site name",
			Value: dconfig.SettingControllerSiteDefault,
		},
		&cli.BoolTFlag{
			Name:  "insecure",
			Usage: "Accept self-signed controller certificates",
		},
		&cli.BoolFlag{
			Name:  "unifi-os",
			Usage: "The controller runs on UniFi OS (UDM, Cloud Key Gen2+)",
		},
		&cli.IntFlag{
			Name:  "timeout",
			Usage: "Timeout of a single controller request in seconds",
			Value: dconfig.SettingControllerTimeoutDefault,
		},
		&cli.IntFlag{
			Name:  "uptime-limit",
			Usage: "Restart access points after this amount of `DAYS`",
			Value: dconfig.SettingUptimeLimitDefault,
		},
		&cli.IntFlag{
			Name:  "batch-size",
			Usage: "Restart this amount of access points per invocation",
			Value: dconfig.SettingBatchSizeDefault,
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Do not actually restart anything",
		},
		&cli.BoolFlag{
			Name:  "abort-on-failure",
			Usage: "Stop the batch at the first failed restart",
		},
		&cli.StringFlag{
			Name: "notify-url",
			Usage: "Notifier `URL`: a Slack webhook (https://...) " +
				"or a NATS server (nats://host:port/subject)",
		},
		&cli.StringFlag{
			Name:  flagSlackWebhook,
			Usage: "Slack webhook `URL`, same as --notify-url",
		},
		&cli.StringFlag{
			Name:  "notify-subject",
			Usage: "NATS subject used when --notify-url names none",
			Value: dconfig.SettingNotifySubjectDefault,
		},
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
}

func newCLIApp(restart, sites cli.ActionFunc) *cli.App {
	var configPath string

	flags := []cli.Flag{
		&cli.StringFlag{
			Name: "config",
			Usage: "Configuration `FILE`. " +
				"Supports JSON, TOML, YAML and HCL " +
				"formatted configs.",
			Destination: &configPath,
		},
		&cli.BoolFlag{
			Name:  "list-sites",
			Usage: "List all known sites and exit",
		},
	}
	cliApp := &cli.App{
		Flags: append(flags, runFlags()...),
		Commands: []cli.Command{
			{
				Name:   "restart",
				Usage:  "Restart a batch of access points exceeding the uptime limit",
				Flags:  runFlags(),
				Action: withFlags(restart),
			},
			{
				Name:   "sites",
				Usage:  "List all sites known to the controller",
				Flags:  runFlags(),
				Action: withFlags(sites),
			},
		},
	}
	cliApp.Usage = "Restart long running UniFi access points"
	cliApp.Version = Version
	cliApp.Action = func(args *cli.Context) error {
		if args.Bool("list-sites") {
			return sites(args)
		}
		return restart(args)
	}

	cliApp.Before = func(args *cli.Context) error {
		err := config.FromConfigFile(configPath, dconfig.Defaults)
		if err != nil {
			return cli.NewExitError(
				fmt.Sprintf("error loading configuration: %s", err),
				exitFatal)
		}

		// Enable setting config values by environment variables
		config.Config.SetEnvPrefix("UNIFI_RESTARTER")
		config.Config.AutomaticEnv()
		config.Config.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

		applyFlags(args)
		return nil
	}
	return cliApp
}

// withFlags applies the flags given after the command name on top of the
// global ones
func withFlags(action cli.ActionFunc) cli.ActionFunc {
	return func(args *cli.Context) error {
		applyFlags(args)
		return action(args)
	}
}

// applyFlags copies the flags set in args into the configuration
func applyFlags(args *cli.Context) {
	if args.IsSet(flagSlackWebhook) {
		config.Config.Set(dconfig.SettingNotifyURL, args.String(flagSlackWebhook))
	}
	for flagName, key := range flagSettings {
		if args.IsSet(flagName) {
			config.Config.Set(key, args.String(flagName))
		}
	}
}

type pipeline struct {
	ctx      context.Context
	app      app.App
	notifier app.Notifier
	cancel   context.CancelFunc
}

func (r *pipeline) Close() {
	if r.notifier != nil {
		_ = r.notifier.Close()
	}
	r.cancel()
}

// setup builds the pipeline for a single run out of the loaded
// configuration
func setup(parent context.Context, conf config.Reader) (*pipeline, error) {
	ctx, cancel := signal.NotifyContext(parent, unix.SIGINT, unix.SIGTERM)

	settings, err := dconfig.Load(conf)
	if err != nil {
		cancel()
		fatal := app.NewFatalError(app.CategoryConfiguration, err)
		app.NewReporter(os.Stdout, nil).Fatal(ctx, fatal)
		return nil, fatal
	}

	log.Setup(settings.DebugLog)
	runID := uuid.New().String()
	l := log.New(log.Ctx{"run_id": runID})
	ctx = log.WithContext(ctx, l)
	ctx = requestid.WithContext(ctx, runID)

	var notifier app.Notifier
	if settings.NotificationsEnabled() {
		notifier, err = app.NewNotifier(ctx, settings.NotifyURL, settings.NotifySubject)
		if err != nil {
			l.Warnf("notifications disabled for this run: %v", err)
			notifier = nil
		}
	}

	controller := unifi.NewClient(unifi.Options{
		Host:     settings.Host,
		Port:     settings.Port,
		Username: settings.User,
		Password: settings.Password,
		Site:     settings.Site,
		Insecure: settings.Insecure,
		UniFiOS:  settings.UniFiOS,
		Timeout:  settings.Timeout,
	})
	restarter := app.New(
		controller,
		app.NewReporter(os.Stdout, notifier),
		app.Config{
			UptimeLimit:    settings.UptimeLimit,
			BatchSize:      settings.BatchSize,
			DryRun:         settings.DryRun,
			AbortOnFailure: settings.AbortOnFailure,
		},
	)
	return &pipeline{
		ctx:      ctx,
		app:      restarter,
		notifier: notifier,
		cancel:   cancel,
	}, nil
}

func cmdRestart(args *cli.Context) error {
	rt, err := setup(context.Background(), config.Config)
	if err != nil {
		return cli.NewExitError("", exitFatal)
	}
	defer rt.Close()
	return runRestart(rt.ctx, rt.app)
}

func cmdSites(args *cli.Context) error {
	rt, err := setup(context.Background(), config.Config)
	if err != nil {
		return cli.NewExitError("", exitFatal)
	}
	defer rt.Close()
	return runListSites(rt.ctx, rt.app)
}

func runRestart(ctx context.Context, restarter app.App) error {
	result, err := restarter.Run(ctx)
	if code := exitCode(result, err); code != exitOK {
		return cli.NewExitError("", code)
	}
	return nil
}

func runListSites(ctx context.Context, restarter app.App) error {
	if _, err := restarter.ListSites(ctx); err != nil {
		return cli.NewExitError("", exitFatal)
	}
	return nil
}

func exitCode(result *model.RunResult, err error) int {
	switch {
	case err != nil:
		return exitFatal
	case result != nil && result.Partial():
		return exitPartial
	}
	return exitOK
}
