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

package app

import (
	"context"

	"github.com/mendersoftware/go-lib-micro/log"
	"github.com/mendersoftware/go-lib-micro/requestid"

	"github.com/mendersoftware/unifi-restarter/client/unifi"
	"github.com/mendersoftware/unifi-restarter/model"
)

// App interface describes app objects
//
//go:generate ../utils/mockgen.sh
type App interface {
	Run(ctx context.Context) (*model.RunResult, error)
	ListSites(ctx context.Context) ([]model.Site, error)
}

// Config holds the decision parameters of a run
type Config struct {
	UptimeLimit int
	BatchSize   int
	DryRun      bool
	// AbortOnFailure stops the batch at the first failed restart
	AbortOnFailure bool
}

// app is an app object
type app struct {
	controller unifi.Client
	reporter   *Reporter
	Config
}

// New initializes a new restarter App
func New(controller unifi.Client, reporter *Reporter, config Config) App {
	return &app{
		controller: controller,
		reporter:   reporter,
		Config:     config,
	}
}

func (a *app) fatal(ctx context.Context, category string, err error) error {
	fatal := NewFatalError(category, err)
	a.reporter.Fatal(detach(ctx), fatal)
	return fatal
}

func (a *app) login(ctx context.Context) error {
	if err := a.controller.Login(ctx); err != nil {
		return a.fatal(ctx, loginErrorCategory(err), err)
	}
	return nil
}

// detach returns a context carrying the logger and run ID of ctx that
// outlives the cancellation of ctx
func detach(ctx context.Context) context.Context {
	detached := log.WithContext(context.Background(), log.FromContext(ctx))
	return requestid.WithContext(detached, requestid.FromContext(ctx))
}

// logout ends the controller session, even when ctx was cancelled
func (a *app) logout(ctx context.Context) {
	if err := a.controller.Logout(detach(ctx)); err != nil {
		log.FromContext(ctx).Warnf("failed to log out from controller: %v", err)
	}
}

// Run classifies the inventory and restarts one batch of overdue access
// points. Only controller session and inventory failures are returned as
// errors; failed restarts are recorded in the result.
func (a *app) Run(ctx context.Context) (*model.RunResult, error) {
	l := log.FromContext(ctx)

	if err := a.login(ctx); err != nil {
		return nil, err
	}
	defer a.logout(ctx)

	inventory, err := a.controller.ListDevices(ctx)
	if err != nil {
		return nil, a.fatal(ctx, CategoryInventory, err)
	}

	classification := model.Classify(inventory, a.UptimeLimit)
	for _, rejected := range classification.Rejected {
		l.Warnf("skipping malformed inventory entry #%d: %v",
			rejected.Index, rejected.Err)
	}
	a.reporter.Classification(classification, a.BatchSize)

	result := &model.RunResult{
		Classification: classification,
		Selected:       model.SelectBatch(classification.Overdue, a.BatchSize),
		Outcomes:       []model.RestartOutcome{},
	}
	if len(result.Selected) == 0 {
		a.reporter.NothingToDo()
		return result, nil
	}

	a.reporter.Selection(ctx, result.Selected)
	for i, dev := range result.Selected {
		if ctx.Err() != nil {
			l.Warnf("run interrupted, %d access points left unprocessed",
				len(result.Selected)-i)
			result.Aborted = true
			break
		}
		outcome := a.restart(ctx, dev)
		result.Outcomes = append(result.Outcomes, outcome)
		if outcome.Failed() && a.AbortOnFailure && i < len(result.Selected)-1 {
			l.Warn("aborting batch after failed restart")
			result.Aborted = true
			break
		}
	}
	// an interrupted run still delivers its summary
	a.reporter.Summary(detach(ctx), result)
	return result, nil
}

func (a *app) restart(ctx context.Context, dev model.Device) model.RestartOutcome {
	outcome := model.RestartOutcome{Device: dev, DryRun: a.DryRun}
	a.reporter.Restarting(dev, a.DryRun)
	if a.DryRun {
		return outcome
	}
	if err := a.controller.RestartDevice(ctx, dev.MAC); err != nil {
		log.FromContext(ctx).
			WithField("mac", dev.MAC).
			WithField("name", dev.Name).
			Errorf("failed to restart access point: %v", err)
		a.reporter.RestartFailed(dev, err)
		outcome.Err = err
	}
	return outcome
}

// ListSites lists the sites known to the controller
func (a *app) ListSites(ctx context.Context) ([]model.Site, error) {
	if err := a.login(ctx); err != nil {
		return nil, err
	}
	defer a.logout(ctx)

	sites, err := a.controller.ListSites(ctx)
	if err != nil {
		return nil, a.fatal(ctx, CategoryInventory, err)
	}
	a.reporter.Sites(sites)
	return sites, nil
}
