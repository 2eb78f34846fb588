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
	"fmt"
	"io"

	"github.com/mendersoftware/go-lib-micro/log"

	"github.com/mendersoftware/unifi-restarter/model"
)

// Report messages
const (
	MsgNothingToDo   = "Everything is fine, not restarting anything today. Good-Bye!"
	MsgListSites     = "Listing all sites known to the controller:"
	MsgSendSelection = "Sending restart summary message to notifier"
	MsgSendError     = "Posting error message to notifier"
	MsgSendSummary   = "Posting restart failures to notifier"
)

// Reporter writes the operator facing messages of a run to the console
// and forwards the important ones to the notifier, if there is one
type Reporter struct {
	out      io.Writer
	notifier Notifier
}

// NewReporter returns a reporter writing to out; notifier may be nil
func NewReporter(out io.Writer, notifier Notifier) *Reporter {
	return &Reporter{
		out:      out,
		notifier: notifier,
	}
}

func (r *Reporter) println(text string) {
	fmt.Fprintln(r.out, text)
}

// notify forwards text to the notifier. Delivery failures are logged and
// otherwise ignored.
func (r *Reporter) notify(ctx context.Context, announce, text string) {
	if r.notifier == nil {
		return
	}
	r.println(announce)
	if err := r.notifier.Post(ctx, text); err != nil {
		log.FromContext(ctx).Warnf("failed to deliver notification: %v", err)
	}
}

// ClassificationText renders the classification summary
func ClassificationText(c *model.Classification, batchSize int) string {
	return fmt.Sprintf(
		"%d/%d devices are online and %d devices are access points\n"+
			"Uptime limit: %d days, Restart Batch Size %d\n"+
			"Overdue: %s\n"+
			"Good: %s",
		c.Online, c.Total, c.AccessPoints,
		c.UptimeLimit, batchSize,
		c.Overdue, c.Healthy,
	)
}

// SelectionText renders the batch announced before restarting
func SelectionText(batch model.Devices) string {
	return "Selected the following APs for restart in this round: " + batch.String()
}

// SummaryText renders the outcome of the restart loop
func SummaryText(result *model.RunResult) string {
	failures := result.Failures()
	text := fmt.Sprintf("Restarted %d/%d APs",
		len(result.Restarted()), len(result.Selected))
	if dry := result.Simulated(); len(dry) > 0 {
		text = fmt.Sprintf("Dry run, %d/%d APs would have been restarted",
			len(dry), len(result.Selected))
	}
	if len(failures) > 0 {
		text += fmt.Sprintf(", %d failed: %s", len(failures), failures)
	}
	if result.Aborted {
		text += fmt.Sprintf(", stopped after %d of %d",
			len(result.Outcomes), len(result.Selected))
	}
	return text
}

// Classification prints the classification summary
func (r *Reporter) Classification(c *model.Classification, batchSize int) {
	r.println(ClassificationText(c, batchSize))
}

// NothingToDo reports an empty batch
func (r *Reporter) NothingToDo() {
	r.println(MsgNothingToDo)
}

// Selection announces the batch before any device is restarted
func (r *Reporter) Selection(ctx context.Context, batch model.Devices) {
	text := SelectionText(batch)
	r.println(text)
	r.notify(ctx, MsgSendSelection, text)
}

// Restarting reports the action taken for a single device
func (r *Reporter) Restarting(dev model.Device, dryRun bool) {
	if dryRun {
		r.println(fmt.Sprintf(" Not Restarting AP %s (dry-run mode)", dev))
	} else {
		r.println(fmt.Sprintf(" Restarting AP %s", dev))
	}
}

// RestartFailed reports a failed restart command
func (r *Reporter) RestartFailed(dev model.Device, err error) {
	r.println(fmt.Sprintf(" Failed to restart AP %s: %v", dev, err))
}

// Summary reports the outcome of the restart loop; partial failures are
// forwarded to the notifier
func (r *Reporter) Summary(ctx context.Context, result *model.RunResult) {
	text := SummaryText(result)
	r.println(text)
	if result.Partial() {
		r.notify(ctx, MsgSendSummary, text)
	}
}

// Fatal reports an error aborting the run
func (r *Reporter) Fatal(ctx context.Context, err error) {
	text := FormatError(err)
	r.println(text)
	r.notify(ctx, MsgSendError, text)
}

// Sites prints the sites known to the controller
func (r *Reporter) Sites(sites []model.Site) {
	r.println(MsgListSites)
	for _, site := range sites {
		r.println(fmt.Sprintf(" - %s (ID: %s)", site.Description, site.ID))
	}
}
