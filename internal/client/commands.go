// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/tidy-finder/internal/propagation"
	"github.com/MKhiriev/tidy-finder/internal/service"
	"github.com/MKhiriev/tidy-finder/models"
)

const usage = `usage: tidyfinder [flags] [command]

Without a command the interactive interface starts.

commands:
  status                         show the current Finder settings
  view <list|icon|column|gallery> set the default view style
  option <name> <on|off>         set a window option (pathbar, statusbar, sidebar, preview)
  apply <template> <target>...   copy a folder's view settings to other folders
  reset [root]                   remove folder view settings below root (default: home)
  relaunch                       restart Finder
  profiles                       list saved profiles
  profile-apply <name>           apply a saved profile
  history [limit]                list recent copy runs
  help                           show this help`

type commandFunc func(ctx context.Context, args []string) error

// Commander runs one headless command and writes its output to out.
type Commander struct {
	services     *service.ClientServices
	out          io.Writer
	historyLimit int
	commands     map[string]commandFunc
}

func NewCommander(services *service.ClientServices, out io.Writer, historyLimit int) *Commander {
	c := &Commander{
		services:     services,
		out:          out,
		historyLimit: historyLimit,
	}
	c.commands = map[string]commandFunc{
		"status":        c.status,
		"view":          c.view,
		"option":        c.option,
		"apply":         c.apply,
		"reset":         c.reset,
		"relaunch":      c.relaunch,
		"profiles":      c.profiles,
		"profile-apply": c.profileApply,
		"history":       c.history,
		"help":          c.help,
	}
	return c
}

// Execute runs the command named by args[0] with the remaining arguments.
func (c *Commander) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.help(ctx, nil)
	}

	cmd, ok := c.commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q\n\n%s", ErrUnknownCommand, args[0], usage)
	}
	return cmd(ctx, args[1:])
}

func (c *Commander) help(context.Context, []string) error {
	_, err := fmt.Fprintln(c.out, usage)
	return err
}

func (c *Commander) status(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return usageError("status")
	}

	settings, err := c.services.Preferences.CurrentSettings(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	style := "not set"
	if settings.ViewStyle.Valid() {
		style = settings.ViewStyle.DisplayName()
	}
	fmt.Fprintf(w, "Default view\t%s\n", style)
	for _, o := range models.AllFinderOptions() {
		fmt.Fprintf(w, "%s\t%s\n", o.DisplayName(), onOff(settings.Option(o)))
	}
	return w.Flush()
}

func (c *Commander) view(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("view <list|icon|column|gallery>")
	}

	style, err := models.ParseViewStyle(args[0])
	if err != nil {
		return err
	}
	if err = c.services.Preferences.SetViewStyle(ctx, style); err != nil {
		return err
	}

	_, err = fmt.Fprintf(c.out, "Default view set to %s. Run \"tidyfinder relaunch\" to apply it.\n", style.DisplayName())
	return err
}

func (c *Commander) option(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usageError("option <name> <on|off>")
	}

	option, err := models.ParseFinderOption(args[0])
	if err != nil {
		return err
	}
	enabled, err := parseSwitch(args[1])
	if err != nil {
		return err
	}
	if err = c.services.Preferences.SetOption(ctx, option, enabled); err != nil {
		return err
	}

	_, err = fmt.Fprintf(c.out, "%s: %s\n", option.DisplayName(), onOff(enabled))
	return err
}

func (c *Commander) apply(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return usageError("apply <template> <target>...")
	}

	report, err := c.services.Templates.Apply(ctx, args[0], args[1:], func(p propagation.Progress) {
		status := "copied"
		if !p.Outcome.Copied() {
			status = "failed: " + p.Outcome.Reason()
		}
		fmt.Fprintf(c.out, "[%d/%d] %s: %s\n", p.Done, p.Total, p.Outcome.FolderName(), status)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(c.out, report.Summary())
	if !report.Succeeded() {
		return fmt.Errorf("%w: %d of %d", ErrPropagationFailed, len(report.Failures()), report.Total())
	}
	return nil
}

func (c *Commander) reset(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return usageError("reset [root]")
	}

	root := resetRoot()
	if len(args) == 1 {
		root = args[0]
	}

	report, err := c.services.Preferences.ResetAllViews(ctx, root)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Removed %d view settings files below %s\n", report.Removed, report.Root)
	for _, f := range report.Failures {
		fmt.Fprintf(c.out, "  skipped %s: %v\n", f.Path, f.Err)
	}
	return nil
}

func (c *Commander) relaunch(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return usageError("relaunch")
	}
	if err := c.services.Preferences.RelaunchFinder(ctx); err != nil {
		return err
	}
	_, err := fmt.Fprintln(c.out, "Finder relaunched")
	return err
}

func (c *Commander) profiles(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return usageError("profiles")
	}

	profiles, err := c.services.Profiles.List(ctx)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		_, err = fmt.Fprintln(c.out, "No profiles saved")
		return err
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVIEW\tOPTIONS\tCREATED")
	for _, p := range profiles {
		options := strings.Join(p.Settings().EnabledOptions(), ", ")
		if options == "" {
			options = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.ViewStyle.DisplayName(), options, p.CreatedDate.Format("2006-01-02"))
	}
	return w.Flush()
}

func (c *Commander) profileApply(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usageError("profile-apply <name>")
	}

	p, err := c.services.Profiles.FindByName(ctx, args[0])
	if err != nil {
		return err
	}
	if _, err = c.services.Profiles.Apply(ctx, p.ID); err != nil {
		return err
	}

	_, err = fmt.Fprintf(c.out, "Applied profile %s. Run \"tidyfinder relaunch\" to apply it.\n", p.Name)
	return err
}

func (c *Commander) history(ctx context.Context, args []string) error {
	if len(args) > 1 {
		return usageError("history [limit]")
	}

	limit := c.historyLimit
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return usageError("history [limit]")
		}
		limit = n
	}

	runs, err := c.services.Templates.History(ctx, limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		_, err = fmt.Fprintln(c.out, "No runs recorded")
		return err
	}

	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSTARTED\tTEMPLATE\tCOPIED\tFAILED")
	for _, r := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d/%d\t%d\n", r.ID, r.StartedAt.Local().Format("2006-01-02 15:04"), r.Template, r.Copied, r.Total, r.Failed)
	}
	return w.Flush()
}

func usageError(synopsis string) error {
	return fmt.Errorf("%w: usage: tidyfinder %s", ErrUsage, synopsis)
}

func parseSwitch(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on", "true", "yes", "1":
		return true, nil
	case "off", "false", "no", "0":
		return false, nil
	default:
		return false, fmt.Errorf("%w: expected on or off, got %q", ErrUsage, v)
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
