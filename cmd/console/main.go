// Package main is the command-line front end of the promotion console.
// It renders one list view page, one drill-down, or one trend chart as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/promodesk/promodesk/internal/config"
	"github.com/promodesk/promodesk/internal/dataset"
	"github.com/promodesk/promodesk/internal/filter"
	"github.com/promodesk/promodesk/internal/logging"
	"github.com/promodesk/promodesk/internal/pagination"
	"github.com/promodesk/promodesk/internal/view"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr so stdout stays valid JSON.
	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	if err := run(context.Background(), os.Args[1:], os.Stdout, cfg, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Error("console failed", "error", err)
		os.Exit(1)
	}
}

// selections collects repeated -select key=v1,v2 flags.
type selections map[string][]string

func (s selections) String() string {
	parts := make([]string, 0, len(s))
	for k, v := range s {
		parts = append(parts, k+"="+strings.Join(v, ","))
	}
	return strings.Join(parts, " ")
}

func (s selections) Set(raw string) error {
	key, values, ok := strings.Cut(raw, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("selection %q must be key=value[,value...]", raw)
	}
	s[key] = append(s[key], strings.Split(values, ",")...)
	return nil
}

type options struct {
	view     string
	text     string
	status   string
	selected selections
	from     string
	to       string
	page     int
	size     int
	drill    string
	trend    string
	id       string
	kinds    bool
}

func parseFlags(args []string, defaultSize int, out io.Writer) (options, error) {
	opts := options{selected: selections{}}

	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.view, "view", view.Activities, "list view: "+strings.Join(view.Names(), ", "))
	fs.StringVar(&opts.text, "q", "", "text search over the view's name fields")
	fs.StringVar(&opts.status, "status", "", "comma-separated status filter")
	fs.Var(opts.selected, "select", "selection filter key=v1,v2 (repeatable)")
	fs.StringVar(&opts.from, "from", "", "range start, "+time.DateOnly)
	fs.StringVar(&opts.to, "to", "", "range end, "+time.DateOnly)
	fs.IntVar(&opts.page, "page", 1, "page number")
	fs.IntVar(&opts.size, "size", defaultSize, "page size")
	fs.StringVar(&opts.drill, "drill", "", "drill-down kind; use -q to filter its rows")
	fs.StringVar(&opts.trend, "trend", "", "trend kind; requires -from and -to")
	fs.StringVar(&opts.id, "id", "", "record id for -drill and -trend")
	fs.BoolVar(&opts.kinds, "kinds", false, "list views and drill-down kinds")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.drill != "" && opts.trend != "" {
		return opts, errors.New("-drill and -trend are exclusive")
	}
	if (opts.drill != "" || opts.trend != "") && opts.id == "" {
		return opts, errors.New("-id is required with -drill and -trend")
	}
	return opts, nil
}

func (o options) criteria() (filter.Criteria, error) {
	// -status and -select status=... are merged into one selection.
	merged := make(map[string][]string, len(o.selected)+1)
	for key, values := range o.selected {
		merged[key] = append(merged[key], values...)
	}
	if o.status != "" {
		merged["status"] = append(merged["status"], strings.Split(o.status, ",")...)
	}

	crit := filter.Criteria{}.WithText(o.text)
	for key, values := range merged {
		crit = crit.WithSelection(key, values...)
	}

	var r filter.DateRange
	if o.from != "" {
		start, err := time.Parse(time.DateOnly, o.from)
		if err != nil {
			return crit, fmt.Errorf("invalid -from: %w", err)
		}
		r.Start = &start
	}
	if o.to != "" {
		end, err := time.Parse(time.DateOnly, o.to)
		if err != nil {
			return crit, fmt.Errorf("invalid -to: %w", err)
		}
		r.End = &end
	}
	return crit.WithRange(r), nil
}

func run(ctx context.Context, args []string, stdout io.Writer, cfg *config.Config, logger *slog.Logger) error {
	opts, err := parseFlags(args, cfg.PageSize, stdout)
	if err != nil {
		return err
	}

	ds, err := dataset.Open(ctx, cfg, logger)
	if err != nil {
		return err
	}

	wan, err := cfg.WanScale()
	if err != nil {
		return err
	}
	console := view.NewConsole(ds, view.Options{Logger: logger, WanScale: wan})

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	switch {
	case opts.kinds:
		return enc.Encode(map[string][]string{
			"views":      view.Names(),
			"drillDowns": console.DrillDownKinds(),
		})

	case opts.drill != "":
		return enc.Encode(console.DrillDown(opts.drill, opts.id, opts.text))

	case opts.trend != "":
		if opts.from == "" || opts.to == "" {
			return errors.New("-trend requires -from and -to")
		}
		crit, err := opts.criteria()
		if err != nil {
			return err
		}
		r := crit.Range()
		res, err := console.Trend(opts.trend, opts.id, *r.Start, *r.End)
		if err != nil {
			return err
		}
		return enc.Encode(res)
	}

	crit, err := opts.criteria()
	if err != nil {
		return err
	}
	res, err := console.Query(opts.view, crit, pagination.State{Page: opts.page, Size: opts.size})
	if err != nil {
		return err
	}
	return enc.Encode(res)
}
