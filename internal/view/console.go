package view

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/promodesk/promodesk/internal/dataset"
	"github.com/promodesk/promodesk/internal/drilldown"
	"github.com/promodesk/promodesk/internal/filter"
	"github.com/promodesk/promodesk/internal/metrics"
	"github.com/promodesk/promodesk/internal/model"
	"github.com/promodesk/promodesk/internal/pagination"
	"github.com/promodesk/promodesk/internal/trend"
)

// ErrNotTrendKind is returned by Trend for a kind that does not carry samples.
var ErrNotTrendKind = errors.New("drill-down kind has no trend samples")

// Metrics sampled in 万 (ten-thousands of currency units).
var wanMetrics = []string{"sales", "discount", "gmv"}

// Options configures a Console.
type Options struct {
	Logger  *slog.Logger
	Metrics metrics.Recorder
	// WanScale overrides trend.WanScale for sales-like metrics.
	WanScale decimal.Decimal
}

// Result is one rendered page of a view.
type Result[R model.Record] struct {
	View string             `json:"view"`
	Page pagination.Page[R] `json:"page"`
	// State is the caller's page state brought into range; store it back.
	State pagination.State `json:"state"`
	// Ignored lists selection keys the view does not recognize.
	Ignored []string `json:"ignored,omitempty"`
}

// Console serves the list views over one loaded dataset.
type Console struct {
	data     *dataset.Dataset
	engines  map[string]*filter.Engine
	registry *drilldown.Registry
	scales   map[string]decimal.Decimal
	metrics  metrics.Recorder
	logger   *slog.Logger
}

// NewConsole creates a Console over ds. ds must not be modified afterwards.
func NewConsole(ds *dataset.Dataset, opts Options) *Console {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	recorder := opts.Metrics
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	wan := opts.WanScale
	if wan.IsZero() {
		wan = trend.WanScale
	}

	engines := make(map[string]*filter.Engine, len(schemas))
	for name, s := range schemas {
		engines[name] = filter.NewEngine(s)
	}

	scales := make(map[string]decimal.Decimal, len(wanMetrics))
	for _, m := range wanMetrics {
		scales[m] = wan
	}

	logger = logger.With("component", "view.console")
	return &Console{
		data:     ds,
		engines:  engines,
		registry: newRegistry(ds, logger),
		scales:   scales,
		metrics:  recorder,
		logger:   logger,
	}
}

// Activities renders the activities view.
func (c *Console) Activities(crit filter.Criteria, st pagination.State) Result[model.Activity] {
	return query(c, Activities, c.data.Activities, crit, st)
}

// Coupons renders the coupons view.
func (c *Console) Coupons(crit filter.Criteria, st pagination.State) Result[model.Coupon] {
	return query(c, Coupons, c.data.Coupons, crit, st)
}

// Retailers renders the retailers view.
func (c *Console) Retailers(crit filter.Criteria, st pagination.State) Result[model.Retailer] {
	return query(c, Retailers, c.data.Retailers, crit, st)
}

// Products renders the products view.
func (c *Console) Products(crit filter.Criteria, st pagination.State) Result[model.Product] {
	return query(c, Products, c.data.Products, crit, st)
}

// MonitoringTasks renders the price-monitoring tasks view.
func (c *Console) MonitoringTasks(crit filter.Criteria, st pagination.State) Result[model.MonitoringTask] {
	return query(c, MonitoringTasks, c.data.MonitoringTasks, crit, st)
}

// Query renders a view selected by name.
func (c *Console) Query(name string, crit filter.Criteria, st pagination.State) (Result[model.Record], error) {
	var rows []model.Record
	switch name {
	case Activities:
		rows = drilldown.Rows(c.data.Activities)
	case Coupons:
		rows = drilldown.Rows(c.data.Coupons)
	case Retailers:
		rows = drilldown.Rows(c.data.Retailers)
	case Products:
		rows = drilldown.Rows(c.data.Products)
	case MonitoringTasks:
		rows = drilldown.Rows(c.data.MonitoringTasks)
	default:
		return Result[model.Record]{}, fmt.Errorf("%w: %q", ErrUnknownView, name)
	}
	return query(c, name, rows, crit, st), nil
}

func query[R model.Record](c *Console, name string, records []R, crit filter.Criteria, st pagination.State) Result[R] {
	engine := c.engines[name]
	c.metrics.IncViewQuery(name)

	start := time.Now()
	filtered := filter.Filter(engine, records, crit)
	c.metrics.ObserveFilterDuration(time.Since(start))

	if st.Size <= 0 {
		st = pagination.NewState(st.Size).Goto(st.Page)
	}
	page := pagination.Paginate(filtered, st.Page, st.Size)
	if page.Page != st.Page {
		c.metrics.IncPageClamped(name)
		c.logger.Debug("page clamped",
			slog.String("view", name),
			slog.Int("requested", st.Page),
			slog.Int("page", page.Page),
		)
	}

	ignored := engine.Ignored(crit)
	if len(ignored) > 0 {
		c.logger.Warn("criteria keys not recognized by view",
			slog.String("view", name),
			slog.Any("keys", ignored),
		)
	}

	c.logger.Debug("view rendered",
		slog.String("view", name),
		slog.Int("total", page.Total),
		slog.Int("page", page.Page),
		slog.Int("items", len(page.Items)),
	)

	return Result[R]{
		View:    name,
		Page:    page,
		State:   pagination.State{Page: page.Page, Size: page.PageSize},
		Ignored: ignored,
	}
}

// NextState returns the page state to use after the criteria changed from
// prev to next: back to the first page on any change, otherwise unchanged.
func NextState(prev, next filter.Criteria, st pagination.State) pagination.State {
	if !prev.Equal(next) {
		return st.Reset()
	}
	return st
}

// DrillDown resolves the kind details of recordID, optionally narrowed by a
// query on the detail key field. It never fails.
func (c *Console) DrillDown(kind, recordID, query string) drilldown.Collection {
	col := c.registry.Resolve(kind, recordID, query)

	outcome := metrics.DrillDownFound
	switch {
	case !c.registry.Has(kind):
		outcome = metrics.DrillDownUnknown
		c.logger.Warn("unknown drill-down kind", slog.String("kind", kind), slog.String("record_id", recordID))
	case col.IsEmpty():
		outcome = metrics.DrillDownEmpty
	}
	c.metrics.IncDrillDown(outcome)

	c.logger.Debug("drill-down resolved",
		slog.String("kind", kind),
		slog.String("record_id", recordID),
		slog.String("token", col.Token),
		slog.Int("rows", col.Len()),
	)
	return col
}

// DrillDownKinds returns the registered drill-down kinds.
func (c *Console) DrillDownKinds() []string {
	return c.registry.Kinds()
}

// TrendResult is a reconstructed chart series. Metrics names the value
// columns of every point, in order.
type TrendResult struct {
	Kind     string        `json:"kind"`
	RecordID string        `json:"recordId"`
	Metrics  []string      `json:"metrics"`
	Points   []trend.Point `json:"points"`
}

// Trend resolves the trend samples of recordID and lays them out over
// [start, end]. A record without samples yields an empty series; malformed
// samples are returned as errors.
func (c *Console) Trend(kind, recordID string, start, end time.Time) (TrendResult, error) {
	res := TrendResult{Kind: kind, RecordID: recordID, Metrics: []string{}, Points: []trend.Point{}}

	col := c.DrillDown(kind, recordID, "")
	if col.KeyField != "" || !c.registry.Has(kind) {
		return res, fmt.Errorf("%w: %q", ErrNotTrendKind, kind)
	}
	if col.Samples == nil || len(col.Samples.Metrics) == 0 {
		return res, nil
	}

	series := make([]trend.Series, len(col.Samples.Metrics))
	for i, m := range col.Samples.Metrics {
		series[i] = trend.Series{Metric: c.metric(m.Name), Samples: m.Values}
		res.Metrics = append(res.Metrics, m.Name)
	}

	points, err := trend.Reconstruct(series, start, end)
	if err != nil {
		c.metrics.IncTrendBuilt("failed")
		c.logger.Error("trend reconstruction failed",
			slog.String("kind", kind),
			slog.String("record_id", recordID),
			slog.String("error", err.Error()),
		)
		return res, fmt.Errorf("reconstruct %s for %s: %w", kind, recordID, err)
	}
	c.metrics.IncTrendBuilt("success")

	res.Points = points
	return res, nil
}

func (c *Console) metric(name string) trend.Metric {
	scale, ok := c.scales[name]
	if !ok {
		scale = trend.UnitScale
	}
	return trend.Metric{Name: name, Scale: scale}
}
