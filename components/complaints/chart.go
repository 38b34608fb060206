package complaints

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

const defaultChartHeight = "320px"

// StatusChart renders the dashboard counts as a pie chart.
type StatusChart struct {
	title      string
	theme      string
	assetsHost string
	cache      RenderCache
}

// StatusChartOption customizes chart rendering.
type StatusChartOption func(*StatusChart)

// WithStatusChartCache injects a render cache.
func WithStatusChartCache(cache RenderCache) StatusChartOption {
	return func(c *StatusChart) {
		c.cache = cache
	}
}

// WithStatusChartTheme sets the echarts theme.
func WithStatusChartTheme(theme string) StatusChartOption {
	return func(c *StatusChart) {
		c.theme = theme
	}
}

// WithStatusChartAssetsHost points the echarts runtime at another host.
func WithStatusChartAssetsHost(host string) StatusChartOption {
	return func(c *StatusChart) {
		c.assetsHost = host
	}
}

// WithStatusChartTitle overrides the chart title.
func WithStatusChartTitle(title string) StatusChartOption {
	return func(c *StatusChart) {
		c.title = title
	}
}

// NewStatusChart builds a chart renderer.
func NewStatusChart(options ...StatusChartOption) *StatusChart {
	chart := &StatusChart{
		title: "My complaints",
		theme: types.ThemeWesteros,
	}
	for _, opt := range options {
		opt(chart)
	}
	return chart
}

// Render returns chart HTML for view. An empty view renders nothing.
func (c *StatusChart) Render(view DashboardView) (string, error) {
	if view.Empty() {
		return "", nil
	}
	render := func() (string, error) { return c.render(view) }
	if c.cache == nil {
		return render()
	}
	return c.cache.GetOrRender(countsHash(c.title, view), render)
}

func (c *StatusChart) render(view DashboardView) (string, error) {
	initOpts := opts.Initialization{
		Theme:  c.theme,
		Width:  "100%",
		Height: defaultChartHeight,
	}
	if c.assetsHost != "" {
		initOpts.AssetsHost = c.assetsHost
	}
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    c.title,
			Subtitle: fmt.Sprintf("%d total", view.Total),
		}),
		charts.WithInitializationOpts(initOpts),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	pie.AddSeries("Status", []opts.PieData{
		{Name: "Pending", Value: view.Pending},
		{Name: "Active", Value: view.Active},
		{Name: "Resolved", Value: view.Resolved},
	})
	var buf bytes.Buffer
	if err := pie.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
