package complaints

import (
	"context"
	"encoding/json"
	"errors"
	"html"
	"io"
	"strconv"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// StateSource provides the snapshot a controller renders.
type StateSource interface {
	State() UIState
}

// ControllerOptions wires the controller.
type ControllerOptions struct {
	Service   StateSource
	Renderer  Renderer
	Template  string
	Chart     *StatusChart
	Sanitizer *bluemonday.Policy
	Logger    *zap.Logger
}

// Controller turns client state into template payloads and HTML.
type Controller struct {
	service   StateSource
	renderer  Renderer
	template  string
	chart     *StatusChart
	sanitizer *bluemonday.Policy
	log       *zap.Logger
}

// NewController builds a controller. Complaint text coming from the remote
// service is stripped of markup before it reaches a template or the JSON state.
// Escaping is left to the template.
func NewController(opts ControllerOptions) *Controller {
	if opts.Template == "" {
		opts.Template = DefaultTemplate
	}
	if opts.Sanitizer == nil {
		opts.Sanitizer = bluemonday.StrictPolicy()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Controller{
		service:   opts.Service,
		renderer:  opts.Renderer,
		template:  opts.Template,
		chart:     opts.Chart,
		sanitizer: opts.Sanitizer,
		log:       opts.Logger,
	}
}

// StatePayload returns the template data for the current state.
func (c *Controller) StatePayload(ctx context.Context) (map[string]any, error) {
	if c.service == nil {
		return nil, errors.New("complaints: controller has no service")
	}
	state := c.service.State()
	state.Dashboard = c.sanitizeView(state.Dashboard)

	raw, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	var stateMap map[string]any
	if err := json.Unmarshal(raw, &stateMap); err != nil {
		return nil, err
	}

	tabs := make([]string, 0, len(Tabs()))
	for _, tab := range Tabs() {
		tabs = append(tabs, string(tab))
	}
	payload := map[string]any{
		"state":     stateMap,
		"tabs":      tabs,
		"dashboard": dashboardPayload(state.Dashboard),
	}
	if c.chart != nil && state.Session != nil {
		chartHTML, err := c.chart.Render(state.Dashboard)
		if err != nil {
			c.log.Warn("status chart render failed", zap.Error(err))
		} else if chartHTML != "" {
			payload["chart_html"] = chartHTML
		}
	}
	return payload, nil
}

// RenderTemplate renders the configured template to w.
func (c *Controller) RenderTemplate(ctx context.Context, w io.Writer) error {
	if c.renderer == nil {
		return errors.New("complaints: controller has no renderer")
	}
	payload, err := c.StatePayload(ctx)
	if err != nil {
		return err
	}
	_, err = c.renderer.Render(c.template, payload, w)
	return err
}

func (c *Controller) sanitizeView(view DashboardView) DashboardView {
	clean := func(rows []Row) []Row {
		out := make([]Row, len(rows))
		for i, row := range rows {
			row.Title = c.stripMarkup(row.Title)
			row.Summary = c.stripMarkup(row.Summary)
			out[i] = row
		}
		return out
	}
	view.Recent = clean(view.Recent)
	view.Full = clean(view.Full)
	return view
}

// stripMarkup drops tags but keeps plain text: the policy entity-encodes its
// output, which would be escaped again by the template.
func (c *Controller) stripMarkup(value string) string {
	return html.UnescapeString(c.sanitizer.Sanitize(value))
}

// Numbers are preformatted: the template engine sees decoded JSON numbers as
// floats.
func dashboardPayload(view DashboardView) map[string]any {
	return map[string]any{
		"total":    strconv.Itoa(view.Total),
		"pending":  strconv.Itoa(view.Pending),
		"active":   strconv.Itoa(view.Active),
		"resolved": strconv.Itoa(view.Resolved),
		"recent":   rowsPayload(view.Recent),
		"full":     rowsPayload(view.Full),
	}
}

func rowsPayload(rows []Row) []map[string]any {
	out := make([]map[string]any, 0, len(rows))
	for _, row := range rows {
		if row.Placeholder {
			out = append(out, map[string]any{"placeholder": true, "message": row.Message})
			continue
		}
		out = append(out, map[string]any{
			"id":          strconv.Itoa(row.ID),
			"title":       row.Title,
			"summary":     row.Summary,
			"badge":       row.Status.Badge(),
			"badge_class": row.Status.BadgeClass(),
			"bucket":      string(row.Status.Bucket),
		})
	}
	return out
}
