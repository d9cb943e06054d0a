package navbar

import (
	"net/http"
	"strconv"

	"github.com/aswini27ms/folio/internal/navigation"
	"github.com/aswini27ms/folio/internal/page"
	"github.com/aswini27ms/folio/internal/rendering"
	"github.com/aswini27ms/folio/internal/view"
	"github.com/aswini27ms/folio/web/src/templates/partials"
	"github.com/labstack/echo/v4"
)

// Handler serves the navigation fragments.
type Handler struct {
	builder  *page.Builder
	renderer rendering.Renderer
}

// NewHandler creates a Handler.
func NewHandler(builder *page.Builder, renderer rendering.Renderer) *Handler {
	return &Handler{builder: builder, renderer: renderer}
}

// SpyPost recomputes the navigation from a scroll report. Form fields:
// scroll_y, top_<section> for each section the client measured, and open.
func (h *Handler) SpyPost(c echo.Context) error {
	scrollY, err := parseFloat(c.FormValue("scroll_y"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid scroll_y")
	}

	tracker := h.builder.Tracker()
	tops := make(map[string]float64, len(tracker.Sections))
	for _, section := range tracker.Sections {
		raw := c.FormValue("top_" + section)
		if raw == "" {
			continue
		}
		top, err := parseFloat(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid top_"+section)
		}
		tops[section] = top
	}

	state := navigation.FromScroll(tracker, scrollY, tops, formBool(c, "open"))
	return h.render(c, state)
}

// MenuPost toggles the mobile menu. Form fields: open (current state),
// active and scrolled.
func (h *Handler) MenuPost(c echo.Context) error {
	state := h.stateFromForm(c)
	state.MenuOpen = formBool(c, "open")
	state.Toggle()
	return h.render(c, state)
}

// SelectPost handles a click on a mobile menu item: the item becomes active
// and the menu closes.
func (h *Handler) SelectPost(c echo.Context) error {
	state := h.stateFromForm(c)
	state.Select(h.builder.Tracker(), c.FormValue("section"))
	return h.render(c, state)
}

func (h *Handler) stateFromForm(c echo.Context) navigation.State {
	tracker := h.builder.Tracker()
	state := navigation.Initial(tracker)
	if active := c.FormValue("active"); tracker.Known(active) {
		state.Active = active
	}
	state.Scrolled = formBool(c, "scrolled")
	return state
}

func (h *Handler) render(c echo.Context, state navigation.State) error {
	return h.renderer.RenderPage(c, http.StatusOK, partials.NavBar(h.builder.Nav(state, view.Theme(c))))
}

func parseFloat(raw string) (float64, error) {
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func formBool(c echo.Context, name string) bool {
	v, err := strconv.ParseBool(c.FormValue(name))
	return err == nil && v
}
