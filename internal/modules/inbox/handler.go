package inbox

import (
	"net/http"

	"github.com/aswini27ms/folio/internal/contact"
	"github.com/aswini27ms/folio/internal/middleware"
	"github.com/aswini27ms/folio/internal/page"
	"github.com/aswini27ms/folio/internal/rendering"
	"github.com/aswini27ms/folio/internal/scrollspy"
	"github.com/aswini27ms/folio/internal/view"
	"github.com/aswini27ms/folio/web/src/templates/pages"
	"github.com/aswini27ms/folio/web/src/templates/partials"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
	hxhttp "maragu.dev/gomponents-htmx/http"
)

// User-facing outcomes of a submission.
const (
	SuccessMessage = "Message sent successfully! I'll get back to you soon."
	FailureMessage = "Something went wrong sending your message. Please try again."
)

// Handler serves the contact form endpoint.
type Handler struct {
	service  *contact.Service
	builder  *page.Builder
	renderer rendering.Renderer
}

// NewHandler creates a Handler.
func NewHandler(service *contact.Service, builder *page.Builder, renderer rendering.Renderer) *Handler {
	return &Handler{service: service, builder: builder, renderer: renderer}
}

// ContactPost accepts a contact form submission. htmx requests get the form
// fragment back, plain posts get the full page or a redirect.
func (h *Handler) ContactPost(c echo.Context) error {
	var form contact.Form
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}

	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)
	isHTMX := hxhttp.IsRequest(c.Request().Header)

	msg, fieldErrors, err := h.service.Submit(ctx, form)
	if err != nil {
		logger.Error("Failed to submit contact message", "error", err)
		return h.failed(c, form, isHTMX)
	}

	if fieldErrors != nil {
		logger.Debug("Contact form rejected", "fields", len(fieldErrors))
		props := partials.ContactFormProps{Values: form.Normalize(), Errors: fieldErrors}
		if isHTMX {
			return h.renderer.RenderPage(c, http.StatusUnprocessableEntity, partials.ContactForm(props))
		}
		return h.renderPage(c, http.StatusUnprocessableEntity, props, view.FlashData{})
	}

	logger.Info("Contact message accepted", "contact_id", msg.ID)

	if isHTMX {
		return h.renderer.RenderPage(c, http.StatusOK, g.Group{
			partials.ContactForm(partials.ContactFormProps{}),
			view.AdaptTemplToGomponent(partials.Toast(partials.ToastSuccess, SuccessMessage)),
		})
	}

	if err := view.SetFlashSuccess(c, SuccessMessage); err != nil {
		// Without a session the confirmation is shown inline instead.
		logger.Warn("Failed to set contact flash", "error", err)
		return h.renderPage(c, http.StatusOK, partials.ContactFormProps{}, view.FlashData{Success: []string{SuccessMessage}})
	}
	return c.Redirect(http.StatusSeeOther, "/#"+scrollspy.Contact)
}

func (h *Handler) failed(c echo.Context, form contact.Form, isHTMX bool) error {
	props := partials.ContactFormProps{Values: form.Normalize()}
	if isHTMX {
		// htmx does not swap 5xx responses, so the toast rides on a 200.
		return h.renderer.RenderPage(c, http.StatusOK, g.Group{
			partials.ContactForm(props),
			view.AdaptTemplToGomponent(partials.Toast(partials.ToastError, FailureMessage)),
		})
	}
	return h.renderPage(c, http.StatusInternalServerError, props, view.FlashData{Error: []string{FailureMessage}})
}

func (h *Handler) renderPage(c echo.Context, status int, form partials.ContactFormProps, flash view.FlashData) error {
	props := h.builder.Home(page.Request{
		Section: scrollspy.Contact,
		Theme:   view.Theme(c),
		Flash:   flash,
		Form:    form,
	})
	return h.renderer.RenderPage(c, status, pages.Home(props))
}
