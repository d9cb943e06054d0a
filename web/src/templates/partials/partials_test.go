package partials

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/aswini27ms/folio/internal/contact"
	"github.com/aswini27ms/folio/internal/motion"
	"github.com/aswini27ms/folio/internal/navigation"
	"github.com/aswini27ms/folio/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, n.Render(&buf))
	return buf.String()
}

func TestNavBar(t *testing.T) {
	t.Run("active item", func(t *testing.T) {
		out := render(t, NavBar(NavProps{State: navigation.State{Active: "skills"}, Brand: "Ada"}))

		assert.Contains(t, out, `id="site-nav"`)
		assert.Contains(t, out, `data-active="skills"`)
		assert.Equal(t, 1, strings.Count(out, `aria-current="location"`))
		assert.Contains(t, out, `class="active nav-mobile-link"`)
		assert.NotContains(t, out, "nav-scrolled")
		assert.NotContains(t, out, "nav-open")
	})

	t.Run("scrolled and open", func(t *testing.T) {
		out := render(t, NavBar(NavProps{State: navigation.State{Active: "hero", Scrolled: true, MenuOpen: true}}))

		assert.Contains(t, out, "nav-scrolled")
		assert.Contains(t, out, "nav-open")
		assert.Contains(t, out, `aria-expanded="true"`)
		assert.Contains(t, out, `hx-swap="outerHTML show:#about:top"`)
		assert.Contains(t, out, `&#34;open&#34;:&#34;true&#34;`)
	})

	t.Run("static has no htmx", func(t *testing.T) {
		out := render(t, NavBar(NavProps{State: navigation.State{Active: "hero"}, Static: true}))
		assert.NotContains(t, out, "hx-post")
		assert.Contains(t, out, "data-menu-toggle")
	})
}

func TestParticles(t *testing.T) {
	ps := motion.Particles(motion.NewRand(7), 3)
	out := render(t, Particles(ps))
	assert.Equal(t, 3, strings.Count(out, `class="particle"`))
	assert.Contains(t, out, "--delay: 4s")
}

func TestThemeToggle(t *testing.T) {
	dark := render(t, ThemeToggle(view.ThemeDark, false))
	assert.Contains(t, dark, `hx-post="/theme"`)
	assert.Contains(t, dark, "Switch to light theme")
	assert.Contains(t, dark, `data-theme="dark"`)

	light := render(t, ThemeToggle(view.ThemeLight, true))
	assert.Contains(t, light, "Switch to dark theme")
	assert.NotContains(t, light, "hx-post")
}

func TestToast(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Toast(ToastSuccess, "Saved <ok>").Render(context.Background(), &buf))
	out := buf.String()

	assert.Contains(t, out, `hx-swap-oob="beforeend:#toast-container"`)
	assert.Contains(t, out, "toast-success")
	assert.Contains(t, out, "Saved &lt;ok&gt;")
}

func TestFlash(t *testing.T) {
	assert.Empty(t, render(t, g.Group{Flash(view.FlashData{})}))

	out := render(t, Flash(view.FlashData{Success: []string{"Thanks"}, Error: []string{"Oops"}}))
	assert.Contains(t, out, `class="flash flash-success"`)
	assert.Contains(t, out, "Thanks")
	assert.Contains(t, out, `role="alert"`)
}

func TestContactForm(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		out := render(t, ContactForm(ContactFormProps{}))
		assert.Contains(t, out, `hx-post="/contact"`)
		assert.Contains(t, out, `placeholder="Your name"`)
		assert.NotContains(t, out, "form-error")
	})

	t.Run("errors and values", func(t *testing.T) {
		out := render(t, ContactForm(ContactFormProps{
			Values: contact.Form{Name: "Ada", Email: "bad", Message: "short"},
			Errors: contact.FieldErrors{
				"email":   "Invalid email",
				"message": "Message must be at least 10 characters",
			},
		}))
		assert.Contains(t, out, `value="Ada"`)
		assert.Contains(t, out, `<p id="email-error" class="form-error">Invalid email</p>`)
		assert.Contains(t, out, "Message must be at least 10 characters")
		assert.Contains(t, out, ">short</textarea>")
		assert.Equal(t, 2, strings.Count(out, `aria-invalid="true"`))
	})

	t.Run("static", func(t *testing.T) {
		out := render(t, ContactForm(ContactFormProps{Static: true, Email: "ada@example.com"}))
		assert.Contains(t, out, `action="mailto:ada@example.com"`)
		assert.Contains(t, out, `enctype="text/plain"`)
		assert.NotContains(t, out, "hx-post")
	})
}
