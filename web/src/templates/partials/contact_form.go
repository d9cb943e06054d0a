package partials

import (
	"github.com/aswini27ms/folio/internal/contact"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

// ContactFormID is the element POST /contact swaps.
const ContactFormID = "contact-form"

// ContactFormProps configures the contact form.
type ContactFormProps struct {
	Values contact.Form
	Errors contact.FieldErrors
	// Static pages post the form to a mailto link instead.
	Static bool
	Email  string
}

// ContactForm renders the form with any submitted values and inline errors.
func ContactForm(p ContactFormProps) g.Node {
	action := Action("/contact")
	if p.Static {
		action = Action("mailto:" + p.Email)
	}
	return Form(
		ID(ContactFormID),
		Class("contact-form"),
		Method("post"),
		action,
		g.If(p.Static, EncType("text/plain")),
		g.If(!p.Static, g.Group{
			hx.Post("/contact"),
			hx.Target("this"),
			hx.Swap("outerHTML"),
		}),
		g.Attr("novalidate"),
		H3(Class("contact-form-title"), g.Text("Send me a message")),
		field("name", "Name", p.Errors,
			Input(Type("text"), ID("name"), Name("name"), Value(p.Values.Name), Placeholder("Your name"), AutoComplete("name"), errAttrs("name", p.Errors)),
		),
		field("email", "Email", p.Errors,
			Input(Type("email"), ID("email"), Name("email"), Value(p.Values.Email), Placeholder("your.email@example.com"), AutoComplete("email"), errAttrs("email", p.Errors)),
		),
		field("message", "Message", p.Errors,
			Textarea(ID("message"), Name("message"), Rows("5"), Placeholder("Tell me about your project or just say hello!"), errAttrs("message", p.Errors), g.Text(p.Values.Message)),
		),
		Button(Type("submit"), Class("button button-primary"),
			Span(Aria("hidden", "true"), g.Text("➤ ")),
			g.Text("Send Message"),
		),
	)
}

func field(name, label string, errs contact.FieldErrors, control g.Node) g.Node {
	msg, hasErr := errs[name]
	return Div(
		c.Classes{"form-field": true, "has-error": hasErr},
		Label(For(name), g.Text(label)),
		control,
		g.If(hasErr, P(ID(name+"-error"), Class("form-error"), g.Text(msg))),
	)
}

func errAttrs(name string, errs contact.FieldErrors) g.Node {
	if !errs.Has(name) {
		return nil
	}
	return g.Group{
		Aria("invalid", "true"),
		Aria("describedby", name+"-error"),
	}
}
