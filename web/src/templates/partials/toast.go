package partials

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// ToastContainerID is where toasts stack.
const ToastContainerID = "toast-container"

// Toast kinds.
const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// ToastContainer renders the empty container toasts are appended to.
func ToastContainer() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<div id="`+ToastContainerID+`" class="toast-container" aria-live="polite"></div>`)
		return err
	})
}

// Toast renders a notification appended out-of-band to the toast container.
// The script removes it after a few seconds.
func Toast(kind, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w,
			`<div hx-swap-oob="beforeend:#`+ToastContainerID+`">`+
				`<div class="toast toast-`+templ.EscapeString(kind)+`" role="status" data-toast>`+
				templ.EscapeString(message)+
				`</div></div>`)
		return err
	})
}
