package view

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

type ctxKey struct{}

func TestAdapters(t *testing.T) {
	t.Run("gomponent inside templ", func(t *testing.T) {
		var buf bytes.Buffer
		err := AdaptGomponentToTempl(h.Span(g.Text("hi"))).Render(context.Background(), &buf)
		require.NoError(t, err)
		assert.Equal(t, "<span>hi</span>", buf.String())
	})

	t.Run("templ inside gomponent", func(t *testing.T) {
		comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			_, err := io.WriteString(w, "<b>bold</b>")
			return err
		})

		var buf bytes.Buffer
		require.NoError(t, h.Div(AdaptTemplToGomponent(comp)).Render(&buf))
		assert.Equal(t, "<div><b>bold</b></div>", buf.String())
	})

	t.Run("context is forwarded", func(t *testing.T) {
		comp := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			v, _ := ctx.Value(ctxKey{}).(string)
			_, err := io.WriteString(w, v)
			return err
		})
		node := &TemplToGomponentAdapter{
			Component: comp,
			Ctx:       context.WithValue(context.Background(), ctxKey{}, "carried"),
		}

		var buf bytes.Buffer
		require.NoError(t, node.Render(&buf))
		assert.Equal(t, "carried", buf.String())
	})

	t.Run("nil node renders nothing", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, AdaptGomponentToTempl(nil).Render(context.Background(), &buf))
		assert.Empty(t, buf.String())
	})
}
