// Package partials holds page fragments that htmx swaps independently of the
// full page.
package partials

import (
	"encoding/json"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
)

// vals renders an hx-vals attribute from v.
func vals(v map[string]string) g.Node {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return hx.Vals(string(b))
}
