package content

import (
	_ "embed"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

//go:embed portfolio.json
var embedded []byte

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the portfolio compiled into the binary. The embedded file is
// covered by tests, so a parse failure here is a programming error.
func Default() *Portfolio {
	p, err := Parse(embedded)
	if err != nil {
		panic(err)
	}
	return p
}

// DefaultJSON returns a copy of the embedded content file, a starting point
// for a custom one.
func DefaultJSON() []byte {
	return append([]byte(nil), embedded...)
}

// Load reads a portfolio JSON file from fs.
func Load(fs afero.Fs, path string) (p *Portfolio, err error) {
	var data []byte
	data, err = afero.ReadFile(fs, path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read content file: %s", path)
		return nil, err
	}

	p, err = Parse(data)
	if err != nil {
		err = errors.Wrapf(err, "content file %s", path)
		return nil, err
	}

	return p, err
}

// Parse decodes and validates portfolio JSON.
func Parse(data []byte) (p *Portfolio, err error) {
	p = &Portfolio{}
	err = json.Unmarshal(data, p)
	if err != nil {
		err = errors.Wrap(err, "failed to parse portfolio JSON")
		return nil, err
	}

	p.normalize()

	err = p.Validate()
	if err != nil {
		return nil, err
	}

	return p, err
}
