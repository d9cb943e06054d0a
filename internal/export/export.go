// Package export writes the portfolio as a static site: one HTML page plus
// its assets, ready for any static file host.
package export

import (
	"context"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/aswini27ms/folio/internal/page"
	"github.com/aswini27ms/folio/internal/rendering"
	"github.com/aswini27ms/folio/web/src/templates/pages"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// Options controls an export.
type Options struct {
	// OutDir receives index.html and the static directory.
	OutDir string
	// Assets are copied under OutDir/static.
	Assets fs.FS
	// ResumeFs and ResumePath locate a résumé to copy next to index.html.
	// An empty ResumePath skips it.
	ResumeFs   afero.Fs
	ResumePath string
	// Theme is the initial theme of the exported page.
	Theme string
}

// Result lists what an export wrote, relative to OutDir.
type Result struct {
	Files []string
}

// Export renders the page in static mode and writes it with its assets to
// dst.
func Export(ctx context.Context, dst afero.Fs, builder *page.Builder, renderer rendering.Renderer, opts Options) (Result, error) {
	var res Result

	if err := dst.MkdirAll(opts.OutDir, 0o755); err != nil {
		return res, errors.Wrapf(err, "failed to create output directory: %s", opts.OutDir)
	}

	props := builder.Home(page.Request{Theme: opts.Theme, Static: true})
	html, err := renderer.RenderComponent(ctx, pages.Home(props))
	if err != nil {
		return res, errors.Wrap(err, "failed to render page")
	}
	if err := write(dst, opts.OutDir, "index.html", html, &res); err != nil {
		return res, err
	}

	if opts.Assets != nil {
		err := fs.WalkDir(opts.Assets, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			data, err := fs.ReadFile(opts.Assets, p)
			if err != nil {
				return errors.Wrapf(err, "failed to read asset: %s", p)
			}
			return write(dst, opts.OutDir, path.Join("static", p), data, &res)
		})
		if err != nil {
			return res, err
		}
	}

	if opts.ResumePath != "" && opts.ResumeFs != nil {
		data, err := afero.ReadFile(opts.ResumeFs, opts.ResumePath)
		if err != nil {
			return res, errors.Wrapf(err, "failed to read resume: %s", opts.ResumePath)
		}
		if err := write(dst, opts.OutDir, builder.ResumeFile(), data, &res); err != nil {
			return res, err
		}
	}

	slog.Info("Static site exported", "out", opts.OutDir, "files", len(res.Files))
	return res, nil
}

func write(dst afero.Fs, outDir, name string, data []byte, res *Result) error {
	target := filepath.Join(outDir, filepath.FromSlash(name))
	if err := dst.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", name)
	}
	if err := afero.WriteFile(dst, target, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", name)
	}
	res.Files = append(res.Files, name)
	return nil
}
