// Package linear prints resolution results as plain, line oriented text or JSON.
package linear

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/depcache/internal/ui/output"
	"go.trai.ch/depcache/internal/ui/style"
	"go.trai.ch/zerr"
)

var _ ports.ResultPrinter = (*Printer)(nil)

// Printer renders resolution results, mapping source ids back to paths.
type Printer struct {
	paths   ports.SourcePathCache
	profile termenv.Profile
}

// Option configures a Printer.
type Option func(*Printer)

// WithColorProfile overrides the detected color profile.
func WithColorProfile(p termenv.Profile) Option {
	return func(pr *Printer) {
		pr.profile = p
	}
}

// NewPrinter creates a Printer resolving paths through paths.
func NewPrinter(paths ports.SourcePathCache, opts ...Option) *Printer {
	p := &Printer{paths: paths, profile: output.ColorProfile()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type includeView struct {
	ID        domain.SourceID   `json:"id"`
	Path      string            `json:"path"`
	Type      domain.SourceType `json:"type"`
	Signature int64             `json:"signature"`
}

type macroView struct {
	Name     string          `json:"name"`
	SourceID domain.SourceID `json:"sourceId"`
	Path     string          `json:"path"`
}

type partView struct {
	Name        string        `json:"name"`
	Regenerated bool          `json:"regenerated"`
	StaleEntry  string        `json:"staleEntry,omitempty"`
	Includes    []includeView `json:"includes"`
	UsedMacros  []macroView   `json:"usedMacros"`
}

// Print writes results to w in slice order.
func (p *Printer) Print(w io.Writer, results []domain.PartResult, format domain.OutputFormat) error {
	views := make([]partView, 0, len(results))
	for _, r := range results {
		v, err := p.view(r)
		if err != nil {
			return err
		}
		views = append(views, v)
	}

	if format == domain.OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(views); err != nil {
			return zerr.Wrap(err, "failed to encode results")
		}
		return nil
	}

	return p.printText(w, views)
}

func (p *Printer) view(r domain.PartResult) (partView, error) {
	dep := r.Resolution.Dependency
	v := partView{
		Name:        r.Name,
		Regenerated: r.Resolution.Regenerated,
		Includes:    make([]includeView, 0, len(dep.Includes)),
		UsedMacros:  make([]macroView, 0, len(dep.UsedMacros)),
	}

	if r.Resolution.Regenerated && r.Resolution.StaleEntry.IsValid() {
		path, err := p.path(r.Name, r.Resolution.StaleEntry)
		if err != nil {
			return partView{}, err
		}
		v.StaleEntry = path
	}

	for _, e := range dep.Includes {
		path, err := p.path(r.Name, e.ID)
		if err != nil {
			return partView{}, err
		}
		v.Includes = append(v.Includes, includeView{ID: e.ID, Path: path, Type: e.Type, Signature: e.Signature})
	}

	for _, m := range dep.UsedMacros {
		path, err := p.path(r.Name, m.SourceID)
		if err != nil {
			return partView{}, err
		}
		v.UsedMacros = append(v.UsedMacros, macroView{Name: m.Name, SourceID: m.SourceID, Path: path})
	}

	return v, nil
}

func (p *Printer) path(part string, id domain.SourceID) (string, error) {
	path, err := p.paths.Path(id)
	if err != nil {
		return "", zerr.With(err, "project_part", part)
	}
	return path, nil
}

func (p *Printer) printText(w io.Writer, views []partView) error {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(p.profile)
	name := r.NewStyle().Bold(true).Foreground(style.Iris)
	cached := r.NewStyle().Foreground(style.Slate)
	regenerated := r.NewStyle().Foreground(style.Green)
	detail := r.NewStyle().Foreground(style.Slate).Faint(true)

	for _, v := range views {
		var status string
		if v.Regenerated {
			status = regenerated.Render(style.Check + " regenerated")
			if v.StaleEntry != "" {
				status += " " + detail.Render("(stale: "+v.StaleEntry+")")
			}
		} else {
			status = cached.Render(style.Dot + " cached")
		}

		if _, err := fmt.Fprintf(w, "%s %s\n", name.Render(v.Name), status); err != nil {
			return zerr.Wrap(err, "failed to write results")
		}

		if _, err := fmt.Fprintf(w, "  includes (%d)\n", len(v.Includes)); err != nil {
			return zerr.Wrap(err, "failed to write results")
		}
		for _, inc := range v.Includes {
			if _, err := fmt.Fprintf(w, "    %s %s\n", inc.Path, detail.Render(inc.Type.String())); err != nil {
				return zerr.Wrap(err, "failed to write results")
			}
		}

		if _, err := fmt.Fprintf(w, "  macros (%d)\n", len(v.UsedMacros)); err != nil {
			return zerr.Wrap(err, "failed to write results")
		}
		for _, m := range v.UsedMacros {
			if _, err := fmt.Fprintf(w, "    %s %s\n", m.Name, detail.Render(m.Path)); err != nil {
				return zerr.Wrap(err, "failed to write results")
			}
		}
	}

	return nil
}
