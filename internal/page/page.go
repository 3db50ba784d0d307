// Package page renders the static Spectrum DS documentation page for one set
// of theme controls.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/spectrum/internal/theme"
)

//go:embed templates/page.html.tmpl templates/page.css
var assets embed.FS

var pageTemplate = template.Must(template.ParseFS(assets, "templates/page.html.tmpl"))

// Data selects what the page shows.
type Data struct {
	Controls theme.Controls
	// Preset is the name of the preset the controls came from, if any.
	Preset string
	// Presets lists preset names offered in the showcase form.
	Presets []string
	// Interactive adds the control form; it only does something when the
	// page is served.
	Interactive bool
}

type swatchView struct {
	Label string
	Value string
	Style template.CSS
}

type tokenView struct {
	Label string
	Token string
	Value string
	Style template.CSS
}

type groupView struct {
	Title       string
	Description string
	Tokens      []tokenView
}

type sliderView struct {
	Name    string
	Label   string
	Min     int
	Max     int
	Value   string
	Reading string
}

type view struct {
	Title       string
	Description string
	RootCSS     template.CSS
	BaseCSS     template.CSS
	Dark        bool
	Mode        string

	Hero        Hero
	Foundations Section
	Showcase    Section
	Principles  Section

	Groups         []groupView
	PrincipleCards []Principle
	Sliders        []sliderView
	Swatches       []swatchView
	Snippet        string

	Preset      string
	Presets     []string
	Interactive bool
}

// Render writes the full HTML document for d.
func Render(w io.Writer, d Data) error {
	v, err := build(d)
	if err != nil {
		return err
	}
	if err := pageTemplate.Execute(w, v); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}

// RenderString is Render into a string.
func RenderString(d Data) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func build(d Data) (view, error) {
	base, err := assets.ReadFile("templates/page.css")
	if err != nil {
		return view{}, fmt.Errorf("read page stylesheet: %w", err)
	}

	p := theme.Project(theme.Derive(d.Controls))

	// The full mapping plus surface-950, which only the page's shadows use.
	root := strings.TrimSuffix(p.Vars.CSS(), "}") +
		fmt.Sprintf("  --surface-950: %s;\n}", p.Snapshot.Surface[theme.Surface950].Color)

	return view{
		Title:       Title,
		Description: Description,
		RootCSS:     template.CSS(root),
		BaseCSS:     template.CSS(base),
		Dark:        p.Snapshot.Dark,
		Mode:        d.Controls.Mode(),

		Hero:        hero,
		Foundations: foundations,
		Showcase:    showcase,
		Principles:  principlesSection,

		Groups:         groups(p.Vars),
		PrincipleCards: principles,
		Sliders:        sliderViews(d.Controls, p.Snapshot),
		Swatches:       swatchViews(p.Swatches()),
		Snippet:        p.Snippet,

		Preset:      d.Preset,
		Presets:     d.Presets,
		Interactive: d.Interactive,
	}, nil
}

func groups(vars theme.StyleVars) []groupView {
	out := make([]groupView, 0, len(tokenGroups))
	for _, g := range tokenGroups {
		gv := groupView{Title: g.Title, Description: g.Description}
		for _, ref := range g.Tokens {
			style := fmt.Sprintf("background: var(--%s); color: #0f172a; border-color: transparent;", ref.Token)
			if ref.Foreground {
				style = fmt.Sprintf("background: var(--surface-0); color: var(--%s); border-color: var(--%s);", ref.Token, ref.Token)
			}
			gv.Tokens = append(gv.Tokens, tokenView{
				Label: ref.Label,
				Token: "--" + ref.Token,
				Value: vars[ref.Token],
				Style: template.CSS(style),
			})
		}
		out = append(out, gv)
	}
	return out
}

func swatchViews(swatches []theme.Swatch) []swatchView {
	out := make([]swatchView, 0, len(swatches))
	for _, s := range swatches {
		out = append(out, swatchView{
			Label: s.Label,
			Value: s.Value,
			Style: template.CSS(fmt.Sprintf("background: %s; color: %s;", s.Value, s.TextColor)),
		})
	}
	return out
}

func sliderViews(c theme.Controls, s theme.Snapshot) []sliderView {
	return []sliderView{
		{Name: "hue", Label: "Accent hue", Min: 0, Max: 360, Value: number(c.Hue), Reading: number(c.Hue) + "°"},
		{Name: "saturation", Label: "Accent saturation", Min: 30, Max: 100, Value: number(c.Saturation), Reading: number(c.Saturation) + "%"},
		{Name: "lightness", Label: "Accent lightness", Min: 26, Max: 70, Value: number(c.Lightness), Reading: number(c.Lightness) + "%"},
		{Name: "depth", Label: "Surface depth", Min: 0, Max: 6, Value: number(c.Depth), Reading: number(c.Depth)},
		{Name: "radius", Label: "Radius", Min: 10, Max: 28, Value: number(c.Radius), Reading: fmt.Sprintf("%dpx", s.Radius.MD)},
	}
}

func number(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
