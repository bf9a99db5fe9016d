// Package renderer turns computed series into markdown reports.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/lifedash/networth"
)

//go:embed templates/*.md
var templates embed.FS

// SeriesRenderOptions holds configuration for rendering a series report.
type SeriesRenderOptions struct {
	SkipBreakdown bool // Do not render the per-asset columns.
}

// seriesView is the template-facing shape of a series.
type seriesView struct {
	TodayNetWorth     string
	ProjectedNetWorth string
	Projecting        bool
	Assets            []networth.Asset
	Rows              []seriesRow
}

type seriesRow struct {
	Date          string
	Total         string
	Contributions string
	Marker        string // "*" on projected rows, "=" on today
	ByAsset       []string
}

// RenderSeries renders the computed series to a markdown string.
func RenderSeries(s *networth.Series, opts SeriesRenderOptions) string {
	view := seriesView{
		TodayNetWorth:     s.TodayNetWorth.String(),
		ProjectedNetWorth: s.ProjectedNetWorth.String(),
		Projecting:        !s.ProjectedNetWorth.IsZero(),
	}
	if !opts.SkipBreakdown {
		view.Assets = s.Assets
	}
	today := todayOf(s)
	for _, pt := range s.Points {
		row := seriesRow{
			Date:          pt.Date.String(),
			Total:         pt.Total.String(),
			Contributions: pt.Contributions.String(),
		}
		switch {
		case pt.Projected:
			row.Marker = "*"
		case pt.Date == today:
			row.Marker = "="
		}
		for _, asset := range view.Assets {
			if worth, ok := pt.ByAsset[asset.ID]; ok {
				row.ByAsset = append(row.ByAsset, worth.String())
			} else {
				row.ByAsset = append(row.ByAsset, "")
			}
		}
		view.Rows = append(view.Rows, row)
	}
	return renderTemplate("series", "templates/series.md", nil, view)
}

// todayOf finds the pivot date of a series: the last unprojected point.
func todayOf(s *networth.Series) networth.Date {
	var today networth.Date
	for _, pt := range s.Points {
		if !pt.Projected {
			today = pt.Date
		}
	}
	return today
}

// summaryView is the template-facing shape of the summary report.
type summaryView struct {
	Date              string
	TodayNetWorth     string
	Contributions     string
	Gain              string
	GainPercent       string
	ProjectedNetWorth string
	ProjectionEnd     string
	Progress          string
	Projecting        bool
	Assets            []summaryAsset
}

type summaryAsset struct {
	Name  string
	Worth string
}

// RenderSummary renders the two headline figures and today's breakdown.
func RenderSummary(s *networth.Series, cfg networth.ProjectionConfig, today networth.Date) string {
	view := summaryView{
		Date:              today.String(),
		TodayNetWorth:     s.TodayNetWorth.String(),
		ProjectedNetWorth: s.ProjectedNetWorth.String(),
		Projecting:        cfg.Active(today),
		ProjectionEnd:     cfg.End.String(),
		Progress:          s.Progress().String(),
		Gain:              s.Gain().SignedString(),
		GainPercent:       s.GainPercent().SignedString(),
	}
	var todayPoint *networth.SeriesPoint
	for i := range s.Points {
		if s.Points[i].Date == today {
			todayPoint = &s.Points[i]
		}
	}
	if todayPoint != nil {
		view.Contributions = todayPoint.Contributions.String()
		for _, asset := range s.Assets {
			if worth, ok := todayPoint.ByAsset[asset.ID]; ok {
				name := asset.Name
				if name == "" {
					name = asset.ID
				}
				view.Assets = append(view.Assets, summaryAsset{Name: name, Worth: worth.String()})
			}
		}
	}
	return renderTemplate("summary", "templates/summary.md", nil, view)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, readErr := fs.ReadFile(templates, file)
		if readErr != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
