package text

import (
	_ "embed" // use go embed to import template
	"fmt"
	"io"
	"text/template"

	"github.com/gookit/color"

	"github.com/classlint/classlint"
	"github.com/classlint/classlint/issue"
)

var (
	errorTheme   = color.New(color.FgLightWhite, color.BgRed)
	warningTheme = color.New(color.FgBlack, color.BgYellow)
	defaultTheme = color.New(color.FgWhite, color.BgBlack)

	//go:embed template.txt
	templateContent string
)

// WriteReport write a (colorized) report in text format
func WriteReport(w io.Writer, data *classlint.ReportInfo, enableColor bool) error {
	t, e := template.
		New("classlint").
		Funcs(plainTextFuncMap(enableColor)).
		Parse(templateContent)
	if e != nil {
		return e
	}

	return t.Execute(w, data)
}

func plainTextFuncMap(enableColor bool) template.FuncMap {
	if enableColor {
		return template.FuncMap{
			"highlight": highlight,
			"danger":    color.Danger.Render,
			"notice":    color.Notice.Render,
			"success":   color.Success.Render,
		}
	}

	// by default those functions return the given content untouched
	return template.FuncMap{
		"highlight": func(t string, s issue.Score) string {
			return t
		},
		"danger":  fmt.Sprint,
		"notice":  fmt.Sprint,
		"success": fmt.Sprint,
	}
}

// highlight returns content t colored based on Score
func highlight(t string, s issue.Score) string {
	switch s {
	case issue.High:
		return errorTheme.Sprint(t)
	case issue.Medium:
		return warningTheme.Sprint(t)
	default:
		return defaultTheme.Sprint(t)
	}
}
