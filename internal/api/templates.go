package api

import (
	"embed"
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

//go:embed templates/*
var templateFS embed.FS

// newTemplates creates and parses the HTML templates with custom functions.
func newTemplates() *template.Template {
	funcs := template.FuncMap{
		"temp": func(f float64) string {
			return fmt.Sprintf("%.2f", f)
		},
		"temp1": func(f float64) string {
			return fmt.Sprintf("%.1f", f)
		},
		"years": func(ys []int) string {
			parts := make([]string, len(ys))
			for i, y := range ys {
				parts[i] = strconv.Itoa(y)
			}
			return strings.Join(parts, ", ")
		},
		"upper": strings.ToUpper,
	}
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))
}
