package frontend

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
)

// Page names accepted by ParsePages
const (
	PageEmployeeForm = "employee_form.html"
	PageEmployeeList = "employee_list.html"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// ParsePages parses every page together with the shared layout. Each page
// defines a "content" block rendered by the "layout" template.
func ParsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{PageEmployeeForm, PageEmployeeList} {
		tmpl, err := template.New(name).ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, err
		}
		pages[name] = tmpl
	}
	return pages, nil
}

// GetStaticFS returns the embedded stylesheet and script for HTTP serving
func GetStaticFS() (http.FileSystem, error) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}
	return http.FS(sub), nil
}
