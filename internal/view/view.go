// Package view turns content into named templates and the data they render.
package view

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/view/static"
	"github.com/pkg/errors"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page is a rendered route: which template to execute, with what data, and
// the status to answer with.
type Page struct {
	Template string
	Title    string
	Status   int
	Data     any
}

// NavLink is one entry of the site navigation bar.
type NavLink struct {
	Href  string
	Label string
}

// Nav is the navigation shown on every page.
var Nav = []NavLink{
	{Href: "/", Label: "Home"},
	{Href: "/skills", Label: "Skills"},
	{Href: "/achievements", Label: "Achievements"},
	{Href: "/creations", Label: "Creations"},
	{Href: "/articles", Label: "Articles"},
	{Href: "/contact", Label: "Contact"},
}

// Templates parses the embedded templates. Dates are printed with
// dateLayout (see content.Date.Format).
func Templates(dateLayout string) (*template.Template, error) {
	funcs := template.FuncMap{
		"date": func(d content.Date) string {
			return d.Format(dateLayout)
		},
		"detailPath": DetailPath,
	}
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse templates")
	}
	return tmpl, nil
}

// Static returns the embedded stylesheet and images.
func Static() fs.FS {
	return static.FS
}

// DetailPath is the URL of one item under a listing route.
func DetailPath(kind content.Kind, key string) string {
	return "/" + string(kind) + "/" + url.PathEscape(key)
}

// ForContent picks the card for a single content value. A NotFound value
// gets the 404 page.
func ForContent(c content.Content) Page {
	switch v := c.(type) {
	case content.Skill:
		return Page{Template: "skill.html", Title: v.Name, Status: http.StatusOK, Data: v}
	case content.Achievement:
		return Page{Template: "achievement.html", Title: v.Name, Status: http.StatusOK, Data: v}
	case content.Creation:
		return Page{Template: "creation.html", Title: v.Name, Status: http.StatusOK, Data: v}
	case content.Article:
		return Page{Template: "article.html", Title: v.Title, Status: http.StatusOK, Data: v}
	case content.NotFound:
		return NotFoundPage()
	}
	// Only reachable with a nil Content.
	return NotFoundPage()
}

func NotFoundPage() Page {
	return Page{Template: "notfound.html", Title: "Error 404", Status: http.StatusNotFound}
}

// ForList renders every item of the list behind kind, in order.
func ForList(cat *content.Catalog, kind content.Kind) Page {
	switch kind {
	case content.KindSkill:
		return Page{Template: "skills.html", Title: "Skills", Status: http.StatusOK, Data: cat.Skills.Items()}
	case content.KindAchievement:
		return Page{Template: "achievements.html", Title: "Achievements", Status: http.StatusOK, Data: cat.Achievements.Items()}
	case content.KindCreation:
		return Page{Template: "creations.html", Title: "Creations", Status: http.StatusOK, Data: cat.Creations.Items()}
	case content.KindArticle:
		return Page{Template: "articles.html", Title: "Articles", Status: http.StatusOK, Data: cat.Articles.Items()}
	}
	return NotFoundPage()
}

func Home(cat *content.Catalog) Page {
	return Page{Template: "home.html", Title: "Home", Status: http.StatusOK, Data: cat.Profile}
}

func Contact(cat *content.Catalog) Page {
	return Page{Template: "contact.html", Title: "Contact", Status: http.StatusOK, Data: cat.Profile.Contact}
}
