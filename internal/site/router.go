// Package site wires the content catalog to HTTP routes.
package site

import (
	"html/template"
	"net/http"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/view"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the gin engine serving every page of the site. The
// catalog is only read.
func NewRouter(cat *content.Catalog, tmpl *template.Template) *gin.Engine {
	r := gin.Default()
	// Match on the escaped path so an escaped "/" stays inside :key;
	// UnescapePathValues still hands handlers the decoded key.
	r.UseRawPath = true
	r.SetHTMLTemplate(tmpl)

	r.StaticFS("/static", http.FS(view.Static()))

	r.GET("/", func(c *gin.Context) {
		render(c, cat, view.Home(cat))
	})

	for _, kind := range content.Kinds {
		listRoutes(r, cat, kind)
	}

	r.GET("/contact", func(c *gin.Context) {
		render(c, cat, view.Contact(cat))
	})

	r.GET("/404", func(c *gin.Context) {
		render(c, cat, view.NotFoundPage())
	})

	r.NoRoute(func(c *gin.Context) {
		render(c, cat, view.NotFoundPage())
	})

	return r
}

// listRoutes registers /<kind> and /<kind>/:key for one content list.
func listRoutes(r *gin.Engine, cat *content.Catalog, kind content.Kind) {
	base := "/" + string(kind)

	r.GET(base, func(c *gin.Context) {
		render(c, cat, view.ForList(cat, kind))
	})

	// Route parameters are user input: a miss is the 404 page, never a panic.
	r.GET(base+"/:key", func(c *gin.Context) {
		render(c, cat, view.ForContent(cat.Find(kind, c.Param("key"))))
	})
}

func render(c *gin.Context, cat *content.Catalog, page view.Page) {
	c.HTML(page.Status, page.Template, gin.H{
		"Nav":     view.Nav,
		"Site":    cat.Profile,
		"Title":   page.Title,
		"Content": page.Data,
	})
}

// Routes lists every concrete page path: the fixed pages plus one detail
// path per item whose key is reachable by lookup. An empty key has no
// detail path of its own.
func Routes(cat *content.Catalog) []string {
	routes := []string{"/"}
	for _, kind := range content.Kinds {
		routes = append(routes, "/"+string(kind))
		seen := map[string]bool{}
		for _, key := range cat.Keys(kind) {
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			routes = append(routes, view.DetailPath(kind, key))
		}
	}
	return append(routes, "/contact")
}
