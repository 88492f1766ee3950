package view

import (
	"bytes"
	"html/template"
	"io/fs"
	"net/http"
	"testing"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rust = content.Skill{
	ID:          0,
	Name:        "Rust",
	Areas:       []content.Area{"Backend", "Systems Programming"},
	Competency:  content.CompetencyNovice,
	Description: "Systems language.",
}

func render(t *testing.T, tmpl *template.Template, page Page) string {
	t.Helper()
	var buf bytes.Buffer
	err := tmpl.ExecuteTemplate(&buf, page.Template, map[string]any{
		"Nav":     Nav,
		"Site":    content.Profile{Name: "Kira"},
		"Title":   page.Title,
		"Content": page.Data,
	})
	require.NoError(t, err)
	return buf.String()
}

func TestForContentCoversEveryVariant(t *testing.T) {
	tmpl, err := Templates("D/M/Y")
	require.NoError(t, err)

	variants := []content.Content{
		rust,
		content.Achievement{Name: "Award"},
		content.Creation{Name: "Thing"},
		content.Article{Title: "Post"},
		content.NotFound{},
	}
	seen := map[string]bool{}
	for _, c := range variants {
		page := ForContent(c)
		assert.NotNil(t, tmpl.Lookup(page.Template), page.Template)
		seen[page.Template] = true
	}
	assert.Len(t, seen, len(variants))
}

func TestSkillCard(t *testing.T) {
	tmpl, err := Templates("")
	require.NoError(t, err)

	page := ForContent(rust)
	assert.Equal(t, http.StatusOK, page.Status)
	out := render(t, tmpl, page)
	assert.Contains(t, out, "Rust")
	assert.Contains(t, out, "Competency: Novice")
	assert.Contains(t, out, "<span>Backend. </span><span>Systems Programming. </span>")
	assert.Contains(t, out, `href="/skills/Rust"`)
}

func TestAccomplishmentCards(t *testing.T) {
	tmpl, err := Templates("Y-M-D")
	require.NoError(t, err)

	a := content.Achievement{
		Name:        "Certified",
		Completed:   content.NewDate(2023, 5, 24),
		Tools:       []content.Tool{"VS Code"},
		Skills:      []content.Skill{rust},
		Description: "Passed.",
	}
	out := render(t, tmpl, ForContent(a))
	assert.Contains(t, out, "2023-5-24")
	assert.Contains(t, out, "<span>VS Code. </span>")
	assert.Contains(t, out, "<span>Rust. </span>")
	assert.Contains(t, out, `<a href="/achievements/Certified">Certified</a>`)

	c := content.Creation{Name: "Site", Completed: content.NewDate(2023, 9, 16)}
	out = render(t, tmpl, ForContent(c))
	assert.Contains(t, out, "2023-9-16")
	assert.Contains(t, out, `<a href="/creations/Site">Site</a>`)
}

func TestArticleCardKeepsBodyMarkup(t *testing.T) {
	tmpl, err := Templates("")
	require.NoError(t, err)

	a := content.Article{
		Title:     "Hello <world>",
		Published: content.NewDate(2023, 8, 17),
		Topics:    []content.Topic{content.Area("Backend"), content.Label("Intro")},
		Content:   template.HTML("<h1>Body</h1>"),
	}
	out := render(t, tmpl, ForContent(a))
	assert.Contains(t, out, "<h1>Body</h1>")
	assert.Contains(t, out, "Hello &lt;world&gt;")
	assert.Contains(t, out, "17/8/2023")
	assert.Contains(t, out, "<span>Backend. </span><span>Intro. </span>")
	assert.Contains(t, out, `href="/articles/Hello%20%3Cworld%3E"`)
}

func TestNotFoundPage(t *testing.T) {
	tmpl, err := Templates("")
	require.NoError(t, err)

	page := ForContent(content.NotFound{})
	assert.Equal(t, http.StatusNotFound, page.Status)
	assert.Equal(t, NotFoundPage(), ForContent(nil))
	out := render(t, tmpl, page)
	assert.Contains(t, out, "Error 404 : Page Not Found")
}

func TestForList(t *testing.T) {
	tmpl, err := Templates("")
	require.NoError(t, err)

	cat := &content.Catalog{
		Skills: content.NewSkillList(rust, content.Skill{Name: "C++", Competency: content.CompetencyAdvanced}),
	}
	out := render(t, tmpl, ForList(cat, content.KindSkill))
	assert.Contains(t, out, "These are my skills.")
	assert.Less(t, bytes.Index([]byte(out), []byte("Rust")), bytes.Index([]byte(out), []byte("C++")))
	assert.Contains(t, out, "Competency: Advanced")

	assert.Equal(t, "notfound.html", ForList(cat, content.Kind("recipes")).Template)
}

func TestDetailPath(t *testing.T) {
	assert.Equal(t, "/skills/C++", DetailPath(content.KindSkill, "C++"))
	assert.Equal(t, "/articles/A%20Title", DetailPath(content.KindArticle, "A Title"))
}

func TestStatic(t *testing.T) {
	data, err := fs.ReadFile(Static(), "style.css")
	require.NoError(t, err)
	assert.Contains(t, string(data), ".card")

	_, err = fs.Stat(Static(), "icon.svg")
	assert.NoError(t, err)
}
