package main

import (
	"html/template"

	"github.com/Zachkp/portfolio/internal/content"
)

// newCatalog assembles the site content. Lookups here use MustGet: a typo in
// a name is a bug in this file and should stop the program at startup.
func newCatalog() *content.Catalog {
	areas := content.NewAreaList(
		"Backend",
		"Database Development",
		"Digital Graphics",
		"Frontend",
		"Game Development",
		"Programming",
		"Scripting",
		"Systems Programming",
		"Web Development",
	)

	tools := content.NewToolList(
		"Visual Studio Code",
		"Git",
		"Cargo",
		"CMake",
		"Trunk",
	)

	skills := content.NewSkillList(
		content.Skill{
			ID:   0,
			Name: "Rust",
			Areas: areas.MustGetAll(
				"Backend",
				"Frontend",
				"Game Development",
				"Scripting",
				"Systems Programming",
				"Web Development",
			),
			Competency:  content.CompetencyNovice,
			Description: "High-level systems programming language, designed for interacting more safely with low-level concepts.",
		},
		content.Skill{
			ID:   1,
			Name: "C++",
			Areas: areas.MustGetAll(
				"Backend",
				"Database Development",
				"Digital Graphics",
				"Frontend",
				"Game Development",
				"Scripting",
				"Systems Programming",
				"Web Development",
			),
			Competency: content.CompetencyNovice,
			Description: `Low-level, high-control, systems programming language. Higher level than roughly
2 of the hundreds of programming languages that exist in today's landscape.`,
		},
	)

	achievements := content.NewAchievementList(
		content.Achievement{
			ID:          0,
			Name:        "First Website",
			Completed:   content.NewDate(2023, 5, 24),
			Areas:       areas.MustGetAll("Programming", "Web Development"),
			Tools:       tools.MustGetAll("Visual Studio Code", "Git"),
			Skills:      skills.MustGetAll("Rust"),
			Description: "Built and published a personal website from scratch.",
		},
	)

	creations := content.NewCreationList(
		content.Creation{
			ID:          0,
			Name:        "Portfolio",
			Completed:   content.NewDate(2023, 9, 16),
			Areas:       areas.MustGetAll("Frontend", "Web Development"),
			Tools:       tools.MustGetAll("Cargo", "Trunk"),
			Skills:      skills.MustGetAll("Rust"),
			Description: "This site: skills, achievements, creations and articles in one place.",
		},
	)

	articles := content.NewArticleList(
		content.Article{
			ID:        0,
			Title:     "Hello World",
			Published: content.NewDate(2023, 8, 17),
			Topics: []content.Topic{
				areas.MustGet("Web Development"),
				tools.MustGet("Trunk"),
				content.Label("Meta"),
			},
			Summary: "Why this site exists and what will end up on it.",
			Content: template.HTML(`<div>
	<h1>Hello World</h1>
	<p>Every programmer's first program prints a greeting, so this site's first article does too.</p>
</div>`),
		},
	)

	return &content.Catalog{
		Profile: content.Profile{
			Name:     "Kira H",
			Greeting: "Hi, I'm Kira H, and I somehow exist, unfortunately for you.",
			About: []string{
				"I was born in the small town of Wincanton in rural England.",
				"It was a Wednesday, Wednesday the 14th of September, in 2005.",
			},
			Contact: []content.ContactLink{
				{ID: "Email", Href: "mailto:kira.hudson.v0@gmail.com", Title: "kira.hudson.v0@gmail.com", Icon: "fa-solid fa-square-envelope"},
				{ID: "GitHub", Href: "https://github.com/QueenKiraThePansexualPixie/", Title: "@QueenKiraThePansexualPixie", Icon: "fa-brands fa-square-github"},
				{ID: "Tumblr", Href: "https://www.tumblr.com/blog/kira-is-pan/", Title: "@kira-is-pan", Icon: "fa-brands fa-square-tumblr"},
				{ID: "Instagram", Href: "https://www.instagram.com/kirathepanpixie/", Title: "@kirathepanpixie", Icon: "fa-brands fa-square-instagram"},
				{ID: "Pinterest", Href: "https://www.pinterest.co.uk/kirathepansexualpixie/", Title: "@kirathepansexualpixie", Icon: "fa-brands fa-square-pinterest"},
				{ID: "Reddit", Href: "https://www.reddit.com/user/KiraThePanPixie/", Title: "@KiraThePanPixie", Icon: "fa-brands fa-square-reddit"},
			},
		},
		Areas:        areas,
		Tools:        tools,
		Skills:       skills,
		Achievements: achievements,
		Creations:    creations,
		Articles:     articles,
	}
}
