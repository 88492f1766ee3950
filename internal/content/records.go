package content

import "html/template"

// Content is anything the detail view can render. The variants are closed:
// Skill, Achievement, Creation, Article and NotFound. Renderers switch over
// all five.
//
//sumtype:decl
type Content interface {
	content()
}

// NotFound is the Content produced when a lookup misses.
type NotFound struct{}

type Skill struct {
	ID          int        `yaml:"id"`
	Name        string     `yaml:"name"`
	Areas       []Area     `yaml:"areas"`
	Competency  Competency `yaml:"competency"`
	Description string     `yaml:"description"`
}

// SkillNotFound is the placeholder skill for GetOr lookups.
var SkillNotFound = Skill{
	ID:          -1,
	Name:        "<ERR: Skill not found>",
	Competency:  CompetencyNone,
	Description: "<An Error Occurred - This Skill was not found>",
}

// Achievement is something earned, as opposed to a Creation, which is
// something made. The two share a shape but are never interchangeable.
type Achievement struct {
	ID          int     `yaml:"id"`
	Name        string  `yaml:"name"`
	Completed   Date    `yaml:"completed"`
	Areas       []Area  `yaml:"areas"`
	Tools       []Tool  `yaml:"tools"`
	Skills      []Skill `yaml:"skills"`
	Description string  `yaml:"description"`
}

type Creation struct {
	ID          int     `yaml:"id"`
	Name        string  `yaml:"name"`
	Completed   Date    `yaml:"completed"`
	Areas       []Area  `yaml:"areas"`
	Tools       []Tool  `yaml:"tools"`
	Skills      []Skill `yaml:"skills"`
	Description string  `yaml:"description"`
}

// Article is a written piece. Content is trusted markup authored in source.
type Article struct {
	ID        int           `yaml:"id"`
	Title     string        `yaml:"title"`
	Published Date          `yaml:"published"`
	Topics    []Topic       `yaml:"topics"`
	Summary   string        `yaml:"summary"`
	Content   template.HTML `yaml:"content"`
}

func (Skill) content()       {}
func (Achievement) content() {}
func (Creation) content()    {}
func (Article) content()     {}
func (NotFound) content()    {}

// SkillNames returns the names of the given skills in order.
func SkillNames(skills []Skill) []string {
	names := make([]string, 0, len(skills))
	for _, s := range skills {
		names = append(names, s.Name)
	}
	return names
}
