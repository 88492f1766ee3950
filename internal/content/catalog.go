package content

import (
	"fmt"
	"strings"
)

// ContactLink is one entry on the contact page.
type ContactLink struct {
	ID    string `yaml:"id"`
	Href  string `yaml:"href"`
	Title string `yaml:"title"`
	Icon  string `yaml:"icon"`
}

// Profile holds the owner's static page text.
type Profile struct {
	Name     string        `yaml:"name"`
	Greeting string        `yaml:"greeting"`
	About    []string      `yaml:"about"`
	Contact  []ContactLink `yaml:"contact"`
}

// Catalog is every piece of site content. It is built once at startup and
// only read afterwards.
type Catalog struct {
	Profile      Profile         `yaml:"profile"`
	Areas        AreaList        `yaml:"areas"`
	Tools        ToolList        `yaml:"tools"`
	Skills       SkillList       `yaml:"skills"`
	Achievements AchievementList `yaml:"achievements"`
	Creations    CreationList    `yaml:"creations"`
	Articles     ArticleList     `yaml:"articles"`
}

// Kind selects one of the detail-capable lists.
type Kind string

const (
	KindSkill       Kind = "skills"
	KindAchievement Kind = "achievements"
	KindCreation    Kind = "creations"
	KindArticle     Kind = "articles"
)

// Kinds lists the detail kinds in navigation order.
var Kinds = []Kind{KindSkill, KindAchievement, KindCreation, KindArticle}

// Find resolves a detail lookup. Misses, including an unknown kind, give
// NotFound.
func (c *Catalog) Find(kind Kind, key string) Content {
	switch kind {
	case KindSkill:
		if v, ok := c.Skills.Get(key); ok {
			return v
		}
	case KindAchievement:
		if v, ok := c.Achievements.Get(key); ok {
			return v
		}
	case KindCreation:
		if v, ok := c.Creations.Get(key); ok {
			return v
		}
	case KindArticle:
		if v, ok := c.Articles.Get(key); ok {
			return v
		}
	}
	return NotFound{}
}

// Keys returns the lookup keys of the list behind kind.
func (c *Catalog) Keys(kind Kind) []string {
	switch kind {
	case KindSkill:
		return c.Skills.Keys()
	case KindAchievement:
		return c.Achievements.Keys()
	case KindCreation:
		return c.Creations.Keys()
	case KindArticle:
		return c.Articles.Keys()
	}
	return nil
}

func listName(kind Kind) string {
	switch kind {
	case KindSkill:
		return "SkillList"
	case KindAchievement:
		return "AchievementList"
	case KindCreation:
		return "CreationList"
	case KindArticle:
		return "ArticleList"
	}
	return string(kind)
}

// Problem is a data issue found by Validate. None of them stop the site from
// serving.
type Problem struct {
	List    string
	Key     string
	Message string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s %q: %s", p.List, p.Key, p.Message)
}

// FileSafeKey reports whether key can name a single directory in a static
// export. Empty keys, "." and "..", and keys containing a path separator
// cannot.
func FileSafeKey(key string) bool {
	switch key {
	case "", ".", "..":
		return false
	}
	return !strings.ContainsAny(key, `/\`)
}

// Validate reports duplicate keys, which make later entries unreachable by
// lookup, detail keys that cannot be exported as static files, and invalid
// dates, which are still displayed as given.
func (c *Catalog) Validate() []Problem {
	var problems []Problem
	dup := func(list string, keys []string) {
		for _, k := range keys {
			problems = append(problems, Problem{List: list, Key: k, Message: "duplicate key, only the first entry is reachable"})
		}
	}
	dup("AreaList", c.Areas.Duplicates())
	dup("ToolList", c.Tools.Duplicates())
	dup("SkillList", c.Skills.Duplicates())
	dup("AchievementList", c.Achievements.Duplicates())
	dup("CreationList", c.Creations.Duplicates())
	dup("ArticleList", c.Articles.Duplicates())

	for _, kind := range Kinds {
		for _, k := range c.Keys(kind) {
			if !FileSafeKey(k) {
				problems = append(problems, Problem{List: listName(kind), Key: k, Message: "key cannot be exported as a static page"})
			}
		}
	}

	invalid := func(list, key string, d Date) {
		if !d.IsValid() {
			problems = append(problems, Problem{List: list, Key: key, Message: "invalid date " + d.Format("Y-M-D")})
		}
	}
	for _, a := range c.Achievements.All() {
		invalid("AchievementList", a.Name, a.Completed)
	}
	for _, cr := range c.Creations.All() {
		invalid("CreationList", cr.Name, cr.Completed)
	}
	for _, a := range c.Articles.All() {
		invalid("ArticleList", a.Title, a.Published)
	}
	return problems
}
