package content

import (
	"fmt"
	"iter"
)

// List is an ordered, read-only sequence with lookup by display key. Keys
// are not required to be unique: Get returns the first match in insertion
// order and later duplicates are only reachable by position.
type List[T any] struct {
	kind  string
	items []T
	key   func(T) string
}

func newList[T any](kind string, key func(T) string, items []T) List[T] {
	return List[T]{kind: kind, items: append([]T(nil), items...), key: key}
}

type (
	AreaList        = List[Area]
	ToolList        = List[Tool]
	SkillList       = List[Skill]
	AchievementList = List[Achievement]
	CreationList    = List[Creation]
	ArticleList     = List[Article]
)

func NewAreaList(areas ...Area) AreaList {
	return newList("Area", Area.String, areas)
}

func NewToolList(tools ...Tool) ToolList {
	return newList("Tool", Tool.String, tools)
}

func NewSkillList(skills ...Skill) SkillList {
	return newList("Skill", func(s Skill) string { return s.Name }, skills)
}

func NewAchievementList(achievements ...Achievement) AchievementList {
	return newList("Achievement", func(a Achievement) string { return a.Name }, achievements)
}

func NewCreationList(creations ...Creation) CreationList {
	return newList("Creation", func(c Creation) string { return c.Name }, creations)
}

func NewArticleList(articles ...Article) ArticleList {
	return newList("Article", func(a Article) string { return a.Title }, articles)
}

// Kind names the element type, e.g. "Skill".
func (l List[T]) Kind() string {
	return l.kind
}

// Key returns the display key of v.
func (l List[T]) Key(v T) string {
	return l.key(v)
}

// Get finds the first element whose key equals key exactly.
func (l List[T]) Get(key string) (T, bool) {
	for _, v := range l.items {
		if l.key(v) == key {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// GetOr is Get with a fallback value.
func (l List[T]) GetOr(key string, def T) T {
	if v, ok := l.Get(key); ok {
		return v
	}
	return def
}

// MustGet is for data the application assembles itself. A miss is a
// programming error and panics.
func (l List[T]) MustGet(key string) T {
	v, ok := l.Get(key)
	if !ok {
		panic(fmt.Sprintf("could not find %s %q in %sList", l.kind, key, l.kind))
	}
	return v
}

// MustGetAll resolves each key with MustGet.
func (l List[T]) MustGetAll(keys ...string) []T {
	out := make([]T, 0, len(keys))
	for _, k := range keys {
		out = append(out, l.MustGet(k))
	}
	return out
}

// At returns the element at position i. It panics when i is out of range.
func (l List[T]) At(i int) T {
	return l.items[i]
}

func (l List[T]) Len() int {
	return len(l.items)
}

// Items returns a copy of the elements in insertion order.
func (l List[T]) Items() []T {
	return append([]T(nil), l.items...)
}

func (l List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Keys returns every element's key in insertion order.
func (l List[T]) Keys() []string {
	keys := make([]string, 0, len(l.items))
	for _, v := range l.items {
		keys = append(keys, l.key(v))
	}
	return keys
}

// Duplicates lists keys held by more than one element, in the order their
// second occurrence appears.
func (l List[T]) Duplicates() []string {
	seen := make(map[string]int, len(l.items))
	var dups []string
	for _, v := range l.items {
		k := l.key(v)
		seen[k]++
		if seen[k] == 2 {
			dups = append(dups, k)
		}
	}
	return dups
}

// MarshalYAML writes the list as a plain sequence.
func (l List[T]) MarshalYAML() (interface{}, error) {
	return l.items, nil
}
