// Package catalog holds the algocards study content: an ordered, read-only
// collection of categories with their tutorials, flashcards and quizzes.
//
// The default catalog is built once from the embedded YAML files when the
// package is initialized and never changes afterwards, so it is safe for
// concurrent readers without locking. Callers must not modify the records
// they get back.
package catalog

import (
	"embed"
	"io/fs"
	"slices"
)

//go:embed data/*.yaml
var categoryData embed.FS

var std = mustLoadEmbedded()

func mustLoadEmbedded() *Catalog {
	sub, err := fs.Sub(categoryData, "data")
	if err != nil {
		panic("algocards: open embedded catalog: " + err.Error())
	}
	return MustLoadFS(sub)
}

// Catalog is an ordered set of categories indexed by id and by slug.
type Catalog struct {
	categories []*Category
	byID       map[string]*Category
	bySlug     map[string]*Category
}

// New builds a catalog over categories, keeping their order. When two
// categories share an id (or slug) the first one wins, matching an in-order scan.
func New(categories []*Category) *Catalog {
	c := &Catalog{
		categories: make([]*Category, 0, len(categories)),
		byID:       make(map[string]*Category, len(categories)),
		bySlug:     make(map[string]*Category, len(categories)),
	}
	for _, cat := range categories {
		if cat == nil {
			continue
		}
		c.categories = append(c.categories, cat)
		if _, ok := c.byID[cat.ID]; !ok {
			c.byID[cat.ID] = cat
		}
		if _, ok := c.bySlug[cat.Slug]; !ok {
			c.bySlug[cat.Slug] = cat
		}
	}
	return c
}

// Categories returns all categories in catalog order.
func (c *Catalog) Categories() []*Category {
	return slices.Clone(c.categories)
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// GetCategoryBySlug returns the category with the given slug, or nil if not found.
// The match is exact and case-sensitive.
func (c *Catalog) GetCategoryBySlug(slug string) *Category {
	return c.bySlug[slug]
}

// GetCategoryByID returns the category with the given id, or nil if not found.
func (c *Catalog) GetCategoryByID(id string) *Category {
	return c.byID[id]
}

// Default returns the embedded catalog.
func Default() *Catalog {
	return std
}

// Categories returns every category of the embedded catalog in order.
func Categories() []*Category {
	return std.Categories()
}

// GetCategoryBySlug looks up a category of the embedded catalog by slug.
func GetCategoryBySlug(slug string) *Category {
	return std.GetCategoryBySlug(slug)
}

// GetCategoryByID looks up a category of the embedded catalog by id.
func GetCategoryByID(id string) *Category {
	return std.GetCategoryByID(id)
}
