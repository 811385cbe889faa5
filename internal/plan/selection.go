package plan

// Kind discriminates the selection variants.
type Kind int

const (
	// KindAll selects every skill in the catalog.
	KindAll Kind = iota
	// KindCategory selects the skills of a single category.
	KindCategory
	// KindBundle selects the members of a named bundle.
	KindBundle
	// KindNames selects explicitly named skills or glob patterns.
	KindNames
)

// Selection is a single resolve request. Construct one with SelectAll,
// SelectCategory, SelectBundle, or SelectNames; the zero value selects all.
type Selection struct {
	Kind     Kind
	Category string
	Tag      string
	Names    []string
}

// SelectAll requests the full catalog.
func SelectAll() Selection {
	return Selection{Kind: KindAll}
}

// SelectCategory requests every skill in a category.
func SelectCategory(category string) Selection {
	return Selection{Kind: KindCategory, Category: category}
}

// SelectBundle requests the members of a bundle by tag.
func SelectBundle(tag string) Selection {
	return Selection{Kind: KindBundle, Tag: tag}
}

// SelectNames requests an explicit list of skill names. Entries containing
// glob metacharacters are expanded against the catalog at resolve time.
func SelectNames(names ...string) Selection {
	return Selection{Kind: KindNames, Names: names}
}
