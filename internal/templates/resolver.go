// Package templates resolves free-text material and pattern codes from the product
// sheet to canonical descriptive templates.
package templates

import (
	"strings"

	"github.com/Simplici0/listing-pricer/internal/trie"
)

// Kind distinguishes the two template families.
type Kind string

const (
	KindMaterial Kind = "material"
	KindPattern  Kind = "pattern"
)

const paintableSuffix = "/paintable"

// Resolver looks codes up in the exact dictionaries first and falls back to a trie of
// normalized variant labels. It is immutable after construction.
type Resolver struct {
	materials *family
	patterns  *family
	aliases   map[string]string
}

type family struct {
	exact  map[string]Entry
	folded map[string]Entry
	labels *trie.Trie[Entry]
}

func newFamily(options []Option) *family {
	f := &family{
		exact:  make(map[string]Entry, len(options)),
		folded: make(map[string]Entry, len(options)),
		labels: trie.New[Entry](),
	}
	for _, opt := range options {
		entry := Entry{Variant: opt.Variant, Description: opt.Description}
		f.exact[opt.Key] = entry
		f.folded[strings.ToLower(opt.Key)] = entry
		f.labels.Insert(Normalize(opt.Variant), entry)
	}
	return f
}

func (f *family) lookup(code string) (Entry, bool) {
	if entry, ok := f.exact[code]; ok {
		return entry, true
	}
	if entry, ok := f.folded[strings.ToLower(code)]; ok {
		return entry, true
	}
	return f.labels.Search(Normalize(code))
}

// NewResolver builds a resolver. Options later in a slice win when two normalize to
// the same label.
func NewResolver(materials, patterns []Option, aliases map[string]string) *Resolver {
	r := &Resolver{
		materials: newFamily(materials),
		patterns:  newFamily(patterns),
		aliases:   make(map[string]string, len(aliases)),
	}
	for alias, key := range aliases {
		r.aliases[strings.ToLower(strings.TrimSpace(alias))] = key
	}
	return r
}

// DefaultResolver is built from the stock dictionaries.
func DefaultResolver() *Resolver {
	return NewResolver(MaterialOptions(), PatternOptions(), PatternAliases())
}

// Normalize lower-cases a label, drops the "/paintable" suffix token and trims it.
func Normalize(label string) string {
	label = strings.ToLower(label)
	label = strings.ReplaceAll(label, paintableSuffix, "")
	return strings.TrimSpace(label)
}

// Material resolves a material code.
func (r *Resolver) Material(code string) (Entry, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Entry{}, false
	}
	return r.materials.lookup(code)
}

// Pattern resolves a pattern code, honoring the English aliases.
func (r *Resolver) Pattern(code string) (Entry, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Entry{}, false
	}
	if key, ok := r.aliases[strings.ToLower(code)]; ok {
		code = key
	}
	return r.patterns.lookup(code)
}

// Resolve dispatches on kind.
func (r *Resolver) Resolve(kind Kind, code string) (Entry, bool) {
	if kind == KindPattern {
		return r.Pattern(code)
	}
	return r.Material(code)
}

// DefaultPattern is the pattern shown for carbon listings that name none.
func (r *Resolver) DefaultPattern() Entry {
	entry, _ := r.patterns.lookup(DefaultPatternKey)
	return entry
}

// Unknown is the placeholder callers emit for a code that did not resolve.
func Unknown(kind Kind, code string) Entry {
	return Entry{Variant: strings.TrimSpace(code), Description: "Unknown " + string(kind)}
}

// DescriptionLines splits a description into bullet lines, dropping blank lines and
// any leading dash already present.
func DescriptionLines(description string) []string {
	var lines []string
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "-"))
		if line != "" {
			lines = append(lines, "- "+line)
		}
	}
	return lines
}

// InstallationMethod renders the English installation text for a sheet method code,
// followed by the bumper removal advice and any free-form notes.
func InstallationMethod(method, notes, needRemove string) string {
	method = strings.TrimSpace(method)
	if method == "" {
		return "Replacement with OEM mounting points"
	}
	text, ok := installationMethods[method]
	if !ok {
		text = "Unknown Installation Method"
	}
	if advice := bumperRemoval[strings.TrimSpace(needRemove)]; advice != "" {
		text += " " + advice
	}
	if notes = strings.TrimSpace(notes); notes != "" {
		text += " Notes: " + notes
	}
	return text
}
