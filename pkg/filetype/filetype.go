// Package filetype classifies paths into file-type tags used by hook filters.
package filetype

import (
	"path/filepath"
	"sort"
	"strings"
)

// Tags that do not derive from a text-format extension.
const (
	TagFile   = "file"
	TagText   = "text"
	TagBinary = "binary"
)

// extensionTags maps a lowercase file extension (without dot) to its tags.
// Every entry here is a text format unless listed in binaryExtensions.
var extensionTags = map[string][]string{
	"py":    {"python"},
	"pyi":   {"python", "pyi"},
	"go":    {"go"},
	"yaml":  {"yaml"},
	"yml":   {"yaml"},
	"json":  {"json"},
	"json5": {"json5"},
	"toml":  {"toml"},
	"md":    {"markdown"},
	"rst":   {"rst"},
	"txt":   {"plain-text"},
	"sh":    {"shell", "sh"},
	"bash":  {"shell", "bash"},
	"zsh":   {"shell", "zsh"},
	"js":    {"javascript"},
	"mjs":   {"javascript"},
	"ts":    {"ts"},
	"tsx":   {"tsx"},
	"jsx":   {"jsx"},
	"html":  {"html"},
	"css":   {"css"},
	"scss":  {"scss"},
	"xml":   {"xml"},
	"sql":   {"sql"},
	"proto": {"proto"},
	"rb":    {"ruby"},
	"rs":    {"rust"},
	"c":     {"c"},
	"h":     {"c", "header"},
	"cpp":   {"c++"},
	"hpp":   {"c++", "header"},
	"java":  {"java"},
	"tf":    {"terraform"},
	"ini":   {"ini"},
	"cfg":   {"ini"},
	"csv":   {"csv"},
	"svg":   {"svg", "xml"},
	"lock":  {"lockfile"},
}

// binaryExtensions lists extensions classified as binary instead of text.
var binaryExtensions = map[string][]string{
	"png":  {"png", "image"},
	"jpg":  {"jpeg", "image"},
	"jpeg": {"jpeg", "image"},
	"gif":  {"gif", "image"},
	"ico":  {"icon", "image"},
	"pdf":  {"pdf"},
	"zip":  {"zip", "archive"},
	"gz":   {"gzip", "archive"},
	"tar":  {"tar", "archive"},
	"whl":  {"wheel", "archive"},
	"so":   {"shared-object"},
	"exe":  {"exe"},
	"woff": {"woff", "font"},
	"ttf":  {"ttf", "font"},
}

// basenameTags maps exact basenames to extra tags.
var basenameTags = map[string][]string{
	"Dockerfile":     {"dockerfile"},
	"Makefile":       {"makefile"},
	"makefile":       {"makefile"},
	"go.mod":         {"go-mod"},
	"go.sum":         {"go-sum"},
	"uv.lock":        {"lockfile", "toml"},
	"poetry.lock":    {"lockfile", "toml"},
	"pyproject.toml": {"toml"},
	".gitignore":     {"gitignore"},
	".gitattributes": {"gitattributes"},
	"LICENSE":        {"license", "plain-text"},
}

// Tags returns the sorted set of type tags for a path. Classification is
// purely lexical (extension and basename) so the same path always yields
// the same tags, whether or not the file exists.
func Tags(path string) []string {
	set := map[string]struct{}{TagFile: {}}

	base := filepath.Base(path)
	if extra, ok := basenameTags[base]; ok {
		for _, tag := range extra {
			set[tag] = struct{}{}
		}
	}

	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(base)), ".")
	binary := false
	if tags, ok := binaryExtensions[ext]; ok {
		binary = true
		for _, tag := range tags {
			set[tag] = struct{}{}
		}
	} else if tags, ok := extensionTags[ext]; ok {
		for _, tag := range tags {
			set[tag] = struct{}{}
		}
	}

	if binary {
		set[TagBinary] = struct{}{}
	} else {
		set[TagText] = struct{}{}
	}

	result := make([]string, 0, len(set))
	for tag := range set {
		result = append(result, tag)
	}
	sort.Strings(result)
	return result
}

// Has reports whether the path carries the given tag.
func Has(path, tag string) bool {
	for _, t := range Tags(path) {
		if t == tag {
			return true
		}
	}
	return false
}

// Known reports whether a tag can ever be produced by the classifier.
// Config validation uses it to reject typoed type filters up front.
func Known(tag string) bool {
	switch tag {
	case TagFile, TagText, TagBinary:
		return true
	}
	for _, tags := range extensionTags {
		for _, t := range tags {
			if t == tag {
				return true
			}
		}
	}
	for _, tags := range binaryExtensions {
		for _, t := range tags {
			if t == tag {
				return true
			}
		}
	}
	for _, tags := range basenameTags {
		for _, t := range tags {
			if t == tag {
				return true
			}
		}
	}
	return false
}
