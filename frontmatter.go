package md2site

import (
	"strings"

	"github.com/alnah/go-md2site/internal/yamlutil"
)

// Meta holds the recognized front matter fields. All values are raw strings;
// date parsing happens during article assembly.
type Meta struct {
	Title   string `yaml:"title"`
	Date    string `yaml:"date"`
	Summary string `yaml:"summary"`
	Status  string `yaml:"status"`
}

// SplitFrontMatter separates an optional leading front matter block from the
// article body. The block is delimited by `---` lines and parsed as YAML; on
// a YAML error it degrades to a permissive key: value scanner instead of
// failing the build. A missing block returns a zero Meta and the source
// unchanged.
func SplitFrontMatter(src string) (Meta, string) {
	lines := strings.Split(normalizeLineEndings(src), "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return Meta{}, src
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) != "---" {
			continue
		}
		block := strings.Join(lines[1:i], "\n")
		body := strings.Join(lines[i+1:], "\n")
		return parseMetaBlock(block), body
	}

	// Opening delimiter without a closing one: not front matter.
	return Meta{}, src
}

// parseMetaBlock parses the delimited block, YAML first.
func parseMetaBlock(block string) Meta {
	var meta Meta
	if err := yamlutil.Unmarshal([]byte(block), &meta); err == nil {
		return meta
	}
	return scanMetaLines(block)
}

// scanMetaLines is the lenient fallback for blocks that predate YAML front
// matter: one key: value per line, keys lowercased, surrounding quotes
// stripped, # comment lines ignored. Unknown keys are dropped.
func scanMetaLines(block string) Meta {
	var meta Meta
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		value = strings.Trim(value, `"'`)
		switch strings.ToLower(strings.TrimSpace(key)) {
		case "title":
			meta.Title = value
		case "date":
			meta.Date = value
		case "summary":
			meta.Summary = value
		case "status":
			meta.Status = value
		}
	}
	return meta
}
