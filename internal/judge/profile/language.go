// Package profile defines language build/run recipes used by the judge.
package profile

import (
	"sort"

	appErr "minijudge/pkg/errors"
)

// LanguageSpec defines how to materialize, compile and run a language.
// Command templates expand {src} and {bin} to absolute paths inside the
// scratch directory before being split into argument vectors.
type LanguageSpec struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	SourceFile     string   `yaml:"sourceFile"`
	BinaryFile     string   `yaml:"binaryFile"`
	CompileEnabled bool     `yaml:"compileEnabled"`
	CompileCmdTpl  string   `yaml:"compileCmdTpl"`
	RunCmdTpl      string   `yaml:"runCmdTpl"`
	Env            []string `yaml:"env"`
}

// Table is the read-only language lookup built once at startup.
type Table struct {
	languages map[string]LanguageSpec
}

// NewTable builds a table from config specs. An empty list falls back to the
// built-in defaults.
func NewTable(specs []LanguageSpec) *Table {
	if len(specs) == 0 {
		specs = Defaults()
	}
	languages := make(map[string]LanguageSpec, len(specs))
	for _, spec := range specs {
		if spec.ID == "" {
			continue
		}
		languages[spec.ID] = spec
	}
	return &Table{languages: languages}
}

// Get returns the spec for a language identifier.
func (t *Table) Get(id string) (LanguageSpec, error) {
	if id == "" {
		return LanguageSpec{}, appErr.ValidationError("language", "required")
	}
	spec, ok := t.languages[id]
	if !ok {
		return LanguageSpec{}, appErr.Newf(appErr.LanguageNotSupported, "language %q is not supported", id)
	}
	return spec, nil
}

// IDs returns the supported language identifiers in sorted order.
func (t *Table) IDs() []string {
	ids := make([]string, 0, len(t.languages))
	for id := range t.languages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Defaults returns the built-in language set.
func Defaults() []LanguageSpec {
	return []LanguageSpec{
		{
			ID:         "python",
			Name:       "Python 3",
			SourceFile: "main.py",
			RunCmdTpl:  "python3 {src}",
		},
		{
			ID:             "c",
			Name:           "C (gcc)",
			SourceFile:     "main.c",
			BinaryFile:     "main",
			CompileEnabled: true,
			CompileCmdTpl:  "gcc -O2 -o {bin} {src}",
			RunCmdTpl:      "{bin}",
		},
		{
			ID:             "cpp",
			Name:           "C++ (g++)",
			SourceFile:     "main.cpp",
			BinaryFile:     "main",
			CompileEnabled: true,
			CompileCmdTpl:  "g++ -O2 -o {bin} {src}",
			RunCmdTpl:      "{bin}",
		},
		{
			ID:             "java",
			Name:           "Java",
			SourceFile:     "Main.java",
			BinaryFile:     "Main.class",
			CompileEnabled: true,
			CompileCmdTpl:  "javac {src}",
			RunCmdTpl:      "java Main",
		},
	}
}
