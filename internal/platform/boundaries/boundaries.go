// Package boundaries enforces the hexagonal import rules of the service
// modules under contexts/: inner layers never reach outward.
package boundaries

import (
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

type Violation struct {
	File   string
	Line   int
	Import string
	Rule   string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s:%d imports %q (%s)", v.File, v.Line, v.Import, v.Rule)
}

// Rules configures the checker for one Go module.
type Rules struct {
	// Module is the go.mod module path, e.g. "campaignhub".
	Module string
	// ApplicationLibraries are third-party prefixes the application layer may use.
	ApplicationLibraries []string
}

// Check walks root (the contexts directory) and returns every violation,
// sorted by file and line. Test files are skipped.
func Check(root string, rules Rules) ([]Violation, error) {
	var violations []Violation
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		parts := strings.Split(filepath.ToSlash(rel), "/")
		if len(parts) < 3 {
			return nil
		}
		servicePrefix := fmt.Sprintf("%s/contexts/%s/%s", rules.Module, parts[0], parts[1])
		fileViolations, err := checkFile(path, filepath.ToSlash(rel), parts[2], servicePrefix, rules)
		if err != nil {
			return err
		}
		violations = append(violations, fileViolations...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(violations, func(i, j int) bool {
		if violations[i].File != violations[j].File {
			return violations[i].File < violations[j].File
		}
		if violations[i].Line != violations[j].Line {
			return violations[i].Line < violations[j].Line
		}
		return violations[i].Import < violations[j].Import
	})
	return violations, nil
}

func checkFile(path string, rel string, layer string, servicePrefix string, rules Rules) ([]Violation, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", rel, err)
	}

	var violations []Violation
	for _, imp := range file.Imports {
		importPath := strings.Trim(imp.Path.Value, `"`)
		add := func(rule string) {
			violations = append(violations, Violation{
				File:   rel,
				Line:   fset.Position(imp.Pos()).Line,
				Import: importPath,
				Rule:   rule,
			})
		}

		if hasPrefix(importPath, rules.Module+"/contexts") && !hasPrefix(importPath, servicePrefix) {
			add("cross-module imports are forbidden")
		}

		var allowed []string
		switch layer {
		case "domain":
			allowed = []string{servicePrefix + "/domain"}
		case "ports":
			allowed = []string{servicePrefix + "/domain"}
		case "application":
			allowed = append([]string{
				servicePrefix + "/application",
				servicePrefix + "/domain",
				servicePrefix + "/ports",
			}, rules.ApplicationLibraries...)
		default:
			continue
		}
		if strings.Contains(importPath, "/adapters/") || hasPrefix(importPath, rules.Module+"/internal") {
			add(layer + " must not import adapters or runtime infrastructure")
			continue
		}
		external := hasPrefix(importPath, rules.Module) || !isStdlib(importPath)
		if external && !isAllowed(importPath, allowed) {
			add(layer + " import is outside explicit allowlist")
		}
	}
	return violations, nil
}

func hasPrefix(path string, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

func isAllowed(importPath string, allowedPrefixes []string) bool {
	for _, prefix := range allowedPrefixes {
		if hasPrefix(importPath, prefix) {
			return true
		}
	}
	return false
}

// isStdlib treats any path whose first element has no dot as standard library.
func isStdlib(importPath string) bool {
	first, _, _ := strings.Cut(importPath, "/")
	return !strings.Contains(first, ".")
}
