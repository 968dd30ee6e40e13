package store

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

type Scope string

const (
	ScopeUser   Scope = "user"
	ScopeCwd    Scope = "cwd"
	ScopeRecent Scope = "recent"
)

// Candidate is a document file offered for selection. Display is what the
// picker shows; Path is only used once the user picks it.
type Candidate struct {
	Display string `json:"display" yaml:"display"`
	Path    string `json:"path" yaml:"path"`
	Scope   Scope  `json:"scope" yaml:"scope"`
}

// Discover lists *.todo files in the user lists directory and in cwd, in
// that order, each sorted by name. A file reachable from both scopes is
// listed once, under the user scope.
func Discover(listsDir, cwd string) ([]Candidate, error) {
	var out []Candidate
	seen := map[string]bool{}

	add := func(dir string, scope Scope, prefix string) error {
		if strings.TrimSpace(dir) == "" {
			return nil
		}
		ents, err := os.ReadDir(dir)
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		names := make([]string, 0, len(ents))
		for _, e := range ents {
			if e.IsDir() || filepath.Ext(e.Name()) != Extension {
				continue
			}
			names = append(names, e.Name())
		}
		sort.Strings(names)
		for _, name := range names {
			p, err := filepath.Abs(filepath.Join(dir, name))
			if err != nil {
				return err
			}
			if seen[p] {
				continue
			}
			seen[p] = true
			out = append(out, Candidate{
				Display: prefix + Stem(name),
				Path:    p,
				Scope:   scope,
			})
		}
		return nil
	}

	listsDir = ExpandHome(listsDir)
	if err := add(listsDir, ScopeUser, ContractHome(listsDir)+"/"); err != nil {
		return nil, err
	}
	if err := add(cwd, ScopeCwd, "./"); err != nil {
		return nil, err
	}
	return out, nil
}

// MergeRecent puts recently opened documents first and drops them from the
// discovered list so nothing shows twice.
func MergeRecent(recent []RecentDocument, discovered []Candidate) []Candidate {
	out := make([]Candidate, 0, len(recent)+len(discovered))
	seen := map[string]bool{}
	for _, r := range recent {
		if seen[r.Path] {
			continue
		}
		if _, err := os.Stat(r.Path); err != nil {
			continue
		}
		seen[r.Path] = true
		out = append(out, Candidate{
			Display: ContractHome(r.Path),
			Path:    r.Path,
			Scope:   ScopeRecent,
		})
	}
	for _, c := range discovered {
		if seen[c.Path] {
			continue
		}
		seen[c.Path] = true
		out = append(out, c)
	}
	return out
}
