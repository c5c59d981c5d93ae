package assets

import (
	"embed"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed decks/*.deck
var FS embed.FS

// Deck opens the builtin deck record with the given name (without the
// ".deck" suffix).
func Deck(name string) (io.ReadCloser, error) {
	return FS.Open(path.Join("decks", strings.ToLower(name)+".deck"))
}

// DeckNames lists the builtin decks, sorted.
func DeckNames() ([]string, error) {
	entries, err := fs.ReadDir(FS, "decks")
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".deck"); ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out, nil
}
