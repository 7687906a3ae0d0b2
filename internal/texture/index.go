package texture

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// Index maps lowercase texture stems to filesystem paths.
// When two files share a stem, PNG wins over TGA, and TGA over JPEG.
type Index struct {
	entries map[string]string
}

var priority = map[string]int{".jpg": 1, ".jpeg": 1, ".tga": 2, ".png": 3}

// BuildIndex walks dir and records every decodable image. A missing
// directory yields an empty index.
func BuildIndex(dir string) *Index {
	idx := &Index{entries: make(map[string]string)}
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !Supported(path) {
			return nil
		}
		idx.add(path)
		return nil
	})
	return idx
}

func (idx *Index) add(path string) {
	stem := stemOf(path)
	ext := strings.ToLower(filepath.Ext(path))
	if existing, ok := idx.entries[stem]; ok {
		if priority[strings.ToLower(filepath.Ext(existing))] >= priority[ext] {
			return
		}
	}
	idx.entries[stem] = path
}

func stemOf(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(name)
	return strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
}

// ResolvePath returns the path for a texture name, ignoring any directory
// prefix, extension and case. "Textures\\Crate.PNG" finds crate.png.
func (idx *Index) ResolvePath(texName string) (string, bool) {
	path, ok := idx.entries[stemOf(texName)]
	return path, ok
}

// Len returns the number of indexed textures.
func (idx *Index) Len() int {
	return len(idx.entries)
}
