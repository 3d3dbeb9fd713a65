package main

import (
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/aclements/facade"
)

// cacheVersion salts every key. Bump it when the analysis changes in a way
// that invalidates stored annotations.
const cacheVersion = 2

// A resultCache stores gob-encoded annotations in a directory, one file
// per analyzed mesh and palette.
type resultCache struct {
	dir string
}

// key identifies the analysis of mesh with pal. Palette entries are hashed
// in order, since order breaks quantization ties.
func (c *resultCache) key(mesh []byte, pal *facade.Palette) string {
	h := sha256.New()
	fmt.Fprintf(h, "facade v%d\n", cacheVersion)
	for _, e := range pal.Entries {
		fmt.Fprintf(h, "class %q %d %d %d %d\n", e.Name, e.ID, e.RGB[0], e.RGB[1], e.RGB[2])
	}
	fmt.Fprintf(h, "mesh %d\n", len(mesh))
	h.Write(mesh)
	return hex.EncodeToString(h.Sum(nil))
}

// load returns the annotation stored under key, if any.
func (c *resultCache) load(key string) (*facade.Annotation, bool) {
	f, err := os.Open(filepath.Join(c.dir, key))
	if err != nil {
		return nil, false
	}
	defer f.Close()
	var a facade.Annotation
	if err := gob.NewDecoder(f).Decode(&a); err != nil {
		log.Printf("ignoring bad cache entry %s: %s", key, err)
		return nil, false
	}
	return &a, true
}

// store saves a under key. Failures are only logged. Entries are written
// to a temporary file first so concurrent readers never see a partial
// entry.
func (c *resultCache) store(key string, a *facade.Annotation) {
	if err := os.MkdirAll(c.dir, 0777); err != nil {
		log.Printf("error creating cache: %s", err)
		return
	}
	f, err := os.CreateTemp(c.dir, key+".tmp*")
	if err != nil {
		log.Printf("error saving to cache: %s", err)
		return
	}
	err = gob.NewEncoder(f).Encode(a)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(f.Name(), filepath.Join(c.dir, key))
	}
	if err != nil {
		log.Printf("error saving to cache: %s", err)
		os.Remove(f.Name())
	}
}
