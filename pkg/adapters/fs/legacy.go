package fs

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/aretw0/filemark/pkg/core"
)

// loadLegacy reads the legacy binary store file. The legacy format is
// input-only: nothing writes it anymore except the encoder kept for tests
// and tooling.
func (r *Repository) loadLegacy() (core.Store, error) {
	path := filepath.Join(r.dir, r.legacy)

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w in %s", core.ErrNoStore, r.dir)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	defer f.Close()

	store, err := DecodeLegacy(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return store, nil
}

// DecodeLegacy decodes the legacy binary serialization of a store.
func DecodeLegacy(r io.Reader) (core.Store, error) {
	var store core.Store
	if err := gob.NewDecoder(r).Decode(&store); err != nil {
		return nil, err
	}
	if store == nil {
		store = core.Store{}
	}
	return store, nil
}

// EncodeLegacy writes the legacy binary serialization of a store.
func EncodeLegacy(w io.Writer, store core.Store) error {
	return gob.NewEncoder(w).Encode(store)
}
