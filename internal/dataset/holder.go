package dataset

import "sync/atomic"

// Holder publishes the dataset of the open replay. Loaders swap in complete
// snapshots; readers never see a partially parsed file.
type Holder struct {
	ds atomic.Pointer[Dataset]
}

// Current returns the loaded dataset, if any.
func (h *Holder) Current() (*Dataset, bool) {
	ds := h.ds.Load()
	return ds, ds != nil
}

// IsLoaded reports whether a dataset is available.
func (h *Holder) IsLoaded() bool {
	return h.ds.Load() != nil
}

// Store replaces the current dataset. Storing nil clears it.
func (h *Holder) Store(ds *Dataset) {
	h.ds.Store(ds)
}

// Clear drops the current dataset.
func (h *Holder) Clear() {
	h.ds.Store(nil)
}

// Load parses path and swaps the result in. On any error the holder is
// cleared so the overlay falls back to the no-data state.
func (h *Holder) Load(path string, hasHeader bool) error {
	ds, err := ParseFile(path, hasHeader)
	if err != nil {
		h.Clear()
		return err
	}
	h.Store(ds)
	return nil
}
