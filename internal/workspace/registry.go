package workspace

import (
	"sort"

	"github.com/seahorse-ai-ryan/tiledock/internal/domain/entity"
	"github.com/seahorse-ai-ryan/tiledock/internal/tiling"
)

// FloatingRecord is the out-of-tree state of a detached panel. While it
// exists it is the exclusive owner of the panel's content; it is created on
// undock/close and destroyed the moment the panel is re-embedded in the
// tree.
type FloatingRecord struct {
	Panel entity.Panel
	// Open distinguishes a visible floating window (true) from a closed,
	// hidden panel kept around for reopening (false).
	Open bool
	// Rect is the last known screen geometry, nil until the rendering layer
	// reports one or a default is assigned.
	Rect *entity.Rect
	// LastParent remembers the tabs container the panel was detached from,
	// for smart redocking. It may have been pruned since; dock resolution
	// re-validates it.
	LastParent tiling.TileID
}

// Registry maps panel identities to their floating records. Together with
// the tree it forms the exactly-one-location invariant: a panel identity is
// embedded as a pane or present here, never both, never neither.
type Registry struct {
	records map[entity.PanelID]*FloatingRecord
}

// NewRegistry creates an empty floating registry.
func NewRegistry() *Registry {
	return &Registry{records: make(map[entity.PanelID]*FloatingRecord)}
}

// Add stores a record under the panel's identity, replacing any previous
// record for that identity.
func (r *Registry) Add(rec *FloatingRecord) {
	r.records[rec.Panel.ID()] = rec
}

// Get returns the record for a panel identity.
func (r *Registry) Get(id entity.PanelID) (*FloatingRecord, bool) {
	rec, ok := r.records[id]
	return rec, ok
}

// Has reports whether a panel identity is floating (open or closed).
func (r *Registry) Has(id entity.PanelID) bool {
	_, ok := r.records[id]
	return ok
}

// Remove deletes and returns the record for a panel identity. The caller
// takes over ownership of the panel content.
func (r *Registry) Remove(id entity.PanelID) (*FloatingRecord, bool) {
	rec, ok := r.records[id]
	if !ok {
		return nil, false
	}
	delete(r.records, id)
	return rec, true
}

// Len returns the number of floating records.
func (r *Registry) Len() int { return len(r.records) }

// Open returns the records of visible floating panels, sorted by title for
// a stable draw order.
func (r *Registry) Open() []*FloatingRecord {
	return r.filter(true)
}

// Closed returns the records of hidden panels, sorted by title; the
// rendering layer lists these in its reopen menu.
func (r *Registry) Closed() []*FloatingRecord {
	return r.filter(false)
}

func (r *Registry) filter(open bool) []*FloatingRecord {
	var recs []*FloatingRecord
	for _, rec := range r.records {
		if rec.Open == open {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		ti, tj := recs[i].Panel.Title(), recs[j].Panel.Title()
		if ti == tj {
			return recs[i].Panel.ID() < recs[j].Panel.ID()
		}
		return ti < tj
	})
	return recs
}

// PanelIDs returns all floating panel identities.
func (r *Registry) PanelIDs() []entity.PanelID {
	ids := make([]entity.PanelID, 0, len(r.records))
	for id := range r.records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
