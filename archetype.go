package zeste

// Archetype is an ordered set of component type descriptors plus one
// erased column per non-zero-sized component, an auxiliary tag set for
// zero-sized components, and the roster of entities stored here.
type Archetype struct {
	hash        uint64
	infos       []TypeInfo
	tags        map[TypeHash]struct{}
	columnIndex map[TypeHash]int
	columns     []ErasedColumn
	roster      []uint64
	len         int
}

// InitArchetype partitions infos into zero-sized components (into tags)
// and non-zero-sized components (into columnIndex and columns, created
// empty with capacity 0), and computes hash via HashCompoundInfo. Panics
// with a DuplicateComponentError if infos names the same component hash
// twice, since the column index would collide.
func InitArchetype(infos []TypeInfo) *Archetype {
	a := &Archetype{
		infos:       infos,
		tags:        make(map[TypeHash]struct{}, len(infos)),
		columnIndex: make(map[TypeHash]int, len(infos)),
	}
	for _, info := range infos {
		if info.Layout.Size == 0 {
			if _, dup := a.tags[info.Hash]; dup {
				panic(addTrace(DuplicateComponentError{Hash: info.Hash}))
			}
			a.tags[info.Hash] = struct{}{}
			continue
		}
		if _, dup := a.columnIndex[info.Hash]; dup {
			panic(addTrace(DuplicateComponentError{Hash: info.Hash}))
		}
		a.columnIndex[info.Hash] = len(a.columns)
		a.columns = append(a.columns, EmptyErasedColumn(info))
	}
	a.hash = HashCompoundInfo(infos)
	return a
}

// Len reports the number of entities currently stored in this archetype.
func (a *Archetype) Len() int { return a.len }

// Hash returns the archetype's identity hash, equal to
// HashCompoundInfo(a.Infos()).
func (a *Archetype) Hash() uint64 { return a.hash }

// Infos returns the archetype's component descriptors, in the order
// given at construction.
func (a *Archetype) Infos() []TypeInfo { return a.infos }

// HasTag reports whether hash names a zero-sized component present on
// this archetype.
func (a *Archetype) HasTag(hash TypeHash) bool {
	_, ok := a.tags[hash]
	return ok
}

// Column returns a pointer to the erased column backing the non-zero-
// sized component named by hash, or nil if this archetype has no such
// column (either the component is absent, or it is a tag).
func (a *Archetype) Column(hash TypeHash) *ErasedColumn {
	i, ok := a.columnIndex[hash]
	if !ok {
		return nil
	}
	return &a.columns[i]
}

// Roster returns the entity IDs stored in this archetype, in insertion
// order. The returned slice must not be retained across a mutating call.
func (a *Archetype) Roster() []uint64 { return a.roster }

// AppendEntity appends id to the roster and grows every column's
// capacity to match the new roster length. The components themselves are
// not populated here — allocation growth only; value insertion is the
// caller's responsibility through a typed column cast.
func (a *Archetype) AppendEntity(alloc Allocator, id uint64) error {
	oldLen := a.len
	newLen := oldLen + 1
	for i := range a.columns {
		if err := a.columns[i].EnsureTotalCapacity(alloc, uintptr(newLen), oldLen); err != nil {
			return err
		}
	}
	a.roster = append(a.roster, id)
	a.len = newLen
	return nil
}

// Deinit releases every column's backing allocation (running each live
// element's dtor hook first) and drops the archetype's own bookkeeping.
// The infos slice is owned by the world and is not freed here.
func (a *Archetype) Deinit(alloc Allocator) {
	for i := range a.columns {
		a.columns[i].Deinit(alloc, a.len)
	}
	a.columns = nil
	a.columnIndex = nil
	a.tags = nil
	a.roster = nil
	a.len = 0
}
