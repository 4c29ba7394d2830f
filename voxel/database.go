package voxel

import "sync"

// DataBase is the raw decompressed channel storage for one cube: parallel
// arrays of length (side+1)^3. Channels are structure-of-arrays on purpose;
// each compresses independently and far better than interleaved records
// would.
type DataBase struct {
	Count  int
	Values []FieldStrength

	// Gradient components, present when the descriptor has RegionHasGradient.
	DX, DY, DZ []int8

	// Colour channels, present when the descriptor has RegionHasColours.
	R, G, B, A []uint8

	// Texture coordinate channels, present when the descriptor has
	// RegionHasTexCoords.
	TX, TY []uint8
}

// NewDataBase allocates channel storage for count voxels per the flags.
func NewDataBase(count int, flags RegionFlags) *DataBase {
	db := &DataBase{
		Count:  count,
		Values: make([]FieldStrength, count),
	}
	if flags&RegionHasGradient != 0 {
		db.DX = make([]int8, count)
		db.DY = make([]int8, count)
		db.DZ = make([]int8, count)
	}
	if flags&RegionHasColours != 0 {
		db.R = make([]uint8, count)
		db.G = make([]uint8, count)
		db.B = make([]uint8, count)
		db.A = make([]uint8, count)
	}
	if flags&RegionHasTexCoords != 0 {
		db.TX = make([]uint8, count)
		db.TY = make([]uint8, count)
	}
	return db
}

// Pool leases and retires DataBase instances to avoid allocation churn
// between rebuilds. All methods are safe for concurrent use.
type Pool struct {
	mu     sync.Mutex
	count  int
	flags  RegionFlags
	growBy int
	free   []*DataBase
	leased map[*DataBase]struct{}
	closed bool
}

// NewPool creates a pool of DataBase instances of count voxels each,
// prepopulated with initial instances and growing by growBy when drained.
func NewPool(count int, flags RegionFlags, initial, growBy int) *Pool {
	if growBy < 1 {
		growBy = 1
	}
	p := &Pool{
		count:  count,
		flags:  flags,
		growBy: growBy,
		leased: make(map[*DataBase]struct{}),
	}
	p.grow(initial)
	return p
}

func (p *Pool) grow(n int) {
	for i := 0; i < n; i++ {
		p.free = append(p.free, NewDataBase(p.count, p.flags))
	}
}

// Lease checks an instance out of the pool, growing it when empty.
func (p *Pool) Lease() *DataBase {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.free) == 0 {
		p.grow(p.growBy)
	}
	db := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	p.leased[db] = struct{}{}
	return db
}

// Retire checks an instance back in. Returning an instance the pool did not
// issue is a caller bug and fails loudly.
func (p *Pool) Retire(db *DataBase) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.leased[db]; !ok {
		return ErrUnmatchedLease
	}
	delete(p.leased, db)
	p.free = append(p.free, db)
	return nil
}

// Outstanding reports the number of live leases.
func (p *Pool) Outstanding() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.leased)
}

// Close verifies every lease was retired. It fails with
// ErrLeasedResourcesOutstanding otherwise; the pool is unusable either way.
func (p *Pool) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	p.free = nil
	if len(p.leased) != 0 {
		return ErrLeasedResourcesOutstanding
	}
	return nil
}
