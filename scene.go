package overhang

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/overhang/spatial"
	"github.com/gekko3d/overhang/surface"
	"github.com/gekko3d/overhang/voxel"
	"github.com/gekko3d/overhang/work"
)

// TileID is a stable arena index of one terrain tile. Neighbor links are
// stored as IDs and resolved through the scene, never as pointers, so
// teardown and paging cannot leave dangling cycles.
type TileID int

// NoTile marks an unset neighbor link.
const NoTile TileID = -1

// Tile is one cube region and its renderable surface at a position in the
// terrain lattice.
type Tile struct {
	ID     TileID
	Coords [3]int
	YLevel voxel.YLevel

	Region     *voxel.CubeDataRegion
	Renderable *surface.MeshRenderable

	neighbors [spatial.CountMoore3DNeighbors]TileID
}

// Scene owns every tile of one terrain, the shared cube descriptor and
// voxel pool, the scene-wide surface builder, and the background request
// queue.
type Scene struct {
	opts    Options
	log     Logger
	desc    *voxel.CubeDescriptor
	pool    *voxel.Pool
	builder *surface.IsoSurfaceBuilder
	queue   *work.Queue
	factory surface.StoreFactory

	tiles []*Tile
	index map[[3]int]TileID
}

// NewScene validates the options and assembles the shared machinery.
func NewScene(opts Options, log Logger, factory surface.StoreFactory) (*Scene, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = NewNopLogger()
	}
	if factory == nil {
		factory = surface.MemoryStoreFactory
	}
	desc, err := voxel.NewCubeDescriptor(opts.SideVoxelCount, opts.CellScale, opts.ChannelFlags)
	if err != nil {
		return nil, err
	}
	s := &Scene{
		opts: opts,
		log:  log,
		desc: desc,
		pool: voxel.NewPool(desc.GridPointCount, opts.ChannelFlags, 4, 1),
		builder: surface.NewIsoSurfaceBuilder(desc, surface.Parameters{
			MaxLOD:                   opts.MaxLOD,
			NormalsType:              opts.NormalsType,
			FlipNormals:              opts.FlipNormals,
			TransitionCellWidthRatio: opts.TransitionCellWidthRatio,
		}),
		queue:   work.NewQueue(opts.Workers, 64, log),
		factory: factory,
		index:   make(map[[3]int]TileID),
	}
	return s, nil
}

// Options returns the scene configuration.
func (s *Scene) Options() Options { return s.opts }

// Descriptor returns the shared cube descriptor.
func (s *Scene) Descriptor() *voxel.CubeDescriptor { return s.desc }

// Builder returns the scene-wide surface builder.
func (s *Scene) Builder() *surface.IsoSurfaceBuilder { return s.builder }

// Queue returns the background request queue.
func (s *Scene) Queue() *work.Queue { return s.queue }

// AddTile creates the tile at lattice coordinates, linking it to already
// present neighbors in both directions.
func (s *Scene) AddTile(coords [3]int) (*Tile, error) {
	if _, exists := s.index[coords]; exists {
		return nil, fmt.Errorf("overhang: tile %v already present", coords)
	}
	side := float32(s.desc.Dimensions) * s.opts.CellScale
	min := mgl32.Vec3{
		float32(coords[0]) * side,
		float32(coords[1]) * side,
		float32(coords[2]) * side,
	}
	bbox := voxel.BoundingBox{Min: min, Max: min.Add(mgl32.Vec3{side, side, side})}

	region := voxel.NewCubeDataRegion(s.desc, s.pool, bbox)
	t := &Tile{
		ID:         TileID(len(s.tiles)),
		Coords:     coords,
		YLevel:     voxel.YLevel(coords[1]),
		Region:     region,
		Renderable: surface.NewMeshRenderable(region, s.opts.MaxLOD, s.opts.InitialVertexCapacity, s.factory),
	}
	for n := range t.neighbors {
		t.neighbors[n] = NoTile
	}
	s.tiles = append(s.tiles, t)
	s.index[coords] = t.ID

	for n := spatial.Moore3DNeighbor(0); n < spatial.CountMoore3DNeighbors; n++ {
		if other, ok := s.index[neighborCoords(coords, n)]; ok && other != t.ID {
			t.neighbors[n] = other
			s.tiles[other].neighbors[n.Opposite()] = t.ID
		}
	}
	return t, nil
}

// Tile resolves a tile by ID, nil when out of range or removed.
func (s *Scene) Tile(id TileID) *Tile {
	if id < 0 || int(id) >= len(s.tiles) {
		return nil
	}
	return s.tiles[id]
}

// TileAt resolves a tile by lattice coordinates.
func (s *Scene) TileAt(coords [3]int) *Tile {
	id, ok := s.index[coords]
	if !ok {
		return nil
	}
	return s.tiles[id]
}

// Neighbor resolves a tile's neighbor through the arena.
func (s *Scene) Neighbor(id TileID, n spatial.Moore3DNeighbor) *Tile {
	t := s.Tile(id)
	if t == nil {
		return nil
	}
	return s.Tile(t.neighbors[n])
}

// RemoveTile unlinks and discards a tile. Neighbor links into it resolve
// to nil afterwards.
func (s *Scene) RemoveTile(id TileID) {
	t := s.Tile(id)
	if t == nil {
		return
	}
	for n := spatial.Moore3DNeighbor(0); n < spatial.CountMoore3DNeighbors; n++ {
		if other := s.Tile(t.neighbors[n]); other != nil {
			other.neighbors[n.Opposite()] = NoTile
		}
	}
	delete(s.index, t.Coords)
	t.Renderable.DeleteGeometry()
	s.tiles[id] = nil
}

// EnqueueBuild schedules a background triangulation of one tile. The
// returned request ID cancels it while still queued.
func (s *Scene) EnqueueBuild(id TileID, lod int, stitches spatial.Touch3DFlags, onDone func(error)) work.RequestID {
	t := s.Tile(id)
	return s.queue.Submit(func() any {
		return s.builder.EnqueueBuild(
			t.Region, t.Renderable.Shadow(), lod, stitches,
			s.opts.SurfaceFlags(), t.Renderable.VertexCapacity(),
		)
	}, func(result any) {
		var err error
		if result != nil {
			err = result.(error)
		}
		if err != nil {
			s.log.Errorf("build of tile %v failed: %v", t.Coords, err)
		}
		if onDone != nil {
			onDone(err)
		}
	})
}

// Close drains the background queue and verifies every voxel lease was
// returned.
func (s *Scene) Close() error {
	s.queue.Close()
	return s.pool.Close()
}

func neighborCoords(c [3]int, n spatial.Moore3DNeighbor) [3]int {
	d := neighborDelta(n)
	return [3]int{c[0] + d[0], c[1] + d[1], c[2] + d[2]}
}

// neighborDelta maps a Moore neighbor to its lattice offset, matching the
// touch-side axis convention: x west/east, y below/above, z north/south.
func neighborDelta(n spatial.Moore3DNeighbor) [3]int {
	switch n {
	case spatial.Moore3North:
		return [3]int{0, 0, -1}
	case spatial.Moore3South:
		return [3]int{0, 0, 1}
	case spatial.Moore3East:
		return [3]int{1, 0, 0}
	case spatial.Moore3West:
		return [3]int{-1, 0, 0}
	case spatial.Moore3Above:
		return [3]int{0, 1, 0}
	case spatial.Moore3Below:
		return [3]int{0, -1, 0}
	}
	if n >= spatial.BeginMoore3DEdges && n < spatial.BeginMoore3DCorners {
		a := neighborDelta(spatial.Moore3DNeighbor(spatial.OrthoPath(n, 0)))
		b := neighborDelta(spatial.Moore3DNeighbor(spatial.OrthoPath(n, 1)))
		return [3]int{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
	}
	switch n {
	case spatial.Moore3AboveNorthWest:
		return [3]int{-1, 1, -1}
	case spatial.Moore3AboveNorthEast:
		return [3]int{1, 1, -1}
	case spatial.Moore3AboveSouthWest:
		return [3]int{-1, 1, 1}
	case spatial.Moore3AboveSouthEast:
		return [3]int{1, 1, 1}
	case spatial.Moore3BelowNorthWest:
		return [3]int{-1, -1, -1}
	case spatial.Moore3BelowNorthEast:
		return [3]int{1, -1, -1}
	case spatial.Moore3BelowSouthWest:
		return [3]int{-1, -1, 1}
	case spatial.Moore3BelowSouthEast:
		return [3]int{1, -1, 1}
	}
	return [3]int{}
}
