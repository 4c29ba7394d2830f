package voxel

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
)

// WriteTo serializes the region: the world bounding box as six float32
// values, then for each present channel in canonical order an 8-byte length
// followed by the RLE bitstream. Readers must know the descriptor's channel
// flags out-of-band.
func (r *CubeDataRegion) WriteTo(w io.Writer) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int64
	bounds := []float32{
		r.bbox.Min[0], r.bbox.Min[1], r.bbox.Min[2],
		r.bbox.Max[0], r.bbox.Max[1], r.bbox.Max[2],
	}
	if err := binary.Write(w, binary.LittleEndian, bounds); err != nil {
		return n, fmt.Errorf("writing cube bounds: %w", err)
	}
	n += 24

	for _, ch := range r.compression.channels() {
		if err := binary.Write(w, binary.LittleEndian, uint64(len(ch.Bytes()))); err != nil {
			return n, fmt.Errorf("writing channel length: %w", err)
		}
		n += 8
		written, err := w.Write(ch.Bytes())
		n += int64(written)
		if err != nil {
			return n, fmt.Errorf("writing channel stream: %w", err)
		}
	}
	return n, nil
}

// ReadFrom replaces the region's contents from a stream produced by
// WriteTo with matching channel flags. Malformed input yields
// ErrStreamFormat.
func (r *CubeDataRegion) ReadFrom(in io.Reader) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	bounds := make([]float32, 6)
	if err := binary.Read(in, binary.LittleEndian, bounds); err != nil {
		return n, fmt.Errorf("%w: cube bounds: %v", ErrStreamFormat, err)
	}
	n += 24

	fresh := NewCompressedData(r.desc.GridPointCount, r.desc.Flags)
	for _, ch := range fresh.channels() {
		var size uint64
		if err := binary.Read(in, binary.LittleEndian, &size); err != nil {
			return n, fmt.Errorf("%w: channel length: %v", ErrStreamFormat, err)
		}
		n += 8
		if size > uint64(r.desc.GridPointCount)*8 {
			return n, fmt.Errorf("%w: channel length %d implausible", ErrStreamFormat, size)
		}
		buf := make([]byte, size)
		read, err := io.ReadFull(in, buf)
		n += int64(read)
		if err != nil {
			return n, fmt.Errorf("%w: channel stream: %v", ErrStreamFormat, err)
		}
		ch.SetBytes(buf)
	}

	// Validate before committing: every channel must decompress cleanly.
	probe := NewDataBase(r.desc.GridPointCount, r.desc.Flags)
	if err := fresh.Unpack(probe); err != nil {
		return n, fmt.Errorf("%w: %v", ErrStreamFormat, err)
	}

	r.bbox = BoundingBox{
		Min: mgl32.Vec3{bounds[0], bounds[1], bounds[2]},
		Max: mgl32.Vec3{bounds[3], bounds[4], bounds[5]},
	}
	r.compression = fresh
	return n, nil
}
