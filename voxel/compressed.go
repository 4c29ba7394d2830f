package voxel

// CompressedData is the at-rest form of a cube's voxels: one RLE channel
// per stored component, grouped by feature.
type CompressedData struct {
	flags RegionFlags

	Values Channel

	DX, DY, DZ Channel

	R, G, B, A Channel

	TX, TY Channel
}

// NewCompressedData prepares channel storage for the given features, with
// every channel representing an all-zero image of count bytes.
func NewCompressedData(count int, flags RegionFlags) *CompressedData {
	c := &CompressedData{flags: flags}
	zero := make([]byte, count)
	for _, ch := range c.channels() {
		ch.Compress(zero)
	}
	return c
}

// Flags reports the features this image stores.
func (c *CompressedData) Flags() RegionFlags { return c.flags }

// channels lists the present channels in canonical serialization order.
func (c *CompressedData) channels() []*Channel {
	chans := []*Channel{&c.Values}
	if c.flags&RegionHasGradient != 0 {
		chans = append(chans, &c.DX, &c.DY, &c.DZ)
	}
	if c.flags&RegionHasColours != 0 {
		chans = append(chans, &c.R, &c.G, &c.B, &c.A)
	}
	if c.flags&RegionHasTexCoords != 0 {
		chans = append(chans, &c.TX, &c.TY)
	}
	return chans
}

// fieldBytes views a FieldStrength slice as raw bytes for compression.
func fieldBytes(values []FieldStrength) []byte {
	b := make([]byte, len(values))
	for i, v := range values {
		b[i] = byte(v)
	}
	return b
}

func int8Bytes(values []int8) []byte {
	b := make([]byte, len(values))
	for i, v := range values {
		b[i] = byte(v)
	}
	return b
}

// Pack compresses a DataBase into this image.
func (c *CompressedData) Pack(db *DataBase) {
	c.Values.Compress(fieldBytes(db.Values))
	if c.flags&RegionHasGradient != 0 {
		c.DX.Compress(int8Bytes(db.DX))
		c.DY.Compress(int8Bytes(db.DY))
		c.DZ.Compress(int8Bytes(db.DZ))
	}
	if c.flags&RegionHasColours != 0 {
		c.R.Compress(db.R)
		c.G.Compress(db.G)
		c.B.Compress(db.B)
		c.A.Compress(db.A)
	}
	if c.flags&RegionHasTexCoords != 0 {
		c.TX.Compress(db.TX)
		c.TY.Compress(db.TY)
	}
}

// Unpack decompresses this image into a DataBase.
func (c *CompressedData) Unpack(db *DataBase) error {
	buf := make([]byte, db.Count)

	if err := c.Values.Decompress(buf); err != nil {
		return err
	}
	for i, b := range buf {
		db.Values[i] = FieldStrength(b)
	}

	if c.flags&RegionHasGradient != 0 {
		for _, pair := range []struct {
			ch  *Channel
			dst []int8
		}{{&c.DX, db.DX}, {&c.DY, db.DY}, {&c.DZ, db.DZ}} {
			if err := pair.ch.Decompress(buf); err != nil {
				return err
			}
			for i, b := range buf {
				pair.dst[i] = int8(b)
			}
		}
	}
	if c.flags&RegionHasColours != 0 {
		for _, pair := range []struct {
			ch  *Channel
			dst []uint8
		}{{&c.R, db.R}, {&c.G, db.G}, {&c.B, db.B}, {&c.A, db.A}} {
			if err := pair.ch.Decompress(pair.dst); err != nil {
				return err
			}
		}
	}
	if c.flags&RegionHasTexCoords != 0 {
		if err := c.TX.Decompress(db.TX); err != nil {
			return err
		}
		if err := c.TY.Decompress(db.TY); err != nil {
			return err
		}
	}
	return nil
}
