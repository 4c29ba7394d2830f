package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// DeviceStore is a ByteStore over a WebGPU buffer. Uploads are restricted
// to the thread owning the device queue by contract.
type DeviceStore struct {
	device *wgpu.Device
	buf    *wgpu.Buffer
	label  string
	usage  wgpu.BufferUsage
}

// NewDeviceStore creates a device-backed store of n bytes. The usage is
// extended with CopyDst so the queue can write into it.
func NewDeviceStore(device *wgpu.Device, label string, usage wgpu.BufferUsage, n int) (*DeviceStore, error) {
	s := &DeviceStore{
		device: device,
		label:  label,
		usage:  usage | wgpu.BufferUsageCopyDst,
	}
	if err := s.Resize(n); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *DeviceStore) Size() int {
	if s.buf == nil {
		return 0
	}
	return int(s.buf.GetSize())
}

// Resize releases the current buffer and allocates a fresh one; contents
// are discarded, matching the ByteStore contract.
func (s *DeviceStore) Resize(n int) error {
	size := uint64(n)
	if size%4 != 0 {
		size += 4 - size%4
	}
	if s.buf != nil {
		s.buf.Release()
		s.buf = nil
	}
	buf, err := s.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: s.label,
		Size:  size,
		Usage: s.usage,
	})
	if err != nil {
		return fmt.Errorf("failed to create %s buffer: %w", s.label, err)
	}
	s.buf = buf
	return nil
}

func (s *DeviceStore) Write(off int, p []byte) error {
	if s.buf == nil || off < 0 || uint64(off+len(p)) > s.buf.GetSize() {
		return fmt.Errorf("%w: [%d, %d) of %d", ErrOutOfBounds, off, off+len(p), s.Size())
	}
	s.device.GetQueue().WriteBuffer(s.buf, uint64(off), p)
	return nil
}

// Buffer exposes the underlying WebGPU buffer for bind groups and draws.
func (s *DeviceStore) Buffer() *wgpu.Buffer { return s.buf }

func (s *DeviceStore) Release() {
	if s.buf != nil {
		s.buf.Release()
		s.buf = nil
	}
}
