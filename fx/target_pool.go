package fx

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
)

// maxTargetSide caps render-target dimensions before they reach the
// graphics backend, which panics instead of returning an error.
const maxTargetSide = 16384

// sizeKey packs a render target's width and height into a single integer
// so buckets can live in an integer-keyed map.
// Layout: [width: 32 bits][height: 32 bits].
type sizeKey uint64

func newSizeKey(w, h int) sizeKey {
	return sizeKey(uint64(uint32(w))<<32 | uint64(uint32(h)))
}

// Width returns the width stored in the upper 32 bits.
func (k sizeKey) Width() int {
	return int(uint32(k >> 32))
}

// Height returns the height stored in the lower 32 bits.
func (k sizeKey) Height() int {
	return int(uint32(k))
}

func (k sizeKey) String() string {
	return fmt.Sprintf("%dx%d", k.Width(), k.Height())
}

// Allocator creates an offscreen image of the given size. The default uses
// ebiten.NewImage; tests inject failing or counting allocators.
type Allocator func(w, h int) (*ebiten.Image, error)

func defaultAllocator(w, h int) (*ebiten.Image, error) {
	if w < 1 || h < 1 || w > maxTargetSide || h > maxTargetSide {
		return nil, fmt.Errorf("fx: render target size %dx%d out of range", w, h)
	}
	return ebiten.NewImage(w, h), nil
}

// PoolStats is a snapshot of render-target pool activity.
type PoolStats struct {
	Hits   int64 // acquisitions served from an idle target
	Misses int64 // acquisitions that allocated
	Live   int   // targets currently handed out
	Idle   int   // targets waiting for reuse
}

type targetBucket struct {
	free []*ebiten.Image
}

// TargetPool hands out offscreen render targets and reuses released ones
// of the same size. Not safe for concurrent use; the pipeline runs on the
// game loop's goroutine.
type TargetPool struct {
	alloc   Allocator
	buckets *intmap.Map[sizeKey, *targetBucket]
	keys    []sizeKey
	stats   PoolStats
}

// NewTargetPool returns a pool backed by alloc, or by ebiten.NewImage when
// alloc is nil.
func NewTargetPool(alloc Allocator) *TargetPool {
	if alloc == nil {
		alloc = defaultAllocator
	}
	return &TargetPool{
		alloc:   alloc,
		buckets: intmap.New[sizeKey, *targetBucket](8),
	}
}

// Acquire returns a w by h render target, reusing an idle one when
// available. The caller owns the target until Release.
func (p *TargetPool) Acquire(w, h int) (*ebiten.Image, error) {
	key := newSizeKey(w, h)
	if bucket, ok := p.buckets.Get(key); ok && len(bucket.free) > 0 {
		img := bucket.free[len(bucket.free)-1]
		bucket.free = bucket.free[:len(bucket.free)-1]
		p.stats.Hits++
		p.stats.Live++
		p.stats.Idle--
		return img, nil
	}
	img, err := p.alloc(w, h)
	if err != nil {
		return nil, err
	}
	p.stats.Misses++
	p.stats.Live++
	return img, nil
}

// Release returns a target to the pool for reuse. Releasing nil is a no-op.
func (p *TargetPool) Release(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := newSizeKey(b.Dx(), b.Dy())
	bucket, ok := p.buckets.Get(key)
	if !ok {
		bucket = &targetBucket{}
		p.buckets.Put(key, bucket)
		p.keys = append(p.keys, key)
	}
	bucket.free = append(bucket.free, img)
	p.stats.Live--
	p.stats.Idle++
}

// Dispose frees all idle targets and their GPU memory. Targets still
// handed out are untouched; the pool remains usable.
func (p *TargetPool) Dispose() {
	for _, key := range p.keys {
		bucket, ok := p.buckets.Get(key)
		if !ok {
			continue
		}
		for _, img := range bucket.free {
			img.Deallocate()
		}
		bucket.free = nil
		p.buckets.Del(key)
	}
	p.keys = p.keys[:0]
	p.stats.Idle = 0
}

// Stats returns a snapshot of pool counters.
func (p *TargetPool) Stats() PoolStats {
	return p.stats
}
