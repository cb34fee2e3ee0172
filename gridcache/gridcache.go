// Package gridcache persists escape grids in a bbolt database, keyed by the
// parameters that produced them.
package gridcache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	bolt "go.etcd.io/bbolt"

	mandel "github.com/abdulmoid5/mandelbrot-visualizer"
)

const bucketGrids = "grids"

// ErrCorrupt is returned when a stored grid cannot be decoded.
var ErrCorrupt = errors.New("corrupt cache entry")

// Cache is safe for concurrent use.
type Cache struct {
	db *bolt.DB
}

// Open opens or creates the cache database at path.
func Open(path string) (*Cache, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("bolt.Open %q: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketGrids))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	return c.db.Close()
}

// Get returns the grid stored for p, if any.
func (c *Cache) Get(p mandel.Params) (*mandel.EscapeGrid, bool, error) {
	if err := p.Validate(); err != nil {
		return nil, false, err
	}
	var counts []int
	err := c.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketGrids)).Get(key(p))
		if v == nil {
			return nil
		}
		var err error
		counts, err = decodeCounts(v, p.Resolution.Width*p.Resolution.Height)
		return err
	})
	if err != nil || counts == nil {
		return nil, false, err
	}
	g, err := mandel.NewEscapeGrid(p, counts)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return g, true, nil
}

// Put stores g, replacing any grid with the same params.
func (c *Cache) Put(g *mandel.EscapeGrid) error {
	v := encodeCounts(g.Counts())
	return c.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketGrids)).Put(key(g.Params()), v)
	})
}

// Len returns the number of stored grids.
func (c *Cache) Len() (int, error) {
	var n int
	err := c.db.View(func(tx *bolt.Tx) error {
		n = tx.Bucket([]byte(bucketGrids)).Stats().KeyN
		return nil
	})
	return n, err
}

// key is the big-endian bit pattern of every parameter, so equal params
// always map to the same key.
func key(p mandel.Params) []byte {
	b := make([]byte, 0, 4*8+3*8)
	for _, f := range [...]float64{p.Region.Xmin, p.Region.Xmax, p.Region.Ymin, p.Region.Ymax} {
		b = binary.BigEndian.AppendUint64(b, math.Float64bits(f))
	}
	for _, n := range [...]int{p.Resolution.Width, p.Resolution.Height, p.MaxIter} {
		b = binary.BigEndian.AppendUint64(b, uint64(n))
	}
	return b
}

func encodeCounts(counts []int) []byte {
	b := make([]byte, 0, len(counts)*2)
	for _, c := range counts {
		b = binary.AppendUvarint(b, uint64(c))
	}
	return b
}

func decodeCounts(b []byte, n int) ([]int, error) {
	counts := make([]int, 0, n)
	for len(b) > 0 {
		v, k := binary.Uvarint(b)
		if k <= 0 {
			return nil, fmt.Errorf("%w: bad varint after %d counts", ErrCorrupt, len(counts))
		}
		counts = append(counts, int(v))
		b = b[k:]
	}
	if len(counts) != n {
		return nil, fmt.Errorf("%w: %d counts, want %d", ErrCorrupt, len(counts), n)
	}
	return counts, nil
}
