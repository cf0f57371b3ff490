package imaging

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/tidemark/coastline-tools/internal/raster"
)

// Cache provides thread-safe caching of decoded images to avoid redundant
// disk reads when the same source is measured with several parameter sets.
//
// Images are keyed by the exact path string passed to Load; different paths
// to the same file result in separate entries. Cached images remain in
// memory until removed via Evict or Clear.
type Cache struct {
	mu     sync.RWMutex
	images map[string]*raster.Image
}

// NewCache creates an empty image cache ready for concurrent use.
func NewCache() *Cache {
	return &Cache{images: make(map[string]*raster.Image)}
}

// Load returns the decoded image for path, reading and decoding it on the
// first call and serving the cached copy afterwards.
//
// Supported formats are those registered with disintegration/imaging (PNG,
// JPEG, GIF among others). Sources that decode to a single-channel layout
// are rejected: the pipeline needs three colour planes to split.
func (c *Cache) Load(path string) (*raster.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	src, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	switch src.(type) {
	case *image.Gray, *image.Gray16:
		return nil, fmt.Errorf("%s is single-channel; expected a 3-channel image", path)
	}

	img := raster.FromImage(src)

	c.mu.Lock()
	c.images[path] = img
	c.mu.Unlock()

	return img, nil
}

// Clear removes all images from the cache, freeing the associated memory.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*raster.Image)
	c.mu.Unlock()
}

// Evict removes a specific image from the cache by its path. Unknown paths
// are ignored.
func (c *Cache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Info contains metadata about a source image file.
type Info struct {
	Rows          int    `json:"rows"`
	Cols          int    `json:"cols"`
	Format        string `json:"format"`
	FileSizeBytes int64  `json:"file_size_bytes"`
}

// LoadInfo loads an image through the cache and reports its metadata. The
// format is determined by file extension, not file contents.
func LoadInfo(cache *Cache, path string) (*Info, error) {
	img, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	return &Info{
		Rows:          img.Rows(),
		Cols:          img.Cols(),
		Format:        format,
		FileSizeBytes: stat.Size(),
	}, nil
}
