// Package pipeline sequences the raster transforms into the end-to-end
// coastline estimation run: per-channel blur, rank compression, another blur
// and Sobel detection, then luma combination, cropping and the parallel
// foreground count.
package pipeline

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/tidemark/coastline-tools/internal/raster"
)

// Config holds every tunable of a pipeline run. The zero value is not
// usable; start from DefaultConfig.
type Config struct {
	// BlurPasses is the number of 4-neighbour blur passes applied to each
	// channel before compression. One further pass always runs after
	// compression.
	BlurPasses int

	// Retention is the fraction of singular values kept by the rank
	// compressor, in [0,1].
	Retention float64

	// EdgeThreshold is the Sobel gradient magnitude cutoff.
	EdgeThreshold float64

	// EdgePolicy selects which side of the threshold is marked. The default
	// reproduces the original inverted comparison; see raster.EdgePolicy.
	EdgePolicy raster.EdgePolicy

	// CropMargin is the fraction trimmed from each of the four edges of the
	// combined plane. Must be below 0.5.
	CropMargin float64

	// CountThreshold is the strict lower bound used by the final pixel
	// count.
	CountThreshold int

	// CountWorkers bounds the counter's worker pool; 0 means one per CPU.
	CountWorkers int
}

// DefaultConfig returns the parameters of the reference pipeline: four blur
// passes, 10% singular value retention, edge threshold 70 with the inverted
// mark policy, a 5% crop per side and a zero count threshold.
func DefaultConfig() Config {
	return Config{
		BlurPasses:    4,
		Retention:     0.1,
		EdgeThreshold: raster.DefaultEdgeThreshold,
		EdgePolicy:    raster.MarkBelowThreshold,
		CropMargin:    0.05,
	}
}

func (c Config) validate() error {
	if c.BlurPasses < 0 {
		return fmt.Errorf("blur passes %d must not be negative", c.BlurPasses)
	}
	if math.IsNaN(c.Retention) || c.Retention < 0 || c.Retention > 1 {
		return fmt.Errorf("retention %v out of range [0,1]", c.Retention)
	}
	if math.IsNaN(c.EdgeThreshold) || c.EdgeThreshold < 0 {
		return fmt.Errorf("edge threshold %v must not be negative", c.EdgeThreshold)
	}
	if math.IsNaN(c.CropMargin) || c.CropMargin < 0 || c.CropMargin >= 0.5 {
		return fmt.Errorf("crop margin %v out of range [0,0.5)", c.CropMargin)
	}
	if c.CountWorkers < 0 {
		return fmt.Errorf("count workers %d must not be negative", c.CountWorkers)
	}
	return nil
}

// ImageSource decodes a raster file into the pipeline's image type. The
// imaging package provides the production implementation.
type ImageSource interface {
	Load(path string) (*raster.Image, error)
}

// Pipeline runs the coastline estimation over loaded images. It is stateless
// apart from its configuration and safe for concurrent use.
type Pipeline struct {
	cfg Config
	log *logrus.Logger
}

// New validates the configuration and returns a ready pipeline. A nil logger
// discards all output.
func New(cfg Config, logger *logrus.Logger) (*Pipeline, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline config: %w", err)
	}
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Pipeline{cfg: cfg, log: logger}, nil
}

// Run processes one image through the full pipeline and returns the cropped
// grayscale edge plane.
//
// The three colour channels have no data dependency on each other and are
// processed concurrently. Any stage failure aborts the run with no partial
// result.
func (pl *Pipeline) Run(img *raster.Image) (*raster.Plane, error) {
	if img.Rows() == 0 || img.Cols() == 0 {
		return nil, fmt.Errorf("empty image: %dx%d", img.Rows(), img.Cols())
	}

	start := time.Now()
	pl.log.WithFields(logrus.Fields{
		"rows": img.Rows(),
		"cols": img.Cols(),
	}).Debug("pipeline run started")

	var (
		planes [3]*raster.Plane
		errs   [3]error
		wg     sync.WaitGroup
	)
	for ch := 0; ch < 3; ch++ {
		wg.Add(1)
		go func(ch int) {
			defer wg.Done()
			planes[ch], errs[ch] = pl.processChannel(img, ch)
		}(ch)
	}
	wg.Wait()

	for ch, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", ch, err)
		}
	}

	combined, err := raster.CombineGray(planes[0], planes[1], planes[2])
	if err != nil {
		return nil, fmt.Errorf("combine channels: %w", err)
	}

	cropped, err := raster.Crop(combined, raster.UniformMargins(pl.cfg.CropMargin))
	if err != nil {
		return nil, fmt.Errorf("crop result: %w", err)
	}

	pl.log.WithFields(logrus.Fields{
		"rows":     cropped.Rows(),
		"cols":     cropped.Cols(),
		"duration": time.Since(start),
	}).Debug("pipeline run finished")
	return cropped, nil
}

// processChannel applies the per-channel stage sequence:
// split, blur xN, compress, blur, edge detect.
func (pl *Pipeline) processChannel(img *raster.Image, channel int) (*raster.Plane, error) {
	start := time.Now()

	p, err := img.Channel(channel)
	if err != nil {
		return nil, err
	}

	p = raster.BlurN(p, pl.cfg.BlurPasses)

	p, err = raster.Compress(p, pl.cfg.Retention)
	if err != nil {
		return nil, fmt.Errorf("compress: %w", err)
	}

	p = raster.Blur(p)
	p = raster.DetectEdges(p, pl.cfg.EdgeThreshold, pl.cfg.EdgePolicy)

	pl.log.WithFields(logrus.Fields{
		"channel":  channel,
		"duration": time.Since(start),
	}).Debug("channel processed")
	return p, nil
}

// Measure runs the pipeline and counts the pixels above the configured
// threshold in the final plane. The count is the coastline length estimate.
func (pl *Pipeline) Measure(img *raster.Image) (int, error) {
	plane, err := pl.Run(img)
	if err != nil {
		return 0, err
	}

	var n int
	if pl.cfg.CountWorkers > 0 {
		n = raster.CountWorkers(plane, pl.cfg.CountThreshold, pl.cfg.CountWorkers)
	} else {
		n = raster.Count(plane, pl.cfg.CountThreshold)
	}

	pl.log.WithFields(logrus.Fields{
		"count":     n,
		"threshold": pl.cfg.CountThreshold,
	}).Info("coastline length estimated")
	return n, nil
}

// MeasureFile loads an image through the source and measures it.
func (pl *Pipeline) MeasureFile(src ImageSource, path string) (int, error) {
	img, err := src.Load(path)
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", path, err)
	}
	return pl.Measure(img)
}
