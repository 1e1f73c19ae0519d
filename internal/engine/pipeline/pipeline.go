// Package pipeline drives the scan, translate and render cycle.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/glance/internal/core/domain"
	"go.trai.ch/glance/internal/core/ports"
	"go.trai.ch/glance/internal/engine/detector"
	"go.trai.ch/glance/internal/engine/extract"
	"go.trai.ch/glance/internal/engine/gateway"
	"go.trai.ch/glance/internal/engine/overlay"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Coordinator runs an event-triggered scan loop and a periodic refresh loop over the
// observed tree, and applies configuration snapshots as they arrive.
type Coordinator struct {
	source    ports.TreeSource
	configs   ports.ConfigSource
	extractor *extract.Extractor
	detector  *detector.Detector
	gateway   *gateway.Gateway
	registry  *overlay.Registry
	surface   ports.Surface
	tracer    ports.Tracer
	logger    ports.Logger
	refresh   time.Duration

	tasks    sync.WaitGroup
	teardown sync.Once
}

// New creates a Coordinator.
func New(
	source ports.TreeSource,
	configs ports.ConfigSource,
	extractor *extract.Extractor,
	detector *detector.Detector,
	gateway *gateway.Gateway,
	registry *overlay.Registry,
	surface ports.Surface,
	tracer ports.Tracer,
	logger ports.Logger,
) *Coordinator {
	return &Coordinator{
		source:    source,
		configs:   configs,
		extractor: extractor,
		detector:  detector,
		gateway:   gateway,
		registry:  registry,
		surface:   surface,
		tracer:    tracer,
		logger:    logger,
		refresh:   domain.DefaultRefreshInterval,
	}
}

// WithRefreshInterval sets the period of the full refresh. A non-positive value keeps
// the default.
func (c *Coordinator) WithRefreshInterval(interval time.Duration) *Coordinator {
	if interval > 0 {
		c.refresh = interval
	}
	return c
}

// Run creates the surface and runs the pipeline until ctx is done, then tears it down.
// Individual scan or translation failures are logged and never stop the pipeline.
func (c *Coordinator) Run(ctx context.Context) error {
	if err := c.surface.Create(ctx); err != nil {
		return zerr.Wrap(err, domain.ErrSurfaceCreateFailed.Error())
	}
	defer c.Close()

	c.applyConfiguration(ctx, c.configs.Current())

	if err := c.configs.Start(ctx); err != nil {
		return zerr.Wrap(err, domain.ErrPipelineFailed.Error())
	}
	if err := c.source.Start(ctx); err != nil {
		return zerr.Wrap(err, domain.ErrPipelineFailed.Error())
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		for cfg := range c.configs.Snapshots() {
			c.applyConfiguration(ctx, cfg)
		}
		return nil
	})
	g.Go(func() error {
		for range c.source.Events() {
			if ctx.Err() != nil {
				return nil
			}
			c.logErr(c.Scan(ctx))
		}
		return nil
	})
	g.Go(func() error {
		return c.refreshLoop(ctx)
	})

	return g.Wait()
}

func (c *Coordinator) refreshLoop(ctx context.Context) error {
	ticker := time.NewTicker(c.refresh)
	defer ticker.Stop()

	for {
		c.logErr(c.Refresh(ctx))
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Once creates the surface, performs a single refresh, waits for the translations it
// requested and returns the resulting overlays. The pipeline is torn down afterwards.
func (c *Coordinator) Once(ctx context.Context) ([]overlay.Overlay, error) {
	if err := c.surface.Create(ctx); err != nil {
		return nil, zerr.Wrap(err, domain.ErrSurfaceCreateFailed.Error())
	}
	defer c.Close()

	c.applyConfiguration(ctx, c.configs.Current())

	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}
	c.Wait()

	return c.registry.Overlays(), nil
}

// Scan previews every region of the current tree and requests translations for the
// regions the change detector accepts.
func (c *Coordinator) Scan(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "scan", ports.WithRoot())
	defer span.End()

	root, err := c.root(ctx, span)
	if err != nil || root == nil {
		return err
	}
	c.scan(ctx, root, span)
	return nil
}

// Refresh retires the annotations of identities that are no longer visible and then
// scans the tree.
func (c *Coordinator) Refresh(ctx context.Context) error {
	ctx, span := c.tracer.Start(ctx, "refresh", ports.WithRoot())
	defer span.End()

	root, err := c.root(ctx, span)
	if err != nil || root == nil {
		return err
	}

	retired := c.registry.Reconcile(c.extractor.VisibleIDs(root))
	span.SetAttribute("retired", len(retired))
	if len(retired) > 0 {
		c.logger.Debug(fmt.Sprintf("retired %d annotations", len(retired)))
	}

	c.scan(ctx, root, span)
	return nil
}

// root returns the current tree root, or nil when there is nothing to scan.
func (c *Coordinator) root(ctx context.Context, span ports.Span) (ports.TreeNode, error) {
	root, err := c.source.Root(ctx)
	if errors.Is(err, domain.ErrTreeUnavailable) {
		span.SetAttribute("skipped", "tree_unavailable")
		return nil, nil
	}
	if err != nil {
		span.RecordError(err)
		return nil, zerr.Wrap(err, domain.ErrTreeUnavailable.Error())
	}
	return root, nil
}

func (c *Coordinator) scan(ctx context.Context, root ports.TreeNode, span ports.Span) {
	regions, requested := 0, 0
	for region := range c.extractor.Regions(root) {
		regions++
		c.registry.ShowPreview(region)
		if c.detector.ShouldTranslate(region.ID, region.Text) {
			requested++
			c.translate(ctx, region)
		}
	}
	span.SetAttribute("regions", regions)
	span.SetAttribute("requested", requested)
}

// translate resolves the translation of region in its own goroutine. The task outlives
// the pipeline context: on teardown it is abandoned and its result discarded.
func (c *Coordinator) translate(ctx context.Context, region domain.Region) {
	ctx = context.WithoutCancel(ctx)
	c.tasks.Add(1)
	go func() {
		defer c.tasks.Done()
		translated := c.gateway.Translate(ctx, region.Text)
		if !c.registry.ShowTranslation(region.ID, region.Text, translated) {
			c.logger.Debug(fmt.Sprintf("discarded translation for retired %s", region.ID))
		}
	}()
}

func (c *Coordinator) applyConfiguration(ctx context.Context, cfg domain.Configuration) {
	if err := c.gateway.UpdateConfiguration(ctx, cfg); err != nil {
		c.logger.Error(err)
	}
	c.surface.SetAppearance(cfg.Appearance())
}

// Wait blocks until every translation requested so far has completed.
func (c *Coordinator) Wait() {
	c.tasks.Wait()
}

// Close recycles every annotation, destroys the surface and releases the translator
// and the tree source. It does not wait for in-flight translations.
func (c *Coordinator) Close() {
	c.teardown.Do(func() {
		c.registry.Close()
		errs := errors.Join(
			c.surface.Destroy(),
			c.gateway.Close(),
			c.source.Stop(),
		)
		c.logErr(errs)
	})
}

func (c *Coordinator) logErr(err error) {
	if err != nil {
		c.logger.Error(err)
	}
}
