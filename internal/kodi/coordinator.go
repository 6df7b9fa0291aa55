// Package kodi keeps Kodi's video database and its sources.xml and
// mediasources.xml sidecars in step when sources are added or cleared.
package kodi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/vmunix/kodisrc/internal/source"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -destination=mocks/mock_stores.go -package=mocks github.com/vmunix/kodisrc/internal/kodi PathTable,SourcesStore,MediaSourcesStore

// Schema version 116 is used by Kodi 18 and 19.
const (
	DatabaseRelPath     = "userdata/Database/MyVideos116.db"
	SourcesRelPath      = "userdata/sources.xml"
	MediaSourcesRelPath = "userdata/mediasources.xml"
)

// PathTable is the source-owned part of the video database.
type PathTable interface {
	Insert(ctx context.Context, src source.Source) (bool, error)
	List(ctx context.Context) ([]PathRow, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) (int64, error)
}

// SourcesStore is the sources.xml document.
type SourcesStore interface {
	Add(src source.Source) (bool, error)
	ClearVideo() (int, error)
	VideoSources() ([]VideoSource, error)
}

// MediaSourcesStore is the mediasources.xml document.
type MediaSourcesStore interface {
	Add(src source.Source) (string, bool, error)
	Locations() ([]Location, error)
}

// Paths are the store locations under a Kodi directory.
type Paths struct {
	Root         string
	Userdata     string
	Database     string
	Sources      string
	MediaSources string
}

// PathsFor derives the store locations from the Kodi directory root.
func PathsFor(root string) Paths {
	return Paths{
		Root:         root,
		Userdata:     filepath.Join(root, "userdata"),
		Database:     filepath.Join(root, filepath.FromSlash(DatabaseRelPath)),
		Sources:      filepath.Join(root, filepath.FromSlash(SourcesRelPath)),
		MediaSources: filepath.Join(root, filepath.FromSlash(MediaSourcesRelPath)),
	}
}

// SourceStatus is a database source and whether both documents list it.
type SourceStatus struct {
	PathRow
	Name           string `json:"name,omitempty"`
	InSources      bool   `json:"in_sources"`
	InMediaSources bool   `json:"in_mediasources"`
	LocationID     string `json:"location_id,omitempty"`
}

// Coordinator applies source changes to all three stores of a Kodi directory.
// Nothing is rolled back across stores; every operation is safe to repeat.
type Coordinator struct {
	paths   Paths
	db      PathTable
	sources SourcesStore
	media   MediaSourcesStore
	log     *slog.Logger
}

// New returns a Coordinator for the Kodi directory root.
func New(root string, logger *slog.Logger) *Coordinator {
	p := PathsFor(root)
	return NewWithStores(p, NewDatabase(p.Database), NewSourcesFile(p.Sources), NewMediaSourcesFile(p.MediaSources), logger)
}

// NewWithStores returns a Coordinator over the given stores.
func NewWithStores(p Paths, db PathTable, sources SourcesStore, media MediaSourcesStore, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{
		paths:   p,
		db:      db,
		sources: sources,
		media:   media,
		log:     logger.With("component", "kodi"),
	}
}

// Paths returns the store locations.
func (c *Coordinator) Paths() Paths { return c.paths }

// ListSources returns every database row that has a content type.
func (c *Coordinator) ListSources(ctx context.Context) ([]PathRow, error) {
	return c.db.List(ctx)
}

// Status reports, for every database source, whether the sidecar documents
// carry a matching entry. The three stores are read concurrently.
func (c *Coordinator) Status(ctx context.Context) ([]SourceStatus, error) {
	var (
		rows      []PathRow
		videos    []VideoSource
		locations []Location
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rows, err = c.db.List(ctx)
		return err
	})
	g.Go(func() (err error) {
		videos, err = c.sources.VideoSources()
		return err
	})
	g.Go(func() (err error) {
		locations, err = c.media.Locations()
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(videos))
	for _, v := range videos {
		names[v.Path] = v.Name
	}
	ids := make(map[string]string, len(locations))
	for _, l := range locations {
		ids[l.Path] = l.ID
	}

	out := make([]SourceStatus, 0, len(rows))
	for _, r := range rows {
		s := SourceStatus{PathRow: r}
		s.Name, s.InSources = names[r.Path]
		s.LocationID, s.InMediaSources = ids[r.Path]
		out = append(out, s)
	}
	return out, nil
}

// InsertSource adds src to the database, mediasources.xml and sources.xml,
// in that order. A store that already holds src's path is left unchanged.
// The first failure is returned and later stores are not attempted.
func (c *Coordinator) InsertSource(ctx context.Context, src source.Source) error {
	unlock, err := lockUserdata(ctx, c.paths.Userdata)
	if err != nil {
		return err
	}
	defer unlock()

	log := c.log.With("name", src.Name(), "path", src.Path(), "content", src.Content())

	added, err := c.db.Insert(ctx, src)
	if err != nil {
		return fmt.Errorf("add source to database: %w", err)
	}
	if added {
		log.Info("added source to database", "scraper", src.Scraper())
	} else {
		log.Debug("database already has path")
	}

	id, added, err := c.media.Add(src)
	if err != nil {
		return fmt.Errorf("add source to mediasources: %w", err)
	}
	if added {
		log.Info("added network location", "id", id)
	} else {
		log.Debug("mediasources already has location", "id", id)
	}

	added, err = c.sources.Add(src)
	if err != nil {
		return fmt.Errorf("add source to sources: %w", err)
	}
	if added {
		log.Info("added video source")
	} else {
		log.Debug("sources already has video source")
	}

	return nil
}

// ClearSources deletes every database row with a content type and every
// video source from sources.xml. Both clears are attempted even if one
// fails; their errors are joined. mediasources.xml is not touched.
func (c *Coordinator) ClearSources(ctx context.Context) error {
	unlock, err := lockUserdata(ctx, c.paths.Userdata)
	if err != nil {
		return err
	}
	defer unlock()

	var errs []error
	if err := c.clearDatabase(ctx); err != nil {
		errs = append(errs, fmt.Errorf("clear database sources: %w", err))
	}

	removed, err := c.sources.ClearVideo()
	if err != nil {
		errs = append(errs, fmt.Errorf("clear video sources: %w", err))
	} else {
		c.log.Info("cleared video sources", "removed", removed)
	}

	return errors.Join(errs...)
}

func (c *Coordinator) clearDatabase(ctx context.Context) error {
	before, err := c.db.Count(ctx)
	if err != nil {
		return err
	}
	c.log.Debug("sources before clear", "count", before)

	deleted, err := c.db.Clear(ctx)
	if err != nil {
		return err
	}

	after, err := c.db.Count(ctx)
	if err != nil {
		return err
	}
	c.log.Debug("sources after clear", "count", after)
	c.log.Info("cleared database sources", "deleted", deleted)
	return nil
}
