package glue

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/glue/pkg/fnv"
	"github.com/jlrickert/glue/pkg/sitemap"
)

type SitemapOptions struct {
	// RoutesPath is the YAML routes file. Empty uses sitemap.routes from config.
	RoutesPath string

	// V2 renders the styled sitemap.
	V2 bool

	Theme       string
	AdminLink   string
	EntityTypes []string
}

// Sitemap renders an HTML index of the routes file.
func (g *Glue) Sitemap(ctx context.Context, opts SitemapOptions) (string, error) {
	path, err := g.routesPath(opts.RoutesPath)
	if err != nil {
		return "", err
	}
	data, err := g.Runtime.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read routes: %w", err)
	}
	return g.renderSitemap(ctx, path, data, opts)
}

func (g *Glue) renderSitemap(ctx context.Context, path string, data []byte, opts SitemapOptions) (string, error) {
	lg := g.Runtime.Logger()

	table, err := sitemap.ParseRoutes(data)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	so := g.sitemapOptions(opts, table)
	lg.Debug("rendering sitemap", "routes", len(table.Routes), "v2", g.useV2(opts), "theme", so.Theme)

	if !g.useV2(opts) {
		return sitemap.Generate(table.Routes, so), nil
	}
	return sitemap.GenerateV2(table.Routes, so)
}

func (g *Glue) useV2(opts SitemapOptions) bool {
	return opts.V2 || g.Config.Sitemap.V2
}

// sitemapOptions merges flags, environment, config, and the routes file. The
// theme resolves flag, then BOOTSTRAP_THEME, then config.
func (g *Glue) sitemapOptions(opts SitemapOptions, table *sitemap.RouteTable) sitemap.Options {
	cfg := g.Config.Sitemap

	theme := strings.TrimSpace(opts.Theme)
	if theme == "" {
		theme = strings.TrimSpace(g.Runtime.Get(ThemeEnv))
	}
	if theme == "" {
		theme = cfg.Theme
	}

	admin := strings.TrimSpace(opts.AdminLink)
	if admin == "" {
		admin = cfg.AdminLink
	}

	var entities []string
	entities = append(entities, cfg.EntityTypes...)
	entities = append(entities, table.EntityTypes...)
	entities = append(entities, opts.EntityTypes...)

	return sitemap.Options{
		AdminLink:   admin,
		Theme:       theme,
		EntityTypes: entities,
	}
}

func (g *Glue) routesPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = g.Config.Sitemap.Routes
	}
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("no routes file: pass a path or set sitemap.routes: %w", ErrNoInput)
	}
	resolved, err := toolkit.ExpandPath(g.Runtime, toolkit.ExpandEnv(g.Runtime, path))
	if err != nil {
		return "", fmt.Errorf("resolve routes path %q: %w", path, err)
	}
	return resolved, nil
}

// WatchSitemap renders the sitemap once, then again every time the routes file
// changes, passing each page to onRender. Render failures are logged and
// watching continues. It returns when ctx is done.
func (g *Glue) WatchSitemap(ctx context.Context, opts SitemapOptions, onRender func(string) error) error {
	lg := g.Runtime.Logger()
	if onRender == nil {
		return fmt.Errorf("render callback is required")
	}

	path, err := g.routesPath(opts.RoutesPath)
	if err != nil {
		return err
	}
	resolved, err := g.Runtime.ResolvePath(path, true)
	if err != nil {
		return fmt.Errorf("resolve routes path: %w", err)
	}
	hostPath := resolved
	if jail := strings.TrimSpace(g.Runtime.GetJail()); jail != "" {
		trimmed := strings.TrimPrefix(resolved, string(filepath.Separator))
		hostPath = filepath.Join(jail, trimmed)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch routes file: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()
	if err := watcher.Add(filepath.Dir(hostPath)); err != nil {
		return fmt.Errorf("watch routes directory: %w", err)
	}

	var (
		hasher   toolkit.Hasher = &fnv.Hasher{Width: fnv.Width128}
		lastHash string
	)
	render := func() error {
		raw, err := os.ReadFile(hostPath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			lg.Error("unable to read routes", "path", path, "err", err)
			return nil
		}
		sum := hasher.Hash(raw)
		if sum == lastHash {
			return nil
		}
		lastHash = sum

		page, err := g.renderSitemap(ctx, path, raw, opts)
		if err != nil {
			lg.Error("unable to render sitemap", "path", path, "err", err)
			return nil
		}
		return onRender(page)
	}

	if err := render(); err != nil {
		return err
	}

	var (
		pending     bool
		pendingFrom time.Time
	)
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	base := filepath.Base(hostPath)
	for {
		select {
		case <-ticker.C:
			if pending && time.Since(pendingFrom) >= 120*time.Millisecond {
				pending = false
				if err := render(); err != nil {
					return err
				}
			}
		case event, ok := <-watcher.Events:
			if !ok {
				continue
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Chmod) != 0 {
				pending = true
				pendingFrom = time.Now()
			}
		case watchErr, ok := <-watcher.Errors:
			if !ok {
				continue
			}
			lg.Error("routes watcher error", "err", watchErr)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
