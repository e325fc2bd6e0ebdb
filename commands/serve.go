package commands

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/seriv/go-xp-dashboard/internal/data/cache"
	"github.com/seriv/go-xp-dashboard/internal/util"
	"github.com/spf13/cobra"
)

var serveAddr string

// responseCacheTTL keeps serve-mode re-renders off the network when
// only presentation settings changed.
const responseCacheTTL = 2 * time.Minute

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard over HTTP with live config reload",
	Long: `Renders the dashboard and serves it on a local address. The config
file is watched; editing it re-renders the page with the new settings.
Fetched records are cached briefly so a config tweak does not re-query
the API.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "",
		"Listen address (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	responses := cache.NewResponseCache(responseCacheTTL)

	var mu sync.RWMutex
	var rendered []byte

	render := func() error {
		page, err := buildPage(cmd.Context(), cfg, responses)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := page.Render(&buf); err != nil {
			return err
		}
		mu.Lock()
		rendered = buf.Bytes()
		mu.Unlock()
		return nil
	}

	if err := render(); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating config watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory: editors replace config files on save, which
	// would orphan a watch on the file itself.
	if err := watcher.Add(filepath.Dir(configPath)); err != nil {
		util.LogWarnf("Config watch disabled: %v", err)
	} else {
		go func() {
			for {
				select {
				case ev, ok := <-watcher.Events:
					if !ok {
						return
					}
					if filepath.Clean(ev.Name) != filepath.Clean(configPath) {
						continue
					}
					if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
						continue
					}
					util.LogInfof("Config changed, re-rendering dashboard")
					reloaded, err := setup()
					if err != nil {
						util.LogErrorf("Config reload failed: %v", err)
						continue
					}
					if serveAddr != "" {
						reloaded.Addr = cfg.Addr
					}
					cfg = reloaded
					if err := render(); err != nil {
						util.LogErrorf("Re-render failed: %v", err)
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return
					}
					util.LogWarnf("Config watcher error: %v", err)
				}
			}
		}()
	}

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		mu.RLock()
		page := rendered
		mu.RUnlock()
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(page)
	})

	util.LogInfof("Serving dashboard on http://%s", cfg.Addr)
	fmt.Printf("Serving dashboard on http://%s\n", cfg.Addr)
	return http.ListenAndServe(cfg.Addr, nil)
}
