// Package chrome drives headless Chrome through chromedp, for measuring
// blocks off-screen and printing the paged document to PDF.
package chrome

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/fnziad/ZeroTex/internal/logging"
)

const defaultTimeout = 30 * time.Second

// Options configures the browser.
type Options struct {
	ExecPath string        // empty lets chromedp find Chrome
	Timeout  time.Duration // per operation
	Logger   logging.Logger
}

func (o Options) withDefaults() Options {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.Logger == nil {
		o.Logger = logging.Discard()
	}
	return o
}

// newBrowserContext starts a headless browser and returns a tab context.
func newBrowserContext(parent context.Context, o Options) (context.Context, context.CancelFunc) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("allow-file-access-from-files", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if o.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(o.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancel2 := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(format string, v ...any) {
		msg := fmt.Sprintf(format, v...)
		if strings.Contains(msg, "could not unmarshal event") {
			return
		}
		o.Logger.Debug(parent, "chromedp", "msg", msg)
	}))

	return ctx, func() {
		cancel2()
		cancel()
	}
}

// run loads html from a temporary file and runs actions against it.
func run(ctx context.Context, o Options, html string, actions ...chromedp.Action) error {
	o = o.withDefaults()

	tmpDir, err := os.MkdirTemp("", "zerotex-")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write page: %w", err)
	}

	bctx, cancel := newBrowserContext(ctx, o)
	defer cancel()
	bctx, cancelTimeout := context.WithTimeout(bctx, o.Timeout)
	defer cancelTimeout()

	tasks := chromedp.Tasks{
		chromedp.Navigate("file://" + htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}
	tasks = append(tasks, actions...)
	if err := chromedp.Run(bctx, tasks); err != nil {
		return fmt.Errorf("chrome: %w", err)
	}
	return nil
}
