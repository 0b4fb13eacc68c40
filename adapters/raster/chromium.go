package raster

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"strings"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"github.com/DEV-SHUKLA-GITHUB/BioData-maker/biodata"
)

const (
	viewportWidth  = 900
	viewportHeight = 1273
)

// ChromiumEngine captures rendered markup using a shared headless
// Chromium instance. The browser starts lazily on first use and is
// reused across captures; each capture runs in its own tab.
type ChromiumEngine struct {
	BrowserPath string
	Headless    bool
	Timeout     time.Duration
	Args        []string

	Defaults biodata.RasterOptions

	initOnce      sync.Once
	allocCtx      context.Context
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
}

var _ biodata.Rasterizer = (*ChromiumEngine)(nil)

// Rasterize loads the markup and screenshots the selected subtree at
// the requested device pixel ratio.
func (e *ChromiumEngine) Rasterize(ctx context.Context, html string, opts biodata.RasterOptions) (biodata.Bitmap, error) {
	if e == nil {
		return biodata.Bitmap{}, biodata.NewError(biodata.KindInternal, "chromium engine is nil", nil)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if err := e.ensureBrowser(); err != nil {
		return biodata.Bitmap{}, biodata.NewError(biodata.KindInternal, "chromium engine init failed", err)
	}

	tabCtx, cancel := chromedp.NewContext(e.browserCtx)
	defer cancel()

	execCtx, cancelReq := context.WithCancel(tabCtx)
	defer cancelReq()
	go func() {
		select {
		case <-ctx.Done():
			cancelReq()
		case <-execCtx.Done():
		}
	}()
	if e.Timeout > 0 {
		var cancelTimeout context.CancelFunc
		execCtx, cancelTimeout = context.WithTimeout(execCtx, e.Timeout)
		defer cancelTimeout()
	}

	options := mergeRasterOptions(e.defaultOptions(), opts)

	var shot []byte
	actions := []chromedp.Action{}
	if options.ExternalAssetsPolicy == biodata.ExternalAssetsBlock {
		actions = append(actions,
			network.Enable(),
			network.SetBlockedURLs().WithURLPatterns(externalBlockPatterns()),
		)
	}

	actions = append(actions,
		chromedp.EmulateViewport(viewportWidth, viewportHeight,
			chromedp.EmulateScale(options.Scale)),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.WaitVisible(options.Selector, chromedp.ByQuery),
		chromedp.Screenshot(options.Selector, &shot, chromedp.ByQuery),
	)

	if err := chromedp.Run(execCtx, actions...); err != nil {
		return biodata.Bitmap{}, biodata.NewError(biodata.KindInternal, "chromium capture failed", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(shot))
	if err != nil {
		return biodata.Bitmap{}, biodata.NewError(biodata.KindInternal, "capture is not a decodable png", err)
	}

	return biodata.Bitmap{PNG: shot, Width: cfg.Width, Height: cfg.Height}, nil
}

// Close releases Chromium resources if they have been initialized.
func (e *ChromiumEngine) Close() error {
	if e == nil {
		return nil
	}
	if e.browserCancel != nil {
		e.browserCancel()
	}
	if e.allocCancel != nil {
		e.allocCancel()
	}
	return nil
}

func (e *ChromiumEngine) ensureBrowser() error {
	e.initOnce.Do(func() {
		options := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
		if e.BrowserPath != "" {
			options = append(options, chromedp.ExecPath(e.BrowserPath))
		}
		options = append(options, chromedp.Flag("headless", e.Headless))
		options = append(options, allocatorOptionsFromArgs(e.Args)...)

		e.allocCtx, e.allocCancel = chromedp.NewExecAllocator(context.Background(), options...)
		e.browserCtx, e.browserCancel = chromedp.NewContext(e.allocCtx)
	})
	if e.allocCtx == nil || e.browserCtx == nil {
		return errors.New("chromium allocator unavailable")
	}
	return nil
}

func (e *ChromiumEngine) defaultOptions() biodata.RasterOptions {
	defaults := e.Defaults
	if defaults.Scale == 0 {
		defaults.Scale = biodata.DefaultRasterScale
	}
	if defaults.Selector == "" {
		defaults.Selector = biodata.DefaultRasterSelector
	}
	// External image loading stays permitted unless blocked explicitly,
	// otherwise embedded assets capture blank.
	if defaults.ExternalAssetsPolicy == biodata.ExternalAssetsUnspecified {
		defaults.ExternalAssetsPolicy = biodata.ExternalAssetsAllow
	}
	return defaults
}

func mergeRasterOptions(base, override biodata.RasterOptions) biodata.RasterOptions {
	merged := base
	if override.Scale != 0 {
		merged.Scale = override.Scale
	}
	if override.Selector != "" {
		merged.Selector = override.Selector
	}
	if override.ExternalAssetsPolicy != biodata.ExternalAssetsUnspecified {
		merged.ExternalAssetsPolicy = override.ExternalAssetsPolicy
	}
	return merged
}

// externalBlockPatterns blocks every http and https fetch, leaving
// data URIs and the injected document content untouched.
func externalBlockPatterns() []*network.BlockPattern {
	return []*network.BlockPattern{
		{URLPattern: "http://*", Block: true},
		{URLPattern: "https://*", Block: true},
	}
}

func allocatorOptionsFromArgs(args []string) []chromedp.ExecAllocatorOption {
	options := make([]chromedp.ExecAllocatorOption, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}
		arg = strings.TrimPrefix(arg, "--")
		if arg == "" {
			continue
		}
		if name, value, ok := strings.Cut(arg, "="); ok {
			options = append(options, chromedp.Flag(name, value))
			continue
		}
		options = append(options, chromedp.Flag(arg, true))
	}
	return options
}
