package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
)

// BrowserOptions configures the headless Chrome used for capture
type BrowserOptions struct {
	ExecPath     string // empty uses chromedp's lookup
	WindowWidth  int
	WindowHeight int
}

// DefaultBrowserOptions returns a window wide enough to lay out a 420mm surface
func DefaultBrowserOptions(execPath string) BrowserOptions {
	return BrowserOptions{
		ExecPath:     execPath,
		WindowWidth:  1800,
		WindowHeight: 1300,
	}
}

// BrowserSession is one headless Chrome tab holding a loaded document
type BrowserSession struct {
	ctx     context.Context
	cancels []context.CancelFunc
}

// NewBrowserSession starts headless Chrome and opens a blank tab
func NewBrowserSession(ctx context.Context, options BrowserOptions) (*BrowserSession, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.NoSandbox,
		chromedp.DisableGPU,
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(options.WindowWidth, options.WindowHeight),
	)

	// Check for custom Chrome path (for headless-shell in Docker)
	if options.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(options.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	s := &BrowserSession{ctx: tabCtx, cancels: []context.CancelFunc{tabCancel, allocCancel}}

	// Starts the browser
	if err := chromedp.Run(tabCtx, chromedp.Navigate("about:blank")); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	return s, nil
}

// LoadDocument replaces the tab's document with htmlContent and waits for
// fonts to finish loading
func (s *BrowserSession) LoadDocument(htmlContent string) error {
	var fontsReady bool
	err := chromedp.Run(s.ctx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Evaluate(`document.fonts ? document.fonts.ready.then(() => true) : true`, &fontsReady, func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
			return p.WithAwaitPromise(true)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}
	return nil
}

// Surface returns a handle to the element matching selector in this tab
func (s *BrowserSession) Surface(selector string) *ChromeSurface {
	return &ChromeSurface{tab: s.ctx, selector: selector}
}

// Close shuts the tab and the browser process
func (s *BrowserSession) Close() {
	for _, cancel := range s.cancels {
		cancel()
	}
}

// ChromeSurface implements Surface on a DOM element inside a headless tab
type ChromeSurface struct {
	tab      context.Context
	selector string
}

type styleResult struct {
	Found  bool              `json:"found"`
	Styles map[string]string `json:"styles"`
}

type boxResult struct {
	Found  bool    `json:"found"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// run executes actions in the tab while honouring the caller's ctx
func (s *ChromeSurface) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx, cancel := context.WithCancel(s.tab)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	return chromedp.Run(runCtx, actions...)
}

// Styles reads the element's inline values for properties
func (s *ChromeSurface) Styles(ctx context.Context, properties []string) (map[string]string, error) {
	sel, props := jsLiteral(s.selector), jsLiteral(properties)
	script := `(() => {
		const el = document.querySelector(` + sel + `);
		if (!el) return {found: false, styles: {}};
		const styles = {};
		for (const p of ` + props + `) styles[p] = el.style.getPropertyValue(p);
		return {found: true, styles};
	})()`

	var res styleResult
	if err := s.run(ctx, chromedp.Evaluate(script, &res)); err != nil {
		return nil, err
	}
	if !res.Found {
		return nil, ErrSurfaceMissing
	}
	return res.Styles, nil
}

// SetStyles writes inline values; an empty value removes the declaration
func (s *ChromeSurface) SetStyles(ctx context.Context, styles map[string]string) error {
	script := `(() => {
		const el = document.querySelector(` + jsLiteral(s.selector) + `);
		if (!el) return false;
		const styles = ` + jsLiteral(styles) + `;
		for (const [p, v] of Object.entries(styles)) {
			if (v === "") el.style.removeProperty(p); else el.style.setProperty(p, v);
		}
		return true;
	})()`

	var found bool
	if err := s.run(ctx, chromedp.Evaluate(script, &found)); err != nil {
		return err
	}
	if !found {
		return ErrSurfaceMissing
	}
	return nil
}

// Bounds measures the element's rendered box in document coordinates
func (s *ChromeSurface) Bounds(ctx context.Context) (Box, error) {
	script := `(() => {
		const el = document.querySelector(` + jsLiteral(s.selector) + `);
		if (!el) return {found: false};
		const r = el.getBoundingClientRect();
		return {
			found: true,
			x: r.left + window.scrollX,
			y: r.top + window.scrollY,
			width: Math.max(r.width, el.scrollWidth),
			height: Math.max(r.height, el.scrollHeight),
		};
	})()`

	var res boxResult
	if err := s.run(ctx, chromedp.Evaluate(script, &res)); err != nil {
		return Box{}, err
	}
	if !res.Found {
		return Box{}, ErrSurfaceMissing
	}
	return Box{X: res.X, Y: res.Y, Width: res.Width, Height: res.Height}, nil
}

// Rasterize captures opts.Clip as a PNG at opts.Scale
func (s *ChromeSurface) Rasterize(ctx context.Context, opts RasterOptions) ([]byte, error) {
	var buf []byte
	err := s.run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		if opts.DisableCache {
			if err := network.Enable().Do(ctx); err != nil {
				return err
			}
			if err := network.SetCacheDisabled(true).Do(ctx); err != nil {
				return err
			}
		}

		bg := &cdp.RGBA{R: int64(opts.Background.R), G: int64(opts.Background.G), B: int64(opts.Background.B), A: float64(opts.Background.A) / 255}
		if err := emulation.SetDefaultBackgroundColorOverride().WithColor(bg).Do(ctx); err != nil {
			return err
		}
		// Without a color the override is cleared
		defer emulation.SetDefaultBackgroundColorOverride().Do(ctx)

		var err error
		buf, err = page.CaptureScreenshot().
			WithFormat(page.CaptureScreenshotFormatPng).
			WithCaptureBeyondViewport(true).
			WithFromSurface(true).
			WithClip(&page.Viewport{
				X:      opts.Clip.X,
				Y:      opts.Clip.Y,
				Width:  opts.Clip.Width,
				Height: opts.Clip.Height,
				Scale:  opts.Scale,
			}).
			Do(ctx)
		return err
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to capture screenshot: %w", err)
	}
	return buf, nil
}

// jsLiteral encodes v as a JavaScript literal
func jsLiteral(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

// ChromeSurfaceSource opens a fresh browser for every export
type ChromeSurfaceSource struct {
	Options BrowserOptions
}

// Open loads htmlContent into a new headless tab and returns the element
// matching selector. release must be called when the capture is finished.
func (c ChromeSurfaceSource) Open(ctx context.Context, htmlContent, selector string) (Surface, func(), error) {
	session, err := NewBrowserSession(ctx, c.Options)
	if err != nil {
		return nil, func() {}, err
	}
	if err := session.LoadDocument(htmlContent); err != nil {
		session.Close()
		return nil, func() {}, err
	}
	return session.Surface(selector), session.Close, nil
}
