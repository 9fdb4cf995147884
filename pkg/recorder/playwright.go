package recorder

import (
	"fmt"
	"io"

	"github.com/playwright-community/playwright-go"
)

// playwrightEngine implements Engine on top of Playwright-driven Chromium.
type playwrightEngine struct {
	pw *playwright.Playwright
}

// NewPlaywrightEngine returns the production Engine. The browser binaries
// are installed on first launch if missing.
func NewPlaywrightEngine() Engine {
	return &playwrightEngine{}
}

func (e *playwrightEngine) Launch() (Browser, error) {
	// Discard driver output so it does not interleave with session output.
	opts := &playwright.RunOptions{
		Verbose: false,
		Stdout:  io.Discard,
		Stderr:  io.Discard,
	}

	if err := playwright.Install(opts); err != nil {
		return nil, fmt.Errorf("install playwright: %w", err)
	}

	pw, err := playwright.Run(opts)
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}
	e.pw = pw

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(false),
		Args:     []string{"--start-maximized"},
	})
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	return &playwrightBrowser{browser: browser}, nil
}

func (e *playwrightEngine) Stop() error {
	if e.pw == nil {
		return nil
	}
	return e.pw.Stop()
}

type playwrightBrowser struct {
	browser playwright.Browser
}

func (b *playwrightBrowser) NewCaptureContext(harPath string) (CaptureContext, error) {
	// Attach mode keeps full response bodies in the archive; NoViewport
	// lets the operator use the native window size.
	context, err := b.browser.NewContext(playwright.BrowserNewContextOptions{
		RecordHarPath:    playwright.String(harPath),
		RecordHarContent: playwright.HarContentPolicyAttach,
		NoViewport:       playwright.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("create capture context: %w", err)
	}
	return &playwrightContext{context: context}, nil
}

func (b *playwrightBrowser) Close() error {
	return b.browser.Close()
}

type playwrightContext struct {
	context playwright.BrowserContext
}

func (c *playwrightContext) NewPage() (Page, error) {
	page, err := c.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	return &playwrightPage{page: page}, nil
}

func (c *playwrightContext) OpenPages() int {
	return len(c.context.Pages())
}

func (c *playwrightContext) Close() error {
	return c.context.Close()
}

type playwrightPage struct {
	page playwright.Page
}

func (p *playwrightPage) Goto(url string) error {
	if _, err := p.page.Goto(url); err != nil {
		return fmt.Errorf("navigate to %s: %w", url, err)
	}
	return nil
}
