package rodfetch

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/config"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/logging/types"
)

// BrowserManager owns the shared headless browser used by the rendered
// fetch tier. The browser launches lazily on first use and is reused for
// subsequent fetches.
type BrowserManager struct {
	config   *config.Config
	launcher *launcher.Launcher
	browser  *rod.Browser
	mu       sync.Mutex
	logger   types.Logger
}

// NewBrowserManager configures the launcher without starting a browser
func NewBrowserManager(cfg *config.Config) *BrowserManager {
	logger := logging.GetGlobalLogger()

	l := launcher.New().
		Headless(cfg.Fetcher.HeadlessMode).
		NoSandbox(true).
		Set("disable-blink-features", "AutomationControlled").
		Set("disable-gpu").
		Set("disable-dev-shm-usage")

	if chromePath := systemChromePath(); chromePath != "" {
		l = l.Bin(chromePath)
		logger.Info("Using system Chrome browser", map[string]interface{}{
			"chrome_path": chromePath,
		})
	}

	if cfg.Fetcher.UserAgent != "" {
		l = l.Set("user-agent", cfg.Fetcher.UserAgent)
	}

	return &BrowserManager{
		config:   cfg,
		launcher: l,
		logger:   logger,
	}
}

// getBrowser returns the shared browser, launching it if needed
func (bm *BrowserManager) getBrowser() (*rod.Browser, error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.browser != nil && bm.isHealthy(bm.browser) {
		return bm.browser, nil
	}

	url, err := bm.launcher.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	bm.browser = browser
	bm.logger.Info("Headless browser started")
	return browser, nil
}

// NewPage creates a stealth page with a desktop viewport
func (bm *BrowserManager) NewPage(ctx context.Context) (*rod.Page, error) {
	browser, err := bm.getBrowser()
	if err != nil {
		return nil, err
	}

	var page *rod.Page
	if bm.config.Fetcher.StealthMode {
		page, err = stealth.Page(browser)
	} else {
		page, err = browser.Page(proto.TargetCreateTarget{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             1920,
		Height:            1080,
		DeviceScaleFactor: 1,
	}); err != nil {
		bm.logger.Warn("Failed to set viewport", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if bm.config.Fetcher.UserAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent: bm.config.Fetcher.UserAgent,
		}); err != nil {
			bm.logger.Warn("Failed to set user agent", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return page.Context(ctx), nil
}

// Navigate loads the URL, waits for the load event, then sleeps the settle
// delay so late-rendering content can appear
func (bm *BrowserManager) Navigate(ctx context.Context, page *rod.Page, url string) error {
	navCtx, cancel := context.WithTimeout(ctx, bm.config.Fetcher.RenderedTimeout)
	defer cancel()

	err := rod.Try(func() {
		page.Context(navCtx).MustNavigate(url).MustWaitLoad()
	})
	if err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}

	select {
	case <-time.After(bm.config.Fetcher.SettleDelay):
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}

func (bm *BrowserManager) isHealthy(browser *rod.Browser) bool {
	return rod.Try(func() {
		browser.MustPages()
	}) == nil
}

// Cleanup closes the browser and launcher
func (bm *BrowserManager) Cleanup() {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	if bm.browser != nil && bm.isHealthy(bm.browser) {
		bm.browser.MustClose()
	}
	bm.browser = nil
	bm.launcher.Cleanup()
	bm.logger.Info("Browser manager cleanup completed")
}

// systemChromePath finds an installed Chrome/Chromium binary
func systemChromePath() string {
	if chromeBin := os.Getenv("CHROME_BIN"); chromeBin != "" {
		if _, err := os.Stat(chromeBin); err == nil {
			return chromeBin
		}
	}

	commonPaths := []string{
		"/usr/bin/chromium-browser",
		"/usr/bin/chromium",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/opt/google/chrome/chrome",
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	}

	for _, path := range commonPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}
