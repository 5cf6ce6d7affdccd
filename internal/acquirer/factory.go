package acquirer

import (
	"fmt"

	"github.com/rafaelandrade/intelligent-resume-matcher/internal/acquirer/engines/firecrawlfetch"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/acquirer/engines/rodfetch"
	"github.com/rafaelandrade/intelligent-resume-matcher/internal/config"
)

// newRenderEngine creates the configured rendered fetch engine
func newRenderEngine(cfg *config.Config) (RenderEngine, error) {
	switch cfg.Fetcher.RenderedEngine {
	case "rod", "":
		return rodfetch.NewEngine(cfg), nil
	case "firecrawl":
		return firecrawlfetch.NewEngine(cfg)
	default:
		return nil, fmt.Errorf("unsupported rendered fetch engine: %s", cfg.Fetcher.RenderedEngine)
	}
}
