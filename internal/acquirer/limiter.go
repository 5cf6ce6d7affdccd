package acquirer

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// domainLimiter throttles outbound fetches per target domain so bursts of
// requests for the same job board do not look like scraping abuse
type domainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	perMin   int
}

func newDomainLimiter(requestsPerMinute int) *domainLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 30
	}
	return &domainLimiter{
		limiters: make(map[string]*rate.Limiter),
		perMin:   requestsPerMinute,
	}
}

// wait blocks until the target domain's limiter permits another request or
// the context is cancelled
func (d *domainLimiter) wait(ctx context.Context, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}

	d.mu.Lock()
	limiter, ok := d.limiters[parsed.Host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(float64(d.perMin)/60.0), d.perMin)
		d.limiters[parsed.Host] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
