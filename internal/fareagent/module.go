package fareagent

import (
	"errors"
	"time"

	"github.com/shandysiswandi/gofareagent/internal/fareagent/cache"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/inbound"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/outbound"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/provider"
	"github.com/shandysiswandi/gofareagent/internal/fareagent/usecase"
	"github.com/shandysiswandi/gofareagent/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/gofareagent/internal/pkg/pkgrouter"
)

type Dependency struct {
	Config pkgconfig.Config
	Router *pkgrouter.Router
}

func New(dep Dependency) error {
	baseURL := dep.Config.GetString("modules.fare-agent.backend.base_url")
	if baseURL == "" {
		return errors.New("modules.fare-agent.backend.base_url is required")
	}

	opts := []outbound.Option{}
	if timeoutSec := dep.Config.GetInt("modules.fare-agent.backend.timeout_seconds"); timeoutSec > 0 {
		opts = append(opts, outbound.WithTimeout(time.Duration(timeoutSec)*time.Second))
	}
	if rateLimitMs := dep.Config.GetInt("modules.fare-agent.backend.rate_limit_ms"); rateLimitMs > 0 {
		opts = append(opts, outbound.WithRateLimit(time.Duration(rateLimitMs)*time.Millisecond))
	}

	backend := outbound.NewClient(
		baseURL,
		dep.Config.GetString("modules.fare-agent.backend.token"),
		opts...,
	)

	cacheTTL := 60 * time.Second
	if ttlSeconds := dep.Config.GetInt("modules.fare-agent.cache.ttl_seconds"); ttlSeconds > 0 {
		cacheTTL = time.Duration(ttlSeconds) * time.Second
	}

	uc := usecase.New(usecase.Dependency{
		Backend:   backend,
		Providers: provider.All(),
		Cache:     cache.New(usecase.CloneSearchOutput),
		CacheTTL:  cacheTTL,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
