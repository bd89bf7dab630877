package cache

import (
	"context"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-intents/protocol/solver"
)

const (
	STATUS_TTL = time.Minute * 30
)

// StatusCache keeps terminal solver statuses so settled tasks are not polled again.
type StatusCache struct {
	statusCache *ttlcache.Cache[string, solver.StatusOutput]
}

func NewStatusCache(ctx context.Context) *StatusCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, solver.StatusOutput](STATUS_TTL),
	)

	go cache.Start()
	go func() {
		<-ctx.Done()
		cache.Stop()
	}()

	return &StatusCache{
		statusCache: cache,
	}
}

func (c *StatusCache) Status(taskID string) (solver.StatusOutput, bool) {
	s := c.statusCache.Get(taskID)
	if s == nil {
		return solver.StatusOutput{}, false
	}

	return s.Value(), true
}

// Set stores the status only if it is terminal.
func (c *StatusCache) Set(taskID string, status solver.StatusOutput) {
	if !status.Status.IsTerminal() {
		return
	}

	log.Debug().Msgf("Caching %s status of task %s", status.Status, taskID)
	c.statusCache.Set(taskID, status, ttlcache.DefaultTTL)
}
