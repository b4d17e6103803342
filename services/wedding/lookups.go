package wedding

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"evervow/models"
	"evervow/services/routing"
	"evervow/utils"
)

const (
	apexLookupPrefix = "route:apex:"
	subLookupPrefix  = "route:sub:"
	lookupCacheTTL   = 5 * time.Minute
	// lookupMiss caches "no wedding claims this domain" so unclaimed hosts
	// don't hammer the database.
	lookupMiss = "-"
)

// RouterLookups returns the tenant router's lookup pair, backed by the
// wedding repository with a Redis read-through cache. A cache outage only
// costs the cache: lookups fall back to the repository.
func (s *DefaultWeddingService) RouterLookups() routing.Lookups {
	return routing.Lookups{
		WeddingIDByApexDomain: func(ctx context.Context, domain string) (string, error) {
			return s.cachedLookup(ctx, apexLookupPrefix+domain, func() (*models.Wedding, error) {
				return s.Repo.GetByCustomDomain(domain)
			})
		},
		WeddingIDBySubdomain: func(ctx context.Context, subdomain string) (string, error) {
			return s.cachedLookup(ctx, subLookupPrefix+subdomain, func() (*models.Wedding, error) {
				return s.Repo.GetBySubdomain(subdomain)
			})
		},
	}
}

func (s *DefaultWeddingService) cachedLookup(ctx context.Context, key string, fetch func() (*models.Wedding, error)) (string, error) {
	cache := utils.GetCacheClient()

	if cached, err := cache.Get(ctx, key).Result(); err == nil {
		if cached == lookupMiss {
			return "", nil
		}
		return cached, nil
	} else if err != redis.Nil {
		utils.GetLogger().Warn("Tenant lookup cache unavailable, falling back to repository",
			zap.String("key", key), zap.Error(err))
	}

	w, err := fetch()
	if err != nil {
		return "", err
	}

	value := lookupMiss
	id := ""
	if w != nil {
		value = w.ID
		id = w.ID
	}
	if err := cache.Set(ctx, key, value, lookupCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("Failed to populate tenant lookup cache",
			zap.String("key", key), zap.Error(err))
	}
	return id, nil
}

// invalidateLookupCache drops the routing cache entries for a wedding after
// its domains change.
func (s *DefaultWeddingService) invalidateLookupCache(w *models.Wedding) {
	if w == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	cache := utils.GetCacheClient()
	keys := []string{subLookupPrefix + w.Subdomain}
	if w.CustomDomain != "" {
		keys = append(keys, apexLookupPrefix+w.CustomDomain)
	}
	if err := cache.Del(ctx, keys...).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate tenant lookup cache",
			zap.String("weddingId", w.ID), zap.Error(err))
	}
}
