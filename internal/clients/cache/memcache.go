package cache

import (
	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/expense-ledger/internal/logger"
)

const reportTTLSeconds = 60 * 60

type config interface {
	Hosts() []string
	Prefix() string
}

type client interface {
	Get(key string) (*memcache.Item, error)
	Set(item *memcache.Item) error
	Delete(key string) error
}

// MemcacheClient stores rendered reports keyed by report kind.
type MemcacheClient struct {
	client client
	prefix string
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{client: mc, prefix: config.Prefix()}, errors.Wrap(mc.Ping(), "ping memcached")
}

func (mc *MemcacheClient) formatKey(kind string) string {
	return mc.prefix + ":report:" + kind
}

func (mc *MemcacheClient) CacheReport(kind string, report string) error {
	logger.Debug("cache report", zap.String("kind", kind))
	err := mc.client.Set(&memcache.Item{
		Key:        mc.formatKey(kind),
		Value:      []byte(report),
		Expiration: reportTTLSeconds,
	})
	return errors.Wrap(err, "set report")
}

// GetReport returns memcache.ErrCacheMiss when nothing is stored for kind.
func (mc *MemcacheClient) GetReport(kind string) (string, error) {
	logger.Debug("get report from cache", zap.String("kind", kind))
	item, err := mc.client.Get(mc.formatKey(kind))
	if err != nil {
		return "", err
	}
	return string(item.Value), nil
}

func (mc *MemcacheClient) InvalidateCache(kinds []string) error {
	logger.Info("invalidate cache", zap.Strings("kinds", kinds))

	for _, kind := range kinds {
		err := mc.client.Delete(mc.formatKey(kind))
		if err != nil && !errors.Is(err, memcache.ErrCacheMiss) {
			return errors.Wrapf(err, "delete report %s", kind)
		}
	}
	return nil
}
