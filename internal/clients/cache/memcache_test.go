package cache

import (
	"testing"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	items map[string][]byte
	fail  error
}

func (f *fakeClient) Get(key string) (*memcache.Item, error) {
	v, ok := f.items[key]
	if !ok {
		return nil, memcache.ErrCacheMiss
	}
	return &memcache.Item{Key: key, Value: v}, nil
}

func (f *fakeClient) Set(item *memcache.Item) error {
	f.items[item.Key] = item.Value
	return nil
}

func (f *fakeClient) Delete(key string) error {
	if f.fail != nil {
		return f.fail
	}
	if _, ok := f.items[key]; !ok {
		return memcache.ErrCacheMiss
	}
	delete(f.items, key)
	return nil
}

func Test_OnCachedReport_ShouldReturnItUnderPrefixedKey(t *testing.T) {
	fc := &fakeClient{items: map[string][]byte{}}
	mc := &MemcacheClient{client: fc, prefix: "ledger"}

	require.NoError(t, mc.CacheReport("summary", "Total: 10"))
	assert.Contains(t, fc.items, "ledger:report:summary")

	report, err := mc.GetReport("summary")
	require.NoError(t, err)
	assert.Equal(t, "Total: 10", report)

	_, err = mc.GetReport("years")
	assert.ErrorIs(t, err, memcache.ErrCacheMiss)
}

func Test_OnInvalidate_ShouldIgnoreMisses(t *testing.T) {
	fc := &fakeClient{items: map[string][]byte{"ledger:report:list": []byte("x")}}
	mc := &MemcacheClient{client: fc, prefix: "ledger"}

	require.NoError(t, mc.InvalidateCache([]string{"list", "summary"}))
	assert.Empty(t, fc.items)
}

func Test_OnInvalidateFailure_ShouldReturnError(t *testing.T) {
	fc := &fakeClient{items: map[string][]byte{}, fail: errors.New("connection refused")}
	mc := &MemcacheClient{client: fc, prefix: "ledger"}

	assert.Error(t, mc.InvalidateCache([]string{"list"}))
}
