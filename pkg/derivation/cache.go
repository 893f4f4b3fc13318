package derivation

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	"github.com/omni-box/omnibox-go/pkg/config/netmode"
	"github.com/omni-box/omnibox-go/pkg/crypto/keys"
	"github.com/omni-box/omnibox-go/pkg/near"
)

// DefaultCacheSize is the number of derived keys kept by NewCache when zero
// size is given.
const DefaultCacheSize = 1024

type identity struct {
	accountID near.AccountID
	path      string
}

// Cache memoizes keys derived by the underlying Deriver. It's safe for
// concurrent use.
type Cache struct {
	d    *Deriver
	keys *lru.Cache
}

// NewCache returns a Cache of the given size over d.
func NewCache(d *Deriver, size int) (*Cache, error) {
	if size == 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create derived keys cache: %w", err)
	}
	return &Cache{d: d, keys: c}, nil
}

// PublicKey returns the key derived for accountID and path.
func (c *Cache) PublicKey(accountID near.AccountID, path string) (*keys.PublicKey, error) {
	id := identity{accountID: accountID, path: path}
	if pub, ok := c.keys.Get(id); ok {
		return pub.(*keys.PublicKey), nil
	}
	pub, err := c.d.PublicKey(accountID, path)
	if err != nil {
		return nil, err
	}
	_ = c.keys.Add(id, pub)
	return pub, nil
}

// EVMAddress is the same as Deriver.EVMAddress, but uses cached keys.
func (c *Cache) EVMAddress(accountID near.AccountID, path string) (*DerivedAddress, error) {
	return evmAddress(c, accountID, path)
}

// BTCLegacyAddress is the same as Deriver.BTCLegacyAddress, but uses cached
// keys.
func (c *Cache) BTCLegacyAddress(accountID near.AccountID, path string, net netmode.Bitcoin) (*DerivedAddress, error) {
	return legacyAddress(c, accountID, path, net)
}

// SegwitAddress is the same as Deriver.SegwitAddress, but uses cached keys.
func (c *Cache) SegwitAddress(accountID near.AccountID, path string, net netmode.Bitcoin) (*DerivedAddress, error) {
	return segwitAddress(c, accountID, path, net)
}

// Len returns the number of cached keys.
func (c *Cache) Len() int {
	return c.keys.Len()
}
