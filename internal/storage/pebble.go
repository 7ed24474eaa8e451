package storage

import (
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"
	config "github.com/thirdweb-dev/chainscan/configs"
)

type PebbleConnector struct {
	kvReader
	db *pebble.DB
}

func NewPebbleConnector(cfg *config.StoreConfig) (*PebbleConnector, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("store path is required")
	}

	cacheSize := int64(cfg.CacheSizeMB) << 20
	if cacheSize <= 0 {
		cacheSize = 64 << 20
	}
	cache := pebble.NewCache(cacheSize)
	defer cache.Unref()

	opts := &pebble.Options{
		ReadOnly: true,
		Cache:    cache,
		// the store must already exist
		ErrorIfNotExists: true,
	}

	db, err := pebble.Open(cfg.Path, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open pebble db: %w", err)
	}

	pc := &PebbleConnector{db: db}
	pc.kvReader = kvReader{get: pebbleGet(db)}
	return pc, nil
}

func pebbleGet(r pebble.Reader) getFunc {
	return func(key []byte) ([]byte, bool, error) {
		val, closer, err := r.Get(key)
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, false, nil
		}
		if err != nil {
			return nil, false, err
		}
		defer closer.Close()
		return append([]byte{}, val...), true, nil
	}
}

// LatestState pins a pebble snapshot so account and storage reads agree with each other.
func (pc *PebbleConnector) LatestState() (IStateSnapshot, error) {
	snap := pc.db.NewSnapshot()
	return stateReader{get: pebbleGet(snap), release: snap.Close}, nil
}

func (pc *PebbleConnector) Close() error {
	return pc.db.Close()
}
