package cache

import (
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/annekeller/mediasearch/internal/search/record"
)

var bucketProcessed = []byte("processed_records")

// BoltCache is the default, zero-dependency PreprocessCache backend,
// grounded on hypnagonia-rag's store.BoltStore shape.
type BoltCache struct {
	db *bbolt.DB
}

// NewBoltCache opens (creating if necessary) a bbolt database at path.
func NewBoltCache(path string) (*BoltCache, error) {
	db, err := bbolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("opening bolt cache at %s: %w", path, err)
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketProcessed)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating bolt cache bucket: %w", err)
	}
	return &BoltCache{db: db}, nil
}

func (c *BoltCache) Get(hash string) (record.Processed, bool) {
	var processed record.Processed
	var found bool
	_ = c.db.View(func(tx *bbolt.Tx) error {
		data := tx.Bucket(bucketProcessed).Get([]byte(hash))
		if data == nil {
			return nil
		}
		if err := json.Unmarshal(data, &processed); err != nil {
			return nil
		}
		found = true
		return nil
	})
	return processed, found
}

func (c *BoltCache) Set(hash string, rec record.Processed) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshaling processed record for cache: %w", err)
	}
	return c.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketProcessed).Put([]byte(hash), data)
	})
}

func (c *BoltCache) Close() error {
	return c.db.Close()
}
