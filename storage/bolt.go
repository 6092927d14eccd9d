package storage

import (
	"log"
	"time"

	bolt "github.com/boltdb/bolt"
)

const bucketName = "rewear"

// Bolt is a Store backed by a single-file BoltDB database with one bucket.
// All data lives in one file, so no external database process is needed.
type Bolt struct {
	db *bolt.DB
}

// NewBolt opens (or creates) the database at path and ensures the bucket
// exists.
func NewBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &Bolt{db: db}, nil
}

// Close releases the database file lock.
func (b *Bolt) Close() error {
	return b.db.Close()
}

func (b *Bolt) Get(key string) (string, bool) {
	var value string
	var found bool
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if v != nil {
			value = string(v)
			found = true
		}
		return nil
	})
	if err != nil {
		log.Printf("storage: read of %q failed: %v", key, err)
		return "", false
	}
	return value, found
}

func (b *Bolt) Set(key, value string) {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), []byte(value))
	})
	if err != nil {
		log.Printf("storage: write of %q failed: %v", key, err)
	}
}

func (b *Bolt) Remove(key string) {
	err := b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Delete([]byte(key))
	})
	if err != nil {
		log.Printf("storage: delete of %q failed: %v", key, err)
	}
}
