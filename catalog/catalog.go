// SPDX-License-Identifier: MIT
// Package catalog persists reports in a badger key-value store, keyed by
// construction name. An empty path opens an in-memory store, which is what
// tests and one-shot command runs use.
//
// Key layout:
//
//	"report/" + name  =>  JSON-encoded report.Report
package catalog

import (
	"bytes"
	"runtime"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"

	"github.com/katalvlaran/w33/report"
)

var (
	// ErrNotFound reports a name with no stored report.
	ErrNotFound = errors.New("catalog: report not found")

	// ErrBadName reports an empty report name.
	ErrBadName = errors.New("catalog: report name must not be empty")

	// ErrBadParam reports an unusable Open configuration.
	ErrBadParam = errors.New("catalog: bad parameter")

	// ErrClosed reports use of a catalog after Close.
	ErrClosed = errors.New("catalog: closed")
)

var reportPrefix = []byte("report/")

// Opts configure Open.
type Opts struct {
	// Path of the badger directory; empty means in-memory.
	Path string

	// ReadOnly opens an existing store without write access.
	ReadOnly bool
}

// Catalog is a handle on an open store. It is safe for concurrent use.
type Catalog struct {
	db *badger.DB
}

// Open opens or creates the store described by opts.
func Open(opts Opts) (*Catalog, error) {
	dbOpts := badger.DefaultOptions(opts.Path)
	dbOpts.ReadOnly = opts.ReadOnly
	dbOpts.DetectConflicts = false
	dbOpts.Logger = nil
	dbOpts.MetricsEnabled = false

	// Badger for windows does not support read-only mode
	if runtime.GOOS == "windows" {
		dbOpts.ReadOnly = false
	}

	if len(opts.Path) == 0 {
		if opts.ReadOnly {
			return nil, errors.Wrap(ErrBadParam, "Path must be specified for a read-only catalog")
		}
		dbOpts.InMemory = true
	}

	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: open %q", opts.Path)
	}
	return &Catalog{db: db}, nil
}

// Close releases the store. Closing twice is a no-op.
func (c *Catalog) Close() error {
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return errors.Wrap(err, "catalog: close")
}

func key(name string) []byte {
	return append(append([]byte(nil), reportPrefix...), name...)
}

// check rejects calls on a closed catalog and empty names.
func (c *Catalog) check(name string) error {
	if c.db == nil {
		return ErrClosed
	}
	if name == "" {
		return ErrBadName
	}
	return nil
}

// Put stores r under name, replacing any previous report.
func (c *Catalog) Put(name string, r *report.Report) error {
	if err := c.check(name); err != nil {
		return err
	}
	buf, err := report.Marshal(r, report.JSON)
	if err != nil {
		return errors.Wrapf(err, "catalog: put %q", name)
	}
	err = c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(name), buf)
	})
	return errors.Wrapf(err, "catalog: put %q", name)
}

// Get returns the report stored under name.
func (c *Catalog) Get(name string) (*report.Report, error) {
	if err := c.check(name); err != nil {
		return nil, err
	}
	var buf []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(name))
		if err != nil {
			return err
		}
		buf, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: get %q", name)
	}
	r, err := report.Unmarshal(buf, report.JSON)
	return r, errors.Wrapf(err, "catalog: get %q", name)
}

// Delete removes the report stored under name. Deleting a missing name is
// ErrNotFound.
func (c *Catalog) Delete(name string) error {
	if err := c.check(name); err != nil {
		return err
	}
	err := c.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(name)); err != nil {
			return err
		}
		return txn.Delete(key(name))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return errors.Wrapf(ErrNotFound, "%q", name)
	}
	return errors.Wrapf(err, "catalog: delete %q", name)
}

// List returns the stored names in ascending byte order.
func (c *Catalog) List() ([]string, error) {
	if c.db == nil {
		return nil, ErrClosed
	}
	var names []string
	err := c.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.IteratorOptions{
			PrefetchValues: false,
			Prefix:         reportPrefix,
		})
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			k := it.Item().Key()
			names = append(names, string(bytes.TrimPrefix(k, reportPrefix)))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "catalog: list")
	}
	return names, nil
}
