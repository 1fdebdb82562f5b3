package store

import (
	"bytes"

	"github.com/iov-one/tokenswap/errors"
)

// cacheIterator merges the items of a cache wrap with the iterator of the
// store below it. Cached items shadow the parent entries with the same key
// and deleted items hide them.
type cacheIterator struct {
	// items are ordered in the direction of the iteration
	items   []keyer
	reverse bool

	parent     Iterator
	parentKey  []byte
	parentVal  []byte
	parentNext bool // parentKey and parentVal hold an unread entry
	parentDone bool
}

var _ Iterator = (*cacheIterator)(nil)

func newCacheIterator(items []keyer, parent Iterator, reverse bool) *cacheIterator {
	return &cacheIterator{
		items:   items,
		reverse: reverse,
		parent:  parent,
	}
}

// Next returns the next entry of the merged view.
func (c *cacheIterator) Next() (key, value []byte, err error) {
	for {
		if err := c.fillParent(); err != nil {
			return nil, nil, err
		}

		if len(c.items) == 0 {
			if c.parentDone {
				return nil, nil, errors.ErrIteratorDone
			}
			return c.takeParent()
		}

		item := c.items[0]
		if !c.parentDone {
			switch cmp := c.compare(item.Key(), c.parentKey); {
			case cmp > 0:
				// parent entry comes first
				return c.takeParent()
			case cmp == 0:
				// cached entry overwrites the parent one
				c.parentNext = false
			}
		}

		c.items = c.items[1:]
		if set, ok := item.(setItem); ok {
			return set.key, set.value, nil
		}
		// deleted item, keep looking
	}
}

// Release releases the Iterator.
func (c *cacheIterator) Release() {
	c.items = nil
	c.parent.Release()
}

// compare returns the ordering of two keys in the iteration direction.
func (c *cacheIterator) compare(a, b []byte) int {
	cmp := bytes.Compare(a, b)
	if c.reverse {
		return -cmp
	}
	return cmp
}

func (c *cacheIterator) fillParent() error {
	if c.parentNext || c.parentDone {
		return nil
	}
	key, value, err := c.parent.Next()
	switch {
	case errors.ErrIteratorDone.Is(err):
		c.parentDone = true
		return nil
	case err != nil:
		return err
	}
	c.parentKey, c.parentVal, c.parentNext = key, value, true
	return nil
}

func (c *cacheIterator) takeParent() ([]byte, []byte, error) {
	c.parentNext = false
	return c.parentKey, c.parentVal, nil
}
