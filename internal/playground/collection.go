package playground

const (
	// MinItems is the fewest items the playground renders.
	MinItems = 1
	// MaxItems is the most items the playground renders.
	MaxItems = 12
	// DefaultItemCount is the item count at session start.
	DefaultItemCount = 3
)

// ItemCollection tracks how many item slots are rendered. Slots are
// identified by their 0-based index.
type ItemCollection struct {
	count int
}

// NewItemCollection returns a collection holding count items, clamped to
// [MinItems, MaxItems].
func NewItemCollection(count int) ItemCollection {
	return ItemCollection{count: clampCount(count)}
}

// Count returns the number of rendered items.
func (c ItemCollection) Count() int {
	if c.count == 0 {
		return DefaultItemCount
	}
	return c.count
}

// CanAdd reports whether Add would change the count.
func (c ItemCollection) CanAdd() bool { return c.Count() < MaxItems }

// CanRemove reports whether Remove would change the count.
func (c ItemCollection) CanRemove() bool { return c.Count() > MinItems }

// Add increments the count, capped at MaxItems. It reports whether the
// count changed.
func (c *ItemCollection) Add() bool {
	if !c.CanAdd() {
		return false
	}
	c.count = c.Count() + 1
	return true
}

// Remove decrements the count, floored at MinItems. It reports whether the
// count changed.
func (c *ItemCollection) Remove() bool {
	if !c.CanRemove() {
		return false
	}
	c.count = c.Count() - 1
	return true
}

// LastIndex returns the index of the last slot.
func (c ItemCollection) LastIndex() int { return c.Count() - 1 }

// Contains reports whether index names an existing slot.
func (c ItemCollection) Contains(index int) bool {
	return index >= 0 && index < c.Count()
}

func clampCount(n int) int {
	if n < MinItems {
		return MinItems
	}
	if n > MaxItems {
		return MaxItems
	}
	return n
}
