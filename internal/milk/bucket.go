// Package milk implements the milk bucket and the unit conversion served
// alongside a successful withdrawal.
//
// The bucket is a saturating counter in [0, Capacity]. A withdrawal takes one
// unit, a refill adds one unit back, and a force refill fills it to the brim.
package milk

// Capacity is the number of units a full bucket holds.
const Capacity = 5

// Bucket holds the amount of milk currently available.
//
// Bucket is not safe for concurrent use; the owner is expected to guard it.
//
// Example usage:
//
//	b := NewBucket()
//	if b.Withdraw() {
//	    // serve milk
//	} else {
//	    // bucket is empty
//	}
type Bucket struct {
	level int // Units currently in the bucket
}

// NewBucket returns a full bucket.
func NewBucket() Bucket {
	return Bucket{level: Capacity}
}

// Withdraw takes one unit from the bucket.
//
// Returns true if a unit was available and removed, false if the bucket is
// empty. An empty bucket is left untouched.
func (b *Bucket) Withdraw() bool {
	if b.level > 0 {
		b.level--
		return true
	}
	return false
}

// Refill adds one unit unless the bucket is already full. It reports whether
// the level changed.
func (b *Bucket) Refill() bool {
	if b.level < Capacity {
		b.level++
		return true
	}
	return false
}

// ForceRefill fills the bucket regardless of its current level.
func (b *Bucket) ForceRefill() {
	b.level = Capacity
}

// Level returns the number of units currently in the bucket.
func (b Bucket) Level() int {
	return b.level
}
