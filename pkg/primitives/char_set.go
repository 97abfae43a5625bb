package primitives

import (
	"fmt"
	"math/bits"
)

const (
	minLetter = 'A'
	maxLetter = 'Z'
)

// CharSet efficiently represents a set of uppercase letters.
//
// The zero value is the empty set.
type CharSet struct {
	mask uint32
}

// Add adds a letter to the set.
func (c *CharSet) Add(r rune) error {
	if r < minLetter || r > maxLetter {
		return fmt.Errorf("character %c is out of range", r)
	}
	c.mask |= 1 << (r - minLetter)
	return nil
}

// AddAll adds all letters from another set to this set.
func (c *CharSet) AddAll(other CharSet) {
	c.mask |= other.mask
}

// Contains checks if a letter is in the set. Runes outside 'A'..'Z' are
// never in the set.
func (c CharSet) Contains(r rune) bool {
	if r < minLetter || r > maxLetter {
		return false
	}
	return c.mask&(1<<(r-minLetter)) != 0
}

// IsFull checks if the set contains every letter.
func (c CharSet) IsFull() bool {
	return c.Count() == c.Capacity()
}

// Capacity returns the number of distinct letters the set can hold.
func (c CharSet) Capacity() int {
	return maxLetter - minLetter + 1
}

// Count returns the number of letters in the set.
func (c CharSet) Count() int {
	return bits.OnesCount32(c.mask)
}

func (c CharSet) String() string {
	letters := make([]rune, 0, c.Count())
	for r := rune(minLetter); r <= maxLetter; r++ {
		if c.Contains(r) {
			letters = append(letters, r)
		}
	}
	return fmt.Sprintf("CharSet{%s}", string(letters))
}
