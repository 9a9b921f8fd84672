package data

import (
	"fmt"
	"math"
	"strings"

	"mcoo/local-app/internal/model"
)

const idPrefix = "el_"

// IDGenerator hands out monotonically increasing element ids (el_0001, el_0002, ...).
type IDGenerator struct {
	next int
}

// NewIDGenerator creates a generator whose first id is el_0001.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{next: 1}
}

// Next returns a fresh id and advances the counter.
func (g *IDGenerator) Next() string {
	id := fmt.Sprintf("%s%04d", idPrefix, g.next)
	g.next++
	return id
}

// Reseed sets the numeric suffix of the next id. Values below 1 reset to 1.
func (g *IDGenerator) Reseed(n int) {
	if n < 1 {
		n = 1
	}
	g.next = n
}

// Peek returns the numeric suffix the next id will carry.
func (g *IDGenerator) Peek() int {
	return g.next
}

// IDNumber extracts the numeric suffix of an element id. It drops the first
// "el_" and reads the leading integer, so "el_0012" and "el_12x" both yield 12.
func IDNumber(id string) (int, bool) {
	s := strings.TrimLeft(strings.Replace(id, idPrefix, "", 1), " \t\n\r")

	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n, digits := 0, 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		d := int(s[digits] - '0')
		if n > (math.MaxInt-d)/10 {
			return 0, false
		}
		n = n*10 + d
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}

// nextSeed returns max(numeric suffix)+1 over the elements, or 1 when none
// parse. A suffix of math.MaxInt has no successor and is ignored.
func nextSeed(elements []model.Element) int {
	maxNum := 0
	for _, el := range elements {
		if n, ok := IDNumber(el.ID); ok && n > maxNum && n < math.MaxInt {
			maxNum = n
		}
	}
	return maxNum + 1
}
