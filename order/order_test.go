package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNatural(t *testing.T) {
	ord := Natural[int]()

	assert.True(t, ord.LessOrEqual(1, 2))
	assert.True(t, ord.LessOrEqual(2, 2))
	assert.False(t, ord.LessOrEqual(3, 2))

	assert.True(t, ord.GreaterThan(3, 2))
	assert.False(t, ord.GreaterThan(2, 2))
	assert.False(t, ord.GreaterThan(1, 2))
}

func TestBy(t *testing.T) {
	ord := By(strings.Compare)

	assert.True(t, ord.LessOrEqual("a", "b"))
	assert.True(t, ord.LessOrEqual("a", "a"))
	assert.True(t, ord.GreaterThan("b", "a"))
	assert.False(t, ord.GreaterThan("a", "a"))
}

func TestReverse(t *testing.T) {
	ord := Reverse(Natural[int]())

	assert.True(t, ord.LessOrEqual(2, 1))
	assert.True(t, ord.LessOrEqual(2, 2))
	assert.True(t, ord.GreaterThan(1, 2))
	assert.False(t, ord.GreaterThan(2, 1))
}
