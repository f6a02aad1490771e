package util

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 38.825, RoundFloat(38.824973, 3))
	assert.Equal(t, -80.786, RoundFloat(-80.785962, 3))
	assert.True(t, math.IsInf(RoundFloat(math.Inf(1), 4), 1))
	assert.True(t, math.IsNaN(RoundFloat(math.NaN(), 4)))
}

func TestReverseG(t *testing.T) {
	arr := []string{"a", "b", "c", "d"}
	ReverseG(arr)
	assert.Equal(t, []string{"d", "c", "b", "a"}, arr)

	one := []int{1}
	ReverseG(one)
	assert.Equal(t, []int{1}, one)

	var empty []int
	ReverseG(empty)
	assert.Empty(t, empty)
}
