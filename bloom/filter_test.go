package bloom_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/infobox/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_AddAndTest(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Test("Voda"))

	f.Add("Voda")

	assert.True(t, f.Test("Voda"))
	assert.False(t, f.Test("Etanol"))
}

func TestFilter_ZeroSize(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(0, 0.01)
	f.Add("Voda")

	assert.True(t, f.Test("Voda"))
}

func TestFilter_LowFalsePositiveRate(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(10000, 1e-9)
	for i := 0; i < 10000; i++ {
		f.Add(fmt.Sprintf("Stránka %d", i))
	}

	falsePositives := 0
	for i := 10000; i < 20000; i++ {
		if f.Test(fmt.Sprintf("Stránka %d", i)) {
			falsePositives++
		}
	}
	assert.Zero(t, falsePositives)
}
