package bloom_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/TravisXO/CanonicalSeoAuditor/bloom"
)

func TestFilter_Seen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(1000, 0.01)

	assert.False(t, f.Seen("https://example.com/page1"))
	assert.True(t, f.Seen("https://example.com/page1"))
	assert.False(t, f.Seen("https://example.com/page2"))
}

func TestFilter_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(20000, 0.001)
	for i := 0; i < 10000; i++ {
		f.Seen(fmt.Sprintf("https://example.com/page/%d", i))
	}

	// URLs never recorded should almost never read as seen.
	falsePositives := 0
	for i := 0; i < 10000; i++ {
		if f.Seen(fmt.Sprintf("https://other.org/page/%d", i)) {
			falsePositives++
		}
	}
	assert.Less(t, falsePositives, 100, "false positive rate far above configured bound")
}
