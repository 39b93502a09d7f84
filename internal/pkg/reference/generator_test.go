package reference

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_BillFormat(t *testing.T) {
	gen := NewBillGenerator()

	ref := gen.Generate()

	assert.Len(t, ref, BillRefLength)
	for _, r := range ref {
		assert.True(t, r >= '0' && r <= '9', "bill reference must be numeric, got %q", ref)
	}
}

func TestGenerate_RechargeFormat(t *testing.T) {
	gen := NewRechargeGenerator()

	ref := gen.Generate()

	assert.Len(t, ref, RechargeRefLength)
	assert.Equal(t, RechargePrefix, ref[:len(RechargePrefix)])
}

func TestGenerate_PadsShortTimestamps(t *testing.T) {
	gen := NewGenerator("", BillRefLength)
	gen.now = func() time.Time { return time.UnixMilli(42) }

	ref := gen.Generate()

	require.Len(t, ref, BillRefLength)
	assert.Equal(t, "0000000042", ref[:10])
}

func TestGenerate_DistinctWithinSameMillisecond(t *testing.T) {
	gen := NewBillGenerator()
	frozen := time.Now()
	gen.now = func() time.Time { return frozen }

	const workers = 50
	refs := make(chan string, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			refs <- gen.Generate()
		}()
	}
	wg.Wait()
	close(refs)

	seen := make(map[string]struct{}, workers)
	for ref := range refs {
		_, dup := seen[ref]
		require.False(t, dup, "duplicate reference %s", ref)
		seen[ref] = struct{}{}
	}
	assert.Len(t, seen, workers)
}
