package idgen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLengthAndAlphabet(t *testing.T) {
	for i := 0; i < 1000; i++ {
		id := Generate()
		require.Len(t, id, Length)
		assert.True(t, IsValid(id), "generated id %q should be valid", id)
	}
}

func TestGenerateUniqueConcurrently(t *testing.T) {
	const (
		workers   = 8
		perWorker = 2000
	)

	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]string, 0, perWorker)
			for i := 0; i < perWorker; i++ {
				local = append(local, Generate())
			}
			mu.Lock()
			defer mu.Unlock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker, "all identifiers should be unique")
}

func TestIsValid(t *testing.T) {
	testCases := []struct {
		name string
		id   string
		want bool
	}{
		{name: "generated", id: "abcdefghijABCDEFGHIJ0123456789", want: true},
		{name: "too_short", id: "abc", want: false},
		{name: "too_long", id: "abcdefghijABCDEFGHIJ0123456789x", want: false},
		{name: "bad_symbol", id: "abcdefghijABCDEFGHIJ012345678-", want: false},
		{name: "empty", id: "", want: false},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, IsValid(testCase.id))
		})
	}
}
