package keymutex_test

import (
	"sync"
	"testing"

	"fulfillment/internal/pkg/keymutex"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyMutex_SerializesSameKey(t *testing.T) {
	locks := keymutex.New()

	const goroutines = 32
	counter := 0
	var wg sync.WaitGroup

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := locks.Lock("order-1")
			defer unlock()
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestKeyMutex_DistinctKeysDoNotBlock(t *testing.T) {
	locks := keymutex.New()

	unlockA := locks.Lock("order-a")
	defer unlockA()

	done := make(chan struct{})
	go func() {
		unlockB := locks.Lock("order-b")
		unlockB()
		close(done)
	}()

	select {
	case <-done:
	case <-t.Context().Done():
		t.Fatal("lock on a distinct key blocked")
	}
}

func TestKeyMutex_UnlockIsIdempotent(t *testing.T) {
	locks := keymutex.New()

	unlock := locks.Lock("order-1")
	unlock()
	require.NotPanics(t, unlock)

	// Key must be reusable after release.
	unlock2 := locks.Lock("order-1")
	unlock2()
}
