package lock

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithDelay(t *testing.T) {
	t.Run("runs the code", func(t *testing.T) {
		called := false
		ok, err := WithDelay(context.Background(), "key-1", time.Second, func() error {
			called = true
			return nil
		})
		require.NoError(t, err)
		require.True(t, ok)
		require.True(t, called)
	})

	t.Run("held key times out", func(t *testing.T) {
		started := make(chan struct{})
		release := make(chan struct{})
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = WithDelay(context.Background(), "key-2", time.Second, func() error {
				close(started)
				<-release
				return nil
			})
		}()
		<-started
		ok, err := WithDelay(context.Background(), "key-2", 100*time.Millisecond, func() error {
			t.Fatal("must not run while the key is held")
			return nil
		})
		require.NoError(t, err)
		require.False(t, ok)
		close(release)
		wg.Wait()

		ok, err = WithDelay(context.Background(), "key-2", time.Second, func() error { return nil })
		require.NoError(t, err)
		require.True(t, ok)
	})
}
