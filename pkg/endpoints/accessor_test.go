package endpoints

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessor_CachesClient(t *testing.T) {
	loads := 0
	a := NewAccessor(func() (*Client, error) {
		loads++
		return NewClient(&Config{BaseURL: "http://localhost:3000", APIKey: testAPIKey})
	})

	first, err := a.Client()
	require.NoError(t, err)
	second, err := a.Client()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, loads)

	a.Reset()
	third, err := a.Client()
	require.NoError(t, err)

	assert.NotSame(t, first, third)
	assert.Equal(t, 2, loads)
}

func TestAccessor_LoadErrorNotCached(t *testing.T) {
	fail := true
	a := NewAccessor(func() (*Client, error) {
		if fail {
			return nil, errors.New("ENDPOINTS_API_KEY is required")
		}
		return NewClient(&Config{BaseURL: "http://localhost:3000", APIKey: testAPIKey})
	})

	c, err := a.Client()
	require.EqualError(t, err, "ENDPOINTS_API_KEY is required")
	assert.Nil(t, c)

	fail = false
	c, err = a.Client()
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestAccessor_ConcurrentFirstUse(t *testing.T) {
	var mu sync.Mutex
	loads := 0
	a := NewAccessor(func() (*Client, error) {
		mu.Lock()
		loads++
		mu.Unlock()
		return NewClient(&Config{BaseURL: "http://localhost:3000", APIKey: testAPIKey})
	})

	var wg sync.WaitGroup
	clients := make([]*Client, 8)
	for i := range clients {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := a.Client()
			assert.NoError(t, err)
			clients[i] = c
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, loads)
	for _, c := range clients {
		assert.Same(t, clients[0], c)
	}
}
