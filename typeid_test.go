package strata

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type playerDiedEvent struct {
	EventBase
	PlayerId uint32
}

type levelLoadedEvent struct {
	EventBase
	Level string
}

func TestTypeIDOf(t *testing.T) {
	first := TypeIDOf[playerDiedEvent]()
	second := TypeIDOf[playerDiedEvent]()
	require.Equal(t, first, second)

	other := TypeIDOf[levelLoadedEvent]()
	require.NotEqual(t, first, other)

	require.GreaterOrEqual(t, first, TypeIDCustomStart)
	require.GreaterOrEqual(t, other, TypeIDCustomStart)
}

func TestTypeRegistryIsolated(t *testing.T) {
	registry := NewTypeRegistry()

	id := registry.IdOf(reflect.TypeFor[playerDiedEvent]())
	require.Equal(t, TypeIDCustomStart, id)

	// cached on the second request
	require.Equal(t, id, registry.IdOf(reflect.TypeFor[playerDiedEvent]()))

	next := registry.IdOf(reflect.TypeFor[levelLoadedEvent]())
	require.Equal(t, TypeIDCustomStart+1, next)
}

func TestTypeRegistryConcurrentFirstCall(t *testing.T) {
	registry := NewTypeRegistry()
	ty := reflect.TypeFor[playerDiedEvent]()

	var wg sync.WaitGroup
	ids := make([]TypeID, 16)
	for i := range ids {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = registry.IdOf(ty)
		}()
	}
	wg.Wait()

	for _, id := range ids {
		require.Equal(t, ids[0], id)
	}
}
