package registry_test

import (
	"testing"

	"github.com/javanhut/ravencore/doc"
	"github.com/javanhut/ravencore/linepool"
	"github.com/javanhut/ravencore/registry"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndResolve(t *testing.T) {
	r := registry.New()
	d := doc.New(doc.KindMultiLine, linepool.New())

	id := r.Register(d)
	got, ok := r.Resolve(id)
	require.True(t, ok)
	require.Same(t, d, got)
}

func TestForgetMakesIdUnresolvable(t *testing.T) {
	r := registry.New()
	d := doc.New(doc.KindMultiLine, linepool.New())
	id := r.Register(d)

	r.Forget(id)
	_, ok := r.Resolve(id)
	require.False(t, ok)
}

func TestDistinctRegistrationsGetDistinctIds(t *testing.T) {
	r := registry.New()
	a := doc.New(doc.KindMultiLine, linepool.New())
	b := doc.New(doc.KindMultiLine, linepool.New())

	idA := r.Register(a)
	idB := r.Register(b)
	require.NotEqual(t, idA, idB)
	require.Equal(t, 2, r.Len())
}

func TestIdsReturnsAllRegistered(t *testing.T) {
	r := registry.New()
	ids := make(map[registry.DocId]bool)
	for i := 0; i < 3; i++ {
		id := r.Register(doc.New(doc.KindMultiLine, linepool.New()))
		ids[id] = true
	}
	for _, id := range r.Ids() {
		require.True(t, ids[id])
	}
	require.Len(t, r.Ids(), 3)
}
