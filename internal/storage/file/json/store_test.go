package json

import (
	"errors"
	"testing"

	"github.com/drakos74/calib/internal/storage"
	"github.com/stretchr/testify/assert"
)

type payload struct {
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
}

func TestStorage_StoreLoad(t *testing.T) {

	stores := map[string]storage.Persistence{
		"file":  NewStorage(t.TempDir()),
		"local": NewLocalStorage(),
	}

	for name, store := range stores {
		t.Run(name, func(t *testing.T) {
			k := storage.Key{Name: "reliability", Label: "test"}
			in := payload{
				Edges:  []float64{0, 0.5, 1},
				Counts: []int{1, 3},
			}

			assert.NoError(t, store.Store(k, in))

			var out payload
			assert.NoError(t, store.Load(k, &out))
			assert.Equal(t, in, out)

			err := store.Load(storage.Key{Name: "missing"}, &out)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, storage.NotFoundErr))
		})
	}

}

func TestVoidStorage(t *testing.T) {
	store := storage.NewVoidStorage()
	assert.NoError(t, store.Store(storage.Key{Name: "any"}, payload{}))
	assert.Error(t, store.Load(storage.Key{Name: "any"}, &payload{}))
}
