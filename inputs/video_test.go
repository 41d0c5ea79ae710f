package inputs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richinsley/dualview/inputs"
	"github.com/richinsley/dualview/inputs/inputstest"
)

func TestVideoChannelSameSizeNeverReallocates(t *testing.T) {
	store := inputstest.NewStore()
	ch, err := inputs.NewVideoChannel(store, inputstest.NewFrame(64, 36))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		require.NoError(t, ch.Update(inputstest.NewFrame(64, 36)))
	}

	assert.Equal(t, 1, ch.Allocations())
	assert.Equal(t, 1, store.Allocated)
	assert.Equal(t, 101, store.Uploads)
	assert.Equal(t, 1, store.Live())
}

func TestVideoChannelSizeChangeReallocatesOnce(t *testing.T) {
	store := inputstest.NewStore()
	ch, err := inputs.NewVideoChannel(store, inputstest.NewFrame(64, 36))
	require.NoError(t, err)
	first := ch.GetTextureID()

	require.NoError(t, ch.Update(inputstest.NewFrame(32, 18)))
	require.NoError(t, ch.Update(inputstest.NewFrame(32, 18)))

	assert.Equal(t, 2, ch.Allocations())
	assert.NotEqual(t, first, ch.GetTextureID())
	assert.Equal(t, 1, store.Live(), "old texture must be deleted")
	w, h := ch.Size()
	assert.Equal(t, [2]int{32, 18}, [2]int{w, h})
	assert.Equal(t, [3]float32{32, 18, 1}, ch.ChannelRes())
}

func TestVideoChannelKeepsOldTextureWhenReallocationFails(t *testing.T) {
	store := inputstest.NewStore()
	ch, err := inputs.NewVideoChannel(store, inputstest.NewFrame(64, 36))
	require.NoError(t, err)
	id := ch.GetTextureID()

	store.FailAllocate = errors.New("out of memory")
	require.Error(t, ch.Update(inputstest.NewFrame(32, 18)))

	assert.Equal(t, id, ch.GetTextureID())
	w, h := ch.Size()
	assert.Equal(t, [2]int{64, 36}, [2]int{w, h})
	assert.Equal(t, 1, store.Live())
}

func TestVideoChannelRequiresCurrentContext(t *testing.T) {
	store := inputstest.NewStore()
	store.Current = false

	_, err := inputs.NewVideoChannel(store, inputstest.NewFrame(8, 8))
	assert.ErrorIs(t, err, inputs.ErrContextNotCurrent)
	assert.Zero(t, store.Live())
}

func TestVideoChannelDestroyIsIdempotent(t *testing.T) {
	store := inputstest.NewStore()
	ch, err := inputs.NewVideoChannel(store, inputstest.NewFrame(8, 8))
	require.NoError(t, err)

	ch.Destroy()
	ch.Destroy()

	assert.True(t, ch.Released())
	assert.Equal(t, 1, store.Deleted)
	assert.Zero(t, store.Live())
	assert.ErrorIs(t, ch.Update(inputstest.NewFrame(8, 8)), inputs.ErrReleased)
}

func TestVideoChannelRejectsShortFrame(t *testing.T) {
	store := inputstest.NewStore()
	_, err := inputs.NewVideoChannel(store, inputs.Frame{Pix: make([]byte, 10), Width: 8, Height: 8})
	assert.Error(t, err)
	assert.Zero(t, store.Allocated)
}
