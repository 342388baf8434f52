package array

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestArrayJSON(t *testing.T) {
	eachBackend(t, func(t *testing.T, b Backend) {
		a := mustFromFlat(t, Shape{3}, []float32{1, 2.5, -3}, b)
		data, err := json.Marshal(a)
		require.NoError(t, err)
		assert.JSONEq(t, `{"shape":[3],"data":[1,2.5,-3]}`, string(data))

		dec, err := Zeros(Shape{1}, WithBackend(b))
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, dec))
		assert.Equal(t, b, dec.Backend())
		assert.Equal(t, Shape{3}, dec.Shape())
		assert.Equal(t, a.ToFlat(), dec.ToFlat())
		require.NoError(t, dec.CheckInvariants())
	})
}

func TestArrayJSONRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(50))
	eachBackend(t, func(t *testing.T, b Backend) {
		for _, n := range sizes {
			shape := Shape{2, n}
			a := mustFromFlat(t, shape, randomFlat(rng, shape.Size()), b)
			data, err := json.Marshal(a)
			require.NoError(t, err)

			var dec Array
			require.NoError(t, json.Unmarshal(data, &dec))
			assert.Equal(t, shape, dec.Shape())
			assert.Equal(t, a.ToFlat(), dec.ToFlat())
		}
	})
}

func TestMaskJSON(t *testing.T) {
	eachBackend(t, func(t *testing.T, b Backend) {
		m := mustMask(t, Shape{1, 3}, []bool{true, false, true}, b)
		data, err := json.Marshal(m)
		require.NoError(t, err)
		assert.JSONEq(t, `{"shape":[1,3],"masks":[true,false,true]}`, string(data))

		var dec Mask
		require.NoError(t, json.Unmarshal(data, &dec))
		assert.Equal(t, m.ToFlat(), dec.ToFlat())
		requirePaddingClear(t, &dec)
	})
}

func TestDecodeRejectsBadInput(t *testing.T) {
	var a Array
	err := json.Unmarshal([]byte(`{"shape":[2,2],"data":[1,2,3]}`), &a)
	require.ErrorIs(t, err, ErrLengthMismatch)
	err = json.Unmarshal([]byte(`{"shape":[],"data":[]}`), &a)
	require.ErrorIs(t, err, ErrInvalidShape)

	var m Mask
	err = json.Unmarshal([]byte(`{"shape":[4],"masks":[true]}`), &m)
	require.ErrorIs(t, err, ErrLengthMismatch)

	err = yaml.Unmarshal([]byte("shape: [3]\ndata: [1, 2]\n"), &a)
	require.ErrorIs(t, err, ErrLengthMismatch)

	err = json.Unmarshal([]byte(`{"shape":[3000000000000000000,4],"data":[1]}`), &a)
	require.ErrorIs(t, err, ErrInvalidShape)
	err = json.Unmarshal([]byte(`{"shape":[100000000000],"data":[]}`), &a)
	require.ErrorIs(t, err, ErrLengthMismatch)
	err = json.Unmarshal([]byte(`{"shape":[3000000000000000000,4],"masks":[true]}`), &m)
	require.ErrorIs(t, err, ErrInvalidShape)
	err = json.Unmarshal([]byte(`{"shape":[100000000000],"masks":[]}`), &m)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestJSONRejectsNaN(t *testing.T) {
	a := mustFromFlat(t, Shape{1}, []float32{float32(math.NaN())}, Scalar)
	_, err := json.Marshal(a)
	require.Error(t, err)
}

func TestYAMLRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(51))
	eachBackend(t, func(t *testing.T, b Backend) {
		a := mustFromFlat(t, Shape{2, 17}, randomFlat(rng, 34), b)
		data, err := yaml.Marshal(a)
		require.NoError(t, err)

		var dec Array
		require.NoError(t, yaml.Unmarshal(data, &dec))
		assert.Equal(t, a.Shape(), dec.Shape())
		assert.Equal(t, a.ToFlat(), dec.ToFlat())

		m := mustMask(t, Shape{2, 17}, randomBools(rng, 34), b)
		data, err = yaml.Marshal(m)
		require.NoError(t, err)
		var decM Mask
		require.NoError(t, yaml.Unmarshal(data, &decM))
		assert.Equal(t, m.ToFlat(), decM.ToFlat())
	})
}

func TestYAMLForm(t *testing.T) {
	a := mustFromFlat(t, Shape{2}, []float32{0.5, -1}, Scalar)
	data, err := yaml.Marshal(a)
	require.NoError(t, err)
	assert.Contains(t, string(data), "data: [0.5, -1]")
}
