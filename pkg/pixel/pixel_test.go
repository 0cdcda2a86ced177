package pixel_test

import (
	"testing"

	"go.uber.org/goleak"

	"pixeliter/pkg/pixel"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func randomPixel(t *testcase.T) pixel.Pixel {
	return pixel.Pixel{
		R: randomInt8(t),
		G: randomInt8(t),
		B: randomInt8(t),
	}
}

func randomInt8(t *testcase.T) int8 {
	return int8(t.Random.IntBetween(-128, 127))
}

func TestPixel_Field(t *testing.T) {
	s := testcase.NewSpec(t)

	p := testcase.Let(s, randomPixel)

	s.Test("known channels point to the matching field", func(t *testcase.T) {
		v := p.Get(t)
		assert.True(t, v.Field(pixel.R) == &v.R)
		assert.True(t, v.Field(pixel.G) == &v.G)
		assert.True(t, v.Field(pixel.B) == &v.B)
	})

	s.Test("writing through the field changes the record", func(t *testcase.T) {
		v := p.Get(t)
		exp := randomInt8(t)
		*v.Field(pixel.G) = exp
		assert.Equal(t, exp, v.G)
	})

	s.Test("unknown channel has no field", func(t *testcase.T) {
		v := p.Get(t)
		assert.Nil(t, v.Field(pixel.Channel(3)))
		assert.Nil(t, v.Field(pixel.Channel(-1)))
	})
}

func TestChannel_String(t *testing.T) {
	assert.Equal(t, "r", pixel.R.String())
	assert.Equal(t, "g", pixel.G.String())
	assert.Equal(t, "b", pixel.B.String())
	assert.Equal(t, "Channel(7)", pixel.Channel(7).String())
	assert.Equal(t, []pixel.Channel{pixel.R, pixel.G, pixel.B}, pixel.Channels)
}

func TestPixel_String(t *testing.T) {
	assert.Equal(t, "rgb(54, 23, 74)", pixel.Pixel{R: 54, G: 23, B: 74}.String())
	assert.Equal(t, "rgb(-128, 0, 127)", pixel.Pixel{R: -128, G: 0, B: 127}.String())
}
