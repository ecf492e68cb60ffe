package xuma_test

import (
	"testing"

	"github.com/bjaus/xuma"
	"github.com/stretchr/testify/assert"
)

func TestMatchingData_Variants(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		d := xuma.String("hello")
		s, ok := d.AsString()
		assert.True(t, ok)
		assert.Equal(t, "hello", s)
		assert.False(t, d.IsNone())
	})

	t.Run("bytes", func(t *testing.T) {
		d := xuma.Bytes([]byte("hi"))
		b, ok := d.AsBytes()
		assert.True(t, ok)
		assert.Equal(t, []byte("hi"), b)
		_, ok = d.AsString()
		assert.False(t, ok)
	})

	t.Run("bool", func(t *testing.T) {
		d := xuma.Bool(true)
		b, ok := d.AsBool()
		assert.True(t, ok)
		assert.True(t, b)
	})

	t.Run("none", func(t *testing.T) {
		assert.True(t, xuma.None.IsNone())
		_, ok := xuma.None.AsString()
		assert.False(t, ok)
		_, ok = xuma.None.AsBytes()
		assert.False(t, ok)
		_, ok = xuma.None.AsBool()
		assert.False(t, ok)
	})

	t.Run("cross kind accessors return false", func(t *testing.T) {
		d := xuma.String("x")
		_, ok := d.AsBytes()
		assert.False(t, ok)
		_, ok = d.AsBool()
		assert.False(t, ok)
	})
}
