package set_test

import (
	"testing"

	"github.com/denismitr/bstset/set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedSet_Remove(t *testing.T) {
	newSet := func(t *testing.T) *set.OrderedSet[string] {
		s := set.NewOrderedSet[string]()
		_, err := s.AddSlice([]string{"foo", "bar", "baz", "123"})
		require.NoError(t, err)
		return s
	}

	t.Run("remove existing item from the middle", func(t *testing.T) {
		s := newSet(t)

		_, err := s.Remove("bar")
		require.NoError(t, err)

		assert.Equal(t, []string{"foo", "baz", "123"}, s.Items())
	})

	t.Run("remove existing item from the beginning", func(t *testing.T) {
		s := newSet(t)

		_, err := s.Remove("foo")
		require.NoError(t, err)

		assert.Equal(t, []string{"bar", "baz", "123"}, s.Items())
		assert.False(t, s.Contains("foo"))
		assert.True(t, s.Contains("123"))
	})

	t.Run("remove existing item from the end", func(t *testing.T) {
		s := newSet(t)

		v, err := s.Remove("123")
		require.NoError(t, err)
		assert.Equal(t, "123", v)

		assert.False(t, s.Contains("123"))
		assert.Equal(t, []string{"foo", "bar", "baz"}, s.Items())
	})

	t.Run("remove any takes the oldest element", func(t *testing.T) {
		s := newSet(t)

		v, err := s.RemoveAny()
		require.NoError(t, err)
		assert.Equal(t, "foo", v)
		assert.Equal(t, "{bar, baz, 123}", s.String())
	})
}

func TestOrderedSet_AddSet(t *testing.T) {
	t.Run("sets with single elements", func(t *testing.T) {
		s1 := set.NewOrderedSet[int]()
		require.NoError(t, s1.Add(3))

		s2 := set.NewOrderedSet[int]()
		require.NoError(t, s2.Add(9))

		added, err := s1.AddSet(s2)
		require.NoError(t, err)
		assert.Equal(t, 1, added)
		assert.Equal(t, 2, s1.Size())
		assert.Equal(t, 1, s2.Size())
		assert.True(t, s1.Contains(3))
		assert.True(t, s1.Contains(9))
		assert.False(t, s1.Contains(1))

		assert.Equal(t, []int{3, 9}, s1.Items())
	})
}
