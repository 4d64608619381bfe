package collection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntonStoeckl/relational-query-go/querydb/collection"
)

func Test_Dict_ZeroValue_IsEmpty(t *testing.T) {
	var dict collection.Dict[string, int]

	assert.Equal(t, 0, dict.Len())
	assert.Empty(t, dict.Keys())

	_, ok := dict.Get("anything")
	assert.False(t, ok)
}

func Test_Dict_Insert_DoesNotMutateReceiver(t *testing.T) {
	original := collection.NewDict(map[string]int{"a": 1})

	updated := original.Insert("b", 2)

	assert.Equal(t, 1, original.Len())
	assert.Equal(t, 2, updated.Len())

	_, ok := original.Get("b")
	assert.False(t, ok)

	value, ok := updated.Get("b")
	require.True(t, ok)
	assert.Equal(t, 2, value)
}

func Test_Dict_Insert_ReplacesExistingKey(t *testing.T) {
	dict := collection.NewDict(map[string]int{"a": 1}).Insert("a", 42)

	value, ok := dict.Get("a")
	require.True(t, ok)
	assert.Equal(t, 42, value)
	assert.Equal(t, 1, dict.Len())
}

func Test_Dict_Remove(t *testing.T) {
	dict := collection.NewDict(map[string]int{"a": 1, "b": 2})

	removed := dict.Remove("a")

	assert.Equal(t, 2, dict.Len())
	assert.Equal(t, 1, removed.Len())

	_, ok := removed.Get("a")
	assert.False(t, ok)

	// removing an absent key is a no-op
	assert.Equal(t, 1, removed.Remove("zzz").Len())
}

func Test_Dict_Keys_AreAscending(t *testing.T) {
	dict := collection.NewDict(map[int]bool{9: false, 2: true, 5: true})

	assert.Equal(t, []int{2, 5, 9}, dict.Keys())
}

func Test_Dict_All_IteratesInAscendingKeyOrder(t *testing.T) {
	dict := collection.NewDict(map[int]string{3: "c", 1: "a", 2: "b"})

	var keys []int
	var values []string
	for key, value := range dict.All() {
		keys = append(keys, key)
		values = append(values, value)
	}

	assert.Equal(t, []int{1, 2, 3}, keys)
	assert.Equal(t, []string{"a", "b", "c"}, values)
}

func Test_Dict_All_StopsWhenYieldReturnsFalse(t *testing.T) {
	dict := collection.NewDict(map[int]string{1: "a", 2: "b", 3: "c"})

	var seen []int
	for key := range dict.All() {
		seen = append(seen, key)
		if len(seen) == 2 {
			break
		}
	}

	assert.Equal(t, []int{1, 2}, seen)
}

func Test_Dict_NewDict_CopiesInput(t *testing.T) {
	source := map[string]int{"a": 1}
	dict := collection.NewDict(source)

	source["b"] = 2

	assert.Equal(t, 1, dict.Len())
}

func Test_Dict_ToMap_ReturnsCopy(t *testing.T) {
	dict := collection.NewDict(map[string]int{"a": 1})

	plain := dict.ToMap()
	plain["b"] = 2

	assert.Equal(t, 1, dict.Len())
}
