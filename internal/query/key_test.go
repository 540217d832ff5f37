package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_HasPrefix(t *testing.T) {
	k := Key{"accounts", "list", "type=checking"}

	assert.True(t, k.HasPrefix(Key{"accounts"}))
	assert.True(t, k.HasPrefix(Key{"accounts", "list"}))
	assert.True(t, k.HasPrefix(k))
	assert.True(t, k.HasPrefix(Key{}))

	assert.False(t, k.HasPrefix(Key{"accounts", "detail"}))
	assert.False(t, k.HasPrefix(Key{"budgets"}))
	assert.False(t, k.HasPrefix(append(k, "extra")))
}

func TestRegistry_Hierarchy(t *testing.T) {
	r := NewRegistry("goals")

	assert.Equal(t, Key{"goals"}, r.All())
	assert.Equal(t, Key{"goals", "list"}, r.Lists())
	assert.Equal(t, Key{"goals", "list", "all"}, r.List(""))
	assert.Equal(t, Key{"goals", "list", "status=active"}, r.List("status=active"))
	assert.Equal(t, Key{"goals", "detail", "g1"}, r.Detail("g1"))
	assert.Equal(t, Key{"goals", "progress"}, r.Sub("progress"))

	// Every derived key sits under the resource root.
	for _, k := range []Key{r.Lists(), r.List("x=y"), r.Detail("id"), r.Sub("progress")} {
		assert.True(t, k.HasPrefix(r.All()))
	}
}

func TestEncodeFilter_OrderIndependent(t *testing.T) {
	a := EncodeFilter(map[string]string{"status": "active", "priority": "high"})
	b := EncodeFilter(map[string]string{"priority": "high", "status": "active"})

	assert.Equal(t, a, b)
	assert.Equal(t, "priority=high&status=active", a)
}

func TestEncodeFilter_DropsEmptyValues(t *testing.T) {
	assert.Equal(t, "", EncodeFilter(nil))
	assert.Equal(t, "", EncodeFilter(map[string]string{"status": ""}))
	assert.Equal(t, "type=expense", EncodeFilter(map[string]string{"type": "expense", "q": ""}))
}
