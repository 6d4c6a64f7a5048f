package clj

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual_Scalars(t *testing.T) {
	assert.True(t, Equal(Nil, Nil))
	assert.True(t, Equal(True, True))
	assert.False(t, Equal(True, False))
	assert.True(t, Equal(Num(1), Num(1.0)))
	assert.True(t, Equal(Str("a"), Str("a")))
	assert.False(t, Equal(Str("a"), Symbol("a")))
	assert.True(t, Equal(Keyword(":a"), Keyword(":a")))
	assert.False(t, Equal(Keyword(":a"), Keyword(":b")))
}

func TestEqual_Sequences(t *testing.T) {
	assert.True(t, Equal(List(Num(1), Num(2)), List(Num(1), Num(2))))
	assert.False(t, Equal(List(Num(1)), List(Num(1), Num(2))))
	// A list never equals a vector, even with equal elements.
	assert.False(t, Equal(List(Num(1)), Vector(Num(1))))
	assert.True(t, Equal(
		Vector(List(Num(1)), Str("x")),
		Vector(List(Num(1)), Str("x")),
	))
}

func TestEqual_MapsOrderIndependent(t *testing.T) {
	m1 := MapVal(NewMapObject(Keyword(":a"), Num(1), Keyword(":b"), Num(2)))
	m2 := MapVal(NewMapObject(Keyword(":b"), Num(2), Keyword(":a"), Num(1)))
	assert.True(t, Equal(m1, m2))

	m3 := MapVal(NewMapObject(Keyword(":a"), Num(1)))
	assert.False(t, Equal(m1, m3))

	m4 := MapVal(NewMapObject(Keyword(":a"), Num(1), Keyword(":b"), Num(3)))
	assert.False(t, Equal(m1, m4))
}

func TestEqual_CompositeMapKeys(t *testing.T) {
	k1 := Vector(Num(1), Num(2))
	k2 := Vector(Num(1), Num(2))
	m1 := MapVal(NewMapObject(k1, Str("v")))
	m2 := MapVal(NewMapObject(k2, Str("v")))
	assert.True(t, Equal(m1, m2))

	v, ok := m1.Map().Get(k2)
	assert.True(t, ok)
	assert.True(t, Equal(v, Str("v")))
}

func TestMapObject_AssocDissocCopy(t *testing.T) {
	m := NewMapObject(Keyword(":a"), Num(1))
	m2 := m.Assoc(Keyword(":b"), Num(2))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, m2.Len())

	m3, found := m2.Dissoc(Keyword(":a"))
	assert.True(t, found)
	assert.Equal(t, 2, m2.Len())
	assert.Equal(t, 1, m3.Len())

	_, found = m.Dissoc(Keyword(":missing"))
	assert.False(t, found)
}

func TestMapObject_InsertionOrder(t *testing.T) {
	m := NewMapObject(
		Keyword(":b"), Num(1),
		Keyword(":a"), Num(2),
		Keyword(":b"), Num(3), // replaces in place, keeps position
	)
	wantPrinted(t, MapVal(m), "{:b 3 :a 2}")
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(Nil))
	assert.False(t, Truthy(False))
	assert.True(t, Truthy(True))
	assert.True(t, Truthy(Num(0)))
	assert.True(t, Truthy(Str("")))
	assert.True(t, Truthy(Vector()))
	assert.True(t, Truthy(MapVal(NewMapObject())))
}
