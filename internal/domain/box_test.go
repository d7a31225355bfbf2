package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBox_DescribeEmpty(t *testing.T) {
	assert.Equal(t, "Box Components:\n\n", NewBox("").Describe())
}

func TestBox_AddKeepsInsertionOrder(t *testing.T) {
	b := NewBox("order")
	names := []string{"c", "a", "b", "a"}
	for _, n := range names {
		require.NoError(t, b.Add(NewToolItem(n)))
	}

	want := "Box Components:\n" +
		"Tool - Name: c\n" +
		"Tool - Name: a\n" +
		"Tool - Name: b\n" +
		"Tool - Name: a\n" +
		"\n"
	assert.Equal(t, want, b.Describe())
	assert.Equal(t, 4, b.Len())
}

func TestBox_AddSameNodeTwice(t *testing.T) {
	b := NewBox("")
	tool := NewToolItem("Saw")
	require.NoError(t, b.Add(tool))
	require.NoError(t, b.Add(tool))
	assert.Equal(t, 2, strings.Count(b.Describe(), "Tool - Name: Saw"))
}

func TestBox_RemoveAllIdenticalEntries(t *testing.T) {
	b := NewBox("")
	keep := NewToolItem("Saw")
	drop := NewToolItem("Saw")
	require.NoError(t, b.Add(drop))
	require.NoError(t, b.Add(keep))
	require.NoError(t, b.Add(drop))

	assert.Equal(t, 2, b.Remove(drop))
	require.Equal(t, 1, b.Len())
	assert.Same(t, keep, b.Children()[0])
}

func TestBox_RemoveAbsentIsNoop(t *testing.T) {
	b := NewBox("")
	tool := NewToolItem("Drill")
	require.NoError(t, b.Add(tool))
	before := b.Describe()

	assert.Equal(t, 0, b.Remove(NewToolItem("Drill")))
	assert.Equal(t, 0, b.Remove(nil))
	assert.Equal(t, before, b.Describe())
}

func TestBox_RemoveDropsRendering(t *testing.T) {
	b := NewBox("")
	phone := NewElectronicItem("Phone")
	charger := NewAccessoryItem("Charger")
	require.NoError(t, b.Add(phone))
	require.NoError(t, b.Add(charger))

	b.Remove(phone)
	out := b.Describe()
	assert.NotContains(t, out, "Phone")
	assert.Contains(t, out, "Accessory - Description: Charger\n")
}

func TestBox_AddRejectsNil(t *testing.T) {
	b := NewBox("")
	assert.ErrorIs(t, b.Add(nil), ErrNilNode)

	var typed *ToolItem
	assert.ErrorIs(t, b.Add(typed), ErrNilNode)
	assert.Equal(t, 0, b.Len())
}

func TestBox_AddRejectsCycles(t *testing.T) {
	outer := NewBox("outer")
	middle := NewBox("middle")
	inner := NewBox("inner")
	require.NoError(t, outer.Add(middle))
	require.NoError(t, middle.Add(inner))

	assert.ErrorIs(t, outer.Add(outer), ErrCycle)
	assert.ErrorIs(t, inner.Add(outer), ErrCycle)
	assert.ErrorIs(t, inner.Add(middle), ErrCycle)
	assert.Equal(t, 0, inner.Len())
}

func TestBox_NestingDepths(t *testing.T) {
	leaf := NewAccessoryItem("Strap")

	depth1 := NewBox("d1")
	require.NoError(t, depth1.Add(leaf))
	assert.Equal(t, "Box Components:\nAccessory - Description: Strap\n\n", depth1.Describe())

	depth2 := NewBox("d2")
	require.NoError(t, depth2.Add(depth1))
	assert.Equal(t, "Box Components:\n"+depth1.Describe()+"\n", depth2.Describe())

	depth3 := NewBox("d3")
	require.NoError(t, depth3.Add(depth2))
	assert.Equal(t, "Box Components:\nBox Components:\nBox Components:\nAccessory - Description: Strap\n\n\n\n", depth3.Describe())
}

func TestBox_DeepTreeDescribe(t *testing.T) {
	root := NewBox("root")
	cur := root
	const depth = 10000
	for i := 0; i < depth; i++ {
		next := NewBox("")
		require.NoError(t, cur.Add(next))
		cur = next
	}
	out := root.Describe()
	assert.Equal(t, depth+1, strings.Count(out, "Box Components:"))
}

func TestBox_EndToEndScenario(t *testing.T) {
	a := NewBox("A")
	require.NoError(t, a.Add(NewToolItem("X")))

	b := NewBox("B")
	require.NoError(t, b.Add(NewElectronicItem("Y")))
	require.NoError(t, b.Add(NewAccessoryItem("Z")))

	c := NewBox("C")
	require.NoError(t, c.Add(a))
	require.NoError(t, c.Add(b))
	require.NoError(t, c.Add(NewReceipt(3, "2023-03-24")))

	want := "Box Components:\n" +
		"Box Components:\n" +
		"Tool - Name: X\n" +
		"\n" +
		"Box Components:\n" +
		"Electronic - Name: Y\n" +
		"Accessory - Description: Z\n" +
		"\n" +
		"Receipt Details - Items amount: 3\n" +
		"Date: 2023-03-24\n" +
		"\n"
	assert.Equal(t, want, c.Describe())
}

func TestBox_WalkPreOrderWithDepth(t *testing.T) {
	inner := NewBox("inner")
	tool := NewToolItem("Level")
	require.NoError(t, inner.Add(tool))
	root := NewBox("root")
	receipt := NewReceipt(1, "2024-05-05")
	require.NoError(t, root.Add(inner))
	require.NoError(t, root.Add(receipt))

	var kinds []NodeKind
	var depths []int
	root.Walk(func(n Node, depth int) bool {
		kinds = append(kinds, n.Kind())
		depths = append(depths, depth)
		return true
	})
	assert.Equal(t, []NodeKind{KindBox, KindBox, KindTool, KindReceipt}, kinds)
	assert.Equal(t, []int{0, 1, 2, 1}, depths)
	assert.True(t, root.Contains(tool))
	assert.False(t, inner.Contains(receipt))
}

func TestBox_ChildrenIsACopy(t *testing.T) {
	b := NewBox("")
	require.NoError(t, b.Add(NewToolItem("Pliers")))
	kids := b.Children()
	kids[0] = NewToolItem("Other")
	assert.Contains(t, b.Describe(), "Pliers")
}
