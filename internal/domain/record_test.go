package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordFromNode_RoundTripsEveryKind(t *testing.T) {
	nodes := []Node{
		NewBox("Parcel"),
		NewReceipt(19.99, "2024-02-29"),
		NewToolItem("Hammer"),
		NewElectronicItem("Phone"),
		NewAccessoryItem("Charger"),
	}
	for _, n := range nodes {
		rec, err := RecordFromNode(n)
		require.NoError(t, err)
		assert.Equal(t, n.Kind(), rec.Kind)

		back, err := rec.ToNode()
		require.NoError(t, err)
		assert.Equal(t, n.Describe(), back.Describe())
	}
}

func TestRecordFromNode_Nil(t *testing.T) {
	_, err := RecordFromNode(nil)
	assert.ErrorIs(t, err, ErrNilNode)
}

func TestNodeRecord_ToNodeUnknownKind(t *testing.T) {
	_, err := (&NodeRecord{Kind: "crate"}).ToNode()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crate")
}

func TestNodeRecord_Title(t *testing.T) {
	assert.Equal(t, "(unlabelled box)", (&NodeRecord{Kind: KindBox}).Title())
	assert.Equal(t, "Receipt 3 on 2023-03-24", (&NodeRecord{Kind: KindReceipt, Amount: 3, Date: "2023-03-24"}).Title())
	assert.Equal(t, "Charger", (&NodeRecord{Kind: KindAccessory, Description: "Charger"}).Title())
	assert.Equal(t, "Phone", (&NodeRecord{Kind: KindElectronic, Name: "Phone"}).Title())
}
