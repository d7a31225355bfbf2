package importer

import (
	"fmt"

	"github.com/alexanderramin/parcel/internal/domain"
)

// Convert transforms a validated ImportSchema into a box tree.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) (*domain.Box, error) {
	root := domain.NewBox(schema.Label)
	if err := addChildren(root, schema.Children); err != nil {
		return nil, err
	}
	return root, nil
}

func addChildren(box *domain.Box, children []NodeImport) error {
	for i := range children {
		node, err := ConvertNode(&children[i])
		if err != nil {
			return err
		}
		if err := box.Add(node); err != nil {
			return err
		}
	}
	return nil
}

// ConvertNode builds the domain node for a validated NodeImport.
func ConvertNode(n *NodeImport) (domain.Node, error) {
	switch domain.NodeKind(n.Kind) {
	case domain.KindBox:
		box := domain.NewBox(n.Label)
		if err := addChildren(box, n.Children); err != nil {
			return nil, err
		}
		return box, nil
	case domain.KindReceipt:
		var amount float64
		if n.Amount != nil {
			amount = *n.Amount
		}
		return domain.NewReceipt(amount, n.Date), nil
	case domain.KindTool:
		return domain.NewToolItem(n.Name), nil
	case domain.KindElectronic:
		return domain.NewElectronicItem(n.Name), nil
	case domain.KindAccessory:
		return domain.NewAccessoryItem(n.Description), nil
	default:
		return nil, fmt.Errorf("unknown node kind %q", n.Kind)
	}
}
