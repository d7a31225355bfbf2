package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/parcel/internal/domain"
)

// ValidateImportSchema checks the manifest for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error
	for i := range schema.Children {
		errs = append(errs, ValidateNode(fmt.Sprintf("children[%d]", i), &schema.Children[i])...)
	}
	return errs
}

// ValidateNode checks a single node, and its children when it is a box.
// prefix names the node in error messages.
func ValidateNode(prefix string, n *NodeImport) []error {
	var errs []error

	if n.Kind == "" {
		return append(errs, fmt.Errorf("%s.kind is required", prefix))
	}
	if !domain.ValidNodeKinds[n.Kind] {
		return append(errs, fmt.Errorf("%s.kind: invalid value %q", prefix, n.Kind))
	}

	kind := domain.NodeKind(n.Kind)
	if kind.IsLeaf() && len(n.Children) > 0 {
		errs = append(errs, fmt.Errorf("%s: %s cannot have children", prefix, n.Kind))
	}

	switch kind {
	case domain.KindReceipt:
		if n.Amount == nil {
			errs = append(errs, fmt.Errorf("%s.amount is required", prefix))
		} else if *n.Amount < 0 {
			errs = append(errs, fmt.Errorf("%s.amount must not be negative", prefix))
		}
		if n.Date == "" {
			errs = append(errs, fmt.Errorf("%s.date is required", prefix))
		} else if _, err := time.Parse("2006-01-02", n.Date); err != nil {
			errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", prefix, n.Date))
		}
	case domain.KindTool, domain.KindElectronic:
		if n.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}
	case domain.KindAccessory:
		if n.Description == "" {
			errs = append(errs, fmt.Errorf("%s.description is required", prefix))
		}
	case domain.KindBox:
		for i := range n.Children {
			errs = append(errs, ValidateNode(fmt.Sprintf("%s.children[%d]", prefix, i), &n.Children[i])...)
		}
	}

	return errs
}
