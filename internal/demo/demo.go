// Package demo assembles the fixed sample parcel printed by a bare `parcel`.
package demo

import "github.com/alexanderramin/parcel/internal/domain"

const (
	HammerName   = "Tescoma 638728 PRESIDENT meat tenderizer hammer with hatchet"
	PhoneName    = "Samsung Galaxy S23 Ultra S918B 12GB/256GB Green smartphone"
	ChargerDesc  = "Samsung 25W Travel Adapter wall charger (w/o cable) Black (EP-TA800NBEGRU)"
	ReceiptDate  = "2023-03-24"
	ReceiptTotal = 3
)

// Build returns the sample tree: a box with a hammer, a box with a phone and
// its charger, both packed with the receipt into one big box.
func Build() *domain.Box {
	firstSmall := domain.NewBox("Hammer box")
	mustAdd(firstSmall, domain.NewToolItem(HammerName))

	secondSmall := domain.NewBox("Phone box")
	mustAdd(secondSmall, domain.NewElectronicItem(PhoneName))
	mustAdd(secondSmall, domain.NewAccessoryItem(ChargerDesc))

	big := domain.NewBox("Order parcel")
	mustAdd(big, firstSmall)
	mustAdd(big, secondSmall)
	mustAdd(big, domain.NewReceipt(ReceiptTotal, ReceiptDate))
	return big
}

// mustAdd panics on error; the sample tree is fixed and acyclic.
func mustAdd(b *domain.Box, n domain.Node) {
	if err := b.Add(n); err != nil {
		panic(err)
	}
}
