package domain

import (
	"fmt"
	"strconv"
)

// Receipt is the paper slip packed alongside the goods.
type Receipt struct {
	amount float64
	date   string
}

func NewReceipt(amount float64, date string) *Receipt {
	return &Receipt{amount: amount, date: date}
}

func (r *Receipt) Kind() NodeKind  { return KindReceipt }
func (r *Receipt) Amount() float64 { return r.amount }
func (r *Receipt) Date() string    { return r.date }

// FormatAmount renders the amount in its shortest exact form ("3", "3.5").
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

func (r *Receipt) Describe() string {
	return fmt.Sprintf("Receipt Details - Items amount: %s\nDate: %s\n", FormatAmount(r.amount), r.date)
}

type ToolItem struct {
	name string
}

func NewToolItem(name string) *ToolItem {
	return &ToolItem{name: name}
}

func (t *ToolItem) Kind() NodeKind { return KindTool }
func (t *ToolItem) Name() string   { return t.name }

func (t *ToolItem) Describe() string {
	return fmt.Sprintf("Tool - Name: %s\n", t.name)
}

type ElectronicItem struct {
	name string
}

func NewElectronicItem(name string) *ElectronicItem {
	return &ElectronicItem{name: name}
}

func (e *ElectronicItem) Kind() NodeKind { return KindElectronic }
func (e *ElectronicItem) Name() string   { return e.name }

func (e *ElectronicItem) Describe() string {
	return fmt.Sprintf("Electronic - Name: %s\n", e.name)
}

type AccessoryItem struct {
	description string
}

func NewAccessoryItem(description string) *AccessoryItem {
	return &AccessoryItem{description: description}
}

func (a *AccessoryItem) Kind() NodeKind      { return KindAccessory }
func (a *AccessoryItem) Description() string { return a.description }

func (a *AccessoryItem) Describe() string {
	return fmt.Sprintf("Accessory - Description: %s\n", a.description)
}
