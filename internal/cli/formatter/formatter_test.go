package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/parcel/internal/domain"
	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences for stripping before comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestRenderTree_Connectors(t *testing.T) {
	items := []TreeItem{
		{Title: "Order parcel", Kind: domain.KindBox, Level: 0, IsLast: true},
		{Title: "Hammer box", Kind: domain.KindBox, Level: 1},
		{Title: "Hammer", Kind: domain.KindTool, Level: 2, IsLast: true},
		{Title: "Phone box", Kind: domain.KindBox, Level: 1},
		{Title: "Phone", Kind: domain.KindElectronic, Level: 2},
		{Title: "Charger", Kind: domain.KindAccessory, Level: 2, IsLast: true},
		{Title: "Receipt 3 on 2023-03-24", Kind: domain.KindReceipt, Level: 1, IsLast: true},
	}

	want := "▣ Order parcel\n" +
		"├─ ▣ Hammer box\n" +
		"│  └─ • Hammer\n" +
		"├─ ▣ Phone box\n" +
		"│  ├─ • Phone\n" +
		"│  └─ • Charger\n" +
		"└─ ≡ Receipt 3 on 2023-03-24\n"
	assert.Equal(t, want, stripANSI(RenderTree(items)))
}

func TestRenderTree_BlankUnderLastAncestor(t *testing.T) {
	items := []TreeItem{
		{Title: "root", Kind: domain.KindBox, IsLast: true},
		{Title: "only", Kind: domain.KindBox, Level: 1, IsLast: true},
		{Title: "leaf", Kind: domain.KindTool, Level: 2, IsLast: true},
	}
	want := "▣ root\n" +
		"└─ ▣ only\n" +
		"   └─ • leaf\n"
	assert.Equal(t, want, stripANSI(RenderTree(items)))
}

func TestRenderTree_BadgesAligned(t *testing.T) {
	items := []TreeItem{
		{Title: "root", Kind: domain.KindBox, IsLast: true, Detail: "aaaa1111"},
		{Title: "a much longer title", Kind: domain.KindTool, Level: 1, IsLast: true, Detail: "bbbb2222"},
	}
	want := "▣ root                    [ aaaa1111 ]\n" +
		"└─ • a much longer title  [ bbbb2222 ]\n"
	assert.Equal(t, want, stripANSI(RenderTree(items)))
}

func TestRenderTree_Empty(t *testing.T) {
	assert.Equal(t, "", RenderTree(nil))
}

func TestFormatBoxList(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
	boxes := []BoxSummary{
		{Record: &domain.NodeRecord{ID: "0123456789abcdef", Kind: domain.KindBox, Label: "Order parcel", CreatedAt: now}, Children: 3},
		{Record: &domain.NodeRecord{ID: "fedcba98", Kind: domain.KindBox, CreatedAt: time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC)}, Children: 0},
	}

	out := stripANSI(FormatBoxList(boxes, now))
	assert.Contains(t, out, "BOXES")
	assert.Contains(t, out, "ID        LABEL             ITEMS  CREATED\n")
	assert.Contains(t, out, "01234567  Order parcel      3      Today\n")
	assert.Contains(t, out, "fedcba98  (unlabelled box)  0      Sep 30, 2022\n")
}

func TestFormatBoxList_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatBoxList(nil, time.Now())), "No boxes stored yet")
}

func TestHumanDateFrom(t *testing.T) {
	now := time.Date(2026, 2, 7, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "Today", HumanDateFrom(now.Add(-time.Hour), now))
	assert.Equal(t, "Yesterday", HumanDateFrom(now.AddDate(0, 0, -1), now))
	assert.Equal(t, "Sep 30, 2022", HumanDateFrom(time.Date(2022, 9, 30, 0, 0, 0, 0, time.UTC), now))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "01234567", ShortID("0123456789"))
	assert.Equal(t, "abc", ShortID("abc"))
}
