package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/parcel/internal/cli/formatter"
	"github.com/alexanderramin/parcel/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// parcelHuhTheme styles forms with the formatter palette.
func parcelHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// newItemForm asks for the node kind first, then either one text field or
// the receipt's amount and date.
func newItemForm(kind, text, amount, date *string) *huh.Form {
	isReceipt := func() bool { return *kind == string(domain.KindReceipt) }

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What goes in the box?").
				Options(huh.NewOptions(
					string(domain.KindTool),
					string(domain.KindElectronic),
					string(domain.KindAccessory),
					string(domain.KindReceipt),
					string(domain.KindBox),
				)...).
				Value(kind),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Name, description or box label").
				Value(text).
				Validate(validateRequired),
		).WithHideFunc(isReceipt),
		huh.NewGroup(
			huh.NewInput().
				Title("Amount").
				Placeholder("3").
				Value(amount).
				Validate(validateAmount),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Placeholder(time.Now().Format("2006-01-02")).
				Value(date).
				Validate(validateDate),
		).WithHideFunc(func() bool { return !isReceipt() }),
	).WithTheme(parcelHuhTheme()).WithShowHelp(false)
}

func validateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("required")
	}
	return nil
}

func validateAmount(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return fmt.Errorf("use YYYY-MM-DD format")
	}
	return nil
}
