package domain

import "sort"

// OptionKind discriminates the customizable option variants
type OptionKind string

const (
	OptionKindRadio    OptionKind = "radio"     // single choice, list
	OptionKindDropDown OptionKind = "drop_down" // single choice, dropdown
	OptionKindCheckbox OptionKind = "checkbox"  // multi choice, checkboxes
	OptionKindMultiple OptionKind = "multiple"  // multi choice, list
	OptionKindDate     OptionKind = "date"
	OptionKindField    OptionKind = "field" // free text
)

// IsValid returns true for the six known kinds
func (k OptionKind) IsValid() bool {
	switch k {
	case OptionKindRadio, OptionKindDropDown, OptionKindCheckbox,
		OptionKindMultiple, OptionKindDate, OptionKindField:
		return true
	}
	return false
}

// IsChoice returns true if the option carries a list of values
func (k OptionKind) IsChoice() bool {
	switch k {
	case OptionKindRadio, OptionKindDropDown, OptionKindCheckbox, OptionKindMultiple:
		return true
	}
	return false
}

// IsMultiChoice returns true if several values may be selected at once
func (k OptionKind) IsMultiChoice() bool {
	return k == OptionKindCheckbox || k == OptionKindMultiple
}

// OptionValue is one selectable value of a choice option
type OptionValue struct {
	ID        int64
	Title     string
	Price     float64 // price delta
	PriceType string
	SKU       string
	SortOrder int
}

// ProductOption is a configurable field attached to a bookable product.
// Values is populated only for choice kinds.
type ProductOption struct {
	ID        int64
	Title     string
	Kind      OptionKind
	Required  bool
	SortOrder int
	Values    []OptionValue
}

// Value returns the value with the given identifier
func (o *ProductOption) Value(id int64) (OptionValue, bool) {
	for _, v := range o.Values {
		if v.ID == id {
			return v, true
		}
	}
	return OptionValue{}, false
}

// ValueByTitle returns the first value with the given title
func (o *ProductOption) ValueByTitle(title string) (OptionValue, bool) {
	for _, v := range o.Values {
		if v.Title == title {
			return v, true
		}
	}
	return OptionValue{}, false
}

// SortOptions orders options and their values by sort order, keeping the source order on ties
func SortOptions(options []ProductOption) {
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].SortOrder < options[j].SortOrder
	})
	for i := range options {
		values := options[i].Values
		sort.SliceStable(values, func(a, b int) bool {
			return values[a].SortOrder < values[b].SortOrder
		})
	}
}
