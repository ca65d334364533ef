package resolve_options

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TourBooking/internal/domain"
)

const (
	optTourDate  int64 = 1
	optCruise    int64 = 2
	optArrival   int64 = 3
	optDeparture int64 = 4
	optExtras    int64 = 5
	optNotes     int64 = 6

	valueYes int64 = 21
	valueNo  int64 = 22
)

func tourOptions() []domain.ProductOption {
	return []domain.ProductOption{
		{ID: optTourDate, Title: domain.TourDateOptionTitle, Kind: domain.OptionKindDate, Required: true, SortOrder: 1},
		{
			ID: optCruise, Title: domain.CruiseShipOptionTitle, Kind: domain.OptionKindRadio, Required: true, SortOrder: 2,
			Values: []domain.OptionValue{
				{ID: valueYes, Title: domain.CruiseShipYesValueTitle, SortOrder: 1},
				{ID: valueNo, Title: "NO", SortOrder: 2},
			},
		},
		{ID: optArrival, Title: domain.ShipArrivalOptionTitle, Kind: domain.OptionKindField, Required: true, SortOrder: 3},
		{ID: optDeparture, Title: domain.ShipDepartureOptionTitle, Kind: domain.OptionKindField, Required: true, SortOrder: 4},
		{
			ID: optExtras, Title: "Extras", Kind: domain.OptionKindCheckbox, SortOrder: 5,
			Values: []domain.OptionValue{{ID: 51, Title: "Lunch"}, {ID: 52, Title: "Snorkel"}},
		},
		{ID: optNotes, Title: "Notes", Kind: domain.OptionKindField, SortOrder: 6},
	}
}

func TestResolve_CruiseShipYesShowsDependents(t *testing.T) {
	r := NewResolver(DefaultRules())

	res := r.Resolve(tourOptions(), domain.SelectedOptions{
		optTourDate: "2024-07-01",
		optCruise:   "21",
		optArrival:  "08:00",
	})

	assert.True(t, res.IsVisible(optArrival))
	assert.True(t, res.IsVisible(optDeparture))
	assert.False(t, res.Complete())
	assert.Equal(t, []string{domain.ShipDepartureOptionTitle}, res.MissingTitles())
}

func TestResolve_CruiseShipNoHidesAndDropsDependents(t *testing.T) {
	r := NewResolver(DefaultRules())

	// leftover answers from a previous YES
	res := r.Resolve(tourOptions(), domain.SelectedOptions{
		optTourDate:  "2024-07-01",
		optCruise:    "22",
		optArrival:   "08:00",
		optDeparture: "17:00",
	})

	assert.False(t, res.IsVisible(optArrival))
	assert.False(t, res.IsVisible(optDeparture))
	assert.True(t, res.Complete(), "hidden options are never required")

	for _, entry := range res.Payload {
		assert.NotEqual(t, optArrival, entry.OptionID)
		assert.NotEqual(t, optDeparture, entry.OptionID)
	}
	assert.Equal(t, []domain.CartItemOption{
		{OptionID: optTourDate, ValueDate: "2024-07-01 00:00:00"},
		{OptionID: optCruise, ValueString: "22"},
	}, res.Payload)
}

func TestResolve_UnansweredControllerHidesDependents(t *testing.T) {
	r := NewResolver(DefaultRules())

	res := r.Resolve(tourOptions(), domain.SelectedOptions{})

	assert.False(t, res.IsVisible(optArrival))
	assert.ElementsMatch(t, []string{domain.TourDateOptionTitle, domain.CruiseShipOptionTitle}, res.MissingTitles())
	assert.Empty(t, res.Payload)
}

func TestResolve_MissingControllerHidesDependents(t *testing.T) {
	r := NewResolver(DefaultRules())
	options := tourOptions()
	withoutController := append([]domain.ProductOption{}, options[0])
	withoutController = append(withoutController, options[2:]...)

	res := r.Resolve(withoutController, domain.SelectedOptions{optArrival: "08:00"})

	assert.False(t, res.IsVisible(optArrival))
	assert.False(t, res.IsVisible(optDeparture))
	assert.True(t, res.IsVisible(optNotes))
}

func TestResolve_PayloadKinds(t *testing.T) {
	r := NewResolver(DefaultRules())

	res := r.Resolve(tourOptions(), domain.SelectedOptions{
		optTourDate:  "2024-12-31",
		optCruise:    "21",
		optArrival:   "08:00",
		optDeparture: "17:30",
		optExtras:    "51,52",
		optNotes:     "   ",
	})

	require.True(t, res.Complete())
	assert.Equal(t, []domain.CartItemOption{
		{OptionID: optTourDate, ValueDate: "2024-12-31 00:00:00"},
		{OptionID: optCruise, ValueString: "21"},
		{OptionID: optArrival, ValueString: "08:00"},
		{OptionID: optDeparture, ValueString: "17:30"},
		{OptionID: optExtras, ValueString: "51,52"},
	}, res.Payload, "blank answers are omitted")
}

func TestResolve_Idempotent(t *testing.T) {
	r := NewResolver(DefaultRules())
	options := tourOptions()
	selected := domain.SelectedOptions{optTourDate: "2024-07-01", optCruise: "21", optArrival: "08:00"}

	first := r.Resolve(options, selected)
	second := r.Resolve(options, selected)

	assert.Equal(t, first, second)
	assert.Equal(t, domain.SelectedOptions{optTourDate: "2024-07-01", optCruise: "21", optArrival: "08:00"}, selected)
}

func TestResolve_ChainedDependencyHiddenWithController(t *testing.T) {
	rules := append(DefaultRules(), DependencyRule{
		ControllerTitle:       domain.ShipArrivalOptionTitle,
		AffirmativeValueTitle: "Early",
		DependentTitles:       []string{"Breakfast"},
	})
	options := tourOptions()
	options[2] = domain.ProductOption{
		ID: optArrival, Title: domain.ShipArrivalOptionTitle, Kind: domain.OptionKindDropDown, SortOrder: 3,
		Values: []domain.OptionValue{{ID: 31, Title: "Early"}},
	}
	options = append(options, domain.ProductOption{ID: 7, Title: "Breakfast", Kind: domain.OptionKindField, SortOrder: 7})

	res := NewResolver(rules).Resolve(options, domain.SelectedOptions{optCruise: "22", optArrival: "31", 7: "eggs"})
	assert.False(t, res.IsVisible(7))

	res = NewResolver(rules).Resolve(options, domain.SelectedOptions{optCruise: "21", optArrival: "31", 7: "eggs"})
	assert.True(t, res.IsVisible(7))
}

func TestFormatDateValue(t *testing.T) {
	assert.Equal(t, "2024-07-01 00:00:00", FormatDateValue("2024-07-01"))
	assert.Equal(t, "2024-07-01 00:00:00", FormatDateValue("2024-07-01 13:45:00"))
}
