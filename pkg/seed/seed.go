// Package seed holds the collections the state store starts from. Nothing in
// it is persisted; every process start begins from the same fixtures.
package seed

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"agrovision/entities"
)

// PlaceholderImage is shown for fields created without an image.
const PlaceholderImage = "https://placehold.co/600x400.png"

type Data struct {
	Fields                []entities.Field
	Activities            []entities.Activity
	ManualRecommendations []entities.Recommendation
	Stock                 []entities.StockItem
}

// Default returns a fresh copy of the built-in fixtures.
func Default() Data {
	return Data{
		Fields: []entities.Field{
			{ID: "1", Name: "North Paddock", CropType: "Corn", Area: 120, SoilType: "Loamy Sand", Status: "Growing", ImageURL: PlaceholderImage},
			{ID: "2", Name: "Sunset Valley", CropType: "Soybeans", Area: 250, SoilType: "Clay Loam", Status: "Planted", ImageURL: PlaceholderImage},
			{ID: "3", Name: "Green Acres", CropType: "Wheat", Area: 80, SoilType: "Silty Clay", Status: "Harvested", ImageURL: PlaceholderImage},
		},
		Activities: []entities.Activity{
			{ID: "gen_act1", Title: "General Farm Maintenance", Description: "Check all equipment and storage facilities.", Date: "2024-07-10", Type: entities.ActivityManual},
			{ID: "gen_act2", Title: "Soil Sampling - Central Fields", Description: "Collect soil samples for analysis.", Date: "2024-07-18", Type: entities.ActivityManual},
			{ID: "act1", FieldID: "1", Title: "Planting Corn", Description: "Completed planting of corn seeds.", Date: "2024-05-15", Type: entities.ActivityManual},
			{ID: "act2", FieldID: "1", Title: "Fertilization Round 1", Description: "Applied initial fertilizer.", Date: "2024-05-20", Type: entities.ActivityManual},
			{ID: "act3", FieldID: "2", Title: "Planting Soybeans", Description: "Completed planting of soybean seeds.", Date: "2024-06-01", Type: entities.ActivityManual},
		},
		ManualRecommendations: DefaultManualRecommendations(),
		Stock: []entities.StockItem{
			{ID: "1", GrainType: "Wheat", Quantity: 1000, Unit: entities.UnitKg},
			{ID: "2", GrainType: "Corn", Quantity: 1500, Unit: entities.UnitKg},
			{ID: "3", GrainType: "Soybeans", Quantity: 800, Unit: entities.UnitKg},
		},
	}
}

func DefaultManualRecommendations() []entities.Recommendation {
	return []entities.Recommendation{
		{Title: "Crop Rotation Planning", Description: "Review and plan crop rotation for next season to improve soil health and reduce pest risks.", Priority: entities.PriorityHigh, Source: entities.SourceManual},
		{Title: "Water Management System Check", Description: "Inspect irrigation systems for leaks and efficiency before the peak summer heat.", Priority: entities.PriorityMedium, Source: entities.SourceManual},
		{Title: "Equipment Maintenance Schedule", Description: "Ensure all farm machinery is serviced and ready for upcoming operations.", Priority: entities.PriorityLow, Source: entities.SourceManual},
	}
}

// Validate checks the invariants the store relies on: unique ids, positive
// field areas, non-negative stock in a known unit, and activity field
// references that resolve.
func (d Data) Validate() error {
	var errs []error
	fieldIDs := map[string]bool{}
	for _, f := range d.Fields {
		switch {
		case f.ID == "":
			errs = append(errs, fmt.Errorf("field %q: missing id", f.Name))
		case fieldIDs[f.ID]:
			errs = append(errs, fmt.Errorf("field %q: duplicate id", f.ID))
		}
		fieldIDs[f.ID] = true
		if f.Area <= 0 {
			errs = append(errs, fmt.Errorf("field %q: area must be greater than 0", f.ID))
		}
		for _, req := range [...]struct{ name, v string }{
			{"name", f.Name}, {"crop type", f.CropType}, {"soil type", f.SoilType}, {"status", f.Status},
		} {
			if strings.TrimSpace(req.v) == "" {
				errs = append(errs, fmt.Errorf("field %q: %s is required", f.ID, req.name))
			}
		}
	}
	actIDs := map[string]bool{}
	for _, a := range d.Activities {
		if a.ID == "" || actIDs[a.ID] {
			errs = append(errs, fmt.Errorf("activity %q: missing or duplicate id", a.ID))
		}
		actIDs[a.ID] = true
		if a.FieldID != "" && !fieldIDs[a.FieldID] {
			errs = append(errs, fmt.Errorf("activity %q: unknown field %q", a.ID, a.FieldID))
		}
		if _, err := time.Parse(entities.DateLayout, a.Date); err != nil {
			errs = append(errs, fmt.Errorf("activity %q: bad date %q", a.ID, a.Date))
		}
	}
	for _, r := range d.ManualRecommendations {
		if !r.Priority.Valid() {
			errs = append(errs, fmt.Errorf("recommendation %q: bad priority %q", r.Title, r.Priority))
		}
	}
	stockIDs := map[string]bool{}
	for _, s := range d.Stock {
		if s.ID == "" || stockIDs[s.ID] {
			errs = append(errs, fmt.Errorf("stock %q: missing or duplicate id", s.ID))
		}
		stockIDs[s.ID] = true
		if s.Quantity < 0 {
			errs = append(errs, fmt.Errorf("stock %q: negative quantity", s.ID))
		}
		if !s.Unit.Valid() {
			errs = append(errs, fmt.Errorf("stock %q: unknown unit %q", s.ID, s.Unit))
		}
	}
	return errors.Join(errs...)
}
