package entities

// Field is a cultivated plot. Activities is not stored on the field: it is
// filled on read from the activity collection, filtered by FieldID.
type Field struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	CropType       string     `json:"cropType"`
	Area           float64    `json:"area"`   // acres
	SoilType       string     `json:"soilType"`
	Status         string     `json:"status"` // Planted|Growing|Harvesting|Harvested|Fallow
	ImageURL       string     `json:"imageUrl,omitempty"`
	AIActivityPlan string     `json:"aiActivityPlan,omitempty"`
	Activities     []Activity `json:"activities"`
}

// NewField is the form payload used to create a field.
type NewField struct {
	Name     string  `json:"name" validate:"required"`
	CropType string  `json:"cropType" validate:"required"`
	Area     float64 `json:"area" validate:"gt=0"`
	SoilType string  `json:"soilType" validate:"required"`
	Status   string  `json:"status" validate:"required"`
	ImageURL string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// FieldPatch carries a partial update; nil members are left untouched.
type FieldPatch struct {
	Name           *string  `json:"name,omitempty" validate:"omitnil,min=1"`
	CropType       *string  `json:"cropType,omitempty" validate:"omitnil,min=1"`
	Area           *float64 `json:"area,omitempty" validate:"omitnil,gt=0"`
	SoilType       *string  `json:"soilType,omitempty" validate:"omitnil,min=1"`
	Status         *string  `json:"status,omitempty" validate:"omitnil,min=1"`
	ImageURL       *string  `json:"imageUrl,omitempty" validate:"omitnil,url"`
	AIActivityPlan *string  `json:"aiActivityPlan,omitempty"`
}
