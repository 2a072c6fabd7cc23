package entities

type ActivityType string

const (
	ActivityManual    ActivityType = "manual"
	ActivityAIDerived ActivityType = "ai-derived"
)

// DateLayout is the calendar-date format used for activity and stock dates.
const DateLayout = "2006-01-02"

type Activity struct {
	ID          string       `json:"id"`
	FieldID     string       `json:"fieldId,omitempty"` // empty for farm-wide activities
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Date        string       `json:"date"` // YYYY-MM-DD
	Type        ActivityType `json:"type"`
}

type NewActivity struct {
	FieldID     string       `json:"fieldId,omitempty"`
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description"`
	Date        string       `json:"date" validate:"required,datetime=2006-01-02"`
	Type        ActivityType `json:"type,omitempty" validate:"omitempty,oneof=manual ai-derived"`
}
