package entities

type Unit string

const (
	UnitKg      Unit = "kg"
	UnitTonnes  Unit = "tonnes"
	UnitLbs     Unit = "lbs"
	UnitBushels Unit = "bushels"
)

// Valid reports whether u is one of the supported stock units.
func (u Unit) Valid() bool {
	switch u {
	case UnitKg, UnitTonnes, UnitLbs, UnitBushels:
		return true
	}
	return false
}

type StockItem struct {
	ID        string `json:"id"`
	GrainType string `json:"grainType"`
	Quantity  int    `json:"quantity"`
	Unit      Unit   `json:"unit"`
}

type NewStockItem struct {
	GrainType string `json:"grainType" validate:"required"`
	Quantity  int    `json:"quantity" validate:"gte=0"`
	Unit      Unit   `json:"unit,omitempty" validate:"omitempty,oneof=kg tonnes lbs bushels"`
}

// StockMovement is the form payload for an add or remove transaction.
type StockMovement struct {
	Quantity int    `json:"quantity" validate:"gt=0"`
	Location string `json:"location"`
	Date     string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

type TransactionType string

const (
	TransactionAdd    TransactionType = "add"
	TransactionRemove TransactionType = "remove"
)

// StockTransaction records one applied movement and the resulting balance.
type StockTransaction struct {
	ID       string          `json:"id"`
	StockID  string          `json:"stockId"`
	Type     TransactionType `json:"type"`
	Quantity int             `json:"quantity"`
	Location string          `json:"location,omitempty"`
	Date     string          `json:"date"`
	Balance  int             `json:"balance"`
}
