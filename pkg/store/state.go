package store

import (
	"fmt"
	"math"
	"slices"

	"agrovision/entities"
	"agrovision/pkg/seed"
)

// state holds every collection the store owns. Transitions below mutate a
// clone and never touch notifications or subscribers. Field.Activities is
// always nil here and filled on read.
type state struct {
	fields          []entities.Field
	activities      []entities.Activity
	recommendations []entities.Recommendation
	stock           []entities.StockItem
	transactions    []entities.StockTransaction
}

func newState(d seed.Data) *state {
	st := &state{
		fields:          make([]entities.Field, 0, len(d.Fields)),
		activities:      slices.Clone(d.Activities),
		recommendations: slices.Clone(d.ManualRecommendations),
		stock:           slices.Clone(d.Stock),
	}
	for _, f := range d.Fields {
		f.Activities = nil
		st.fields = append(st.fields, f)
	}
	return st
}

func (s *state) clone() *state {
	return &state{
		fields:          slices.Clone(s.fields),
		activities:      slices.Clone(s.activities),
		recommendations: slices.Clone(s.recommendations),
		stock:           slices.Clone(s.stock),
		transactions:    slices.Clone(s.transactions),
	}
}

func (s *state) fieldIndex(id string) int {
	return slices.IndexFunc(s.fields, func(f entities.Field) bool { return f.ID == id })
}

func (s *state) stockIndex(id string) int {
	return slices.IndexFunc(s.stock, func(i entities.StockItem) bool { return i.ID == id })
}

// view returns f with its activities attached.
func (s *state) view(f entities.Field) entities.Field {
	f.Activities = s.activitiesFor(f.ID)
	return f
}

// activitiesFor filters the activity collection by field id; an empty id
// selects everything.
func (s *state) activitiesFor(fieldID string) []entities.Activity {
	out := []entities.Activity{}
	for _, a := range s.activities {
		if fieldID == "" || a.FieldID == fieldID {
			out = append(out, a)
		}
	}
	return out
}

func (s *state) addField(f entities.Field) {
	f.Activities = nil
	s.fields = append(s.fields, f)
}

func applyPatch(f entities.Field, p entities.FieldPatch) entities.Field {
	if p.Name != nil {
		f.Name = *p.Name
	}
	if p.CropType != nil {
		f.CropType = *p.CropType
	}
	if p.Area != nil {
		f.Area = *p.Area
	}
	if p.SoilType != nil {
		f.SoilType = *p.SoilType
	}
	if p.Status != nil {
		f.Status = *p.Status
	}
	if p.ImageURL != nil {
		f.ImageURL = *p.ImageURL
	}
	if p.AIActivityPlan != nil {
		f.AIActivityPlan = *p.AIActivityPlan
	}
	return f
}

// updateField merges p into the field with the given id. The id itself is
// never changed. ok is false when no such field exists.
func (s *state) updateField(id string, p entities.FieldPatch) (entities.Field, bool) {
	i := s.fieldIndex(id)
	if i < 0 {
		return entities.Field{}, false
	}
	s.fields[i] = applyPatch(s.fields[i], p)
	return s.fields[i], true
}

// deleteField removes the field and every activity that references it.
func (s *state) deleteField(id string) (entities.Field, bool) {
	i := s.fieldIndex(id)
	if i < 0 {
		return entities.Field{}, false
	}
	removed := s.fields[i]
	s.fields = slices.Delete(s.fields, i, i+1)
	s.activities = slices.DeleteFunc(s.activities, func(a entities.Activity) bool { return a.FieldID == id })
	return removed, true
}

func (s *state) addActivity(a entities.Activity) error {
	if a.FieldID != "" && s.fieldIndex(a.FieldID) < 0 {
		return fmt.Errorf("%w: %s", ErrFieldNotFound, a.FieldID)
	}
	s.activities = append(s.activities, a)
	return nil
}

// replaceRecommendations installs manual ++ generated.
func (s *state) replaceRecommendations(manual, generated []entities.Recommendation) {
	out := make([]entities.Recommendation, 0, len(manual)+len(generated))
	out = append(out, manual...)
	out = append(out, generated...)
	s.recommendations = out
}

func (s *state) createStock(item entities.StockItem) {
	s.stock = append(s.stock, item)
}

// moveStock applies tx to its stock item and records it with the resulting
// balance. Removals larger than the balance and additions that would
// overflow it are rejected untouched.
func (s *state) moveStock(tx entities.StockTransaction) (entities.StockItem, entities.StockTransaction, error) {
	i := s.stockIndex(tx.StockID)
	if i < 0 {
		return entities.StockItem{}, tx, fmt.Errorf("%w: %s", ErrStockNotFound, tx.StockID)
	}
	item := s.stock[i]
	switch tx.Type {
	case entities.TransactionAdd:
		if tx.Quantity > math.MaxInt-item.Quantity {
			return item, tx, fmt.Errorf("%w: adding %d to %s would overflow the balance of %d", ErrValidation, tx.Quantity, item.GrainType, item.Quantity)
		}
		item.Quantity += tx.Quantity
	case entities.TransactionRemove:
		if tx.Quantity > item.Quantity {
			return item, tx, fmt.Errorf("%w: %s has %d %s, requested %d", ErrInsufficientStock, item.GrainType, item.Quantity, item.Unit, tx.Quantity)
		}
		item.Quantity -= tx.Quantity
	default:
		return item, tx, fmt.Errorf("%w: unknown transaction type %q", ErrValidation, tx.Type)
	}
	s.stock[i] = item
	tx.Balance = item.Quantity
	s.transactions = append(s.transactions, tx)
	return item, tx, nil
}

func (s *state) transactionsFor(stockID string) []entities.StockTransaction {
	out := []entities.StockTransaction{}
	for _, t := range s.transactions {
		if t.StockID == stockID {
			out = append(out, t)
		}
	}
	return out
}
