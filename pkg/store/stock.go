package store

import (
	"errors"
	"fmt"
	"slices"

	"agrovision/entities"
)

func (s *Store) ListStock() []entities.StockItem {
	var out []entities.StockItem
	s.read(func(st *state) { out = slices.Clone(st.stock) })
	return out
}

// GetStockByID returns a single stock item.
func (s *Store) GetStockByID(id string) (entities.StockItem, bool) {
	var (
		item entities.StockItem
		ok   bool
	)
	s.read(func(st *state) {
		if i := st.stockIndex(id); i >= 0 {
			item, ok = st.stock[i], true
		}
	})
	return item, ok
}

// StockTransactions lists the movements applied to one stock item, oldest
// first.
func (s *Store) StockTransactions(stockID string) ([]entities.StockTransaction, error) {
	var (
		out []entities.StockTransaction
		err error
	)
	s.read(func(st *state) {
		if st.stockIndex(stockID) < 0 {
			err = fmt.Errorf("%w: %s", ErrStockNotFound, stockID)
			return
		}
		out = st.transactionsFor(stockID)
	})
	return out, err
}

func (s *Store) CreateStockItem(in entities.NewStockItem) (entities.StockItem, error) {
	if err := validate(in); err != nil {
		s.metrics.IncStockRejection("invalid")
		s.toastError("The stock item could not be created: " + err.Error())
		return entities.StockItem{}, err
	}
	item := entities.StockItem{ID: s.newID(), GrainType: in.GrainType, Quantity: in.Quantity, Unit: in.Unit}
	if item.Unit == "" {
		item.Unit = entities.UnitKg
	}
	_ = s.update(func(st *state) error {
		st.createStock(item)
		return nil
	})

	s.log.Info("stock item created", "id", item.ID, "grain", item.GrainType, "quantity", item.Quantity)
	s.publish(EventStockCreated, item.ID)
	s.toast("Stock item created", fmt.Sprintf("%s added with %d %s.", item.GrainType, item.Quantity, item.Unit))
	return item, nil
}

func (s *Store) AddStock(id string, m entities.StockMovement) (entities.StockItem, error) {
	return s.moveStock(id, entities.TransactionAdd, m)
}

// RemoveStock takes m.Quantity out of the item. Removing more than the
// current balance fails with ErrInsufficientStock and changes nothing.
func (s *Store) RemoveStock(id string, m entities.StockMovement) (entities.StockItem, error) {
	return s.moveStock(id, entities.TransactionRemove, m)
}

func (s *Store) moveStock(id string, typ entities.TransactionType, m entities.StockMovement) (entities.StockItem, error) {
	if err := validate(m); err != nil {
		s.metrics.IncStockRejection("invalid")
		s.toastError("Invalid quantity.")
		return entities.StockItem{}, err
	}
	tx := entities.StockTransaction{
		ID:       s.newID(),
		StockID:  id,
		Type:     typ,
		Quantity: m.Quantity,
		Location: m.Location,
		Date:     m.Date,
	}
	if tx.Date == "" {
		tx.Date = s.today()
	}

	var item entities.StockItem
	err := s.update(func(st *state) error {
		var err error
		item, tx, err = st.moveStock(tx)
		return err
	})
	switch {
	case errors.Is(err, ErrInsufficientStock):
		s.metrics.IncStockRejection("insufficient")
		s.toastError("Not enough stock to remove.")
		return entities.StockItem{}, err
	case errors.Is(err, ErrValidation):
		s.metrics.IncStockRejection("invalid")
		s.toastError("Invalid quantity.")
		return entities.StockItem{}, err
	case err != nil:
		s.metrics.IncStockRejection("not_found")
		return entities.StockItem{}, err
	}

	kind, verb := EventStockAdded, "added to"
	if typ == entities.TransactionRemove {
		kind, verb = EventStockRemoved, "removed from"
	}
	s.log.Info("stock moved", "id", id, "type", typ, "quantity", tx.Quantity, "balance", tx.Balance)
	s.publish(kind, id)
	s.toast("Stock updated", fmt.Sprintf("%d %s %s %s.", tx.Quantity, item.Unit, verb, item.GrainType))
	return item, nil
}
