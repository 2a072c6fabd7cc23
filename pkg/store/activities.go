package store

import (
	"errors"
	"fmt"

	"agrovision/entities"
)

// ListActivities returns activities in insertion order. An empty fieldID
// lists every activity, farm-wide ones included.
func (s *Store) ListActivities(fieldID string) []entities.Activity {
	var out []entities.Activity
	s.read(func(st *state) { out = st.activitiesFor(fieldID) })
	return out
}

func (s *Store) AddActivity(in entities.NewActivity) (entities.Activity, error) {
	if err := validate(in); err != nil {
		s.toastError("The activity could not be added: " + err.Error())
		return entities.Activity{}, err
	}
	a := entities.Activity{
		ID:          s.newID(),
		FieldID:     in.FieldID,
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Type:        in.Type,
	}
	if a.Type == "" {
		a.Type = entities.ActivityManual
	}
	err := s.update(func(st *state) error { return st.addActivity(a) })
	if err != nil {
		if errors.Is(err, ErrFieldNotFound) {
			s.toastError("The selected field no longer exists.")
		}
		return entities.Activity{}, err
	}

	s.log.Info("activity added", "id", a.ID, "field", a.FieldID, "date", a.Date)
	s.publish(EventActivityAdded, a.ID)
	s.toast("Activity added", fmt.Sprintf("%s has been scheduled.", a.Title))
	return a, nil
}
