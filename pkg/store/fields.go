package store

import (
	"fmt"

	"agrovision/entities"
)

// GetFieldByID returns the field with its activities attached.
func (s *Store) GetFieldByID(id string) (entities.Field, bool) {
	var (
		f  entities.Field
		ok bool
	)
	s.read(func(st *state) {
		if i := st.fieldIndex(id); i >= 0 {
			f, ok = st.view(st.fields[i]), true
		}
	})
	return f, ok
}

func (s *Store) ListFields() []entities.Field {
	var out []entities.Field
	s.read(func(st *state) {
		out = make([]entities.Field, 0, len(st.fields))
		for _, f := range st.fields {
			out = append(out, st.view(f))
		}
	})
	return out
}

func (s *Store) AddField(in entities.NewField) (entities.Field, error) {
	if err := validate(in); err != nil {
		s.toastError("The field could not be added: " + err.Error())
		return entities.Field{}, err
	}
	f := entities.Field{
		ID:       s.newID(),
		Name:     in.Name,
		CropType: in.CropType,
		Area:     in.Area,
		SoilType: in.SoilType,
		Status:   in.Status,
		ImageURL: in.ImageURL,
	}
	if f.ImageURL == "" {
		f.ImageURL = s.placeholderImage
	}
	_ = s.update(func(st *state) error {
		st.addField(f)
		return nil
	})
	f.Activities = []entities.Activity{}

	s.log.Info("field added", "id", f.ID, "name", f.Name)
	s.publish(EventFieldAdded, f.ID)
	s.toast("Field added", fmt.Sprintf("%s has been added to your farm.", f.Name))
	return f, nil
}

// UpdateField merges the non-nil members of p into the field. An unknown id
// is a silent no-op reported through ok.
func (s *Store) UpdateField(id string, p entities.FieldPatch) (entities.Field, bool, error) {
	if err := validate(p); err != nil {
		s.toastError("The field could not be updated: " + err.Error())
		return entities.Field{}, false, err
	}
	var (
		f  entities.Field
		ok bool
	)
	_ = s.update(func(st *state) error {
		if f, ok = st.updateField(id, p); ok {
			f = st.view(f)
		}
		return nil
	})
	if !ok {
		s.log.Debug("update on unknown field", "id", id)
		return entities.Field{}, false, nil
	}

	s.publish(EventFieldUpdated, id)
	s.toast("Field updated", fmt.Sprintf("%s has been updated.", f.Name))
	return f, true, nil
}

// DeleteField removes the field and its activities. It reports whether the
// field existed.
func (s *Store) DeleteField(id string) bool {
	var (
		removed entities.Field
		ok      bool
	)
	_ = s.update(func(st *state) error {
		removed, ok = st.deleteField(id)
		return nil
	})
	if !ok {
		s.log.Debug("delete on unknown field", "id", id)
		return false
	}

	s.log.Info("field deleted", "id", id, "name", removed.Name)
	s.publish(EventFieldDeleted, id)
	s.toastDestructive("Field deleted", fmt.Sprintf("%s has been removed.", removed.Name))
	return true
}
