package service

import (
	"context"

	"agrovision/entities"
)

type FieldService interface {
	ListFields() []entities.Field
	GetFieldByID(id string) (entities.Field, bool)
	AddField(in entities.NewField) (entities.Field, error)
	UpdateField(id string, p entities.FieldPatch) (entities.Field, bool, error)
	DeleteField(id string) bool
	GenerateAIFieldPlan(ctx context.Context, id string) error
}
