package service

import "agrovision/entities"

type ActivityService interface {
	ListActivities(fieldID string) []entities.Activity
	AddActivity(in entities.NewActivity) (entities.Activity, error)
}
