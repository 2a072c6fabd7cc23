package store

import (
	activitysvc "agrovision/pkg/activity/service"
	authsvc "agrovision/pkg/auth/service"
	fieldsvc "agrovision/pkg/field/service"
	recsvc "agrovision/pkg/recommendation/service"
	stocksvc "agrovision/pkg/stock/service"
)

var (
	_ authsvc.AuthService          = (*Store)(nil)
	_ fieldsvc.FieldService        = (*Store)(nil)
	_ activitysvc.ActivityService  = (*Store)(nil)
	_ recsvc.RecommendationService = (*Store)(nil)
	_ stocksvc.StockService        = (*Store)(nil)
)
