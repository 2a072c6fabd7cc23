package service

import "context"

type AuthService interface {
	Login(ctx context.Context) error
	Logout(ctx context.Context) (string, error)
	IsAuthenticated() bool
}
