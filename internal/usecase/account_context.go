package usecase

import (
	"context"

	"frota_checklist/internal/domain/entities"
)

type accountKey struct{}

// ContextWithAccount attaches the resolved caller identity to ctx.
func ContextWithAccount(ctx context.Context, account entities.Account) context.Context {
	return context.WithValue(ctx, accountKey{}, account)
}

// AccountFromContext returns the caller identity placed by the auth middleware.
func AccountFromContext(ctx context.Context) (entities.Account, bool) {
	acc, ok := ctx.Value(accountKey{}).(entities.Account)
	if !ok || acc.ID == "" {
		return entities.Account{}, false
	}
	return acc, true
}
