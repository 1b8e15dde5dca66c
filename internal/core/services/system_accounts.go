package services

import (
	"context"
	"fmt"

	"github.com/Omerhrr/Booklet/internal/apperrors"
	"github.com/Omerhrr/Booklet/internal/core/domain"
	portsrepo "github.com/Omerhrr/Booklet/internal/core/ports/repositories"
)

// findSystemAccounts resolves the named system accounts of a business, keyed
// by name. A missing account means the seeded chart was tampered with and the
// workflow cannot post.
func findSystemAccounts(ctx context.Context, repo portsrepo.AccountReader, businessID string, names ...string) (map[string]domain.Account, error) {
	accounts := make(map[string]domain.Account, len(names))
	for _, name := range names {
		account, err := repo.FindAccountByName(ctx, businessID, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrMissingCoreAccount, name)
		}
		accounts[name] = *account
	}
	return accounts, nil
}
