package ledger

import (
	"context"
	"sort"

	"moneymarket/core"

	"github.com/shopspring/decimal"
)

// Shares pool share balance, zero by default
func (l *Ledger) Shares(ctx context.Context, user, assetID string) (decimal.Decimal, error) {
	shares := decimal.Zero
	_, err := l.get(ctx, userKey("shares", user, assetID), &shares)
	return shares, err
}

func (l *Ledger) SaveShares(ctx context.Context, user, assetID string, shares decimal.Decimal) error {
	return l.put(ctx, userKey("shares", user, assetID), shares)
}

// BorrowPosition stored checkpoint, a zero position by default
func (l *Ledger) BorrowPosition(ctx context.Context, user, assetID string) (*core.UserBorrowPosition, error) {
	p := core.UserBorrowPosition{
		BorrowedAmount:      decimal.Zero,
		AverageInterestRate: decimal.Zero,
	}

	if _, err := l.get(ctx, userKey("borrow", user, assetID), &p); err != nil {
		return nil, err
	}

	return &p, nil
}

func (l *Ledger) SaveBorrowPosition(ctx context.Context, user, assetID string, p *core.UserBorrowPosition) error {
	return l.put(ctx, userKey("borrow", user, assetID), p)
}

func (l *Ledger) IsCollateral(ctx context.Context, user, assetID string) (bool, error) {
	var flag bool
	_, err := l.get(ctx, userKey("collateral", user, assetID), &flag)
	return flag, err
}

func (l *Ledger) SetCollateral(ctx context.Context, user, assetID string, flag bool) error {
	return l.put(ctx, userKey("collateral", user, assetID), flag)
}

// Borrowers principals holding a borrow in any asset, sorted
func (l *Ledger) Borrowers(ctx context.Context) ([]string, error) {
	var users []string
	_, err := l.get(ctx, keyBorrowers, &users)
	return users, err
}

// MarkBorrower adds or removes user from the borrower registry
func (l *Ledger) MarkBorrower(ctx context.Context, user string, borrowing bool) error {
	users, err := l.Borrowers(ctx)
	if err != nil {
		return err
	}

	idx := sort.SearchStrings(users, user)
	found := idx < len(users) && users[idx] == user

	switch {
	case borrowing && !found:
		users = append(users, "")
		copy(users[idx+1:], users[idx:])
		users[idx] = user
	case !borrowing && found:
		users = append(users[:idx], users[idx+1:]...)
	default:
		return nil
	}

	return l.put(ctx, keyBorrowers, users)
}
