package resources

import (
	"context"
	"fmt"

	"github.com/roadfleet/roadfleet/internal/common"
	"github.com/roadfleet/roadfleet/internal/console/api"
	"github.com/roadfleet/roadfleet/internal/console/syncstore"
)

// CNICLength is the fixed length of the numeric national identity field.
const CNICLength = 13

// ValidateCNIC rejects anything that is not exactly 13 digits. The check
// runs before dispatch; an invalid CNIC never reaches the API.
func ValidateCNIC(cnic string) error {
	if len(cnic) != CNICLength {
		return fmt.Errorf("%w: cnic: must be exactly %d digits", common.ErrorValidation, CNICLength)
	}
	for _, r := range cnic {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: cnic: must contain digits only", common.ErrorValidation)
		}
	}
	return nil
}

// UserRow is the display shape of one account.
type UserRow struct {
	ID        string
	Name      string
	Email     string
	City      string
	Gender    string
	CNIC      string
	Role      string
	Status    string
	CreatedAt string
}

// NormalizeUser maps a wire user into its display row. Idempotent.
func NormalizeUser(u api.User) UserRow {
	return UserRow{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		City:      orFallback(u.City, fallbackNA),
		Gender:    capitalize(orFallback(u.Gender, fallbackNA)),
		CNIC:      orFallback(u.CNIC, fallbackNA),
		Role:      u.Role,
		Status:    orFallback(u.Status, "active"),
		CreatedAt: formatTimestamp(u.CreatedAt, displayDate),
	}
}

// Users is the sync store for the account collection.
type Users struct {
	client api.Client
	col    *syncstore.Collection[UserRow]
}

func NewUsers(client api.Client) *Users {
	return &Users{
		client: client,
		col:    syncstore.NewCollection(func(u UserRow) string { return u.ID }),
	}
}

func (u *Users) FetchAll(ctx context.Context) error {
	_, err := u.col.Fetch(ctx, func(ctx context.Context) ([]UserRow, error) {
		raw, err := u.client.ListUsers(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]UserRow, 0, len(raw))
		for _, user := range raw {
			rows = append(rows, NormalizeUser(user))
		}
		return rows, nil
	})
	return err
}

// UpdateDetails edits an account. A CNIC in the patch is validated locally
// first; on local rejection nothing is dispatched and the cached items are
// untouched.
func (u *Users) UpdateDetails(ctx context.Context, id string, patch api.UserDetailsPatch) error {
	if patch.CNIC != nil {
		if err := ValidateCNIC(*patch.CNIC); err != nil {
			return err
		}
	}

	return u.col.Update(ctx, id, func(ctx context.Context) (UserRow, error) {
		updated, err := u.client.UpdateUserDetails(ctx, id, patch)
		if err != nil {
			return UserRow{}, err
		}
		return NormalizeUser(updated), nil
	})
}

// SetStatus blocks or unblocks an account.
func (u *Users) SetStatus(ctx context.Context, id string, status string) error {
	return u.UpdateDetails(ctx, id, api.UserDetailsPatch{Status: &status})
}

func (u *Users) Remove(ctx context.Context, id string) error {
	return u.col.Remove(ctx, id, func(ctx context.Context) error {
		return u.client.DeleteUser(ctx, id)
	})
}

func (u *Users) Snapshot() syncstore.Snapshot[UserRow] {
	return u.col.Snapshot()
}

func (u *Users) ClearError() {
	u.col.ClearError()
}
