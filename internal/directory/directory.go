// Package directory answers existence questions about CRM persons and
// products. The accounting core never writes to these tables.
package directory

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/daftar/internal/database"
	"github.com/MrJamesThe3rd/daftar/internal/fault"
)

var (
	ErrUnknownPerson  = fault.New(fault.KindReferential, "unknown_person", "unknown person")
	ErrUnknownProduct = fault.New(fault.KindReferential, "unknown_product", "unknown product")
)

type Directory struct {
	db *sql.DB
}

func New(db *sql.DB) *Directory {
	return &Directory{db: db}
}

// RequirePerson fails with ErrUnknownPerson unless the person exists.
func (d *Directory) RequirePerson(ctx context.Context, id int64) error {
	ok, err := d.exists(ctx, `SELECT EXISTS (SELECT 1 FROM persons WHERE id = $1)`, id)
	if err != nil {
		return fmt.Errorf("checking person: %w", err)
	}

	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownPerson, id)
	}

	return nil
}

// RequireProducts fails with ErrUnknownProduct naming the first missing id.
func (d *Directory) RequireProducts(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		ok, err := d.exists(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id)
		if err != nil {
			return fmt.Errorf("checking product: %w", err)
		}

		if !ok {
			return fmt.Errorf("%w: %d", ErrUnknownProduct, id)
		}
	}

	return nil
}

func (d *Directory) exists(ctx context.Context, query string, id int64) (bool, error) {
	var ok bool
	if err := database.Conn(ctx, d.db).QueryRowContext(ctx, query, id).Scan(&ok); err != nil {
		return false, err
	}

	return ok, nil
}
