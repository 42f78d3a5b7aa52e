package repository

import (
	"errors"

	repo "storefront/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

// FK違反を呼び出し側が判定できるエラーに変える。
// cart_id 側なら ErrCartNotFound、product_id 側なら ErrNotFound。
func classifyForeignKey(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgForeignKeyViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case "cart_items_product_id_fkey":
		return repo.ErrNotFound
	default:
		return repo.ErrCartNotFound
	}
}
