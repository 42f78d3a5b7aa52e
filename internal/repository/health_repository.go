package repository

import "context"

// DBへの疎通確認
type HealthRepository interface {
	Check(ctx context.Context) (string, error)
}
