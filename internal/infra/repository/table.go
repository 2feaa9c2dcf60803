package repository

import (
	"context"

	"github.com/Sannikov1993/PosResto-sub020/internal/domain/table"
	"github.com/Sannikov1993/PosResto-sub020/internal/infra"
	"github.com/Sannikov1993/PosResto-sub020/internal/pkg/pgconv"
	"github.com/Sannikov1993/PosResto-sub020/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TableRepository struct {
	db DBTX
}

func NewTableRepository(db DBTX) *TableRepository {
	return &TableRepository{db: db}
}

var _ shared.TableRepository = (*TableRepository)(nil)

func (r *TableRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*table.Table, error) {
	query := `
		SELECT id, table_number, zone, capacity, status
		FROM restaurant_tables
		WHERE id = $1
		FOR UPDATE`

	var (
		tableID  uuid.UUID
		number   int
		zone     string
		capacity int
		status   string
	)
	err := r.db.QueryRow(ctx, query, id).Scan(&tableID, &number, &zone, &capacity, &status)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("table not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load table", err)
	}

	return table.ReconstructTable(tableID, number, zone, capacity, table.Status(status)), nil
}

func (r *TableRepository) SaveStatus(ctx context.Context, id uuid.UUID, status table.Status) error {
	query := `
		UPDATE restaurant_tables SET
			status = $2,
			updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to save table status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("table not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
