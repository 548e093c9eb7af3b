package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/hockey-league/internal/domain/regulation"
	qb "github.com/riskibarqy/hockey-league/internal/platform/querybuilder"
)

type RegulationRepository struct {
	db *sqlx.DB
}

func NewRegulationRepository(db *sqlx.DB) *RegulationRepository {
	return &RegulationRepository{db: db}
}

func (r *RegulationRepository) List(ctx context.Context) ([]regulation.Regulation, error) {
	query, args, err := qb.Select("*").From("regulations").
		OrderBy("order_index", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select regulations query: %w", err)
	}

	var rows []regulationTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select regulations: %w", err)
	}

	out := make([]regulation.Regulation, 0, len(rows))
	for _, row := range rows {
		out = append(out, regulation.Regulation{
			ID:         row.ID,
			Title:      row.Title,
			Content:    row.Content,
			OrderIndex: row.OrderIndex,
		})
	}

	return out, nil
}

func (r *RegulationRepository) Create(ctx context.Context, item regulation.Regulation) (regulation.Regulation, error) {
	query, args, err := qb.InsertModel("regulations", regulationWriteModel{
		Title:      item.Title,
		Content:    item.Content,
		OrderIndex: item.OrderIndex,
	}, "RETURNING id")
	if err != nil {
		return regulation.Regulation{}, fmt.Errorf("build insert regulation query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		return regulation.Regulation{}, fmt.Errorf("insert regulation: %w", err)
	}

	return item, nil
}

func (r *RegulationRepository) Update(ctx context.Context, item regulation.Regulation) (bool, error) {
	query, args, err := qb.Update("regulations").
		SetModel(regulationWriteModel{
			Title:      item.Title,
			Content:    item.Content,
			OrderIndex: item.OrderIndex,
		}).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update regulation query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update regulation id=%d: %w", item.ID, err)
	}

	return affectedAny(result)
}
