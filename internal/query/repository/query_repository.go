package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// QueryRepository executes pre-compiled SQL on behalf of the relay
// endpoint. The SQL arrives fully built; this layer only runs it.
type QueryRepository interface {
	Execute(ctx context.Context, sql string, parameters []interface{}) ([]map[string]interface{}, error)
	Explain(ctx context.Context, sql string, parameters []interface{}) ([]map[string]interface{}, error)
}

type queryRepository struct {
	db *gorm.DB
}

func NewQueryRepository(db *gorm.DB) QueryRepository {
	return &queryRepository{db: db}
}

func (r *queryRepository) Execute(ctx context.Context, sql string, parameters []interface{}) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	if err := r.db.WithContext(ctx).Raw(sql, parameters...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("execute compiled query: %w", err)
	}
	return rows, nil
}

func (r *queryRepository) Explain(ctx context.Context, sql string, parameters []interface{}) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	if err := r.db.WithContext(ctx).Raw("EXPLAIN "+sql, parameters...).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("explain compiled query: %w", err)
	}
	return rows, nil
}
