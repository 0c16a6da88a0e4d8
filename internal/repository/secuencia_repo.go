package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// serialColumns maps each table to its serial PK column. Used by the sequence
// utilities to realign PostgreSQL sequences after manual inserts ("duplicate key
// value violates unique constraint" recovery).
var serialColumns = []struct{ Table, Column string }{
	{"persona", "p_id"},
	{"producto", "p_id"},
	{"ubicacion", "u_id"},
	{"punto_de_venta", "pv_id"},
	{"venta", "v_id"},
	{"venta_detalle", "vd_id"},
}

// SecuenciaRepository exposes the PostgreSQL sequence maintenance utilities.
type SecuenciaRepository interface {
	// Reset realigns every serial sequence to MAX(pk) and returns the resulting
	// values keyed by table name.
	Reset(ctx context.Context) (map[string]int64, error)
	// Current returns the current value of every serial sequence. Sequences not
	// yet touched in this session report 0.
	Current(ctx context.Context) (map[string]int64, error)
}

type secuenciaRepo struct{ db *gorm.DB }

func NewSecuenciaRepository(db *gorm.DB) SecuenciaRepository { return &secuenciaRepo{db: db} }

func (r *secuenciaRepo) Reset(ctx context.Context) (map[string]int64, error) {
	values := make(map[string]int64, len(serialColumns))
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, sc := range serialColumns {
			q := fmt.Sprintf(
				"SELECT setval(pg_get_serial_sequence('%s', '%s'), COALESCE(MAX(%s), 1), true) FROM %s",
				sc.Table, sc.Column, sc.Column, sc.Table)
			var v int64
			if err := tx.Raw(q).Scan(&v).Error; err != nil {
				return err
			}
			values[sc.Table] = v
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *secuenciaRepo) Current(ctx context.Context) (map[string]int64, error) {
	values := make(map[string]int64, len(serialColumns))
	for _, sc := range serialColumns {
		q := fmt.Sprintf(
			"SELECT currval(pg_get_serial_sequence('%s', '%s'))", sc.Table, sc.Column)
		var v int64
		if err := r.db.WithContext(ctx).Raw(q).Scan(&v).Error; err != nil {
			// currval errors until the sequence is used in this session
			values[sc.Table] = 0
			continue
		}
		values[sc.Table] = v
	}
	return values, nil
}
