package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcamargo/bascula-api/internal/domain"
	"github.com/jcamargo/bascula-api/internal/domain/entity"
	"github.com/jcamargo/bascula-api/internal/domain/repository"
)

var _ repository.WeighingRepository = (*WeighingRepo)(nil)

// WeighingRepo implementación del puerto WeighingRepository sobre PostgreSQL.
// Las lecturas resuelven proveedor y operador vía JOIN; el predicado de
// filtros se arma con squirrel como conjunción de las cláusulas presentes.
type WeighingRepo struct {
	pool *pgxpool.Pool
}

// NewWeighingRepository construye el adaptador de persistencia para pesajes.
func NewWeighingRepository(pool *pgxpool.Pool) *WeighingRepo {
	return &WeighingRepo{pool: pool}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const weighingColumns = `
	w.id, w.car_number, w.supplier_id,
	w.gross_weight, w.tare_count, w.tare_weight, w.tare_total, w.net_weight,
	w.photo_url, w.note, w.created_by_id, w.created_at, w.updated_at,
	s.name AS supplier_name, u.email AS created_by_email`

// selectWeighings arma el SELECT base con los JOIN de resolución.
func selectWeighings() sq.SelectBuilder {
	return psql.Select(weighingColumns).
		From("weighings w").
		LeftJoin("suppliers s ON s.id = w.supplier_id").
		Join("users u ON u.id = w.created_by_id")
}

// applyFilter añade solo las cláusulas de los filtros presentes: un filtro
// ausente no restringe nada (no es una exclusión).
func applyFilter(b sq.SelectBuilder, f repository.WeighingFilter) sq.SelectBuilder {
	if f.From != nil {
		b = b.Where(sq.GtOrEq{"w.created_at": *f.From})
	}
	if f.To != nil {
		b = b.Where(sq.LtOrEq{"w.created_at": *f.To})
	}
	if f.SupplierID != "" {
		b = b.Where(sq.Eq{"w.supplier_id": f.SupplierID})
	}
	if f.CarNumber != "" {
		b = b.Where(sq.ILike{"w.car_number": "%" + f.CarNumber + "%"})
	}
	return b
}

// Create persiste un nuevo pesaje con sus derivados ya calculados.
// Un supplier_id inexistente viola la FK -> ErrSupplierNotFound.
func (r *WeighingRepo) Create(ctx context.Context, w *entity.Weighing) error {
	query := `
		INSERT INTO weighings (id, car_number, supplier_id, gross_weight, tare_count, tare_weight, tare_total, net_weight, photo_url, note, created_by_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.pool.Exec(ctx, query,
		w.ID, w.CarNumber, w.SupplierID,
		w.GrossWeight, w.TareCount, w.TareWeight, w.TareTotal, w.NetWeight,
		w.PhotoURL, w.Note, w.CreatedByID, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrSupplierNotFound
		}
		return fmt.Errorf("insert weighing: %w", err)
	}
	return nil
}

// GetByID obtiene un pesaje resuelto por ID; nil si no existe.
func (r *WeighingRepo) GetByID(ctx context.Context, id string) (*entity.Weighing, error) {
	query, args, err := selectWeighings().Where(sq.Eq{"w.id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get weighing: %w", err)
	}
	w, err := scanWeighing(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get weighing: %w", err)
	}
	return w, nil
}

// List lista pesajes filtrados, siempre por created_at descendente.
// p == nil lista sin paginar (exportaciones y agregados).
func (r *WeighingRepo) List(ctx context.Context, f repository.WeighingFilter, p *repository.Page) ([]*entity.Weighing, error) {
	b := applyFilter(selectWeighings(), f).OrderBy("w.created_at DESC")
	if p != nil {
		b = b.Limit(uint64(p.Limit)).Offset(uint64(p.Offset))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list weighings: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list weighings: %w", err)
	}
	defer rows.Close()

	var list []*entity.Weighing
	for rows.Next() {
		w, err := scanWeighing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan weighing: %w", err)
		}
		list = append(list, w)
	}
	return list, rows.Err()
}

// Count total de pesajes del mismo predicado, sin ventana de paginación.
func (r *WeighingRepo) Count(ctx context.Context, f repository.WeighingFilter) (int, error) {
	b := applyFilter(psql.Select("COUNT(*)").From("weighings w"), f)
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count weighings: %w", err)
	}
	var total int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count weighings: %w", err)
	}
	return total, nil
}

// Update reescribe los campos mutables y los derivados. Un registro que
// desapareció bajo una actualización concurrente sale como ErrNotFound;
// nunca se reporta éxito sobre datos inexistentes.
func (r *WeighingRepo) Update(ctx context.Context, w *entity.Weighing) error {
	query := `
		UPDATE weighings
		SET car_number = $2, supplier_id = $3, gross_weight = $4, tare_count = $5,
		    tare_weight = $6, tare_total = $7, net_weight = $8, photo_url = $9,
		    note = $10, updated_at = $11
		WHERE id = $1`
	cmd, err := r.pool.Exec(ctx, query,
		w.ID, w.CarNumber, w.SupplierID, w.GrossWeight, w.TareCount,
		w.TareWeight, w.TareTotal, w.NetWeight, w.PhotoURL,
		w.Note, w.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrSupplierNotFound
		}
		return fmt.Errorf("update weighing: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina definitivamente un pesaje. ErrNotFound si el ID no existe.
func (r *WeighingRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM weighings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete weighing: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanWeighing(row pgx.Row) (*entity.Weighing, error) {
	var w entity.Weighing
	err := row.Scan(
		&w.ID, &w.CarNumber, &w.SupplierID,
		&w.GrossWeight, &w.TareCount, &w.TareWeight, &w.TareTotal, &w.NetWeight,
		&w.PhotoURL, &w.Note, &w.CreatedByID, &w.CreatedAt, &w.UpdatedAt,
		&w.SupplierName, &w.CreatedByEmail,
	)
	if err != nil {
		return nil, err
	}
	return &w, nil
}
