package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/polkiloo/outsourcing/internal/domain/errors"
	"github.com/polkiloo/outsourcing/internal/domain/model"
)

type supplierRepository struct {
	storage *Storage
}

const supplierColumns = `id, name, contact, phone, email, address, city, reliability, avg_delivery_days, specialties, status, rating, notes`

func scanSupplier(row rowScanner) (model.Supplier, error) {
	var s model.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.Contact, &s.Phone, &s.Email, &s.Address, &s.City,
		&s.Reliability, &s.AvgDeliveryDays, &s.Specialties, &s.Status, &s.Rating, &s.Notes)
	return s, err
}

func (r *supplierRepository) List(ctx context.Context, filter model.SupplierFilter) ([]model.Supplier, error) {
	var where whereBuilder
	if filter.Status != "" {
		where.add("status = $%[1]d", filter.Status)
	}
	if filter.City != "" {
		where.add("city ILIKE $%[1]d", containsPattern(filter.City))
	}
	if filter.Reliability != "" {
		where.add("reliability = $%[1]d", filter.Reliability)
	}
	if filter.Specialty != "" {
		where.add("EXISTS (SELECT 1 FROM unnest(specialties) AS tag WHERE tag ILIKE $%[1]d)", containsPattern(filter.Specialty))
	}

	query := `SELECT ` + supplierColumns + ` FROM suppliers` + where.String() + ` ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, where.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Supplier
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *supplierRepository) GetByID(ctx context.Context, id int64) (*model.Supplier, error) {
	const query = `SELECT ` + supplierColumns + ` FROM suppliers WHERE id=$1`
	s, err := scanSupplier(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *supplierRepository) Create(ctx context.Context, supplier model.Supplier) (*model.Supplier, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `LOCK TABLE suppliers IN SHARE ROW EXCLUSIVE MODE`); err != nil {
			return err
		}
		if err := tx.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM suppliers`).Scan(&supplier.ID); err != nil {
			return err
		}
		const insert = `INSERT INTO suppliers (` + supplierColumns + `)
                        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
		_, err := tx.Exec(ctx, insert, supplier.ID, supplier.Name, supplier.Contact, supplier.Phone,
			supplier.Email, supplier.Address, supplier.City, supplier.Reliability, supplier.AvgDeliveryDays,
			specialtiesArg(supplier.Specialties), supplier.Status, supplier.Rating, supplier.Notes)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) Update(ctx context.Context, id int64, fn func(*model.Supplier) error) (*model.Supplier, bool, error) {
	var (
		updated model.Supplier
		found   bool
	)
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const selectQuery = `SELECT ` + supplierColumns + ` FROM suppliers WHERE id=$1 FOR UPDATE`
		current, err := scanSupplier(tx.QueryRow(ctx, selectQuery, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return err
		}
		found = true

		if err := fn(&current); err != nil {
			return err
		}
		current.ID = id

		const updateQuery = `UPDATE suppliers SET name=$2, contact=$3, phone=$4, email=$5, address=$6, city=$7,
                             reliability=$8, avg_delivery_days=$9, specialties=$10, status=$11, rating=$12, notes=$13
                             WHERE id=$1`
		if _, err := tx.Exec(ctx, updateQuery, id, current.Name, current.Contact, current.Phone, current.Email,
			current.Address, current.City, current.Reliability, current.AvgDeliveryDays,
			specialtiesArg(current.Specialties), current.Status, current.Rating, current.Notes); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil || !found {
		return nil, found, err
	}
	return &updated, true, nil
}

// specialtiesArg keeps NOT NULL array columns satisfied for nil slices.
func specialtiesArg(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
