package repository

import (
	"context"
	"errors"

	"scratch-win/internal/domain/product"
	"scratch-win/internal/infra"

	"github.com/jackc/pgx/v5"
)

type ProductRepository struct {
	db DBTX
}

func NewProductRepository(db DBTX) *ProductRepository {
	return &ProductRepository{db: db}
}

const productColumns = "id, name, price, category, in_stock, created_at"

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (product.Product, error) {
	row := r.db.QueryRow(ctx,
		"SELECT "+productColumns+" FROM products WHERE id = $1",
		id,
	)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return product.Product{}, infra.WrapRepoErr("failed to find product by ID", err)
	}
	return p, nil
}

func (r *ProductRepository) ListInStock(ctx context.Context) ([]product.Product, error) {
	rows, err := r.db.Query(ctx,
		"SELECT "+productColumns+" FROM products WHERE in_stock = true ORDER BY category ASC, name ASC",
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list products", err)
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan product row", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read product rows", err)
	}
	return products, nil
}

func (r *ProductRepository) Create(ctx context.Context, name string, price float64, category string) (product.Product, error) {
	row := r.db.QueryRow(ctx,
		"INSERT INTO products (name, price, category) VALUES ($1, $2, $3) RETURNING "+productColumns,
		name, price, category,
	)

	p, err := scanProduct(row)
	if err != nil {
		if isUniqueViolation(err) {
			return product.Product{}, infra.WrapRepoErr("product name already exists", err, infra.KindDuplicateKey)
		}
		return product.Product{}, infra.WrapRepoErr("failed to create product", err)
	}
	return p, nil
}

// Update applies a partial update; nil fields keep their stored values.
func (r *ProductRepository) Update(ctx context.Context, id int64, name *string, price *float64, category *string, inStock *bool) (product.Product, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE products
		 SET name = COALESCE($1, name),
		     price = COALESCE($2, price),
		     category = COALESCE($3, category),
		     in_stock = COALESCE($4, in_stock)
		 WHERE id = $5
		 RETURNING `+productColumns,
		name, price, category, inStock, id,
	)

	p, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return product.Product{}, infra.WrapRepoErr("product not found", err, infra.KindNotFound)
		}
		return product.Product{}, infra.WrapRepoErr("failed to update product", err)
	}
	return p, nil
}

func scanProduct(row pgx.Row) (product.Product, error) {
	var p product.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.InStock, &p.CreatedAt)
	if err != nil {
		return product.Product{}, err
	}
	return p, nil
}
