package commands

import (
	"context"

	"scratch-win/internal/domain/product"
	"scratch-win/internal/infra"
	"scratch-win/internal/pkg/errs"
)

var (
	ErrProductNotFound  = errs.New("product not found")
	ErrProductNameTaken = errs.New("product name already exists")
)

const defaultCategory = "Other"

// ProductPatch carries partial updates; nil fields are left untouched.
type ProductPatch struct {
	Name     *string
	Price    *float64
	Category *string
	InStock  *bool
}

type CatalogCommands interface {
	AddProduct(ctx context.Context, name string, price float64, category string) (product.Product, error)
	UpdateProduct(ctx context.Context, id int64, patch ProductPatch) (product.Product, error)
}

type catalogUseCaseImpl struct {
	products ProductRepository
}

func NewCatalogCommands(products ProductRepository) CatalogCommands {
	return &catalogUseCaseImpl{products: products}
}

func (u *catalogUseCaseImpl) AddProduct(ctx context.Context, name string, price float64, category string) (product.Product, error) {
	if category == "" {
		category = defaultCategory
	}
	p, err := u.products.Create(ctx, name, price, category)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return product.Product{}, errs.Mark(err, ErrProductNameTaken)
		}
		return product.Product{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return p, nil
}

func (u *catalogUseCaseImpl) UpdateProduct(ctx context.Context, id int64, patch ProductPatch) (product.Product, error) {
	p, err := u.products.Update(ctx, id, patch.Name, patch.Price, patch.Category, patch.InStock)
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return product.Product{}, errs.Mark(err, ErrProductNotFound)
		case infra.IsKind(err, infra.KindDuplicateKey):
			return product.Product{}, errs.Mark(err, ErrProductNameTaken)
		}
		return product.Product{}, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return p, nil
}
