package repository

import (
	"context"
	"errors"

	"github.com/flashmart/checkout-service/internal/domain"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres/mappers"
	"github.com/flashmart/checkout-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	DB *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{DB: db}
}

func (r *DefaultProductRepository) CreateProduct(ctx context.Context, product *domain.Product) (int64, error) {
	productModel := mappers.ToGORMProduct(product)
	if err := postgres.TxOrDB(ctx, r.DB).WithContext(ctx).Create(productModel).Error; err != nil {
		return 0, err
	}
	return productModel.ID, nil
}

func (r *DefaultProductRepository) GetProductByID(ctx context.Context, productID int64) (*domain.Product, error) {
	var productModel models.ProductModel
	if err := postgres.TxOrDB(ctx, r.DB).WithContext(ctx).First(&productModel, "id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return mappers.ToDomainProduct(&productModel), nil
}

// DecrementStock is the oversell guard: the WHERE clause only matches while
// enough stock remains, so concurrent decrements serialise on the row and
// losers see zero affected rows.
func (r *DefaultProductRepository) DecrementStock(ctx context.Context, productID int64, quantity int) (bool, error) {
	result := postgres.TxOrDB(ctx, r.DB).WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *DefaultProductRepository) IncrementStock(ctx context.Context, productID int64, quantity int) error {
	result := postgres.TxOrDB(ctx, r.DB).WithContext(ctx).
		Model(&models.ProductModel{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock + ?", quantity))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}
