package postgresrepo

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/wickedsales/storefront/internal/service/models/product"
)

// ProductDal represents product data access layer model.
type ProductDal struct {
	ProductId        int64     `db:"product_id"`
	Name             string    `db:"name"`
	Price            int64     `db:"price"`
	Image            string    `db:"image"`
	ShortDescription string    `db:"short_description"`
	LongDescription  string    `db:"long_description"`
	CreatedAt        time.Time `db:"created_at"`
}

// ToModel converts ProductDal to service layer Product model.
func (p *ProductDal) ToModel() *product.Product {
	return &product.Product{
		ID:               p.ProductId,
		Name:             p.Name,
		Price:            p.Price,
		Image:            p.Image,
		ShortDescription: p.ShortDescription,
		LongDescription:  p.LongDescription,
		CreatedAt:        p.CreatedAt,
	}
}

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresProductRepository represents a Postgres product repository. The
// catalog is read-only from the API's perspective, so the repository only
// exposes queries.
type PostgresProductRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresProductRepository creates a new Postgres product repository.
func NewPostgresProductRepository(conn GenericConn) *PostgresProductRepository {
	return &PostgresProductRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Query retrieves products based on filter criteria, ordered by product id.
func (r *PostgresProductRepository) Query(
	ctx context.Context,
	filter *product.QueryProductsModel,
) ([]product.Product, error) {
	query := r.sb.
		Select(
			"product_id",
			"name",
			"price",
			"image",
			"short_description",
			"long_description",
			"created_at",
		).
		From("products").
		OrderBy("product_id ASC")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"product_id": filter.Ids})
	}

	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit))
	}

	if filter.Offset > 0 {
		query = query.Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var result []product.Product
	for rows.Next() {
		var dal ProductDal
		var createdAt pgtype.Timestamptz

		err := rows.Scan(
			&dal.ProductId,
			&dal.Name,
			&dal.Price,
			&dal.Image,
			&dal.ShortDescription,
			&dal.LongDescription,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		dal.CreatedAt = createdAt.Time

		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// GetPrice returns the current price of a product, or pgx.ErrNoRows if the
// product does not exist.
func (r *PostgresProductRepository) GetPrice(ctx context.Context, productID int64) (int64, error) {
	sql, args, err := r.sb.
		Select("price").
		From("products").
		Where(sq.Eq{"product_id": productID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var price int64
	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&price); err != nil {
		return 0, err
	}

	return price, nil
}
