package postgresrepo

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/wickedsales/storefront/internal/service/models/cart"
	"github.com/wickedsales/storefront/internal/service/models/cartitem"
)

// CartItemDal represents cart item data access layer model.
type CartItemDal struct {
	CartItemId int64 `db:"cart_item_id"`
	CartId     int64 `db:"cart_id"`
	ProductId  int64 `db:"product_id"`
	Price      int64 `db:"price"`
}

// LineItemDal represents a cart item joined with product display columns.
type LineItemDal struct {
	CartItemId       int64  `db:"cart_item_id"`
	Price            int64  `db:"price"`
	ProductId        int64  `db:"product_id"`
	Image            string `db:"image"`
	Name             string `db:"name"`
	ShortDescription string `db:"short_description"`
}

// ToModel converts LineItemDal to service layer LineItem model.
func (l *LineItemDal) ToModel() *cartitem.LineItem {
	return &cartitem.LineItem{
		CartItemID:       l.CartItemId,
		Price:            l.Price,
		ProductID:        l.ProductId,
		Image:            l.Image,
		Name:             l.Name,
		ShortDescription: l.ShortDescription,
	}
}

// GenericConn is an interface that works with both pgxpool.Pool and pgx.Tx
type GenericConn interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresCartRepository represents a Postgres cart repository.
type PostgresCartRepository struct {
	conn GenericConn
	sb   sq.StatementBuilderType
}

// NewPostgresCartRepository creates a new Postgres cart repository.
func NewPostgresCartRepository(conn GenericConn) *PostgresCartRepository {
	return &PostgresCartRepository{
		conn: conn,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// InsertCart creates a new empty cart and returns the created record.
func (r *PostgresCartRepository) InsertCart(ctx context.Context) (*cart.Cart, error) {
	sql := `
		INSERT INTO carts (created_at)
		VALUES (now())
		RETURNING cart_id, created_at
	`

	var created cart.Cart
	var createdAt pgtype.Timestamptz

	if err := r.conn.QueryRow(ctx, sql).Scan(&created.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("failed to insert cart: %w", err)
	}

	created.CreatedAt = createdAt.Time

	return &created, nil
}

// InsertItem adds a cart item with a snapshotted price and returns its id.
func (r *PostgresCartRepository) InsertItem(
	ctx context.Context,
	item cartitem.CartItem,
) (int64, error) {
	sql, args, err := r.sb.
		Insert("cart_items").
		Columns("cart_id", "product_id", "price", "created_at").
		Values(item.CartID, item.ProductID, item.Price, sq.Expr("now()")).
		Suffix("RETURNING cart_item_id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert query: %w", err)
	}

	var cartItemID int64
	if err := r.conn.QueryRow(ctx, sql, args...).Scan(&cartItemID); err != nil {
		return 0, fmt.Errorf("failed to insert cart item: %w", err)
	}

	return cartItemID, nil
}

// QueryLineItems retrieves cart items joined with product details based on
// filter criteria, ordered by cart item id.
func (r *PostgresCartRepository) QueryLineItems(
	ctx context.Context,
	filter *cartitem.QueryLineItemsModel,
) ([]cartitem.LineItem, error) {
	query := r.sb.
		Select(
			"c.cart_item_id",
			"c.price",
			"p.product_id",
			"p.image",
			"p.name",
			"p.short_description",
		).
		From("cart_items AS c").
		Join("products AS p USING (product_id)").
		OrderBy("c.cart_item_id ASC")

	if len(filter.Ids) > 0 {
		query = query.Where(sq.Eq{"c.cart_item_id": filter.Ids})
	}

	if len(filter.CartIds) > 0 {
		query = query.Where(sq.Eq{"c.cart_id": filter.CartIds})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query line items: %w", err)
	}
	defer rows.Close()

	var result []cartitem.LineItem
	for rows.Next() {
		var dal LineItemDal

		err := rows.Scan(
			&dal.CartItemId,
			&dal.Price,
			&dal.ProductId,
			&dal.Image,
			&dal.Name,
			&dal.ShortDescription,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan line item: %w", err)
		}

		result = append(result, *dal.ToModel())
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
