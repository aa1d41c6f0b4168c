package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gimie/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const productColumns = `id, name, price, original_price, currency, amount::text, image, url, description, site, created_at, updated_at`

type ProductRepository struct {
	pool *pgxpool.Pool
}

func (r *ProductRepository) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	q := `
        insert into products (name, price, original_price, currency, amount, image, url, description, site)
        values ($1, $2, $3, $4, $5::text::numeric, $6, $7, $8, $9)
        returning ` + productColumns

	row := r.pool.QueryRow(ctx, q,
		p.Name,
		p.Price,
		nullableText(p.OriginalPrice),
		p.Currency.String(),
		amountText(p.Amount),
		p.Image,
		p.URL,
		p.Description,
		p.Site,
	)
	created, err := scanProduct(row)
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to insert product %q: %w", p.URL, err)
	}
	return created, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id int64) (domain.Product, error) {
	q := `select ` + productColumns + ` from products where id = $1`

	p, err := scanProduct(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("failed to select product %d: %w", id, err)
	}
	return p, nil
}

func (r *ProductRepository) GetByURL(ctx context.Context, pageURL string) (domain.Product, error) {
	q := `select ` + productColumns + ` from products where url = $1`

	p, err := scanProduct(r.pool.QueryRow(ctx, q, pageURL))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("failed to select product by url %q: %w", pageURL, err)
	}
	return p, nil
}

// List returns one page of products, newest first, plus the total number of
// products matching search (case-insensitive substring of name or description).
// Search text is literal: % and _ are not wildcards.
func (r *ProductRepository) List(ctx context.Context, offset, limit int, search string) ([]domain.Product, int64, error) {
	const filter = `where $1 = '' or name ilike '%' || $1 || '%' escape '\' or description ilike '%' || $1 || '%' escape '\'`
	search = escapeLike(search)

	var total int64
	if err := r.pool.QueryRow(ctx, `select count(*) from products `+filter, search).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	q := `select ` + productColumns + ` from products ` + filter + ` order by created_at desc, id desc limit $2 offset $3`
	rows, err := r.pool.Query(ctx, q, search, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to select products: %w", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0, limit)
	for rows.Next() {
		p, scanErr := scanProduct(rows)
		if scanErr != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", scanErr)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate products: %w", err)
	}
	return products, total, nil
}

func (r *ProductRepository) Update(ctx context.Context, id int64, upd domain.ProductUpdate) (domain.Product, error) {
	q := `
        update products set
            name        = coalesce($2, name),
            price       = coalesce($3, price),
            image       = coalesce($4, image),
            description = coalesce($5, description),
            updated_at  = now()
        where id = $1
        returning ` + productColumns

	p, err := scanProduct(r.pool.QueryRow(ctx, q, id, upd.Name, upd.Price, upd.Image, upd.Description))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, domain.ErrProductNotFound
		}
		return domain.Product{}, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	return p, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `delete from products where id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (domain.Product, error) {
	var (
		p             domain.Product
		originalPrice *string
		currency      string
		amount        *string
	)
	if err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&originalPrice,
		&currency,
		&amount,
		&p.Image,
		&p.URL,
		&p.Description,
		&p.Site,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return domain.Product{}, err
	}

	p.Currency = domain.Code(currency)
	if originalPrice != nil {
		p.OriginalPrice = *originalPrice
	}
	if amount != nil {
		d, err := decimal.NewFromString(*amount)
		if err != nil {
			return domain.Product{}, fmt.Errorf("stored amount %q is not numeric: %w", *amount, err)
		}
		p.Amount = &d
	}
	return p, nil
}

func amountText(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}

func nullableText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}
