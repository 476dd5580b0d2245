package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/estatedesk/leadbook/internal/entity"
)

const uniqueViolation = "23505"

type BuyerRepository struct {
	DB *sql.DB
}

func NewBuyerRepository(db *sql.DB) *BuyerRepository {
	return &BuyerRepository{DB: db}
}

const buyerColumns = `id, owner_id, full_name, email, phone, city, property_type, bhk, purpose,
	budget_min, budget_max, timeline, source, status, notes, tags, created_at, updated_at`

const insertBuyerQuery = `
	INSERT INTO buyers (` + buyerColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

func buyerArgs(b *entity.Buyer) []any {
	return []any{
		b.ID, b.OwnerID, b.FullName, b.Email, b.Phone, b.City, b.PropertyType,
		b.BHK, b.Purpose, b.BudgetMin, b.BudgetMax, b.Timeline, b.Source,
		b.Status, b.Notes, strings.Join(b.Tags, ","), b.CreatedAt, b.UpdatedAt,
	}
}

// Create inserts the lead and its creation history row in one transaction;
// the record and its audit entry become visible together or not at all.
func (r *BuyerRepository) Create(ctx context.Context, b *entity.Buyer, h *entity.BuyerHistory) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, insertBuyerQuery, buyerArgs(b)...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entity.ErrDuplicateLead
		}
		return err
	}
	if err := insertHistory(ctx, tx, h); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *BuyerRepository) FindByID(ctx context.Context, ownerID, id string) (*entity.Buyer, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+buyerColumns+` FROM buyers WHERE id = $1 AND owner_id = $2`, id, ownerID)

	b, err := scanBuyer(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BuyerRepository) Update(ctx context.Context, b *entity.Buyer, h *entity.BuyerHistory) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE buyers SET
			full_name = $1, email = $2, phone = $3, city = $4, property_type = $5,
			bhk = $6, purpose = $7, budget_min = $8, budget_max = $9, timeline = $10,
			source = $11, status = $12, notes = $13, tags = $14, updated_at = $15
		WHERE id = $16 AND owner_id = $17`,
		b.FullName, b.Email, b.Phone, b.City, b.PropertyType, b.BHK, b.Purpose,
		b.BudgetMin, b.BudgetMax, b.Timeline, b.Source, b.Status, b.Notes,
		strings.Join(b.Tags, ","), b.UpdatedAt, b.ID, b.OwnerID,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return entity.ErrDuplicateLead
		}
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrLeadNotFound
	}

	if err := insertHistory(ctx, tx, h); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes the lead; the FK cascade takes its history rows with it.
func (r *BuyerRepository) Delete(ctx context.Context, ownerID, id string) error {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM buyers WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *BuyerRepository) List(ctx context.Context, q entity.ListQuery) ([]entity.Buyer, int, error) {
	conditions := []string{"owner_id = $1"}
	args := []any{q.OwnerID}

	add := func(cond string, val any) {
		args = append(args, val)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		n := len(args)
		conditions = append(conditions,
			fmt.Sprintf("(full_name ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)", n, n, n))
	}
	if q.Status != "" {
		add("status = $%d", q.Status)
	}
	if q.City != "" {
		add("city = $%d", q.City)
	}
	if q.PropertyType != "" {
		add("property_type = $%d", q.PropertyType)
	}
	if q.Timeline != "" {
		add("timeline = $%d", q.Timeline)
	}
	if q.BudgetMin != nil {
		add("budget_max >= $%d", *q.BudgetMin)
	}
	if q.BudgetMax != nil {
		add("budget_min <= $%d", *q.BudgetMax)
	}

	where := strings.Join(conditions, " AND ")

	var total int
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM buyers WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + buyerColumns + ` FROM buyers WHERE ` + where + ` ORDER BY updated_at DESC`
	if q.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", q.Limit, q.Offset)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var buyers []entity.Buyer
	for rows.Next() {
		b, err := scanBuyer(rows)
		if err != nil {
			return nil, 0, err
		}
		buyers = append(buyers, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return buyers, total, nil
}

func (r *BuyerRepository) HistoryByBuyer(ctx context.Context, buyerID string) ([]entity.BuyerHistory, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, buyer_id, changed_by, changed_at, diff
		FROM buyer_history
		WHERE buyer_id = $1
		ORDER BY changed_at DESC`, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []entity.BuyerHistory
	for rows.Next() {
		var h entity.BuyerHistory
		var diff []byte
		if err := rows.Scan(&h.ID, &h.BuyerID, &h.ChangedBy, &h.ChangedAt, &diff); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(diff, &h.Diff); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return history, nil
}

// BulkCreate inserts the leads row by row inside one transaction, writing
// each lead's creation history entry alongside it. A row that collides with
// an existing (owner, phone) pair is skipped and counted; any other failure
// rolls back the whole batch.
func (r *BuyerRepository) BulkCreate(ctx context.Context, buyers []*entity.Buyer, histories []*entity.BuyerHistory) (int, int, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	inserted := 0
	for i, b := range buyers {
		var id string
		err := tx.QueryRowContext(ctx,
			insertBuyerQuery+` ON CONFLICT (owner_id, phone) DO NOTHING RETURNING id`,
			buyerArgs(b)...,
		).Scan(&id)
		if errors.Is(err, sql.ErrNoRows) {
			continue // duplicate, skip
		}
		if err != nil {
			return 0, 0, err
		}
		if err := insertHistory(ctx, tx, histories[i]); err != nil {
			return 0, 0, err
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return inserted, len(buyers) - inserted, nil
}

func insertHistory(ctx context.Context, tx *sql.Tx, h *entity.BuyerHistory) error {
	diff, err := json.Marshal(h.Diff)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO buyer_history (id, buyer_id, changed_by, changed_at, diff)
		VALUES ($1, $2, $3, $4, $5)`,
		h.ID, h.BuyerID, h.ChangedBy, h.ChangedAt, diff,
	)
	return err
}

func scanBuyer(scanner interface{ Scan(...any) error }) (*entity.Buyer, error) {
	var b entity.Buyer
	var tags string
	err := scanner.Scan(
		&b.ID, &b.OwnerID, &b.FullName, &b.Email, &b.Phone, &b.City,
		&b.PropertyType, &b.BHK, &b.Purpose, &b.BudgetMin, &b.BudgetMax,
		&b.Timeline, &b.Source, &b.Status, &b.Notes, &tags,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if tags != "" {
		b.Tags = strings.Split(tags, ",")
	}
	return &b, nil
}
