package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/redemly/redly/internal/model"
)

// replaceAll deletes a resource's rows and inserts the fresh set in one
// transaction, then records the sync time. A snapshot is all-or-nothing.
func (s *SQLiteStorage) replaceAll(ctx context.Context, resource, deleteQuery, insertQuery string, count int, bind func(int) []any) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, deleteQuery); err != nil {
		return fmt.Errorf("failed to clear %s: %w", resource, err)
	}

	stmt, err := tx.PrepareContext(ctx, insertQuery)
	if err != nil {
		return fmt.Errorf("failed to prepare %s insert: %w", resource, err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for i := 0; i < count; i++ {
		if _, err := stmt.ExecContext(ctx, bind(i)...); err != nil {
			return fmt.Errorf("failed to insert %s row %d: %w", resource, i, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO sync_meta (resource, synced_at) VALUES (?, ?)
		ON CONFLICT(resource) DO UPDATE SET synced_at = excluded.synced_at`,
		resource, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to record sync time for %s: %w", resource, err)
	}

	return tx.Commit()
}

// LastSynced returns when the resource snapshot was last replaced.
func (s *SQLiteStorage) LastSynced(ctx context.Context, resource string) (time.Time, error) {
	var synced time.Time
	err := s.db.QueryRowContext(ctx, `SELECT synced_at FROM sync_meta WHERE resource = ?`, resource).Scan(&synced)
	if err == sql.ErrNoRows {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read sync time: %w", err)
	}
	return synced, nil
}

// ReplaceVendors installs a fresh vendor snapshot.
func (s *SQLiteStorage) ReplaceVendors(ctx context.Context, vendors []model.Vendor) error {
	return s.replaceAll(ctx, "vendors",
		`DELETE FROM vendors`,
		`INSERT INTO vendors (id, name, email, phone, category, city, status, coupons, joined_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		len(vendors),
		func(i int) []any {
			v := vendors[i]
			return []any{v.ID, v.Name, v.Email, v.Phone, v.Category, v.City, string(v.Status), v.Coupons, v.JoinedAt}
		})
}

// GetVendors returns the held vendor snapshot.
func (s *SQLiteStorage) GetVendors(ctx context.Context) ([]model.Vendor, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, phone, category, city, status, coupons, joined_at
		FROM vendors ORDER BY joined_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var vendors []model.Vendor
	for rows.Next() {
		var v model.Vendor
		var status string
		if err := rows.Scan(&v.ID, &v.Name, &v.Email, &v.Phone, &v.Category, &v.City, &status, &v.Coupons, &v.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		v.Status = model.VendorStatus(status)
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}

// ReplaceCoupons installs a fresh coupon snapshot.
func (s *SQLiteStorage) ReplaceCoupons(ctx context.Context, coupons []model.Coupon) error {
	return s.replaceAll(ctx, "coupons",
		`DELETE FROM coupons`,
		`INSERT INTO coupons (id, vendor_id, vendor_name, title, code, category, status, discount, redemptions, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		len(coupons),
		func(i int) []any {
			c := coupons[i]
			return []any{c.ID, c.VendorID, c.VendorName, c.Title, c.Code, c.Category, string(c.Status), c.Discount, c.Redemptions, c.CreatedAt, c.ExpiresAt}
		})
}

// GetCoupons returns the held coupon snapshot.
func (s *SQLiteStorage) GetCoupons(ctx context.Context) ([]model.Coupon, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, vendor_id, vendor_name, title, code, category, status, discount, redemptions, created_at, expires_at
		FROM coupons ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query coupons: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var coupons []model.Coupon
	for rows.Next() {
		var c model.Coupon
		var status string
		if err := rows.Scan(&c.ID, &c.VendorID, &c.VendorName, &c.Title, &c.Code, &c.Category, &status, &c.Discount, &c.Redemptions, &c.CreatedAt, &c.ExpiresAt); err != nil {
			return nil, fmt.Errorf("failed to scan coupon: %w", err)
		}
		c.Status = model.CouponStatus(status)
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}

// ReplacePayments installs a fresh payment snapshot.
func (s *SQLiteStorage) ReplacePayments(ctx context.Context, payments []model.Payment) error {
	return s.replaceAll(ctx, "payments",
		`DELETE FROM payments`,
		`INSERT INTO payments (id, vendor_id, vendor_name, method, reference, status, amount, paid_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		len(payments),
		func(i int) []any {
			p := payments[i]
			return []any{p.ID, p.VendorID, p.VendorName, p.Method, p.Reference, string(p.Status), p.Amount, p.PaidAt}
		})
}

// GetPayments returns the held payment snapshot.
func (s *SQLiteStorage) GetPayments(ctx context.Context) ([]model.Payment, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, vendor_id, vendor_name, method, reference, status, amount, paid_at
		FROM payments ORDER BY paid_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var payments []model.Payment
	for rows.Next() {
		var p model.Payment
		var status string
		if err := rows.Scan(&p.ID, &p.VendorID, &p.VendorName, &p.Method, &p.Reference, &status, &p.Amount, &p.PaidAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		p.Status = model.PaymentStatus(status)
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// ReplaceUsers installs a fresh user snapshot.
func (s *SQLiteStorage) ReplaceUsers(ctx context.Context, users []model.User) error {
	return s.replaceAll(ctx, "users",
		`DELETE FROM users`,
		`INSERT INTO users (id, name, email, city, status, redemptions, signed_up_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		len(users),
		func(i int) []any {
			u := users[i]
			return []any{u.ID, u.Name, u.Email, u.City, string(u.Status), u.Redemptions, u.SignedUpAt}
		})
}

// GetUsers returns the held user snapshot.
func (s *SQLiteStorage) GetUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, city, status, redemptions, signed_up_at
		FROM users ORDER BY signed_up_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var users []model.User
	for rows.Next() {
		var u model.User
		var status string
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.City, &status, &u.Redemptions, &u.SignedUpAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.Status = model.UserStatus(status)
		users = append(users, u)
	}
	return users, rows.Err()
}
