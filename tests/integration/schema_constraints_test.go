package integration

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSchemaConstraints exercises the schema-level guarantees against a
// real PostgreSQL database: uniqueness, enum columns, owner checks and
// the delete policies baked into the foreign keys.
func TestSchemaConstraints(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := NewTestDB(t)

	pgErrorCode := func(err error) string {
		var pe *pgconn.PgError
		if assert.ErrorAs(t, err, &pe) {
			return pe.Code
		}
		return ""
	}

	t.Run("rejects duplicate usernames", func(t *testing.T) {
		roleID := testDB.CreateTestRole("customer")
		testDB.CreateTestUser("dup_user", roleID)

		err := testDB.DB.Exec(`
			INSERT INTO users (username, email, email_verified, password, birth_date, role_id)
			VALUES ('dup_user', 'other@example.com', false, 'x', '1990-01-01', ?)
		`, roleID).Error
		require.Error(t, err)
		assert.Equal(t, "23505", pgErrorCode(err))
	})

	t.Run("rejects duplicate product slugs", func(t *testing.T) {
		catID := testDB.CreateTestCategory("electronics", nil)
		testDB.CreateTestProduct("Phone", "phone", catID)

		err := testDB.DB.Exec(`
			INSERT INTO products (name, slug, description, subcategory_id)
			VALUES ('Other Phone', 'phone', '', ?)
		`, catID).Error
		require.Error(t, err)
		assert.Equal(t, "23505", pgErrorCode(err))
	})

	t.Run("rejects values outside the transaction type enum", func(t *testing.T) {
		roleID := testDB.CreateTestRole("enum_role")
		userID := testDB.CreateTestUser("enum_user", roleID)

		var walletID int64
		err := testDB.DB.Raw(`
			INSERT INTO wallets (user_id) VALUES (?) RETURNING id
		`, userID).Scan(&walletID).Error
		require.NoError(t, err)

		err = testDB.DB.Exec(`
			INSERT INTO wallet_transactions (wallet_id, tx_type, amount, status)
			VALUES (?, 'refund', 10, 'pending')
		`, walletID).Error
		require.Error(t, err)
		// invalid_text_representation: not a member of the enum
		assert.Equal(t, "22P02", pgErrorCode(err))

		err = testDB.DB.Exec(`
			INSERT INTO wallet_transactions (wallet_id, tx_type, amount, status)
			VALUES (?, 'deposit', 10, 'cancelled')
		`, walletID).Error
		require.Error(t, err)
		assert.Equal(t, "22P02", pgErrorCode(err))
	})

	t.Run("rejects negative wallet balance", func(t *testing.T) {
		roleID := testDB.CreateTestRole("balance_role")
		userID := testDB.CreateTestUser("balance_user", roleID)

		err := testDB.DB.Exec(`
			INSERT INTO wallets (user_id, balance) VALUES (?, -5)
		`, userID).Error
		require.Error(t, err)
		assert.Equal(t, "23514", pgErrorCode(err))
	})

	t.Run("address must have exactly one owner", func(t *testing.T) {
		roleID := testDB.CreateTestRole("addr_role")
		userID := testDB.CreateTestUser("addr_user", roleID)
		vendorID := testDB.CreateTestVendor("addr vendor", userID)

		// No owner at all
		err := testDB.DB.Exec(`
			INSERT INTO addresses (state, city, street, zipcode)
			VALUES ('CA', 'LA', 'Main St', '90001')
		`).Error
		require.Error(t, err)
		assert.Equal(t, "23514", pgErrorCode(err))

		// Both owners
		err = testDB.DB.Exec(`
			INSERT INTO addresses (state, city, street, zipcode, user_id, vendor_id)
			VALUES ('CA', 'LA', 'Main St', '90001', ?, ?)
		`, userID, vendorID).Error
		require.Error(t, err)
		assert.Equal(t, "23514", pgErrorCode(err))

		// Exactly one owner
		err = testDB.DB.Exec(`
			INSERT INTO addresses (state, city, street, zipcode, user_id)
			VALUES ('CA', 'LA', 'Main St', '90001', ?)
		`, userID).Error
		assert.NoError(t, err)
	})

	t.Run("phone number must have exactly one owner", func(t *testing.T) {
		err := testDB.DB.Exec(`
			INSERT INTO phonenumbers (country_code, number)
			VALUES ('+1', '5551234567')
		`).Error
		require.Error(t, err)
		assert.Equal(t, "23514", pgErrorCode(err))
	})

	t.Run("rejects duplicate tag assignments", func(t *testing.T) {
		catID := testDB.CreateTestCategory("tagged", nil)
		productID := testDB.CreateTestProduct("Tagged", "tagged-product", catID)

		var tagID int64
		require.NoError(t, testDB.DB.Raw(`
			INSERT INTO product_tags (name) VALUES ('sale') RETURNING id
		`).Scan(&tagID).Error)

		require.NoError(t, testDB.DB.Exec(`
			INSERT INTO product_tag_assignments (product_id, tag_id) VALUES (?, ?)
		`, productID, tagID).Error)

		err := testDB.DB.Exec(`
			INSERT INTO product_tag_assignments (product_id, tag_id) VALUES (?, ?)
		`, productID, tagID).Error
		require.Error(t, err)
		assert.Equal(t, "23505", pgErrorCode(err))
	})

	t.Run("rejects comment scores outside 1 to 5", func(t *testing.T) {
		roleID := testDB.CreateTestRole("score_role")
		userID := testDB.CreateTestUser("score_user", roleID)
		catID := testDB.CreateTestCategory("scored", nil)
		productID := testDB.CreateTestProduct("Scored", "scored-product", catID)

		err := testDB.DB.Exec(`
			INSERT INTO product_comments (product_id, user_id, scoring)
			VALUES (?, ?, 6)
		`, productID, userID).Error
		require.Error(t, err)
		assert.Equal(t, "23514", pgErrorCode(err))
	})

	t.Run("deleting a role with users is blocked", func(t *testing.T) {
		roleID := testDB.CreateTestRole("protected_role")
		testDB.CreateTestUser("protected_user", roleID)

		err := testDB.DB.Exec(`DELETE FROM roles WHERE id = ?`, roleID).Error
		require.Error(t, err)
		assert.Equal(t, "23503", pgErrorCode(err))
	})

	t.Run("deleting a user cascades to wallet and contacts", func(t *testing.T) {
		roleID := testDB.CreateTestRole("cascade_role")
		userID := testDB.CreateTestUser("cascade_user", roleID)

		require.NoError(t, testDB.DB.Exec(`INSERT INTO wallets (user_id) VALUES (?)`, userID).Error)
		require.NoError(t, testDB.DB.Exec(`
			INSERT INTO addresses (state, city, street, zipcode, user_id)
			VALUES ('NY', 'NYC', 'Broadway', '10001', ?)
		`, userID).Error)
		require.NoError(t, testDB.DB.Exec(`
			INSERT INTO phonenumbers (country_code, number, user_id)
			VALUES ('+1', '5550001111', ?)
		`, userID).Error)

		require.NoError(t, testDB.DB.Exec(`DELETE FROM users WHERE id = ?`, userID).Error)

		var count int64
		require.NoError(t, testDB.DB.Raw(`SELECT count(*) FROM wallets WHERE user_id = ?`, userID).Scan(&count).Error)
		assert.Zero(t, count)
		require.NoError(t, testDB.DB.Raw(`SELECT count(*) FROM addresses WHERE user_id = ?`, userID).Scan(&count).Error)
		assert.Zero(t, count)
		require.NoError(t, testDB.DB.Raw(`SELECT count(*) FROM phonenumbers WHERE user_id = ?`, userID).Scan(&count).Error)
		assert.Zero(t, count)
	})

	t.Run("deleting a listed product is blocked by vendor listings", func(t *testing.T) {
		roleID := testDB.CreateTestRole("listing_role")
		userID := testDB.CreateTestUser("listing_user", roleID)
		vendorID := testDB.CreateTestVendor("listing vendor", userID)
		catID := testDB.CreateTestCategory("listed", nil)
		productID := testDB.CreateTestProduct("Listed", "listed-product", catID)

		require.NoError(t, testDB.DB.Exec(`
			INSERT INTO vendor_products (vendor_id, product_id) VALUES (?, ?)
		`, vendorID, productID).Error)

		err := testDB.DB.Exec(`DELETE FROM products WHERE id = ?`, productID).Error
		require.Error(t, err)
		assert.Equal(t, "23503", pgErrorCode(err))
	})

	t.Run("deleting an ordered user is blocked", func(t *testing.T) {
		roleID := testDB.CreateTestRole("order_role")
		userID := testDB.CreateTestUser("order_user", roleID)

		var walletID int64
		require.NoError(t, testDB.DB.Raw(`
			INSERT INTO wallets (user_id) VALUES (?) RETURNING id
		`, userID).Scan(&walletID).Error)

		var txID int64
		require.NoError(t, testDB.DB.Raw(`
			INSERT INTO wallet_transactions (wallet_id, tx_type, amount, status)
			VALUES (?, 'purchase', 20, 'successful') RETURNING id
		`, walletID).Scan(&txID).Error)

		require.NoError(t, testDB.DB.Exec(`
			INSERT INTO orders (total_price, delivery_date, user_id, transaction_id)
			VALUES (20, '2026-09-15', ?, ?)
		`, userID, txID).Error)

		err := testDB.DB.Exec(`DELETE FROM users WHERE id = ?`, userID).Error
		require.Error(t, err)
		assert.Equal(t, "23503", pgErrorCode(err))
	})

	t.Run("one order per wallet transaction", func(t *testing.T) {
		roleID := testDB.CreateTestRole("tx_role")
		userID := testDB.CreateTestUser("tx_user", roleID)

		var walletID int64
		require.NoError(t, testDB.DB.Raw(`
			INSERT INTO wallets (user_id) VALUES (?) RETURNING id
		`, userID).Scan(&walletID).Error)

		var txID int64
		require.NoError(t, testDB.DB.Raw(`
			INSERT INTO wallet_transactions (wallet_id, tx_type, amount, status)
			VALUES (?, 'purchase', 30, 'successful') RETURNING id
		`, walletID).Scan(&txID).Error)

		require.NoError(t, testDB.DB.Exec(`
			INSERT INTO orders (total_price, delivery_date, user_id, transaction_id)
			VALUES (30, '2026-09-15', ?, ?)
		`, userID, txID).Error)

		err := testDB.DB.Exec(`
			INSERT INTO orders (total_price, delivery_date, user_id, transaction_id)
			VALUES (30, '2026-09-16', ?, ?)
		`, userID, txID).Error
		require.Error(t, err)
		assert.Equal(t, "23505", pgErrorCode(err))
	})
}
