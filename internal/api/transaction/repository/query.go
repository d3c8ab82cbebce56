package transactionRepository

const (
	queryCreateTransaction = `
		INSERT INTO transactions (
			id,
			user_id,
			description,
			amount,
			date,
			type,
			category,
			is_recurring,
			due_date,
			is_paid,
			created_at,
			updated_at
		) VALUES (
			:id,
			:user_id,
			:description,
			:amount,
			:date,
			:type,
			:category,
			:is_recurring,
			:due_date,
			:is_paid,
			:created_at,
			:updated_at
		)
	`

	querySelectTransaction = `
		SELECT
			id,
			user_id,
			description,
			amount,
			date,
			type,
			category,
			is_recurring,
			due_date,
			is_paid,
			created_at,
			updated_at
		FROM transactions
	`

	queryGetTransactionByID = querySelectTransaction + `
		WHERE id = :id AND user_id = :user_id
	`

	queryGetTransactionsByUserID = querySelectTransaction + `
		WHERE user_id = :user_id
		ORDER BY created_at ASC, id ASC
	`

	queryUpdateTransaction = `
		UPDATE transactions
		SET
			description = :description,
			amount = :amount,
			date = :date,
			type = :type,
			category = :category,
			is_recurring = :is_recurring,
			due_date = :due_date,
			is_paid = :is_paid,
			updated_at = :updated_at
		WHERE id = :id AND user_id = :user_id
	`

	queryDeleteTransaction = `
		DELETE FROM transactions
		WHERE id = :id AND user_id = :user_id
	`

	queryCountByCategory = `
		SELECT COUNT(*)
		FROM transactions
		WHERE user_id = :user_id AND category = :category
	`
)
