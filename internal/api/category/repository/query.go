package categoryRepository

const (
	queryCreateCategory = `
		INSERT INTO custom_categories (
			key,
			user_id,
			name,
			color,
			created_at
		) VALUES (
			:key,
			:user_id,
			:name,
			:color,
			:created_at
		)
	`

	queryGetCategoriesByUserID = `
		SELECT
			key,
			user_id,
			name,
			color,
			created_at
		FROM custom_categories
		WHERE user_id = :user_id
		ORDER BY created_at ASC, key ASC
	`

	queryDeleteCategory = `
		DELETE FROM custom_categories
		WHERE user_id = :user_id AND key = :key
	`
)
