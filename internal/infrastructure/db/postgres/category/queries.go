package category

const (
	SelectActiveCategories = `
		SELECT id, uuid, name, status, created_at, updated_at
		FROM categories
		WHERE status = 'ACTIVE'
		ORDER BY name
	`
	SelectCategoryByUUID = `
		SELECT id, uuid, name, status, created_at, updated_at
		FROM categories
		WHERE uuid = $1
	`
)
