package account

const (
	SelectAccountByUUID = `
		SELECT id, uuid, email, password_hash, created_at, updated_at, deleted_at
		FROM accounts
		WHERE uuid = $1 AND deleted_at IS NULL
	`
	SelectAccountByEmail = `
		SELECT id, uuid, email, password_hash, created_at, updated_at, deleted_at
		FROM accounts
		WHERE email = $1 AND deleted_at IS NULL
	`
	InsertAccount = `
		INSERT INTO accounts (email, password_hash)
		VALUES ($1, $2)
		RETURNING
		  id, uuid, email, password_hash, created_at, updated_at, deleted_at
	`
	UpdatePasswordByUUID = `
		UPDATE accounts
		SET password_hash = $1,
		    updated_at = now()
		WHERE uuid = $2 AND deleted_at IS NULL
		RETURNING
		  id, uuid, email, password_hash, created_at, updated_at, deleted_at
	`
	SoftDeleteAccountByUUID = `
		UPDATE accounts
		SET deleted_at = now()
		WHERE uuid = $1 AND deleted_at IS NULL
		RETURNING
		  id, uuid, email, password_hash, created_at, updated_at, deleted_at
	`
)
