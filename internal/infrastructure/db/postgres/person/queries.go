package person

const (
	SelectPersonByUUID = `
		SELECT id, uuid, account_uuid, name, document, type, birth_date, phone, cep, created_at, updated_at
		FROM persons
		WHERE uuid = $1
	`
	SelectPersonByAccount = `
		SELECT id, uuid, account_uuid, name, document, type, birth_date, phone, cep, created_at, updated_at
		FROM persons
		WHERE account_uuid = $1
	`
	InsertPerson = `
		INSERT INTO persons (account_uuid, name, document, type, birth_date, phone, cep)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING
		  id, uuid, account_uuid, name, document, type, birth_date, phone, cep, created_at, updated_at
	`
	UpdatePersonByUUID = `
		UPDATE persons
		SET name = $1,
		    document = $2,
		    type = $3,
		    birth_date = $4,
		    phone = $5,
		    cep = $6,
		    updated_at = now()
		WHERE uuid = $7
		RETURNING
		  id, uuid, account_uuid, name, document, type, birth_date, phone, cep, created_at, updated_at
	`
)
