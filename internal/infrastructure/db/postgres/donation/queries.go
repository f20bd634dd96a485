package donation

const (
	donationColumns = `id, uuid, owner_uuid, category_uuid, beneficiary_uuid, name, description, quantity, cep, house_number, complement, status, created_at, updated_at`

	SelectDonationByUUID = `
		SELECT ` + donationColumns + `
		FROM donations
		WHERE uuid = $1
	`
	SelectDonationsByOwner = `
		SELECT ` + donationColumns + `
		FROM donations
		WHERE owner_uuid = $1
		ORDER BY created_at DESC
	`
	SelectRequestedByBeneficiary = `
		SELECT ` + donationColumns + `
		FROM donations
		WHERE beneficiary_uuid = $1 AND status IN ('REQUESTED', 'DONATED')
		ORDER BY updated_at DESC
	`
	InsertDonation = `
		INSERT INTO donations (owner_uuid, category_uuid, name, description, quantity, cep, house_number, complement, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + donationColumns + `
	`
	UpdateDonationByUUID = `
		UPDATE donations
		SET category_uuid = $1,
		    name = $2,
		    description = $3,
		    quantity = $4,
		    cep = $5,
		    house_number = $6,
		    complement = $7,
		    updated_at = now()
		WHERE uuid = $8
		RETURNING ` + donationColumns + `
	`
	// Compare-and-set: the WHERE clause pins the status read by the
	// caller, so a concurrent transition makes this update match nothing.
	UpdateDonationStatus = `
		UPDATE donations
		SET status = $1,
		    beneficiary_uuid = COALESCE($2, beneficiary_uuid),
		    updated_at = now()
		WHERE uuid = $3 AND status = $4
		RETURNING ` + donationColumns + `
	`
)
