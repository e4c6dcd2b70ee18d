package members

const (
	queryFindByAccount = `
		SELECT account, COALESCE(tcu_id, ''), COALESCE(email, ''), COALESCE(real_name, ''), COALESCE(tier, '')
		FROM tcu_members
		WHERE account = $1
		LIMIT 1
	`

	queryFindByEmail = `
		SELECT account, COALESCE(tcu_id, ''), COALESCE(email, ''), COALESCE(real_name, ''), COALESCE(tier, '')
		FROM tcu_members
		WHERE email = $1
		LIMIT 1
	`
)
