package bindings

const (
	queryFindByStravaID = `
		SELECT strava_id, COALESCE(member_name, ''), COALESCE(tcu_member_email, ''), COALESCE(tcu_account, ''),
		       COALESCE(user_id::text, ''), COALESCE(bound_at, 'epoch'::timestamptz), COALESCE(updated_at, 'epoch'::timestamptz)
		FROM strava_member_bindings
		WHERE strava_id = $1
		LIMIT 1
	`

	queryFindByUserID = `
		SELECT strava_id, COALESCE(member_name, ''), COALESCE(tcu_member_email, ''), COALESCE(tcu_account, ''),
		       COALESCE(user_id::text, ''), COALESCE(bound_at, 'epoch'::timestamptz), COALESCE(updated_at, 'epoch'::timestamptz)
		FROM strava_member_bindings
		WHERE user_id::text = $1
		LIMIT 1
	`

	queryUpsertBinding = `
		INSERT INTO strava_member_bindings (strava_id, member_name, tcu_member_email, tcu_account, user_id, bound_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6, $7)
		ON CONFLICT (strava_id)
		DO UPDATE SET
			member_name = EXCLUDED.member_name,
			tcu_member_email = EXCLUDED.tcu_member_email,
			tcu_account = EXCLUDED.tcu_account,
			user_id = EXCLUDED.user_id,
			bound_at = EXCLUDED.bound_at,
			updated_at = EXCLUDED.updated_at
	`
)
