package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Sale queries.
const (
	queryGetSale = `
		SELECT id, address, suburb, COALESCE(city, ''),
			sale_price, sale_date, COALESCE(property_type, ''), bedrooms,
			COALESCE(street_name, ''), COALESCE(street_number, ''),
			latitude, longitude, created_at
		FROM sales
		WHERE id = $1`

	queryListSalesMissingCoordinates = `
		SELECT id, address, suburb, COALESCE(city, ''),
			sale_price, sale_date, COALESCE(property_type, ''), bedrooms,
			COALESCE(street_name, ''), COALESCE(street_number, ''),
			latitude, longitude, created_at
		FROM sales
		WHERE latitude IS NULL OR longitude IS NULL
		ORDER BY geocode_failed_at NULLS FIRST, sale_date DESC NULLS LAST, id
		LIMIT $1`

	querySetSaleCoordinates = `
		UPDATE sales SET latitude = $2, longitude = $3, geocode_failed_at = NULL WHERE id = $1`

	queryMarkSaleGeocodeFailed = `
		UPDATE sales SET geocode_failed_at = now() WHERE id = $1`
)

// Contact queries.
const (
	queryListContactsBySuburb = `
		SELECT id, first_name, COALESCE(last_name, ''), phone,
			COALESCE(address, ''), address_suburb,
			latitude, longitude, last_sms_at
		FROM contacts
		WHERE LOWER(TRIM(address_suburb)) = LOWER(TRIM($1))
		ORDER BY created_at, id`

	queryListContactsMissingCoordinates = `
		SELECT id, first_name, COALESCE(last_name, ''), phone,
			COALESCE(address, ''), address_suburb,
			latitude, longitude, last_sms_at
		FROM contacts
		WHERE (latitude IS NULL OR longitude IS NULL)
			AND COALESCE(address, '') <> ''
		ORDER BY geocode_failed_at NULLS FIRST, created_at, id
		LIMIT $1`

	querySetContactCoordinates = `
		UPDATE contacts SET latitude = $2, longitude = $3, geocode_failed_at = NULL WHERE id = $1`

	queryMarkContactGeocodeFailed = `
		UPDATE contacts SET geocode_failed_at = now() WHERE id = $1`
)

// Action queries.
const (
	queryUpsertAction = `
		INSERT INTO sale_contact_actions (sale_id, contact_id, action, user_id, created_at)
		VALUES (@sale_id, @contact_id, @action, @user_id, now())
		ON CONFLICT (sale_id, contact_id) DO UPDATE SET
			action     = EXCLUDED.action,
			user_id    = EXCLUDED.user_id,
			created_at = EXCLUDED.created_at
		RETURNING created_at`

	queryDeleteAction = `
		DELETE FROM sale_contact_actions WHERE sale_id = $1 AND contact_id = $2`

	queryListActionsForSale = `
		SELECT sale_id, contact_id, action, user_id, created_at
		FROM sale_contact_actions
		WHERE sale_id = $1
		ORDER BY created_at, contact_id`

	queryInsertIgnoredActions = `
		INSERT INTO sale_contact_actions (sale_id, contact_id, action, user_id)
		SELECT $1::uuid, c::uuid, 'ignored', $3
		FROM unnest($2::text[]) AS c
		ON CONFLICT (sale_id, contact_id) DO NOTHING`
)

// SMS log queries.
const (
	queryLogSMS = `
		WITH logged AS (
			INSERT INTO sms_log (sale_id, contact_id, user_id, message, sent_at)
			VALUES (@sale_id, @contact_id, @user_id, @message, COALESCE(@sent_at, now()))
			RETURNING id, contact_id, sent_at
		), touched AS (
			UPDATE contacts c SET last_sms_at = logged.sent_at
			FROM logged
			WHERE c.id = logged.contact_id
		)
		SELECT id, sent_at FROM logged`

	queryCountMessagesForSale = `
		SELECT COUNT(*) FROM sms_log WHERE sale_id = $1`
)

// Progress queries.
const (
	queryListSuburbProgress = `
		WITH wanted AS (
			SELECT DISTINCT LOWER(TRIM(x)) AS suburb_key
			FROM unnest($1::text[]) AS x
			UNION
			SELECT DISTINCT LOWER(TRIM(suburb))
			FROM sales
			WHERE cardinality($1::text[]) = 0
		), sale_counts AS (
			SELECT LOWER(TRIM(suburb)) AS suburb_key, MIN(suburb) AS suburb, COUNT(*) AS sales
			FROM sales
			GROUP BY 1
		), action_counts AS (
			SELECT LOWER(TRIM(s.suburb)) AS suburb_key,
				COUNT(*) FILTER (WHERE a.action = 'contacted') AS contacted,
				COUNT(*) FILTER (WHERE a.action = 'ignored') AS ignored
			FROM sale_contact_actions a
			JOIN sales s ON s.id = a.sale_id
			GROUP BY 1
		), sms_counts AS (
			SELECT LOWER(TRIM(s.suburb)) AS suburb_key, COUNT(*) AS sent
			FROM sms_log l
			JOIN sales s ON s.id = l.sale_id
			GROUP BY 1
		)
		SELECT COALESCE(sc.suburb, w.suburb_key),
			COALESCE(sc.sales, 0),
			COALESCE(ac.contacted, 0),
			COALESCE(ac.ignored, 0),
			COALESCE(m.sent, 0)
		FROM wanted w
		LEFT JOIN sale_counts sc USING (suburb_key)
		LEFT JOIN action_counts ac USING (suburb_key)
		LEFT JOIN sms_counts m USING (suburb_key)
		ORDER BY w.suburb_key`
)

// Favorite queries.
const (
	queryListFavorites = `
		SELECT user_id, suburb, position, created_at
		FROM suburb_favorites
		WHERE user_id = $1
		ORDER BY position, created_at`

	queryAddFavorite = `
		INSERT INTO suburb_favorites (user_id, suburb, position)
		SELECT $1, $2, COALESCE(MAX(position) + 1, 0)
		FROM suburb_favorites
		WHERE user_id = $1
		ON CONFLICT (user_id, (LOWER(suburb))) DO NOTHING`

	queryRemoveFavorite = `
		DELETE FROM suburb_favorites WHERE user_id = $1 AND LOWER(suburb) = LOWER($2)`

	queryReorderFavorites = `
		UPDATE suburb_favorites f SET position = o.ord - 1
		FROM unnest($2::text[]) WITH ORDINALITY AS o(suburb, ord)
		WHERE f.user_id = $1 AND LOWER(f.suburb) = LOWER(o.suburb)`
)

// Settings queries.
const (
	queryGetCooldownDays = `
		SELECT cooldown_days FROM user_settings WHERE user_id = $1`

	querySetCooldownDays = `
		INSERT INTO user_settings (user_id, cooldown_days, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET
			cooldown_days = EXCLUDED.cooldown_days,
			updated_at    = now()`
)

// Scheduler queries.
const (
	queryInsertJobRun = `
		INSERT INTO job_runs (job_name)
		VALUES ($1)
		RETURNING id`

	queryCompleteJobRun = `
		UPDATE job_runs SET
			completed_at  = now(),
			status        = $2,
			error_text    = $3,
			rows_affected = $4
		WHERE id = $1`

	queryListJobRuns = `
		SELECT id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		WHERE job_name = $1
		ORDER BY started_at DESC
		LIMIT $2`

	queryListLatestJobRuns = `
		SELECT DISTINCT ON (job_name)
			id, job_name, started_at, completed_at, status,
			COALESCE(error_text, ''), rows_affected
		FROM job_runs
		ORDER BY job_name, started_at DESC`

	queryMarkStaleJobRunsCrashed = `
		UPDATE job_runs SET
			status       = 'crashed',
			completed_at = now()
		WHERE status = 'running' AND started_at < $1`

	queryDeleteOldJobRuns = `
		DELETE FROM job_runs WHERE started_at < now() - interval '30 days'`
)
