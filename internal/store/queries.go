package store

// Order queries.
const (
	queryUpsertOrder = `
		INSERT INTO orders (
			store, amazon_order_id, seller_order_id, marketplace_id, order_status,
			fulfillment_channel, sales_channel, ship_service_level,
			order_total, currency, items_shipped, items_unshipped, payment_method,
			buyer_name, buyer_email, ship_city, ship_region, ship_postal_code,
			ship_country_code, is_prime, is_business_order,
			purchase_date, last_update_date
		) VALUES (
			@store, @amazon_order_id, @seller_order_id, @marketplace_id, @order_status,
			@fulfillment_channel, @sales_channel, @ship_service_level,
			@order_total, @currency, @items_shipped, @items_unshipped, @payment_method,
			@buyer_name, @buyer_email, @ship_city, @ship_region, @ship_postal_code,
			@ship_country_code, @is_prime, @is_business_order,
			@purchase_date, @last_update_date
		)
		ON CONFLICT (store, amazon_order_id) DO UPDATE SET
			seller_order_id     = EXCLUDED.seller_order_id,
			order_status        = EXCLUDED.order_status,
			fulfillment_channel = EXCLUDED.fulfillment_channel,
			sales_channel       = EXCLUDED.sales_channel,
			ship_service_level  = EXCLUDED.ship_service_level,
			order_total         = EXCLUDED.order_total,
			currency            = EXCLUDED.currency,
			items_shipped       = EXCLUDED.items_shipped,
			items_unshipped     = EXCLUDED.items_unshipped,
			payment_method      = EXCLUDED.payment_method,
			buyer_name          = EXCLUDED.buyer_name,
			buyer_email         = EXCLUDED.buyer_email,
			ship_city           = EXCLUDED.ship_city,
			ship_region         = EXCLUDED.ship_region,
			ship_postal_code    = EXCLUDED.ship_postal_code,
			ship_country_code   = EXCLUDED.ship_country_code,
			is_prime            = EXCLUDED.is_prime,
			is_business_order   = EXCLUDED.is_business_order,
			last_update_date    = EXCLUDED.last_update_date,
			updated_at          = now()
		WHERE orders.last_update_date <= EXCLUDED.last_update_date
		RETURNING first_seen_at, updated_at`

	queryGetOrder = baseOrdersSelect + `
		WHERE store = $1 AND amazon_order_id = $2`

	queryUpsertOrderItem = `
		INSERT INTO order_items (
			store, amazon_order_id, order_item_id, asin, seller_sku, title,
			quantity_ordered, quantity_shipped, item_price, item_tax,
			shipping_price, promotion_discount, currency
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (store, amazon_order_id, order_item_id) DO UPDATE SET
			asin               = EXCLUDED.asin,
			seller_sku         = EXCLUDED.seller_sku,
			title              = EXCLUDED.title,
			quantity_ordered   = EXCLUDED.quantity_ordered,
			quantity_shipped   = EXCLUDED.quantity_shipped,
			item_price         = EXCLUDED.item_price,
			item_tax           = EXCLUDED.item_tax,
			shipping_price     = EXCLUDED.shipping_price,
			promotion_discount = EXCLUDED.promotion_discount,
			currency           = EXCLUDED.currency,
			updated_at         = now()`

	queryListOrderItems = `
		SELECT store, amazon_order_id, order_item_id, asin, seller_sku, title,
			quantity_ordered, quantity_shipped, item_price, item_tax,
			shipping_price, promotion_discount, currency, updated_at
		FROM order_items
		WHERE store = $1 AND amazon_order_id = $2
		ORDER BY order_item_id`
)

// Checkpoint queries.
const (
	queryGetCheckpoint = `
		SELECT store, job, cursor_at, updated_at
		FROM sync_checkpoints
		WHERE store = $1 AND job = $2`

	querySaveCheckpoint = `
		INSERT INTO sync_checkpoints (store, job, cursor_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (store, job) DO UPDATE SET
			cursor_at  = EXCLUDED.cursor_at,
			updated_at = now()
		RETURNING updated_at`
)

// Report archive queries.
const (
	queryRecordReportArchive = `
		INSERT INTO report_archives (
			store, report_id, report_type, report_request_id, available_date,
			bucket, object_key, size_bytes, content_md5, acknowledged
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (store, report_id) DO UPDATE SET
			bucket       = EXCLUDED.bucket,
			object_key   = EXCLUDED.object_key,
			size_bytes   = EXCLUDED.size_bytes,
			content_md5  = EXCLUDED.content_md5,
			archived_at  = now()
		RETURNING id, archived_at`

	queryIsReportArchived = `
		SELECT EXISTS(SELECT 1 FROM report_archives WHERE store = $1 AND report_id = $2)`

	queryMarkReportsAcknowledged = `
		UPDATE report_archives SET acknowledged = true
		WHERE store = $1 AND report_id = ANY($2)`
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

	queryAcquireSchedulerLock = `
		INSERT INTO scheduler_locks (job_name, lock_holder, expires_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (job_name) DO UPDATE
			SET locked_at   = now(),
				lock_holder = EXCLUDED.lock_holder,
				expires_at  = EXCLUDED.expires_at
			WHERE scheduler_locks.expires_at < now()
		RETURNING job_name`

	queryReleaseSchedulerLock = `
		DELETE FROM scheduler_locks WHERE job_name = $1 AND lock_holder = $2`
)

// System state queries.
const (
	querySystemCounts = `
		SELECT
			(SELECT count(*) FROM orders),
			(SELECT count(*) FROM orders
				WHERE order_status IN ('Pending', 'Unshipped', 'PartiallyShipped')),
			(SELECT count(*) FROM order_items),
			(SELECT count(*) FROM report_archives),
			(SELECT count(*) FROM report_archives WHERE NOT acknowledged),
			(SELECT COALESCE(sum(size_bytes), 0) FROM report_archives),
			(SELECT count(*) FROM sync_checkpoints)`

	queryOrdersByStore = `
		SELECT store, count(*) FROM orders GROUP BY store`

	queryJobRunsByStatus = `
		SELECT status, count(*) FROM job_runs GROUP BY status`
)
