package main

// schemaStatements creates every table the API reads. Statements are
// idempotent so the command can run against an existing database.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS vendors (
		id BIGSERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		contact_person TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		gst_number TEXT NOT NULL DEFAULT '',
		pan_number TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		risk_override TEXT,
		performance_score DOUBLE PRECISION NOT NULL DEFAULT 0,
		quality_score DOUBLE PRECISION NOT NULL DEFAULT 0,
		delivery_score DOUBLE PRECISION NOT NULL DEFAULT 0,
		sla_score DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS vendor_status_history (
		id BIGSERIAL PRIMARY KEY,
		vendor_id BIGINT NOT NULL REFERENCES vendors(id) ON DELETE CASCADE,
		from_status TEXT NOT NULL,
		to_status TEXT NOT NULL,
		action TEXT NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		actor TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS vendor_documents (
		id BIGSERIAL PRIMARY KEY,
		vendor_id BIGINT NOT NULL REFERENCES vendors(id) ON DELETE CASCADE,
		doc_type TEXT NOT NULL,
		file_name TEXT NOT NULL,
		storage_key TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		rejection_reason TEXT,
		reviewed_by TEXT,
		reviewed_at TIMESTAMPTZ,
		uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS invoices (
		id BIGSERIAL PRIMARY KEY,
		number TEXT NOT NULL UNIQUE,
		vendor_id BIGINT NOT NULL REFERENCES vendors(id),
		po_number TEXT NOT NULL DEFAULT '',
		invoice_date DATE NOT NULL,
		due_date DATE NOT NULL,
		amount NUMERIC(14,2) NOT NULL,
		paid_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'pending',
		payment_terms TEXT NOT NULL DEFAULT '',
		monthly_interest_pct NUMERIC(6,3) NOT NULL DEFAULT 0,
		description TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_items (
		id BIGSERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		category TEXT NOT NULL DEFAULT '',
		unit TEXT NOT NULL DEFAULT 'pcs',
		on_hand INTEGER NOT NULL DEFAULT 0,
		reserved INTEGER NOT NULL DEFAULT 0,
		min_stock INTEGER NOT NULL DEFAULT 0,
		max_stock INTEGER NOT NULL DEFAULT 0,
		safety_stock INTEGER NOT NULL DEFAULT 0,
		reorder_point INTEGER NOT NULL DEFAULT 0,
		avg_monthly_consumption DOUBLE PRECISION NOT NULL DEFAULT 0,
		lead_time_days INTEGER NOT NULL DEFAULT 0,
		unit_cost NUMERIC(14,2) NOT NULL DEFAULT 0,
		age_0_30 INTEGER NOT NULL DEFAULT 0,
		age_31_60 INTEGER NOT NULL DEFAULT 0,
		age_61_90 INTEGER NOT NULL DEFAULT 0,
		age_over_90 INTEGER NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS forecast_items (
		id BIGSERIAL PRIMARY KEY,
		code TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		current_stock INTEGER NOT NULL DEFAULT 0,
		avg_monthly_consumption DOUBLE PRECISION NOT NULL DEFAULT 0,
		lead_time_days INTEGER NOT NULL DEFAULT 0,
		safety_stock INTEGER NOT NULL DEFAULT 0,
		confidence_pct DOUBLE PRECISION NOT NULL DEFAULT 0,
		trend TEXT NOT NULL DEFAULT '',
		seasonality TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS forecast_history (
		id BIGSERIAL PRIMARY KEY,
		forecast_item_id BIGINT NOT NULL REFERENCES forecast_items(id) ON DELETE CASCADE,
		month TEXT NOT NULL,
		consumption DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS forecast_points (
		id BIGSERIAL PRIMARY KEY,
		forecast_item_id BIGINT NOT NULL REFERENCES forecast_items(id) ON DELETE CASCADE,
		month TEXT NOT NULL,
		predicted DOUBLE PRECISION NOT NULL,
		lower_bound DOUBLE PRECISION NOT NULL,
		upper_bound DOUBLE PRECISION NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS rfqs (
		id BIGSERIAL PRIMARY KEY,
		number TEXT NOT NULL UNIQUE,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'open',
		issue_date DATE NOT NULL,
		due_date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS quotations (
		id BIGSERIAL PRIMARY KEY,
		rfq_id BIGINT NOT NULL REFERENCES rfqs(id) ON DELETE CASCADE,
		vendor_id BIGINT NOT NULL REFERENCES vendors(id),
		unit_price NUMERIC(14,2) NOT NULL,
		lead_time_days INTEGER NOT NULL,
		quality_score DOUBLE PRECISION NOT NULL DEFAULT 0,
		performance_score DOUBLE PRECISION NOT NULL DEFAULT 0,
		compliance TEXT NOT NULL DEFAULT 'compliant',
		valid_until DATE NOT NULL,
		submitted_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (rfq_id, vendor_id)
	)`,
	`CREATE TABLE IF NOT EXISTS purchase_orders (
		id BIGSERIAL PRIMARY KEY,
		number TEXT NOT NULL UNIQUE,
		vendor_id BIGINT NOT NULL REFERENCES vendors(id),
		status TEXT NOT NULL DEFAULT 'draft',
		order_date DATE NOT NULL,
		expected_date DATE NOT NULL,
		total_amount NUMERIC(14,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS shipments (
		id BIGSERIAL PRIMARY KEY,
		po_number TEXT NOT NULL,
		carrier TEXT NOT NULL DEFAULT '',
		tracking_number TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'pending',
		delayed BOOLEAN NOT NULL DEFAULT FALSE,
		expected_at TIMESTAMPTZ NOT NULL,
		delivered_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_status ON invoices(status)`,
	`CREATE INDEX IF NOT EXISTS idx_invoices_due_date ON invoices(due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_vendor_documents_vendor ON vendor_documents(vendor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_vendor_status_history_vendor ON vendor_status_history(vendor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_quotations_rfq ON quotations(rfq_id)`,
}
