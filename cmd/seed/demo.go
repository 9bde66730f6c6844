package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

type vendorSeed struct {
	code, name, contact, email, category string
	status                               string
	performance, quality, delivery, sla  float64
}

var vendorSeeds = []vendorSeed{
	{"V-ACME", "Acme Industrial Supplies", "Rohan Mehta", "rohan@acme.example", "raw_material", "active", 8.6, 8.9, 8.2, 8.4},
	{"V-BHAR", "Bharat Fasteners", "Sunita Rao", "sunita@bharatfast.example", "components", "active", 6.4, 6.8, 6.1, 6.5},
	{"V-CRYO", "Cryogenic Packaging Co", "Arjun Nair", "arjun@cryopack.example", "packaging", "active", 4.2, 4.5, 3.9, 4.6},
	{"V-DELT", "Delta Logistics", "Meera Iyer", "meera@deltalog.example", "services", "approved", 7.8, 7.5, 8.1, 7.9},
	{"V-EVER", "Everest Alloys", "Vikram Singh", "vikram@everest.example", "raw_material", "pending_approval", 7.1, 7.3, 6.8, 7.0},
	{"V-FINE", "Fine Chem Traders", "Priya Desai", "priya@finechem.example", "chemicals", "documents_pending", 5.5, 5.2, 5.8, 5.4},
	{"V-GLOB", "Global Tooling Works", "Anil Kumar", "anil@globtool.example", "components", "pending", 0, 0, 0, 0},
	{"V-HIND", "Hindustan Bearings", "Kavita Joshi", "kavita@hindbear.example", "components", "blocked", 3.1, 3.4, 2.8, 3.2},
}

func runDemoSeed(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()

	log.Println("Seeding vendors...")
	vendorIDs, err := seedVendors(ctx, db)
	if err != nil {
		return fmt.Errorf("failed to seed vendors: %w", err)
	}

	// The remaining groups only depend on vendors, so they run concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return seedVendorDocuments(gctx, db, vendorIDs) })
	g.Go(func() error { return seedInvoices(gctx, db, vendorIDs) })
	g.Go(func() error { return seedInventory(gctx, db) })
	g.Go(func() error { return seedSourcing(gctx, db, vendorIDs) })
	if err := g.Wait(); err != nil {
		return err
	}

	log.Println("Demo data seeded successfully")
	return nil
}

func seedVendors(ctx context.Context, db *sql.DB) (map[string]int64, error) {
	query := `
        INSERT INTO vendors (
            code, name, contact_person, email, category, status,
            performance_score, quality_score, delivery_score, sla_score
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (code) DO UPDATE SET
            name = EXCLUDED.name,
            contact_person = EXCLUDED.contact_person,
            email = EXCLUDED.email,
            category = EXCLUDED.category,
            status = EXCLUDED.status,
            performance_score = EXCLUDED.performance_score,
            quality_score = EXCLUDED.quality_score,
            delivery_score = EXCLUDED.delivery_score,
            sla_score = EXCLUDED.sla_score,
            updated_at = NOW()
        RETURNING id
    `
	ids := make(map[string]int64, len(vendorSeeds))
	for _, v := range vendorSeeds {
		var id int64
		if err := db.QueryRowContext(ctx, query,
			v.code, v.name, v.contact, v.email, v.category, v.status,
			v.performance, v.quality, v.delivery, v.sla,
		).Scan(&id); err != nil {
			return nil, fmt.Errorf("vendor %s: %w", v.code, err)
		}
		ids[v.code] = id
	}
	log.Printf("Seeded %d vendors", len(ids))
	return ids, nil
}

func seedVendorDocuments(ctx context.Context, db *sql.DB, vendorIDs map[string]int64) error {
	type docSeed struct {
		vendor, docType, fileName, status string
	}
	docs := []docSeed{
		{"V-EVER", "gst_certificate", "everest_gst.pdf", "approved"},
		{"V-EVER", "pan_card", "everest_pan.pdf", "approved"},
		{"V-EVER", "bank_details", "everest_bank.pdf", "approved"},
		{"V-FINE", "gst_certificate", "finechem_gst.pdf", "approved"},
		{"V-FINE", "pan_card", "finechem_pan.pdf", "pending"},
		{"V-FINE", "iso_certificate", "finechem_iso.pdf", "rejected"},
	}

	query := `
        INSERT INTO vendor_documents (vendor_id, doc_type, file_name, storage_key, status)
        VALUES ($1, $2, $3, $4, $5)
        ON CONFLICT DO NOTHING
    `
	for _, d := range docs {
		vendorID, ok := vendorIDs[d.vendor]
		if !ok {
			return fmt.Errorf("unknown vendor code %s in document seed", d.vendor)
		}
		key := fmt.Sprintf("vendors/%d/%s/%s", vendorID, d.docType, d.fileName)
		if _, err := db.ExecContext(ctx, query, vendorID, d.docType, d.fileName, key, d.status); err != nil {
			return fmt.Errorf("document %s for %s: %w", d.fileName, d.vendor, err)
		}
	}
	log.Printf("Seeded %d vendor documents", len(docs))
	return nil
}

func seedInvoices(ctx context.Context, db *sql.DB, vendorIDs map[string]int64) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)
	type invoiceSeed struct {
		number, vendor string
		dueDaysAgo     int
		amount, paid   float64
		status         string
		monthlyRatePct float64
	}
	invoices := []invoiceSeed{
		{"INV-2026-001", "V-ACME", -12, 48000, 0, "pending", 1.5},
		{"INV-2026-002", "V-ACME", 15, 100000, 0, "overdue", 1.5},
		{"INV-2026-003", "V-BHAR", 45, 36000, 12000, "partial", 1.25},
		{"INV-2026-004", "V-BHAR", 75, 15000, 0, "overdue", 1.5},
		{"INV-2026-005", "V-CRYO", 120, 82500, 2500, "disputed", 2.0},
		{"INV-2026-006", "V-CRYO", 30, 9900, 9900, "paid", 1.5},
		{"INV-2026-007", "V-DELT", 0, 27000, 0, "pending", 1.0},
		{"INV-2026-008", "V-HIND", 95, 61000, 20000, "overdue", 1.75},
	}

	query := `
        INSERT INTO invoices (
            number, vendor_id, po_number, invoice_date, due_date,
            amount, paid_amount, status, payment_terms, monthly_interest_pct, description
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        ON CONFLICT (number) DO UPDATE SET
            amount = EXCLUDED.amount,
            paid_amount = EXCLUDED.paid_amount,
            status = EXCLUDED.status,
            due_date = EXCLUDED.due_date,
            monthly_interest_pct = EXCLUDED.monthly_interest_pct,
            updated_at = NOW()
    `
	for i, inv := range invoices {
		vendorID, ok := vendorIDs[inv.vendor]
		if !ok {
			return fmt.Errorf("unknown vendor code %s in invoice seed", inv.vendor)
		}
		dueDate := today.AddDate(0, 0, -inv.dueDaysAgo)
		invoiceDate := dueDate.AddDate(0, 0, -30)
		poNumber := fmt.Sprintf("PO-2026-%03d", i+1)
		if _, err := db.ExecContext(ctx, query,
			inv.number, vendorID, poNumber, invoiceDate, dueDate,
			inv.amount, inv.paid, inv.status, "NET30", inv.monthlyRatePct,
			fmt.Sprintf("Supplies invoice %s", inv.number),
		); err != nil {
			return fmt.Errorf("invoice %s: %w", inv.number, err)
		}
	}
	log.Printf("Seeded %d invoices", len(invoices))
	return nil
}

func seedInventory(ctx context.Context, db *sql.DB) error {
	type itemSeed struct {
		code, name, category, unit           string
		onHand, reserved, minStock, maxStock int
		safetyStock, reorderPoint            int
		avgMonthly                           float64
		leadTimeDays                         int
		unitCost                             float64
	}
	items := []itemSeed{
		{"STL-ROD-12", "Steel Rod 12mm", "raw_material", "kg", 450, 0, 100, 900, 60, 150, 120, 7, 85.50},
		{"STL-SHT-03", "Steel Sheet 3mm", "raw_material", "sheet", 40, 10, 50, 400, 30, 80, 180, 10, 1250.00},
		{"BRG-6204", "Bearing 6204-ZZ", "components", "pcs", 900, 100, 200, 1200, 100, 300, 600, 14, 92.00},
		{"FST-M8-40", "Hex Bolt M8x40", "components", "pcs", 15000, 0, 2000, 20000, 1000, 4000, 5000, 5, 3.20},
		{"PKG-CRT-XL", "Carton Box XL", "packaging", "pcs", 80, 0, 150, 1000, 50, 250, 750, 3, 42.00},
		{"CHM-SOLV-5", "Solvent Grade 5", "chemicals", "ltr", 320, 20, 100, 600, 40, 160, 90, 21, 310.00},
		{"ELC-RLY-24", "Relay 24V", "components", "pcs", 75, 0, 40, 300, 20, 60, 0, 12, 145.00},
	}

	query := `
        INSERT INTO inventory_items (
            code, name, category, unit, on_hand, reserved,
            min_stock, max_stock, safety_stock, reorder_point,
            avg_monthly_consumption, lead_time_days, unit_cost,
            age_0_30, age_31_60, age_61_90, age_over_90
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
        ON CONFLICT (code) DO UPDATE SET
            on_hand = EXCLUDED.on_hand,
            reserved = EXCLUDED.reserved,
            avg_monthly_consumption = EXCLUDED.avg_monthly_consumption,
            lead_time_days = EXCLUDED.lead_time_days,
            updated_at = NOW()
    `
	for _, item := range items {
		age0, age31, age61, over90 := splitAges(item.onHand)
		if _, err := db.ExecContext(ctx, query,
			item.code, item.name, item.category, item.unit, item.onHand, item.reserved,
			item.minStock, item.maxStock, item.safetyStock, item.reorderPoint,
			item.avgMonthly, item.leadTimeDays, item.unitCost,
			age0, age31, age61, over90,
		); err != nil {
			return fmt.Errorf("inventory item %s: %w", item.code, err)
		}
	}
	log.Printf("Seeded %d inventory items", len(items))

	return seedForecasts(ctx, db)
}

// splitAges distributes on-hand stock across age buckets 50/30/15/5.
func splitAges(onHand int) (int, int, int, int) {
	age0 := onHand / 2
	age31 := onHand * 3 / 10
	age61 := onHand * 15 / 100
	return age0, age31, age61, onHand - age0 - age31 - age61
}

func seedForecasts(ctx context.Context, db *sql.DB) error {
	type forecastSeed struct {
		code, name string
		stock      int
		avgMonthly float64
		leadTime   int
		safety     int
		confidence float64
		trend      string
		history    []float64
		predicted  []float64
	}
	forecasts := []forecastSeed{
		{
			code: "STL-ROD-12", name: "Steel Rod 12mm", stock: 450, avgMonthly: 120,
			leadTime: 7, safety: 60, confidence: 88, trend: "stable",
			history:   []float64{112, 118, 124, 119, 122, 121},
			predicted: []float64{125, 128, 126},
		},
		{
			code: "PKG-CRT-XL", name: "Carton Box XL", stock: 80, avgMonthly: 750,
			leadTime: 3, safety: 50, confidence: 74, trend: "rising",
			history:   []float64{680, 700, 720, 745, 760, 775},
			predicted: []float64{800, 815, 830},
		},
	}

	itemQuery := `
        INSERT INTO forecast_items (
            code, name, current_stock, avg_monthly_consumption,
            lead_time_days, safety_stock, confidence_pct, trend, seasonality
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'none')
        ON CONFLICT (code) DO UPDATE SET
            current_stock = EXCLUDED.current_stock,
            avg_monthly_consumption = EXCLUDED.avg_monthly_consumption,
            confidence_pct = EXCLUDED.confidence_pct
        RETURNING id
    `
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	for _, f := range forecasts {
		var itemID int64
		if err := db.QueryRowContext(ctx, itemQuery,
			f.code, f.name, f.stock, f.avgMonthly, f.leadTime, f.safety, f.confidence, f.trend,
		).Scan(&itemID); err != nil {
			return fmt.Errorf("forecast item %s: %w", f.code, err)
		}

		// Rewrite the series so reruns stay deterministic.
		if _, err := db.ExecContext(ctx, `DELETE FROM forecast_history WHERE forecast_item_id = $1`, itemID); err != nil {
			return fmt.Errorf("reset forecast history for %s: %w", f.code, err)
		}
		if _, err := db.ExecContext(ctx, `DELETE FROM forecast_points WHERE forecast_item_id = $1`, itemID); err != nil {
			return fmt.Errorf("reset forecast points for %s: %w", f.code, err)
		}

		for i, consumption := range f.history {
			month := base.AddDate(0, i-len(f.history), 0).Format("2006-01")
			if _, err := db.ExecContext(ctx,
				`INSERT INTO forecast_history (forecast_item_id, month, consumption) VALUES ($1, $2, $3)`,
				itemID, month, consumption,
			); err != nil {
				return fmt.Errorf("forecast history for %s: %w", f.code, err)
			}
		}
		for i, predicted := range f.predicted {
			month := base.AddDate(0, i, 0).Format("2006-01")
			if _, err := db.ExecContext(ctx,
				`INSERT INTO forecast_points (forecast_item_id, month, predicted, lower_bound, upper_bound)
                 VALUES ($1, $2, $3, $4, $5)`,
				itemID, month, predicted, predicted*0.9, predicted*1.1,
			); err != nil {
				return fmt.Errorf("forecast points for %s: %w", f.code, err)
			}
		}
	}
	log.Printf("Seeded %d forecast series", len(forecasts))
	return nil
}

func seedSourcing(ctx context.Context, db *sql.DB, vendorIDs map[string]int64) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	rfqQuery := `
        INSERT INTO rfqs (number, title, description, status, issue_date, due_date)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (number) DO UPDATE SET
            status = EXCLUDED.status,
            due_date = EXCLUDED.due_date
        RETURNING id
    `
	var rfqID int64
	if err := db.QueryRowContext(ctx, rfqQuery,
		"RFQ-2026-014", "Steel Rod 12mm, 5T quarterly", "Quarterly steel rod supply for plant 2",
		"evaluation", today.AddDate(0, 0, -10), today.AddDate(0, 0, 4),
	).Scan(&rfqID); err != nil {
		return fmt.Errorf("rfq: %w", err)
	}

	type quoteSeed struct {
		vendor      string
		unitPrice   float64
		leadTime    int
		quality     float64
		performance float64
		compliance  string
	}
	quotes := []quoteSeed{
		{"V-ACME", 84.00, 7, 89, 86, "compliant"},
		{"V-BHAR", 79.50, 12, 68, 64, "compliant"},
		{"V-CRYO", 76.00, 9, 45, 42, "non-compliant"},
		{"V-EVER", 88.00, 5, 73, 71, "partial"},
	}
	quoteQuery := `
        INSERT INTO quotations (
            rfq_id, vendor_id, unit_price, lead_time_days,
            quality_score, performance_score, compliance, valid_until
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (rfq_id, vendor_id) DO UPDATE SET
            unit_price = EXCLUDED.unit_price,
            lead_time_days = EXCLUDED.lead_time_days,
            quality_score = EXCLUDED.quality_score,
            performance_score = EXCLUDED.performance_score,
            compliance = EXCLUDED.compliance
    `
	for _, q := range quotes {
		vendorID, ok := vendorIDs[q.vendor]
		if !ok {
			return fmt.Errorf("unknown vendor code %s in quote seed", q.vendor)
		}
		if _, err := db.ExecContext(ctx, quoteQuery,
			rfqID, vendorID, q.unitPrice, q.leadTime, q.quality, q.performance, q.compliance,
			today.AddDate(0, 1, 0),
		); err != nil {
			return fmt.Errorf("quotation for %s: %w", q.vendor, err)
		}
	}

	poQuery := `
        INSERT INTO purchase_orders (number, vendor_id, status, order_date, expected_date, total_amount)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (number) DO UPDATE SET
            status = EXCLUDED.status,
            expected_date = EXCLUDED.expected_date,
            updated_at = NOW()
    `
	type poSeed struct {
		number, vendor, status string
		orderedDaysAgo         int
		expectedInDays         int
		amount                 float64
	}
	orders := []poSeed{
		{"PO-2026-101", "V-ACME", "dispatched", 6, 2, 420000},
		{"PO-2026-102", "V-BHAR", "approved", 3, 9, 48000},
		{"PO-2026-103", "V-DELT", "delivered", 20, -5, 27000},
	}
	for _, po := range orders {
		vendorID, ok := vendorIDs[po.vendor]
		if !ok {
			return fmt.Errorf("unknown vendor code %s in po seed", po.vendor)
		}
		if _, err := db.ExecContext(ctx, poQuery,
			po.number, vendorID, po.status,
			today.AddDate(0, 0, -po.orderedDaysAgo), today.AddDate(0, 0, po.expectedInDays),
			po.amount,
		); err != nil {
			return fmt.Errorf("purchase order %s: %w", po.number, err)
		}
	}

	shipmentQuery := `
        INSERT INTO shipments (po_number, carrier, tracking_number, status, delayed, expected_at, delivered_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT DO NOTHING
    `
	delivered := today.AddDate(0, 0, -5)
	shipments := []struct {
		poNumber, carrier, tracking, status string
		delayed                             bool
		expectedInDays                      int
		deliveredAt                         *time.Time
	}{
		{"PO-2026-101", "BlueDart", "BD-99213", "in_transit", false, 2, nil},
		{"PO-2026-102", "Delhivery", "DL-48102", "pending", true, 9, nil},
		{"PO-2026-103", "SafeXpress", "SX-10448", "delivered", false, -5, &delivered},
	}
	for _, sh := range shipments {
		if _, err := db.ExecContext(ctx, shipmentQuery,
			sh.poNumber, sh.carrier, sh.tracking, sh.status, sh.delayed,
			today.AddDate(0, 0, sh.expectedInDays), sh.deliveredAt,
		); err != nil {
			return fmt.Errorf("shipment for %s: %w", sh.poNumber, err)
		}
	}

	log.Printf("Seeded sourcing data: 1 rfq, %d quotations, %d purchase orders, %d shipments",
		len(quotes), len(orders), len(shipments))
	return nil
}
