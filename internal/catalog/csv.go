package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"dewaterRecommender/domain"
)

// Columns the supplier dataset must carry. Extra columns are ignored.
var requiredColumns = []string{
	"product_type",
	"supplier_name",
	"country",
	"quality_rating",
	"price_usd",
	"delivery_days",
	"payment_terms_days",
	"shipping_included",
	"express_available",
	"incoterms",
}

// LoadCSV reads the supplier dataset from a flat file. Any schema or
// cell-level problem fails the whole load: a half-read catalog must
// never serve traffic.
func LoadCSV(path string) ([]domain.SupplierOffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog dataset: %w", err)
	}
	defer f.Close()

	return parseCSV(f)
}

func parseCSV(r io.Reader) ([]domain.SupplierOffer, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("catalog dataset is missing column %q", name)
		}
	}

	var offers []domain.SupplierOffer
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}
		line++

		offer, err := parseRow(record, col)
		if err != nil {
			return nil, fmt.Errorf("catalog row %d: %w", line, err)
		}
		offers = append(offers, offer)
	}

	if len(offers) == 0 {
		return nil, fmt.Errorf("catalog dataset has no rows")
	}

	return offers, nil
}

func parseRow(record []string, col map[string]int) (domain.SupplierOffer, error) {
	get := func(name string) string { return record[col[name]] }

	quality, err := strconv.ParseFloat(get("quality_rating"), 64)
	if err != nil {
		return domain.SupplierOffer{}, fmt.Errorf("invalid quality_rating %q", get("quality_rating"))
	}

	price, err := strconv.ParseFloat(get("price_usd"), 64)
	if err != nil {
		return domain.SupplierOffer{}, fmt.Errorf("invalid price_usd %q", get("price_usd"))
	}

	deliveryDays, err := strconv.Atoi(get("delivery_days"))
	if err != nil {
		return domain.SupplierOffer{}, fmt.Errorf("invalid delivery_days %q", get("delivery_days"))
	}

	paymentDays, err := strconv.Atoi(get("payment_terms_days"))
	if err != nil {
		return domain.SupplierOffer{}, fmt.Errorf("invalid payment_terms_days %q", get("payment_terms_days"))
	}

	shipping, err := strconv.ParseBool(get("shipping_included"))
	if err != nil {
		return domain.SupplierOffer{}, fmt.Errorf("invalid shipping_included %q", get("shipping_included"))
	}

	express, err := strconv.ParseBool(get("express_available"))
	if err != nil {
		return domain.SupplierOffer{}, fmt.Errorf("invalid express_available %q", get("express_available"))
	}

	return domain.SupplierOffer{
		ProductType:      get("product_type"),
		SupplierName:     get("supplier_name"),
		Country:          get("country"),
		QualityRating:    quality,
		PriceUSD:         price,
		DeliveryDays:     deliveryDays,
		PaymentTermsDays: paymentDays,
		ShippingIncluded: shipping,
		ExpressAvailable: express,
		Incoterms:        get("incoterms"),
	}, nil
}
