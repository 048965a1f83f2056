package domain

// CREATE TABLE public.supplier_offers (
//     id                  BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_type        TEXT,
//     supplier_name       TEXT,
//     country             TEXT,
//     quality_rating      NUMERIC,
//     price_usd           NUMERIC,
//     delivery_days       INTEGER,
//     payment_terms_days  INTEGER,
//     shipping_included   BOOLEAN,
//     express_available   BOOLEAN,
//     incoterms           TEXT
// );

// SupplierOffer is one supplier's terms for a single product type.
// Rows are loaded once at startup and never mutated afterwards.
type SupplierOffer struct {
	ID               uint64  `gorm:"primaryKey;autoIncrement" json:"-"`
	ProductType      string  `gorm:"column:product_type;type:text" json:"product_type"`
	SupplierName     string  `gorm:"column:supplier_name;type:text" json:"supplier_name"`
	Country          string  `gorm:"column:country;type:text" json:"country"`
	QualityRating    float64 `gorm:"column:quality_rating;type:numeric" json:"quality_rating"`
	PriceUSD         float64 `gorm:"column:price_usd;type:numeric" json:"price_usd"`
	DeliveryDays     int     `gorm:"column:delivery_days" json:"delivery_days"`
	PaymentTermsDays int     `gorm:"column:payment_terms_days" json:"payment_terms_days"`
	ShippingIncluded bool    `gorm:"column:shipping_included" json:"shipping_included"`
	ExpressAvailable bool    `gorm:"column:express_available" json:"express_available"`
	Incoterms        string  `gorm:"column:incoterms;type:text" json:"incoterms"`
}

func (SupplierOffer) TableName() string {
	return "supplier_offers"
}

// ProductCatalog groups the known product types by category.
type ProductCatalog struct {
	Filtration []string `json:"filtration"`
	Sensors    []string `json:"sensors"`
}
