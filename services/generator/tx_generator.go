package generator

import (
	// Go Internal Packages
	"fmt"
	"time"

	// Local Packages
	models "tx-simulator/models"

	// External Packages
	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Reference tables the generator draws from. PSPs deliberately carries casing variants and
// PaymentTypes a nil entry so downstream consumers see dirty and missing values.
var (
	Currencies = []string{"USD", "EUR", "GBP"}

	PSPs = []string{"Stripe", "stripe", "Adyen", "ADYEN", "PayPal", "paypal", "Square"}

	PaymentTypes = []*string{ptr("credit_card"), ptr("debit_card"), ptr("digital_wallet"), nil}

	Merchants = []models.Merchant{
		{Name: "Starbucks", Category: "Food & Beverage"},
		{Name: "Amazon", Category: "E-commerce"},
		{Name: "Apple Store", Category: "Electronics"},
		{Name: "Shell", Category: "Gas Station"},
		{Name: "Walmart", Category: "Retail"},
		{Name: "Steam", Category: "Gaming"},
		{Name: "Uber", Category: "Transportation"},
	}
)

type Config struct {
	CustomerIDMin int
	CustomerIDMax int
	AmountMin     float64
	AmountMax     float64
}

var DefaultConfig = Config{
	CustomerIDMin: 1000,
	CustomerIDMax: 9999,
	AmountMin:     10.00,
	AmountMax:     15000.00,
}

type Option func(*TxGenerator)

// WithSeed fixes the fake-data source. Zero means a random seed.
func WithSeed(seed uint64) Option {
	return func(g *TxGenerator) { g.seed = seed }
}

func WithClock(now func() time.Time) Option {
	return func(g *TxGenerator) { g.now = now }
}

func WithIDSource(newID func() string) Option {
	return func(g *TxGenerator) { g.newID = newID }
}

// TxGenerator fabricates transactions. It is not safe for concurrent use.
type TxGenerator struct {
	conf  Config
	seed  uint64
	faker *gofakeit.Faker
	now   func() time.Time
	newID func() string
}

func NewTxGenerator(conf Config, opts ...Option) *TxGenerator {
	g := &TxGenerator{conf: conf, now: time.Now, newID: uuid.NewString}
	for _, opt := range opts {
		opt(g)
	}
	g.faker = gofakeit.New(g.seed)
	return g
}

// Generate returns a fresh transaction. Every field is drawn independently except the
// merchant name and category, which always come from the same table row.
func (g *TxGenerator) Generate() models.Transaction {
	merchant := Merchants[g.pick(len(Merchants))]

	return models.Transaction{
		TxID:             g.newID(),
		Timestamp:        g.now().UTC().Format(models.TimestampLayout),
		CustomerID:       fmt.Sprintf("CUST-%d", g.faker.IntRange(g.conf.CustomerIDMin, g.conf.CustomerIDMax)),
		Amount:           g.amount(),
		Currency:         Currencies[g.pick(len(Currencies))],
		Latitude:         g.faker.Latitude(),
		Longitude:        g.faker.Longitude(),
		PSP:              PSPs[g.pick(len(PSPs))],
		PaymentType:      PaymentTypes[g.pick(len(PaymentTypes))],
		MerchantName:     merchant.Name,
		MerchantCategory: merchant.Category,
		Country:          g.faker.CountryAbr(),
	}
}

// amount rounds to cents and clamps, so rounding never leaves the configured range.
func (g *TxGenerator) amount() models.Amount {
	a := models.NewAmount(g.faker.Float64Range(g.conf.AmountMin, g.conf.AmountMax))
	lo, hi := models.NewAmount(g.conf.AmountMin), models.NewAmount(g.conf.AmountMax)
	if a.LessThan(lo.Decimal) {
		return lo
	}
	if a.GreaterThan(hi.Decimal) {
		return hi
	}
	return a
}

func (g *TxGenerator) pick(n int) int {
	return g.faker.IntRange(0, n-1)
}

func ptr(s string) *string {
	return &s
}
