package generator

import (
	// Go Internal Packages
	"encoding/json"
	"regexp"
	"slices"
	"strconv"
	"testing"
	"time"

	// Local Packages
	models "tx-simulator/models"

	// External Packages
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

const draws = 2000

var twoDigits = regexp.MustCompile(`^\d+\.\d{2}$`)

func TestGenerateFieldsWithinTables(t *testing.T) {
	g := NewTxGenerator(DefaultConfig, WithSeed(7))
	lo, hi := models.NewAmount(DefaultConfig.AmountMin), models.NewAmount(DefaultConfig.AmountMax)

	for i := 0; i < draws; i++ {
		tx := g.Generate()

		require.False(t, tx.Amount.LessThan(lo.Decimal), "amount %s below range", tx.Amount)
		require.False(t, tx.Amount.GreaterThan(hi.Decimal), "amount %s above range", tx.Amount)
		b, err := json.Marshal(tx.Amount)
		require.NoError(t, err)
		require.Regexp(t, twoDigits, string(b))

		require.Contains(t, Currencies, tx.Currency)
		require.Contains(t, PSPs, tx.PSP)
		require.Contains(t, Merchants, models.Merchant{Name: tx.MerchantName, Category: tx.MerchantCategory})

		require.GreaterOrEqual(t, tx.Latitude, -90.0)
		require.LessOrEqual(t, tx.Latitude, 90.0)
		require.GreaterOrEqual(t, tx.Longitude, -180.0)
		require.LessOrEqual(t, tx.Longitude, 180.0)
		require.NotEmpty(t, tx.Country)
	}
}

func TestGenerateIdentifiers(t *testing.T) {
	g := NewTxGenerator(DefaultConfig)
	seen := make(map[string]struct{}, draws)

	for i := 0; i < draws; i++ {
		tx := g.Generate()

		_, err := uuid.Parse(tx.TxID)
		require.NoError(t, err)
		seen[tx.TxID] = struct{}{}

		_, err = time.Parse(models.TimestampLayout, tx.Timestamp)
		require.NoError(t, err)

		require.Regexp(t, `^CUST-\d{4}$`, tx.CustomerID)
		n, err := strconv.Atoi(tx.CustomerID[len("CUST-"):])
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, DefaultConfig.CustomerIDMin)
		require.LessOrEqual(t, n, DefaultConfig.CustomerIDMax)
	}
	require.Len(t, seen, draws)
}

func TestGeneratePaymentTypeIncludesMissing(t *testing.T) {
	g := NewTxGenerator(DefaultConfig, WithSeed(11))
	counts := make(map[string]int)

	for i := 0; i < draws; i++ {
		tx := g.Generate()
		key := "<nil>"
		if tx.PaymentType != nil {
			key = *tx.PaymentType
		}
		counts[key]++
	}

	require.Len(t, counts, len(PaymentTypes))
	// uniform over four options: each share should sit well inside (10%, 40%)
	for key, n := range counts {
		require.Greater(t, n, draws/10, key)
		require.Less(t, n, draws*4/10, key)
	}
}

func TestGenerateReproducibleWithSeed(t *testing.T) {
	names := func() []string {
		g := NewTxGenerator(DefaultConfig, WithSeed(42))
		out := make([]string, 50)
		for i := range out {
			out[i] = g.Generate().MerchantName
		}
		return out
	}

	first, second := names(), names()
	require.Equal(t, first, second)
	for _, name := range first {
		require.True(t, slices.ContainsFunc(Merchants, func(m models.Merchant) bool { return m.Name == name }), name)
	}
}

func TestGenerateClockAndIDSource(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	fixed := time.Date(2024, 3, 9, 14, 5, 6, 789000000, loc)
	g := NewTxGenerator(DefaultConfig,
		WithClock(func() time.Time { return fixed }),
		WithIDSource(func() string { return "fixed-id" }),
	)

	tx := g.Generate()
	require.Equal(t, "fixed-id", tx.TxID)
	require.Equal(t, "2024-03-09T12:05:06.789000Z", tx.Timestamp)
}

func TestGenerateNarrowBounds(t *testing.T) {
	conf := Config{CustomerIDMin: 5000, CustomerIDMax: 5000, AmountMin: 99.99, AmountMax: 99.99}
	g := NewTxGenerator(conf, WithSeed(3))

	for i := 0; i < 20; i++ {
		tx := g.Generate()
		require.Equal(t, "CUST-5000", tx.CustomerID)
		require.Equal(t, "99.99", tx.Amount.String())
	}
}
