package weighing_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/bascula-api/internal/domain"
	"github.com/jcamargo/bascula-api/internal/domain/weighing"
)

// ──────────────────────────────────────────────────────────────────────────────
// DeriveTotals: derivación exacta
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestDeriveTotals_CasosConocidos(t *testing.T) {
	cases := []struct {
		gross     string
		tareCount int
		tareW     string
		wantTotal string
		wantNet   string
	}{
		{"1000", 0, "0", "0", "1000"},
		{"1000", 4, "2.5", "10", "990"},
		{"12500.750", 10, "12.345", "123.45", "12377.3"},
		{"0.3", 3, "0.1", "0.3", "0"},
		// La tara puede exceder el bruto: el neto negativo se preserva exacto
		{"5", 10, "1", "10", "-5"},
	}
	for _, c := range cases {
		total, net := weighing.DeriveTotals(dec(c.gross), c.tareCount, dec(c.tareW))
		assert.True(t, total.Equal(dec(c.wantTotal)),
			"tareTotal de %s/%d/%s: esperado %s, obtenido %s", c.gross, c.tareCount, c.tareW, c.wantTotal, total)
		assert.True(t, net.Equal(dec(c.wantNet)),
			"netWeight de %s/%d/%s: esperado %s, obtenido %s", c.gross, c.tareCount, c.tareW, c.wantNet, net)
	}
}

// TestDeriveTotals_SinDeriva suma los netos de 10.000 pesajes con decimales
// aleatorios de 3 cifras y verifica contra la suma entera equivalente en
// milésimas. Con float64 binario esta igualdad falla; con decimal exacto no.
func TestDeriveTotals_SinDeriva(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	sum := decimal.Zero
	var sumMils int64 // misma suma llevada en milésimas enteras
	for i := 0; i < 10_000; i++ {
		grossMils := int64(rng.Intn(50_000_000) + 1) // (0, 50000.000]
		tareWMils := int64(rng.Intn(100_000))        // [0, 100.000)
		count := rng.Intn(50)

		gross := decimal.New(grossMils, -3)
		tareW := decimal.New(tareWMils, -3)

		_, net := weighing.DeriveTotals(gross, count, tareW)
		sum = sum.Add(net)
		sumMils += grossMils - int64(count)*tareWMils
	}

	require.True(t, sum.Equal(decimal.New(sumMils, -3)),
		"la suma agregada debe ser exacta: esperado %s, obtenido %s", decimal.New(sumMils, -3), sum)
}

func TestDeriveTotals_EsPura(t *testing.T) {
	gross, tareW := dec("100.5"), dec("2.25")
	t1, n1 := weighing.DeriveTotals(gross, 7, tareW)
	t2, n2 := weighing.DeriveTotals(gross, 7, tareW)
	assert.True(t, t1.Equal(t2))
	assert.True(t, n1.Equal(n2))
	// Los argumentos no se mutan
	assert.True(t, gross.Equal(dec("100.5")))
	assert.True(t, tareW.Equal(dec("2.25")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Validate: invariantes de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_EntradaValida(t *testing.T) {
	photo := "https://cdn.example.com/foto.jpg"
	note := "entrega parcial"
	err := weighing.Validate("AB 1234 CD", dec("1500"), 4, dec("2.5"), &photo, &note)
	assert.NoError(t, err)
}

func TestValidate_CamposOfensores(t *testing.T) {
	badURL := "no-es-url"
	err := weighing.Validate("", dec("0"), -1, dec("-2"), &badURL, nil)
	require.Error(t, err)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr, "debe ser ValidationError estructurado")
	assert.ElementsMatch(t,
		[]string{"carNumber", "grossWeight", "tareCount", "tareWeight", "photoUrl"},
		verr.Fields)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestValidate_PlacaLimites(t *testing.T) {
	long := ""
	for i := 0; i < weighing.CarNumberMaxLen+1; i++ {
		long += "x"
	}
	err := weighing.Validate(long, dec("1"), 0, dec("0"), nil, nil)
	require.Error(t, err)

	exact := long[:weighing.CarNumberMaxLen]
	assert.NoError(t, weighing.Validate(exact, dec("1"), 0, dec("0"), nil, nil))
}

func TestValidate_NetoNegativoPermitido(t *testing.T) {
	// La política de rechazo del neto negativo es del llamador, no del modelo
	err := weighing.Validate("CAR-1", dec("5"), 10, dec("1"), nil, nil)
	assert.NoError(t, err)
	_, net := weighing.DeriveTotals(dec("5"), 10, dec("1"))
	assert.Equal(t, "-5", net.String())
}

func ExampleDeriveTotals() {
	total, net := weighing.DeriveTotals(decimal.NewFromInt(1000), 4, decimal.RequireFromString("2.5"))
	fmt.Println(total, net)
	// Output: 10 990
}
