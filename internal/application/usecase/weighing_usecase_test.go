package usecase_test

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcamargo/bascula-api/internal/application/dto"
	"github.com/jcamargo/bascula-api/internal/application/usecase"
	"github.com/jcamargo/bascula-api/internal/domain"
	"github.com/jcamargo/bascula-api/internal/domain/entity"
	"github.com/jcamargo/bascula-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake en memoria del repositorio de pesajes. Replica el contrato del puerto:
// List ordena por created_at descendente, Update/Delete de un ID inexistente
// retornan domain.ErrNotFound, GetByID de un ID inexistente retorna nil, nil.
// ──────────────────────────────────────────────────────────────────────────────

type fakeWeighingRepo struct {
	items map[string]*entity.Weighing
	// nombres resueltos por "JOIN" simulado: supplier_id -> nombre
	supplierNames map[string]string
}

func newFakeWeighingRepo() *fakeWeighingRepo {
	return &fakeWeighingRepo{
		items:         make(map[string]*entity.Weighing),
		supplierNames: make(map[string]string),
	}
}

func (r *fakeWeighingRepo) Create(_ context.Context, w *entity.Weighing) error {
	cp := *w
	r.items[w.ID] = &cp
	return nil
}

func (r *fakeWeighingRepo) GetByID(_ context.Context, id string) (*entity.Weighing, error) {
	w, ok := r.items[id]
	if !ok {
		return nil, nil
	}
	return r.resolve(w), nil
}

func (r *fakeWeighingRepo) List(_ context.Context, f repository.WeighingFilter, p *repository.Page) ([]*entity.Weighing, error) {
	var out []*entity.Weighing
	for _, w := range r.items {
		if r.matches(w, f) {
			out = append(out, r.resolve(w))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if p != nil {
		if p.Offset >= len(out) {
			return nil, nil
		}
		out = out[p.Offset:]
		if p.Limit < len(out) {
			out = out[:p.Limit]
		}
	}
	return out, nil
}

func (r *fakeWeighingRepo) Count(_ context.Context, f repository.WeighingFilter) (int, error) {
	n := 0
	for _, w := range r.items {
		if r.matches(w, f) {
			n++
		}
	}
	return n, nil
}

func (r *fakeWeighingRepo) Update(_ context.Context, w *entity.Weighing) error {
	if _, ok := r.items[w.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *w
	r.items[w.ID] = &cp
	return nil
}

func (r *fakeWeighingRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeWeighingRepo) matches(w *entity.Weighing, f repository.WeighingFilter) bool {
	if f.From != nil && w.CreatedAt.Before(*f.From) {
		return false
	}
	if f.To != nil && w.CreatedAt.After(*f.To) {
		return false
	}
	if f.SupplierID != "" && (w.SupplierID == nil || *w.SupplierID != f.SupplierID) {
		return false
	}
	if f.CarNumber != "" && !strings.Contains(strings.ToLower(w.CarNumber), strings.ToLower(f.CarNumber)) {
		return false
	}
	return true
}

func (r *fakeWeighingRepo) resolve(w *entity.Weighing) *entity.Weighing {
	cp := *w
	if cp.SupplierID != nil {
		if name, ok := r.supplierNames[*cp.SupplierID]; ok {
			n := name
			cp.SupplierName = &n
		}
	}
	return &cp
}

// dec construye un decimal desde texto; falla el test si el literal es inválido.
func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestWeighingCreate_DerivaTotales(t *testing.T) {
	repo := newFakeWeighingRepo()
	uc := usecase.NewWeighingUseCase(repo)

	resp, err := uc.Create(context.Background(), "op-1", dto.CreateWeighingRequest{
		CarNumber:   "ABC-123",
		GrossWeight: dec(t, "1250.500"),
		TareCount:   3,
		TareWeight:  dec(t, "12.250"),
	})
	require.NoError(t, err)

	assert.Equal(t, "ABC-123", resp.CarNumber)
	assert.True(t, dec(t, "36.750").Equal(resp.TareTotal), "tare_total = 3 × 12.250")
	assert.True(t, dec(t, "1213.750").Equal(resp.NetWeight), "net = 1250.500 − 36.750")
	assert.Equal(t, "op-1", resp.CreatedByID)
	assert.NotEmpty(t, resp.ID)
}

func TestWeighingCreate_NetoNegativoSePermite(t *testing.T) {
	repo := newFakeWeighingRepo()
	uc := usecase.NewWeighingUseCase(repo)

	// Tara total mayor que el bruto: el neto queda negativo, exacto.
	resp, err := uc.Create(context.Background(), "op-1", dto.CreateWeighingRequest{
		CarNumber:   "XYZ-9",
		GrossWeight: dec(t, "10"),
		TareCount:   5,
		TareWeight:  dec(t, "3"),
	})
	require.NoError(t, err)
	assert.True(t, dec(t, "-5").Equal(resp.NetWeight))
}

func TestWeighingCreate_ValidacionRechazaEntrada(t *testing.T) {
	repo := newFakeWeighingRepo()
	uc := usecase.NewWeighingUseCase(repo)

	_, err := uc.Create(context.Background(), "op-1", dto.CreateWeighingRequest{
		CarNumber:   "", // placa vacía
		GrossWeight: dec(t, "0"), // bruto no positivo
		TareCount:   -1,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ElementsMatch(t, []string{"carNumber", "grossWeight", "tareCount"}, verr.Fields)
	assert.Empty(t, repo.items, "nada debe persistirse cuando la validación falla")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update (parcial, merge y re-derivación)
// ──────────────────────────────────────────────────────────────────────────────

func TestWeighingUpdate_SoloTareCount_RederivaConCamposExistentes(t *testing.T) {
	repo := newFakeWeighingRepo()
	uc := usecase.NewWeighingUseCase(repo)

	created, err := uc.Create(context.Background(), "op-1", dto.CreateWeighingRequest{
		CarNumber:   "ABC-123",
		GrossWeight: dec(t, "1000"),
		TareCount:   2,
		TareWeight:  dec(t, "10.5"),
	})
	require.NoError(t, err)

	// Solo cambia tare_count: bruto y peso unitario se conservan
	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateWeighingRequest{
		TareCount: intPtr(4),
	})
	require.NoError(t, err)

	assert.Equal(t, 4, updated.TareCount)
	assert.True(t, dec(t, "1000").Equal(updated.GrossWeight), "el bruto no debe cambiar")
	assert.True(t, dec(t, "42").Equal(updated.TareTotal), "tare_total = 4 × 10.5")
	assert.True(t, dec(t, "958").Equal(updated.NetWeight), "net = 1000 − 42")
}

func TestWeighingUpdate_CreadorInmutable(t *testing.T) {
	repo := newFakeWeighingRepo()
	uc := usecase.NewWeighingUseCase(repo)

	created, err := uc.Create(context.Background(), "op-1", dto.CreateWeighingRequest{
		CarNumber:   "ABC-123",
		GrossWeight: dec(t, "500"),
	})
	require.NoError(t, err)

	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateWeighingRequest{
		CarNumber: strPtr("DEF-456"),
	})
	require.NoError(t, err)

	assert.Equal(t, "DEF-456", updated.CarNumber)
	assert.Equal(t, "op-1", updated.CreatedByID, "el creador nunca cambia en un update")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "created_at nunca cambia en un update")
}

func TestWeighingUpdate_ClearSupplier(t *testing.T) {
	repo := newFakeWeighingRepo()
	repo.supplierNames["sup-1"] = "Acme"
	uc := usecase.NewWeighingUseCase(repo)

	created, err := uc.Create(context.Background(), "op-1", dto.CreateWeighingRequest{
		CarNumber:   "ABC-123",
		SupplierID:  strPtr("sup-1"),
		GrossWeight: dec(t, "500"),
	})
	require.NoError(t, err)
	require.NotNil(t, created.SupplierName)
	assert.Equal(t, "Acme", *created.SupplierName)

	updated, err := uc.Update(context.Background(), created.ID, dto.UpdateWeighingRequest{
		ClearSupplier: true,
	})
	require.NoError(t, err)
	assert.Nil(t, updated.SupplierID)
	assert.Nil(t, updated.SupplierName)
}

func TestWeighingUpdate_MergeInvalido_NoPersiste(t *testing.T) {
	repo := newFakeWeighingRepo()
	uc := usecase.NewWeighingUseCase(repo)

	created, err := uc.Create(context.Background(), "op-1", dto.CreateWeighingRequest{
		CarNumber:   "ABC-123",
		GrossWeight: dec(t, "500"),
	})
	require.NoError(t, err)

	// El conjunto fusionado queda inválido: bruto en cero
	zero := decimal.Zero
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateWeighingRequest{
		GrossWeight: &zero,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// El registro almacenado conserva el valor previo
	stored, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, dec(t, "500").Equal(stored.GrossWeight))
}

func TestWeighingUpdate_IDInexistente_ErrNotFound(t *testing.T) {
	uc := usecase.NewWeighingUseCase(newFakeWeighingRepo())

	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateWeighingRequest{
		CarNumber: strPtr("ABC"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Delete / GetByID
// ──────────────────────────────────────────────────────────────────────────────

func TestWeighingDelete_IDInexistente_ErrNotFound(t *testing.T) {
	uc := usecase.NewWeighingUseCase(newFakeWeighingRepo())
	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWeighingGetByID_IDInexistente_ErrNotFound(t *testing.T) {
	uc := usecase.NewWeighingUseCase(newFakeWeighingRepo())
	_, err := uc.GetByID(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List (orden, paginación, total)
// ──────────────────────────────────────────────────────────────────────────────

// seedWeighing inserta directo en el fake con un created_at controlado.
func seedWeighing(t *testing.T, repo *fakeWeighingRepo, id, car string, createdAt time.Time) {
	t.Helper()
	err := repo.Create(context.Background(), &entity.Weighing{
		ID:          id,
		CarNumber:   car,
		GrossWeight: decimal.NewFromInt(100),
		TareTotal:   decimal.Zero,
		NetWeight:   decimal.NewFromInt(100),
		CreatedByID: "op-1",
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	})
	require.NoError(t, err)
}

func TestWeighingList_OrdenDescendentePorFecha(t *testing.T) {
	repo := newFakeWeighingRepo()
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	seedWeighing(t, repo, "w1", "CAR-1", base)
	seedWeighing(t, repo, "w2", "CAR-2", base.Add(time.Hour))
	seedWeighing(t, repo, "w3", "CAR-3", base.Add(2*time.Hour))

	uc := usecase.NewWeighingUseCase(repo)
	resp, err := uc.List(context.Background(), dto.ListWeighingsRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Items, 3)
	assert.Equal(t, "w3", resp.Items[0].ID, "el más reciente primero")
	assert.Equal(t, "w2", resp.Items[1].ID)
	assert.Equal(t, "w1", resp.Items[2].ID)
	assert.Equal(t, 3, resp.Total)
}

func TestWeighingList_PaginacionYTotalSinPaginar(t *testing.T) {
	repo := newFakeWeighingRepo()
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		seedWeighing(t, repo, "w"+string(rune('a'+i)), "CAR", base.Add(time.Duration(i)*time.Minute))
	}

	uc := usecase.NewWeighingUseCase(repo)
	resp, err := uc.List(context.Background(), dto.ListWeighingsRequest{
		PageRequest: dto.PageRequest{Page: 2, PageSize: 2},
	})
	require.NoError(t, err)

	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 5, resp.Total, "total cuenta todo el predicado, no la página")
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 2, resp.PageSize)
}

func TestWeighingList_FechaInvalidaSeIgnora(t *testing.T) {
	repo := newFakeWeighingRepo()
	seedWeighing(t, repo, "w1", "CAR-1", time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

	uc := usecase.NewWeighingUseCase(repo)
	// "no-es-fecha" no parsea: el filtro se ignora y el listado no restringe
	resp, err := uc.List(context.Background(), dto.ListWeighingsRequest{From: "no-es-fecha"})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 1)
}

func TestWeighingList_FiltroPorPlacaSubstring(t *testing.T) {
	repo := newFakeWeighingRepo()
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	seedWeighing(t, repo, "w1", "ABC-123", base)
	seedWeighing(t, repo, "w2", "XYZ-777", base.Add(time.Minute))

	uc := usecase.NewWeighingUseCase(repo)
	resp, err := uc.List(context.Background(), dto.ListWeighingsRequest{CarNumber: "abc"})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, "w1", resp.Items[0].ID, "el substring es insensible a mayúsculas")
}
