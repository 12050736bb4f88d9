package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jcamargo/bascula-api/internal/application/dto"
	"github.com/jcamargo/bascula-api/internal/domain"
	"github.com/jcamargo/bascula-api/internal/domain/entity"
	"github.com/jcamargo/bascula-api/internal/domain/repository"
	"github.com/jcamargo/bascula-api/internal/domain/weighing"
)

// WeighingUseCase casos de uso CRUD para pesajes. Los derivados TareTotal y
// NetWeight se recalculan siempre desde el conjunto de campos fusionado;
// nunca se persiste un registro que no pase la validación del modelo.
type WeighingUseCase struct {
	repo repository.WeighingRepository
}

// NewWeighingUseCase construye el caso de uso.
func NewWeighingUseCase(repo repository.WeighingRepository) *WeighingUseCase {
	return &WeighingUseCase{repo: repo}
}

// Create registra un pesaje. Creador y timestamp quedan fijos aquí y son
// inmutables después. Un supplier_id que no existe produce ErrSupplierNotFound.
func (uc *WeighingUseCase) Create(ctx context.Context, createdByID string, in dto.CreateWeighingRequest) (*dto.WeighingResponse, error) {
	if err := weighing.Validate(in.CarNumber, in.GrossWeight, in.TareCount, in.TareWeight, in.PhotoURL, in.Note); err != nil {
		return nil, err
	}
	tareTotal, netWeight := weighing.DeriveTotals(in.GrossWeight, in.TareCount, in.TareWeight)

	now := time.Now()
	w := &entity.Weighing{
		ID:          uuid.New().String(),
		CarNumber:   in.CarNumber,
		SupplierID:  in.SupplierID,
		GrossWeight: in.GrossWeight,
		TareCount:   in.TareCount,
		TareWeight:  in.TareWeight,
		TareTotal:   tareTotal,
		NetWeight:   netWeight,
		PhotoURL:    in.PhotoURL,
		Note:        in.Note,
		CreatedByID: createdByID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, w); err != nil {
		return nil, err
	}
	// Releer para resolver nombre de proveedor y email del operador (JOIN)
	created, err := uc.repo.GetByID(ctx, w.ID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, domain.ErrNotFound
	}
	return toWeighingResponse(created), nil
}

// GetByID obtiene un pesaje resuelto; ErrNotFound si no existe.
func (uc *WeighingUseCase) GetByID(ctx context.Context, id string) (*dto.WeighingResponse, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}
	return toWeighingResponse(w), nil
}

// List lista pesajes filtrados y paginados, orden created_at descendente,
// más el total sin paginar sobre el mismo predicado.
func (uc *WeighingUseCase) List(ctx context.Context, in dto.ListWeighingsRequest) (*dto.WeighingListResponse, error) {
	in.Normalize()
	f := in.Filter()

	items, err := uc.repo.List(ctx, f, &repository.Page{Limit: in.PageSize, Offset: in.Offset()})
	if err != nil {
		return nil, err
	}
	total, err := uc.repo.Count(ctx, f)
	if err != nil {
		return nil, err
	}

	out := make([]dto.WeighingResponse, 0, len(items))
	for _, w := range items {
		out = append(out, *toWeighingResponse(w))
	}
	return &dto.WeighingListResponse{
		Items:    out,
		Total:    total,
		Page:     in.Page,
		PageSize: in.PageSize,
	}, nil
}

// Update aplica una actualización parcial: fusiona los campos suministrados
// sobre los existentes, re-valida y re-deriva los totales del conjunto
// completo. Un registro desaparecido entre lectura y escritura sale como
// ErrNotFound del repositorio; jamás se sobreescribe en silencio.
func (uc *WeighingUseCase) Update(ctx context.Context, id string, in dto.UpdateWeighingRequest) (*dto.WeighingResponse, error) {
	w, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, domain.ErrNotFound
	}

	if in.CarNumber != nil {
		w.CarNumber = *in.CarNumber
	}
	if in.ClearSupplier {
		w.SupplierID = nil
	} else if in.SupplierID != nil {
		w.SupplierID = in.SupplierID
	}
	if in.GrossWeight != nil {
		w.GrossWeight = *in.GrossWeight
	}
	if in.TareCount != nil {
		w.TareCount = *in.TareCount
	}
	if in.TareWeight != nil {
		w.TareWeight = *in.TareWeight
	}
	if in.PhotoURL != nil {
		w.PhotoURL = in.PhotoURL
	}
	if in.Note != nil {
		w.Note = in.Note
	}

	if err := weighing.Validate(w.CarNumber, w.GrossWeight, w.TareCount, w.TareWeight, w.PhotoURL, w.Note); err != nil {
		return nil, err
	}
	w.TareTotal, w.NetWeight = weighing.DeriveTotals(w.GrossWeight, w.TareCount, w.TareWeight)
	w.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, w); err != nil {
		return nil, err
	}
	updated, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	return toWeighingResponse(updated), nil
}

// Delete elimina definitivamente un pesaje (sin tombstones).
// ErrNotFound si el ID no existe.
func (uc *WeighingUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toWeighingResponse(w *entity.Weighing) *dto.WeighingResponse {
	if w == nil {
		return nil
	}
	return &dto.WeighingResponse{
		ID:            w.ID,
		CarNumber:     w.CarNumber,
		SupplierID:    w.SupplierID,
		SupplierName:  w.SupplierName,
		GrossWeight:   w.GrossWeight,
		TareCount:     w.TareCount,
		TareWeight:    w.TareWeight,
		TareTotal:     w.TareTotal,
		NetWeight:     w.NetWeight,
		PhotoURL:      w.PhotoURL,
		Note:          w.Note,
		CreatedByID:   w.CreatedByID,
		OperatorEmail: w.CreatedByEmail,
		CreatedAt:     w.CreatedAt,
		UpdatedAt:     w.UpdatedAt,
	}
}
