package export

import (
	"context"

	"github.com/jcamargo/bascula-api/internal/application/dto"
	"github.com/jcamargo/bascula-api/internal/domain/repository"
)

// ExcelFilename nombre de descarga del listado.
const ExcelFilename = "weighings.xlsx"

// ExcelUseCase exporta el listado de pesajes (mismos filtros que el listado,
// sin paginar, orden created_at descendente) como libro xlsx.
type ExcelUseCase struct {
	repo    repository.WeighingRepository
	builder SpreadsheetBuilder
}

// NewExcelUseCase construye el caso de uso.
func NewExcelUseCase(repo repository.WeighingRepository, builder SpreadsheetBuilder) *ExcelUseCase {
	return &ExcelUseCase{repo: repo, builder: builder}
}

// Export consulta los pesajes del filtro y delega la construcción del libro.
// Retorna los bytes del artefacto y el nombre de archivo sugerido.
func (uc *ExcelUseCase) Export(ctx context.Context, in dto.ListWeighingsRequest) ([]byte, string, error) {
	weighings, err := uc.repo.List(ctx, in.Filter(), nil)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.builder.BuildWeighingList(weighings)
	if err != nil {
		return nil, "", err
	}
	return data, ExcelFilename, nil
}
