package inventory

import (
	"context"

	"github.com/jhoicas/stockboard-api/internal/application/dto"
)

// DistributionReportGenerator genera la representación imprimible (PDF) del
// análisis de distribución. La implementación vive en infraestructura.
type DistributionReportGenerator interface {
	GenerateDistributionPDF(ctx context.Context, analysis *dto.DistributionResponse) ([]byte, error)
}
