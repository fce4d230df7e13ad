package inventory

import (
	"context"
	"fmt"
	"time"
)

// ReportUseCase genera el reporte PDF del análisis de distribución. Reusa el
// caso de uso de distribución para que el PDF y el JSON muestren exactamente
// el mismo análisis bajo los mismos filtros.
type ReportUseCase struct {
	distribution *DistributionUseCase
	generator    DistributionReportGenerator
}

// NewReportUseCase construye el caso de uso inyectando sus dependencias.
func NewReportUseCase(distribution *DistributionUseCase, generator DistributionReportGenerator) *ReportUseCase {
	return &ReportUseCase{distribution: distribution, generator: generator}
}

// DownloadDistributionPDF ejecuta el análisis con los filtros dados y lo
// vuelca a PDF. Retorna los bytes y un nombre de archivo con fecha.
func (uc *ReportUseCase) DownloadDistributionPDF(ctx context.Context, raw RawDistributionParams) (pdfBytes []byte, filename string, err error) {
	analysis, err := uc.distribution.AnalyzeDistribution(ctx, raw)
	if err != nil {
		return nil, "", err
	}

	pdfBytes, err = uc.generator.GenerateDistributionPDF(ctx, analysis)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("distribucion_%s.pdf", time.Now().Format("2006-01-02"))
	return pdfBytes, filename, nil
}
