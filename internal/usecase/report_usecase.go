package usecase

import (
	"bytes"
	"context"
	"sort"

	"gestion_oficina/internal/domain/entities"
	"gestion_oficina/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const (
	reportSheet     = "Sheet1"
	reportDateStyle = "2006-01-02"
)

// IReportUseCase renders xlsx workbooks.
type IReportUseCase interface {
	VencimientosWorkbook(ctx context.Context, horizonDays int) ([]byte, error)
	DeudasWorkbook(ctx context.Context) ([]byte, error)
}

type ReportUseCase struct {
	triage   IDueDateTriageUseCase
	clientes interfaces.IClienteRepository
	trabajos interfaces.ITrabajoRepository
	logger   logrus.FieldLogger
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(triage IDueDateTriageUseCase, clientes interfaces.IClienteRepository, trabajos interfaces.ITrabajoRepository, logger logrus.FieldLogger) *ReportUseCase {
	return &ReportUseCase{triage: triage, clientes: clientes, trabajos: trabajos, logger: logger}
}

func (u *ReportUseCase) VencimientosWorkbook(ctx context.Context, horizonDays int) ([]byte, error) {
	resumen, err := u.triage.Vencimientos(ctx, horizonDays)
	if err != nil {
		return nil, err
	}
	rows := make([][]interface{}, 0, len(resumen.Vencimientos))
	for _, v := range resumen.Vencimientos {
		rows = append(rows, []interface{}{
			v.Titulo,
			string(v.Tipo),
			v.FechaVencimiento.Format(reportDateStyle),
			v.DiasRestantes,
			v.Estado,
			string(v.Urgencia),
		})
	}
	return writeWorkbook([]string{"Titulo", "Tipo", "Vencimiento", "DiasRestantes", "Estado", "Urgencia"}, rows)
}

// DeudasWorkbook lists clientes with a non-zero debt, largest first.
func (u *ReportUseCase) DeudasWorkbook(ctx context.Context) ([]byte, error) {
	clientes, err := u.clientes.List(ctx)
	if err != nil {
		return nil, err
	}
	trabajos, err := u.trabajos.List(ctx)
	if err != nil {
		return nil, err
	}
	abiertos := map[string]int{}
	for _, t := range trabajos {
		if t.CountsTowardsDebt() && !t.SaldoPendiente.IsZero() {
			abiertos[t.ClienteID]++
		}
	}

	deudores := make([]entities.Cliente, 0, len(clientes))
	for _, c := range clientes {
		if !c.DeudaTotalActual.IsZero() {
			deudores = append(deudores, c)
		}
	}
	sort.SliceStable(deudores, func(i, j int) bool {
		if c := deudores[i].DeudaTotalActual.Cmp(deudores[j].DeudaTotalActual); c != 0 {
			return c > 0
		}
		return deudores[i].Nombre < deudores[j].Nombre
	})

	rows := make([][]interface{}, 0, len(deudores))
	for _, c := range deudores {
		rows = append(rows, []interface{}{
			c.Nombre,
			c.Identificacion,
			c.Telefono,
			c.Email,
			abiertos[c.ID],
			c.DeudaTotalActual.InexactFloat64(),
		})
	}
	return writeWorkbook([]string{"Cliente", "Identificacion", "Telefono", "Email", "TrabajosConSaldo", "Deuda"}, rows)
}

func writeWorkbook(headings []string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for col, h := range headings {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(reportSheet, cell, h); err != nil {
			return nil, err
		}
	}
	for r, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(reportSheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
