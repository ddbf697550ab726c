package dataset

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-advisor-api/internal/domain"
)

// Colunas obrigatórias do CSV de campanhas. Colunas extras são ignoradas.
const (
	ColumnPlatform     = "Platform"
	ColumnDeviceType   = "Device Type"
	ColumnAudienceType = "Audience Type"
	ColumnSpend        = "Spend ($)"
	ColumnConversions  = "Conversions"
)

var requiredColumns = []string{
	ColumnPlatform,
	ColumnDeviceType,
	ColumnAudienceType,
	ColumnSpend,
	ColumnConversions,
}

// ParseCSV lê um CSV de campanhas e valida a presença das colunas
// obrigatórias antes de converter qualquer linha. Uma coluna ausente é erro
// fatal para o lote inteiro; uma célula numérica inválida é reportada com a
// linha do arquivo em que aparece.
func ParseCSV(r io.Reader) ([]domain.CampaignRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, &ParseError{Err: ErrEmptyFile}
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV header")
	}

	columnIndex, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []domain.CampaignRecord
	line := 1 // O cabeçalho é a linha 1

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read CSV line %d", line)
		}

		record, err := parseRow(row, columnIndex, line)
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, &ParseError{Err: ErrEmptyFile}
	}

	return records, nil
}

// mapColumns resolve o índice de cada coluna obrigatória no cabeçalho
func mapColumns(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, column := range requiredColumns {
		if _, ok := index[column]; !ok {
			return nil, &ParseError{Err: ErrMissingColumn, Column: column}
		}
	}

	return index, nil
}

// parseRow converte uma linha do CSV em um CampaignRecord
func parseRow(row []string, columnIndex map[string]int, line int) (domain.CampaignRecord, error) {
	cell := func(column string) string {
		idx := columnIndex[column]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	spend, err := strconv.ParseFloat(cell(ColumnSpend), 64)
	if err != nil {
		return domain.CampaignRecord{}, &ParseError{Err: ErrInvalidValue, Column: ColumnSpend, Line: line}
	}

	conversions, err := strconv.Atoi(cell(ColumnConversions))
	if err != nil {
		return domain.CampaignRecord{}, &ParseError{Err: ErrInvalidValue, Column: ColumnConversions, Line: line}
	}

	return domain.CampaignRecord{
		Platform:     cell(ColumnPlatform),
		DeviceType:   cell(ColumnDeviceType),
		AudienceType: cell(ColumnAudienceType),
		Spend:        spend,
		Conversions:  conversions,
	}, nil
}
