// Package report writes the flattened lineage table to CSV, JSON, and a
// self-contained HTML dashboard.
package report

import (
	"encoding/csv"
	"encoding/json"
	"os"

	"github.com/luckydata/govlens/pkg/lineage"
)

var csvHeader = []string{
	"AssetID",
	"AssetName",
	"AssetNameEn",
	"AssetForm",
	"AssetCategory",
	"SourceOrgID",
	"SourceTableID",
	"SourceTableName",
	"SourceTableComment",
	"SourceSystem",
	"UpdateFrequency",
	"ServiceCode",
	"ServiceName",
	"ServiceType",
	"CustomerName",
	"CustomerFullName",
	"CustomerType",
}

// WriteCSV writes the records with the display transforms the console
// table applies: derived service CR codes and "-" placeholders for
// blank columns.
func WriteCSV(records []lineage.FlatRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range records {
		row := []string{
			r.AssetID,
			r.AssetName,
			r.AssetNameEn,
			r.AssetForm,
			r.AssetCategory,
			orDash(r.SourceOrgID),
			orDash(r.SourceTableID),
			orDash(r.SourceTableName),
			orDash(r.SourceTableComment),
			orDash(r.SourceSystem),
			orDash(r.UpdateFrequency),
			serviceCode(r.ServiceID),
			orDash(r.ServiceName),
			orDash(r.ServiceType),
			orDash(r.CustomerName),
			orDash(r.CustomerFullName),
			orDash(r.CustomerType),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// WriteJSON writes the raw records without display transforms.
func WriteJSON(records []lineage.FlatRecord, path string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func serviceCode(serviceID string) string {
	if serviceID == "" {
		return "-"
	}
	return lineage.ServiceCode(serviceID)
}
