// Package seed loads quotation and AWB fixtures for the in-memory storage driver.
package seed

import (
	"fmt"
	"os"
	"strings"

	"freight_opcost/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type File struct {
	Quotations []Quotation `yaml:"quotations"`
	AWBs       []AWB       `yaml:"awbs"`
}

type CargoItem struct {
	Description     string          `yaml:"description"`
	Quantity        int             `yaml:"quantity"`
	Weight          decimal.Decimal `yaml:"weight"`
	OriginCost      decimal.Decimal `yaml:"origin_cost"`
	FreightCost     decimal.Decimal `yaml:"freight_cost"`
	DestinationCost decimal.Decimal `yaml:"destination_cost"`
	AdditionalCost  decimal.Decimal `yaml:"additional_cost"`
}

type Quotation struct {
	ID              string          `yaml:"id"`
	QuotationNumber string          `yaml:"quotation_number"`
	CustomerName    string          `yaml:"customer_name"`
	CustomerID      string          `yaml:"customer_id"`
	Origin          string          `yaml:"origin"`
	Destination     string          `yaml:"destination"`
	SellingPrice    decimal.Decimal `yaml:"selling_price"`
	Status          string          `yaml:"status"`
	CargoItems      []CargoItem     `yaml:"cargo_items"`
}

type AWB struct {
	ID                string          `yaml:"id"`
	AWBNumber         string          `yaml:"awb_number"`
	FreightCharge     decimal.Decimal `yaml:"freight_charge"`
	FuelSurcharge     decimal.Decimal `yaml:"fuel_surcharge"`
	SecuritySurcharge decimal.Decimal `yaml:"security_surcharge"`
	OtherCharges      decimal.Decimal `yaml:"other_charges"`
	TotalCharge       decimal.Decimal `yaml:"total_charge"`
	Weight            decimal.Decimal `yaml:"weight"`
	Status            string          `yaml:"status"`
}

// Load reads a seed file. An empty path yields an empty File.
func Load(path string) (File, error) {
	if strings.TrimSpace(path) == "" {
		return File{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("read seed: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parse seed yaml: %w", err)
	}
	for i, q := range f.Quotations {
		if strings.TrimSpace(q.ID) == "" {
			return File{}, fmt.Errorf("seed quotation #%d: id is required", i+1)
		}
	}
	for i, a := range f.AWBs {
		if strings.TrimSpace(a.ID) == "" {
			return File{}, fmt.Errorf("seed awb #%d: id is required", i+1)
		}
	}
	return f, nil
}

func (f File) QuotationEntities() []entities.Quotation {
	out := make([]entities.Quotation, 0, len(f.Quotations))
	for _, q := range f.Quotations {
		cargo := make([]entities.CargoItem, 0, len(q.CargoItems))
		for _, c := range q.CargoItems {
			cargo = append(cargo, entities.CargoItem(c))
		}
		status := strings.ToLower(strings.TrimSpace(q.Status))
		if status == "" {
			status = entities.QuotationStatusApproved
		}
		out = append(out, entities.Quotation{
			ID:              q.ID,
			QuotationNumber: q.QuotationNumber,
			CustomerName:    q.CustomerName,
			CustomerID:      q.CustomerID,
			Origin:          q.Origin,
			Destination:     q.Destination,
			SellingPrice:    q.SellingPrice,
			Status:          status,
			CargoItems:      cargo,
		})
	}
	return out
}

func (f File) AWBEntities() []entities.AWBChargeRecord {
	out := make([]entities.AWBChargeRecord, 0, len(f.AWBs))
	for _, a := range f.AWBs {
		out = append(out, entities.AWBChargeRecord{
			ID:                a.ID,
			AWBNumber:         a.AWBNumber,
			FreightCharge:     a.FreightCharge,
			FuelSurcharge:     a.FuelSurcharge,
			SecuritySurcharge: a.SecuritySurcharge,
			OtherCharges:      a.OtherCharges,
			TotalCharge:       a.TotalCharge,
			Weight:            a.Weight,
			Status:            entities.AWBStatus(a.Status),
		})
	}
	return out
}
