package repositories

import (
	"testing"

	"freight-app/models"
)

func TestDocumentNumbersUsePerTypeSequences(t *testing.T) {
	db := newTestDB(t)
	repo := NewDocumentRepository(db)

	spm, err := repo.CreateSuratPerintahMuat("JOBORDER0001", 1)
	if err != nil {
		t.Fatalf("create spm failed: %v", err)
	}
	if spm != "SPM0001" {
		t.Fatalf("expected SPM0001, got %s", spm)
	}

	sj, err := repo.CreateSuratJalan(SuratJalanInput{
		JobOrderNumber: "JOBORDER0001",
		CargoName:      "Garment",
		CargoQuantity:  120,
		CargoUnit:      "Carton",
	}, 1)
	if err != nil {
		t.Fatalf("create surat jalan failed: %v", err)
	}
	if sj != "SJ0001" {
		t.Fatalf("expected SJ0001, got %s", sj)
	}

	bast, err := repo.CreateBast(sj, 1)
	if err != nil {
		t.Fatalf("create bast failed: %v", err)
	}
	if bast != "BAST0001" {
		t.Fatalf("expected BAST0001, got %s", bast)
	}

	insurance, err := repo.CreateInsurance("JOBORDER0001", 1500000, 1200000, 1)
	if err != nil {
		t.Fatalf("create insurance failed: %v", err)
	}
	if insurance != "INSURANCE0001" {
		t.Fatalf("expected INSURANCE0001, got %s", insurance)
	}

	spm2, _ := repo.CreateSuratPerintahMuat("JOBORDER0002", 1)
	if spm2 != "SPM0002" {
		t.Fatalf("expected SPM0002, got %s", spm2)
	}
}

func TestGetSuratJalanIncludesJobOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewDocumentRepository(db)

	jobOrderRepo := NewJobOrderRepository(db)
	input := JobOrderInput{
		InquiryDetailID: 1,
		Consignee:       "CONSIGNEE0001",
		TrackingRoute:   "RT01",
		TrackingVendor:  "VENDOR0001",
		Truck:           "B 9001 XYZ",
	}
	if err := jobOrderRepo.Save(input, false, "", 1); err != nil {
		t.Fatalf("save job order failed: %v", err)
	}

	number, err := repo.CreateSuratJalan(SuratJalanInput{
		JobOrderNumber: "JOBORDER0001",
		CargoName:      "Garment",
		CargoQuantity:  120,
		CargoUnit:      "Carton",
		Remarks:        "Fragile",
	}, 1)
	if err != nil {
		t.Fatalf("create surat jalan failed: %v", err)
	}

	suratJalan, err := repo.GetSuratJalan(number)
	if err != nil {
		t.Fatalf("get surat jalan failed: %v", err)
	}
	if suratJalan == nil {
		t.Fatal("expected surat jalan")
	}
	if suratJalan.CargoName != "Garment" || suratJalan.CargoQuantity != 120 {
		t.Fatalf("unexpected cargo %s/%d", suratJalan.CargoName, suratJalan.CargoQuantity)
	}
	if suratJalan.JobOrder.Number != "JOBORDER0001" {
		t.Fatalf("expected embedded job order, got %q", suratJalan.JobOrder.Number)
	}
}

func TestGetSuratJalanAbsent(t *testing.T) {
	db := newTestDB(t)
	repo := NewDocumentRepository(db)

	suratJalan, err := repo.GetSuratJalan("SJ0099")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if suratJalan != nil {
		t.Fatal("expected nil for absent surat jalan")
	}
}

func TestSatelliteNumbersAppearOnJobOrderDTO(t *testing.T) {
	db := newTestDB(t)
	repo := NewDocumentRepository(db)
	jobOrderRepo := NewJobOrderRepository(db)

	input := JobOrderInput{
		InquiryDetailID: 1,
		Consignee:       "CONSIGNEE0001",
		TrackingRoute:   "RT01",
		TrackingVendor:  "VENDOR0001",
		Truck:           "B 9001 XYZ",
	}
	if err := jobOrderRepo.Save(input, false, "", 1); err != nil {
		t.Fatalf("save job order failed: %v", err)
	}

	spm, _ := repo.CreateSuratPerintahMuat("JOBORDER0001", 1)
	sj, _ := repo.CreateSuratJalan(SuratJalanInput{
		JobOrderNumber: "JOBORDER0001",
		CargoName:      "Garment",
		CargoQuantity:  120,
		CargoUnit:      "Carton",
	}, 1)
	bast, _ := repo.CreateBast(sj, 1)

	jobOrder, err := jobOrderRepo.Get("JOBORDER0001")
	if err != nil {
		t.Fatalf("get job order failed: %v", err)
	}
	if jobOrder.SuratPerintahMuatNumber == nil || *jobOrder.SuratPerintahMuatNumber != spm {
		t.Fatalf("expected spm number %s on DTO", spm)
	}
	if jobOrder.SuratJalanNumber == nil || *jobOrder.SuratJalanNumber != sj {
		t.Fatalf("expected surat jalan number %s on DTO", sj)
	}
	if jobOrder.BastNumber == nil || *jobOrder.BastNumber != bast {
		t.Fatalf("expected bast number %s on DTO", bast)
	}
	if jobOrder.InsuranceNumber != nil {
		t.Fatal("expected nil insurance number")
	}

	var count int64
	db.Model(&models.SuratJalan{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 surat jalan, got %d", count)
	}
}
