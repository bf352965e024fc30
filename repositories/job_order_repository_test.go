package repositories

import (
	"testing"
	"time"

	"freight-app/models"
)

func TestSaveJobOrderCreatesNumber(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobOrderRepository(db)

	input := JobOrderInput{
		InquiryDetailID: 1,
		Consignee:       "CONSIGNEE0001",
		TrackingRoute:   "RT01",
		TrackingVendor:  "VENDOR0001",
		Truck:           "B 9001 XYZ",
	}

	if err := repo.Save(input, false, "", 1); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	jobOrder, err := repo.Get("JOBORDER0001")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if jobOrder == nil {
		t.Fatal("expected job order JOBORDER0001")
	}
	if jobOrder.ConsigneeCode != "CONSIGNEE0001" {
		t.Fatalf("unexpected consignee %s", jobOrder.ConsigneeCode)
	}

	if err := repo.Save(input, false, "", 1); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	second, _ := repo.Get("JOBORDER0002")
	if second == nil {
		t.Fatal("expected job order JOBORDER0002")
	}
}

func TestSaveJobOrderUpdateUnknownNumber(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobOrderRepository(db)

	input := JobOrderInput{
		InquiryDetailID: 1,
		Consignee:       "CONSIGNEE0001",
		TrackingRoute:   "RT01",
		TrackingVendor:  "VENDOR0001",
		Truck:           "B 9001 XYZ",
	}

	if err := repo.Save(input, false, "JOBORDER0099", 1); err == nil {
		t.Fatal("expected error for unknown job order number")
	}
}

func TestComboConversionCascade(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobOrderRepository(db)

	db.Create(&models.PriceVendorDetail{
		VendorCode:    "VENDOR0001",
		RouteCode:     "RT01",
		ContainerSize: models.ContainerSize40HC,
		ContainerType: "Dry",
		ServiceType:   "Door to Door",
		PortCode:      "IDTPP",
	})

	db.Create(&models.Quotation{Number: "QUOTATION0001", ServiceType: "Door to Door"})
	db.Create(&models.QuotationDetail{
		QuotationNumber:        "QUOTATION0001",
		PortCode:               "IDTPP",
		ContainerSize:          models.ContainerSize40HC,
		ContainerType:          "Dry",
		TrackingAsalRouteCode:  "RT01",
		TrackingAsalVendorCode: "VENDOR0001",
	})
	db.Create(&models.PriceShipper{QuotationNumber: "QUOTATION0001", ContainerSize: models.ContainerSize40HC, Price: 5000000})

	// Quotation lain di port berbeda, harus tetap 40 HC.
	db.Create(&models.Quotation{Number: "QUOTATION0002", ServiceType: "Door to Door"})
	db.Create(&models.QuotationDetail{
		QuotationNumber:        "QUOTATION0002",
		PortCode:               "IDJKT",
		ContainerSize:          models.ContainerSize40HC,
		ContainerType:          "Dry",
		TrackingAsalRouteCode:  "RT01",
		TrackingAsalVendorCode: "VENDOR0001",
	})
	db.Create(&models.PriceShipper{QuotationNumber: "QUOTATION0002", ContainerSize: models.ContainerSize40HC, Price: 6000000})

	input := JobOrderInput{
		InquiryDetailID: 1,
		Consignee:       "CONSIGNEE0001",
		TrackingRoute:   "RT01",
		TrackingVendor:  "VENDOR0001",
		Truck:           "B 9001 XYZ",
	}

	if err := repo.Save(input, true, "", 1); err != nil {
		t.Fatalf("save with combo conversion failed: %v", err)
	}

	var detail models.PriceVendorDetail
	db.Where("vendor_code = ? AND route_code = ?", "VENDOR0001", "RT01").First(&detail)
	if detail.ContainerSize != models.ContainerSize20Feet {
		t.Fatalf("expected vendor leg converted to 20 Feet, got %s", detail.ContainerSize)
	}

	var qd models.QuotationDetail
	db.Where("quotation_number = ?", "QUOTATION0001").First(&qd)
	if qd.ContainerSize != models.ContainerSize20Feet {
		t.Fatalf("expected quotation detail converted to 20 Feet, got %s", qd.ContainerSize)
	}

	var ps models.PriceShipper
	db.Where("quotation_number = ?", "QUOTATION0001").First(&ps)
	if ps.ContainerSize != models.ContainerSize20Feet {
		t.Fatalf("expected price shipper converted to 20 Feet, got %s", ps.ContainerSize)
	}

	// Port lain tidak tersentuh.
	var other models.QuotationDetail
	db.Where("quotation_number = ?", "QUOTATION0002").First(&other)
	if other.ContainerSize != models.ContainerSize40HC {
		t.Fatalf("expected other quotation detail untouched, got %s", other.ContainerSize)
	}

	var otherPS models.PriceShipper
	db.Where("quotation_number = ?", "QUOTATION0002").First(&otherPS)
	if otherPS.ContainerSize != models.ContainerSize40HC {
		t.Fatalf("expected other price shipper untouched, got %s", otherPS.ContainerSize)
	}
}

func TestComboConversionMatchesTrackingTujuan(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobOrderRepository(db)

	db.Create(&models.PriceVendorDetail{
		VendorCode:    "VENDOR0001",
		RouteCode:     "RT01",
		ContainerSize: models.ContainerSize40HC,
		ContainerType: "Dry",
		ServiceType:   "Door to Door",
		PortCode:      "IDTPP",
	})

	db.Create(&models.Quotation{Number: "QUOTATION0001", ServiceType: "Door to Door"})
	db.Create(&models.QuotationDetail{
		QuotationNumber:          "QUOTATION0001",
		PortCode:                 "IDTPP",
		ContainerSize:            models.ContainerSize40HC,
		ContainerType:            "Dry",
		TrackingTujuanRouteCode:  "RT01",
		TrackingTujuanVendorCode: "VENDOR0001",
	})

	input := JobOrderInput{
		InquiryDetailID: 1,
		Consignee:       "CONSIGNEE0001",
		TrackingRoute:   "RT01",
		TrackingVendor:  "VENDOR0001",
		Truck:           "B 9001 XYZ",
	}

	if err := repo.Save(input, true, "", 1); err != nil {
		t.Fatalf("save with combo conversion failed: %v", err)
	}

	var qd models.QuotationDetail
	db.Where("quotation_number = ?", "QUOTATION0001").First(&qd)
	if qd.ContainerSize != models.ContainerSize20Feet {
		t.Fatalf("expected tujuan-side match converted to 20 Feet, got %s", qd.ContainerSize)
	}
}

func TestComboConversionSkipsNon40HCLeg(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobOrderRepository(db)

	db.Create(&models.PriceVendorDetail{
		VendorCode:    "VENDOR0001",
		RouteCode:     "RT01",
		ContainerSize: models.ContainerSize20Feet,
		ContainerType: "Dry",
		ServiceType:   "Door to Door",
		PortCode:      "IDTPP",
	})

	db.Create(&models.Quotation{Number: "QUOTATION0001", ServiceType: "Door to Door"})
	db.Create(&models.QuotationDetail{
		QuotationNumber:        "QUOTATION0001",
		PortCode:               "IDTPP",
		ContainerSize:          models.ContainerSize40HC,
		ContainerType:          "Dry",
		TrackingAsalRouteCode:  "RT01",
		TrackingAsalVendorCode: "VENDOR0001",
	})

	input := JobOrderInput{
		InquiryDetailID: 1,
		Consignee:       "CONSIGNEE0001",
		TrackingRoute:   "RT01",
		TrackingVendor:  "VENDOR0001",
		Truck:           "B 9001 XYZ",
	}

	if err := repo.Save(input, true, "", 1); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	// Leg sudah 20 Feet, kaskade tidak boleh menyentuh quotation.
	var qd models.QuotationDetail
	db.Where("quotation_number = ?", "QUOTATION0001").First(&qd)
	if qd.ContainerSize != models.ContainerSize40HC {
		t.Fatalf("expected quotation detail untouched, got %s", qd.ContainerSize)
	}

	// Job order-nya tetap dibuat.
	jobOrder, _ := repo.Get("JOBORDER0001")
	if jobOrder == nil {
		t.Fatal("expected job order created despite skipped conversion")
	}
}

func TestReviseJobOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobOrderRepository(db)

	db.Create(&models.InquiryDetail{InquiryNumber: "INQUIRY0001", RouteCode: "RT01"})

	var detail models.InquiryDetail
	db.Where("inquiry_number = ?", "INQUIRY0001").First(&detail)

	input := JobOrderInput{
		InquiryDetailID: detail.ID,
		Consignee:       "CONSIGNEE0001",
		TrackingRoute:   "RT01",
		TrackingVendor:  "VENDOR0001",
		Truck:           "B 9001 XYZ",
	}
	if err := repo.Save(input, false, "", 1); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := repo.Revise("JOBORDER0001", 7); err != nil {
		t.Fatalf("revise failed: %v", err)
	}

	jobOrder, err := repo.Get("JOBORDER0001")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if jobOrder != nil {
		t.Fatal("expected job order absent after revise")
	}

	db.First(&detail, detail.ID)
	if !detail.IsRevised {
		t.Fatal("expected inquiry detail flagged as revised")
	}
}

func TestSaveAfterReviseReusesNumber(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobOrderRepository(db)

	db.Create(&models.InquiryDetail{InquiryNumber: "INQUIRY0001", RouteCode: "RT01"})
	var detail models.InquiryDetail
	db.Where("inquiry_number = ?", "INQUIRY0001").First(&detail)

	input := JobOrderInput{
		InquiryDetailID: detail.ID,
		Consignee:       "CONSIGNEE0001",
		TrackingRoute:   "RT01",
		TrackingVendor:  "VENDOR0001",
		Truck:           "B 9001 XYZ",
	}
	if err := repo.Save(input, false, "", 1); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := repo.Revise("JOBORDER0001", 1); err != nil {
		t.Fatalf("revise failed: %v", err)
	}

	// Nomor job order yang direvisi dipakai ulang oleh penggantinya.
	if err := repo.Save(input, false, "", 1); err != nil {
		t.Fatalf("save after revise failed: %v", err)
	}

	jobOrder, err := repo.Get("JOBORDER0001")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if jobOrder == nil {
		t.Fatal("expected replacement job order JOBORDER0001")
	}
}

func TestReviseUnknownJobOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobOrderRepository(db)

	if err := repo.Revise("JOBORDER0099", 1); err == nil {
		t.Fatal("expected error for unknown job order")
	}
}

func TestConfirmJobOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobOrderRepository(db)

	input := JobOrderInput{
		InquiryDetailID: 1,
		Consignee:       "CONSIGNEE0001",
		TrackingRoute:   "RT01",
		TrackingVendor:  "VENDOR0001",
		Truck:           "B 9001 XYZ",
	}
	if err := repo.Save(input, false, "", 1); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	td := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	ta := td.Add(48 * time.Hour)
	sandar := ta.Add(6 * time.Hour)

	if err := repo.Confirm("JOBORDER0001", &td, &ta, &sandar, 1); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}

	jobOrder, _ := repo.Get("JOBORDER0001")
	if jobOrder.Td == nil || !jobOrder.Td.Equal(td) {
		t.Fatalf("unexpected td %v", jobOrder.Td)
	}
	if jobOrder.Sandar == nil || !jobOrder.Sandar.Equal(sandar) {
		t.Fatalf("unexpected sandar %v", jobOrder.Sandar)
	}
}

func TestPindahKapalUnknownScheduleIsNoop(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobOrderRepository(db)

	db.Create(&models.InquiryDetail{
		InquiryNumber: "INQUIRY0001",
		ShippingCode:  "SHIPPING0001",
		VesselID:      "V1",
		Voyage:        "001",
	})
	var detail models.InquiryDetail
	db.Where("inquiry_number = ?", "INQUIRY0001").First(&detail)

	input := JobOrderInput{
		InquiryDetailID: detail.ID,
		Consignee:       "CONSIGNEE0001",
		TrackingRoute:   "RT01",
		TrackingVendor:  "VENDOR0001",
		Truck:           "B 9001 XYZ",
	}
	if err := repo.Save(input, false, "", 1); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := repo.PindahKapal("JOBORDER0001", "SHIPPING0009", "V9", "009", 1); err != nil {
		t.Fatalf("pindah kapal failed: %v", err)
	}

	db.First(&detail, detail.ID)
	if detail.VesselID != "V1" {
		t.Fatalf("expected vessel unchanged, got %s", detail.VesselID)
	}
}

func TestPindahKapalMovesToSchedule(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobOrderRepository(db)

	db.Create(&models.InquiryDetail{
		InquiryNumber: "INQUIRY0001",
		ShippingCode:  "SHIPPING0001",
		VesselID:      "V1",
		Voyage:        "001",
	})
	var detail models.InquiryDetail
	db.Where("inquiry_number = ?", "INQUIRY0001").First(&detail)

	db.Create(&models.VesselSchedule{
		ShippingCode: "SHIPPING0002",
		VesselID:     "V2",
		VesselName:   "KM Nusantara",
		Voyage:       "017",
	})

	input := JobOrderInput{
		InquiryDetailID: detail.ID,
		Consignee:       "CONSIGNEE0001",
		TrackingRoute:   "RT01",
		TrackingVendor:  "VENDOR0001",
		Truck:           "B 9001 XYZ",
	}
	if err := repo.Save(input, false, "", 1); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := repo.PindahKapal("JOBORDER0001", "SHIPPING0002", "V2", "017", 1); err != nil {
		t.Fatalf("pindah kapal failed: %v", err)
	}

	db.First(&detail, detail.ID)
	if detail.VesselID != "V2" || detail.Voyage != "017" {
		t.Fatalf("expected vessel moved, got %s/%s", detail.VesselID, detail.Voyage)
	}
}

func TestCanConvertToCombo(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobOrderRepository(db)

	db.Create(&models.PriceVendorDetail{
		VendorCode:    "VENDOR0001",
		RouteCode:     "RT01",
		ContainerSize: models.ContainerSize40HC,
	})
	db.Create(&models.PriceVendorDetail{
		VendorCode:    "VENDOR0001",
		RouteCode:     "RT02",
		ContainerSize: models.ContainerSize20Feet,
	})

	can, err := repo.CanConvertToCombo("RT01", "VENDOR0001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !can {
		t.Fatal("expected 40 HC leg to be convertible")
	}

	can, err = repo.CanConvertToCombo("RT02", "VENDOR0001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if can {
		t.Fatal("expected 20 Feet leg not convertible")
	}

	can, err = repo.CanConvertToCombo("RT99", "VENDOR0001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if can {
		t.Fatal("expected missing leg not convertible")
	}
}

func TestJobOrderDTOResolvesReferencesBestEffort(t *testing.T) {
	db := newTestDB(t)
	repo := NewJobOrderRepository(db)

	input := JobOrderInput{
		InquiryDetailID: 42, // tidak ada
		Consignee:       "CONSIGNEE0099",
		TrackingRoute:   "RT99",
		TrackingVendor:  "VENDOR0099",
		Truck:           "B 0000 ZZZ",
	}
	if err := repo.Save(input, false, "", 1); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	jobOrder, err := repo.Get("JOBORDER0001")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if jobOrder == nil {
		t.Fatal("expected job order")
	}
	if jobOrder.ConsigneeName != "" {
		t.Fatalf("expected empty consignee name, got %s", jobOrder.ConsigneeName)
	}
	if jobOrder.TrackingVendorName != "" {
		t.Fatalf("expected empty vendor name, got %s", jobOrder.TrackingVendorName)
	}
	if jobOrder.SuratJalanNumber != nil {
		t.Fatal("expected nil surat jalan number")
	}
	if jobOrder.InquiryDetail.Etd.IsZero() {
		t.Fatal("expected defaulted etd, not zero time")
	}
}
