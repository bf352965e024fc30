package repositories

import (
	"testing"

	"freight-app/models"
)

func TestCreateInquiryDenormalizesShipper(t *testing.T) {
	db := newTestDB(t)
	repo := NewInquiryRepository(db)

	db.Create(&models.Customer{
		Code:    "SHIPPER0001",
		Type:    models.CustomerTypeShipper,
		Name:    "PT Maju Jaya",
		Address: "Jl. Sudirman 1",
		City:    "Jakarta",
		Status:  true,
	})

	number, err := repo.Create(InquiryInput{
		SalesCode: "SALES0001",
		SalesName: "Budi",
		Shipper:   "SHIPPER0001",
		Details: []InquiryDetailInput{
			{RouteCode: "RT01", PortCode: "IDTPP", ContainerSize: models.ContainerSize40HC},
			{RouteCode: "RT02", PortCode: "IDJKT", ContainerSize: models.ContainerSize20Feet},
		},
	}, 1)
	if err != nil {
		t.Fatalf("create inquiry failed: %v", err)
	}
	if number != "INQUIRY0001" {
		t.Fatalf("expected INQUIRY0001, got %s", number)
	}

	var inquiry models.Inquiry
	db.Where("number = ?", number).First(&inquiry)
	if inquiry.ShipperName != "PT Maju Jaya" || inquiry.ShipperCity != "Jakarta" {
		t.Fatalf("expected denormalized shipper, got %s/%s", inquiry.ShipperName, inquiry.ShipperCity)
	}

	var count int64
	db.Model(&models.InquiryDetail{}).Where("inquiry_number = ?", number).Count(&count)
	if count != 2 {
		t.Fatalf("expected 2 details, got %d", count)
	}
}

func TestCreateInquiryUnknownShipper(t *testing.T) {
	db := newTestDB(t)
	repo := NewInquiryRepository(db)

	number, err := repo.Create(InquiryInput{
		Shipper: "SHIPPER0099",
		Details: []InquiryDetailInput{{RouteCode: "RT01"}},
	}, 1)
	if err != nil {
		t.Fatalf("create inquiry failed: %v", err)
	}

	// Shipper yang tidak ada tidak menggagalkan create, header-nya
	// hanya kosong.
	var inquiry models.Inquiry
	db.Where("number = ?", number).First(&inquiry)
	if inquiry.ShipperName != "" {
		t.Fatalf("expected empty shipper name, got %s", inquiry.ShipperName)
	}
}

func TestGetOpenDetailsExcludesRevised(t *testing.T) {
	db := newTestDB(t)
	repo := NewInquiryRepository(db)

	db.Create(&models.InquiryDetail{InquiryNumber: "INQUIRY0001", RouteCode: "RT01"})
	db.Create(&models.InquiryDetail{InquiryNumber: "INQUIRY0001", RouteCode: "RT02"})
	db.Model(&models.InquiryDetail{}).Where("route_code = ?", "RT02").Update("is_revised", true)

	details, err := repo.GetOpenDetails()
	if err != nil {
		t.Fatalf("get open details failed: %v", err)
	}
	if len(details) != 1 {
		t.Fatalf("expected 1 open detail, got %d", len(details))
	}
	if details[0].RouteCode != "RT01" {
		t.Fatalf("unexpected detail %s", details[0].RouteCode)
	}
}
