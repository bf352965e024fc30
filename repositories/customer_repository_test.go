package repositories

import (
	"testing"

	"freight-app/models"
)

func TestCustomerCreateDerivesCode(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)

	input := CustomerInput{
		Type:     models.CustomerTypeShipper,
		Name:     "PT Maju Jaya",
		Province: "DKI Jakarta",
		City:     "Jakarta",
		Address:  "Jl. Sudirman 1",
		Currency: "IDR",
	}

	code, err := repo.Create(input, 1)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if code != "SHIPPER0001" {
		t.Fatalf("expected SHIPPER0001, got %s", code)
	}

	code, err = repo.Create(input, 1)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if code != "SHIPPER0002" {
		t.Fatalf("expected SHIPPER0002, got %s", code)
	}
}

func TestCustomerEffectiveStatusFollowsGroup(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)

	db.Create(&models.ShipperGroup{Code: "GROUP0001", Name: "Grup A", Status: true})
	db.Model(&models.ShipperGroup{}).Where("code = ?", "GROUP0001").Update("status", false)
	db.Create(&models.Customer{
		Code:      "SHIPPER0001",
		Type:      models.CustomerTypeShipper,
		Name:      "PT Maju Jaya",
		GroupCode: "GROUP0001",
		Status:    true,
	})

	customer, err := repo.Get("SHIPPER0001")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if customer == nil {
		t.Fatal("expected customer")
	}
	if customer.Status {
		t.Fatal("expected effective status false when group is inactive")
	}

	db.Model(&models.ShipperGroup{}).Where("code = ?", "GROUP0001").Update("status", true)

	customer, err = repo.Get("SHIPPER0001")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !customer.Status {
		t.Fatal("expected effective status true when both are active")
	}
}

func TestCustomerMissingGroupCountsAsActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)

	db.Create(&models.Customer{
		Code:      "SHIPPER0001",
		Type:      models.CustomerTypeShipper,
		Name:      "PT Maju Jaya",
		GroupCode: "GROUP0099",
		Status:    true,
	})

	customer, err := repo.Get("SHIPPER0001")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !customer.Status {
		t.Fatal("expected effective status true when group does not exist")
	}
	if customer.GroupName != "" {
		t.Fatalf("expected empty group name, got %s", customer.GroupName)
	}
}

func TestCustomerGroupIgnoredForNonShipper(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)

	db.Create(&models.ShipperGroup{Code: "GROUP0001", Name: "Grup A", Status: true})
	db.Model(&models.ShipperGroup{}).Where("code = ?", "GROUP0001").Update("status", false)
	db.Create(&models.Customer{
		Code:      "VENDOR0001",
		Type:      models.CustomerTypeVendor,
		Name:      "PT Angkutan",
		GroupCode: "GROUP0001",
		Status:    true,
	})

	customer, err := repo.Get("VENDOR0001")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if !customer.Status {
		t.Fatal("expected vendor status to ignore group status")
	}
}

func TestCustomerGetAbsentReturnsNil(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)

	customer, err := repo.Get("SHIPPER0042")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if customer != nil {
		t.Fatal("expected nil for absent customer")
	}
}

func TestCustomerUpdateKeepsCodeAndType(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)

	db.Create(&models.Customer{
		Code:   "SHIPPER0001",
		Type:   models.CustomerTypeShipper,
		Name:   "PT Maju Jaya",
		Status: true,
	})

	err := repo.Update("SHIPPER0001", CustomerInput{
		Type:     models.CustomerTypeVendor,
		Name:     "PT Maju Jaya Baru",
		Province: "Jawa Barat",
		City:     "Bandung",
		Address:  "Jl. Asia Afrika 2",
		Currency: "IDR",
	}, 1)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	customer, _ := repo.Get("SHIPPER0001")
	if customer == nil {
		t.Fatal("expected customer")
	}
	if customer.Name != "PT Maju Jaya Baru" {
		t.Fatalf("expected updated name, got %s", customer.Name)
	}
	if customer.Type != models.CustomerTypeShipper {
		t.Fatalf("expected type unchanged, got %s", customer.Type)
	}
	if customer.Code != "SHIPPER0001" {
		t.Fatalf("expected code unchanged, got %s", customer.Code)
	}
}

func TestCustomerOptionsOnlyActive(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)

	db.Create(&models.Customer{Code: "VENDOR0001", Type: models.CustomerTypeVendor, Name: "Aktif", Status: true})
	db.Create(&models.Customer{Code: "VENDOR0002", Type: models.CustomerTypeVendor, Name: "Nonaktif", Status: true})
	db.Model(&models.Customer{}).Where("code = ?", "VENDOR0002").Update("status", false)

	options, err := repo.GetOptions(models.CustomerTypeVendor)
	if err != nil {
		t.Fatalf("get options failed: %v", err)
	}
	if len(options) != 1 {
		t.Fatalf("expected 1 option, got %d", len(options))
	}
	if options[0].Value != "VENDOR0001" || options[0].Label != "Aktif" {
		t.Fatalf("unexpected option %+v", options[0])
	}
}

func TestShipperOptionsExcludeInactiveGroup(t *testing.T) {
	db := newTestDB(t)
	repo := NewCustomerRepository(db)

	db.Create(&models.ShipperGroup{Code: "GROUP0001", Name: "Grup Aktif", Status: true})
	db.Create(&models.ShipperGroup{Code: "GROUP0002", Name: "Grup Beku", Status: true})
	db.Model(&models.ShipperGroup{}).Where("code = ?", "GROUP0002").Update("status", false)

	db.Create(&models.Customer{
		Code:      "SHIPPER0001",
		Type:      models.CustomerTypeShipper,
		Name:      "PT Maju Jaya",
		GroupCode: "GROUP0001",
		Status:    true,
	})
	// Sendiri aktif, tapi group-nya nonaktif.
	db.Create(&models.Customer{
		Code:      "SHIPPER0002",
		Type:      models.CustomerTypeShipper,
		Name:      "PT Beku Abadi",
		GroupCode: "GROUP0002",
		Status:    true,
	})

	options, err := repo.GetOptions(models.CustomerTypeShipper)
	if err != nil {
		t.Fatalf("get options failed: %v", err)
	}
	if len(options) != 1 {
		t.Fatalf("expected 1 option, got %d", len(options))
	}
	if options[0].Value != "SHIPPER0001" || options[0].Label != "PT Maju Jaya" {
		t.Fatalf("unexpected option %+v", options[0])
	}
}
