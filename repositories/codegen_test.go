package repositories

import (
	"testing"

	"freight-app/models"
)

func TestGenerateCodeEmptyTable(t *testing.T) {
	db := newTestDB(t)

	code, err := GenerateCode(db, &models.Customer{}, "code", "SHIPPER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "SHIPPER0001" {
		t.Fatalf("expected SHIPPER0001, got %s", code)
	}
}

func TestGenerateCodeIncrements(t *testing.T) {
	db := newTestDB(t)

	db.Create(&models.Customer{Code: "SHIPPER0001", Type: models.CustomerTypeShipper, Name: "A"})
	db.Create(&models.Customer{Code: "SHIPPER0002", Type: models.CustomerTypeShipper, Name: "B"})

	code, err := GenerateCode(db, &models.Customer{}, "code", "SHIPPER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "SHIPPER0003" {
		t.Fatalf("expected SHIPPER0003, got %s", code)
	}
}

func TestGenerateCodePrefixesAreIndependent(t *testing.T) {
	db := newTestDB(t)

	db.Create(&models.Customer{Code: "SHIPPER0007", Type: models.CustomerTypeShipper, Name: "A"})
	db.Create(&models.Customer{Code: "VENDOR0002", Type: models.CustomerTypeVendor, Name: "B"})

	code, err := GenerateCode(db, &models.Customer{}, "code", "VENDOR")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "VENDOR0003" {
		t.Fatalf("expected VENDOR0003, got %s", code)
	}
}

func TestGenerateCodeWidensPast9999(t *testing.T) {
	db := newTestDB(t)

	db.Create(&models.Customer{Code: "SHIPPER9999", Type: models.CustomerTypeShipper, Name: "A"})

	code, err := GenerateCode(db, &models.Customer{}, "code", "SHIPPER")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "SHIPPER10000" {
		t.Fatalf("expected SHIPPER10000, got %s", code)
	}
}

func TestGenerateCodeMalformed(t *testing.T) {
	db := newTestDB(t)

	db.Create(&models.Customer{Code: "SHIPPERXYZA", Type: models.CustomerTypeShipper, Name: "A"})

	if _, err := GenerateCode(db, &models.Customer{}, "code", "SHIPPER"); err == nil {
		t.Fatal("expected error for malformed code")
	}
}

func TestGetCustomerCodeUppercasesType(t *testing.T) {
	db := newTestDB(t)

	code, err := GetCustomerCode(db, "Consignee")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code != "CONSIGNEE0001" {
		t.Fatalf("expected CONSIGNEE0001, got %s", code)
	}
}
