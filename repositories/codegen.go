package repositories

import (
	"fmt"
	"strconv"
	"strings"

	"freight-app/models"

	"gorm.io/gorm"
)

// GenerateCode mencari kode terbesar yang berawalan prefix pada kolom
// yang diberikan lalu menaikkan empat digit terakhirnya. Tabel kosong
// menghasilkan PREFIX0001. Pembacaan ini tidak dikunci terhadap create
// yang menyusul; volume tulis back office dianggap rendah.
func GenerateCode(db *gorm.DB, model interface{}, column, prefix string) (string, error) {
	var lastCodes []string

	err := db.Model(model).
		Where(column+" LIKE ?", prefix+"%").
		Order(column + " DESC").
		Limit(1).
		Pluck(column, &lastCodes).Error
	if err != nil {
		return "", err
	}

	if len(lastCodes) == 0 {
		return fmt.Sprintf("%s%04d", prefix, 1), nil
	}

	lastCode := lastCodes[0]
	if len(lastCode) < len(prefix)+4 {
		return "", fmt.Errorf("malformed code %q for prefix %q", lastCode, prefix)
	}

	lastSequence, err := strconv.Atoi(lastCode[len(lastCode)-4:])
	if err != nil {
		return "", fmt.Errorf("malformed code %q for prefix %q", lastCode, prefix)
	}

	return fmt.Sprintf("%s%04d", prefix, lastSequence+1), nil
}

// GetCustomerCode menurunkan kode customer dari tipenya, mis. Shipper
// menghasilkan SHIPPER0001, SHIPPER0002, dst.
func GetCustomerCode(db *gorm.DB, customerType string) (string, error) {
	return GenerateCode(db, &models.Customer{}, "code", strings.ToUpper(customerType))
}
