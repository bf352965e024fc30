package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"freight-app/config"
	"freight-app/database"
	"freight-app/models"

	"gopkg.in/gomail.v2"
	"gorm.io/gorm"
)

// Hasil pemrosesan satu file price list.
type fileResult struct {
	Filename string
	Created  int
	Skipped  int
	Errors   []string
}

// checkUnprocessedFiles memproses semua file CSV di folder drop.
// Formatnya PRICE_*.csv dengan kolom: VENDOR_CODE, VENDOR_NAME,
// ROUTE_CODE, ROUTE_DESCRIPTION, CONTAINER_SIZE, CONTAINER_TYPE,
// SERVICE_TYPE, PORT_CODE, PORT_NAME, PRICE.
func checkUnprocessedFiles(db *gorm.DB) []fileResult {

	fmt.Println("📂 Memproses file unprocessed")

	files, err := filepath.Glob(filepath.Join(config.PriceListDropFolder, "*.csv"))
	if err != nil {
		log.Fatal("❌ Gagal membaca folder:", err)
	}

	var results []fileResult
	for _, file := range files {
		fmt.Println("📂 Memproses file:", file)
		if result := processFile(db, file); result != nil {
			results = append(results, *result)
		}
	}
	return results
}

func processFile(db *gorm.DB, filename string) *fileResult {
	fileNameOnly := filepath.Base(filename)

	// Cek apakah file sudah pernah diproses
	var existingFile models.FileLog
	if err := db.Where("filename = ?", fileNameOnly).First(&existingFile).Error; err == nil {
		log.Println("⚠️ File sudah pernah diproses, skip:", filename)
		return nil
	}

	info, err := os.Stat(filename)
	if err != nil {
		fmt.Println("❌ Gagal membaca file:", err)
		return nil
	}

	if !strings.HasPrefix(fileNameOnly, "PRICE_") {
		fmt.Println("⚠️ Unrecognized File:", fileNameOnly)
		return nil
	}

	fmt.Println("📥 Processing Price List File:", fileNameOnly)
	result := processPriceListCSV(db, filename)

	db.Create(&models.FileLog{Filename: fileNameOnly, DateModified: info.ModTime()})
	fmt.Println("✅ File berhasil diproses & disimpan:", filename)

	return result
}

func processPriceListCSV(db *gorm.DB, filename string) *fileResult {
	file, err := os.Open(filename)
	if err != nil {
		fmt.Println("❌ Gagal membuka file:", err)
		return nil
	}

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		fmt.Println("❌ Gagal membaca file CSV:", err)
		file.Close()
		return nil
	}

	file.Close() // Tutup file sebelum dipindahkan!

	result := fileResult{Filename: filepath.Base(filename)}

	for i, record := range records {
		if i == 0 {
			continue // Skip header
		}

		if len(record) < 10 {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: insufficient columns", i+1))
			continue
		}

		vendorCode := strings.ToUpper(strings.TrimSpace(record[0]))
		vendorName := strings.TrimSpace(record[1])
		routeCode := strings.ToUpper(strings.TrimSpace(record[2]))

		price, err := strconv.ParseFloat(strings.TrimSpace(record[9]), 64)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: invalid price '%s'", i+1, record[9]))
			continue
		}

		// Vendor
		var vendor models.Customer
		db.Where("code = ? AND type = ?", vendorCode, models.CustomerTypeVendor).First(&vendor)
		if vendor.ID == 0 {
			vendor = models.Customer{
				Code:   vendorCode,
				Type:   models.CustomerTypeVendor,
				Name:   vendorName,
				Status: true,
			}
			db.Create(&vendor)
		}

		// Leg harga yang sudah ada tidak ditimpa
		var existing models.PriceVendorDetail
		db.Where("vendor_code = ? AND route_code = ?", vendorCode, routeCode).First(&existing)
		if existing.ID != 0 {
			result.Skipped++
			continue
		}

		detail := models.PriceVendorDetail{
			VendorCode:       vendorCode,
			RouteCode:        routeCode,
			RouteDescription: strings.TrimSpace(record[3]),
			ContainerSize:    strings.TrimSpace(record[4]),
			ContainerType:    strings.TrimSpace(record[5]),
			ServiceType:      strings.TrimSpace(record[6]),
			PortCode:         strings.ToUpper(strings.TrimSpace(record[7])),
			PortName:         strings.TrimSpace(record[8]),
			Price:            price,
		}

		if err := db.Create(&detail).Error; err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", i+1, err.Error()))
			continue
		}

		result.Created++
		fmt.Println("✅ Data Inserted:", vendorCode, routeCode)
	}

	processedFolder := filepath.Join(filepath.Dir(config.PriceListDropFolder), "processed")

	// Pastikan folder `processed` ada
	if _, err := os.Stat(processedFolder); os.IsNotExist(err) {
		if err := os.MkdirAll(processedFolder, os.ModePerm); err != nil {
			log.Fatalf("❌ Gagal membuat folder processed: %v", err)
		}
	}

	// Pindahkan file ke folder processed
	processedFilePath := filepath.Join(processedFolder, filepath.Base(filename))

	if err := os.Rename(filename, processedFilePath); err != nil {
		fmt.Println("⚠️  Rename gagal, coba metode copy & delete...")
		if err := copyAndDeleteFile(filename, processedFilePath); err != nil {
			log.Fatalf("❌ Gagal memindahkan file ke folder processed: %v", err)
		}
	}

	return &result
}

func copyAndDeleteFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destinationFile.Close()

	_, err = io.Copy(destinationFile, sourceFile)
	if err != nil {
		return err
	}

	return os.Remove(src)
}

func sendEmailReport(toEmails []string, results []fileResult) error {
	var rows strings.Builder
	for _, result := range results {
		rows.WriteString(fmt.Sprintf(
			"<p>File: <strong>%s</strong> — created: %d, skipped: %d, errors: %d</p>",
			result.Filename, result.Created, result.Skipped, len(result.Errors)))
		for _, e := range result.Errors {
			rows.WriteString("<p style=\"color:red\">" + e + "</p>")
		}
	}

	subject := "📦 Price List Import Report"
	body := fmt.Sprintf(`
		<html>
			<body>
				<h3>Price list import finished</h3>
				%s
				<p>This is an auto-generated email. Please do not reply to this email or its recipients.</p>
			</body>
		</html>
	`, rows.String())

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.SMTPSender)
	msg.SetHeader("To", toEmails...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPSender, config.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		fmt.Println("❌ Gagal mengirim email:", err)
		return err
	}

	fmt.Println("✅ Email laporan terkirim ke:", toEmails)
	return nil
}

func main() {
	config.LoadConfig()

	db, err := database.OpenDatabaseConnection(config.DBName)
	if err != nil {
		log.Fatalf("❌ Gagal konek ke database: %v", err)
	}

	fmt.Println("🚀 Processor CSV berjalan...")

	results := checkUnprocessedFiles(db)

	if len(results) > 0 && config.ReportEmail != "" {
		sendEmailReport([]string{config.ReportEmail}, results)
	}

	fmt.Println("✅ Semua file CSV diproses!")
}
