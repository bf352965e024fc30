package repositories

import (
	"errors"
	"time"

	"freight-app/models"
	"freight-app/utils"

	"gorm.io/gorm"
)

type JobOrderRepository struct {
	db *gorm.DB
}

func NewJobOrderRepository(db *gorm.DB) *JobOrderRepository {
	return &JobOrderRepository{db: db}
}

type JobOrderInquiryDTO struct {
	SalesCode      string    `json:"sales_code"`
	SalesName      string    `json:"sales_name"`
	ShipperCode    string    `json:"shipper_code"`
	ShipperName    string    `json:"shipper_name"`
	ShipperAddress string    `json:"shipper_address"`
	ShipperCity    string    `json:"shipper_city"`
	CreateDate     time.Time `json:"create_date"`
}

type JobOrderInquiryDetailDTO struct {
	InquiryNumber     string             `json:"inquiry_number"`
	Inquiry           JobOrderInquiryDTO `json:"inquiry"`
	ShippingCode      string             `json:"shipping_code"`
	ShippingName      string             `json:"shipping_name"`
	VesselID          string             `json:"vessel_id"`
	VesselName        string             `json:"vessel_name"`
	Voyage            string             `json:"voyage"`
	Etd               time.Time          `json:"etd"`
	Eta               time.Time          `json:"eta"`
	LoadDate          time.Time          `json:"load_date"`
	DeliveryToCode    string             `json:"delivery_to_code"`
	DeliveryToName    string             `json:"delivery_to_name"`
	DeliveryToCity    string             `json:"delivery_to_city"`
	DeliveryToAddress string             `json:"delivery_to_address"`
	RouteCode         string             `json:"route_code"`
	RouteDescription  string             `json:"route_description"`
	PortCode          string             `json:"port_code"`
	PortName          string             `json:"port_name"`
	ContainerSize     string             `json:"container_size"`
	ContainerType     string             `json:"container_type"`
	ServiceType       string             `json:"service_type"`
	TypeOrder         string             `json:"type_order"`
}

type JobOrderDTO struct {
	Number                   string                   `json:"number"`
	InquiryDetailID          uint                     `json:"inquiry_detail_id"`
	InquiryDetail            JobOrderInquiryDetailDTO `json:"inquiry_detail"`
	RoNumber                 string                   `json:"ro_number"`
	ConsigneeCode            string                   `json:"consignee_code"`
	ConsigneeName            string                   `json:"consignee_name"`
	ConsigneeAddress         string                   `json:"consignee_address"`
	ConsigneeCity            string                   `json:"consignee_city"`
	ConsigneeEmail           string                   `json:"consignee_email"`
	ConsigneeTelephone       string                   `json:"consignee_telephone"`
	StuffingDate             time.Time                `json:"stuffing_date"`
	TrackingRouteCode        string                   `json:"tracking_route_code"`
	TrackingRouteDescription string                   `json:"tracking_route_description"`
	TrackingVendorCode       string                   `json:"tracking_vendor_code"`
	TrackingVendorName       string                   `json:"tracking_vendor_name"`
	TruckNumber              string                   `json:"truck_number"`
	TruckType                string                   `json:"truck_type"`
	DriverName               string                   `json:"driver_name"`
	DriverPhoneNumber        string                   `json:"driver_phone_number"`
	ContainerNumber1         string                   `json:"container_number1"`
	SealNumber1              string                   `json:"seal_number1"`
	ContainerNumber2         *string                  `json:"container_number2"`
	SealNumber2              *string                  `json:"seal_number2"`
	Td                       *time.Time               `json:"td"`
	Ta                       *time.Time               `json:"ta"`
	Sandar                   *time.Time               `json:"sandar"`
	CreateDate               time.Time                `json:"create_date"`
	SuratPerintahMuatNumber  *string                  `json:"surat_perintah_muat_number"`
	SuratJalanNumber         *string                  `json:"surat_jalan_number"`
	BastNumber               *string                  `json:"bast_number"`
	InsuranceNumber          *string                  `json:"insurance_number"`
}

type JobOrderInput struct {
	InquiryDetailID   uint      `json:"inquiry_detail_id" validate:"required"`
	RoNumber          string    `json:"ro_number"`
	Consignee         string    `json:"consignee" validate:"required"`
	StuffingDate      time.Time `json:"stuffing_date"`
	TrackingRoute     string    `json:"tracking_route" validate:"required"`
	TrackingVendor    string    `json:"tracking_vendor" validate:"required"`
	Truck             string    `json:"truck" validate:"required"`
	DriverName        string    `json:"driver_name"`
	DriverPhoneNumber string    `json:"driver_phone_number"`
	ContainerNumber1  string    `json:"container_number1"`
	SealNumber1       string    `json:"seal_number1"`
	ContainerNumber2  *string   `json:"container_number2"`
	SealNumber2       *string   `json:"seal_number2"`
}

func (r *JobOrderRepository) GetJobOrderNumber() (string, error) {
	return GenerateCode(r.db, &models.JobOrder{}, "number", "JOBORDER")
}

// mapInquiryDetail merakit blok inquiry pada DTO job order. Referensi
// yang hilang tidak pernah menjadi error; string kosong dan waktu
// sekarang dipakai sebagai default.
func (r *JobOrderRepository) mapInquiryDetail(inquiryDetailID uint) JobOrderInquiryDetailDTO {
	now := time.Now()
	dto := JobOrderInquiryDetailDTO{
		Inquiry:  JobOrderInquiryDTO{CreateDate: now},
		Etd:      now,
		Eta:      now,
		LoadDate: now,
	}

	var detail models.InquiryDetail
	if err := r.db.First(&detail, inquiryDetailID).Error; err != nil {
		return dto
	}

	dto.InquiryNumber = detail.InquiryNumber
	dto.ShippingCode = detail.ShippingCode
	dto.ShippingName = detail.ShippingName
	dto.VesselID = detail.VesselID
	dto.VesselName = detail.VesselName
	dto.Voyage = detail.Voyage
	dto.Etd = detail.Etd
	dto.Eta = detail.Eta
	dto.LoadDate = detail.LoadDate
	dto.DeliveryToCode = detail.DeliveryToCode
	dto.DeliveryToName = detail.DeliveryToName
	dto.DeliveryToCity = detail.DeliveryToCity
	dto.DeliveryToAddress = detail.DeliveryToAddress
	dto.RouteCode = detail.RouteCode
	dto.RouteDescription = detail.RouteDescription
	dto.PortCode = detail.PortCode
	dto.PortName = detail.PortName
	dto.ContainerSize = detail.ContainerSize
	dto.ContainerType = detail.ContainerType
	dto.ServiceType = detail.ServiceType
	dto.TypeOrder = detail.TypeOrder

	var inquiry models.Inquiry
	if err := r.db.Where("number = ?", detail.InquiryNumber).First(&inquiry).Error; err == nil {
		dto.Inquiry = JobOrderInquiryDTO{
			SalesCode:      inquiry.SalesCode,
			SalesName:      inquiry.SalesName,
			ShipperCode:    inquiry.ShipperCode,
			ShipperName:    inquiry.ShipperName,
			ShipperAddress: inquiry.ShipperAddress,
			ShipperCity:    inquiry.ShipperCity,
			CreateDate:     inquiry.CreatedAt,
		}
	}

	return dto
}

// mapJobOrder merakit DTO lebar untuk form dan dokumen cetak. Semua
// referensi diselesaikan best effort: consignee, leg harga vendor,
// kendaraan, dan dokumen satelit pertama yang cocok. Ketiadaan dokumen
// satelit menghasilkan nomor nil, bukan error.
func (r *JobOrderRepository) mapJobOrder(jobOrder models.JobOrder) JobOrderDTO {
	priceVendorRepo := NewPriceVendorRepository(r.db)
	customerRepo := NewCustomerRepository(r.db)
	vehicleRepo := NewVehicleRepository(r.db)

	consignee, _ := customerRepo.Get(jobOrder.ConsigneeCode)
	priceVendorDetail, _ := priceVendorRepo.GetDetailByVendorRoute(jobOrder.TrackingVendorCode, jobOrder.TrackingRouteCode)
	vehicle, _ := vehicleRepo.Get(jobOrder.TruckNumber)

	dto := JobOrderDTO{
		Number:             jobOrder.Number,
		InquiryDetailID:    jobOrder.InquiryDetailID,
		InquiryDetail:      r.mapInquiryDetail(jobOrder.InquiryDetailID),
		RoNumber:           jobOrder.RoNumber,
		ConsigneeCode:      jobOrder.ConsigneeCode,
		StuffingDate:       jobOrder.StuffingDate,
		TrackingRouteCode:  jobOrder.TrackingRouteCode,
		TrackingVendorCode: jobOrder.TrackingVendorCode,
		DriverName:         jobOrder.DriverName,
		DriverPhoneNumber:  jobOrder.DriverPhoneNumber,
		ContainerNumber1:   jobOrder.ContainerNumber1,
		SealNumber1:        jobOrder.SealNumber1,
		ContainerNumber2:   jobOrder.ContainerNumber2,
		SealNumber2:        jobOrder.SealNumber2,
		Td:                 jobOrder.Td,
		Ta:                 jobOrder.Ta,
		Sandar:             jobOrder.Sandar,
		CreateDate:         jobOrder.CreatedAt,
	}

	if consignee != nil {
		dto.ConsigneeName = consignee.Name
		dto.ConsigneeAddress = consignee.Address
		dto.ConsigneeCity = consignee.City
		dto.ConsigneeEmail = consignee.Email
		dto.ConsigneeTelephone = consignee.Telephone
	}
	if priceVendorDetail != nil {
		dto.TrackingRouteDescription = priceVendorDetail.RouteDescription
		dto.TrackingVendorName = priceVendorDetail.VendorName
	}
	if vehicle != nil {
		dto.TruckNumber = vehicle.TruckNumber
		dto.TruckType = vehicle.TruckType
	}

	var spm models.SuratPerintahMuat
	if err := r.db.Where("job_order_number = ?", jobOrder.Number).First(&spm).Error; err == nil {
		dto.SuratPerintahMuatNumber = &spm.Number
	}

	var suratJalan models.SuratJalan
	if err := r.db.Where("job_order_number = ?", jobOrder.Number).First(&suratJalan).Error; err == nil {
		dto.SuratJalanNumber = &suratJalan.Number

		var bast models.BeritaAcaraSerahTerima
		if err := r.db.Where("surat_jalan_number = ?", suratJalan.Number).First(&bast).Error; err == nil {
			dto.BastNumber = &bast.Number
		}
	}

	var insurance models.Insurance
	if err := r.db.Where("job_order_number = ?", jobOrder.Number).First(&insurance).Error; err == nil {
		dto.InsuranceNumber = &insurance.Number
	}

	return dto
}

// Save membuat job order baru (number kosong) atau memperbarui yang
// sudah ada, dalam satu transaksi. Saat isConvertToCombo true, kaskade
// konversi combo dijalankan lebih dulu di transaksi yang sama:
//  1. leg harga vendor (tracking_vendor, tracking_route) hanya diproses
//     kalau container size-nya tepat "40 HC";
//  2. leg itu ditulis ulang menjadi "20 Feet";
//  3. setiap quotation detail dengan service type, port, dan container
//     type yang sama, masih "40 HC", dan menunjuk rute+vendor ini di
//     sisi tracking asal ATAU tujuan, ditulis ulang menjadi "20 Feet";
//  4. begitu juga semua baris price shipper milik quotation induknya.
// Gagal di titik mana pun membatalkan seluruh kaskade termasuk tulisan
// job order-nya.
func (r *JobOrderRepository) Save(input JobOrderInput, isConvertToCombo bool, number string, userID int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if isConvertToCombo {
			var detail models.PriceVendorDetail
			err := tx.Where("vendor_code = ? AND route_code = ?", input.TrackingVendor, input.TrackingRoute).
				First(&detail).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			if err == nil && detail.ContainerSize == models.ContainerSize40HC {
				if err := tx.Model(&models.PriceVendorDetail{}).
					Where("id = ?", detail.ID).
					Update("container_size", models.ContainerSize20Feet).Error; err != nil {
					return err
				}

				var quotationDetails []models.QuotationDetail
				if err := tx.
					Joins("JOIN quotations ON quotations.number = quotation_details.quotation_number").
					Where("quotations.service_type = ?", detail.ServiceType).
					Where("quotation_details.port_code = ?", detail.PortCode).
					Where("quotation_details.container_size = ?", models.ContainerSize40HC).
					Where("quotation_details.container_type = ?", detail.ContainerType).
					Where(`(quotation_details.tracking_asal_route_code = ? AND quotation_details.tracking_asal_vendor_code = ?)
						OR (quotation_details.tracking_tujuan_route_code = ? AND quotation_details.tracking_tujuan_vendor_code = ?)`,
						detail.RouteCode, detail.VendorCode, detail.RouteCode, detail.VendorCode).
					Find(&quotationDetails).Error; err != nil {
					return err
				}

				for _, quotationDetail := range quotationDetails {
					if err := tx.Model(&models.QuotationDetail{}).
						Where("id = ?", quotationDetail.ID).
						Update("container_size", models.ContainerSize20Feet).Error; err != nil {
						return err
					}

					if err := tx.Model(&models.PriceShipper{}).
						Where("quotation_number = ?", quotationDetail.QuotationNumber).
						Update("container_size", models.ContainerSize20Feet).Error; err != nil {
						return err
					}
				}
			}
		}

		if number == "" {
			newNumber, err := GenerateCode(tx, &models.JobOrder{}, "number", "JOBORDER")
			if err != nil {
				return err
			}

			jobOrder := models.JobOrder{
				Number:             newNumber,
				InquiryDetailID:    input.InquiryDetailID,
				RoNumber:           input.RoNumber,
				ConsigneeCode:      input.Consignee,
				StuffingDate:       input.StuffingDate,
				TrackingRouteCode:  input.TrackingRoute,
				TrackingVendorCode: input.TrackingVendor,
				TruckNumber:        input.Truck,
				DriverName:         input.DriverName,
				DriverPhoneNumber:  input.DriverPhoneNumber,
				ContainerNumber1:   input.ContainerNumber1,
				SealNumber1:        input.SealNumber1,
				ContainerNumber2:   input.ContainerNumber2,
				SealNumber2:        input.SealNumber2,
				CreatedBy:          userID,
			}
			return tx.Create(&jobOrder).Error
		}

		result := tx.Model(&models.JobOrder{}).
			Where("number = ?", number).
			Updates(map[string]interface{}{
				"ro_number":            input.RoNumber,
				"consignee_code":       input.Consignee,
				"stuffing_date":        input.StuffingDate,
				"tracking_route_code":  input.TrackingRoute,
				"tracking_vendor_code": input.TrackingVendor,
				"truck_number":         input.Truck,
				"driver_name":          input.DriverName,
				"driver_phone_number":  input.DriverPhoneNumber,
				"container_number1":    input.ContainerNumber1,
				"seal_number1":         input.SealNumber1,
				"container_number2":    input.ContainerNumber2,
				"seal_number2":         input.SealNumber2,
				"updated_by":           userID,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *JobOrderRepository) GetAll() ([]JobOrderDTO, error) {
	var jobOrders []models.JobOrder
	if err := r.db.Find(&jobOrders).Error; err != nil {
		return nil, err
	}

	dtos := make([]JobOrderDTO, 0, len(jobOrders))
	for _, jobOrder := range jobOrders {
		dtos = append(dtos, r.mapJobOrder(jobOrder))
	}
	return dtos, nil
}

// Get mengembalikan (nil, nil) saat nomor tidak ditemukan.
func (r *JobOrderRepository) Get(number string) (*JobOrderDTO, error) {
	var jobOrder models.JobOrder
	if err := r.db.Where("number = ?", number).First(&jobOrder).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	dto := r.mapJobOrder(jobOrder)
	return &dto, nil
}

// Revise menghapus job order dan menandai inquiry detail asalnya
// sebagai revised, dalam satu transaksi. Transisi ini satu arah.
func (r *JobOrderRepository) Revise(number string, userID int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var jobOrder models.JobOrder
		if err := tx.Where("number = ?", number).First(&jobOrder).Error; err != nil {
			return err
		}

		// Hard delete: nomornya harus bisa dipakai ulang oleh job order
		// pengganti, kolom number unik.
		if err := tx.Unscoped().Delete(&jobOrder).Error; err != nil {
			return err
		}

		return tx.Model(&models.InquiryDetail{}).
			Where("id = ?", jobOrder.InquiryDetailID).
			Updates(map[string]interface{}{
				"is_revised": true,
				"updated_by": userID,
			}).Error
	})
}

// Confirm mengisi waktu keberangkatan, kedatangan, dan sandar kapal.
func (r *JobOrderRepository) Confirm(number string, td, ta, sandar *time.Time, userID int) error {
	result := r.db.Model(&models.JobOrder{}).
		Where("number = ?", number).
		Updates(map[string]interface{}{
			"td":         td,
			"ta":         ta,
			"sandar":     sandar,
			"updated_by": userID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// PindahKapal memindahkan job order ke jadwal kapal lain dengan menulis
// ulang shipping/vessel/voyage pada inquiry detail-nya. Jadwal yang
// tidak ditemukan membuat operasi ini no-op.
func (r *JobOrderRepository) PindahKapal(number, shippingCode, vesselID, voyage string, userID int) error {
	var jobOrder models.JobOrder
	if err := r.db.Where("number = ?", number).First(&jobOrder).Error; err != nil {
		return err
	}

	var schedule models.VesselSchedule
	err := r.db.Where("shipping_code = ? AND vessel_id = ? AND voyage = ?", shippingCode, vesselID, voyage).
		First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	return r.db.Model(&models.InquiryDetail{}).
		Where("id = ?", jobOrder.InquiryDetailID).
		Updates(map[string]interface{}{
			"shipping_code": schedule.ShippingCode,
			"vessel_id":     schedule.VesselID,
			"voyage":        schedule.Voyage,
			"updated_by":    userID,
		}).Error
}

// CanConvertToCombo true hanya saat leg harga vendor untuk pasangan
// rute+vendor masih "40 HC".
func (r *JobOrderRepository) CanConvertToCombo(trackingRoute, trackingVendor string) (bool, error) {
	detail, err := NewPriceVendorRepository(r.db).GetDetailByVendorRoute(trackingVendor, trackingRoute)
	if err != nil {
		return false, err
	}
	return detail != nil && detail.ContainerSize == models.ContainerSize40HC, nil
}

// GetTrackingRouteOptions dan kawan-kawan diekspos di sini supaya
// controller job order cukup memegang satu repository.
func (r *JobOrderRepository) GetTrackingRouteOptions() ([]utils.Option, error) {
	return NewPriceVendorRepository(r.db).GetTrackingRouteOptions()
}

func (r *JobOrderRepository) GetTrackingVendorOptions(trackingRoute string) ([]utils.Option, error) {
	return NewPriceVendorRepository(r.db).GetTrackingVendorOptions(trackingRoute)
}

func (r *JobOrderRepository) GetTruckOptions(trackingVendor string) ([]utils.Option, error) {
	return NewVehicleRepository(r.db).GetTruckOptions(trackingVendor)
}
