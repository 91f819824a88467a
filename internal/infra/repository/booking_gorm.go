package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/HennaArtStudio/henna-booking-api/internal/domain/booking"
	"github.com/HennaArtStudio/henna-booking-api/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *BookingGormRepository) GetServiceByName(
	ctx context.Context,
	name string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Booking
// --------------------------------------------------

func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingGormRepository) GetBooking(
	ctx context.Context,
	bookingID uint,
) (*models.Booking, error) {

	var b models.Booking
	if err := r.db.WithContext(ctx).First(&b, bookingID).Error; err != nil {
		return nil, err
	}

	return &b, nil
}

func (r *BookingGormRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookingGormRepository) DeleteBooking(
	ctx context.Context,
	bookingID uint,
) error {
	return r.db.WithContext(ctx).
		Delete(&models.Booking{}, bookingID).Error
}

// --------------------------------------------------
// Views
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListTrashedBookings(
	ctx context.Context,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("is_deleted = ?", true).
		Order("created_at DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListActiveBookingsForUser(
	ctx context.Context,
	userID uint,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("date ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (r *BookingGormRepository) ListSlotsForDate(
	ctx context.Context,
	date string,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

func (r *BookingGormRepository) ListAvailableSlots(
	ctx context.Context,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("is_available = ?", true).
		Order("date ASC, time ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// Compile-time checks
var _ domain.Repository = (*BookingGormRepository)(nil)
var _ domain.SlotSource = (*BookingGormRepository)(nil)
