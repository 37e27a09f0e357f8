package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	enrollmentDomain "github.com/driventix/service-hotel/internal/domain/enrollment"
	"github.com/driventix/service-hotel/internal/platform/domain"
)

// EnrollmentModel is the GORM model for the enrollments table.
type EnrollmentModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (EnrollmentModel) TableName() string {
	return "enrollments"
}

// TicketTypeModel is the GORM model for the ticket_types table.
type TicketTypeModel struct {
	ID            int64  `gorm:"primaryKey;autoIncrement"`
	Name          string `gorm:"not null;size:255"`
	PriceCents    int64  `gorm:"not null"`
	IsRemote      bool   `gorm:"not null;default:false"`
	IncludesHotel bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for the GORM model.
func (TicketTypeModel) TableName() string {
	return "ticket_types"
}

// TicketModel is the GORM model for the tickets table.
type TicketModel struct {
	ID           int64           `gorm:"primaryKey;autoIncrement"`
	EnrollmentID int64           `gorm:"index;not null"`
	TicketTypeID int64           `gorm:"not null"`
	TicketType   TicketTypeModel `gorm:"foreignKey:TicketTypeID"`
	Status       string          `gorm:"not null;size:20"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the GORM model.
func (TicketModel) TableName() string {
	return "tickets"
}

// GormEnrollmentRepository is the GORM-based implementation of enrollment.EnrollmentRepository.
type GormEnrollmentRepository struct {
	db *gorm.DB
}

// NewGormEnrollmentRepository creates a new GormEnrollmentRepository.
func NewGormEnrollmentRepository(db *gorm.DB) *GormEnrollmentRepository {
	return &GormEnrollmentRepository{db: db}
}

// FindByUserID retrieves a user's enrollment.
func (r *GormEnrollmentRepository) FindByUserID(ctx context.Context, userID int64) (*enrollmentDomain.Enrollment, error) {
	var model EnrollmentModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Enrollment", "user "+strconv.FormatInt(userID, 10))
		}
		return nil, fmt.Errorf("failed to find enrollment by user: %w", err)
	}
	return enrollmentDomain.Reconstruct(model.ID, model.UserID, model.CreatedAt), nil
}

// GormTicketRepository is the GORM-based implementation of enrollment.TicketRepository.
type GormTicketRepository struct {
	db *gorm.DB
}

// NewGormTicketRepository creates a new GormTicketRepository.
func NewGormTicketRepository(db *gorm.DB) *GormTicketRepository {
	return &GormTicketRepository{db: db}
}

// FindByEnrollmentID retrieves the ticket attached to an enrollment.
func (r *GormTicketRepository) FindByEnrollmentID(ctx context.Context, enrollmentID int64) (*enrollmentDomain.Ticket, error) {
	var model TicketModel
	err := r.db.WithContext(ctx).
		Preload("TicketType").
		Where("enrollment_id = ?", enrollmentID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Ticket", "enrollment "+strconv.FormatInt(enrollmentID, 10))
		}
		return nil, fmt.Errorf("failed to find ticket by enrollment: %w", err)
	}
	return toDomainTicket(&model), nil
}

// FindByID retrieves a ticket by its identifier.
func (r *GormTicketRepository) FindByID(ctx context.Context, id int64) (*enrollmentDomain.Ticket, error) {
	var model TicketModel
	err := r.db.WithContext(ctx).
		Preload("TicketType").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Ticket", strconv.FormatInt(id, 10))
		}
		return nil, fmt.Errorf("failed to find ticket by ID: %w", err)
	}
	return toDomainTicket(&model), nil
}

// UpdateStatus persists a ticket's payment status.
func (r *GormTicketRepository) UpdateStatus(ctx context.Context, t *enrollmentDomain.Ticket) error {
	result := r.db.WithContext(ctx).Model(&TicketModel{}).
		Where("id = ?", t.ID()).
		Updates(map[string]interface{}{
			"status":     string(t.Status()),
			"updated_at": t.UpdatedAt(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Ticket", strconv.FormatInt(t.ID(), 10))
	}
	return nil
}

func toDomainTicket(m *TicketModel) *enrollmentDomain.Ticket {
	return enrollmentDomain.ReconstructTicket(
		m.ID,
		m.EnrollmentID,
		enrollmentDomain.TicketStatus(m.Status),
		enrollmentDomain.TicketType{
			ID:            m.TicketType.ID,
			Name:          m.TicketType.Name,
			PriceCents:    m.TicketType.PriceCents,
			IsRemote:      m.TicketType.IsRemote,
			IncludesHotel: m.TicketType.IncludesHotel,
		},
		m.UpdatedAt,
	)
}
