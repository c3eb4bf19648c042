package patient

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/nobatclinic/nobat_backend/config"
	"github.com/nobatclinic/nobat_backend/internal/repo"
	entpatient "github.com/nobatclinic/nobat_backend/internal/repo/patient"
	"github.com/nobatclinic/nobat_backend/pkg/sms"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type CreateRequest struct {
	FullName string
	Phone    string
	Email    *string
	Notes    *string
}

type UpdateRequest struct {
	FullName *string
	Phone    *string
	Email    *string
	Notes    *string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	Get(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error)
	List(ctx context.Context, page, perPage int) ([]*repo.Patient, error)
	Create(ctx context.Context, req CreateRequest) (*repo.Patient, error)
	Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type patientService struct {
	db     *repo.Client
	region string
}

func New(db *repo.Client, cfg *config.Config) Service {
	region := cfg.SMS.DefaultRegion
	if region == "" {
		region = "IR"
	}
	return &patientService{db: db, region: region}
}

func (s *patientService) Get(ctx context.Context, patientID uuid.UUID) (*repo.Patient, error) {
	p, err := s.db.Patient.Query().
		Where(entpatient.ID(patientID), entpatient.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get patient: %w", err)
	}
	return p, nil
}

func (s *patientService) List(ctx context.Context, page, perPage int) ([]*repo.Patient, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	patients, err := s.db.Patient.Query().
		Where(entpatient.DeletedAtIsNil()).
		Order(entpatient.ByCreatedAt(sql.OrderDesc())).
		Offset(offset).
		Limit(perPage).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (s *patientService) Create(ctx context.Context, req CreateRequest) (*repo.Patient, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, ErrMissingName
	}

	phone, err := sms.NormalizePhone(req.Phone, s.region)
	if err != nil {
		return nil, ErrInvalidPhone
	}

	c := s.db.Patient.Create().
		SetFullName(req.FullName).
		SetPhone(phone)

	if req.Email != nil {
		c = c.SetNillableEmail(req.Email)
	}
	if req.Notes != nil {
		c = c.SetNillableNotes(req.Notes)
	}

	p, err := c.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create patient: %w", err)
	}
	return p, nil
}

func (s *patientService) Update(ctx context.Context, patientID uuid.UUID, req UpdateRequest) (*repo.Patient, error) {
	p, err := s.Get(ctx, patientID)
	if err != nil {
		return nil, err
	}

	upd := s.db.Patient.UpdateOne(p)
	if req.FullName != nil {
		upd = upd.SetFullName(*req.FullName)
	}
	if req.Phone != nil {
		phone, nErr := sms.NormalizePhone(*req.Phone, s.region)
		if nErr != nil {
			return nil, ErrInvalidPhone
		}
		upd = upd.SetPhone(phone)
	}
	if req.Email != nil {
		upd = upd.SetEmail(*req.Email)
	}
	if req.Notes != nil {
		upd = upd.SetNotes(*req.Notes)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update patient: %w", err)
	}
	return updated, nil
}
