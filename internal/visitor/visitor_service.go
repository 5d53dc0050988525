package visitor

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-vms/internal/employee"
	"go-vms/internal/location"
	"go-vms/internal/notification"
	"go-vms/internal/shared/contextutil"
	visitorerrors "go-vms/internal/visitor/errors"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// Threshold below which a contact number is too partial to match against
// open visits (mirrors the dashboard auto-fill trigger).
const minContactMatchLen = 5

//go:generate mockgen -source=visitor_service.go -destination=mock/visitor_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterVisitorRequest) (VisitorResponse, error)
	Edit(ctx context.Context, req EditVisitorRequest) error
	Checkout(ctx context.Context, id int) error
	List(ctx context.Context, q ListQuery) ([]VisitorResponse, error)
	OpenByContact(ctx context.Context, contactNo string) (VisitorResponse, error)
	Export(ctx context.Context, q ListQuery) (*excelize.File, error)
}

type service struct {
	repo      Repository
	employees employee.Repository
	locations location.Resolver
	mailer    notification.Mailer
}

func NewService(repo Repository, employees employee.Repository, locations location.Resolver, mailer notification.Mailer) Service {
	return &service{repo: repo, employees: employees, locations: locations, mailer: mailer}
}

func (s *service) Register(ctx context.Context, req RegisterVisitorRequest) (VisitorResponse, error) {
	if err := validateContactNo(req.ContactNo); err != nil {
		return VisitorResponse{}, err
	}

	hostName := strings.TrimSpace(req.ContactPerson)
	hostEmail := strings.TrimSpace(req.ContactPersonEmail)
	department := strings.TrimSpace(req.Department)
	empID := strings.TrimSpace(req.EmpID)

	if empID == "" && hostName == "" {
		return VisitorResponse{}, visitorerrors.ErrMissingHost
	}

	// The host is stored by value: resolve the employee id now and persist
	// the display fields, never the id itself.
	if empID != "" {
		emp, err := s.employees.FindByEmpID(ctx, empID)
		switch {
		case err == nil:
			hostName = emp.Name
			hostEmail = emp.Email
			department = emp.Department
		case errors.Is(err, gorm.ErrRecordNotFound):
			// fall back to whatever the caller pre-filled
		default:
			return VisitorResponse{}, mapRepositoryError(err)
		}
	}

	visitDate, err := parseVisitDate(req.VisitDate)
	if err != nil {
		return VisitorResponse{}, err
	}

	row := &Visitor{
		Name:               titleCase(req.Name),
		Company:            titleCase(req.Company),
		Country:            s.locations.ResolveCountry(ctx, req.Country),
		State:              s.locations.ResolveState(ctx, req.Country, req.State),
		City:               req.City,
		ContactNo:          req.ContactNo,
		ContactPerson:      hostName,
		ContactPersonEmail: hostEmail,
		Department:         department,
		Purpose:            titleCase(req.Purpose),
		VisitDate:          visitDate,
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return VisitorResponse{}, mapRepositoryError(err)
	}

	// Notification runs in the background; a delivery failure never rolls
	// back the registration.
	go s.notifyHost(*row)

	return mapToResponse(*row), nil
}

func (s *service) Edit(ctx context.Context, req EditVisitorRequest) error {
	if err := validateContactNo(req.ContactNo); err != nil {
		return err
	}

	fields := map[string]any{
		"name":                 titleCase(req.Name),
		"company":              titleCase(req.Company),
		"country":              s.locations.ResolveCountry(ctx, req.Country),
		"state":                s.locations.ResolveState(ctx, req.Country, req.State),
		"city":                 req.City,
		"contact_no":           req.ContactNo,
		"contact_person":       req.ContactPerson,
		"contact_person_email": req.ContactPersonEmail,
		"department":           req.Department,
		"purpose":              titleCase(req.Purpose),
	}

	rows, err := s.repo.UpdateFields(ctx, req.ID, fields)
	if err != nil {
		return mapRepositoryError(err)
	}
	if rows == 0 {
		// Unknown id is a silent no-op, matching idempotent-overwrite semantics.
		contextutil.GetLogger(ctx, zap.L()).Debug("edit matched no visitor", zap.Int("id", req.ID))
	}
	return nil
}

func (s *service) Checkout(ctx context.Context, id int) error {
	rows, err := s.repo.MarkOut(ctx, id, time.Now())
	if err != nil {
		return mapRepositoryError(err)
	}
	if rows == 0 {
		// Already checked out or unknown id: harmless no-op.
		contextutil.GetLogger(ctx, zap.L()).Debug("checkout matched no open visitor", zap.Int("id", id))
	}
	return nil
}

func (s *service) List(ctx context.Context, q ListQuery) ([]VisitorResponse, error) {
	filter, err := parseListQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	res := make([]VisitorResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) OpenByContact(ctx context.Context, contactNo string) (VisitorResponse, error) {
	if len(contactNo) < minContactMatchLen {
		return VisitorResponse{}, visitorerrors.ErrVisitorNotFound
	}

	row, err := s.repo.FindOpenByContactNo(ctx, contactNo)
	if err != nil {
		return VisitorResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Export(ctx context.Context, q ListQuery) (*excelize.File, error) {
	rows, err := s.List(ctx, q)
	if err != nil {
		return nil, err
	}
	return BuildWorkbook(rows)
}

func (s *service) notifyHost(v Visitor) {
	if v.ContactPersonEmail == "" {
		zap.L().Warn("visitor registered without host email, skipping notification",
			zap.Int("visitor_id", v.ID))
		return
	}

	notice := notification.VisitNotice{
		ToEmail:     v.ContactPersonEmail,
		HostName:    v.ContactPerson,
		VisitorName: v.Name,
		Company:     v.Company,
		ContactNo:   v.ContactNo,
		Purpose:     v.Purpose,
	}
	if err := s.mailer.SendVisitNotice(notice); err != nil {
		zap.L().Warn("visitor registered but notification failed",
			zap.Int("visitor_id", v.ID),
			zap.String("to", v.ContactPersonEmail),
			zap.Error(err))
	}
}

func parseVisitDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, visitorerrors.ErrInvalidVisitDate
	}
	return t, nil
}

func parseListQuery(q ListQuery) (ListFilter, error) {
	filter := ListFilter{
		TodayOnly:     q.TodayOnly,
		Name:          q.Name,
		ContactNo:     q.ContactNo,
		ContactPerson: q.ContactPerson,
	}

	if q.FromDate != "" {
		t, err := time.ParseInLocation("2006-01-02", q.FromDate, time.Local)
		if err != nil {
			return ListFilter{}, visitorerrors.ErrInvalidDateRange
		}
		filter.From = &t
	}
	if q.ToDate != "" {
		t, err := time.ParseInLocation("2006-01-02", q.ToDate, time.Local)
		if err != nil {
			return ListFilter{}, visitorerrors.ErrInvalidDateRange
		}
		end := t.Add(24*time.Hour - time.Second) // inclusive through 23:59:59
		filter.To = &end
	}
	return filter, nil
}

func validateContactNo(s string) error {
	if s == "" || len(s) > 10 {
		return visitorerrors.ErrInvalidContactNo
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return visitorerrors.ErrInvalidContactNo
		}
	}
	return nil
}

var titleCaser = cases.Title(language.English, cases.NoLower)

// titleCase uppercases the first letter of each word, leaving the rest as
// typed (entry-time convention for name, company and purpose).
func titleCase(s string) string {
	return titleCaser.String(s)
}

func mapToResponse(v Visitor) VisitorResponse {
	resp := VisitorResponse{
		ID:                 v.ID,
		Name:               v.Name,
		Company:            v.Company,
		Country:            v.Country,
		State:              v.State,
		City:               v.City,
		ContactNo:          v.ContactNo,
		ContactPerson:      v.ContactPerson,
		ContactPersonEmail: v.ContactPersonEmail,
		Department:         v.Department,
		Purpose:            v.Purpose,
		VisitDate:          v.VisitDate.Format("2006-01-02"),
		CreatedAt:          v.CreatedAt.Format(time.RFC3339),
	}
	if v.OutTime != nil {
		out := v.OutTime.Format(time.RFC3339)
		resp.OutTime = &out
	}
	return resp
}
