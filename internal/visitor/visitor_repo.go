package visitor

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=visitor_repo.go -destination=mock/visitor_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, v *Visitor) error
	FindAll(ctx context.Context, f ListFilter) ([]Visitor, error)
	FindOpenByContactNo(ctx context.Context, contactNo string) (*Visitor, error)
	UpdateFields(ctx context.Context, id int, fields map[string]any) (int64, error)
	MarkOut(ctx context.Context, id int, t time.Time) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, v *Visitor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *repository) FindAll(ctx context.Context, f ListFilter) ([]Visitor, error) {
	q := r.db.WithContext(ctx).Model(&Visitor{})

	if f.TodayOnly {
		q = q.Where("DATE(created_at) = CURRENT_DATE")
	}
	if f.Name != "" {
		q = q.Where("name ILIKE ?", "%"+f.Name+"%")
	}
	if f.ContactNo != "" {
		q = q.Where("contact_no LIKE ?", "%"+f.ContactNo+"%")
	}
	if f.ContactPerson != "" {
		q = q.Where("contact_person ILIKE ?", "%"+f.ContactPerson+"%")
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}

	var rows []Visitor
	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindOpenByContactNo(ctx context.Context, contactNo string) (*Visitor, error) {
	var v Visitor
	err := r.db.WithContext(ctx).
		Where("contact_no = ?", contactNo).
		Where("out_time IS NULL").
		Order("created_at DESC").
		First(&v).Error
	return &v, err
}

func (r *repository) UpdateFields(ctx context.Context, id int, fields map[string]any) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Visitor{}).
		Where("id = ?", id).
		Updates(fields)
	return res.RowsAffected, res.Error
}

// MarkOut stamps out_time only while the visit is still open, so a repeated
// checkout is a no-op rather than a rewrite.
func (r *repository) MarkOut(ctx context.Context, id int, t time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Visitor{}).
		Where("id = ? AND out_time IS NULL", id).
		Update("out_time", t)
	return res.RowsAffected, res.Error
}
