package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// contentStore holds the create/update/delete plumbing shared by every
// slug-addressed content table.
type contentStore[T any] struct {
	db       *gorm.DB
	table    string
	notFound string
	conflict string
	// scope decorates read queries, e.g. to join display columns.
	scope func(*gorm.DB) *gorm.DB
}

func (s contentStore[T]) read(ctx context.Context) *gorm.DB {
	var model T
	q := s.db.WithContext(ctx).Model(&model)
	if s.scope != nil {
		q = s.scope(q)
	}
	return q
}

func (s contentStore[T]) create(ctx context.Context, row *T) error {
	return translate(s.db.WithContext(ctx).Create(row).Error, s.notFound, s.conflict)
}

func (s contentStore[T]) getByID(ctx context.Context, id uint) (*T, error) {
	var row T
	if err := s.read(ctx).Where(s.table+".id = ?", id).First(&row).Error; err != nil {
		return nil, translate(err, s.notFound, s.conflict)
	}
	return &row, nil
}

func (s contentStore[T]) getByIdentifier(ctx context.Context, identifier string) (*T, error) {
	q, err := byIdentifier(s.read(ctx), s.table, identifier)
	if err != nil {
		return nil, translate(err, s.notFound, s.conflict)
	}

	var row T
	if err := q.First(&row).Error; err != nil {
		return nil, translate(err, s.notFound, s.conflict)
	}
	return &row, nil
}

// update writes only the supplied columns plus the updater stamp in one
// statement, then reloads the row.
func (s contentStore[T]) update(ctx context.Context, id uint, fields map[string]interface{}, updatedBy uint) (*T, error) {
	values := make(map[string]interface{}, len(fields)+2)
	for k, v := range fields {
		values[k] = v
	}
	values["updated_by"] = updatedBy
	values["updated_at"] = time.Now()

	var model T
	res := s.db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return nil, translate(res.Error, s.notFound, s.conflict)
	}
	if res.RowsAffected == 0 {
		return nil, translate(gorm.ErrRecordNotFound, s.notFound, s.conflict)
	}
	return s.getByID(ctx, id)
}

func (s contentStore[T]) delete(ctx context.Context, id uint) error {
	var model T
	res := s.db.WithContext(ctx).Where("id = ?", id).Delete(&model)
	if res.Error != nil {
		return translate(res.Error, s.notFound, s.conflict)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, s.notFound, s.conflict)
	}
	return nil
}
