package repositories_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"stakegulf-cms/models"
	"stakegulf-cms/repositories"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestGuideRepository_GetByIdentifier(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewGuideRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "guides" WHERE guides.id = $1`)).
		WithArgs(42, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "slug"}).AddRow(42, "Odds explained", "odds-explained"))

	guide, err := repo.GetByIdentifier(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "odds-explained", guide.Slug)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "guides" WHERE guides.slug = $1`)).
		WithArgs("2024-guide", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "slug"}).AddRow(7, "2024", "2024-guide"))

	guide, err = repo.GetByIdentifier(ctx, "2024-guide")
	require.NoError(t, err)
	assert.Equal(t, uint(7), guide.ID)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "guides" WHERE guides.slug = $1`)).
		WithArgs("missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = repo.GetByIdentifier(ctx, "missing")
	assert.Equal(t, models.ErrorNotFound{Message: "Guide not found"}, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuideRepository_GetByIdentifierOutOfRangeID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewGuideRepository(db)

	_, err := repo.GetByIdentifier(context.Background(), "99999999999")

	assert.Equal(t, models.ErrorNotFound{Message: "Guide not found"}, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuideRepository_DriverFailureIsInternal(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewGuideRepository(db)
	driverErr := errors.New("connection reset by peer")

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "guides" WHERE guides.slug = $1`)).
		WithArgs("odds", 1).
		WillReturnError(driverErr)

	_, err := repo.GetByIdentifier(context.Background(), "odds")

	var internal models.ErrorInternalServer
	require.ErrorAs(t, err, &internal)
	assert.Equal(t, "Internal server error.", internal.Message)
	assert.ErrorIs(t, err, driverErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuideRepository_UpdateWritesOnlySuppliedColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewGuideRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "guides" SET "status"=$1,"updated_at"=$2,"updated_by"=$3 WHERE id = $4`)).
		WithArgs("published", sqlmock.AnyArg(), 3, 21).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "guides" WHERE guides.id = $1`)).
		WithArgs(21, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "slug", "status"}).
			AddRow(21, "Bankroll 101", "bankroll-101", "published"))

	guide, err := repo.Update(context.Background(), 21, map[string]interface{}{"status": "published"}, 3)

	require.NoError(t, err)
	assert.Equal(t, "Bankroll 101", guide.Title)
	assert.Equal(t, "published", guide.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuideRepository_UpdateMissingRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewGuideRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "guides" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, err := repo.Update(context.Background(), 404, map[string]interface{}{"title": "x"}, 1)

	assert.IsType(t, models.ErrorNotFound{}, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGuideRepository_CreateDuplicateSlug(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewGuideRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "guides"`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "guides_slug_key"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.Guide{Title: "Dup", Slug: "dup", ContentBlocks: models.ContentBlocks{}})

	assert.Equal(t, models.ErrorConflict{Message: "A guide with this slug already exists"}, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkAllReadIsIdempotent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewNotificationRepository(db)
	ctx := context.Background()

	query := regexp.QuoteMeta(`UPDATE "notifications" SET "is_read"=$1 WHERE user_id = $2 AND is_read = $3`)
	mock.ExpectBegin()
	mock.ExpectExec(query).WithArgs(true, 4, false).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(query).WithArgs(true, 4, false).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	n, err := repo.MarkAllRead(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = repo.MarkAllRead(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_MarkReadOtherUsersNotification(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewNotificationRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "notifications" SET "is_read"=$1 WHERE id = $2 AND user_id = $3`)).
		WithArgs(true, 8, 4).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err := repo.MarkRead(context.Background(), 8, 4)

	assert.Equal(t, models.ErrorNotFound{Message: "Notification not found"}, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_DeleteReturnsRow(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewUserRepository(db)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM "users" WHERE id = $1 RETURNING "id","username"`)).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(5, "carol"))
	mock.ExpectCommit()

	user, err := repo.Delete(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "carol", user.Username)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`DELETE FROM "users" WHERE id = $1`)).
		WithArgs(6).
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
	mock.ExpectCommit()

	_, err = repo.Delete(ctx, 6)
	assert.IsType(t, models.ErrorNotFound{}, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingRepository_CreateDuplicateKey(t *testing.T) {
	db, mock := newMockDB(t)
	repo := repositories.NewSettingRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "site_settings"`)).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.Setting{Key: "site_name", Type: "string"})

	assert.EqualError(t, err, "Setting already exists")
	assert.NoError(t, mock.ExpectationsWereMet())
}
