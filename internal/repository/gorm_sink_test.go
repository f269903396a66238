package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSinkDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "orkud.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestGormSink(t *testing.T) {
	sink, err := NewGormSink(setupSinkDB(t))
	require.NoError(t, err)
	assertSinkContract(t, sink)
}

func TestGormSink_ReplacesRows(t *testing.T) {
	db := setupSinkDB(t)
	sink, err := NewGormSink(db)
	require.NoError(t, err)
	ctx := context.Background()

	d := fixtureDataset()
	require.NoError(t, sink.Save(ctx, d))
	require.NoError(t, sink.Save(ctx, d))

	var n int64
	require.NoError(t, db.Model(&userRow{}).Count(&n).Error)
	assert.Equal(t, int64(2), n)
	require.NoError(t, db.Model(&ticketRow{}).Count(&n).Error)
	assert.Equal(t, int64(2), n)
}

func TestGormSink_PreservesInsertionOrder(t *testing.T) {
	sink, err := NewGormSink(setupSinkDB(t))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, sink.Save(ctx, fixtureDataset()))
	d, err := sink.Load(ctx)
	require.NoError(t, err)

	var ids []string
	for _, u := range d.Users.FindAll(nil) {
		ids = append(ids, u.ID)
	}
	assert.Equal(t, []string{"u2", "u1"}, ids)

	t2, ok := d.SupportTickets.FindByID("t2")
	require.True(t, ok)
	assert.Nil(t, t2.UserID)
	require.NotNil(t, t2.UpdatedAt)
}
