package database

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"passmanager/config"
	"passmanager/internal/infra/persistence/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return &buf, newGormSlogLogger(base, cfg)
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_TraceError(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "boom")
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	buf, l := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_InfoOnlyInDebug(t *testing.T) {
	buf, l := newBufferedGormLogger(false)
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Empty(t, buf.String())

	buf, l = newBufferedGormLogger(true)
	l.Trace(context.Background(), time.Now(), sqlFn, nil)
	assert.Contains(t, buf.String(), "GORM query")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	buf, l := newBufferedGormLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn, errors.New("boom"))

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	_, l := newBufferedGormLogger(true)

	filter, ok := l.(gorm.ParamsFilter)
	require.True(t, ok)

	sql, params := filter.ParamsFilter(context.Background(), "INSERT INTO t VALUES (?)", "S3cretPlain!")
	assert.Equal(t, "INSERT INTO t VALUES (?)", sql)
	assert.Nil(t, params)
}

func TestGormSlogLogger_FailedInsertOmitsStoredPassword(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	lc := fxtest.NewLifecycle(t)

	db, err := New(Params{Lifecycle: lc, Config: sqliteConfig(t, true), Logger: base})
	require.NoError(t, err)
	lc.RequireStart()
	defer lc.RequireStop()

	entry := func() *model.ServicePasswordModel {
		return &model.ServicePasswordModel{Username: "u", ServiceName: "svc", Password: "S3cretPlain!"}
	}
	require.NoError(t, db.Create(entry()).Error)
	require.Error(t, db.Create(entry()).Error)

	out := buf.String()
	assert.Contains(t, out, "GORM query failed")
	assert.NotContains(t, out, "S3cretPlain!")
}
