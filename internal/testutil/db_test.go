package testutil

import (
	"context"
	"testing"
	"time"

	"palmcafe/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const bumpSequence = "UPDATE invoice_sequences SET last_value = last_value + 1 WHERE name = ?"

func TestNewDB_WritersQueueWhileReadersProceed(t *testing.T) {
	db := NewDB(t)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	first := make(chan error, 1)
	go func() {
		first <- db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Exec(bumpSequence, model.SequenceInvoice).Error; err != nil {
				return err
			}
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	// another connection can still read while the writer holds the lock
	var seq model.InvoiceSequence
	require.NoError(t, db.WithContext(ctx).First(&seq, "name = ?", model.SequenceInvoice).Error)
	assert.Equal(t, DefaultBaseline-1, seq.LastValue, "uncommitted bump is not visible")

	second := make(chan error, 1)
	go func() {
		second <- db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return tx.Exec(bumpSequence, model.SequenceInvoice).Error
		})
	}()
	select {
	case err := <-second:
		t.Fatalf("second writer finished while the first was open: %v", err)
	case <-time.After(200 * time.Millisecond):
	}

	close(release)
	require.NoError(t, <-first)
	require.NoError(t, <-second)

	require.NoError(t, db.WithContext(ctx).First(&seq, "name = ?", model.SequenceInvoice).Error)
	assert.Equal(t, DefaultBaseline+1, seq.LastValue)
}

func TestNewDB_PoolsSeveralConnections(t *testing.T) {
	sqlDB, err := NewDB(t).DB()
	require.NoError(t, err)
	assert.Equal(t, PoolSize, sqlDB.Stats().MaxOpenConnections)
}
