package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"testing"

	"finance-api/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	keys   []string
	events []models.TransactionEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.keys = append(p.keys, key)
	p.events = append(p.events, event.(models.TransactionEvent))
	return p.err
}

func (p *recordingPublisher) types() []models.TransactionEventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]models.TransactionEventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

func TestTransactionEvents_PublishedPerWrite(t *testing.T) {
	f := newFixture(t)
	pub := &recordingPublisher{}
	f.svc.WithEvents(pub)
	acct := f.account(t, alice, "100")

	tx := f.create(t, alice, acct.ID, "10", nil)

	_, err := f.svc.UpdateTransaction(context.Background(), alice, tx.ID, models.TransactionPatch{Amount: amountPtr("10")})
	require.NoError(t, err)
	_, err = f.svc.UpdateTransaction(context.Background(), alice, tx.ID, models.TransactionPatch{Amount: amountPtr("12")})
	require.NoError(t, err)
	require.NoError(t, f.svc.DeleteTransaction(context.Background(), alice, tx.ID))

	// The unchanged-amount update writes nothing and so publishes nothing.
	assert.Equal(t, []models.TransactionEventType{
		models.TransactionCreated,
		models.TransactionUpdated,
		models.TransactionDeleted,
	}, pub.types())
	assert.True(t, pub.events[1].Amount.Equal(*amountPtr("12")))
	assert.Equal(t, tx.ID, pub.events[2].TransactionID)
	for _, key := range pub.keys {
		assert.Equal(t, strconv.FormatInt(acct.ID, 10), key)
	}
}

func TestTransactionEvents_RejectedWritesPublishNothing(t *testing.T) {
	f := newFixture(t)
	pub := &recordingPublisher{}
	f.svc.WithEvents(pub)
	acct := f.account(t, alice, "100")
	tx := f.create(t, alice, acct.ID, "10", nil)

	_, err := f.svc.UpdateTransaction(context.Background(), bob, tx.ID, models.TransactionPatch{Amount: amountPtr("99")})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, f.svc.DeleteTransaction(context.Background(), bob, tx.ID), ErrForbidden)

	assert.Equal(t, []models.TransactionEventType{models.TransactionCreated}, pub.types())
}

func TestTransactionEvents_PublishFailureDoesNotFailWrite(t *testing.T) {
	f := newFixture(t)
	f.svc.WithEvents(&recordingPublisher{err: errors.New("broker down")})
	acct := f.account(t, alice, "100")

	tx := f.create(t, alice, acct.ID, "10", nil)

	fetched, err := f.svc.GetTransaction(context.Background(), alice, tx.ID)
	require.NoError(t, err)
	assert.Equal(t, tx.ID, fetched.ID)
}
