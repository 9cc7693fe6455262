package notification

import (
	"context"
	"errors"
	"testing"

	"buildmart-be/internal/shipment"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateNotification(ctx context.Context, n *Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockRepository) MarkNotification(ctx context.Context, id uuid.UUID, status Status) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockRepository) InsertChannelEvent(ctx context.Context, ev *ChannelEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockRepository) GetUserEmail(ctx context.Context, userID uint) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) SendStatusEmail(ctx context.Context, to string, n *Notification) error {
	args := m.Called(ctx, to, n)
	return args.Error(0)
}

func dispatchedEvent() shipment.NotifyInput {
	return shipment.NotifyInput{
		UserID:     7,
		OrderID:    101,
		ShipmentID: uuid.New(),
		Status:     shipment.StatusDispatched,
		EventType:  shipment.EventShipmentStatus,
	}
}

// --- Tests ---

func TestDispatcher_DeliversEmail(t *testing.T) {
	repo := new(MockRepository)
	gateway := new(MockGateway)

	repo.On("CreateNotification", mock.Anything, mock.Anything).Return(nil)
	repo.On("GetUserEmail", mock.Anything, uint(7)).Return("buyer@example.com", nil)
	gateway.On("SendStatusEmail", mock.Anything, "buyer@example.com", mock.Anything).Return(nil)
	repo.On("InsertChannelEvent", mock.Anything, mock.Anything).Return(nil)
	repo.On("MarkNotification", mock.Anything, mock.Anything, StatusSent).Return(nil)

	d := NewDispatcher(repo, gateway, 4)
	d.Start()
	d.Notify(dispatchedEvent())
	d.Close()

	repo.AssertNumberOfCalls(t, "CreateNotification", 1)
	gateway.AssertNumberOfCalls(t, "SendStatusEmail", 1)
	assert.Equal(t, uint64(1), d.Dispatched.Load())

	n := repo.Calls[0].Arguments.Get(1).(*Notification)
	assert.Equal(t, uint(101), n.OrderID)
	assert.Equal(t, shipment.EventShipmentStatus, n.EventType)
	assert.Equal(t, StatusPending, n.Status)

	ev := findChannelEvent(repo)
	require.NotNil(t, ev)
	assert.Equal(t, ChannelEmail, ev.Channel)
	assert.Equal(t, StatusSent, ev.Status)
	assert.Nil(t, ev.Error)
}

func TestDispatcher_GatewayFailureRecorded(t *testing.T) {
	repo := new(MockRepository)
	gateway := new(MockGateway)

	repo.On("CreateNotification", mock.Anything, mock.Anything).Return(nil)
	repo.On("GetUserEmail", mock.Anything, uint(7)).Return("buyer@example.com", nil)
	gateway.On("SendStatusEmail", mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("mailer returned status 502"))
	repo.On("InsertChannelEvent", mock.Anything, mock.Anything).Return(nil)
	repo.On("MarkNotification", mock.Anything, mock.Anything, StatusFailed).Return(nil)

	d := NewDispatcher(repo, gateway, 4)
	d.Start()
	d.Notify(dispatchedEvent())
	d.Close()

	assert.Equal(t, uint64(1), d.Failed.Load())

	ev := findChannelEvent(repo)
	require.NotNil(t, ev)
	assert.Equal(t, StatusFailed, ev.Status)
	require.NotNil(t, ev.Error)
	assert.Contains(t, *ev.Error, "502")
}

func TestDispatcher_IrrelevantStatusSkipped(t *testing.T) {
	repo := new(MockRepository)
	gateway := new(MockGateway)

	d := NewDispatcher(repo, gateway, 4)
	d.Start()
	d.Notify(shipment.NotifyInput{
		UserID:     1,
		OrderID:    2,
		ShipmentID: uuid.New(),
		Status:     shipment.StatusPreparing,
		EventType:  shipment.EventActionRequired,
	})
	d.Close()

	repo.AssertNotCalled(t, "CreateNotification", mock.Anything, mock.Anything)
	assert.Equal(t, uint64(1), d.Skipped.Load())
}

func TestDispatcher_PreparingWithReasonIsRelevant(t *testing.T) {
	repo := new(MockRepository)
	gateway := new(MockGateway)

	reason := "stock_delay"
	repo.On("CreateNotification", mock.Anything, mock.Anything).Return(nil)
	repo.On("GetUserEmail", mock.Anything, uint(1)).Return("buyer@example.com", nil)
	gateway.On("SendStatusEmail", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.On("InsertChannelEvent", mock.Anything, mock.Anything).Return(nil)
	repo.On("MarkNotification", mock.Anything, mock.Anything, StatusSent).Return(nil)

	d := NewDispatcher(repo, gateway, 4)
	d.Start()
	d.Notify(shipment.NotifyInput{
		UserID:     1,
		OrderID:    2,
		ShipmentID: uuid.New(),
		Status:     shipment.StatusPreparing,
		ReasonCode: &reason,
		EventType:  shipment.EventActionRequired,
	})
	d.Close()

	repo.AssertNumberOfCalls(t, "CreateNotification", 1)
}

func TestDispatcher_QueueFullDropsEvent(t *testing.T) {
	repo := new(MockRepository)
	gateway := new(MockGateway)

	// Not started: nothing consumes, so a 1-slot queue overflows.
	d := NewDispatcher(repo, gateway, 1)
	d.Notify(dispatchedEvent())
	d.Notify(dispatchedEvent())

	assert.Equal(t, uint64(1), d.Dropped.Load())
}

func TestRelevant(t *testing.T) {
	reason := "r1"

	assert.False(t, relevant(shipment.NotifyInput{Status: shipment.StatusPreparing}))
	assert.True(t, relevant(shipment.NotifyInput{Status: shipment.StatusPreparing, ReasonCode: &reason}))
	assert.True(t, relevant(shipment.NotifyInput{Status: shipment.StatusDispatched}))
	assert.True(t, relevant(shipment.NotifyInput{Status: shipment.StatusDelivered}))
	assert.True(t, relevant(shipment.NotifyInput{Status: shipment.StatusCancelled, ReasonCode: &reason}))
}

func findChannelEvent(repo *MockRepository) *ChannelEvent {
	for _, call := range repo.Calls {
		if call.Method == "InsertChannelEvent" {
			return call.Arguments.Get(1).(*ChannelEvent)
		}
	}
	return nil
}
