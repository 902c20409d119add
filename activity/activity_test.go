package activity

import (
	"bytes"
	"encoding/json"
	"sync"
	"testing"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/models"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAcknowledger struct {
	acked   []uint64
	nacked  []uint64
	requeue bool
}

func (f *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	f.acked = append(f.acked, tag)
	return nil
}

func (f *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	f.nacked = append(f.nacked, tag)
	f.requeue = requeue
	return nil
}

func (f *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return f.Nack(tag, false, requeue)
}

func delivery(t *testing.T, ack amqp.Acknowledger, tag uint64, body any) amqp.Delivery {
	t.Helper()
	raw, ok := body.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}
	return amqp.Delivery{Acknowledger: ack, DeliveryTag: tag, Body: raw}
}

func TestTracker_Record(t *testing.T) {
	tr := NewTracker()

	tr.Record(models.ActionEvent{Action: "create-shopcart", Outcome: models.OutcomeSuccess})
	tr.Record(models.ActionEvent{Action: "get-item", Outcome: models.OutcomeFailure, Message: "Item not found"})
	tr.Record(models.ActionEvent{Action: "get-item", Outcome: models.OutcomeSuccess})

	assert.Equal(t, int64(3), tr.TotalEvents())
	assert.Equal(t, []ActionCount{
		{Action: "create-shopcart", Successes: 1},
		{Action: "get-item", Successes: 1, Failures: 1},
	}, tr.Summary())

	msg, ok := tr.LastFailure("get-item")
	assert.True(t, ok)
	assert.Equal(t, "Item not found", msg)
	_, ok = tr.LastFailure("create-shopcart")
	assert.False(t, ok)
}

func TestTracker_ConcurrentRecord(t *testing.T) {
	tr := NewTracker()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Record(models.ActionEvent{Action: "list-shopcarts", Outcome: models.OutcomeSuccess})
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(50), tr.TotalEvents())
	assert.Equal(t, int64(50), tr.Summary()[0].Successes)
}

func TestTracker_PrintSummary(t *testing.T) {
	tr := NewTracker()
	tr.Record(models.ActionEvent{Action: "delete-item", Outcome: models.OutcomeFailure, Message: "Server error!"})

	var buf bytes.Buffer
	tr.PrintSummary(&buf)

	out := buf.String()
	assert.Contains(t, out, "Total Events Processed: 1")
	assert.Contains(t, out, "delete-item")
	assert.Contains(t, out, "Server error!")
}

func TestWorker_ProcessMessage_AcksValidEvent(t *testing.T) {
	tr := NewTracker()
	w := newWorker(1, nil, "q", tr, zap.NewNop())
	ack := &fakeAcknowledger{}

	w.processMessage(delivery(t, ack, 7, models.ActionEvent{
		EventID: "e1",
		Action:  "add-item",
		Outcome: models.OutcomeSuccess,
	}))

	assert.Equal(t, []uint64{7}, ack.acked)
	assert.Empty(t, ack.nacked)
	assert.Equal(t, int64(1), tr.TotalEvents())
}

func TestWorker_ProcessMessage_NacksMalformed(t *testing.T) {
	tests := []struct {
		name string
		body []byte
	}{
		{name: "invalid json", body: []byte("{not json")},
		{name: "missing action", body: []byte(`{"outcome":"success"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker()
			w := newWorker(2, nil, "q", tr, zap.NewNop())
			ack := &fakeAcknowledger{}

			w.processMessage(delivery(t, ack, 9, tt.body))

			assert.Empty(t, ack.acked)
			assert.Equal(t, []uint64{9}, ack.nacked)
			assert.False(t, ack.requeue)
			assert.Equal(t, int64(0), tr.TotalEvents())
		})
	}
}
