package activity

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/models"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker consumes action events from the queue on its own channel.
type Worker struct {
	workerID  int
	channel   *amqp.Channel
	queueName string
	tracker   *Tracker
	logger    *zap.Logger
}

// NewWorker opens a channel with prefetch 1 so each worker holds at most
// one unacknowledged event.
func NewWorker(workerID int, conn *amqp.Connection, queueName string, tracker *Tracker, logger ...*zap.Logger) (*Worker, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel for worker %d: %w", workerID, err)
	}

	if err := ch.Qos(1, 0, false); err != nil {
		ch.Close()
		return nil, fmt.Errorf("failed to set QoS for worker %d: %w", workerID, err)
	}

	return newWorker(workerID, ch, queueName, tracker, logger...), nil
}

func newWorker(workerID int, ch *amqp.Channel, queueName string, tracker *Tracker, logger ...*zap.Logger) *Worker {
	l := zap.L().Named("activity.worker")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("activity.worker")
	}
	return &Worker{
		workerID:  workerID,
		channel:   ch,
		queueName: queueName,
		tracker:   tracker,
		logger:    l.With(zap.Int("worker_id", workerID)),
	}
}

// Start consumes until the channel closes.
func (w *Worker) Start(wg *sync.WaitGroup) {
	defer wg.Done()
	defer w.channel.Close()

	msgs, err := w.channel.Consume(
		w.queueName,                          // queue
		fmt.Sprintf("worker-%d", w.workerID), // consumer tag
		false,                                // auto-ack
		false,                                // exclusive
		false,                                // no-local
		false,                                // no-wait
		nil,                                  // args
	)
	if err != nil {
		w.logger.Error("failed to register consumer", zap.Error(err))
		return
	}

	w.logger.Info("worker started")
	for msg := range msgs {
		w.processMessage(msg)
	}
	w.logger.Info("worker stopped")
}

func (w *Worker) processMessage(msg amqp.Delivery) {
	var event models.ActionEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil || event.Action == "" {
		w.logger.Warn("dropping malformed action event", zap.Error(err))
		// malformed; never requeue
		if err := msg.Nack(false, false); err != nil {
			w.logger.Error("failed to nack message", zap.Error(err))
		}
		return
	}

	w.tracker.Record(event)

	if err := msg.Ack(false); err != nil {
		w.logger.Error("failed to acknowledge message", zap.Error(err))
		return
	}
	w.logger.Debug("processed action event",
		zap.String("event_id", event.EventID),
		zap.String("action", event.Action),
		zap.String("outcome", event.Outcome),
	)
}

func (w *Worker) Stop() {
	if w.channel != nil {
		w.channel.Close()
	}
}
