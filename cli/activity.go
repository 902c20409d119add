package cli

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/CSCI-GA-2820-FA22-001/shopcarts/activity"
	"github.com/CSCI-GA-2820-FA22-001/shopcarts/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newActivityCmd(app *App) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Consume console action events and print a summary on shutdown",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Config.ActivityEnabled() {
				return fmt.Errorf("RABBITMQ_URL is not set")
			}
			if workers <= 0 {
				return fmt.Errorf("--workers must be positive, got %d", workers)
			}
			queue := app.Config.RabbitMQQueue

			conn, err := amqp.Dial(app.Config.RabbitMQURL)
			if err != nil {
				return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
			}
			defer conn.Close()

			ch, err := conn.Channel()
			if err != nil {
				return fmt.Errorf("failed to open a channel: %w", err)
			}
			if err := rabbitmq.DeclareQueue(ch, queue); err != nil {
				ch.Close()
				return err
			}
			ch.Close()

			tracker := activity.NewTracker()
			var wg sync.WaitGroup
			for i := 1; i <= workers; i++ {
				w, err := activity.NewWorker(i, conn, queue, tracker, app.logger)
				if err != nil {
					return err
				}
				wg.Add(1)
				go w.Start(&wg)
			}
			app.logger.Info("activity workers started", zap.Int("workers", workers), zap.String("queue", queue))

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			select {
			case <-sigChan:
				app.logger.Info("received shutdown signal, stopping workers")
			case <-cmd.Context().Done():
			}

			// closing the connection ends every worker's delivery loop
			conn.Close()
			wg.Wait()

			tracker.PrintSummary(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", app.Config.NumWorkers, "Number of consumer workers")
	return cmd
}
