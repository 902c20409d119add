package cli

import (
	"github.com/CSCI-GA-2820-FA22-001/shopcarts/controller"
	"github.com/CSCI-GA-2820-FA22-001/shopcarts/handlers"
	"github.com/CSCI-GA-2820-FA22-001/shopcarts/rabbitmq"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(app *App) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the admin console over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, variant, err := app.newClient()
			if err != nil {
				return err
			}

			var recorder controller.ActivityRecorder
			if app.Config.ActivityEnabled() {
				pool, err := rabbitmq.NewChannelPool(app.Config.RabbitMQURL, app.Config.RabbitMQQueue, app.Config.ChannelPoolSize, app.logger)
				if err != nil {
					return err
				}
				defer pool.Close()
				recorder = rabbitmq.NewPublisher(pool, app.Config.RabbitMQQueue, app.logger)
			}

			ctrl := controller.NewController(client, variant, recorder, app.logger)
			router := handlers.NewRouter(handlers.NewConsoleHandler(ctrl, variant.Name, app.logger), app.logger)

			app.logger.Info("starting shopcart admin console",
				zap.String("port", port),
				zap.String("api_url", app.APIURL),
				zap.String("variant", variant.Name),
				zap.Bool("activity", recorder != nil),
			)
			return router.Run(":" + port)
		},
	}

	cmd.Flags().StringVar(&port, "port", app.Config.Port, "Port to listen on")
	return cmd
}
