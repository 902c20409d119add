package cli

import (
	"github.com/CSCI-GA-2820-FA22-001/shopcarts/stubapi"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newStubAPICmd(app *App) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "stub-api",
		Short: "Serve an in-memory shopcart REST API",
		Long:  "Serves an in-memory shopcart REST API in the selected layout. Data is lost on exit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			variant, err := app.variant()
			if err != nil {
				return err
			}
			router := stubapi.NewRouter(variant, app.logger)

			app.logger.Info("starting stub shopcart API",
				zap.String("port", port),
				zap.String("variant", variant.Name),
				zap.String("base_path", variant.BasePath),
			)
			return router.Run(":" + port)
		},
	}

	cmd.Flags().StringVar(&port, "port", app.Config.StubAPIPort, "Port to listen on")
	return cmd
}
