package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wsuwp/colorpalette/internal/logging"
	"github.com/wsuwp/colorpalette/internal/paletted"
)

var (
	serveHost string
	servePort int
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveHost, "host", "", "listen host (default: daemon.host)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default: daemon.port)")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the palette gRPC daemon",
	Long: `Serve palette.v1.PaletteService until interrupted.

SIGHUP reloads palette extension files without restarting.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
		defer stop()

		progress := startProgress("Loading palettes")
		a, err := newApp(ctx)
		if err != nil {
			progress.Fail(err)
			return err
		}
		defer a.Close()
		progress.Done()

		logger := logging.Component("daemon")
		daemon, err := paletted.New(GetConfig(), a.backend(), logger, paletted.Options{
			Hostname: serveHost,
			Port:     servePort,
			Version:  Version,
		})
		if err != nil {
			return err
		}

		hup := make(chan os.Signal, 1)
		signal.Notify(hup, syscall.SIGHUP)
		defer signal.Stop(hup)
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case <-hup:
					if err := a.files.Reload(); err == nil {
						logger.Info().Int("palettes", a.service.Registry().Palettes().Len()).Msg("palette files reloaded")
					}
				}
			}
		}()

		return daemon.Run(ctx)
	},
}
