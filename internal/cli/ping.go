package cli

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/wsuwp/colorpalette/internal/paletted"
)

var (
	pingAddr    string
	pingTimeout time.Duration
)

func init() {
	rootCmd.AddCommand(pingCmd)
	pingCmd.Flags().StringVar(&pingAddr, "addr", "", "daemon address (default: daemon.host:daemon.port)")
	pingCmd.Flags().DurationVar(&pingTimeout, "timeout", 5*time.Second, "request timeout")
}

// PingOutput is the JSON payload of `palette ping`.
type PingOutput struct {
	Addr    string `json:"addr"`
	Version string `json:"version"`
	Latency string `json:"latency"`
}

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that a palette daemon is reachable",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := pingAddr
		if addr == "" {
			cfg := GetConfig()
			addr = net.JoinHostPort(cfg.Daemon.Host, strconv.Itoa(cfg.Daemon.Port))
		}

		conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect to %s: %w", addr, err)
		}
		defer conn.Close()

		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		defer cancel()

		start := time.Now()
		version, err := paletted.NewClient(conn).Ping(ctx)
		if err != nil {
			return fmt.Errorf("ping %s: %w", addr, err)
		}
		output := PingOutput{Addr: addr, Version: version, Latency: formatDuration(time.Since(start))}

		if IsJSONOutput() || IsJSONLOutput() {
			return WriteOutput(cmd.OutOrStdout(), output)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: version %s (%s)\n", output.Addr, output.Version, output.Latency)
		return nil
	},
}
