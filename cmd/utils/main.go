package main

import (
	"context"
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/dusk-network/dusk-mempool/pkg/core/mempool"

	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "Mempool Inspect CMD"
	app.Usage = "debug inspection tool for a running node's mempool"

	app.Commands = []cli.Command{
		inspectCMD,
	}

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var (
	grpcHostFlag = cli.StringFlag{
		Name:  "grpchost",
		Usage: "mempool gRPC HOST , eg: --grpchost=127.0.0.1:9001",
		Value: "127.0.0.1:9001",
	}

	inspectCMD = cli.Command{
		Name:      "inspect",
		Usage:     "print the live counts of the four mempool queues",
		Action:    inspectAction,
		ArgsUsage: "",
		Flags: []cli.Flag{
			grpcHostFlag,
		},
		Description: `Query a node's mempool query surface for queue counts`,
	}
)

// inspectAction dials the node's mempool query surface and prints the
// counts of unconfirmed, bundled, queued and multisignature entries.
func inspectAction(ctx *cli.Context) error {
	grpcHost := ctx.String(grpcHostFlag.Name)

	dialCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(dialCtx, grpcHost,
		grpc.WithInsecure(),
		grpc.WithBlock(),
		grpc.WithDefaultCallOptions(grpc.CallContentSubtype("json")),
	)
	if err != nil {
		return fmt.Errorf("dial %s: %w", grpcHost, err)
	}
	defer conn.Close()

	var resp mempool.CountsResponse
	if err := conn.Invoke(dialCtx, "/mempool.Query/Counts", &mempool.CountsRequest{}, &resp); err != nil {
		return fmt.Errorf("counts rpc: %w", err)
	}

	log.WithFields(log.Fields{
		"unconfirmed":    resp.Unconfirmed,
		"bundled":        resp.Bundled,
		"queued":         resp.Queued,
		"multisignature": resp.Multisignature,
	}).Info("mempool counts")

	return nil
}
