// Command node assembles a single election process: it loads YAML
// configuration, wires a gRPC transport and server around a raft.Node, and
// runs until SIGINT/SIGTERM.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"quorum/config"
	"quorum/proto"
	"quorum/raft"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
)

func main() {
	configPath := flag.String("config", "node.yaml", "path to this node's YAML configuration file")
	verbose := flag.Bool("verbose", false, "log per-heartbeat and per-RPC detail")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "node:", err)
		os.Exit(1)
	}

	level := logrus.InfoLevel
	if *verbose {
		level = logrus.DebugLevel
	}
	logger := raft.NewLoggerWithLevel(cfg.ID, level)

	transport := raft.NewGRPCTransport(cfg.Peers, cfg.RequestTimeout.Duration, logger)

	// Randomize the base election timeout within [t, 2t) per node so a
	// cold-started cluster doesn't split its first votes.
	electionTimeout := raft.RandomDuration(cfg.ElectionTimeout.Duration, 2*cfg.ElectionTimeout.Duration)

	node := raft.NewNode(raft.NodeConfig{
		ID:              cfg.ID,
		Address:         cfg.Address,
		PeerCount:       len(cfg.Peers),
		ElectionTimeout: electionTimeout,
		HeartbeatMin:    cfg.HeartbeatMin.Duration,
		HeartbeatMax:    cfg.HeartbeatMax.Duration,
		Transport:       transport,
		Logger:          logger,
	})

	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		logger.Error("listen on %s: %v", cfg.Address, err)
		os.Exit(1)
	}

	server := grpc.NewServer()
	proto.RegisterElectionServer(server, raft.NewGRPCServer(node))

	go func() {
		if err := server.Serve(listener); err != nil {
			logger.Error("gRPC server stopped: %v", err)
		}
	}()

	node.Start()
	logger.Info("node started at %s (election timeout %s)", cfg.Address, electionTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		logger.Info("received signal %v, shutting down", sig)
		cancel()
		server.GracefulStop()
	}()

	node.Run(ctx)
}
