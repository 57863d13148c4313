package main

import (
	"context"
	"log"
	"net"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	pb "github.com/danielpatrickdp/output-arbiter/gen/arbiterpb"
	"github.com/danielpatrickdp/output-arbiter/internal/archive"
	"github.com/danielpatrickdp/output-arbiter/internal/server"
)

// #region config

type config struct {
	ListenAddr string `env:"ARBITER_LISTEN" envDefault:":50061"`

	// ArchivePath is the SQLite snapshot archive. Empty disables
	// persistence entirely (snapshots are still served over the wire).
	ArchivePath string `env:"ARBITER_DB" envDefault:"arbiter.db"`

	SnapshotInterval time.Duration `env:"ARBITER_SNAPSHOT_INTERVAL" envDefault:"5m"`
	ArchiveKeep      int           `env:"ARBITER_ARCHIVE_KEEP" envDefault:"32"`
}

// #endregion config

// #region main

func main() {
	cfg, err := env.ParseAs[config]()
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	var store *archive.Store
	if cfg.ArchivePath != "" {
		store, err = archive.NewStore(cfg.ArchivePath)
		if err != nil {
			log.Fatalf("open archive %s: %v", cfg.ArchivePath, err)
		}
		defer store.Close()
	}

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Fatalf("listen %s: %v", cfg.ListenAddr, err)
	}

	svc := server.New(store)
	grpcServer := grpc.NewServer()
	pb.RegisterArbiterServer(grpcServer, svc)

	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthSrv)
	healthSrv.SetServingStatus("arbiter.v1.Arbiter", healthpb.HealthCheckResponse_SERVING)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Printf("arbiter daemon listening on %s (archive: %s)", cfg.ListenAddr, archiveLabel(cfg.ArchivePath))
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		<-ctx.Done()
		healthSrv.Shutdown()
		grpcServer.GracefulStop()
		return nil
	})

	if store != nil {
		g.Go(func() error {
			return captureLoop(ctx, svc, store, cfg.SnapshotInterval, cfg.ArchiveKeep)
		})
	}

	if err := g.Wait(); err != nil && err != grpc.ErrServerStopped {
		log.Fatalf("daemon error: %v", err)
	}
	log.Println("arbiter daemon stopped")
}

// #endregion main

// #region capture-loop

// captureLoop archives every live supervisor on a fixed interval, prunes
// the archive to its retention limit, and takes one final capture on
// shutdown so a restart can resume from the freshest state.
func captureLoop(ctx context.Context, svc *server.Service, store *archive.Store, interval time.Duration, keep int) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			capture(svc, store, keep)
		case <-ctx.Done():
			capture(svc, store, keep)
			return nil
		}
	}
}

func capture(svc *server.Service, store *archive.Store, keep int) {
	n, err := svc.ArchiveAll()
	if err != nil {
		log.Printf("snapshot capture error: %v", err)
		return
	}
	if n == 0 {
		return
	}
	pruned, err := store.Prune(keep)
	if err != nil {
		log.Printf("archive prune error: %v", err)
		return
	}
	log.Printf("archived %d snapshot(s), pruned %d", n, pruned)
}

// #endregion capture-loop

// #region helpers

func archiveLabel(path string) string {
	if path == "" {
		return "disabled"
	}
	return path
}

// #endregion helpers
