package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/oldentide/server/internal/config"
	"github.com/oldentide/server/internal/data"
	"github.com/oldentide/server/internal/login"
	"github.com/oldentide/server/internal/persist"
	"github.com/oldentide/server/internal/shell"
	"github.com/oldentide/server/internal/world"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := "config/server.toml"
	if p := os.Getenv("OLDENTIDE_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	log.Info("starting dedicated server",
		zap.String("name", cfg.Server.Name),
		zap.Int("id", cfg.Server.ID))

	// The store open is fatal on failure; nothing downstream can run
	// without it.
	db, err := persist.Open(cfg.Database.Path, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := persist.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("migrate store: %w", err)
	}
	log.Info("store ready", zap.String("path", cfg.Database.Path))

	professions, err := data.LoadProfessions(cfg.Data.Professions)
	if err != nil {
		return fmt.Errorf("load professions: %w", err)
	}
	npcTemplates, err := data.LoadNPCs(cfg.Data.NPCs)
	if err != nil {
		return fmt.Errorf("load npcs: %w", err)
	}
	log.Info("world data loaded",
		zap.Int("professions", len(professions)),
		zap.Int("npc_templates", len(npcTemplates)))

	accounts := persist.NewAccountRepo(db)
	players := persist.NewPlayerRepo(db)
	npcs := persist.NewNPCRepo(db)
	state := world.NewState()

	if _, err := world.SpawnNPCs(ctx, npcs, npcTemplates, log); err != nil {
		return fmt.Errorf("spawn npcs: %w", err)
	}

	svc := login.NewService(accounts, players, professions, log)
	go func() {
		log.Info("registration endpoint listening", zap.String("bind", cfg.Network.WebAddress))
		if err := http.ListenAndServe(cfg.Network.WebAddress, svc.Handler()); err != nil {
			log.Error("registration endpoint stopped", zap.Error(err))
		}
	}()

	if err := listenGame(ctx, cfg.Network.BindAddress, log); err != nil {
		return fmt.Errorf("bind game socket: %w", err)
	}

	sh := shell.New(db, accounts, npcs, state, stop, log)
	go sh.Run(ctx)

	<-ctx.Done()
	log.Info("server stopped")
	return nil
}

// listenGame binds the game UDP socket and drains it. Packet decoding
// belongs to the protocol layer; the socket is opened here so operators see
// bind errors at startup instead of at first login.
func listenGame(ctx context.Context, bind string, log *zap.Logger) error {
	addr, err := net.ResolveUDPAddr("udp", bind)
	if err != nil {
		return err
	}
	conn, err := net.ListenUDP("udp", addr)
	if err != nil {
		return err
	}
	log.Info("game socket listening", zap.String("bind", bind))

	go func() {
		<-ctx.Done()
		conn.Close()
	}()
	go func() {
		buf := make([]byte, 65507)
		for {
			n, remote, err := conn.ReadFromUDP(buf)
			if err != nil {
				return
			}
			log.Debug("packet received",
				zap.Stringer("from", remote),
				zap.Int("bytes", n))
		}
	}()
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
