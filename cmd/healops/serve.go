package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/sourabhkumawat/healops/pkg/agent"
	"github.com/sourabhkumawat/healops/pkg/agent/sandbox"
	"github.com/sourabhkumawat/healops/pkg/bus"
	"github.com/sourabhkumawat/healops/pkg/cleanup"
	"github.com/sourabhkumawat/healops/pkg/config"
	"github.com/sourabhkumawat/healops/pkg/database"
	"github.com/sourabhkumawat/healops/pkg/events"
	"github.com/sourabhkumawat/healops/pkg/github"
	"github.com/sourabhkumawat/healops/pkg/knowledge"
	"github.com/sourabhkumawat/healops/pkg/ledger"
	"github.com/sourabhkumawat/healops/pkg/llm"
	"github.com/sourabhkumawat/healops/pkg/memory"
	"github.com/sourabhkumawat/healops/pkg/models"
	"github.com/sourabhkumawat/healops/pkg/reducer"
	"github.com/sourabhkumawat/healops/pkg/slack"
	"github.com/sourabhkumawat/healops/pkg/telemetry"
	"github.com/sourabhkumawat/healops/pkg/ticketing"
	"github.com/sourabhkumawat/healops/pkg/worker"
)

// resolverAgentID is the registry identity of the resolution agent.
const resolverAgentID = "resolver"

// shutdownTimeout bounds the drain of consumers and workers on SIGTERM.
const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	var metricsAddr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run consumers, resolution workers, and the retention loop",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), metricsAddr)
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", ":9090", "prometheus listen address, empty disables")
	return cmd
}

func serve(parent context.Context, metricsAddr string) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return fmt.Errorf("load database config: %w", err)
	}
	db, err := database.NewClient(ctx, dbCfg)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Bus.RedisAddr,
		Password: cfg.Bus.RedisPassword,
	})
	defer rdb.Close()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}

	gateway := bus.NewGateway(rdb, cfg.Bus.Partitions)
	led := ledger.New(db.Client, gateway)

	model, err := llm.NewAnthropicClient(llm.Options{
		APIKey:       cfg.LLM.APIKey,
		DefaultModel: cfg.LLM.Model,
		MaxTokens:    cfg.LLM.MaxTokens,
		CallTimeout:  cfg.LLM.CallTimeout,
		Recorder:     telemetry.Meter{},
	})
	if err != nil {
		return fmt.Errorf("build llm client: %w", err)
	}

	var repoHost worker.RepoHost
	var repoReader sandbox.RepoReader
	if cfg.GitHub.Token != "" {
		gh := github.NewClient(cfg.GitHub.Token, cfg.HTTP.GitHubAPITimeout)
		repoHost, repoReader = gh, gh
	} else {
		slog.Warn("GITHUB_TOKEN not set, pull request creation disabled")
	}

	var chat worker.ChatClient
	if cfg.Slack.BotToken != "" {
		chat = slack.NewClient(cfg.Slack.BotToken)
	} else {
		slog.Warn("SLACK_BOT_TOKEN not set, chat notifications disabled")
	}

	mem := memory.NewStore(db.Client)
	var embedder knowledge.Embedder
	if cfg.Embed.Addr != "" {
		grpcEmbedder, err := knowledge.NewGRPCEmbedder(cfg.Embed.Addr, cfg.Embed.Model)
		if err != nil {
			return fmt.Errorf("connect embedding sidecar: %w", err)
		}
		defer grpcEmbedder.Close()
		embedder = grpcEmbedder
	}
	know := knowledge.NewRetriever(db.Client, embedder)

	pub := events.NewPublisher(db.DB())
	recorder := agent.NewEntRecorder(db.Client)

	registry := agent.NewRegistry(db.Client)
	err = registry.EnsureAgent(ctx, resolverAgentID, "Resolution Agent", "incident_resolver",
		[]string{"incident", "root_cause", "fix", "pull_request"})
	if err != nil {
		return fmt.Errorf("register agent: %w", err)
	}

	ticketSvc := ticketing.New(ticketing.Options{
		Client:    db.Client,
		Publisher: gateway,
		Clients:   ticketing.OAuthClientFactory(cfg.Linear.ClientID, cfg.Linear.ClientSecret),
	})

	red := reducer.New(reducer.Options{
		Client:      db.Client,
		Resolver:    led,
		LLM:         model,
		Ticketing:   ticketSvc,
		DedupWindow: cfg.DedupWindow,
	})

	runners := func(incidentID string) worker.Runner {
		return agent.NewLoop(agent.Options{
			Config:        cfg.Agent,
			LLM:           model,
			Repo:          repoReader,
			Memory:        mem,
			Knowledge:     know,
			Recorder:      recorder,
			Broadcaster:   worker.NewEventBridge(pub, incidentID),
			ScratchpadDir: cfg.ScratchpadDir,
			AgentName:     resolverAgentID,
		})
	}

	resolver := worker.NewResolver(worker.ResolverOptions{
		Client:     db.Client,
		Ledger:     led,
		Runners:    runners,
		LLM:        model,
		Repo:       repoHost,
		Tickets:    ticketSvc,
		Chat:       chat,
		Registry:   registry,
		Channel:    cfg.Slack.Channel,
		BaseBranch: cfg.GitHub.DefaultBranch,
		AgentName:  resolverAgentID,
	})

	pool := worker.NewPool(cfg.Worker, resolver.HandleTask, led, registry)
	pool.Start(ctx)

	dispatch := func(ctx context.Context, task models.Task) error {
		switch task.Type {
		case models.TaskProcessLogEntry:
			return red.HandleTask(ctx, task)
		case models.TaskResolveIncident:
			return pool.HandleTask(ctx, task)
		case models.TaskRCACursorSlack:
			return resolver.HandleRCA(ctx, task)
		default:
			slog.Warn("Dropping unrecognized task", "task_type", task.Type)
			return nil
		}
	}

	consumerID := consumerIdentity()
	incidents := bus.NewConsumer(rdb, bus.TopicIncidents, cfg.Bus.ConsumerGroup, consumerID, cfg.Bus.Partitions, dispatch)
	if err := incidents.Start(ctx); err != nil {
		return fmt.Errorf("start incidents consumer: %w", err)
	}
	tickets := bus.NewConsumer(rdb, bus.TopicTickets, cfg.Bus.ConsumerGroup, consumerID, cfg.Bus.Partitions, ticketSvc.HandleTask)
	if err := tickets.Start(ctx); err != nil {
		return fmt.Errorf("start tickets consumer: %w", err)
	}

	retention := cleanup.NewRetention(cfg.Cleanup, db.Client, cfg.ScratchpadDir)
	retention.Start(ctx)

	var metricsSrv *http.Server
	if metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{Addr: metricsAddr, Handler: mux}
		go func() {
			if err := metricsSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				slog.Error("Metrics server failed", "error", err)
			}
		}()
	}

	slog.Info("HealOps core started",
		"partitions", cfg.Bus.Partitions,
		"workers", cfg.Worker.WorkerCount,
		"consumer_id", consumerID)

	<-ctx.Done()
	slog.Info("Shutdown signal received, draining")

	done := make(chan struct{})
	go func() {
		incidents.Stop()
		tickets.Stop()
		pool.Stop()
		retention.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Drained cleanly")
	case <-time.After(shutdownTimeout):
		slog.Warn("Drain timed out, exiting anyway")
	}

	if metricsSrv != nil {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = metricsSrv.Shutdown(sctx)
	}
	return nil
}

func consumerIdentity() string {
	host, err := os.Hostname()
	if err != nil {
		host = "healops"
	}
	return fmt.Sprintf("%s-%d", host, os.Getpid())
}
