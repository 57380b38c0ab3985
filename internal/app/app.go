// Package app wires the support pipeline and its stores from configuration. Both the
// API server and the chatctl CLI build on it.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"customer-support-agent/config"
	"customer-support-agent/internal/analytics"
	"customer-support-agent/internal/chat"
	"customer-support-agent/internal/chat/repository/memory"
	chatUsecase "customer-support-agent/internal/chat/usecase"
	"customer-support-agent/internal/classifier"
	"customer-support-agent/internal/escalation"
	"customer-support-agent/internal/knowledge"
	"customer-support-agent/internal/model"
	"customer-support-agent/internal/order"
	orderRepo "customer-support-agent/internal/order/repository"
	"customer-support-agent/internal/order/repository/sqlite"
	orderUsecase "customer-support-agent/internal/order/usecase"
	"customer-support-agent/internal/pipeline"
	"customer-support-agent/internal/profile"
	"customer-support-agent/internal/troubleshoot"
	"customer-support-agent/pkg/embedding"
	"customer-support-agent/pkg/llmprovider"
	"customer-support-agent/pkg/log"
	"customer-support-agent/pkg/voyage"
)

// App holds every long-lived component.
type App struct {
	l log.Logger

	OrderRepo  orderRepo.Repository
	Orders     order.UseCase
	Knowledge  *knowledge.Retriever
	Rules      *classifier.RuleClassifier
	Classifier pipeline.IntentClassifier
	Planner    *troubleshoot.Troubleshooter
	Pipeline   *pipeline.Pipeline
	Analytics  *analytics.Analytics
	Profiles   *profile.Store
	Handoff    *escalation.Handoff
	Chat       chat.UseCase
}

// New builds the application. Metrics are registered on reg.
func New(ctx context.Context, cfg *config.Config, l log.Logger, reg prometheus.Registerer) (*App, error) {
	a := &App{l: l}

	repo, err := OpenOrderStore(ctx, cfg.OrderStore, l)
	if err != nil {
		return nil, err
	}
	a.OrderRepo = repo
	a.Orders = orderUsecase.New(repo, l)

	if a.Knowledge, err = a.buildKnowledge(ctx, cfg); err != nil {
		repo.Close()
		return nil, err
	}

	a.Rules = classifier.NewRules(nil)
	a.Classifier = a.buildClassifier(ctx, cfg)

	if a.Planner, err = troubleshoot.New(); err != nil {
		repo.Close()
		return nil, fmt.Errorf("load troubleshooting playbooks: %w", err)
	}

	a.Analytics = analytics.New(reg)
	a.Profiles = profile.NewStore(l, profile.DefaultSize, profile.DefaultTTL)

	a.Pipeline, err = pipeline.New(l, pipeline.Deps{
		Classifier:  a.Classifier,
		Categorizer: a.Rules,
		Knowledge:   a.Knowledge,
		Orders:      a.Orders,
		Planner:     a.Planner,
	}, pipeline.Config{
		StageTimeout: cfg.Pipeline.StageTimeout,
		TopK:         cfg.Knowledge.TopK,
	},
		pipeline.WithMetrics(pipeline.NewMetrics(reg)),
		pipeline.WithObservers(a.Analytics, a.Profiles),
	)
	if err != nil {
		repo.Close()
		return nil, err
	}

	a.Handoff = escalation.NewHandoff(l, cfg.Escalation.Timeout)
	// expired or evicted sessions release their handoff ticket
	sessions := memory.New(l, maxOr(cfg.Session.MaxSessions, chat.DefaultMaxSessions), cfg.Session.TTL,
		memory.WithOnEvict(a.Handoff.Forget))
	a.Chat = chatUsecase.New(l, sessions, a.Pipeline, a.Handoff, chatUsecase.Config{
		RateLimitPerMin: cfg.Session.RateLimitPerMin,
		MaxSessions:     cfg.Session.MaxSessions,
		SessionTTL:      cfg.Session.TTL,
	})

	l.Infof(ctx, "internal.app.New: classifier=%s knowledge=%s items=%d", cfg.Classifier.Mode, a.Knowledge.Strategy(), a.Knowledge.Len())
	return a, nil
}

// Ready reports whether the order store answers.
func (a *App) Ready(ctx context.Context) error {
	_, err := a.OrderRepo.ListProducts(ctx, orderRepo.ListProductsOptions{InStockOnly: true})
	return err
}

// Close drains observers, resolves open escalations and closes the store.
func (a *App) Close() {
	a.Pipeline.Close()
	a.Handoff.Close()
	if err := a.OrderRepo.Close(); err != nil {
		a.l.Warnf(context.Background(), "internal.app.Close: order store: %v", err)
	}
}

// OpenOrderStore opens the SQLite order store, creating its directory, and migrates it.
func OpenOrderStore(ctx context.Context, cfg config.OrderStoreConfig, l log.Logger) (orderRepo.Repository, error) {
	if dir := dataDir(cfg.DSN); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir %s: %w", dir, err)
		}
	}
	repo, err := sqlite.Open(ctx, cfg.DSN, l)
	if err != nil {
		return nil, err
	}
	if err := repo.Migrate(ctx, cfg.Seed); err != nil {
		repo.Close()
		return nil, fmt.Errorf("migrate order store: %w", err)
	}
	return repo, nil
}

// dataDir returns the directory of a file DSN, or "" for in-memory databases.
func dataDir(dsn string) string {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path == "" || path == ":memory:" || strings.Contains(dsn, "mode=memory") {
		return ""
	}
	if dir := filepath.Dir(path); dir != "." {
		return dir
	}
	return ""
}

func (a *App) buildKnowledge(ctx context.Context, cfg *config.Config) (*knowledge.Retriever, error) {
	var (
		items []model.KnowledgeItem
		err   error
	)
	if cfg.Knowledge.CorpusPath == "" {
		items, err = knowledge.DefaultItems()
	} else {
		items, err = knowledge.LoadFile(cfg.Knowledge.CorpusPath)
	}
	if err != nil {
		return nil, fmt.Errorf("load knowledge corpus: %w", err)
	}

	products, err := a.Orders.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	items = append(items, knowledge.ProductItems(products)...)

	var emb *knowledge.EmbeddingScorer
	if cfg.Knowledge.Strategy == knowledge.StrategyEmbedding {
		emb = a.buildEmbeddingScorer(ctx, cfg, items)
	}
	return knowledge.New(a.l, knowledge.NewScorer(cfg.Knowledge.Strategy, emb), items), nil
}

// buildEmbeddingScorer returns nil when no embedder can be built, which selects TF-IDF.
func (a *App) buildEmbeddingScorer(ctx context.Context, cfg *config.Config, items []model.KnowledgeItem) *knowledge.EmbeddingScorer {
	var (
		e   embedding.Embedder
		err error
	)
	switch cfg.Knowledge.Embedder {
	case "genai":
		e, err = embedding.NewGenAI(ctx, cfg.GenAI.APIKey, cfg.GenAI.EmbeddingModel)
	default:
		var client voyage.IVoyage
		client, err = voyage.New(voyage.Config{APIKey: cfg.Voyage.APIKey, Model: cfg.Voyage.Model})
		if err == nil {
			e = embedding.NewVoyage(client)
		}
	}
	if err != nil {
		a.l.Warnf(ctx, "internal.app.buildEmbeddingScorer: %s embedder unavailable, using tfidf: %v", cfg.Knowledge.Embedder, err)
		return nil
	}

	if cfg.Knowledge.CacheSize > 0 {
		e = a.withEmbeddingCache(ctx, e, cfg.Knowledge.CacheSize)
	}

	scorer := knowledge.NewEmbeddingScorer(e)
	if err := scorer.Warm(ctx, items); err != nil {
		// queries still embed lazily; failures fall back to tfidf per search
		a.l.Warnf(ctx, "internal.app.buildEmbeddingScorer: warm-up failed: %v", err)
	}
	return scorer
}

// withEmbeddingCache puts a query cache in front of e, or returns e unchanged when the
// cache cannot be built.
func (a *App) withEmbeddingCache(ctx context.Context, e embedding.Embedder, size int) embedding.Embedder {
	cached, err := embedding.NewCached(e, size)
	if err != nil {
		a.l.Warnf(ctx, "internal.app.withEmbeddingCache: %s embeddings uncached: %v", e.Name(), err)
		return e
	}
	return cached
}

func (a *App) buildClassifier(ctx context.Context, cfg *config.Config) pipeline.IntentClassifier {
	if cfg.Classifier.Mode != config.ClassifierModeLLM {
		return a.Rules
	}
	mgr, err := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, a.l)
	if err != nil {
		a.l.Warnf(ctx, "internal.app.buildClassifier: no generation service, using rules: %v", err)
		return a.Rules
	}
	a.l.Infof(ctx, "internal.app.buildClassifier: providers=%v", mgr.Providers())
	return classifier.NewLLM(mgr, a.Rules, a.l)
}

func maxOr(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}
