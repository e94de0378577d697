package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/denmor86/points-bridge/internal/config"
	"github.com/denmor86/points-bridge/internal/logger"
	"github.com/denmor86/points-bridge/internal/services"
)

// Reconciler - воркер периодической сверки балансов.
// Только обнаружение: никакой автоматической коррекции.
type Reconciler struct {
	Reconcile services.ReconcileService
	Config    config.ReconcileConfig
	WaitGroup sync.WaitGroup
	QuitChan  chan struct{}
}

// NewReconciler - конструктор воркера сверки
func NewReconciler(reconcile services.ReconcileService, cfg config.ReconcileConfig) *Reconciler {
	return &Reconciler{
		Reconcile: reconcile,
		Config:    cfg,
		QuitChan:  make(chan struct{}),
	}
}

// Start - запускает воркер в фоне
func (w *Reconciler) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *Reconciler) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

// Run - основная рабочая логика
func (w *Reconciler) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.Config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("Reconciler signal stop")
			return
		case <-ticker.C:
			if _, err := w.Reconcile.Check(ctx); err != nil {
				logger.Error("Reconciliation iteration failed", zap.Error(err))
			}
		}
	}
}
