package workflow

import (
	"context"
	"sync"

	"github.com/Astemirdum/bookstore-admin/admin/internal/dashboard"
	"github.com/Astemirdum/bookstore-admin/admin/internal/model"
	"github.com/Astemirdum/bookstore-admin/admin/internal/view"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type DashboardView struct {
	store  RecordStore
	render *view.Renderer
	log    *zap.Logger
	opts   options

	mu    sync.RWMutex
	stats dashboard.Stats
}

func NewDashboardView(store RecordStore, render *view.Renderer, log *zap.Logger, opts ...Option) *DashboardView {
	return &DashboardView{
		store:  store,
		render: render,
		log:    log.Named("dashboard"),
		opts:   newOptions(opts),
	}
}

// Load recomputes the statistics from fresh books, orders and categories.
// On failure the previous statistics stay in place.
func (v *DashboardView) Load(ctx context.Context) (dashboard.Stats, error) {
	var (
		books      []model.Book
		orders     []model.Order
		categories []model.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		books, err = v.store.Books(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		orders, err = v.store.Orders(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = v.store.Categories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		v.log.Error("load", zap.Error(err))
		return v.Stats(), err
	}

	st := dashboard.Aggregate(books, orders, categories, v.opts.now())
	v.mu.Lock()
	v.stats = st
	v.mu.Unlock()
	return st, nil
}

func (v *DashboardView) Refresh(ctx context.Context) (view.DashboardPage, model.Notification, error) {
	st, err := v.Load(ctx)
	if err != nil {
		return v.render.RenderDashboard(st), model.Notification{}, err
	}
	return v.render.RenderDashboard(st), model.Notification{Type: model.NotifySuccess, Message: "Dashboard đã được cập nhật"}, nil
}

func (v *DashboardView) Stats() dashboard.Stats {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.stats
}

func (v *DashboardView) Page() view.DashboardPage {
	return v.render.RenderDashboard(v.Stats())
}
