package services

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// RefreshScheduler rebroadcasts today's booking summary every 30 seconds,
// the periodic stats refresh the dashboards used to run on a timer.
type RefreshScheduler struct {
	cron  *cron.Cron
	menus *MenuService
	hub   *RealtimeHub
}

func NewRefreshScheduler(menus *MenuService, hub *RealtimeHub) *RefreshScheduler {
	return &RefreshScheduler{
		cron:  cron.New(cron.WithSeconds()),
		menus: menus,
		hub:   hub,
	}
}

func (s *RefreshScheduler) Start() error {
	_, err := s.cron.AddFunc("@every 30s", s.refresh)
	if err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *RefreshScheduler) Stop() {
	s.cron.Stop()
}

func (s *RefreshScheduler) refresh() {
	stats, err := s.menus.BookingStatsByDate(time.Now())
	if err != nil {
		logrus.WithError(err).Warn("periodic stats refresh failed")
		return
	}
	s.hub.Broadcast(map[string]any{
		"kind":    "stats.refresh",
		"date":    time.Now().Format("2006-01-02"),
		"summary": Summarize(stats),
	})
}
