package services

import (
	"time"

	"gorm.io/gorm"

	"github.com/JashanBansal182304/MessMate/models"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub) {
	_alert = alertDeps{db: db, rt: rt}
}

// EmitAlert persists an alert for a dashboard role and pushes it over the
// hub. Safe to call anywhere; a no-op before InitAlertDeps.
func EmitAlert(audience, typ, message string) {
	if _alert.db == nil {
		return
	}
	a := &models.Alert{Audience: audience, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastRole(audience, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
}

// RecentAlerts lists the newest alerts for one audience.
func RecentAlerts(audience string, limit int) ([]models.Alert, error) {
	if limit <= 0 {
		limit = 20
	}
	var alerts []models.Alert
	err := _alert.db.Where("audience = ?", audience).
		Order("created_at DESC").Limit(limit).Find(&alerts).Error
	return alerts, err
}
