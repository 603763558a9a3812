package repository

import (
	"testing"
	"time"

	"github.com/shenikar/disaster_alert_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestFilterEffectivelyActive_InactiveExcluded(t *testing.T) {
	// Подготовка
	now := time.Now()
	alerts := []*models.Alert{
		{ID: 1, Title: "Активный", IsActive: true},
		{ID: 2, Title: "Выключенный", IsActive: false},
		{ID: 3, Title: "Выключенный с будущим сроком", IsActive: false, ExpiresAt: timePtr(now.Add(time.Hour))},
	}

	// Действие
	active := filterEffectivelyActive(alerts, now)

	// Проверки
	require.Len(t, active, 1)
	assert.Equal(t, int64(1), active[0].ID)
}

func TestFilterEffectivelyActive_Expiry(t *testing.T) {
	// Подготовка
	now := time.Now()
	alerts := []*models.Alert{
		{ID: 1, Title: "Без срока", IsActive: true, ExpiresAt: nil},
		{ID: 2, Title: "Истекший", IsActive: true, ExpiresAt: timePtr(now.Add(-time.Minute))},
		{ID: 3, Title: "Действующий", IsActive: true, ExpiresAt: timePtr(now.Add(time.Minute))},
		{ID: 4, Title: "Истекает ровно сейчас", IsActive: true, ExpiresAt: timePtr(now)},
	}

	// Действие
	active := filterEffectivelyActive(alerts, now)

	// Проверки
	// nil и будущий срок проходят; прошедший и равный now — нет
	require.Len(t, active, 2)
	assert.Equal(t, int64(1), active[0].ID)
	assert.Equal(t, int64(3), active[1].ID)
}

func TestFilterEffectivelyActive_PreservesOrder(t *testing.T) {
	// Подготовка
	now := time.Now()
	alerts := []*models.Alert{
		{ID: 5, IsActive: true},
		{ID: 2, IsActive: false},
		{ID: 9, IsActive: true},
		{ID: 1, IsActive: true},
	}

	// Действие
	active := filterEffectivelyActive(alerts, now)

	// Проверки
	ids := make([]int64, 0, len(active))
	for _, a := range active {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int64{5, 9, 1}, ids)
}

func TestSortBySeverityRank_Order(t *testing.T) {
	// Подготовка
	alerts := []*models.Alert{
		{ID: 1, Severity: models.SeverityInfo},
		{ID: 2, Severity: models.SeverityCritical},
		{ID: 3, Severity: models.SeverityWatch},
		{ID: 4, Severity: models.SeverityWarning},
	}

	// Действие
	err := sortBySeverityRank(alerts)

	// Проверки
	require.NoError(t, err)
	ids := make([]int64, 0, len(alerts))
	for _, a := range alerts {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int64{2, 4, 3, 1}, ids)
}

func TestSortBySeverityRank_Stable(t *testing.T) {
	// Подготовка
	// Три critical в исходном порядке, между ними менее серьезные
	alerts := []*models.Alert{
		{ID: 1, Severity: models.SeverityCritical},
		{ID: 2, Severity: models.SeverityInfo},
		{ID: 3, Severity: models.SeverityCritical},
		{ID: 4, Severity: models.SeverityWarning},
		{ID: 5, Severity: models.SeverityCritical},
	}

	// Действие
	err := sortBySeverityRank(alerts)

	// Проверки
	require.NoError(t, err)
	ids := make([]int64, 0, len(alerts))
	for _, a := range alerts {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []int64{1, 3, 5, 4, 2}, ids)
}

func TestSortBySeverityRank_UnknownSeverity(t *testing.T) {
	// Подготовка
	alerts := []*models.Alert{
		{ID: 1, Severity: models.SeverityCritical},
		{ID: 2, Severity: models.AlertSeverity("catastrophic")},
	}

	// Действие
	err := sortBySeverityRank(alerts)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown alert severity")
}
