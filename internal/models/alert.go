package models

import (
	"fmt"
	"time"
)

// AlertSeverity - уровень серьезности алерта
type AlertSeverity string

const (
	SeverityCritical AlertSeverity = "critical"
	SeverityWarning  AlertSeverity = "warning"
	SeverityWatch    AlertSeverity = "watch"
	SeverityInfo     AlertSeverity = "info"
)

// severityRank - фиксированный порядок отображения: critical < warning < watch < info.
// Используется только для сортировки, в бд не хранится.
var severityRank = map[AlertSeverity]int{
	SeverityCritical: 0,
	SeverityWarning:  1,
	SeverityWatch:    2,
	SeverityInfo:     3,
}

// SeverityRank возвращает ранг серьезности или ошибку для неизвестного значения.
// Неизвестная серьезность - нарушение контракта (валидация должна ее отсечь),
// поэтому здесь не подставляется ранг по умолчанию.
func SeverityRank(s AlertSeverity) (int, error) {
	rank, ok := severityRank[s]
	if !ok {
		return 0, fmt.Errorf("unknown alert severity %q", s)
	}
	return rank, nil
}

// Alert представляет запись об угрозе в регионе
type Alert struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Severity    AlertSeverity `json:"severity"`
	Type        string        `json:"type"`
	Location    string        `json:"location"`
	Latitude    *string       `json:"latitude"`
	Longitude   *string       `json:"longitude"`
	IsActive    bool          `json:"isActive"`
	Timestamp   time.Time     `json:"timestamp"`
	ExpiresAt   *time.Time    `json:"expiresAt"`
	ImageURL    *string       `json:"imageUrl"`
	ActionURL   *string       `json:"actionUrl"`
}

// EffectivelyActive проверяет, активен ли алерт на момент now:
// флаг is_active взведен и срок действия (если задан) еще не истек.
// Свойство вычисляется при чтении, хранимый флаг при истечении срока не меняется.
func (a *Alert) EffectivelyActive(now time.Time) bool {
	if !a.IsActive {
		return false
	}
	return a.ExpiresAt == nil || a.ExpiresAt.After(now)
}

// AlertPatch - частичное обновление алерта. Нулевой указатель означает
// "поле не передано". ID и timestamp неизменяемы и в патч не входят.
type AlertPatch struct {
	Title       *string
	Description *string
	Severity    *AlertSeverity
	Type        *string
	Location    *string
	Latitude    *string
	Longitude   *string
	IsActive    *bool
	ExpiresAt   *time.Time
	ImageURL    *string
	ActionURL   *string
}
