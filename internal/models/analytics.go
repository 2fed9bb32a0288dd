package models

import "time"

// OtherType - зарезервированный ключ для типов, отсутствующих в реестре
const OtherType = "Other"

// IncidentTypeConfig - запись реестра типов инцидентов
type IncidentTypeConfig struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// MonthBucket - счётчики инцидентов по типам за один календарный месяц
type MonthBucket struct {
	Start  time.Time      `json:"start"`
	Label  string         `json:"label"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}
