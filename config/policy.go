package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

// ApprovalPolicy holds the tunable workflow rules. Values come from an
// optional YAML file; anything unset keeps its default.
type ApprovalPolicy struct {
	MinDescriptionLen  int     `yaml:"min_description_len"`
	MinReasonLen       int     `yaml:"min_reason_len"`
	StandardWeekHours  float64 `yaml:"standard_week_hours"`
	MaxDailyHours      float64 `yaml:"max_daily_hours"`
	InvoiceDueDays     int     `yaml:"invoice_due_days"`
	AuditRetentionDays int     `yaml:"audit_retention_days"`
	InviteExpiryDays   int     `yaml:"invite_expiry_days"`
}

var Policy = DefaultPolicy()

func DefaultPolicy() ApprovalPolicy {
	return ApprovalPolicy{
		MinDescriptionLen:  10,
		MinReasonLen:       10,
		StandardWeekHours:  40,
		MaxDailyHours:      12,
		InvoiceDueDays:     30,
		AuditRetentionDays: 30,
		InviteExpiryDays:   14,
	}
}

func LoadPolicy(path string) {
	Policy = DefaultPolicy()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Policy file %s not readable, using defaults: %v", path, err)
		return
	}

	if err := yaml.Unmarshal(data, &Policy); err != nil {
		log.Printf("Failed to parse policy file %s, using defaults: %v", path, err)
		Policy = DefaultPolicy()
	}
}
