package cron

import (
	"log"
	"time"

	"github.com/clockwisehq/workforce-go/config"
	"github.com/clockwisehq/workforce-go/services"
)

func StartCleanupTask(auditService *services.AuditService) {
	go func() {
		days := config.Policy.AuditRetentionDays
		log.Printf("Starting background audit cleanup task (retention: %d days)", days)

		// Run immediately on startup
		if err := auditService.CleanupOldLogs(days); err != nil {
			log.Printf("Failed to cleanup old audit logs: %v", err)
		}

		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if err := auditService.CleanupOldLogs(days); err != nil {
				log.Printf("Failed to cleanup old audit logs: %v", err)
			}
		}
	}()
}

func StartOverdueInvoiceTask(invoiceService *services.InvoiceService) {
	go func() {
		log.Println("Starting background overdue invoice sweep")

		if flipped, err := invoiceService.MarkOverdueSweep(time.Now()); err != nil {
			log.Printf("Overdue invoice sweep failed: %v", err)
		} else if flipped > 0 {
			log.Printf("Marked %d invoices overdue", flipped)
		}

		ticker := time.NewTicker(6 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			if flipped, err := invoiceService.MarkOverdueSweep(time.Now()); err != nil {
				log.Printf("Overdue invoice sweep failed: %v", err)
			} else if flipped > 0 {
				log.Printf("Marked %d invoices overdue", flipped)
			}
		}
	}()
}
