package logging

import (
	"context"

	"go.uber.org/zap"
)

// LogAuditEvent records a structured audit entry for a data mutation.
// action is the operation performed ("create", "update", "delete"),
// resourceType/resourceID identify the affected record, result is
// "success" or "failure", and details carries optional extra context.
func LogAuditEvent(
	ctx context.Context,
	action, resourceType, resourceID, result string,
	details map[string]any,
) {
	logger := LoggerFromContext(ctx)

	logger.Info("Audit event",
		zap.String("audit.action", action),
		zap.String("audit.resource_type", resourceType),
		zap.String("audit.resource_id", resourceID),
		zap.String("audit.result", result),
		zap.Any("audit.details", details),
	)
}
