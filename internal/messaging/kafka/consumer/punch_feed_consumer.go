package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Netosantos999/controle-ponto-app/internal/employee"
	"github.com/Netosantos999/controle-ponto-app/internal/events"
	"github.com/Netosantos999/controle-ponto-app/internal/punch"
	puncherrors "github.com/Netosantos999/controle-ponto-app/internal/punch/errors"
	"github.com/Netosantos999/controle-ponto-app/internal/shared/apperror"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ConsumePunchFeed ingests the badge reader stream. A malformed or
// unresolvable message is committed and skipped so one bad badge swipe
// never wedges the partition; infrastructure errors are retried by not
// committing.
func ConsumePunchFeed(
	ctx context.Context,
	reader *kafkago.Reader,
	punchService punch.Service,
	employeeRepo employee.Repository,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.punch_feed")
	log.Info("punch feed consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("punch feed consumer stopped")
				return
			}
			log.Error("fetch punch feed message failed", zap.Error(err))
			continue
		}

		var event events.DevicePunchEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode device punch event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		empl, err := employeeRepo.FindByName(ctx, event.EmployeeName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Warn("device punch for unknown employee, skipping",
					zap.String("employee_name", event.EmployeeName),
					zap.String("device_id", event.DeviceID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}
			log.Error("resolve employee for device punch failed",
				zap.String("employee_name", event.EmployeeName),
				zap.Error(err),
			)
			continue
		}

		_, err = punchService.Record(ctx, punch.RecordPunchRequest{
			EmployeeID: empl.ID.String(),
			Action:     event.Action,
			Date:       event.PunchDate,
			Time:       event.PunchTime,
		})
		if err != nil {
			if errors.Is(err, puncherrors.ErrDuplicatePunch) {
				log.Warn("duplicate device punch, skipping",
					zap.String("employee_id", empl.ID.String()),
					zap.String("device_id", event.DeviceID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code == apperror.CodeInvalidInput {
				log.Warn("invalid device punch, skipping",
					zap.String("employee_id", empl.ID.String()),
					zap.String("action", event.Action),
					zap.String("device_id", event.DeviceID),
				)
				_ = reader.CommitMessages(ctx, msg)
				continue
			}

			log.Error("record device punch failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit punch feed message failed", zap.Error(err))
			continue
		}

		log.Info("device punch recorded",
			zap.String("employee_id", empl.ID.String()),
			zap.String("action", event.Action),
			zap.String("device_id", event.DeviceID),
		)
	}
}
