package bootstrap

import (
	"github.com/kbukum/mediator/behaviors"
	"github.com/kbukum/mediator/config"
	"github.com/kbukum/mediator/logger"
	"github.com/kbukum/mediator/mediator"
	"github.com/kbukum/mediator/observability"
	"github.com/kbukum/mediator/resilience"
)

// Names of the built-in global behaviors, as listed in the summary.
const (
	StageRequestID  = "request_id"
	StageRecover    = "recover"
	StageLogging    = "logging"
	StageMetrics    = "metrics"
	StageValidation = "validation"
	StageTimeout    = "timeout"
	StageBulkhead   = "bulkhead"
)

type stage struct {
	name     string
	behavior mediator.PipelineBehavior
}

// pipeline returns the enabled built-in behaviors, outermost first.
func pipeline(cfg *config.Config, log *logger.Logger, metrics *observability.Metrics) []stage {
	p := cfg.Pipeline
	var stages []stage

	if p.RequestID {
		stages = append(stages, stage{StageRequestID, behaviors.RequestID()})
	}
	if p.Recover {
		stages = append(stages, stage{StageRecover, behaviors.Recover(log)})
	}
	if p.Logging {
		stages = append(stages, stage{StageLogging, behaviors.LoggingWithThreshold(log, p.SlowThreshold)})
	}
	if p.Metrics && metrics != nil {
		stages = append(stages, stage{StageMetrics, behaviors.Metrics(metrics)})
	}
	if p.Validation {
		stages = append(stages, stage{StageValidation, behaviors.Validation()})
	}
	if p.Timeout > 0 {
		stages = append(stages, stage{StageTimeout, behaviors.Timeout(p.Timeout)})
	}
	if p.MaxConcurrent > 0 {
		bulkhead := resilience.NewBulkhead(resilience.BulkheadConfig{
			Name:          cfg.Name,
			MaxConcurrent: p.MaxConcurrent,
			MaxWait:       p.MaxWait,
			OnReject: func(name string) {
				log.Warn("request rejected", logger.Fields("bulkhead", name))
			},
		})
		stages = append(stages, stage{StageBulkhead, behaviors.Bulkhead(bulkhead)})
	}
	return stages
}
