package replica_reconcile

import (
	"context"
	"time"

	"packshare/pkg/logger"
)

type Service interface {
	ReconcileReplicas(ctx context.Context) (int64, error)
}

type ReplicaReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewReplicaReconcile(log logger.Logger, service Service, interval time.Duration) *ReplicaReconcile {
	return &ReplicaReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (r *ReplicaReconcile) TTL() time.Duration {
	return r.interval
}

func (r *ReplicaReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	repaired, err := r.service.ReconcileReplicas(ctxWithTimeout)

	if repaired > 0 {
		r.log.With(
			logger.NewField("repaired_copies", repaired),
		).Info("replica reconcile")
	}

	return err
}

func (r *ReplicaReconcile) Info() string {
	return "replica reconcile"
}
