package dispatcher

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
)

// Dispatcher доставляет подтверждённое бронирование ровно в один журнал:
// сначала remote sink, при любой его ошибке - локальный файл.
type Dispatcher struct {
	remote  RemoteSink
	local   LocalLog
	counter DeliveryCounter
	logger  Logger
}

// NewDispatcher создает диспетчер. remote может быть nil - тогда запись всегда локальная.
func NewDispatcher(remote RemoteSink, local LocalLog, logger Logger) *Dispatcher {
	return &Dispatcher{
		remote:  remote,
		local:   local,
		counter: noopCounter{},
		logger:  logger,
	}
}

// WithMetrics подключает счётчик доставок
func (d *Dispatcher) WithMetrics(vec *prometheus.CounterVec) *Dispatcher {
	if vec != nil {
		d.counter = counterVec{vec: vec}
	}
	return d
}

// RemoteConfigured true, если задан удалённый sink
func (d *Dispatcher) RemoteConfigured() bool {
	return d.remote != nil
}

// Dispatch сохраняет событие. Ошибка возвращается только если не удалась локальная запись.
func (d *Dispatcher) Dispatch(ctx context.Context, event domain.ConfirmedReservationEvent) (*Result, error) {
	var remoteErr error

	if d.remote != nil {
		resp, err := d.remote.SendConfirmed(ctx, event)
		if err == nil {
			d.counter.Inc(string(DeliveredRemote), resultSuccess)
			d.logger.Info("Dispatch: confirmation for car=%s written by sink %s", event.CarNumber, d.remote.BaseURL())
			return &Result{Path: DeliveredRemote, File: resp.File}, nil
		}

		// Таймаут, сеть, 401, 5xx - всё одинаково означает переход на локальную запись
		remoteErr = err
		d.counter.Inc(string(DeliveredRemote), resultFailure)
		d.logger.Warn("Dispatch: sink %s failed, falling back to local file: %v", d.remote.BaseURL(), err)
	}

	path, err := d.local.Append(event)
	if err != nil {
		d.counter.Inc(string(DeliveredLocal), resultFailure)
		d.logger.Error("Dispatch: local write to %s failed: %v", d.local.Path(), err)
		return nil, fmt.Errorf("%w: %v", ErrLocalWrite, err)
	}

	d.counter.Inc(string(DeliveredLocal), resultSuccess)
	d.logger.Info("Dispatch: confirmation for car=%s written to %s", event.CarNumber, path)
	return &Result{Path: DeliveredLocal, File: path, RemoteErr: remoteErr}, nil
}

type noopCounter struct{}

func (noopCounter) Inc(string, string) {}

type counterVec struct {
	vec *prometheus.CounterVec
}

func (c counterVec) Inc(path, result string) {
	c.vec.WithLabelValues(path, result).Inc()
}
