// Package telemetry exports the live arm state as Prometheus metrics.
package telemetry

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"armsim/sim/chain"
	"armsim/sim/joint"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "armsim"

// Metrics holds the collectors on a private registry.
type Metrics struct {
	reg *prometheus.Registry

	joints      *prometheus.GaugeVec
	endEffector *prometheus.GaugeVec
	reach       prometheus.Gauge
	gripperDeg  prometheus.Gauge
	gripperOpen prometheus.Gauge
	ticks       prometheus.Counter
	rejected    prometheus.Gauge
	toggles     prometheus.Counter

	lastOpen bool
}

func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		joints: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "joint_angle_degrees",
			Help:      "Current joint angle in degrees.",
		}, []string{"joint"}),
		endEffector: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "end_effector_position",
			Help:      "End-effector world position.",
		}, []string{"axis"}),
		reach: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "reach",
			Help:      "Distance from the world origin to the end effector.",
		}),
		gripperDeg: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "gripper_angle_degrees",
			Help:      "Animated finger opening angle.",
		}),
		gripperOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "gripper_open",
			Help:      "1 if the gripper is commanded open.",
		}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Simulation ticks processed.",
		}),
		rejected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rejected_deltas",
			Help:      "Tick deltas replaced because they were not finite or negative.",
		}),
		toggles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gripper_toggles_total",
			Help:      "Gripper open/close toggles.",
		}),
	}
	m.reg.MustRegister(m.joints, m.endEffector, m.reach, m.gripperDeg, m.gripperOpen, m.ticks, m.rejected, m.toggles)
	return m
}

// Sample is everything observed after one tick.
type Sample struct {
	Joints   joint.State
	Gripper  joint.Gripper
	Pose     chain.Pose
	Rejected uint64
}

// Observe records one tick. A nil receiver is a no-op.
func (m *Metrics) Observe(s Sample) {
	if m == nil {
		return
	}
	m.ticks.Inc()
	m.joints.WithLabelValues("base").Set(s.Joints.Base)
	m.joints.WithLabelValues("shoulder").Set(s.Joints.Shoulder)
	m.joints.WithLabelValues("elbow").Set(s.Joints.Elbow)
	m.joints.WithLabelValues("wrist_roll").Set(s.Joints.WristRoll)

	m.endEffector.WithLabelValues("x").Set(s.Pose.EndEffector.X())
	m.endEffector.WithLabelValues("y").Set(s.Pose.EndEffector.Y())
	m.endEffector.WithLabelValues("z").Set(s.Pose.EndEffector.Z())
	m.reach.Set(s.Pose.Reach)

	m.gripperDeg.Set(s.Gripper.Angle)
	if s.Gripper.Open {
		m.gripperOpen.Set(1)
	} else {
		m.gripperOpen.Set(0)
	}
	if s.Gripper.Open != m.lastOpen {
		m.toggles.Inc()
		m.lastOpen = s.Gripper.Open
	}
	m.rejected.Set(float64(s.Rejected))
}

// Registry exposes the private registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Serve runs the metrics endpoint on addr until ctx is done.
func (m *Metrics) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("metrics server listening", "addr", ln.Addr().String())
	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
