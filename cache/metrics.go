package cache

import (
	"github.com/mwantia/vfsname/name"
	"github.com/mwantia/vfsname/provider"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts files cache operations per cache and operation.
type Metrics struct {
	Operations *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg when it is
// not nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vfs_files_cache_operations_total",
				Help: "Total number of files cache operations per cache and operation.",
			},
			[]string{"cache", "op"}),
	}

	if reg != nil {
		if err := reg.Register(m.Operations); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Instrumented wraps a FilesCache and records every operation.
type Instrumented struct {
	provider.FilesCache

	label   string
	metrics *Metrics
}

// Instrument wraps inner, labelling its operations with label.
func Instrument(inner provider.FilesCache, label string, metrics *Metrics) *Instrumented {
	return &Instrumented{
		FilesCache: inner,
		label:      label,
		metrics:    metrics,
	}
}

func (c *Instrumented) observe(op string) {
	c.metrics.Operations.WithLabelValues(c.label, op).Inc()
}

func (c *Instrumented) GetFile(fs provider.FileSystem, n *name.FileName) provider.FileObject {
	file := c.FilesCache.GetFile(fs, n)
	if file == nil {
		c.observe("miss")
	} else {
		c.observe("hit")
	}
	return file
}

func (c *Instrumented) PutFile(file provider.FileObject) {
	c.observe("put")
	c.FilesCache.PutFile(file)
}

func (c *Instrumented) PutFileIfAbsent(file provider.FileObject) bool {
	c.observe("put")
	return c.FilesCache.PutFileIfAbsent(file)
}

func (c *Instrumented) RemoveFile(fs provider.FileSystem, n *name.FileName) {
	c.observe("remove")
	c.FilesCache.RemoveFile(fs, n)
}

func (c *Instrumented) Clear(fs provider.FileSystem) {
	c.observe("clear")
	c.FilesCache.Clear(fs)
}
